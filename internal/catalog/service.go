// Package catalog builds the read-side views of the booking site: the venue
// directory, name search, detail pages with past and upcoming shows, and the
// show list. Past and upcoming are decided on every call against the
// service clock and never stored.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/gigbook/internal/models"
)

type Repository interface {
	ListVenues(ctx context.Context) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
	GetVenue(ctx context.Context, id uint) (*models.Venue, error)
	CountUpcomingShowsByVenue(ctx context.Context, now time.Time) (map[uint]int64, error)
	ListVenueShows(ctx context.Context, venueID uint) ([]models.Show, error)

	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	GetArtist(ctx context.Context, id uint) (*models.Artist, error)
	CountUpcomingShowsByArtist(ctx context.Context, now time.Time) (map[uint]int64, error)
	ListArtistShows(ctx context.Context, artistID uint) ([]models.Show, error)

	ListShows(ctx context.Context) ([]models.Show, error)
}

type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService returns a Service reading from repo. now defaults to the wall
// clock when nil.
func NewService(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

func (s *Service) Now() time.Time {
	return s.now().UTC()
}

func (s *Service) VenueDirectory(ctx context.Context) ([]Area, error) {
	venues, err := s.repo.ListVenues(ctx)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	upcoming, err := s.repo.CountUpcomingShowsByVenue(ctx, s.Now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}
	return GroupByArea(venues, upcoming), nil
}

func (s *Service) SearchVenues(ctx context.Context, term string) (*VenueSearch, error) {
	venues, err := s.repo.SearchVenues(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	upcoming, err := s.repo.CountUpcomingShowsByVenue(ctx, s.Now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	results := make([]VenueSummary, 0, len(venues))
	for _, venue := range venues {
		results = append(results, VenueSummary{ID: venue.ID, Name: venue.Name, NumUpcomingShows: upcoming[venue.ID]})
	}
	return &VenueSearch{SearchTerm: term, Count: len(results), Results: results}, nil
}

func (s *Service) VenueDetail(ctx context.Context, id uint) (*VenueDetail, error) {
	venue, err := s.repo.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.repo.ListVenueShows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list shows of venue %d: %w", id, err)
	}

	past, upcoming := PartitionVenueShows(shows, s.Now())
	return &VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             models.GenreNames(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		WebsiteLink:        venue.WebsiteLink,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Artists lists every artist. Upcoming show counts are left at zero; the
// artist directory only shows names.
func (s *Service) Artists(ctx context.Context) ([]ArtistSummary, error) {
	artists, err := s.repo.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}

	summaries := make([]ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		summaries = append(summaries, ArtistSummary{ID: artist.ID, Name: artist.Name})
	}
	return summaries, nil
}

func (s *Service) SearchArtists(ctx context.Context, term string) (*ArtistSearch, error) {
	artists, err := s.repo.SearchArtists(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	upcoming, err := s.repo.CountUpcomingShowsByArtist(ctx, s.Now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming shows: %w", err)
	}

	results := make([]ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		results = append(results, ArtistSummary{ID: artist.ID, Name: artist.Name, NumUpcomingShows: upcoming[artist.ID]})
	}
	return &ArtistSearch{SearchTerm: term, Count: len(results), Results: results}, nil
}

func (s *Service) ArtistDetail(ctx context.Context, id uint) (*ArtistDetail, error) {
	artist, err := s.repo.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := s.repo.ListArtistShows(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list shows of artist %d: %w", id, err)
	}

	past, upcoming := PartitionArtistShows(shows, s.Now())
	return &ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             models.GenreNames(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		WebsiteLink:        artist.WebsiteLink,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (s *Service) Shows(ctx context.Context) ([]ShowListing, error) {
	shows, err := s.repo.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	listing := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		listing = append(listing, ShowListing{
			ID:              show.ID,
			VenueID:         show.VenueID,
			VenueName:       show.Venue.Name,
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}
	return listing, nil
}
