package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/farellandr/gigbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

var errNoRow = errors.New("no row")

// memoryRepo keeps rows in slices, in insertion order.
type memoryRepo struct {
	venues  []models.Venue
	artists []models.Artist
	shows   []models.Show
	err     error
}

func (m *memoryRepo) venue(id uint) (models.Venue, bool) {
	for _, v := range m.venues {
		if v.ID == id {
			return v, true
		}
	}
	return models.Venue{}, false
}

func (m *memoryRepo) artist(id uint) (models.Artist, bool) {
	for _, a := range m.artists {
		if a.ID == id {
			return a, true
		}
	}
	return models.Artist{}, false
}

func (m *memoryRepo) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return m.venues, m.err
}

func (m *memoryRepo) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	var out []models.Venue
	for _, v := range m.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, v)
		}
	}
	return out, m.err
}

func (m *memoryRepo) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	v, ok := m.venue(id)
	if !ok {
		return nil, errNoRow
	}
	return &v, nil
}

func (m *memoryRepo) count(now time.Time, owner func(models.Show) uint) map[uint]int64 {
	counts := map[uint]int64{}
	for _, s := range m.shows {
		if s.StartTime.After(now) {
			counts[owner(s)]++
		}
	}
	return counts
}

func (m *memoryRepo) CountUpcomingShowsByVenue(ctx context.Context, now time.Time) (map[uint]int64, error) {
	return m.count(now, func(s models.Show) uint { return s.VenueID }), m.err
}

func (m *memoryRepo) ListVenueShows(ctx context.Context, venueID uint) ([]models.Show, error) {
	var out []models.Show
	for _, s := range m.shows {
		if s.VenueID == venueID {
			s.Artist, _ = m.artist(s.ArtistID)
			out = append(out, s)
		}
	}
	return out, m.err
}

func (m *memoryRepo) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return m.artists, m.err
}

func (m *memoryRepo) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	var out []models.Artist
	for _, a := range m.artists {
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, a)
		}
	}
	return out, m.err
}

func (m *memoryRepo) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	a, ok := m.artist(id)
	if !ok {
		return nil, errNoRow
	}
	return &a, nil
}

func (m *memoryRepo) CountUpcomingShowsByArtist(ctx context.Context, now time.Time) (map[uint]int64, error) {
	return m.count(now, func(s models.Show) uint { return s.ArtistID }), m.err
}

func (m *memoryRepo) ListArtistShows(ctx context.Context, artistID uint) ([]models.Show, error) {
	var out []models.Show
	for _, s := range m.shows {
		if s.ArtistID == artistID {
			s.Venue, _ = m.venue(s.VenueID)
			out = append(out, s)
		}
	}
	return out, m.err
}

func (m *memoryRepo) ListShows(ctx context.Context) ([]models.Show, error) {
	out := make([]models.Show, 0, len(m.shows))
	for _, s := range m.shows {
		s.Venue, _ = m.venue(s.VenueID)
		s.Artist, _ = m.artist(s.ArtistID)
		out = append(out, s)
	}
	return out, m.err
}

func fixture() *memoryRepo {
	return &memoryRepo{
		venues: []models.Venue{
			{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", ImageLink: "hop.jpg",
				Genres: []models.Genre{{Name: "Jazz"}, {Name: "Swing"}}},
			{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
			{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		},
		artists: []models.Artist{
			{ID: 4, Name: "Guns N Petals", ImageLink: "petals.jpg", Genres: []models.Genre{{Name: "Rock n Roll"}}},
			{ID: 5, Name: "Matt Quevedo"},
			{ID: 6, Name: "The Wild Sax Band"},
		},
		shows: []models.Show{
			{ID: 1, VenueID: 1, ArtistID: 4, StartTime: now.Add(-30 * 24 * time.Hour)},
			{ID: 2, VenueID: 3, ArtistID: 5, StartTime: now.Add(-time.Hour)},
			{ID: 3, VenueID: 3, ArtistID: 6, StartTime: now.Add(24 * time.Hour)},
			{ID: 4, VenueID: 3, ArtistID: 6, StartTime: now.Add(48 * time.Hour)},
			{ID: 5, VenueID: 3, ArtistID: 6, StartTime: now},
		},
	}
}

func TestGroupByArea(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, Name: "A", City: "San Francisco", State: "CA"},
		{ID: 2, Name: "B", City: "New York", State: "NY"},
		{ID: 3, Name: "C", City: "San Francisco", State: "CA"},
		{ID: 4, Name: "D", City: "san francisco", State: "CA"},
		{ID: 5, Name: "E", City: "San Francisco", State: "CA"},
	}

	areas := GroupByArea(venues, map[uint]int64{3: 2})

	require.Len(t, areas, 3)
	assert.Equal(t, Area{City: "San Francisco", State: "CA", Venues: []VenueSummary{
		{ID: 1, Name: "A"},
		{ID: 3, Name: "C", NumUpcomingShows: 2},
		{ID: 5, Name: "E"},
	}}, areas[0])
	assert.Equal(t, "New York", areas[1].City)
	assert.Equal(t, "san francisco", areas[2].City, "grouping is case sensitive")
}

func TestGroupByAreaKeepsCityAndStateApart(t *testing.T) {
	venues := []models.Venue{
		{ID: 1, City: "AB", State: "C"},
		{ID: 2, City: "A", State: "BC"},
	}

	areas := GroupByArea(venues, nil)
	assert.Len(t, areas, 2)
}

func TestGroupByAreaEmpty(t *testing.T) {
	areas := GroupByArea(nil, nil)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestPartitionIsExhaustiveAndExclusive(t *testing.T) {
	repo := fixture()
	var shows []models.Show
	for _, s := range repo.shows {
		s.Artist, _ = repo.artist(s.ArtistID)
		shows = append(shows, s)
	}

	past, upcoming := PartitionVenueShows(shows, now)

	assert.Equal(t, len(shows), len(past)+len(upcoming))
	for _, s := range upcoming {
		assert.True(t, s.StartTime.After(now))
	}
	for _, s := range past {
		assert.False(t, s.StartTime.After(now))
	}
	assert.Len(t, upcoming, 2)
	assert.Equal(t, "Guns N Petals", past[0].ArtistName)
	assert.Equal(t, "petals.jpg", past[0].ArtistImageLink)
}

func TestPartitionEmptyListsAreNotNil(t *testing.T) {
	past, upcoming := PartitionArtistShows(nil, now)
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
}

func TestVenueDirectory(t *testing.T) {
	svc := NewService(fixture(), func() time.Time { return now })

	areas, err := svc.VenueDirectory(context.Background())
	require.NoError(t, err)

	require.Len(t, areas, 2)
	assert.Equal(t, "San Francisco", areas[0].City)
	assert.Equal(t, []VenueSummary{
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 0},
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 2},
	}, areas[0].Venues)
	assert.Equal(t, "NY", areas[1].State)
}

func TestSearch(t *testing.T) {
	svc := NewService(fixture(), func() time.Time { return now })
	ctx := context.Background()

	all, err := svc.SearchVenues(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)

	hop, err := svc.SearchVenues(ctx, "the musical hop")
	require.NoError(t, err)
	assert.Equal(t, 1, hop.Count)
	assert.Equal(t, "the musical hop", hop.SearchTerm)

	band, err := svc.SearchArtists(ctx, "Band")
	require.NoError(t, err)
	require.Equal(t, 1, band.Count)
	assert.Equal(t, ArtistSummary{ID: 6, Name: "The Wild Sax Band", NumUpcomingShows: 2}, band.Results[0])

	none, err := svc.SearchArtists(ctx, "zzz")
	require.NoError(t, err)
	assert.Zero(t, none.Count)
	assert.NotNil(t, none.Results)
}

func TestVenueDetail(t *testing.T) {
	svc := NewService(fixture(), func() time.Time { return now })

	detail, err := svc.VenueDetail(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Park Square Live Music & Coffee", detail.Name)
	assert.Equal(t, 2, detail.PastShowsCount)
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, uint(5), detail.PastShows[0].ArtistID)
	assert.Equal(t, "The Wild Sax Band", detail.UpcomingShows[0].ArtistName)

	hop, err := svc.VenueDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jazz", "Swing"}, hop.Genres)

	_, err = svc.VenueDetail(context.Background(), 99)
	assert.ErrorIs(t, err, errNoRow)
}

func TestArtistDetail(t *testing.T) {
	svc := NewService(fixture(), func() time.Time { return now })

	detail, err := svc.ArtistDetail(context.Background(), 6)
	require.NoError(t, err)

	assert.Equal(t, 1, detail.PastShowsCount, "a show starting exactly now is past")
	assert.Equal(t, 2, detail.UpcomingShowsCount)
	assert.Equal(t, uint(3), detail.UpcomingShows[0].VenueID)
	assert.Equal(t, "Park Square Live Music & Coffee", detail.UpcomingShows[0].VenueName)

	_, err = svc.ArtistDetail(context.Background(), 99)
	assert.ErrorIs(t, err, errNoRow)
}

func TestClassificationFollowsTheClock(t *testing.T) {
	repo := fixture()
	clock := now
	svc := NewService(repo, func() time.Time { return clock })

	detail, err := svc.ArtistDetail(context.Background(), 6)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.UpcomingShowsCount)

	clock = now.Add(72 * time.Hour)
	detail, err = svc.ArtistDetail(context.Background(), 6)
	require.NoError(t, err)
	assert.Zero(t, detail.UpcomingShowsCount)
	assert.Equal(t, 3, detail.PastShowsCount)
}

func TestArtistsAndShows(t *testing.T) {
	svc := NewService(fixture(), func() time.Time { return now })
	ctx := context.Background()

	artists, err := svc.Artists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ArtistSummary{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}, {ID: 6, Name: "The Wild Sax Band"}}, artists)

	shows, err := svc.Shows(ctx)
	require.NoError(t, err)
	require.Len(t, shows, 5)
	assert.Equal(t, ShowListing{
		ID: 1, VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals",
		ArtistImageLink: "petals.jpg", StartTime: now.Add(-30 * 24 * time.Hour),
	}, shows[0])
}

func TestRepositoryErrorsAreWrapped(t *testing.T) {
	repo := fixture()
	repo.err = errors.New("connection reset")
	svc := NewService(repo, nil)

	_, err := svc.VenueDirectory(context.Background())
	assert.ErrorIs(t, err, repo.err)

	_, err = svc.Shows(context.Background())
	assert.ErrorIs(t, err, repo.err)
}
