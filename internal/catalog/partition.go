package catalog

import (
	"time"

	"github.com/farellandr/gigbook/internal/models"
)

// PartitionVenueShows splits the shows of one venue into past and upcoming
// relative to now, keeping input order in both.
func PartitionVenueShows(shows []models.Show, now time.Time) (past, upcoming []ArtistShow) {
	past, upcoming = []ArtistShow{}, []ArtistShow{}
	for _, show := range shows {
		entry := ArtistShow{
			ArtistID:        show.ArtistID,
			ArtistName:      show.Artist.Name,
			ArtistImageLink: show.Artist.ImageLink,
			StartTime:       show.StartTime,
		}
		if show.IsUpcoming(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}

// PartitionArtistShows is PartitionVenueShows for the shows of one artist.
func PartitionArtistShows(shows []models.Show, now time.Time) (past, upcoming []VenueShow) {
	past, upcoming = []VenueShow{}, []VenueShow{}
	for _, show := range shows {
		entry := VenueShow{
			VenueID:        show.VenueID,
			VenueName:      show.Venue.Name,
			VenueImageLink: show.Venue.ImageLink,
			StartTime:      show.StartTime,
		}
		if show.IsUpcoming(now) {
			upcoming = append(upcoming, entry)
		} else {
			past = append(past, entry)
		}
	}
	return past, upcoming
}
