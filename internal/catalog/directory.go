package catalog

import "github.com/farellandr/gigbook/internal/models"

// GroupByArea groups venues by exact city and state. Groups appear in the
// order their first venue does, and venues keep their input order inside a
// group. upcoming maps venue id to its upcoming show count.
func GroupByArea(venues []models.Venue, upcoming map[uint]int64) []Area {
	type key struct{ city, state string }

	index := make(map[key]int)
	areas := []Area{}
	for _, venue := range venues {
		k := key{venue.City, venue.State}
		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{City: venue.City, State: venue.State})
		}
		areas[i].Venues = append(areas[i].Venues, VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: upcoming[venue.ID],
		})
	}
	return areas
}
