package store

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/gigbook/internal/models"
	"gorm.io/gorm"
)

// ListVenues returns every venue in store order.
func (s *Store) ListVenues(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := s.db.WithContext(ctx).Order("venues.id ASC").Find(&venues).Error
	return venues, err
}

func (s *Store) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := nameContains(s.db.WithContext(ctx), "venues", term).Order("venues.id ASC").Find(&venues).Error
	return venues, err
}

func (s *Store) GetVenue(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.WithContext(ctx).Preload("Genres", genresByName).First(&venue, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &venue, nil
}

// CountUpcomingShowsByVenue maps venue id to the number of shows starting
// after now. Venues without upcoming shows are absent.
func (s *Store) CountUpcomingShowsByVenue(ctx context.Context, now time.Time) (map[uint]int64, error) {
	return s.countUpcoming(ctx, "venue_id", now)
}

// ListVenueShows returns the shows held at a venue with their artist joined
// in, ordered by start time.
func (s *Store) ListVenueShows(ctx context.Context, venueID uint) ([]models.Show, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).
		Joins("Artist").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time ASC").
		Find(&shows).Error
	return shows, err
}

// CreateVenue inserts venue together with its genre tags. The generated id
// is set on venue.
func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue, genres []string) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		resolved, err := resolveGenres(tx, models.NormalizeGenres(genres))
		if err != nil {
			return err
		}
		venue.Genres = resolved

		if err := tx.Create(venue).Error; err != nil {
			return fmt.Errorf("create venue: %w", err)
		}
		return nil
	})
}

// UpdateVenue overwrites every field of venue id with the values of
// venue, and replaces its genres.
func (s *Store) UpdateVenue(ctx context.Context, id uint, venue *models.Venue, genres []string) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		var current models.Venue
		if err := tx.First(&current, id).Error; err != nil {
			return notFound(err)
		}

		current.Name = venue.Name
		current.City = venue.City
		current.State = venue.State
		current.Address = venue.Address
		current.Phone = venue.Phone
		current.ImageLink = venue.ImageLink
		current.WebsiteLink = venue.WebsiteLink
		current.FacebookLink = venue.FacebookLink
		current.SeekingTalent = venue.SeekingTalent
		current.SeekingDescription = venue.SeekingDescription

		if err := tx.Omit("Genres").Save(&current).Error; err != nil {
			return fmt.Errorf("update venue %d: %w", id, err)
		}

		resolved, err := resolveGenres(tx, models.NormalizeGenres(genres))
		if err != nil {
			return err
		}
		if err := tx.Model(&current).Association("Genres").Replace(resolved); err != nil {
			return fmt.Errorf("update venue %d genres: %w", id, err)
		}

		current.Genres = resolved
		*venue = current
		return nil
	})
}

// DeleteVenue removes venue id. A venue that still hosts shows is kept and
// ErrConflict is returned.
func (s *Store) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			return notFound(err)
		}

		var shows int64
		if err := tx.Model(&models.Show{}).Where("venue_id = ?", id).Count(&shows).Error; err != nil {
			return err
		}
		if shows > 0 {
			return fmt.Errorf("venue %d has %d shows: %w", id, shows, ErrConflict)
		}

		if err := tx.Model(&venue).Association("Genres").Clear(); err != nil {
			return fmt.Errorf("clear venue %d genres: %w", id, err)
		}

		result := tx.Delete(&models.Venue{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete venue %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &venue, nil
}
