package store

import (
	"context"
	"fmt"

	"github.com/farellandr/gigbook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListShows returns every show with its venue and artist, in store order.
func (s *Store) ListShows(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).
		Joins("Venue").
		Joins("Artist").
		Order("shows.id ASC").
		Find(&shows).Error
	return shows, err
}

// CreateShow books show.ArtistID at show.VenueID. Both rows must exist.
func (s *Store) CreateShow(ctx context.Context, show *models.Show) error {
	if show.ArtistID == 0 || show.VenueID == 0 || show.StartTime.IsZero() {
		return fmt.Errorf("artist, venue and start time are required: %w", ErrValidation)
	}

	return s.transaction(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Venue{}).Where("id = ?", show.VenueID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("venue %d does not exist: %w", show.VenueID, ErrValidation)
		}

		if err := tx.Model(&models.Artist{}).Where("id = ?", show.ArtistID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return fmt.Errorf("artist %d does not exist: %w", show.ArtistID, ErrValidation)
		}

		show.StartTime = show.StartTime.UTC()
		if err := tx.Omit(clause.Associations).Create(show).Error; err != nil {
			return fmt.Errorf("create show: %w", err)
		}
		return nil
	})
}
