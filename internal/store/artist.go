package store

import (
	"context"
	"fmt"
	"time"

	"github.com/farellandr/gigbook/internal/models"
	"gorm.io/gorm"
)

// ListArtists returns every artist in store order.
func (s *Store) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := s.db.WithContext(ctx).Order("artists.id ASC").Find(&artists).Error
	return artists, err
}

func (s *Store) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := nameContains(s.db.WithContext(ctx), "artists", term).Order("artists.id ASC").Find(&artists).Error
	return artists, err
}

func (s *Store) GetArtist(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.WithContext(ctx).Preload("Genres", genresByName).First(&artist, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &artist, nil
}

func (s *Store) CountUpcomingShowsByArtist(ctx context.Context, now time.Time) (map[uint]int64, error) {
	return s.countUpcoming(ctx, "artist_id", now)
}

// ListArtistShows returns the shows an artist plays with their venue joined
// in, ordered by start time.
func (s *Store) ListArtistShows(ctx context.Context, artistID uint) ([]models.Show, error) {
	var shows []models.Show
	err := s.db.WithContext(ctx).
		Joins("Venue").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time ASC").
		Find(&shows).Error
	return shows, err
}

func (s *Store) CreateArtist(ctx context.Context, artist *models.Artist, genres []string) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		resolved, err := resolveGenres(tx, models.NormalizeGenres(genres))
		if err != nil {
			return err
		}
		artist.Genres = resolved

		if err := tx.Create(artist).Error; err != nil {
			return fmt.Errorf("create artist: %w", err)
		}
		return nil
	})
}

func (s *Store) UpdateArtist(ctx context.Context, id uint, artist *models.Artist, genres []string) error {
	return s.transaction(ctx, func(tx *gorm.DB) error {
		var current models.Artist
		if err := tx.First(&current, id).Error; err != nil {
			return notFound(err)
		}

		current.Name = artist.Name
		current.City = artist.City
		current.State = artist.State
		current.Phone = artist.Phone
		current.ImageLink = artist.ImageLink
		current.WebsiteLink = artist.WebsiteLink
		current.FacebookLink = artist.FacebookLink
		current.SeekingVenue = artist.SeekingVenue
		current.SeekingDescription = artist.SeekingDescription

		if err := tx.Omit("Genres").Save(&current).Error; err != nil {
			return fmt.Errorf("update artist %d: %w", id, err)
		}

		resolved, err := resolveGenres(tx, models.NormalizeGenres(genres))
		if err != nil {
			return err
		}
		if err := tx.Model(&current).Association("Genres").Replace(resolved); err != nil {
			return fmt.Errorf("update artist %d genres: %w", id, err)
		}

		current.Genres = resolved
		*artist = current
		return nil
	})
}

// DeleteArtist removes artist id unless shows still reference it, in which
// case ErrConflict is returned and nothing changes.
func (s *Store) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := s.transaction(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			return notFound(err)
		}

		var shows int64
		if err := tx.Model(&models.Show{}).Where("artist_id = ?", id).Count(&shows).Error; err != nil {
			return err
		}
		if shows > 0 {
			return fmt.Errorf("artist %d has %d shows: %w", id, shows, ErrConflict)
		}

		if err := tx.Model(&artist).Association("Genres").Clear(); err != nil {
			return fmt.Errorf("clear artist %d genres: %w", id, err)
		}

		result := tx.Delete(&models.Artist{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete artist %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &artist, nil
}
