package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/farellandr/gigbook/config"
	"github.com/farellandr/gigbook/internal/models"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying GORM database instance
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

func (s *Store) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// transaction runs fn in one database transaction. GORM commits when fn
// returns nil and rolls back otherwise; the connection goes back to the pool
// on every path.
func (s *Store) transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}

// resolveGenres looks up or creates one genre row per tag, keeping tag order.
func resolveGenres(tx *gorm.DB, tags []string) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(tags))
	for _, name := range tags {
		var genre models.Genre
		if err := tx.Where("name = ?", name).FirstOrCreate(&genre, models.Genre{Name: name}).Error; err != nil {
			return nil, fmt.Errorf("resolve genre %q: %w", name, err)
		}
		genres = append(genres, genre)
	}
	return genres, nil
}

func genresByName(db *gorm.DB) *gorm.DB {
	return db.Order("genres.name ASC")
}

// likeEscape is the escape character used by nameContains. '!' behaves the
// same on every supported dialect, unlike backslash on MySQL.
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// nameContains matches rows whose name contains term, ignoring case. The
// term is matched literally; an empty term matches every row. The term is
// folded with strings.ToLower, so the column must be folded the same way.
func nameContains(db *gorm.DB, table, term string) *gorm.DB {
	pattern := "%" + likeReplacer.Replace(strings.ToLower(term)) + "%"
	return db.Where(fmt.Sprintf("%s(%s.name) LIKE ? ESCAPE '%s'", lowerFunc(db), table, likeEscape), pattern)
}

func lowerFunc(db *gorm.DB) string {
	if db.Dialector.Name() == config.DriverSQLite {
		return config.SQLiteLower
	}
	return "LOWER"
}

type upcomingCount struct {
	OwnerID uint
	Total   int64
}

// countUpcoming counts shows starting strictly after now, grouped by column.
func (s *Store) countUpcoming(ctx context.Context, column string, now time.Time) (map[uint]int64, error) {
	var rows []upcomingCount
	err := s.db.WithContext(ctx).
		Model(&models.Show{}).
		Select(column+" AS owner_id, COUNT(*) AS total").
		Where("start_time > ?", now).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.OwnerID] = row.Total
	}
	return counts, nil
}
