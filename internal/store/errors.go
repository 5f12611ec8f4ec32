// Package store owns every read and write against the booking database.
// Mutations run inside a single transaction that commits on success and
// rolls back on any error.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an id has no matching row. Handlers
// translate it into a 404 page.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a venue or artist cannot be deleted because
// shows still reference it. Handlers translate it into a 409 page.
var ErrConflict = errors.New("conflict")

// ErrValidation is returned when a submission misses a required field or
// references a row that does not exist.
var ErrValidation = errors.New("validation failed")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
