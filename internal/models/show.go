package models

import "time"

// Show books an artist at a venue. Both references are mandatory and the
// referenced rows cannot be deleted while the show exists.
type Show struct {
	ID        uint      `gorm:"primaryKey"`
	VenueID   uint      `gorm:"not null;index"`
	Venue     Venue     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ArtistID  uint      `gorm:"not null;index"`
	Artist    Artist    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	StartTime time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// IsUpcoming reports whether the show starts strictly after now. A show
// starting exactly at now is already past.
func (s Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
