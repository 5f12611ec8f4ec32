package models

import "time"

type Venue struct {
	ID                 uint    `gorm:"primaryKey"`
	Name               string  `gorm:"not null;index"`
	City               string  `gorm:"size:120;not null"`
	State              string  `gorm:"size:120;not null"`
	Address            string  `gorm:"size:120;not null"`
	Phone              string  `gorm:"size:120"`
	ImageLink          string  `gorm:"size:500"`
	WebsiteLink        string  `gorm:"size:500"`
	FacebookLink       string  `gorm:"size:500"`
	SeekingTalent      bool    `gorm:"not null;default:false"`
	SeekingDescription string  `gorm:"type:text"`
	Genres             []Genre `gorm:"many2many:venue_genres;"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
