package handlers

import (
	"strings"

	"github.com/farellandr/gigbook/internal/helpers"
	"github.com/farellandr/gigbook/internal/models"
)

type VenueForm struct {
	Name               string   `form:"name" binding:"required,notblank"`
	City               string   `form:"city" binding:"required,notblank"`
	State              string   `form:"state" binding:"required,notblank"`
	Address            string   `form:"address" binding:"required,notblank"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	WebsiteLink        string   `form:"website_link"`
	FacebookLink       string   `form:"facebook_link"`
	SeekingTalent      string   `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f VenueForm) Seeking() bool {
	return helpers.ParseCheckbox(f.SeekingTalent)
}

// Venue builds the row described by the form. Every field is taken from the
// form, so an absent field clears the stored value.
func (f VenueForm) Venue() *models.Venue {
	return &models.Venue{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Address:            strings.TrimSpace(f.Address),
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		WebsiteLink:        strings.TrimSpace(f.WebsiteLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		SeekingTalent:      f.Seeking(),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}

func venueForm(v *models.Venue) VenueForm {
	form := VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             models.GenreNames(v.Genres),
		ImageLink:          v.ImageLink,
		WebsiteLink:        v.WebsiteLink,
		FacebookLink:       v.FacebookLink,
		SeekingDescription: v.SeekingDescription,
	}
	if v.SeekingTalent {
		form.SeekingTalent = "y"
	}
	return form
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required,notblank"`
	City               string   `form:"city" binding:"required,notblank"`
	State              string   `form:"state" binding:"required,notblank"`
	Phone              string   `form:"phone"`
	Genres             []string `form:"genres"`
	ImageLink          string   `form:"image_link"`
	WebsiteLink        string   `form:"website_link"`
	FacebookLink       string   `form:"facebook_link"`
	SeekingVenue       string   `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (f ArtistForm) Seeking() bool {
	return helpers.ParseCheckbox(f.SeekingVenue)
}

func (f ArtistForm) Artist() *models.Artist {
	return &models.Artist{
		Name:               strings.TrimSpace(f.Name),
		City:               strings.TrimSpace(f.City),
		State:              strings.TrimSpace(f.State),
		Phone:              strings.TrimSpace(f.Phone),
		ImageLink:          strings.TrimSpace(f.ImageLink),
		WebsiteLink:        strings.TrimSpace(f.WebsiteLink),
		FacebookLink:       strings.TrimSpace(f.FacebookLink),
		SeekingVenue:       f.Seeking(),
		SeekingDescription: strings.TrimSpace(f.SeekingDescription),
	}
}

func artistForm(a *models.Artist) ArtistForm {
	form := ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             models.GenreNames(a.Genres),
		ImageLink:          a.ImageLink,
		WebsiteLink:        a.WebsiteLink,
		FacebookLink:       a.FacebookLink,
		SeekingDescription: a.SeekingDescription,
	}
	if a.SeekingVenue {
		form.SeekingVenue = "y"
	}
	return form
}

type ShowForm struct {
	ArtistID  string `form:"artist_id" binding:"required,notblank"`
	VenueID   string `form:"venue_id" binding:"required,notblank"`
	StartTime string `form:"start_time" binding:"required,notblank"`
}

// Show parses the form into a row. The error text is shown to the user.
func (f ShowForm) Show() (*models.Show, string) {
	artistID, err := helpers.StringToUint(f.ArtistID)
	if err != nil || artistID == 0 {
		return nil, "Artist ID must be a positive number."
	}
	venueID, err := helpers.StringToUint(f.VenueID)
	if err != nil || venueID == 0 {
		return nil, "Venue ID must be a positive number."
	}
	startTime, err := helpers.ParseStartTime(f.StartTime)
	if err != nil {
		return nil, "Start time must look like 2006-01-02 15:04:05."
	}
	return &models.Show{ArtistID: artistID, VenueID: venueID, StartTime: startTime}, ""
}
