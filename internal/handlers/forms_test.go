package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/farellandr/gigbook/internal/models"
	"github.com/farellandr/gigbook/internal/store"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueFormRoundTrip(t *testing.T) {
	form := VenueForm{
		Name:          "  The Musical Hop ",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		SeekingTalent: "on",
	}
	venue := form.Venue()
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.True(t, venue.SeekingTalent)
	assert.Empty(t, venue.Phone)

	venue.Genres = []models.Genre{{Name: "Folk"}, {Name: "Jazz"}}
	back := venueForm(venue)
	assert.Equal(t, "y", back.SeekingTalent)
	assert.True(t, back.Seeking())
	assert.Equal(t, []string{"Folk", "Jazz"}, back.Genres)

	venue.SeekingTalent = false
	assert.False(t, venueForm(venue).Seeking())
}

func TestArtistFormRoundTrip(t *testing.T) {
	artist := ArtistForm{Name: "Guns N Petals", City: "San Francisco", State: "CA", SeekingVenue: "y"}.Artist()
	assert.True(t, artist.SeekingVenue)

	back := artistForm(artist)
	assert.Equal(t, "Guns N Petals", back.Name)
	assert.Equal(t, "y", back.SeekingVenue)
	assert.Empty(t, back.Genres)
}

func TestShowForm(t *testing.T) {
	show, problem := ShowForm{ArtistID: "4", VenueID: "1", StartTime: "2019-05-21T21:30:00"}.Show()
	require.Empty(t, problem)
	assert.Equal(t, uint(4), show.ArtistID)
	assert.Equal(t, uint(1), show.VenueID)
	assert.True(t, show.StartTime.Equal(time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)))

	for _, form := range []ShowForm{
		{ArtistID: "0", VenueID: "1", StartTime: "2019-05-21T21:30"},
		{ArtistID: "4", VenueID: "x", StartTime: "2019-05-21T21:30"},
		{ArtistID: "4", VenueID: "1", StartTime: "May 21"},
	} {
		show, problem := form.Show()
		assert.Nil(t, show)
		assert.NotEmpty(t, problem)
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(store.ErrNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(fmt.Errorf("venue 1 has 2 shows: %w", store.ErrConflict)))
	assert.Equal(t, http.StatusBadRequest, statusFor(fmt.Errorf("missing: %w", store.ErrValidation)))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("disk full")))
}

func bindForm(t *testing.T, values url.Values, form any) error {
	t.Helper()
	RegisterValidators()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return binding.Form.Bind(req, form)
}

func TestBlankFormFieldsFailBinding(t *testing.T) {
	var venue VenueForm
	err := bindForm(t, url.Values{"name": {"   "}, "city": {" "}, "state": {"CA"}, "address": {"x"}}, &venue)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notblank")

	var artist ArtistForm
	assert.Error(t, bindForm(t, url.Values{"name": {"Guns N Petals"}, "city": {"\t"}, "state": {"CA"}}, &artist))

	var show ShowForm
	assert.Error(t, bindForm(t, url.Values{"artist_id": {"1"}, "venue_id": {"1"}, "start_time": {"  "}}, &show))

	venue = VenueForm{}
	assert.NoError(t, bindForm(t, url.Values{"name": {" The Musical Hop "}, "city": {"San Francisco"}, "state": {"CA"}, "address": {"1015 Folsom Street"}}, &venue))
}
