package handlers

import (
	"fmt"
	"net/http"

	"github.com/farellandr/gigbook/internal/helpers"
	"github.com/gin-gonic/gin"
)

func ListVenues(c *gin.Context) {
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	areas, err := svc.VenueDirectory(c.Request.Context())
	if err != nil {
		respondWithStoreError(c, err, "Venues", "listed")
		return
	}
	helpers.Render(c, http.StatusOK, "venues.html", gin.H{"Title": "Venues", "Areas": areas})
}

func SearchVenues(c *gin.Context) {
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	search, err := svc.SearchVenues(c.Request.Context(), c.PostForm("search_term"))
	if err != nil {
		respondWithStoreError(c, err, "Venues", "searched")
		return
	}
	helpers.Render(c, http.StatusOK, "search_venues.html", gin.H{"Title": "Venues", "Search": search})
}

func GetVenue(c *gin.Context) {
	id, ok := parseID(c, "Venue")
	if !ok {
		return
	}
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	venue, err := svc.VenueDetail(c.Request.Context(), id)
	if err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Venue %d", id), "shown")
		return
	}
	helpers.Render(c, http.StatusOK, "show_venue.html", gin.H{"Title": venue.Name, "Venue": venue})
}

func NewVenueForm(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "new_venue.html", gin.H{"Title": "New venue", "Form": VenueForm{}})
}

func CreateVenue(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Venue could not be listed. Name, city, state and address are required.")
		helpers.Render(c, http.StatusBadRequest, "new_venue.html", gin.H{"Title": "New venue", "Form": form})
		return
	}
	st, ok := getStore(c)
	if !ok {
		return
	}

	venue := form.Venue()
	if err := st.CreateVenue(c.Request.Context(), venue, form.Genres); err != nil {
		respondWithStoreError(c, err, "Venue "+venue.Name, "listed")
		return
	}

	helpers.Flash(c, "Venue "+venue.Name+" was successfully listed!")
	helpers.Render(c, http.StatusOK, "home.html", gin.H{})
}

func EditVenueForm(c *gin.Context) {
	id, ok := parseID(c, "Venue")
	if !ok {
		return
	}
	st, ok := getStore(c)
	if !ok {
		return
	}

	venue, err := st.GetVenue(c.Request.Context(), id)
	if err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Venue %d", id), "loaded")
		return
	}
	helpers.Render(c, http.StatusOK, "edit_venue.html", gin.H{"Title": "Edit venue", "ID": id, "Form": venueForm(venue)})
}

func UpdateVenue(c *gin.Context) {
	id, ok := parseID(c, "Venue")
	if !ok {
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}
	if _, err := st.GetVenue(c.Request.Context(), id); err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Venue %d", id), "updated")
		return
	}

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Venue could not be updated. Name, city, state and address are required.")
		helpers.Render(c, http.StatusBadRequest, "edit_venue.html", gin.H{"Title": "Edit venue", "ID": id, "Form": form})
		return
	}

	venue := form.Venue()
	if err := st.UpdateVenue(c.Request.Context(), id, venue, form.Genres); err != nil {
		respondWithStoreError(c, err, "Venue "+form.Name, "updated")
		return
	}

	helpers.FlashNext(c, "Venue "+venue.Name+" was successfully updated!")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue answers DELETE /venues/:id by rendering the directory the
// venue was removed from.
func DeleteVenue(c *gin.Context) {
	name, ok := deleteVenue(c)
	if !ok {
		return
	}
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	areas, err := svc.VenueDirectory(c.Request.Context())
	if err != nil {
		respondWithStoreError(c, err, "Venues", "listed")
		return
	}
	helpers.Flash(c, "Venue "+name+" was successfully deleted!")
	helpers.Render(c, http.StatusOK, "venues.html", gin.H{"Title": "Venues", "Areas": areas})
}

// DeleteVenueForm answers the POST form on the venue page.
func DeleteVenueForm(c *gin.Context) {
	name, ok := deleteVenue(c)
	if !ok {
		return
	}
	helpers.FlashNext(c, "Venue "+name+" was successfully deleted!")
	c.Redirect(http.StatusSeeOther, "/venues")
}

func deleteVenue(c *gin.Context) (string, bool) {
	id, ok := parseID(c, "Venue")
	if !ok {
		return "", false
	}
	st, ok := getStore(c)
	if !ok {
		return "", false
	}

	venue, err := st.DeleteVenue(c.Request.Context(), id)
	if err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Venue %d", id), "deleted")
		return "", false
	}
	return venue.Name, true
}
