package handlers

import (
	"fmt"
	"net/http"

	"github.com/farellandr/gigbook/internal/helpers"
	"github.com/gin-gonic/gin"
)

func ListArtists(c *gin.Context) {
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	artists, err := svc.Artists(c.Request.Context())
	if err != nil {
		respondWithStoreError(c, err, "Artists", "listed")
		return
	}
	helpers.Render(c, http.StatusOK, "artists.html", gin.H{"Title": "Artists", "Artists": artists})
}

func SearchArtists(c *gin.Context) {
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	search, err := svc.SearchArtists(c.Request.Context(), c.PostForm("search_term"))
	if err != nil {
		respondWithStoreError(c, err, "Artists", "searched")
		return
	}
	helpers.Render(c, http.StatusOK, "search_artists.html", gin.H{"Title": "Artists", "Search": search})
}

func GetArtist(c *gin.Context) {
	id, ok := parseID(c, "Artist")
	if !ok {
		return
	}
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	artist, err := svc.ArtistDetail(c.Request.Context(), id)
	if err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Artist %d", id), "shown")
		return
	}
	helpers.Render(c, http.StatusOK, "show_artist.html", gin.H{"Title": artist.Name, "Artist": artist})
}

func NewArtistForm(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "new_artist.html", gin.H{"Title": "New artist", "Form": ArtistForm{}})
}

func CreateArtist(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Artist could not be listed. Name, city and state are required.")
		helpers.Render(c, http.StatusBadRequest, "new_artist.html", gin.H{"Title": "New artist", "Form": form})
		return
	}
	st, ok := getStore(c)
	if !ok {
		return
	}

	artist := form.Artist()
	if err := st.CreateArtist(c.Request.Context(), artist, form.Genres); err != nil {
		respondWithStoreError(c, err, "Artist "+artist.Name, "listed")
		return
	}

	helpers.Flash(c, "Artist "+artist.Name+" was successfully listed!")
	helpers.Render(c, http.StatusOK, "home.html", gin.H{})
}

func EditArtistForm(c *gin.Context) {
	id, ok := parseID(c, "Artist")
	if !ok {
		return
	}
	st, ok := getStore(c)
	if !ok {
		return
	}

	artist, err := st.GetArtist(c.Request.Context(), id)
	if err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Artist %d", id), "loaded")
		return
	}
	helpers.Render(c, http.StatusOK, "edit_artist.html", gin.H{"Title": "Edit artist", "ID": id, "Form": artistForm(artist)})
}

func UpdateArtist(c *gin.Context) {
	id, ok := parseID(c, "Artist")
	if !ok {
		return
	}

	st, ok := getStore(c)
	if !ok {
		return
	}
	if _, err := st.GetArtist(c.Request.Context(), id); err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Artist %d", id), "updated")
		return
	}

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Artist could not be updated. Name, city and state are required.")
		helpers.Render(c, http.StatusBadRequest, "edit_artist.html", gin.H{"Title": "Edit artist", "ID": id, "Form": form})
		return
	}

	artist := form.Artist()
	if err := st.UpdateArtist(c.Request.Context(), id, artist, form.Genres); err != nil {
		respondWithStoreError(c, err, "Artist "+form.Name, "updated")
		return
	}

	helpers.FlashNext(c, "Artist "+artist.Name+" was successfully updated!")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist answers DELETE /artists/:id by rendering the artist list.
func DeleteArtist(c *gin.Context) {
	name, ok := deleteArtist(c)
	if !ok {
		return
	}
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	artists, err := svc.Artists(c.Request.Context())
	if err != nil {
		respondWithStoreError(c, err, "Artists", "listed")
		return
	}
	helpers.Flash(c, "Artist "+name+" was successfully deleted!")
	helpers.Render(c, http.StatusOK, "artists.html", gin.H{"Title": "Artists", "Artists": artists})
}

func DeleteArtistForm(c *gin.Context) {
	name, ok := deleteArtist(c)
	if !ok {
		return
	}
	helpers.FlashNext(c, "Artist "+name+" was successfully deleted!")
	c.Redirect(http.StatusSeeOther, "/artists")
}

func deleteArtist(c *gin.Context) (string, bool) {
	id, ok := parseID(c, "Artist")
	if !ok {
		return "", false
	}
	st, ok := getStore(c)
	if !ok {
		return "", false
	}

	artist, err := st.DeleteArtist(c.Request.Context(), id)
	if err != nil {
		respondWithStoreError(c, err, fmt.Sprintf("Artist %d", id), "deleted")
		return "", false
	}
	return artist.Name, true
}
