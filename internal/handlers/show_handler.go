package handlers

import (
	"net/http"

	"github.com/farellandr/gigbook/internal/helpers"
	"github.com/gin-gonic/gin"
)

func ListShows(c *gin.Context) {
	svc, ok := getCatalog(c)
	if !ok {
		return
	}

	shows, err := svc.Shows(c.Request.Context())
	if err != nil {
		respondWithStoreError(c, err, "Shows", "listed")
		return
	}
	helpers.Render(c, http.StatusOK, "shows.html", gin.H{"Title": "Shows", "Shows": shows})
}

func NewShowForm(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "new_show.html", gin.H{"Title": "New show", "Form": ShowForm{}})
}

func CreateShow(c *gin.Context) {
	var form ShowForm
	if err := c.ShouldBind(&form); err != nil {
		helpers.Flash(c, "Show could not be listed. Artist, venue and start time are required.")
		helpers.Render(c, http.StatusBadRequest, "new_show.html", gin.H{"Title": "New show", "Form": form})
		return
	}
	show, problem := form.Show()
	if problem != "" {
		helpers.Flash(c, "Show could not be listed. "+problem)
		helpers.Render(c, http.StatusBadRequest, "new_show.html", gin.H{"Title": "New show", "Form": form})
		return
	}
	st, ok := getStore(c)
	if !ok {
		return
	}

	if err := st.CreateShow(c.Request.Context(), show); err != nil {
		if statusFor(err) == http.StatusBadRequest {
			helpers.Flash(c, "Show could not be listed: "+err.Error())
			helpers.Render(c, http.StatusBadRequest, "new_show.html", gin.H{"Title": "New show", "Form": form})
			return
		}
		respondWithStoreError(c, err, "Show", "listed")
		return
	}

	helpers.Flash(c, "Show was successfully listed!")
	helpers.Render(c, http.StatusOK, "home.html", gin.H{})
}
