package handlers

import (
	"errors"
	"net/http"

	"github.com/farellandr/gigbook/internal/catalog"
	"github.com/farellandr/gigbook/internal/helpers"
	"github.com/farellandr/gigbook/internal/middleware"
	"github.com/farellandr/gigbook/internal/store"
	"github.com/gin-gonic/gin"
)

func getStore(c *gin.Context) (*store.Store, bool) {
	st := middleware.GetStore(c)
	if st == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return st, true
}

func getCatalog(c *gin.Context) (*catalog.Service, bool) {
	svc := middleware.GetCatalog(c)
	if svc == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return nil, false
	}
	return svc, true
}

// parseID reads the :id path parameter. Anything that is not a positive
// integer cannot name a row, so it answers 404.
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := helpers.StringToUint(c.Param("id"))
	if err != nil || id == 0 {
		helpers.RespondWithError(c, http.StatusNotFound, entity+" not found.")
		return 0, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondWithStoreError renders the page for a failed operation on an
// entity. what names the row, e.g. "Venue The Hop" or "Venue 4". Server side
// failures are logged and recorded on the context for the access log.
func respondWithStoreError(c *gin.Context, err error, what, action string) {
	status := statusFor(err)

	var message string
	switch status {
	case http.StatusNotFound:
		message = what + " was not found."
	case http.StatusConflict:
		message = what + " could not be " + action + " while it still has shows."
	case http.StatusBadRequest:
		message = what + " could not be " + action + ": " + err.Error()
	default:
		message = "An error occurred. " + what + " could not be " + action + "."
		_ = c.Error(err)
		if log := middleware.GetLogger(c); log != nil {
			log.Error("%s could not be %s: %v", what, action, err)
		}
	}
	helpers.RespondWithError(c, status, message)
}
