package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/farellandr/gigbook/internal/helpers"
	"github.com/farellandr/gigbook/internal/middleware"
	"github.com/gin-gonic/gin"
)

func Home(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "home.html", gin.H{})
}

func NotFound(c *gin.Context) {
	helpers.RespondWithError(c, http.StatusNotFound, "The page you are looking for does not exist.")
}

// Recovery renders the 500 page for a handler that panicked.
func Recovery(c *gin.Context, recovered any) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
	}
	helpers.RespondWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
}

// Health pings the database. It always answers JSON.
func Health(c *gin.Context) {
	st := middleware.GetStore(c)
	if st == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := st.Health(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
