package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashKey    = "flash"
	flashCookie = "gigbook_flash"
)

// Flash shows msg on the page rendered by the current request.
func Flash(c *gin.Context, msg string) {
	c.Set(flashKey, msg)
}

// FlashNext keeps msg for the next page, across a redirect.
func FlashNext(c *gin.Context, msg string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, msg, 60, "/", "", false, true)
}

// PopFlash returns the pending message, preferring one set in this request,
// and clears a message carried by cookie.
func PopFlash(c *gin.Context) string {
	if msg := c.GetString(flashKey); msg != "" {
		return msg
	}
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}

// Render renders a page template with the pending flash message added to
// data under "Flash".
func Render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = PopFlash(c)
	}
	c.HTML(code, name, data)
}
