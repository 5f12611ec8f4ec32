package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func errorPage(code int) string {
	switch code {
	case http.StatusNotFound:
		return "404.html"
	case http.StatusConflict:
		return "409.html"
	default:
		return "500.html"
	}
}

// RespondWithError renders the error page for statusCode and flashes
// customMessage on it. Clients asking for JSON get an ErrorResponse.
func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.AbortWithStatusJSON(statusCode, ErrorResponse{
			Error:   HTTPStatusText(statusCode),
			Message: customMessage,
		})
		return
	}

	Flash(c, customMessage)
	Render(c, statusCode, errorPage(statusCode), gin.H{
		"Status":     statusCode,
		"StatusText": HTTPStatusText(statusCode),
	})
	c.Abort()
}
