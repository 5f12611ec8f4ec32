package helpers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStringToUint(t *testing.T) {
	n, err := StringToUint(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, uint(42), n)

	for _, bad := range []string{"", "-1", "abc", "1.5"} {
		_, err := StringToUint(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseStartTime(t *testing.T) {
	exp := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	cases := []string{
		"2035-04-01 20:00:00",
		"2035-04-01T20:00",
		"2035-04-01T20:00:00",
		"2035-04-01 20:00",
		"2035-04-01T20:00:00Z",
		"2035-04-01T22:00:00+02:00",
	}
	for _, s := range cases {
		got, err := ParseStartTime(s)
		require.NoError(t, err, s)
		assert.True(t, exp.Equal(got), "%s -> %s", s, got)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := ParseStartTime("next friday")
	assert.Error(t, err)
	_, err = ParseStartTime("")
	assert.Error(t, err)
}

func TestParseCheckbox(t *testing.T) {
	for _, s := range []string{"y", "Yes", "on", "true", "1", " TRUE "} {
		assert.True(t, ParseCheckbox(s), s)
	}
	for _, s := range []string{"", "n", "off", "false", "0"} {
		assert.False(t, ParseCheckbox(s), s)
	}
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(
		`{{define "404.html"}}404:{{.Flash}}{{end}}` +
			`{{define "409.html"}}409:{{.Flash}}{{end}}` +
			`{{define "500.html"}}500:{{.Flash}}{{end}}` +
			`{{define "page.html"}}page:{{.Flash}}{{end}}`,
	)))
	return r
}

func TestRespondWithErrorRendersPage(t *testing.T) {
	r := newEngine()
	r.GET("/missing", func(c *gin.Context) { RespondWithError(c, http.StatusNotFound, "Venue not found.") })
	r.GET("/conflict", func(c *gin.Context) { RespondWithError(c, http.StatusConflict, "busy") })
	r.GET("/broken", func(c *gin.Context) { RespondWithError(c, http.StatusInternalServerError, "boom") })

	cases := []struct {
		path string
		code int
		body string
	}{
		{"/missing", 404, "404:Venue not found."},
		{"/conflict", 409, "409:busy"},
		{"/broken", 500, "500:boom"},
	}
	for _, c := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, c.path, nil))
		assert.Equal(t, c.code, w.Code)
		assert.Equal(t, c.body, w.Body.String())
	}
}

func TestRespondWithErrorJSON(t *testing.T) {
	r := newEngine()
	r.GET("/missing", func(c *gin.Context) { RespondWithError(c, http.StatusNotFound, "Venue not found.") })

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Not Found","message":"Venue not found."}`, w.Body.String())
}

func TestFlashAcrossRedirect(t *testing.T) {
	r := newEngine()
	r.POST("/save", func(c *gin.Context) {
		FlashNext(c, "Venue The Hop was successfully updated!")
		c.Redirect(http.StatusSeeOther, "/page")
	})
	r.GET("/page", func(c *gin.Context) { Render(c, http.StatusOK, "page.html", nil) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/save", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "page:Venue The Hop was successfully updated!", w.Body.String())

	cleared := w.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.True(t, cleared[0].MaxAge < 0)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/page", nil))
	assert.Equal(t, "page:", w.Body.String())
}

func TestFlashSameRequestWins(t *testing.T) {
	r := newEngine()
	r.GET("/page", func(c *gin.Context) {
		Flash(c, "now")
		Render(c, http.StatusOK, "page.html", gin.H{})
	})

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "later"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "page:now", w.Body.String())
}
