// Package web holds the page templates of the site, embedded in the binary.
package web

import (
	"embed"
	"html/template"
	"slices"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	LayoutFull   = "Monday January, 2, 2006 at 3:04PM"
	LayoutMedium = "Mon 01, 02, 2006 3:04PM"
)

// GenreChoices are offered as checkboxes on the venue and artist forms.
// Stored tags are not limited to this list.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz", "Musical Theatre",
	"Pop", "Punk", "R&B", "Reggae", "Rock n Roll", "Soul", "Other",
}

// FormatDateTime renders t with the "full" or "medium" layout. Any other
// format string is used as a Go layout as is.
func FormatDateTime(t time.Time, format string) string {
	switch format {
	case "full", "":
		format = LayoutFull
	case "medium":
		format = LayoutMedium
	}
	return t.Format(format)
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": FormatDateTime,
		"join":     strings.Join,
		"has":      slices.Contains[[]string],
		"genres":   func() []string { return GenreChoices },
	}
}

// Templates parses every page. Each template is named after its file,
// e.g. "show_venue.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

func MustTemplates() *template.Template {
	return template.Must(Templates())
}
