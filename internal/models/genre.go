package models

import "strings"

type Genre struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:120;not null;uniqueIndex"`
}

// NormalizeGenres turns submitted genre values into an ordered set of tags.
// Each value may itself be a comma separated list. Blank tags are dropped and
// duplicates keep their first position.
func NormalizeGenres(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	var tags []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			tag := strings.TrimSpace(part)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

func GenreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}
