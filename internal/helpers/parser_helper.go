package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func StringToUint(s string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// ParseStartTime accepts the layouts the show form and datetime-local inputs
// produce, plus RFC3339. Values without a zone are read as UTC.
func ParseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid start time %q", s)
}

// ParseCheckbox reads an HTML checkbox value. Absent boxes are false.
func ParseCheckbox(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}
