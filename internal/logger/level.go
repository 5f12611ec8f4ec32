package logger

import (
	"strings"

	"github.com/fatih/color"
)

type LogLevel int

const (
	Debug LogLevel = iota
	Info
	Warn
	Error
	Fatal
)

func Parse(level string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG", "TRACE":
		return Debug
	case "WARN", "WARNING":
		return Warn
	case "ERROR":
		return Error
	case "FATAL":
		return Fatal
	default:
		return Info
	}
}

func (l LogLevel) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

var levelColors = map[LogLevel]*color.Color{
	Debug: color.New(color.FgHiBlack),
	Info:  color.New(color.FgCyan),
	Warn:  color.New(color.FgYellow),
	Error: color.New(color.FgRed),
	Fatal: color.New(color.FgHiRed, color.Bold),
}

// Colorize wraps s in the escape codes for level. color.NoColor is ignored
// here; the caller decides whether the output is a terminal.
func (l LogLevel) Colorize(s string) string {
	c, ok := levelColors[l]
	if !ok {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}
