package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/farellandr/gigbook/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerService interface {
	Debug(msg string, args ...any)

	Info(msg string, args ...any)

	Warn(msg string, args ...any)

	Error(msg string, args ...any)

	Fatal(msg string, args ...any)

	Named(name string) LoggerService

	Close() error
}

type LoggerServiceImpl struct {
	cfg    config.LogConfig
	name   string
	level  LogLevel
	color  bool
	mu     *sync.Mutex
	writer io.Writer
	closer io.Closer
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Service   string `json:"service,omitempty"`
	Message   string `json:"message"`
}

func NewLoggerService(name string, cfg config.LogConfig) LoggerService {
	impl := &LoggerServiceImpl{
		cfg:   cfg,
		name:  name,
		level: Parse(cfg.Level),
		mu:    &sync.Mutex{},
	}

	impl.setupWriter()
	return impl
}

// NewWriterLogger logs to w only. It is used by tests and by commands that
// must not touch the log file.
func NewWriterLogger(name string, cfg config.LogConfig, w io.Writer) LoggerService {
	return &LoggerServiceImpl{
		cfg:    cfg,
		name:   name,
		level:  Parse(cfg.Level),
		mu:     &sync.Mutex{},
		writer: w,
	}
}

func (impl *LoggerServiceImpl) setupWriter() {
	var writers []io.Writer

	if !impl.cfg.NoTerminal {
		writers = append(writers, os.Stdout)
		impl.color = !impl.cfg.NoColor && !impl.cfg.JSON
	}

	if impl.cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   impl.cfg.File,
			MaxSize:    impl.cfg.Rotation.MaxSize,
			MaxBackups: impl.cfg.Rotation.MaxBackups,
			MaxAge:     impl.cfg.Rotation.MaxAge,
			Compress:   impl.cfg.Rotation.Compress,
		}
		writers = append(writers, fileWriter)
		impl.closer = fileWriter
		// escape codes would end up in the file as well
		impl.color = false
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}

	impl.writer = io.MultiWriter(writers...)
}

func (impl *LoggerServiceImpl) log(level LogLevel, msg string, args ...any) {
	if level < impl.level {
		return
	}

	timeFormat := impl.cfg.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	timestamp := time.Now().Format(timeFormat)
	formattedMsg := msg
	if len(args) > 0 {
		formattedMsg = fmt.Sprintf(msg, args...)
	}

	var line string
	if impl.cfg.JSON {
		entry := logEntry{
			Timestamp: timestamp,
			Level:     level.String(),
			Service:   impl.name,
			Message:   formattedMsg,
		}

		jsonBytes, _ := json.Marshal(entry)
		line = string(jsonBytes)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if impl.name != "" {
			prefix = fmt.Sprintf("%s [%s]", prefix, impl.name)
		}
		line = prefix + " " + formattedMsg
		if impl.color {
			line = level.Colorize(line)
		}
	}

	impl.mu.Lock()
	fmt.Fprintln(impl.writer, line)
	impl.mu.Unlock()

	if level == Fatal {
		os.Exit(1)
	}
}

func (impl *LoggerServiceImpl) Debug(msg string, args ...any) {
	impl.log(Debug, msg, args...)
}

func (impl *LoggerServiceImpl) Info(msg string, args ...any) {
	impl.log(Info, msg, args...)
}

func (impl *LoggerServiceImpl) Warn(msg string, args ...any) {
	impl.log(Warn, msg, args...)
}

func (impl *LoggerServiceImpl) Error(msg string, args ...any) {
	impl.log(Error, msg, args...)
}

func (impl *LoggerServiceImpl) Fatal(msg string, args ...any) {
	impl.log(Fatal, msg, args...)
}

func (impl *LoggerServiceImpl) Named(name string) LoggerService {
	if impl.name != "" {
		name = fmt.Sprintf("%s/%s", impl.name, name)
	}
	return &LoggerServiceImpl{
		cfg:    impl.cfg,
		name:   name,
		level:  impl.level,
		color:  impl.color,
		mu:     impl.mu,
		writer: impl.writer, // Share the same writer
	}
}

// Close releases the rotating log file, if any. Named loggers share the
// parent's file and never close it.
func (impl *LoggerServiceImpl) Close() error {
	if impl.closer == nil {
		return nil
	}
	return impl.closer.Close()
}
