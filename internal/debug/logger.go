package debug

import (
	"io"
	"log"
	"os"
)

const DefaultPath = "debug.log"

// Logger writes through the standard logger only when debug mode is on.
// Enabling it redirects log output to a file so it does not fight the
// terminal UI for the screen.
type Logger struct {
	enabled bool
	file    io.Closer
}

func NewLogger(enabled bool, path string) *Logger {
	l := &Logger{enabled: enabled}
	if enabled {
		if path == "" {
			path = DefaultPath
		}
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			log.SetOutput(logFile)
			l.file = logFile
		}
		log.Printf("=== DEBUG MODE ENABLED ===")
	}
	return l
}

// EnabledFromEnv reads the DEBUG variable the way the rest of the app does.
func EnabledFromEnv() bool {
	v := os.Getenv("DEBUG")
	return v == "1" || v == "true"
}

func (d *Logger) IsEnabled() bool {
	return d != nil && d.enabled
}

func (d *Logger) Printf(format string, args ...interface{}) {
	if d.IsEnabled() {
		log.Printf(format, args...)
	}
}

func (d *Logger) Println(args ...interface{}) {
	if d.IsEnabled() {
		log.Println(args...)
	}
}

// Close restores stderr output and closes the debug file.
func (d *Logger) Close() error {
	if d == nil || d.file == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := d.file.Close()
	d.file = nil
	return err
}
