package core

import "log"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdLogger writes through the standard library logger
type StdLogger struct{}

// NewStdLogger creates a logger backed by the default log package
func NewStdLogger() *StdLogger {
	return &StdLogger{}
}

// Printf implements the Logger interface
func (l *StdLogger) Printf(format string, args ...interface{}) {
	log.Printf(format, args...)
}
