package logging

import (
	"fmt"
	"log"
	"os"
)

// Logger wraps the standard library logger with structured logging methods
type Logger struct {
	out *log.Logger
	err *log.Logger
}

// New creates a new Logger instance writing info to stdout and errors to stderr
func New() *Logger {
	return &Logger{
		out: log.New(os.Stdout, "", log.LstdFlags),
		err: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Info logs an informational message with structured key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.out.Println(format("INFO", msg, keysAndValues...))
}

// Warn logs a warning message with structured key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.out.Println(format("WARN", msg, keysAndValues...))
}

// Error logs an error message with structured key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.err.Println(format("ERROR", msg, keysAndValues...))
}

// format renders a log line with key-value pairs
// keysAndValues should be pairs like: "key1", value1, "key2", value2
func format(level, msg string, keysAndValues ...interface{}) string {
	output := fmt.Sprintf("[%s] %s", level, msg)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		output += fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1])
	}

	return output
}
