package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger is a level-prefixed logger over the standard log package.
type Logger struct {
	mu     sync.Mutex
	file   *os.File
	out    io.Writer
	logger *log.Logger
}

// NewLogger creates a logger that appends to the file at filePath.
func NewLogger(filePath string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := NewWriterLogger(file)
	l.file = file
	return l, nil
}

// NewWriterLogger creates a logger that writes to w.
func NewWriterLogger(w io.Writer) *Logger {
	return &Logger{
		out:    w,
		logger: log.New(w, "", log.LstdFlags),
	}
}

// Writer returns the destination, for handlers that log on their own.
func (l *Logger) Writer() io.Writer { return l.out }

func (l *Logger) print(prefix, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetPrefix(prefix)
	l.logger.Println(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) { l.print("INFO: ", msg) }

// Warn logs a warning message
func (l *Logger) Warn(msg string) { l.print("WARN: ", msg) }

// Error logs an error message
func (l *Logger) Error(msg string) { l.print("ERROR: ", msg) }

func (l *Logger) Infof(format string, args ...interface{}) { l.Info(fmt.Sprintf(format, args...)) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.Warn(fmt.Sprintf(format, args...)) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.Error(fmt.Sprintf(format, args...)) }

// Println logs at error level. It lets the logger serve as the panic logger of
// gorilla/handlers.RecoveryHandler.
func (l *Logger) Println(args ...interface{}) {
	l.Error(fmt.Sprint(args...))
}

// Close closes the log file, if the logger owns one.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
