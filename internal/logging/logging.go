// internal/logging/logging.go
// Package logging routes harness diagnostics to stderr and an optional log
// file. Stdout is reserved for report output so results can be piped.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fatih/color"
)

var (
	mu      sync.Mutex
	logFile *os.File

	warnPrefix = color.New(color.FgYellow, color.Bold).Sprint("Warning:")
)

// Init points the standard logger at stderr plus, when logPath is non-empty,
// an append-mode log file. Parent directories are created as needed.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file, if one was opened, and restores the default
// logger output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent writes a formatted diagnostic line.
func LogEvent(format string, args ...any) {
	log.Println(fmt.Sprintf(format, args...))
}

// Warnf writes a formatted diagnostic line with a highlighted warning
// prefix. Used for recoverable conditions such as a missing candidate
// binary or unparseable candidate output.
func Warnf(format string, args ...any) {
	log.Println(warnPrefix + " " + fmt.Sprintf(format, args...))
}
