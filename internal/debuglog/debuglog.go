// Package debuglog writes diagnostics to a file in the data directory so
// nothing ever prints over the live terminal UI.
package debuglog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	enabled bool
)

// Init opens dataDir/debug.log for appending. An empty dataDir disables
// logging entirely.
func Init(dataDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if dataDir == "" {
		enabled = false
		return nil
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		enabled = false
		return err
	}
	f, err := os.OpenFile(filepath.Join(dataDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		enabled = false
		return err
	}
	logFile = f
	enabled = true
	return nil
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close() //nolint:errcheck
		logFile = nil
	}
	enabled = false
}

// Log writes one timestamped line.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}
	fmt.Fprintf(logFile, "[%s] %s\n", time.Now().Format("2006-01-02 15:04:05"), fmt.Sprintf(format, args...))
}

// Error logs a non-nil error with context.
func Error(context string, err error) {
	if err == nil {
		return
	}
	Log("ERROR [%s]: %v", context, err)
}
