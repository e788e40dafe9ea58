// Package logging initialises the global zerolog logger with
// lumberjack rotation in the XDG data directory.
package logging

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/framewright/pipeconf/internal/storage"
)

const (
	maxLogSizeMB  = 10 // Maximum size in MB before rotation
	maxLogBackups = 3  // Number of old files to keep
	maxLogAgeDays = 30 // Maximum age in days before deletion
)

// Init initialises the global logger, writing to the rotated log file
// under the XDG data directory.
func Init(fs afero.Fs, debug bool) error {
	manager := storage.New(fs)
	logFile, err := manager.GetLogPath()
	if err != nil {
		return fmt.Errorf("failed to get log path: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}

	log.Logger = zerolog.New(lj).With().Timestamp().Logger()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	return nil
}

// InitTest initialises the global logger for tests (output discarded).
func InitTest() {
	log.Logger = zerolog.New(io.Discard)
}
