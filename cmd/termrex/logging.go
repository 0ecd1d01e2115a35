package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/shvbsle/termrex/internal/log"
)

// getLogPath picks the log file: log.file from the config when it can be
// created, else termrex.log in the XDG state directory.
func getLogPath(customPath string) (string, error) {
	if customPath != "" {
		if strings.HasPrefix(customPath, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				customPath = filepath.Join(home, customPath[2:])
			}
		}

		if err := os.MkdirAll(filepath.Dir(customPath), 0o755); err == nil {
			f, err := os.OpenFile(customPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
			if err == nil {
				_ = f.Close()
				return customPath, nil
			}
		}

		fmt.Fprintf(os.Stderr, "Warning: log file %s is not writable, using the state directory\n", customPath)
	}

	logPath, err := xdg.StateFile("termrex/termrex.log")
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return logPath, nil
}

// setupLogging points the default logger at the log file. The game owns the
// terminal, so nothing is logged to stdout or stderr.
func setupLogging(level slog.Level, customPath string) (*os.File, error) {
	logPath, err := getLogPath(customPath)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}

	log.SetDefault(log.NewLogger(&log.LoggerConfiguration{LogLevel: level, Writer: f}))
	log.G().Info("termrex logging initialized", "log_path", logPath, "log_level", level.String())
	return f, nil
}
