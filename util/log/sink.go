package log

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
)

// Rotation limits for the release log file.
const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 14
)

// Dir returns the directory release builds log into: the user cache dir on
// windows, a dot directory in the home dir elsewhere.
func Dir() (string, error) {
	if runtime.GOOS == "windows" {
		cache, err := os.UserCacheDir()
		if err != nil {
			return "", fmt.Errorf("user cache dir: %w", err)
		}
		return filepath.Join(cache, config.LogWinSubDir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("user home dir: %w", err)
	}
	return filepath.Join(home, config.LogSubDir), nil
}

// newRotatingWriter creates dir and returns a size-rotated writer for the
// application log file inside it.
func newRotatingWriter(dir string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, config.AppName+config.LogExt),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}, nil
}
