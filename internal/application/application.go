package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "repovault"

	// ConfigFileName is the INI file read from the application directory
	ConfigFileName = AppName + ".ini"

	// EnvPrefix prefixes every environment override
	EnvPrefix = "REPOVAULT_"
)

// Version is overridden at build time with -ldflags.
var Version = "0.1.0-dev"

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the repovault configuration directory path.
// Linux: ~/.config/repovault (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\repovault (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	return appDir, errDir
}

// DefaultConfigPath returns the path of the INI file in the application directory.
func DefaultConfigPath() (string, error) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ConfigFileName), nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}
