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
	AppName = "grab"

	// ConfigFileName is the settings file inside the application directory
	ConfigFileName = "config.ini"

	// RegistryFileName is the clone registry inside the application directory
	RegistryFileName = "registry.db"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the grab configuration directory path,
// creating it on first use.
// Linux: ~/.config/grab (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\grab (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, errDir
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		// Windows: use AppData\Local (via UserCacheDir)
		baseDir, err = os.UserCacheDir()
	default:
		// Linux/others: use ~/.config (via UserConfigDir)
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)

	if err := os.MkdirAll(appDir, 0o755); err != nil {
		errDir = fmt.Errorf("failed to create %s: %w", appDir, err)
	}
}
