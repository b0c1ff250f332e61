// Package application carries the app identity and the per-user data
// directory everything on disk lives under.
package application

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "frontdesk"

	// AppExeName is the executable name (without extension)
	AppExeName = "frontdesk"

	// AppExeNameWindows is the executable name on Windows
	AppExeNameWindows = "frontdesk.exe"
)

var (
	dirOnce sync.Once
	dataDir string
	dirErr  error
)

// DataDir returns the frontdesk directory under the user's config
// root, creating it on first use. The session store, the config file
// and the console log all live here. Resolution happens once; later
// calls return the cached result.
func DataDir() (string, error) {
	dirOnce.Do(func() {
		base, err := os.UserConfigDir()
		if err != nil {
			dirErr = fmt.Errorf("resolving user config dir: %w", err)

			return
		}

		dataDir = filepath.Join(base, AppName)
		dirErr = os.MkdirAll(dataDir, 0o755)
	})

	return dataDir, dirErr
}
