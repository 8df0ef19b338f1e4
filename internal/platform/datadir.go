package platform

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/aretw0/noted/pkg/core"
)

var errNoHome = errors.New("home directory is not set")

// DataDir returns the per-user application data directory of the platform:
//
//   - Linux and other Unix: $XDG_DATA_HOME (when absolute) or ~/.local/share
//   - macOS: ~/Library/Application Support
//   - Windows: %APPDATA%
//
// It never guesses: when the location cannot be determined the returned
// error wraps core.ErrNoDataDir.
func DataDir(env Env) (string, error) {
	switch env.GOOS {
	case "windows":
		if appData := env.getenv("APPDATA"); appData != "" {
			return appData, nil
		}
		return "", fmt.Errorf("%w: APPDATA is not set", core.ErrNoDataDir)

	case "darwin", "ios":
		home, err := env.home()
		if err != nil {
			return "", fmt.Errorf("%w: %v", core.ErrNoDataDir, err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil

	case "plan9", "js", "wasip1":
		return "", fmt.Errorf("%w: unsupported platform %s", core.ErrNoDataDir, env.GOOS)

	default:
		// XDG requires absolute paths; relative values are ignored.
		if xdg := env.getenv("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
			return xdg, nil
		}
		home, err := env.home()
		if err != nil {
			return "", fmt.Errorf("%w: %v", core.ErrNoDataDir, err)
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}
