package platform

import (
	"path/filepath"

	"github.com/aretw0/noted/pkg/core"
)

const (
	// StoreEnvVar names the variable that overrides the store directory.
	StoreEnvVar = "NOTED_STORE"
	// AppDir is the subdirectory of the platform data directory used by default.
	AppDir = "noted"
)

// ResolveStorePath determines the directory that holds daily notes.
// A non-empty NOTED_STORE is returned verbatim, without checking that it
// exists. Otherwise the platform data directory joined with AppDir is used.
// Nothing is created on disk.
func ResolveStorePath(env Env) (string, error) {
	if override := env.getenv(StoreEnvVar); override != "" {
		return override, nil
	}

	dataDir, err := DataDir(env)
	if err != nil {
		return "", &core.Error{Kind: core.KindConfig, Err: err}
	}
	return filepath.Join(dataDir, AppDir), nil
}
