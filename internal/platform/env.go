package platform

import (
	"os"
	"runtime"
)

// Env is the slice of process state the store resolver reads.
// Only the outermost entry point should build one from the real process;
// tests supply their own.
type Env struct {
	GOOS        string
	LookupEnv   func(key string) (string, bool)
	UserHomeDir func() (string, error)
}

// OSEnv returns an Env backed by the running process.
func OSEnv() Env {
	return Env{
		GOOS:        runtime.GOOS,
		LookupEnv:   os.LookupEnv,
		UserHomeDir: os.UserHomeDir,
	}
}

func (e Env) getenv(key string) string {
	if e.LookupEnv == nil {
		return ""
	}
	v, _ := e.LookupEnv(key)
	return v
}

func (e Env) home() (string, error) {
	if e.UserHomeDir == nil {
		return "", errNoHome
	}
	home, err := e.UserHomeDir()
	if err != nil {
		return "", err
	}
	if home == "" {
		return "", errNoHome
	}
	return home, nil
}
