package fs

import (
	"os"

	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Path      string `json:"path"`
	Exists    bool   `json:"exists"`
	MustExist bool   `json:"must_exist"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	info, err := os.Stat(r.path)
	return RepositoryState{
		Path:      r.path,
		Exists:    err == nil && info.IsDir(),
		MustExist: r.config.MustExist,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
