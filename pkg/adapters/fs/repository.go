package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/noted/pkg/core"
)

const (
	// DirPerm is the mode used when creating the store directory and its parents.
	DirPerm os.FileMode = 0o755
	// FilePerm is the mode of a freshly created note.
	FilePerm os.FileMode = 0o644
)

// Repository implements core.Repository on a local directory.
type Repository struct {
	path   string
	config Config
	logger *slog.Logger
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path      string
	MustExist bool // refuse to create a missing store
	Logger    *slog.Logger
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		path:   config.Path,
		config: config,
		logger: logger,
	}
}

// Path returns the store directory.
func (r *Repository) Path() string {
	return r.path
}

// Initialize creates the store directory and any missing parents.
// It is a no-op when the directory already exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.config.MustExist {
		info, err := os.Stat(r.path)
		if err != nil {
			return &core.Error{Kind: core.KindDirectory, Path: r.path, Err: err}
		}
		if !info.IsDir() {
			return &core.Error{Kind: core.KindDirectory, Path: r.path, Err: fmt.Errorf("not a directory")}
		}
		return nil
	}

	if err := os.MkdirAll(r.path, DirPerm); err != nil {
		return &core.Error{Kind: core.KindDirectory, Path: r.path, Err: unwrapPathError(err, r.path)}
	}
	r.logger.Debug("store directory ensured", "path", r.path)
	return nil
}

// CreateIfAbsent creates an empty file called name inside the store unless
// one already exists. The store directory must exist.
func (r *Repository) CreateIfAbsent(ctx context.Context, name string) (string, bool, error) {
	path := filepath.Join(r.path, name)
	if err := ctx.Err(); err != nil {
		return path, false, err
	}

	created, err := createExclusive(path, FilePerm)
	if err != nil {
		return path, false, &core.Error{Kind: core.KindFile, Path: path, Err: err}
	}
	return path, created, nil
}

// unwrapPathError strips the *os.PathError wrapper for path so the path is
// not repeated when the error is rendered by core.Error. Errors about other
// paths (e.g. an ancestor directory) keep it.
func unwrapPathError(err error, path string) error {
	if pe, ok := err.(*os.PathError); ok && pe.Path == path {
		return fmt.Errorf("%s: %w", pe.Op, pe.Err)
	}
	return err
}
