package noted

import (
	"context"
	"errors"

	"github.com/aretw0/noted/pkg/adapters/fs"
	"github.com/aretw0/noted/pkg/core"
)

// New creates a daily-note service for the store at path.
// The path is used as given; it is created on the first CreateToday call.
//
//	svc, err := noted.New(path, noted.WithLogger(slog.Default()))
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		if path == "" {
			return nil, &core.Error{Kind: core.KindConfig, Err: errors.New("store path is empty")}
		}
		repo = fs.NewRepository(fs.Config{
			Path:      path,
			MustExist: o.mustExist,
			Logger:    o.logger,
		})
	}

	return core.NewService(repo, o.clock, o.logger), nil
}

// CreateToday is a shortcut for New followed by Service.CreateToday.
func CreateToday(ctx context.Context, path string, opts ...Option) (core.Note, error) {
	svc, err := New(path, opts...)
	if err != nil {
		return core.Note{}, err
	}
	return svc.CreateToday(ctx)
}
