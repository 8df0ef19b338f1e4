package core

import (
	"context"
	"io"
	"log/slog"
)

// Service handles the business logic for daily notes.
type Service struct {
	repo   Repository
	clock  Clock
	logger *slog.Logger
}

// NewService creates a new Service.
// A nil clock falls back to SystemClock, a nil logger discards output.
func NewService(repo Repository, clock Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = SystemClock
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{repo: repo, clock: clock, logger: logger}
}

// StorePath returns the directory the service writes to.
func (s *Service) StorePath() string {
	return s.repo.Path()
}

// TodayPath returns where today's note lives, without touching the filesystem.
func (s *Service) TodayPath() string {
	return DailyNotePath(s.repo.Path(), s.clock())
}

// CreateToday ensures the store exists and creates today's note if it is missing.
// An existing note is left as is.
func (s *Service) CreateToday(ctx context.Context) (Note, error) {
	now := s.clock()
	note := Note{Date: now, Path: DailyNotePath(s.repo.Path(), now)}

	if err := s.repo.Initialize(ctx); err != nil {
		return note, err
	}
	s.logger.Debug("store ready", "path", s.repo.Path())

	path, created, err := s.repo.CreateIfAbsent(ctx, NoteFileName(now))
	if err != nil {
		return note, err
	}
	note.Path = path
	note.Created = created

	if created {
		s.logger.Info("daily note created", "path", path)
	} else {
		s.logger.Debug("daily note already exists", "path", path)
	}
	return note, nil
}
