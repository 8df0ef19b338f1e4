package core_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noted/pkg/core"
)

// MockRepository implements core.Repository in memory.
type MockRepository struct {
	path        string
	initialized bool
	notes       map[string]string
	initErr     error
	createErr   error
}

func NewMockRepository(path string) *MockRepository {
	return &MockRepository{
		path:  path,
		notes: make(map[string]string),
	}
}

func (m *MockRepository) Path() string { return m.path }

func (m *MockRepository) Initialize(ctx context.Context) error {
	if m.initErr != nil {
		return m.initErr
	}
	m.initialized = true
	return nil
}

func (m *MockRepository) CreateIfAbsent(ctx context.Context, name string) (string, bool, error) {
	path := filepath.Join(m.path, name)
	if m.createErr != nil {
		return path, false, m.createErr
	}
	if _, ok := m.notes[name]; ok {
		return path, false, nil
	}
	m.notes[name] = ""
	return path, true, nil
}

func fixedClock(year int, month time.Month, day int) core.Clock {
	return func() time.Time {
		return time.Date(year, month, day, 23, 30, 0, 0, time.Local)
	}
}

func TestService_CreateToday(t *testing.T) {
	ctx := context.Background()
	repo := NewMockRepository("/notes")
	svc := core.NewService(repo, fixedClock(2024, time.March, 7), nil)

	note, err := svc.CreateToday(ctx)
	require.NoError(t, err)
	assert.True(t, repo.initialized)
	assert.True(t, note.Created)
	assert.Equal(t, filepath.Join("/notes", "2024-03-07.md"), note.Path)
	assert.Contains(t, repo.notes, "2024-03-07.md")

	t.Run("Second Run Is A No-Op", func(t *testing.T) {
		repo.notes["2024-03-07.md"] = "user content"

		again, err := svc.CreateToday(ctx)
		require.NoError(t, err)
		assert.False(t, again.Created)
		assert.Equal(t, note.Path, again.Path)
		assert.Equal(t, "user content", repo.notes["2024-03-07.md"])
	})
}

func TestService_TodayPath(t *testing.T) {
	repo := NewMockRepository("/notes")
	svc := core.NewService(repo, fixedClock(1999, time.December, 31), nil)

	assert.Equal(t, filepath.Join("/notes", "1999-12-31.md"), svc.TodayPath())
	assert.Equal(t, "/notes", svc.StorePath())
	assert.False(t, repo.initialized, "TodayPath must not touch the store")
}

func TestService_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("Directory Failure Stops Before File Creation", func(t *testing.T) {
		repo := NewMockRepository("/notes")
		repo.initErr = &core.Error{Kind: core.KindDirectory, Path: "/notes", Err: errors.New("permission denied")}
		svc := core.NewService(repo, fixedClock(2024, time.March, 7), nil)

		_, err := svc.CreateToday(ctx)
		require.Error(t, err)
		assert.True(t, core.IsKind(err, core.KindDirectory))
		assert.Empty(t, repo.notes)
	})

	t.Run("File Failure Is Propagated", func(t *testing.T) {
		repo := NewMockRepository("/notes")
		cause := errors.New("disk full")
		repo.createErr = &core.Error{Kind: core.KindFile, Path: "/notes/2024-03-07.md", Err: cause}
		svc := core.NewService(repo, fixedClock(2024, time.March, 7), nil)

		_, err := svc.CreateToday(ctx)
		require.Error(t, err)
		assert.True(t, core.IsKind(err, core.KindFile))
		assert.ErrorIs(t, err, cause)
	})
}

func TestService_State(t *testing.T) {
	svc := core.NewService(NewMockRepository("/notes"), fixedClock(2024, time.March, 7), nil)

	state, ok := svc.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, "/notes", state.StorePath)
	assert.Equal(t, filepath.Join("/notes", "2024-03-07.md"), state.TodayPath)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, "service", svc.ComponentType())
}
