package core

import (
	"path/filepath"
	"time"
)

// NoteExt is the extension every daily note carries.
const NoteExt = ".md"

// dateLayout renders a calendar date as YYYY-MM-DD.
const dateLayout = "2006-01-02"

// Note is the outcome of bootstrapping a daily note.
// It identifies the file by its calendar date and location on disk.
type Note struct {
	Date    time.Time
	Path    string
	Created bool // false when the file was already there
}

// Clock supplies the current wall-clock time.
type Clock func() time.Time

// SystemClock returns the current local time.
func SystemClock() time.Time {
	return time.Now()
}

// NoteFileName returns the file name of the daily note for the given date,
// e.g. "2024-03-07.md". The date is formatted in its own location.
func NoteFileName(date time.Time) string {
	return date.Format(dateLayout) + NoteExt
}

// DailyNotePath joins the store directory with the note file name for date.
func DailyNotePath(dir string, date time.Time) string {
	return filepath.Join(dir, NoteFileName(date))
}
