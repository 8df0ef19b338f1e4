package noted_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/noted"
)

// Example_basic creates a daily note in a fresh store.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "noted-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	clock := func() time.Time {
		return time.Date(2024, time.March, 7, 9, 0, 0, 0, time.Local)
	}

	svc, err := noted.New(filepath.Join(tmpDir, "notes"), noted.WithClock(clock))
	if err != nil {
		log.Fatal(err)
	}

	note, err := svc.CreateToday(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(filepath.Base(note.Path), note.Created)
	// Output:
	// 2024-03-07.md true
}
