// Package noted is the Composition Root for the noted daily-note bootstrapper.
//
// It connects the core logic (pkg/core) with the filesystem adapter
// (pkg/adapters/fs). Callers resolve the store directory themselves, usually
// with the cmd/noted entry point, and hand it to New:
//
//	svc, err := noted.New("/home/ada/.local/share/noted",
//		noted.WithLogger(logger),
//	)
//
//	// Create today's note unless it already exists
//	note, err := svc.CreateToday(ctx)
package noted
