package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted"
	"github.com/aretw0/noted/internal/platform"
	"github.com/aretw0/noted/pkg/core"
)

// app carries what the commands share for one invocation.
type app struct {
	env     platform.Env
	verbose bool
	logger  *slog.Logger
}

// newRootCmd builds the command tree. Running the root command with no
// arguments creates today's note.
func newRootCmd(env platform.Env) *cobra.Command {
	a := &app{env: env}

	rootCmd := &cobra.Command{
		Use:   "noted",
		Short: "Create today's daily note",
		Long: `noted makes sure a markdown file named after today's date (YYYY-MM-DD.md)
exists in the note store. An existing note is never modified.

The store is $NOTED_STORE when set, otherwise the "noted" directory inside
the platform data directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Success is silent unless asked otherwise.
			level := slog.LevelWarn
			if a.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(a.logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service()
			if err != nil {
				return err
			}
			a.logger.Debug("service state", "state", svc.State())

			_, err = svc.CreateToday(cmd.Context())
			return err
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(newPathCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// service resolves the store from the environment and wires the service.
func (a *app) service() (*core.Service, error) {
	storePath, err := platform.ResolveStorePath(a.env)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("store resolved", "path", storePath)

	return noted.New(storePath, noted.WithLogger(a.logger))
}

// Execute runs the command line and returns the process exit code.
// Failures are reported as a single line on stderr.
func Execute(args []string, env platform.Env) int {
	return execute(context.Background(), args, env, nil, nil)
}

func execute(ctx context.Context, args []string, env platform.Env, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(env)
	rootCmd.SetArgs(args)
	if stdout != nil {
		rootCmd.SetOut(stdout)
	}
	if stderr != nil {
		rootCmd.SetErr(stderr)
	}

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "noted: %v\n", err)
		return 1
	}
	return 0
}
