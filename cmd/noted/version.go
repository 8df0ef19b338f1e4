package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/noted"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of noted",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "noted version %s\n", noted.Version)
		},
	}
}
