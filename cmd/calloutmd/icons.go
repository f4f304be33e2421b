package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgallion1/calloutmd/internal/icons"
)

func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: "List the icon names accepted by {icon=\"...\"}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range icons.Default().Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
