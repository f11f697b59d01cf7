package main

import (
	"github.com/spf13/cobra"

	"github.com/nanoware/pkgbroker/internal/catalog"
)

// Maintenance operations take no target and no modifiers; one subcommand is
// registered per catalog entry so the catalog stays the single source of
// truth for what the broker offers.
func init() {
	for _, name := range catalog.MaintenanceNames() {
		op, _ := catalog.Lookup(name)
		rootCmd.AddCommand(&cobra.Command{
			Use:   op.Name,
			Short: op.Summary,
			Args:  cobra.ArbitraryArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(op.Name, args, nil)
			},
		})
	}
}
