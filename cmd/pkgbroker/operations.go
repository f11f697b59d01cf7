package main

import (
	"github.com/spf13/cobra"

	"github.com/nanoware/pkgbroker/internal/catalog"
	"github.com/nanoware/pkgbroker/internal/formatter"
)

var operationsOutput string

var operationsCmd = &cobra.Command{
	Use:   "operations",
	Short: "List the operations this broker will forward",
	Long: `List every operation in the broker's catalog with its downstream apt
command, target shape, and permitted modifier flags.

This is read-only introspection: it needs no privilege and spawns nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return formatter.Render(cmd.OutOrStdout(), formatter.Rows(catalog.All()), operationsOutput)
	},
}

func init() {
	operationsCmd.Flags().StringVarP(&operationsOutput, "output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.AddCommand(operationsCmd)
}
