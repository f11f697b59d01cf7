package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nanoware/pkgbroker/internal/broker"
	"github.com/nanoware/pkgbroker/internal/catalog"
)

var reinstall bool

var aptOpCmd = &cobra.Command{
	Use:   "apt-op <install|purge> <target>",
	Short: "Run a targeted package operation",
	Long: `Run a targeted apt operation as root.

The first argument selects the operation kind, the second names its target:

  pkgbroker apt-op install /path/to/package.deb
  pkgbroker apt-op purge package-name

install takes an absolute .deb path; purge takes a package name. Both
accept --reinstall. Targets are validated against strict whitelists before
anything is spawned.`,
	// Arity is the pipeline's decision, not cobra's: a missing or extra
	// argument must surface as the broker's own argument-count rejection.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: apt-op requires <install|purge> <target>", broker.ErrArgumentCount)
		}
		var modifiers []string
		if reinstall {
			modifiers = append(modifiers, catalog.FlagReinstall)
		}
		return runOperation(args[0], args[1:], modifiers)
	},
}

func init() {
	aptOpCmd.Flags().BoolVar(&reinstall, "reinstall", false, "Reinstall even if the package is already current")
	rootCmd.AddCommand(aptOpCmd)
}
