package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nanoware/pkgbroker/internal/broker"
	"github.com/nanoware/pkgbroker/internal/privexec"
)

// errorPrefix tags every broker-originated diagnostic on stderr so callers
// can tell the broker's own rejections from apt's output.
const errorPrefix = "[PKGBROKER_ERROR]"

var (
	// Global flags
	dryRun bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pkgbroker",
	Short: "Privileged apt operation broker",
	Long: `pkgbroker is the privileged helper behind the package installer.

It accepts a fixed set of symbolic operations from an unprivileged caller,
validates every target against strict whitelists, and runs apt directly —
never through a shell — with an argument vector built only from catalog
constants and the validated target.

Package operations:
  apt-op install <path.deb>   Install a local package file
  apt-op purge <package>      Purge an installed package

Maintenance operations:
  update, upgrade, autoremove, fix-broken, clean

pkgbroker must already be running as root (via sudo); it never escalates
on its own, and it refuses everything it cannot prove safe.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// childExitError carries a normal non-zero apt exit through cobra so the
// process can surface it verbatim. It is not a broker failure and prints
// nothing; apt already wrote its own diagnostics.
type childExitError struct {
	code int
}

func (e *childExitError) Error() string {
	return fmt.Sprintf("apt exited with status %d", e.code)
}

// Execute runs the CLI and maps every outcome to the process exit code:
// 0 on success, the child's own code when apt itself failed, 1 for every
// broker-side rejection or failure.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var child *childExitError
	if errors.As(err, &child) {
		os.Exit(child.code)
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", errorPrefix, err)
	os.Exit(privexec.FailureCode)
}

// runOperation takes one request through the pipeline. Under --dry-run the
// synthesized vector is printed instead of executed; the privilege gate and
// every validation still run first.
func runOperation(name string, args []string, modifiers []string) error {
	b := broker.New(privexec.New(os.Stdout, os.Stderr))

	if dryRun {
		vector, err := b.Prepare(name, args, modifiers)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(vector, " "))
		return nil
	}

	code, err := b.Run(name, args, modifiers)
	if err != nil {
		return err
	}
	if code != 0 {
		return &childExitError{code: code}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Validate and print the apt command instead of running it")
}
