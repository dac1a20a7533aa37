package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/plugkit/plugsync/internal/messages"
	"github.com/plugkit/plugsync/internal/reconcile"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain executes the CLI, exiting non-zero on fatal errors.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if err := executeFunc(args, stdout, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		exit(1)
	}
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// newRootCmd builds the root command. The root command is the whole tool:
// there are no flags or subcommands beyond cobra's --version and --help,
// because behavior is driven entirely by the project manifest.
func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveProjectRoot()
			if err != nil {
				return err
			}
			_, err = reconcile.Run(root, cmd.OutOrStdout())
			return err
		},
	}
}

// versionString formats the version with commit and build metadata.
func versionString() string {
	details := []string{}
	if Commit != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "unknown" {
		details = append(details, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(details) == 0 {
		return Version
	}
	joined := details[0]
	for _, d := range details[1:] {
		joined += ", " + d
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, joined)
}
