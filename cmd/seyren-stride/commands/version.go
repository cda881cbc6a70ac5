package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var (
	// Version represents the current version of the notifier (set by build flags).
	Version = "dev"
	// GitCommit represents the git commit hash used to build this version (set by build flags).
	GitCommit = "unknown"
	// BuildDate represents the date when this version was built (set by build flags).
	BuildDate = "unknown"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Shows the version, git commit, build date, and runtime information.",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Seyren Stride\n")
			_, _ = fmt.Fprintf(out, "=============\n")
			_, _ = fmt.Fprintf(out, "Version:    %s\n", Version)
			_, _ = fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
			_, _ = fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
			_, _ = fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
			_, _ = fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}

	return cmd
}
