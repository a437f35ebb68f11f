// Package cli implements the matrixctl command-line interface.
//
// matrixctl is a small driver for the matrix container: it builds
// sequential matrices (1..rows*cols), walks them with the iterator families,
// renders them with a highlighted diagonal and grows them row by row while
// logging every storage reallocation.
//
// # Commands
//
//   - walk: print a Z, N, D or M traversal
//   - show: render the grid, highlighting one D or M diagonal
//   - grow: insert rows and report capacity growth
//
// # Configuration
//
// Defaults for shape, order and growth slack come from a TOML profile given
// with --config (see Profile); flags override the profile.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Called by main with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds the global flags and the resolved profile shared by all commands.
type app struct {
	verbose bool
	config  string
	profile Profile
}

// Execute runs matrixctl and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	a := &app{profile: DefaultProfile()}

	root := &cobra.Command{
		Use:           "matrixctl",
		Short:         "matrixctl exercises a resizable 2D matrix container",
		Long:          `matrixctl builds sequential matrices and walks, renders or grows them, showing how the container's iterators and capacity engine behave.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if a.verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			p, err := loadProfile(a.config)
			if err != nil {
				return err
			}
			a.profile = p
			if a.config != "" {
				logger.Debug("profile loaded", "path", a.config, "rows", p.Rows, "cols", p.Cols, "order", p.Order)
			}

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("matrixctl %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&a.config, "config", "", "TOML profile with default rows, cols, order, reverse and slack")

	root.AddCommand(newWalkCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newGrowCmd(a))

	return root
}

// shapeFlags are the --rows/--cols overrides shared by walk and show.
type shapeFlags struct {
	rows, cols int
}

func (f *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.rows, "rows", 0, "row count (default from profile)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "column count (default from profile)")
}

// resolve applies the flags that were set on top of the profile.
func (f *shapeFlags) resolve(cmd *cobra.Command, p Profile) (rows, cols int) {
	rows, cols = p.Rows, p.Cols
	if cmd.Flags().Changed("rows") {
		rows = f.rows
	}
	if cmd.Flags().Changed("cols") {
		cols = f.cols
	}

	return rows, cols
}
