package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	var (
		shape    shapeFlags
		diag     int
		mirrored bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render a sequential matrix with one diagonal highlighted",
		Example: `  matrixctl show --rows 4 --cols 5 --diag 1
  matrixctl show --mirrored --diag -2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, cols := shape.resolve(cmd, a.profile)
			m, err := sequenceMatrix(rows, cols, a.profile.options()...)
			if err != nil {
				return err
			}
			hot, err := diagonalCells(m, mirrored, diag)
			if err != nil {
				return err
			}

			family := "D"
			if mirrored {
				family = "M"
			}
			grid, err := renderGrid(m, hot)
			if err != nil {
				return err
			}
			var b strings.Builder
			b.WriteString(StyleTitle.Render(fmt.Sprintf("%dx%d, %s diagonal %d", rows, cols, family, diag)))
			b.WriteString("\n")
			b.WriteString(grid)
			b.WriteString("\n")

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	shape.register(cmd)
	cmd.Flags().IntVar(&diag, "diag", 0, "diagonal number (0 is the main one, negative below it)")
	cmd.Flags().BoolVar(&mirrored, "mirrored", false, "highlight an M diagonal (through the top-right corner)")

	return cmd
}
