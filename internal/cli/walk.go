package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWalkCmd(a *app) *cobra.Command {
	var (
		shape   shapeFlags
		order   string
		reverse bool
		diag    int
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Print a traversal of a sequential matrix",
		Long: `Walk builds a rows x cols matrix holding 1..rows*cols and prints its
elements in the chosen order: z (row by row), n (column by column),
d (diagonal --diag, top-left to bottom-right) or m (mirrored diagonal --diag,
top-right to bottom-left).`,
		Example: `  matrixctl walk --rows 2 --cols 3 --order n
  matrixctl walk --order d --diag -1 --reverse`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			rows, cols := shape.resolve(cmd, a.profile)
			if !cmd.Flags().Changed("order") {
				order = a.profile.Order
			}
			if !cmd.Flags().Changed("reverse") {
				reverse = a.profile.Reverse
			}

			m, err := sequenceMatrix(rows, cols, a.profile.options()...)
			if err != nil {
				return err
			}
			seq, err := traverse(m, order, reverse, diag)
			if err != nil {
				return err
			}
			logger.Debug("walking", "rows", rows, "cols", cols, "order", order, "reverse", reverse, "diag", diag)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), joinValues(seq))
			return err
		},
	}

	shape.register(cmd)
	cmd.Flags().StringVar(&order, "order", orderZ, "traversal order: z, n, d or m")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "walk from the end towards the begin")
	cmd.Flags().IntVar(&diag, "diag", 0, "diagonal number for d/m (0 is the main one, negative below it)")

	return cmd
}
