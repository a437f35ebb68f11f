package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LiviuCP/Matrix-sub005/matrix"
)

func newGrowCmd(a *app) *cobra.Command {
	var (
		rows  int
		front bool
	)

	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Insert rows one by one and report capacity growth",
		Long: `Grow starts from the profile's sequential matrix and inserts --rows
zero-valued rows, at the back by default or at the front with --front.
Every storage reallocation is logged at debug level (use -v).`,
		Example: `  matrixctl grow --rows 100 -v`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			events := &eventLog{logger: logger}
			p := a.profile

			m, err := sequenceMatrix(p.Rows, p.Cols, p.options(matrix.WithHooks(events))...)
			if err != nil {
				return err
			}

			start := time.Now()
			for i := 0; i < rows; i++ {
				pos := m.Rows()
				if front {
					pos = 0
				}
				if err := m.InsertRow(pos); err != nil {
					return err
				}
			}
			logger.Info("rows inserted",
				"count", rows,
				"front", front,
				"elapsed", time.Since(start).Round(time.Millisecond),
			)

			rowOff, _ := m.RowCapacityOffset()
			var b strings.Builder
			printSuccess(&b, "rows=%d cols=%d rowCap=%d colCap=%d rowOffset=%d reallocations=%d",
				m.Rows(), m.Cols(), m.RowCapacity(), m.ColumnCapacity(), rowOff, events.count)

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 10, "number of rows to insert")
	cmd.Flags().BoolVar(&front, "front", false, "insert at the front instead of the back")

	return cmd
}
