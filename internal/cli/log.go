package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/LiviuCP/Matrix-sub005/matrix"
)

// newLogger returns the matrixctl logger writing to w. Debug level is
// reserved for storage events.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx for the subcommands.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default() outside a matrixctl run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// eventLog forwards matrix storage events to a logger at debug level and
// counts them.
type eventLog struct {
	logger *log.Logger
	count  int
}

var _ matrix.Hooks = (*eventLog)(nil)

func (e *eventLog) OnReallocate(ev matrix.ReallocEvent) {
	e.count++
	e.logger.Debug("storage reallocated",
		"op", ev.Op,
		"from", fmt.Sprintf("%dx%d", ev.OldRowCap, ev.OldColCap),
		"to", fmt.Sprintf("%dx%d", ev.NewRowCap, ev.NewColCap),
	)
}
