package cli

import (
	"fmt"
	"iter"
	"strings"

	"github.com/LiviuCP/Matrix-sub005/matrix"
)

// Traversal orders accepted by --order.
const (
	orderZ = "z" // row by row
	orderN = "n" // column by column
	orderD = "d" // one diagonal, top-left to bottom-right
	orderM = "m" // one mirrored diagonal, top-right to bottom-left
)

var orders = []string{orderZ, orderN, orderD, orderM}

// ranged is any iterator that can yield the values up to an end iterator.
type ranged[It any] interface {
	Seq(end It) iter.Seq[int]
}

// stepper is any iterator that walks one cell at a time and reports where it is.
type stepper[It any] interface {
	*It
	Next()
	Equal(o It) (bool, error)
	RowNr() (int, bool)
	ColumnNr() (int, bool)
}

// diagSpan resolves the [begin, end) range of diagonal d.
func diagSpan[It ranged[It]](begin, end func(int) (It, error), d int) (iter.Seq[int], error) {
	b, err := begin(d)
	if err != nil {
		return nil, err
	}
	e, err := end(d)
	if err != nil {
		return nil, err
	}

	return b.Seq(e), nil
}

// traverse returns the read-only traversal of m selected by order, reverse and diag.
// diag is ignored by the Z and N orders.
func traverse(m *matrix.Matrix[int], order string, reverse bool, diag int) (iter.Seq[int], error) {
	switch order {
	case orderZ:
		if reverse {
			return m.ConstReverseZBegin().Seq(m.ConstReverseZEnd()), nil
		}
		return m.ConstZBegin().Seq(m.ConstZEnd()), nil
	case orderN:
		if reverse {
			return m.ConstReverseNBegin().Seq(m.ConstReverseNEnd()), nil
		}
		return m.ConstNBegin().Seq(m.ConstNEnd()), nil
	case orderD:
		if reverse {
			return diagSpan(m.ConstReverseDBegin, m.ConstReverseDEnd, diag)
		}
		return diagSpan(m.ConstDBegin, m.ConstDEnd, diag)
	case orderM:
		if reverse {
			return diagSpan(m.ConstReverseMBegin, m.ConstReverseMEnd, diag)
		}
		return diagSpan(m.ConstMBegin, m.ConstMEnd, diag)
	}

	return nil, fmt.Errorf("unknown order %q (want one of %s)", order, strings.Join(orders, ", "))
}

// collectCells records the position of every cell between begin and end.
func collectCells[It any, P stepper[It]](begin, end It) (map[cell]bool, error) {
	out := make(map[cell]bool)
	it := begin
	for {
		done, err := P(&it).Equal(end)
		if err != nil {
			return nil, err
		}
		if done {
			return out, nil
		}
		r, _ := P(&it).RowNr()
		c, _ := P(&it).ColumnNr()
		out[cell{r, c}] = true
		P(&it).Next()
	}
}

// diagonalCells returns the cells of diagonal d in the D (or, with mirrored, M) family.
func diagonalCells(m *matrix.Matrix[int], mirrored bool, d int) (map[cell]bool, error) {
	if mirrored {
		b, err := m.ConstMBegin(d)
		if err != nil {
			return nil, err
		}
		e, err := m.ConstMEnd(d)
		if err != nil {
			return nil, err
		}
		return collectCells(b, e)
	}

	b, err := m.ConstDBegin(d)
	if err != nil {
		return nil, err
	}
	e, err := m.ConstDEnd(d)
	if err != nil {
		return nil, err
	}
	return collectCells(b, e)
}

// sequenceMatrix builds a rows x cols matrix holding 1..rows*cols row by row.
func sequenceMatrix(rows, cols int, opts ...matrix.Option) (*matrix.Matrix[int], error) {
	if rows <= 0 || cols <= 0 {
		return matrix.NewFromSlice[int](rows, cols, nil, opts...)
	}
	src := make([]int, rows*cols)
	for i := range src {
		src[i] = i + 1
	}

	return matrix.NewFromSlice(rows, cols, src, opts...)
}

// joinValues renders a traversal as space separated values.
func joinValues(seq iter.Seq[int]) string {
	var b strings.Builder
	for v := range seq {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}

	return b.String()
}
