// Package table prepares named, possibly ragged numeric rows for correlation
// graph extraction and turns the resulting edges back into named links.
package table

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/corrgraph"
	"github.com/hupe1980/corrgraph/correlation"
)

// ErrNamesMismatch is returned when the number of names differs from the
// number of rows.
var ErrNamesMismatch = errors.New("table: names and rows differ in length")

// Table is a dense row-major matrix with one name per row. Every row has at
// least one finite value; missing values are NaN.
type Table struct {
	names []string
	data  []float64
	cols  int
}

// FromRows builds a Table. The column count is the length of the first row;
// shorter rows are padded with NaN and longer rows are truncated. Infinite
// values become NaN. Rows without any finite value are dropped together with
// their names.
func FromRows(names []string, rows [][]float64) (*Table, error) {
	if len(names) != len(rows) {
		return nil, fmt.Errorf("%w: %d names, %d rows", ErrNamesMismatch, len(names), len(rows))
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}

	cols := len(rows[0])
	t := &Table{
		names: make([]string, 0, len(rows)),
		data:  make([]float64, 0, len(rows)*cols),
		cols:  cols,
	}

	for i, row := range rows {
		start := len(t.data)
		finite := false
		for c := 0; c < cols; c++ {
			v := math.NaN()
			if c < len(row) && !math.IsNaN(row[c]) && !math.IsInf(row[c], 0) {
				v = row[c]
				finite = true
			}
			t.data = append(t.data, v)
		}
		if !finite {
			t.data = t.data[:start]
			continue
		}
		t.names = append(t.names, names[i])
	}

	return t, nil
}

// Rows returns the number of kept rows.
func (t *Table) Rows() int { return len(t.names) }

// Cols returns the number of columns.
func (t *Table) Cols() int { return t.cols }

// Names returns the names of the kept rows in order.
func (t *Table) Names() []string { return t.names }

// Row returns kept row i.
func (t *Table) Row(i int) []float64 {
	return t.data[i*t.cols : (i+1)*t.cols]
}

// Link is a named, undirected edge of the correlation graph.
type Link struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Graph is the named correlation graph of a Table.
type Graph struct {
	Nodes []string `json:"nodes"`
	Links []Link   `json:"links"`
}

// Build extracts the correlation graph of t with k. The table is copied into
// a kernel buffer; the buffer and the edge list are released before Build
// returns. Link weights are rounded half up to two decimals, which also
// strips the float32 noise from the edge weights.
func (t *Table) Build(k *corrgraph.Kernel, method correlation.Method, minCorr float64, mode correlation.Mode) (*Graph, error) {
	g := &Graph{Nodes: t.names, Links: []Link{}}
	if t.Rows() == 0 || t.cols == 0 {
		return g, nil
	}

	buf, err := k.Allocate(len(t.data))
	if err != nil {
		return nil, err
	}
	defer func() { _ = k.Release(buf) }()

	copy(buf.Float64s(), t.data)
	m, err := buf.Matrix(t.Rows(), t.cols)
	if err != nil {
		return nil, err
	}

	el, err := k.Edges(method, m, minCorr, mode)
	if err != nil {
		return nil, err
	}
	defer func() { _ = k.ReleaseEdges(el) }()

	g.Links = make([]Link, 0, el.Len())
	for _, e := range el.All() {
		g.Links = append(g.Links, Link{
			Source: t.names[e.Source],
			Target: t.names[e.Target],
			Weight: roundHalfUp(float64(e.Weight)),
		})
	}
	return g, nil
}

// roundHalfUp rounds to two decimals with ties toward positive infinity.
func roundHalfUp(w float64) float64 {
	return math.Floor(w*100+0.5) / 100
}
