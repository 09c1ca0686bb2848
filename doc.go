// Package corrgraph turns a numeric matrix into a weighted correlation graph.
//
// Rows are the variables and columns the observations; NaN marks a missing
// observation. For every pair of rows the kernel computes the Pearson or
// Spearman correlation over the jointly observed columns, rounds it to two
// decimals and keeps it as an edge if it passes the sign policy and the
// minimum-correlation threshold.
//
// Memory handed to the caller is explicit: input buffers come from
// Kernel.Allocate and go back through Kernel.Release, edge lists go back
// through Kernel.ReleaseEdges. The kernel accounts every live region, which
// makes leaks visible through Kernel.MemoryUsage and lets a memory limit be
// enforced.
//
// Quick start:
//
//	k := corrgraph.New()
//	buf, _ := k.Allocate(rows * cols)
//	copy(buf.Float64s(), values)
//	m, _ := buf.Matrix(rows, cols)
//
//	edges, err := k.PearsonEdges(m, 0.7, correlation.Signed)
//	if err != nil {
//	    return err
//	}
//	for _, e := range edges.All() {
//	    fmt.Println(e.Source, e.Target, e.Weight)
//	}
//
//	_ = k.ReleaseEdges(edges)
//	_ = k.Release(buf)
//
// Package abi exposes the same kernel through five flat calls for hosts that
// exchange raw addresses, and package table prepares named, ragged input.
package corrgraph
