// Package mask tracks which columns of each matrix row hold an observation.
//
// A row's mask is a Roaring bitmap of its non-NaN column indices. The columns
// jointly observed by a pair of rows are the intersection of their masks,
// which lets extraction reject under-observed pairs without scanning them and
// visit only the surviving columns, in ascending order.
//
// Fully observed rows compress to a single run container, so the common
// no-missing-data case costs a few bytes per row.
package mask
