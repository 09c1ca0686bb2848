// Package conv provides checked integer conversions.
//
// Row indices are emitted as uint32 and matrix sizes arrive from a foreign
// caller as machine words; these helpers reject values that would silently
// wrap. For conversions that are provably safe by construction (loop indices
// below an already-checked bound) use direct casts instead.
package conv
