//go:build !wasm

package abi

import "github.com/hupe1980/corrgraph/internal/conv"

// Word is one header field: an address or a count.
type Word = uint64

func toWord(v int) (Word, error) {
	return conv.IntToUint64(v)
}
