//go:build wasm

package abi

import "github.com/hupe1980/corrgraph/internal/conv"

// Word is one header field: a linear-memory address or a count.
type Word = uint32

func toWord(v int) (Word, error) {
	return conv.IntToUint32(v)
}
