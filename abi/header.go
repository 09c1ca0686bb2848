package abi

import (
	"unsafe"

	"github.com/hupe1980/corrgraph"
)

// HeaderWords is the number of Words in a Header.
const HeaderWords = 7

// Header is the record a handle points to. Its layout is fixed: seven
// consecutive Words, no padding.
type Header struct {
	Sources    Word // address of the uint32 source indices
	Targets    Word // address of the uint32 target indices
	Weights    Word // address of the float32 weights
	Len        Word
	SourcesCap Word
	TargetsCap Word
	WeightsCap Word
}

func newHeader(el *corrgraph.EdgeList) (*Header, error) {
	sc, tc, wc := el.Caps()

	var counts [4]Word
	for i, v := range [...]int{el.Len(), sc, tc, wc} {
		w, err := toWord(v)
		if err != nil {
			return nil, err
		}
		counts[i] = w
	}

	return &Header{
		Sources:    sliceAddr(el.Sources()),
		Targets:    sliceAddr(el.Targets()),
		Weights:    sliceAddr(el.Weights()),
		Len:        counts[0],
		SourcesCap: counts[1],
		TargetsCap: counts[2],
		WeightsCap: counts[3],
	}, nil
}

// sliceAddr returns the address of the first element, or 0 for a slice
// without backing array.
func sliceAddr[T any](s []T) Word {
	return Word(uintptr(unsafe.Pointer(unsafe.SliceData(s))))
}

func addrOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}
