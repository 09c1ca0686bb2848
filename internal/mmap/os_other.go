//go:build !unix && !windows

package mmap

// Targets such as wasip1 have no mapping syscalls. The region lives on the Go
// heap and Close only drops the reference.
const offHeap = false

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return make([]byte, size), nil, nil
}

func osAdvise([]byte, AccessPattern) error {
	return nil
}
