//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

const offHeap = true

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	data, err := unix.Mmap(-1, 0, size, prot, flags)
	if err != nil {
		return nil, nil, err
	}

	return data, unix.Munmap, nil
}

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}

	advice := unix.MADV_NORMAL
	if pattern == AccessSequential {
		advice = unix.MADV_SEQUENTIAL
	}

	// Anonymous mappings are page-aligned, but the hint is advisory:
	// EINVAL from exotic kernels is not worth failing an allocation over.
	err := unix.Madvise(data, advice)
	if err == unix.EINVAL {
		return nil
	}
	return err
}
