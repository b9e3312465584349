package mmap

import "errors"

// AccessPattern hints how a mapping will be read.
type AccessPattern int

const (
	// AccessDefault gives no advice.
	AccessDefault AccessPattern = iota
	// AccessSequential expects one front-to-back pass, as when hashing a file.
	AccessSequential
	// AccessWillNeed asks the kernel to start reading ahead now.
	AccessWillNeed
)

var (
	// ErrClosed is returned when attempting to use a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for negative sizes or files too large to map.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrNotRegular is returned when the path is not a regular file.
	ErrNotRegular = errors.New("mmap: not a regular file")
)
