package core

import "fmt"

// UnsupportedFormatError indicates an export format repovault cannot write or read
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format: %q (want json or yaml)", e.Format)
}

// DecodeError wraps a failure to parse an import document
type DecodeError struct {
	Format Format
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s import: %v", e.Format, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// BundleVersionError indicates an export written by a newer repovault
type BundleVersionError struct {
	Version int
}

func (e *BundleVersionError) Error() string {
	return fmt.Sprintf("export version %d is newer than supported version %d", e.Version, BundleVersion)
}
