package storage

import "fmt"

// CorruptDataError is returned by Load when the persisted document cannot be
// decoded.
type CorruptDataError struct {
	Source string
	Err    error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt club data in %s: %v", e.Source, e.Err)
}

func (e *CorruptDataError) Unwrap() error { return e.Err }

// IOError is returned when the document cannot be read from or written to
// its destination.
type IOError struct {
	Op     string
	Source string
	Err    error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
