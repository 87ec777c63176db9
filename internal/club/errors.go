package club

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vilacaiz/clubhouse/internal/storage"
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Entity, e.Field, e.Reason)
}

// ReferenceError reports a foreign id that does not resolve in the season.
type ReferenceError struct {
	Entity string
	Field  string
	ID     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("invalid %s: %s %d does not exist in this season", e.Entity, e.Field, e.ID)
}

// NotFoundError reports an operation on an absent id.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// ConflictError reports a delete blocked by dependents.
type ConflictError struct {
	Entity     string
	Key        string
	Dependents []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s is still referenced by %s", e.Entity, e.Key, strings.Join(e.Dependents, ", "))
}

// DuplicateSeasonError is returned when creating a season whose label exists.
type DuplicateSeasonError struct {
	Label string
}

func (e *DuplicateSeasonError) Error() string {
	return fmt.Sprintf("season %q already exists", e.Label)
}

// UnknownSeasonError is returned when a season label does not exist.
type UnknownSeasonError struct {
	Label string
}

func (e *UnknownSeasonError) Error() string {
	return fmt.Sprintf("season %q does not exist", e.Label)
}

// errorKind names err's category for metrics and logs.
func errorKind(err error) string {
	var (
		validation *ValidationError
		reference  *ReferenceError
		notFound   *NotFoundError
		conflict   *ConflictError
		duplicate  *DuplicateSeasonError
		unknown    *UnknownSeasonError
		corrupt    *storage.CorruptDataError
		ioErr      *storage.IOError
	)
	switch {
	case errors.As(err, &validation):
		return "validation"
	case errors.As(err, &reference):
		return "reference"
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &conflict):
		return "conflict"
	case errors.As(err, &duplicate):
		return "duplicate_season"
	case errors.As(err, &unknown):
		return "unknown_season"
	case errors.As(err, &corrupt):
		return "corrupt_data"
	case errors.As(err, &ioErr):
		return "io"
	default:
		return "internal"
	}
}
