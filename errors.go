package staticsearch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/staticsearch/index"
	"github.com/hupe1980/staticsearch/index/blocked"
)

var (
	// ErrUnknownVariant is returned when Build is given a Variant value it
	// does not recognize.
	ErrUnknownVariant = errors.New("unknown layout variant")
)

// ErrUnsortedInput indicates that the input key sequence is not
// non-decreasing.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnsortedInput struct {
	Position int
	cause    error
}

func (e *ErrUnsortedInput) Error() string {
	return fmt.Sprintf("input not sorted at index %d", e.Position)
}

func (e *ErrUnsortedInput) Unwrap() error { return e.cause }

// ErrReservedKey indicates that the input contains the sentinel key value,
// which is reserved for layout padding.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrReservedKey struct {
	Position int
	cause    error
}

func (e *ErrReservedKey) Error() string {
	return fmt.Sprintf("reserved key value at index %d", e.Position)
}

func (e *ErrReservedKey) Unwrap() error { return e.cause }

// ErrInvalidNodeWidth indicates an unusable blocked-layout node width.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidNodeWidth struct {
	Width int
	cause error
}

func (e *ErrInvalidNodeWidth) Error() string {
	return fmt.Sprintf("invalid node width: %d", e.Width)
}

func (e *ErrInvalidNodeWidth) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var unsorted *index.ErrUnsorted
	if errors.As(err, &unsorted) {
		return &ErrUnsortedInput{Position: unsorted.Position, cause: err}
	}
	var reserved *index.ErrReservedKey
	if errors.As(err, &reserved) {
		return &ErrReservedKey{Position: reserved.Position, cause: err}
	}
	var width *blocked.ErrInvalidNodeWidth
	if errors.As(err, &width) {
		return &ErrInvalidNodeWidth{Width: width.Width, cause: err}
	}

	return err
}
