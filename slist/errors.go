package slist

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when an operation needs at least one node.
	ErrEmpty = errors.New("empty list")
	// ErrIndex is returned for a negative index or one past the valid range.
	ErrIndex = errors.New("index out of range")
)

func emptyError(op string) error {
	return fmt.Errorf("%s: %w", op, ErrEmpty)
}

func indexError(op string, index, n int) error {
	if index < 0 {
		return fmt.Errorf("%s: negative index %d: %w", op, index, ErrIndex)
	}

	return fmt.Errorf("%s: index %d for list length %d: %w", op, index, n, ErrIndex)
}
