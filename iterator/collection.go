// Package iterator separates the traversal of an ordered collection from its storage.
// A Collection only stores items; a Cursor owns the traversal state.
package iterator

import (
	"fmt"
	"pattern-lab/errors"
)

// Collection is an append-only ordered container, indexed from 0 to Count()-1.
type Collection[T any] struct {
	items []T
}

func NewCollection[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: append([]T(nil), items...)}
}

func (c *Collection[T]) Append(items ...T) {
	c.items = append(c.items, items...)
}

// Count is 0 on a nil collection.
func (c *Collection[T]) Count() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// ItemAt fails with ErrOutOfRange outside [0, Count()), and with
// ErrPreconditionViolation on a nil collection.
func (c *Collection[T]) ItemAt(index int) (T, error) {
	var zero T
	if c == nil {
		return zero, fmt.Errorf("%w: cursor needs a collection", errors.ErrPreconditionViolation)
	}
	if index < 0 || index >= len(c.items) {
		return zero, fmt.Errorf("%w: index %d, count %d", errors.ErrOutOfRange, index, len(c.items))
	}
	return c.items[index], nil
}

// Items returns a copy, mutating it never affects the collection.
func (c *Collection[T]) Items() []T {
	if c == nil {
		return nil
	}
	return append([]T(nil), c.items...)
}

// CreateCursor returns a fresh, unstarted cursor stepping one item at a time.
// A cursor created from a nil collection is exhausted and its First fails
// with ErrPreconditionViolation.
func (c *Collection[T]) CreateCursor() *Cursor[T] {
	return &Cursor[T]{aggregate: c, step: defaultStep}
}
