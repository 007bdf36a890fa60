package iterator

import (
	"fmt"
	"pattern-lab/contract"
	"pattern-lab/errors"

	"github.com/samber/lo"
)

const defaultStep = 1

type cursorOptions struct {
	step int
}

type CursorOption func(*cursorOptions)

// WithStep makes Next skip step-1 items at each call.
func WithStep(step int) CursorOption {
	return func(o *cursorOptions) {
		o.step = step
	}
}

// Cursor walks an aggregate forward: Unstarted, then Positioned(i), then Exhausted once i >= Count().
// The aggregate is borrowed and never modified. Mutating it during a traversal is not detected
// and leaves the cursor in an unspecified position.
type Cursor[T any] struct {
	aggregate contract.Aggregate[T]
	step      int
	position  int
	started   bool
	err       error
}

func NewCursor[T any](aggregate contract.Aggregate[T], opts ...CursorOption) (*Cursor[T], error) {
	if lo.IsNil(aggregate) {
		return nil, fmt.Errorf("%w: cursor needs a collection", errors.ErrPreconditionViolation)
	}
	o := cursorOptions{step: defaultStep}
	for _, opt := range opts {
		opt(&o)
	}
	if o.step < 1 {
		return nil, fmt.Errorf("%w: cursor step must be positive, got %d", errors.ErrPreconditionViolation, o.step)
	}
	return &Cursor[T]{aggregate: aggregate, step: o.step}, nil
}

// First rewinds to index 0. On an empty aggregate the ErrOutOfRange of ItemAt is returned.
func (c *Cursor[T]) First() (T, error) {
	c.started = true
	c.position = 0
	item, err := c.aggregate.ItemAt(c.position)
	c.err = err
	return item, err
}

// Next moves one step forward and returns the item found there, or None once exhausted.
// An unstarted cursor starts at index 0. An exhausted cursor stays where it is.
// When the aggregate fails to return an in-range item, Next returns None and Err reports why.
func (c *Cursor[T]) Next() Option[T] {
	count := c.aggregate.Count()
	switch {
	case !c.started:
		c.started = true
		c.position = 0
	case c.position < count:
		c.position = min(c.position+c.step, count)
	}
	if c.position >= count {
		return None[T]()
	}
	item, err := c.aggregate.ItemAt(c.position)
	c.err = err
	if err != nil {
		return None[T]()
	}
	return Some(item)
}

// Err returns the error of the last First or Next that read an item, nil when it succeeded.
func (c *Cursor[T]) Err() error {
	return c.err
}

// IsExhausted reports whether the position is past the last item. An unstarted cursor sits at 0.
func (c *Cursor[T]) IsExhausted() bool {
	return c.position >= c.aggregate.Count()
}

// Position returns the current index, false while unstarted.
func (c *Cursor[T]) Position() (int, bool) {
	return c.position, c.started
}
