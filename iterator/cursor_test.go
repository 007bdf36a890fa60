package iterator

import (
	"fmt"
	"pattern-lab/domain"
	"pattern-lab/errors"
	"pattern-lab/mocks"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func walk[T any](t *testing.T, cursor *Cursor[T]) []T {
	t.Helper()
	first, err := cursor.First()
	require.NoError(t, err)

	var visited []T
	for opt := Some(first); !cursor.IsExhausted(); opt = cursor.Next() {
		item, ok := opt.Get()
		require.True(t, ok)
		visited = append(visited, item)
	}
	return visited
}

func TestCursor_Visits_Every_Item_In_Order(t *testing.T) {
	for _, size := range []int{1, 2, 5, 50} {
		items := make([]int, size)
		for i := range items {
			items[i] = i * 10
		}
		collection := NewCollection(items...)

		require.Equal(t, items, walk(t, collection.CreateCursor()), "size=%d", size)
	}
}

func TestCursor_Employees_Scenario(t *testing.T) {
	req := require.New(t)
	collection := NewCollection(
		domain.Employee{ID: 1000, Name: "A"},
		domain.Employee{ID: 1001, Name: "B"},
	)
	cursor := collection.CreateCursor()

	first, err := cursor.First()
	req.NoError(err)
	req.Equal(1000, first.ID)

	second, ok := cursor.Next().Get()
	req.True(ok)
	req.Equal(1001, second.ID)

	req.False(cursor.Next().IsPresent())
	req.True(cursor.IsExhausted())
}

func TestCursor_First_On_Empty_Collection(t *testing.T) {
	req := require.New(t)
	cursor := NewCollection[domain.Employee]().CreateCursor()

	_, err := cursor.First()

	req.ErrorIs(err, errors.ErrOutOfRange)
	req.True(cursor.IsExhausted())
}

func TestCursor_Next_After_Exhaustion_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	cursor := NewCollection("a0").CreateCursor()
	_, err := cursor.First()
	req.NoError(err)

	for range 5 {
		req.False(cursor.Next().IsPresent())
		req.True(cursor.IsExhausted())
	}

	// Then the position never overflows past the count
	position, started := cursor.Position()
	req.True(started)
	req.Equal(1, position)

	// And First still rewinds
	first, err := cursor.First()
	req.NoError(err)
	req.Equal("a0", first)
	req.False(cursor.IsExhausted())
}

func TestCursor_Next_On_Unstarted_Cursor(t *testing.T) {
	req := require.New(t)

	// Given an unstarted cursor on a non-empty collection
	cursor := NewCollection("a0", "a1").CreateCursor()
	req.False(cursor.IsExhausted())

	// Then Next starts at the first item
	item, ok := cursor.Next().Get()
	req.True(ok)
	req.Equal("a0", item)

	// Given an unstarted cursor on an empty collection
	empty := NewCollection[string]().CreateCursor()
	req.True(empty.IsExhausted())
	req.False(empty.Next().IsPresent())
}

func TestCursor_WithStep(t *testing.T) {
	req := require.New(t)
	collection := NewCollection(0, 1, 2, 3, 4)

	cursor, err := NewCursor[int](collection, WithStep(2))
	req.NoError(err)

	req.Equal([]int{0, 2, 4}, walk(t, cursor))
	position, _ := cursor.Position()
	req.Equal(collection.Count(), position)
}

func TestNewCursor_Preconditions(t *testing.T) {
	req := require.New(t)
	var missing *Collection[int]

	_, err := NewCursor[int](nil)
	req.ErrorIs(err, errors.ErrPreconditionViolation)

	_, err = NewCursor[int](missing)
	req.ErrorIs(err, errors.ErrPreconditionViolation)

	_, err = NewCursor[int](NewCollection(1), WithStep(0))
	req.ErrorIs(err, errors.ErrPreconditionViolation)
}

func TestCollection_CreateCursor_On_Nil_Collection(t *testing.T) {
	req := require.New(t)
	var missing *Collection[int]

	// Given a cursor created from a nil collection
	cursor := missing.CreateCursor()

	// Then it behaves as an empty traversal
	req.Equal(0, missing.Count())
	req.Empty(missing.Items())
	req.True(cursor.IsExhausted())
	req.False(cursor.Next().IsPresent())

	// And First reports the missing collection
	_, err := cursor.First()
	req.ErrorIs(err, errors.ErrPreconditionViolation)
	req.ErrorIs(cursor.Err(), errors.ErrPreconditionViolation)
}

func TestCursor_Next_Reports_Aggregate_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	aggregate := mocks.NewMockAggregate[string](ctrl)
	storageErr := fmt.Errorf("storage unavailable")

	// Given an aggregate failing on its second item
	aggregate.EXPECT().Count().Return(2).AnyTimes()
	aggregate.EXPECT().ItemAt(0).Return("left", nil).Times(1)
	aggregate.EXPECT().ItemAt(1).Return("", storageErr).Times(1)

	cursor, err := NewCursor[string](aggregate)
	req.NoError(err)
	_, err = cursor.First()
	req.NoError(err)
	req.NoError(cursor.Err())

	// When the cursor reaches the failing item
	opt := cursor.Next()

	// Then no value is returned and the cause is kept
	req.False(opt.IsPresent())
	req.False(cursor.IsExhausted())
	req.ErrorIs(cursor.Err(), storageErr)
}

func TestCursor_Works_Over_Any_Aggregate(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	aggregate := mocks.NewMockAggregate[string](ctrl)

	// Given an aggregate only exposing Count and ItemAt
	aggregate.EXPECT().Count().Return(2).AnyTimes()
	aggregate.EXPECT().ItemAt(0).Return("left", nil).Times(1)
	aggregate.EXPECT().ItemAt(1).Return("right", nil).Times(1)

	cursor, err := NewCursor[string](aggregate)
	req.NoError(err)

	// Then the cursor walks it without knowing its storage
	req.Equal([]string{"left", "right"}, walk(t, cursor))
	req.False(cursor.Next().IsPresent())
}

func TestOption(t *testing.T) {
	req := require.New(t)

	// A present zero value is not the same as nothing
	zero := Some(0)
	value, ok := zero.Get()
	req.True(ok)
	req.Equal(0, value)
	req.Equal(0, zero.OrElse(42))

	none := None[int]()
	req.False(none.IsPresent())
	req.Equal(42, none.OrElse(42))
	req.Equal(none, Option[int]{})
}
