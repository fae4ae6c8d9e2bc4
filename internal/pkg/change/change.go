// Package change models a single physical mutation of a source record as a
// closed set of variants: Created, Updated or Deleted.
package change

// Change is implemented by Created, Updated and Deleted only.
type Change[T any] interface {
	// Before returns the snapshot prior to the mutation, if there was one.
	Before() (T, bool)
	// After returns the snapshot following the mutation, if there is one.
	After() (T, bool)

	sealed()
}

type Created[T any] struct {
	Record T
}

type Updated[T any] struct {
	Prev T
	Next T
}

type Deleted[T any] struct {
	Record T
}

func (c Created[T]) Before() (T, bool) {
	var zero T
	return zero, false
}

func (c Created[T]) After() (T, bool) { return c.Record, true }

func (Created[T]) sealed() {}

func (c Updated[T]) Before() (T, bool) { return c.Prev, true }

func (c Updated[T]) After() (T, bool) { return c.Next, true }

func (Updated[T]) sealed() {}

func (c Deleted[T]) Before() (T, bool) { return c.Record, true }

func (c Deleted[T]) After() (T, bool) {
	var zero T
	return zero, false
}

func (Deleted[T]) sealed() {}

// From builds the variant matching the presence of before and after. The
// second return value is false when neither side is present, which happens
// when a record is created and deleted within one physical event; such a
// mutation nets to nothing.
func From[T any](before, after *T) (Change[T], bool) {
	switch {
	case before == nil && after == nil:
		return nil, false
	case before == nil:
		return Created[T]{Record: *after}, true
	case after == nil:
		return Deleted[T]{Record: *before}, true
	default:
		return Updated[T]{Prev: *before, Next: *after}, true
	}
}

// Kind names the variant, mostly for logging.
func Kind[T any](c Change[T]) string {
	switch c.(type) {
	case Created[T]:
		return "created"
	case Updated[T]:
		return "updated"
	case Deleted[T]:
		return "deleted"
	default:
		return "unknown"
	}
}
