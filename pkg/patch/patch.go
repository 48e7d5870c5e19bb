// Package patch provides a tri-state field for partial updates. A Field is
// unchanged, set to a value, or cleared, so callers never have to infer
// intent from a nil pointer alone.
package patch

// Field represents one optional column in a partial update.
// The zero value is Unchanged.
type Field[T any] struct {
	set   bool
	clear bool
	value T
}

// Unchanged returns a Field that leaves the stored value untouched.
func Unchanged[T any]() Field[T] {
	return Field[T]{}
}

// Set returns a Field that overwrites the stored value with v.
func Set[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

// Clear returns a Field that removes the stored value entirely.
func Clear[T any]() Field[T] {
	return Field[T]{clear: true}
}

// IsUnchanged reports whether the field should be left as is.
func (f Field[T]) IsUnchanged() bool { return !f.set && !f.clear }

// IsSet reports whether the field carries a new value.
func (f Field[T]) IsSet() bool { return f.set }

// IsClear reports whether the field should be removed.
func (f Field[T]) IsClear() bool { return f.clear }

// Value returns the new value and whether one was set.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.set
}
