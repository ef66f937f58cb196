package vector

import "fmt"

// Vector is a contiguous growable sequence of T. The zero value is an empty
// vector with no storage.
type Vector[T any] struct {
	slots  []T // len(slots) is the capacity
	length int
}

// Sized returns a vector of n default-constructed elements.
func Sized[T any](n int) Vector[T] {
	var v Vector[T]
	v.Resize(n)
	return v
}

// Filled returns a vector of n copies of value. The caller keeps value.
func Filled[T any](n int, value T) Vector[T] {
	var v Vector[T]
	v.ResizeWith(n, value)
	return v
}

// Of returns a vector holding values in order. Ownership of each value moves
// into the vector.
func Of[T any](values ...T) Vector[T] {
	var v Vector[T]
	v.Reserve(len(values))
	for _, value := range values {
		v.slots[v.length] = value
		v.length++
	}
	return v
}

// FromSlice returns a vector holding copies of the elements of s.
func FromSlice[T any](s []T) Vector[T] {
	var v Vector[T]
	v.Reserve(len(s))
	for i := range s {
		v.slots[v.length] = copyOf(&s[i])
		v.length++
	}
	return v
}

// FromRange returns a vector holding copies of the elements in [first, last).
func FromRange[T any](first, last ConstIterator[T]) Vector[T] {
	var v Vector[T]
	v.Reserve(last.Diff(first))
	for it := first; !it.Equal(last); it.Inc() {
		v.slots[v.length] = copyOf(it.ptr())
		v.length++
	}
	return v
}

// Clone returns a deep copy of v in fresh storage sized to its length.
func (v *Vector[T]) Clone() Vector[T] {
	var out Vector[T]
	out.Reserve(v.length)
	for i := 0; i < v.length; i++ {
		out.slots[i] = copyOf(&v.slots[i])
		out.length++
	}
	return out
}

// Take moves the contents of v into the returned vector and leaves v empty
// with no storage.
func (v *Vector[T]) Take() Vector[T] {
	out := *v
	*v = Vector[T]{}
	return out
}

// Destroy destroys every live element and releases the storage.
func (v *Vector[T]) Destroy() {
	for i := 0; i < v.length; i++ {
		destroy(&v.slots[i])
	}
	v.slots = nil
	v.length = 0
}

// CopyFrom replaces the contents of v with a deep copy of other.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.replaceWith(&tmp)
}

// MoveFrom replaces the contents of v with those of other, leaving other
// empty with no storage.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.Destroy()
	*v = other.Take()
}

// AssignValues replaces the contents of v with values, moving them in.
func (v *Vector[T]) AssignValues(values ...T) {
	tmp := Of(values...)
	v.replaceWith(&tmp)
}

// AssignN replaces the contents of v with n copies of value.
func (v *Vector[T]) AssignN(n int, value T) {
	tmp := Filled(n, value)
	v.replaceWith(&tmp)
}

// AssignRange replaces the contents of v with copies of [first, last). The
// range may point into v itself.
func (v *Vector[T]) AssignRange(first, last ConstIterator[T]) {
	tmp := FromRange(first, last)
	v.replaceWith(&tmp)
}

// replaceWith swaps in tmp and destroys what v held before.
func (v *Vector[T]) replaceWith(tmp *Vector[T]) {
	v.Swap(tmp)
	tmp.Destroy()
}

// Swap exchanges the storage and contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	*v, *other = *other, *v
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.slots[:v.length])
}
