package vector

import (
	"cmp"
	"unsafe"
)

// Iterator is a mutable random-access cursor into a vector's storage. It is
// a plain position with no validity tracking; see the package documentation
// for the invalidation rules.
type Iterator[T any] struct {
	slots []T
	pos   int
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	slots []T
	pos   int
}

func (v *Vector[T]) iter(pos int) Iterator[T] {
	return Iterator[T]{slots: v.slots, pos: pos}
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return v.iter(0) }

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] { return v.iter(v.length) }

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] { return v.Begin().Const() }

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] { return v.End().Const() }

func sameStorage[T any](a, b []T) bool {
	return unsafe.SliceData(a) == unsafe.SliceData(b)
}

// Const widens it to a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{slots: it.slots, pos: it.pos}
}

// Get returns the element under the cursor.
func (it Iterator[T]) Get() T { return it.slots[it.pos] }

// Ptr returns a pointer to the element under the cursor.
func (it Iterator[T]) Ptr() *T { return &it.slots[it.pos] }

// At returns a pointer to the element n positions from the cursor.
func (it Iterator[T]) At(n int) *T { return &it.slots[it.pos+n] }

// Set destroys the element under the cursor and moves value into its slot.
func (it Iterator[T]) Set(value T) { replace(&it.slots[it.pos], value) }

// Inc advances the cursor and returns its previous position.
func (it *Iterator[T]) Inc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Dec moves the cursor back and returns its previous position.
func (it *Iterator[T]) Dec() Iterator[T] {
	prev := *it
	it.pos--
	return prev
}

// Next returns the cursor one position forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the cursor one position back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the cursor moved n positions.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n
	return it
}

// Sub returns the cursor moved back n positions.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Diff returns the distance from other to it.
func (it Iterator[T]) Diff(other Iterator[T]) int { return it.pos - other.pos }

// Equal reports whether both cursors address the same slot.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.pos == other.pos && sameStorage(it.slots, other.slots)
}

// Compare orders cursors of the same storage by position.
func (it Iterator[T]) Compare(other Iterator[T]) int { return cmp.Compare(it.pos, other.pos) }

// Less reports whether it comes before other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// Get returns the element under the cursor.
func (it ConstIterator[T]) Get() T { return it.slots[it.pos] }

// At returns the element n positions from the cursor.
func (it ConstIterator[T]) At(n int) T { return it.slots[it.pos+n] }

func (it ConstIterator[T]) ptr() *T { return &it.slots[it.pos] }

// Inc advances the cursor and returns its previous position.
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Dec moves the cursor back and returns its previous position.
func (it *ConstIterator[T]) Dec() ConstIterator[T] {
	prev := *it
	it.pos--
	return prev
}

// Next returns the cursor one position forward.
func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Add(1) }

// Prev returns the cursor one position back.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Add(-1) }

// Add returns the cursor moved n positions.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	it.pos += n
	return it
}

// Sub returns the cursor moved back n positions.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { return it.Add(-n) }

// Diff returns the distance from other to it.
func (it ConstIterator[T]) Diff(other ConstIterator[T]) int { return it.pos - other.pos }

// Equal reports whether both cursors address the same slot.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.pos == other.pos && sameStorage(it.slots, other.slots)
}

// Compare orders cursors of the same storage by position.
func (it ConstIterator[T]) Compare(other ConstIterator[T]) int { return cmp.Compare(it.pos, other.pos) }

// Less reports whether it comes before other.
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool { return it.pos < other.pos }
