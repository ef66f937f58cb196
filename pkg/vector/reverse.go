package vector

import "cmp"

// ReverseIterator walks a vector from back to front. It wraps a forward
// iterator one slot past the element it yields.
type ReverseIterator[T any] struct {
	base Iterator[T]
}

// ConstReverseIterator is the read-only counterpart of ReverseIterator.
type ConstReverseIterator[T any] struct {
	base ConstIterator[T]
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{base: v.End()} }

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{base: v.Begin()} }

// CRBegin returns a read-only reverse iterator to the last element.
func (v *Vector[T]) CRBegin() ConstReverseIterator[T] { return v.RBegin().Const() }

// CREnd returns a read-only reverse iterator one before the first element.
func (v *Vector[T]) CREnd() ConstReverseIterator[T] { return v.REnd().Const() }

// Base returns the underlying forward iterator.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.base }

// Const widens it to a read-only reverse iterator.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{base: it.base.Const()}
}

func (it ReverseIterator[T]) Get() T { return it.base.slots[it.base.pos-1] }
func (it ReverseIterator[T]) Ptr() *T { return &it.base.slots[it.base.pos-1] }
func (it ReverseIterator[T]) At(n int) *T { return &it.base.slots[it.base.pos-1-n] }
func (it ReverseIterator[T]) Set(value T) { replace(it.Ptr(), value) }
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return it.Add(1) }
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return it.Add(-1) }
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return it.Add(-n) }

// Inc advances towards the front and returns the previous position.
func (it *ReverseIterator[T]) Inc() ReverseIterator[T] {
	prev := *it
	it.base.pos--
	return prev
}

// Dec moves towards the back and returns the previous position.
func (it *ReverseIterator[T]) Dec() ReverseIterator[T] {
	prev := *it
	it.base.pos++
	return prev
}

// Add returns the cursor moved n positions towards the front.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	it.base.pos -= n
	return it
}

// Diff returns the distance from other to it in reverse order.
func (it ReverseIterator[T]) Diff(other ReverseIterator[T]) int {
	return other.base.pos - it.base.pos
}

func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.base.Equal(other.base)
}

func (it ReverseIterator[T]) Compare(other ReverseIterator[T]) int {
	return cmp.Compare(other.base.pos, it.base.pos)
}

func (it ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return it.base.pos > other.base.pos
}

// Base returns the underlying forward iterator.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.base }

func (it ConstReverseIterator[T]) Get() T { return it.base.slots[it.base.pos-1] }
func (it ConstReverseIterator[T]) At(n int) T { return it.base.slots[it.base.pos-1-n] }
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] { return it.Add(1) }
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] { return it.Add(-1) }
func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] { return it.Add(-n) }

func (it *ConstReverseIterator[T]) Inc() ConstReverseIterator[T] {
	prev := *it
	it.base.pos--
	return prev
}

func (it *ConstReverseIterator[T]) Dec() ConstReverseIterator[T] {
	prev := *it
	it.base.pos++
	return prev
}

func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	it.base.pos -= n
	return it
}

func (it ConstReverseIterator[T]) Diff(other ConstReverseIterator[T]) int {
	return other.base.pos - it.base.pos
}

func (it ConstReverseIterator[T]) Equal(other ConstReverseIterator[T]) bool {
	return it.base.Equal(other.base)
}

func (it ConstReverseIterator[T]) Compare(other ConstReverseIterator[T]) int {
	return cmp.Compare(other.base.pos, it.base.pos)
}

func (it ConstReverseIterator[T]) Less(other ConstReverseIterator[T]) bool {
	return it.base.pos > other.base.pos
}
