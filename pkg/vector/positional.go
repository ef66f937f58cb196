package vector

// insertRegion opens count default-constructed slots at pos. The tail is
// rotated into place by pairwise swaps walking back from the new end.
func (v *Vector[T]) insertRegion(pos, count int) {
	if count == 0 {
		return
	}
	v.growFor(count)
	v.Resize(v.length + count)
	for i := v.length - 1; i >= pos+count; i-- {
		v.slots[i], v.slots[i-count] = v.slots[i-count], v.slots[i]
	}
}

// eraseRegion closes the count slots at pos. Retained elements are swapped
// back into the gap and the displaced tail is destroyed by Resize.
func (v *Vector[T]) eraseRegion(pos, count int) {
	if count == 0 {
		return
	}
	for i := pos; i+count < v.length; i++ {
		v.slots[i], v.slots[i+count] = v.slots[i+count], v.slots[i]
	}
	v.Resize(v.length - count)
}

// Insert moves value in before pos and returns an iterator to it.
func (v *Vector[T]) Insert(pos ConstIterator[T], value T) Iterator[T] {
	p := pos.pos
	v.insertRegion(p, 1)
	replace(&v.slots[p], value)
	return v.iter(p)
}

// InsertN inserts count copies of value before pos and returns an iterator to
// the first of them, or pos when count is zero.
func (v *Vector[T]) InsertN(pos ConstIterator[T], count int, value T) Iterator[T] {
	p := pos.pos
	v.insertRegion(p, count)
	for i := p; i < p+count; i++ {
		replace(&v.slots[i], copyOf(&value))
	}
	return v.iter(p)
}

// InsertValues moves values in before pos, preserving their order.
func (v *Vector[T]) InsertValues(pos ConstIterator[T], values ...T) Iterator[T] {
	p := pos.pos
	v.insertRegion(p, len(values))
	for i, value := range values {
		replace(&v.slots[p+i], value)
	}
	return v.iter(p)
}

// InsertRange inserts copies of [first, last) before pos. The range may point
// into v itself; it is copied before any element moves.
func (v *Vector[T]) InsertRange(pos, first, last ConstIterator[T]) Iterator[T] {
	values := make([]T, 0, last.Diff(first))
	for it := first; !it.Equal(last); it.Inc() {
		values = append(values, copyOf(it.ptr()))
	}
	return v.InsertValues(pos, values...)
}

// Emplace constructs a new element via init and moves it in before pos.
// A nil init default-constructs the element.
func (v *Vector[T]) Emplace(pos ConstIterator[T], init func(*T)) Iterator[T] {
	var value T
	if init != nil {
		init(&value)
	} else {
		construct(&value)
	}
	return v.Insert(pos, value)
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it.
func (v *Vector[T]) Erase(pos ConstIterator[T]) Iterator[T] {
	p := pos.pos
	v.eraseRegion(p, 1)
	return v.iter(p)
}

// EraseRange removes [first, last) and returns an iterator to the element
// that followed the range.
func (v *Vector[T]) EraseRange(first, last ConstIterator[T]) Iterator[T] {
	p := first.pos
	v.eraseRegion(p, last.pos-p)
	return v.iter(p)
}
