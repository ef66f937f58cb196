package vector

// At returns a pointer to element i. i is not checked against Len.
func (v *Vector[T]) At(i int) *T {
	return &v.slots[i]
}

// Index returns element i. i is not checked against Len.
func (v *Vector[T]) Index(i int) T {
	return v.slots[i]
}

// Set destroys element i and moves value into its slot.
func (v *Vector[T]) Set(i int, value T) {
	replace(&v.slots[i], value)
}

// Front returns a pointer to the first element.
func (v *Vector[T]) Front() *T {
	return &v.slots[0]
}

// Back returns a pointer to the last element.
func (v *Vector[T]) Back() *T {
	return &v.slots[v.length-1]
}

// Data returns the live elements as a slice over the vector's storage, or nil
// when no storage is allocated. The slice has no spare capacity.
func (v *Vector[T]) Data() []T {
	if v.slots == nil {
		return nil
	}
	return v.slots[:v.length:v.length]
}

// Clear destroys every element. Capacity is retained.
func (v *Vector[T]) Clear() {
	for i := 0; i < v.length; i++ {
		destroy(&v.slots[i])
	}
	v.length = 0
}

// PushBack appends value, moving it into the vector.
func (v *Vector[T]) PushBack(value T) {
	if v.length == v.Cap() {
		v.grow()
	}
	v.slots[v.length] = value
	v.length++
}

// EmplaceBack constructs a new last element in place and returns a pointer to
// it. init receives the raw slot; a nil init default-constructs it.
func (v *Vector[T]) EmplaceBack(init func(*T)) *T {
	if v.length == v.Cap() {
		v.grow()
	}
	slot := &v.slots[v.length]
	if init != nil {
		init(slot)
	} else {
		construct(slot)
	}
	v.length++
	return slot
}

// PopBack destroys the last element.
func (v *Vector[T]) PopBack() {
	destroy(&v.slots[v.length-1])
	v.length--
}

// Resize sets the length to n, default-constructing new elements or
// destroying trailing ones.
func (v *Vector[T]) Resize(n int) {
	v.resize(n, construct[T])
}

// ResizeWith sets the length to n, filling new slots with copies of value.
func (v *Vector[T]) ResizeWith(n int, value T) {
	v.resize(n, func(slot *T) {
		*slot = copyOf(&value)
	})
}

func (v *Vector[T]) resize(n int, fill func(*T)) {
	v.Reserve(n)
	for i := n; i < v.length; i++ {
		destroy(&v.slots[i])
	}
	for i := v.length; i < n; i++ {
		fill(&v.slots[i])
	}
	v.length = n
}
