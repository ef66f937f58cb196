package vector

// Initializer is implemented by element types whose default state is not the
// zero value. Init is called on a raw (zeroed) slot to construct it in place.
type Initializer interface {
	Init()
}

// Cloner is implemented by element types that own resources and need a deep
// copy. Clone may have a value or pointer receiver.
type Cloner[T any] interface {
	Clone() T
}

// Finalizer is implemented by element types that must release resources when
// they leave the vector. The slot is zeroed after Destroy returns.
type Finalizer interface {
	Destroy()
}

// construct brings the raw slot into a default-constructed state.
func construct[T any](slot *T) {
	if i, ok := any(slot).(Initializer); ok {
		i.Init()
	}
}

// copyOf returns a copy of *src that shares no ownership with it.
func copyOf[T any](src *T) T {
	if c, ok := any(src).(Cloner[T]); ok {
		return c.Clone()
	}
	return *src
}

// destroy ends the lifetime of the element in slot and leaves the slot raw.
func destroy[T any](slot *T) {
	if f, ok := any(slot).(Finalizer); ok {
		f.Destroy()
	}
	var zero T
	*slot = zero
}

// replace destroys the live element in slot and moves value into it.
func replace[T any](slot *T, value T) {
	destroy(slot)
	*slot = value
}
