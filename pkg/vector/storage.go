package vector

import (
	"fmt"
	"math"
	"os"
	"unsafe"
)

// abortExitCode matches the status a shell reports for SIGABRT.
const abortExitCode = 134

// abort terminates the process. Storage failures have no recoverable state.
var abort = func(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	os.Exit(abortExitCode)
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Empty reports whether the vector holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.length == 0
}

// Cap returns the number of allocated slots, live or raw.
func (v *Vector[T]) Cap() int {
	return len(v.slots)
}

// MaxSize returns the largest element count the address space allows for T.
func (v *Vector[T]) MaxSize() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(uintptr(math.MaxInt) / size)
}

// Reserve grows storage to exactly n slots when n exceeds the capacity.
func (v *Vector[T]) Reserve(n int) {
	if n > v.Cap() {
		v.reallocate(n)
	}
}

// ShrinkToFit releases raw slots. An empty vector gives up its storage.
func (v *Vector[T]) ShrinkToFit() {
	switch {
	case v.length == 0 && v.Cap() > 0:
		v.slots = nil
	case v.length < v.Cap():
		v.reallocate(v.length)
	}
}

// grow makes room for one more element using the doubling policy.
func (v *Vector[T]) grow() {
	v.Reserve(max(2*v.length, 1))
}

// growFor makes room for count more elements, doubling when that is larger.
func (v *Vector[T]) growFor(count int) {
	need := v.length + count
	if need > v.Cap() {
		v.Reserve(max(2*v.length, need))
	}
}

// reallocate relocates the live elements into a block of exactly n slots.
// Relocation is a bitwise move; no lifecycle hook runs.
func (v *Vector[T]) reallocate(n int) {
	if n > v.MaxSize() {
		abort(fmt.Sprintf("vector: requested %d slots, max size is %d", n, v.MaxSize()))
		return
	}
	slots := allocate[T](n)
	copy(slots, v.slots[:v.length])
	v.slots = slots
}

func allocate[T any](n int) (slots []T) {
	defer func() {
		if r := recover(); r != nil {
			abort(fmt.Sprintf("vector: cannot allocate %d slots: %v", n, r))
		}
	}()
	return make([]T, n)
}
