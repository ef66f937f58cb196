// Package ubcheck provides Checker, an instrumented int element that detects
// use of uninitialized or destroyed values and counts live instances.
package ubcheck

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// guardWord marks a Checker as constructed. A raw or destroyed Checker holds 0.
const guardWord = 1234567

var live atomic.Int64

// Live returns the number of Checkers constructed and not yet destroyed.
func Live() int64 {
	return live.Load()
}

// Reset zeroes the live counter.
func Reset() {
	live.Store(0)
}

// Violation is the panic value raised when a Checker is misused.
type Violation struct {
	Op    string
	Guard int
}

func (v *Violation) Error() string {
	if v.Guard == guardWord {
		return fmt.Sprintf("ubcheck: %s on a live value", v.Op)
	}
	return fmt.Sprintf("ubcheck: %s on an uninitialized or destroyed value (guard %d)", v.Op, v.Guard)
}

// Checker is an element type for exercising container lifecycles.
type Checker struct {
	value int
	guard int
}

// New constructs a live Checker holding value.
func New(value int) Checker {
	live.Add(1)
	return Checker{value: value, guard: guardWord}
}

// Init default-constructs c in place. c must be raw.
func (c *Checker) Init() {
	if c.guard == guardWord {
		panic(&Violation{Op: "construct", Guard: c.guard})
	}
	*c = New(0)
}

// Clone returns a new live Checker with the same value.
func (c Checker) Clone() Checker {
	c.check("clone")
	return New(c.value)
}

// Destroy ends the lifetime of c.
func (c *Checker) Destroy() {
	c.check("destroy")
	if live.Load() <= 0 {
		panic(&Violation{Op: "destroy with no live instances", Guard: c.guard})
	}
	live.Add(-1)
	c.guard = 0
}

// Value returns the held value.
func (c Checker) Value() int {
	c.check("read")
	return c.value
}

// Set overwrites the held value.
func (c *Checker) Set(value int) {
	c.check("write")
	c.value = value
}

// Equal reports whether both Checkers hold the same value.
func (c Checker) Equal(other Checker) bool {
	c.check("compare")
	other.check("compare")
	return c.value == other.value
}

// Compare orders Checkers by value.
func (c Checker) Compare(other Checker) int {
	c.check("compare")
	other.check("compare")
	switch {
	case c.value < other.value:
		return -1
	case c.value > other.value:
		return 1
	}
	return 0
}

// Alive reports whether c is constructed.
func (c Checker) Alive() bool {
	return c.guard == guardWord
}

func (c Checker) String() string {
	if !c.Alive() {
		return "<raw>"
	}
	return strconv.Itoa(c.value)
}

func (c Checker) check(op string) {
	if c.guard != guardWord {
		panic(&Violation{Op: op, Guard: c.guard})
	}
}
