package selfcheck

import (
	"fmt"
	"slices"

	"github.com/deploymenttheory/go-vector/internal/ubcheck"
	"github.com/deploymenttheory/go-vector/pkg/vector"
)

// Scenario exercises one group of vector operations over instrumented
// elements. Run returns an error when the observed contents are wrong; misuse
// of an element surfaces as a *ubcheck.Violation panic.
type Scenario struct {
	Name        string
	Description string
	Run         func() error
}

type checkerVec = vector.Vector[ubcheck.Checker]

// Scenarios lists every built-in scenario in run order.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "push-pop", Description: "append, pop, clear and destroy", Run: pushPop},
		{Name: "resize", Description: "grow and shrink with default and copied fill", Run: resize},
		{Name: "insert-erase", Description: "positional insert, emplace and erase", Run: insertErase},
		{Name: "copy-move", Description: "clone, copy-assign, take and move-assign", Run: copyMove},
		{Name: "nested", Description: "vectors of vectors with emplace and assignment", Run: nested},
		{Name: "capacity", Description: "reserve and shrink-to-fit relocation", Run: capacity},
	}
}

func makeCheckers(values ...int) checkerVec {
	var v checkerVec
	v.Reserve(len(values))
	for _, value := range values {
		v.PushBack(ubcheck.New(value))
	}
	return v
}

func contents(v *checkerVec) []int {
	out := make([]int, 0, v.Len())
	for c := range v.Values() {
		out = append(out, c.Value())
	}
	return out
}

func expect(v *checkerVec, want ...int) error {
	if got := contents(v); !slices.Equal(got, want) {
		return fmt.Errorf("contents %v, want %v", got, want)
	}
	return nil
}

func pushPop() error {
	var v checkerVec
	defer v.Destroy()

	for i := 0; i < 5; i++ {
		v.PushBack(ubcheck.New(i))
	}
	if v.Len() != 5 || v.Front().Value() != 0 || v.Back().Value() != 4 {
		return fmt.Errorf("after push: len %d front %d back %d", v.Len(), v.Front().Value(), v.Back().Value())
	}

	v.PopBack()
	if err := expect(&v, 0, 1, 2, 3); err != nil {
		return err
	}

	capBefore := v.Cap()
	v.Clear()
	if v.Len() != 0 || v.Cap() != capBefore {
		return fmt.Errorf("after clear: len %d cap %d, want 0 %d", v.Len(), v.Cap(), capBefore)
	}

	v.EmplaceBack(nil)
	return expect(&v, 0)
}

func resize() error {
	v := makeCheckers(1, 2)
	defer v.Destroy()

	v.Resize(4)
	if err := expect(&v, 1, 2, 0, 0); err != nil {
		return err
	}

	fill := ubcheck.New(7)
	v.ResizeWith(6, fill)
	fill.Destroy()
	if err := expect(&v, 1, 2, 0, 0, 7, 7); err != nil {
		return err
	}

	v.Resize(1)
	return expect(&v, 1)
}

func insertErase() error {
	v := makeCheckers(1, 2, 3, 4, 5, 6)
	defer v.Destroy()

	it := v.EraseRange(v.CBegin().Add(1), v.CBegin().Add(3))
	if it.Get().Value() != 4 {
		return fmt.Errorf("erase returned %d, want 4", it.Get().Value())
	}
	if err := expect(&v, 1, 4, 5, 6); err != nil {
		return err
	}

	v.Insert(v.CBegin(), ubcheck.New(0))
	proto := ubcheck.New(9)
	v.InsertN(v.CEnd(), 2, proto)
	proto.Destroy()
	v.InsertValues(v.CBegin().Add(2), ubcheck.New(2), ubcheck.New(3))
	v.Emplace(v.CBegin().Add(1), func(c *ubcheck.Checker) { *c = ubcheck.New(-1) })
	if err := expect(&v, 0, -1, 1, 2, 3, 4, 5, 6, 9, 9); err != nil {
		return err
	}

	src := makeCheckers(7, 8)
	defer src.Destroy()
	v.InsertRange(v.CEnd(), src.CBegin(), src.CEnd())

	v.Erase(v.CBegin().Add(1))
	v.EraseRange(v.CEnd().Sub(4), v.CEnd().Sub(2))
	return expect(&v, 0, 1, 2, 3, 4, 5, 6, 7, 8)
}

func copyMove() error {
	orig := makeCheckers(1, 2, 3)
	defer orig.Destroy()

	cp := orig.Clone()
	defer cp.Destroy()
	cp.At(0).Set(10)
	if err := expect(&orig, 1, 2, 3); err != nil {
		return fmt.Errorf("clone is not independent: %w", err)
	}

	var assigned checkerVec
	defer assigned.Destroy()
	assigned.CopyFrom(&cp)

	moved := assigned.Take()
	defer moved.Destroy()
	if assigned.Len() != 0 || assigned.Cap() != 0 {
		return fmt.Errorf("take left len %d cap %d", assigned.Len(), assigned.Cap())
	}

	target := makeCheckers(5)
	defer target.Destroy()
	target.MoveFrom(&moved)
	if !vector.EqualFunc(&target, &cp, ubcheck.Checker.Equal) {
		return fmt.Errorf("move-assign produced %v, want %v", contents(&target), contents(&cp))
	}
	return nil
}

func nested() error {
	var v vector.Vector[checkerVec]
	defer v.Destroy()

	v.EmplaceBack(func(inner *checkerVec) { inner.PushBack(ubcheck.New(-1)) })
	v.Emplace(v.CBegin(), func(inner *checkerVec) { *inner = makeCheckers(3, 3) })

	proto := makeCheckers(1, 2)
	v.ResizeWith(4, proto)
	proto.Destroy()

	v.Set(2, makeCheckers(4, 5))
	v.Erase(v.CBegin().Add(3))

	cp := v.Clone()
	defer cp.Destroy()

	want := [][]int{{3, 3}, {-1}, {4, 5}}
	for i, row := range want {
		if err := expect(cp.At(i), row...); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}

func capacity() error {
	v := makeCheckers(1, 2, 3)
	defer v.Destroy()

	v.Reserve(100)
	if v.Cap() != 100 {
		return fmt.Errorf("reserve: cap %d, want 100", v.Cap())
	}
	v.ShrinkToFit()
	if v.Cap() != 3 {
		return fmt.Errorf("shrink: cap %d, want 3", v.Cap())
	}
	v.Clear()
	v.ShrinkToFit()
	if v.Cap() != 0 || v.Data() != nil {
		return fmt.Errorf("shrink empty: cap %d", v.Cap())
	}
	return nil
}
