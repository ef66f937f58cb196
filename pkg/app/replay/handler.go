package replay

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/deploymenttheory/go-vector/pkg/app"
	"github.com/deploymenttheory/go-vector/pkg/vector"
)

// Handle processes a replay request
func Handle(ctx *app.Context, req *Request) (*Response, error) {
	startTime := time.Now()

	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Load and check the script
	script, err := loadScript(req)
	if err != nil {
		return nil, err
	}
	if err := validateScript(script, req.MaxSteps); err != nil {
		return nil, err
	}

	response := &Response{
		RunID:  uuid.NewString(),
		Script: script.Name,
		Steps:  make([]StepResult, 0, len(script.Steps)),
	}
	log := ctx.Logger.With(zap.String("run_id", response.RunID), zap.String("script", script.Name))
	log.Info("replay started", zap.Int("steps", len(script.Steps)), zap.Int("initial", len(script.Initial)))

	// 3. Apply every step
	v := vector.FromSlice(script.Initial)
	defer v.Destroy()

	for i, step := range script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, app.NewError(app.ErrCodeTimeout, fmt.Sprintf("replay interrupted at step %d", i), err)
		}
		if err := validateStep(step, v.Len()); err != nil {
			return nil, app.NewError(app.ErrCodeInvalidInput, fmt.Sprintf("step %d", i), err)
		}

		realloc := apply(&v, step)
		if realloc {
			response.Reallocations++
		}
		response.Steps = append(response.Steps, StepResult{
			Index:   i,
			Op:      step.Op,
			Len:     v.Len(),
			Cap:     v.Cap(),
			Realloc: realloc,
		})
		log.Debug("step applied",
			zap.Int("index", i),
			zap.String("op", step.Op),
			zap.Int("len", v.Len()),
			zap.Int("cap", v.Cap()),
			zap.Bool("realloc", realloc))
		ctx.Progress(step.Op, (i+1)*100/len(script.Steps))
	}

	// 4. Snapshot the final state
	response.Final = append([]int{}, v.Data()...)
	response.Len = v.Len()
	response.Cap = v.Cap()
	response.Elapsed = time.Since(startTime)

	log.Info("replay completed",
		zap.Int("len", response.Len),
		zap.Int("cap", response.Cap),
		zap.Int("reallocations", response.Reallocations),
		zap.Duration("elapsed", response.Elapsed))

	return response, nil
}

func loadScript(req *Request) (*Script, error) {
	data := req.Source
	if len(data) == 0 {
		var err error
		data, err = os.ReadFile(req.ScriptPath)
		if err != nil {
			return nil, app.NewError(app.ErrCodeInvalidInput, "cannot read script", err)
		}
	}
	return ParseScript(data)
}

// apply runs one validated step and reports whether the storage moved.
func apply(v *vector.Vector[int], step Step) bool {
	before := v.CBegin()

	switch step.Op {
	case OpPushBack:
		v.PushBack(step.Value)
	case OpPopBack:
		v.PopBack()
	case OpEmplaceBack:
		value := step.Value
		v.EmplaceBack(func(slot *int) { *slot = value })
	case OpInsert:
		v.Insert(v.CBegin().Add(step.Pos), step.Value)
	case OpInsertN:
		v.InsertN(v.CBegin().Add(step.Pos), step.Count, step.Value)
	case OpInsertValues:
		v.InsertValues(v.CBegin().Add(step.Pos), step.Values...)
	case OpErase:
		v.Erase(v.CBegin().Add(step.Pos))
	case OpEraseRange:
		v.EraseRange(v.CBegin().Add(step.Pos), v.CBegin().Add(step.To))
	case OpReserve:
		v.Reserve(step.Count)
	case OpShrinkToFit:
		v.ShrinkToFit()
	case OpResize:
		v.Resize(step.Count)
	case OpClear:
		v.Clear()
	}

	return !before.Equal(v.CBegin())
}
