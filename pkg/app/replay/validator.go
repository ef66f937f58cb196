package replay

import (
	"fmt"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

// Validate validates a replay request
func (r *Request) Validate() error {
	if r.ScriptPath == "" && len(r.Source) == 0 {
		return app.NewError(app.ErrCodeInvalidInput, "script path is required", nil)
	}

	if r.MaxSteps < 1 || r.MaxSteps > 1_000_000 {
		return app.NewError(app.ErrCodeInvalidInput, "max steps must be between 1 and 1000000", nil)
	}

	return nil
}

// validateScript checks limits that do not depend on the vector state
func validateScript(s *Script, maxSteps int) error {
	if len(s.Steps) > maxSteps {
		return app.NewError(app.ErrCodeInvalidInput,
			fmt.Sprintf("script has %d steps, limit is %d", len(s.Steps), maxSteps), nil)
	}
	if len(s.Initial) > MaxSlots {
		return app.NewError(app.ErrCodeInvalidInput, "initial contents exceed slot limit", nil)
	}
	return nil
}

// validateStep checks a step against the current length. The vector itself
// does no bounds checking, so every position is verified here first.
func validateStep(step Step, length int) error {
	switch step.Op {
	case OpPushBack, OpEmplaceBack, OpShrinkToFit, OpClear:
		return nil
	case OpPopBack:
		if length == 0 {
			return fmt.Errorf("%s on empty vector", step.Op)
		}
	case OpInsert, OpInsertValues:
		return checkPos(step.Op, step.Pos, length)
	case OpInsertN:
		if err := checkPos(step.Op, step.Pos, length); err != nil {
			return err
		}
		if step.Count < 0 {
			return fmt.Errorf("%s count %d is negative", step.Op, step.Count)
		}
		return checkCount(step.Op, length+step.Count)
	case OpErase:
		if step.Pos < 0 || step.Pos >= length {
			return fmt.Errorf("%s position %d out of range [0, %d)", step.Op, step.Pos, length)
		}
	case OpEraseRange:
		if step.Pos < 0 || step.To < step.Pos || step.To > length {
			return fmt.Errorf("%s range [%d, %d) out of range [0, %d]", step.Op, step.Pos, step.To, length)
		}
	case OpReserve, OpResize:
		return checkCount(step.Op, step.Count)
	default:
		return fmt.Errorf("unknown operation %q", step.Op)
	}
	return nil
}

func checkPos(op string, pos, length int) error {
	if pos < 0 || pos > length {
		return fmt.Errorf("%s position %d out of range [0, %d]", op, pos, length)
	}
	return nil
}

func checkCount(op string, count int) error {
	if count < 0 || count > MaxSlots {
		return fmt.Errorf("%s count %d out of range [0, %d]", op, count, MaxSlots)
	}
	return nil
}
