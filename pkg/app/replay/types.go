package replay

import "time"

// Request represents a script replay request
type Request struct {
	// ScriptPath is read when Source is empty
	ScriptPath string
	Source     []byte
	MaxSteps   int
}

// Script is a sequence of vector operations applied to a vector of ints
type Script struct {
	Name    string `yaml:"name" json:"name"`
	Initial []int  `yaml:"initial" json:"initial"`
	Steps   []Step `yaml:"steps" json:"steps"`
}

// Step is one operation. Which fields matter depends on Op.
type Step struct {
	Op     string `yaml:"op" json:"op"`
	Pos    int    `yaml:"pos,omitempty" json:"pos,omitempty"`
	To     int    `yaml:"to,omitempty" json:"to,omitempty"`
	Count  int    `yaml:"count,omitempty" json:"count,omitempty"`
	Value  int    `yaml:"value,omitempty" json:"value,omitempty"`
	Values []int  `yaml:"values,omitempty" json:"values,omitempty"`
}

// Supported operations
const (
	OpPushBack     = "push_back"
	OpPopBack      = "pop_back"
	OpEmplaceBack  = "emplace_back"
	OpInsert       = "insert"
	OpInsertN      = "insert_n"
	OpInsertValues = "insert_values"
	OpErase        = "erase"
	OpEraseRange   = "erase_range"
	OpReserve      = "reserve"
	OpShrinkToFit  = "shrink_to_fit"
	OpResize       = "resize"
	OpClear        = "clear"
)

// MaxSlots caps reserve/resize requests so a script cannot exhaust memory
const MaxSlots = 1 << 24

// Response represents replay results
type Response struct {
	RunID         string        `json:"run_id" yaml:"run_id"`
	Script        string        `json:"script" yaml:"script"`
	Steps         []StepResult  `json:"steps" yaml:"steps"`
	Final         []int         `json:"final" yaml:"final"`
	Len           int           `json:"len" yaml:"len"`
	Cap           int           `json:"cap" yaml:"cap"`
	Reallocations int           `json:"reallocations" yaml:"reallocations"`
	Elapsed       time.Duration `json:"elapsed" yaml:"elapsed"`
}

// StepResult records the vector state after one step
type StepResult struct {
	Index   int    `json:"index" yaml:"index"`
	Op      string `json:"op" yaml:"op"`
	Len     int    `json:"len" yaml:"len"`
	Cap     int    `json:"cap" yaml:"cap"`
	Realloc bool   `json:"realloc" yaml:"realloc"`
}
