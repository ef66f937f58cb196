package replay

import (
	"bytes"
	"errors"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

// ParseScript decodes a YAML script. JSON scripts parse as well since JSON is
// a subset of YAML. Unknown fields are rejected.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, app.NewError(app.ErrCodeScriptParse, "script is empty", nil)
		}
		return nil, app.NewError(app.ErrCodeScriptParse, "failed to parse script", err)
	}
	if len(s.Steps) == 0 {
		return nil, app.NewError(app.ErrCodeScriptParse, "script has no steps", nil)
	}
	return &s, nil
}
