package growth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-vector/pkg/app"
)

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{name: "minimum", count: 1},
		{name: "typical", count: 1024},
		{name: "maximum", count: MaxCount},
		{name: "zero", count: 0, wantErr: true},
		{name: "negative", count: -5, wantErr: true},
		{name: "too large", count: MaxCount + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Request{Count: tt.count}).Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, app.ErrCodeInvalidInput, app.ErrorCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandle(t *testing.T) {
	resp, err := Handle(app.NewContext(), &Request{Count: 100})
	require.NoError(t, err)

	assert.Equal(t, 128, resp.FinalCap)
	assert.Equal(t, 8, resp.Reallocations)
	require.Len(t, resp.Steps, 8)

	assert.Equal(t, Step{AtLen: 1, OldCap: 0, NewCap: 1}, resp.Steps[0])
	for i := 1; i < len(resp.Steps); i++ {
		prev, cur := resp.Steps[i-1], resp.Steps[i]
		assert.Equal(t, prev.NewCap, cur.OldCap)
		assert.Equal(t, 2*cur.OldCap, cur.NewCap, "capacity doubles")
		assert.Equal(t, cur.OldCap+1, cur.AtLen, "growth happens when full")
	}
}

func TestFormatOutput(t *testing.T) {
	resp, err := Handle(app.NewContext(), &Request{Count: 5})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, resp, app.FormatTable))
	assert.Contains(t, buf.String(), "AT LEN")
	assert.Contains(t, buf.String(), "5 appends, final capacity 8, 4 reallocations")

	buf.Reset()
	require.NoError(t, FormatOutput(&buf, resp, app.FormatJSON))
	assert.Contains(t, buf.String(), `"final_cap": 8`)

	buf.Reset()
	require.NoError(t, FormatOutput(&buf, resp, app.FormatYAML))
	assert.Contains(t, buf.String(), "final_cap: 8")

	assert.Error(t, FormatOutput(&buf, resp, "csv"))
}
