package commands

import (
	"bytes"
	"testing"
	"time"

	"seyren-stride/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		data     interface{}
		expected string
	}{
		{
			name:   "JSON output",
			format: OutputFormatJSON,
			data: map[string]interface{}{
				"name":  "test",
				"value": 123,
			},
			expected: `{
  "name": "test",
  "value": 123
}
`,
		},
		{
			name:   "YAML output",
			format: OutputFormatYAML,
			data: map[string]interface{}{
				"name":  "test",
				"value": 123,
			},
			expected: `name: test
value: 123
`,
		},
		{
			name:   "dispatch result as YAML uses json field names",
			format: OutputFormatYAML,
			data: dto.DispatchResult{
				DispatchID: "d-1",
				CheckID:    "42",
				State:      "ERROR",
				Delivered:  []string{"A"},
				Failed:     []dto.TargetFailure{{Target: "B", Error: "boom"}},
				Duration:   time.Second,
			},
			expected: `check_id: "42"
delivered:
- A
dispatch_id: d-1
duration: 1e+09
failed:
- error: boom
  target: B
skipped: false
state: ERROR
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewOutputFormatter(tt.format, &buf)
			require.NotNil(t, formatter)

			require.NoError(t, formatter.Print(tt.data))
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewOutputFormatter("xml", &buf).Print(map[string]string{})
		require.Error(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{name: "json", format: OutputFormatJSON},
		{name: "yaml", format: OutputFormatYAML},
		{name: "empty", format: "", wantErr: true},
		{name: "xml", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
