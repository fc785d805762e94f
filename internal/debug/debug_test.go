package debug

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	tests := []struct {
		name      string
		enabled   bool
		fn        string
		fields    []interface{}
		wantEmpty bool
		contains  []string
	}{
		{
			name:     "enabled writes function and fields",
			enabled:  true,
			fn:       "Loop.Prompt",
			fields:   []interface{}{"attempt", 2, "result", "rejected"},
			contains: []string{"debug", "Loop.Prompt", "attempt", "rejected"},
		},
		{
			name:      "disabled writes nothing",
			enabled:   false,
			fn:        "Loop.Prompt",
			fields:    []interface{}{"attempt", 1},
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitWithWriter(&buf, tt.enabled)
			t.Cleanup(func() { InitWithWriter(&bytes.Buffer{}, false) })

			Log(tt.fn, tt.fields...)
			require.NoError(t, Sync())

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, true)
	t.Cleanup(func() { InitWithWriter(&bytes.Buffer{}, false) })

	Error("Resolver.Resolve", errors.New("permission denied"), "stage", "open")
	require.NoError(t, Sync())

	out := buf.String()
	assert.Contains(t, out, "Resolver.Resolve")
	assert.Contains(t, out, "permission denied")
	assert.Contains(t, out, "open")
}

func TestIsEnabled(t *testing.T) {
	t.Cleanup(func() { InitWithWriter(&bytes.Buffer{}, false) })

	InitWithWriter(&bytes.Buffer{}, true)
	assert.True(t, IsEnabled())

	InitWithWriter(&bytes.Buffer{}, false)
	assert.False(t, IsEnabled())
}
