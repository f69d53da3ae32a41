package mcpserver

import (
	"testing"

	"github.com/aleister1102/pageprobe/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredStringArg(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected string
		wantErr  bool
	}{
		{
			name:     "present string",
			args:     map[string]interface{}{"url": "https://example.com"},
			expected: "https://example.com",
		},
		{
			name:    "missing",
			args:    map[string]interface{}{},
			wantErr: true,
		},
		{
			name:    "empty string",
			args:    map[string]interface{}{"url": ""},
			wantErr: true,
		},
		{
			name:    "wrong type",
			args:    map[string]interface{}{"url": 42},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := requiredStringArg(tt.args, "url")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestOptionalStringArg(t *testing.T) {
	value, err := optionalStringArg(map[string]interface{}{}, "filename")
	require.NoError(t, err)
	assert.Empty(t, value)

	value, err = optionalStringArg(map[string]interface{}{"filename": "shot.png"}, "filename")
	require.NoError(t, err)
	assert.Equal(t, "shot.png", value)

	_, err = optionalStringArg(map[string]interface{}{"filename": []string{}}, "filename")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}
