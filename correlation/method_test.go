package correlation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("pearson")
	require.NoError(t, err)
	assert.Equal(t, MethodPearson, m)

	m, err = ParseMethod(" Spearman ")
	require.NoError(t, err)
	assert.Equal(t, MethodSpearman, m)

	_, err = ParseMethod("kendall")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "pearson", MethodPearson.String())
	assert.Equal(t, "spearman", MethodSpearman.String())
	assert.Equal(t, "Unknown(9)", Method(9).String())
	assert.True(t, MethodSpearman.Valid())
	assert.False(t, Method(9).Valid())
}

func TestModeFromFlag(t *testing.T) {
	assert.Equal(t, Signed, ModeFromFlag(0))
	assert.Equal(t, Absolute, ModeFromFlag(1))
	assert.Equal(t, Absolute, ModeFromFlag(0xFFFFFFFF))
	assert.Equal(t, "signed", Signed.String())
	assert.Equal(t, "absolute", Absolute.String())
}

func TestMode_Apply(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		corr    float64
		minCorr float64
		want    float64
		keep    bool
	}{
		{"signed positive above", Signed, 0.8, 0.5, 0.8, true},
		{"signed inclusive bound", Signed, 0.5, 0.5, 0.5, true},
		{"signed below", Signed, 0.4, 0.5, 0, false},
		{"signed zero dropped", Signed, 0, 0, 0, false},
		{"signed negative dropped", Signed, -0.9, 0.1, 0, false},
		{"signed negative threshold", Signed, 0.01, -1, 0.01, true},
		{"absolute flips sign", Absolute, -0.9, 0.5, 0.9, true},
		{"absolute below", Absolute, -0.3, 0.5, 0, false},
		{"absolute zero kept", Absolute, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := tt.mode.Apply(tt.corr, tt.minCorr)
			assert.Equal(t, tt.keep, keep)
			assert.Equal(t, tt.want, got)
		})
	}
}
