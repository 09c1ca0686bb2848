package correlation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"half to even down", 0.125, 0.12},
		{"half to even up", 0.375, 0.38},
		{"half to even down again", 0.625, 0.62},
		{"below half", 0.123, 0.12},
		{"above half", 0.127, 0.13},
		{"exact", 0.5, 0.5},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"negative half to even", -0.125, -0.12},
		{"negative half to even up", -0.375, -0.38},
		{"negative above half", -0.876, -0.88},
		{"negative one", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round2(tt.in))
		})
	}
}

func TestRound2_DecimalLiteralsAreNotTies(t *testing.T) {
	// 2.345 is stored slightly above 2.345, so 2.345*100 is
	// 234.50000000000003 and rounds up. 2.355 is stored slightly below, but
	// the product rounds to exactly 235.5, a tie broken toward 236.
	assert.Equal(t, 234.50000000000003, 2.345*100)
	assert.Equal(t, 2.35, Round2(2.345))
	assert.Equal(t, -2.35, Round2(-2.345))
	assert.Equal(t, 2.36, Round2(2.355))
}

func TestRound2_Idempotent(t *testing.T) {
	for v := -5.0; v <= 5.0; v += 0.0037 {
		once := Round2(v)
		assert.Equal(t, once, Round2(once), "value %v", v)
	}

	for _, v := range []float64{math.Pi, -math.E, 0.995, -0.995, 123.456, 1e-9} {
		once := Round2(v)
		assert.Equal(t, once, Round2(once), "value %v", v)
	}
}

func BenchmarkRound2(b *testing.B) {
	v := 0.0
	for i := 0; i < b.N; i++ {
		v = Round2(float64(i) * 0.001)
	}
	_ = v
}
