package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEasing(t *testing.T) {
	valid := []string{
		"linear", "ease", "ease-in", "ease-out", "ease-in-out",
		" EASE ", DefaultEasing, DefaultTiltEasing,
		"cubic-bezier(0, 0, 1, 1)",
	}
	for _, s := range valid {
		t.Run(s, func(t *testing.T) {
			fn, err := ParseEasing(s)
			require.NoError(t, err)
			assert.Equal(t, 0.0, fn(0))
			assert.Equal(t, 1.0, fn(1))
		})
	}
}

func TestParseEasingErrors(t *testing.T) {
	invalid := []string{
		"",
		"bouncy",
		"cubic-bezier(1, 2, 3)",
		"cubic-bezier(a, 0, 1, 1)",
		"cubic-bezier(1.5, 0, 1, 1)",
		"cubic-bezier(0, 0, 1, 1",
	}
	for _, s := range invalid {
		_, err := ParseEasing(s)
		assert.Error(t, err, "%q should not parse", s)
	}
}

func TestCubicBezierLinear(t *testing.T) {
	fn := CubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.9} {
		assert.InDelta(t, x, fn(x), 1e-4)
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	fn, err := ParseEasing(DefaultEasing)
	require.NoError(t, err)

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := fn(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev-1e-9)
		prev = v
	}
}

func TestTiltEasingOvershoots(t *testing.T) {
	fn, err := ParseEasing(DefaultTiltEasing)
	require.NoError(t, err)

	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = max(peak, fn(float64(i)/100))
	}
	assert.Greater(t, peak, 1.0, "tilt easing should overshoot its target")
}

func TestEasingOrDefault(t *testing.T) {
	fn := easingOrDefault("nonsense", "linear")
	assert.InDelta(t, 0.3, fn(0.3), 1e-9)
}
