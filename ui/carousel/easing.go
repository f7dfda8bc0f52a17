package carousel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(t float64) float64

var namedEasings = map[string]EasingFunc{
	"linear":      func(t float64) float64 { return t },
	"ease":        CubicBezier(0.25, 0.1, 0.25, 1.0),
	"ease-in":     CubicBezier(0.42, 0, 1.0, 1.0),
	"ease-out":    CubicBezier(0, 0, 0.58, 1.0),
	"ease-in-out": CubicBezier(0.42, 0, 0.58, 1.0),
}

// ParseEasing understands the CSS timing function names and
// cubic-bezier(x1,y1,x2,y2).
func ParseEasing(s string) (EasingFunc, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if fn, ok := namedEasings[s]; ok {
		return fn, nil
	}

	args, ok := strings.CutPrefix(s, "cubic-bezier(")
	if !ok || !strings.HasSuffix(args, ")") {
		return nil, fmt.Errorf("unknown easing %q", s)
	}
	parts := strings.Split(strings.TrimSuffix(args, ")"), ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("easing %q: want 4 control values, got %d", s, len(parts))
	}

	var p [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("easing %q: %w", s, err)
		}
		p[i] = v
	}
	if p[0] < 0 || p[0] > 1 || p[2] < 0 || p[2] > 1 {
		return nil, fmt.Errorf("easing %q: x control points must be within [0, 1]", s)
	}
	return CubicBezier(p[0], p[1], p[2], p[3]), nil
}

// easingOrDefault parses s and falls back to the named default curve.
func easingOrDefault(s, fallback string) EasingFunc {
	if fn, err := ParseEasing(s); err == nil {
		return fn
	}
	fn, _ := ParseEasing(fallback)
	return fn
}

// CubicBezier returns the curve through (0,0), (x1,y1), (x2,y2), (1,1).
// The y values may leave [0, 1], which is how the tilt curve overshoots.
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, unit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton did not converge; bisect.
		lo, hi := 0.0, 1.0
		u = unit(u)
		for i := 0; i < 16; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func unit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
