package animation

import "time"

// Curve maps linear progress t in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return clampUnit(t) }

// Ease matches CSS "ease".
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseInOut matches CSS "ease-in-out".
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// CubicBezier returns an easing curve equivalent to CSS cubic-bezier(x1, y1, x2, y2).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// x(u) is monotonic on [0,1] for valid control points, so bisection
		// always converges.
		lo, hi := 0.0, 1.0
		u := t
		for range 24 {
			x := bezier(x1, x2, u)
			if x < t {
				lo = u
			} else {
				hi = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

// Progress returns curve(elapsed/duration), clamped to [0, 1].
func Progress(elapsed, duration time.Duration, curve Curve) float64 {
	if duration <= 0 {
		return 1
	}
	if curve == nil {
		curve = Linear
	}
	return curve(clampUnit(float64(elapsed) / float64(duration)))
}

func bezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
