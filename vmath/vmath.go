package vmath

// Vec2 is a point or displacement in page units, y grows upward
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2   { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }

// Clamp restricts x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampAbs restricts the magnitude of x to limit, preserving sign
func ClampAbs(x, limit float64) float64 {
	return Clamp(x, -limit, limit)
}

// Sign returns -1, 0 or 1
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
