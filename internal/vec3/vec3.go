// Package vec3 provides the 3-component vector arithmetic used by the
// force field and integrator. Vectors are plain value types so the inner
// force loop allocates nothing.
package vec3

import "math"

type Vec struct {
	X, Y, Z float64
}

func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k, v.Z * k}
}

func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

func (v Vec) Cross(w Vec) Vec {
	return Vec{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec) Length2() float64 {
	return v.Dot(v)
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.Length2())
}

// Normalized returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec) Normalized() Vec {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

func Distance2(a, b Vec) float64 {
	return b.Sub(a).Length2()
}

func Distance(a, b Vec) float64 {
	return math.Sqrt(Distance2(a, b))
}

// Angle returns the angle in radians between a and b, in [0, pi]. The
// cosine is clamped so that rounding slightly past ±1 cannot produce NaN.
func Angle(a, b Vec) float64 {
	c := a.Dot(b) / (a.Length() * b.Length())
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Dihedral returns the signed dihedral angle in (-pi, pi] formed by three
// consecutive connection vectors r1, r2, r3.
func Dihedral(r1, r2, r3 Vec) float64 {
	n1 := r1.Cross(r2)
	n2 := r2.Cross(r3)
	return math.Atan2(r2.Length()*r1.Dot(n2), n1.Dot(n2))
}
