package geometry

import (
	"math"
)

type Vector struct {
	X float64
	Y float64
}

// Dot returns the sum of the elementwise products of a and b
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Projection returns the component of a lying along b.
// b must be non-zero, otherwise every component of the result is NaN.
func Projection(a, b Vector) Vector {
	return b.Scale(Dot(a, b) / Dot(b, b))
}

// Rejection returns the component of a orthogonal to b, so that
// Projection(a, b) + Rejection(a, b) == a. Same precondition on b as Projection.
func Rejection(a, b Vector) Vector {
	c := Vector{X: a.X, Y: a.Y}
	return c.Sub(Projection(a, b))
}

// AngleBetween returns the angle between a and b in radians, in [0, π].
// It is NaN when either vector has zero length.
func AngleBetween(a, b Vector) float64 {
	// cos(θ) = (A · B) / (|A| * |B|)
	cosTheta := Dot(a, b) / (a.Magnitude() * b.Magnitude())

	// Clamp to [-1, 1] to handle floating point precision issues
	cosTheta = clamp(cosTheta, -1, 1)

	return math.Acos(cosTheta)
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return Dot(v, other)
}

func (v Vector) ProjectOnto(other Vector) Vector {
	return Projection(v, other)
}

func (v Vector) RejectFrom(other Vector) Vector {
	return Rejection(v, other)
}

// AngleTo calculates the angle between this vector and another vector in radians
func (v Vector) AngleTo(other Vector) float64 {
	return AngleBetween(v, other)
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude == 0 {
		return Vector{0, 0}
	}
	return Vector{v.X / magnitude, v.Y / magnitude}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// IsFinite reports whether neither component is NaN or infinite
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// NaN comparisons are false, so a NaN value passes through unchanged.
func clamp(value, lo, hi float64) float64 {
	if value > hi {
		return hi
	}
	if value < lo {
		return lo
	}
	return value
}
