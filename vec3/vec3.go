// Package vec3 provides an immutable 3-component float64 vector usable as a
// point, a direction, or an RGB color triple.
package vec3

import (
	"fmt"
	"math"
)

// Vec3 is a small copyable value; every operation returns a fresh value and
// never mutates its receiver.
type Vec3 struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Add returns the component-wise sum of the two vectors.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

// Sub returns the component-wise difference v - u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z}
}

// Neg returns the vector with every component sign-inverted.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Scale returns the vector with every component multiplied by t. It is the
// vector-on-left form; Scale(t, v) is the scalar-on-left form and both produce
// identical results.
func (v Vec3) Scale(t float64) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

// Scale returns v with every component multiplied by t.
func Scale(t float64, v Vec3) Vec3 {
	return v.Scale(t)
}

// MulVec returns the Hadamard (component-wise) product of the two vectors.
// This is distinct from Dot, which returns a scalar.
func (v Vec3) MulVec(u Vec3) Vec3 {
	return Vec3{v.X * u.X, v.Y * u.Y, v.Z * u.Z}
}

// Div returns the vector with every component divided by t. Division by zero
// follows IEEE-754: components become Inf or NaN rather than raising an error.
func (v Vec3) Div(t float64) Vec3 {
	return Vec3{v.X / t, v.Y / t, v.Z / t}
}

// Dot returns the dot product of the two vectors.
func (v Vec3) Dot(u Vec3) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the right-handed cross product. It is anti-commutative:
// v.Cross(u) equals u.Cross(v).Neg().
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// LengthSquared returns the squared magnitude of the vector. It avoids the
// square root when only relative magnitude matters.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Length())
}

// RGB converts the vector to an 8-bit color triple. Each component is clamped
// to [0, 255] first and truncated toward zero second, so values below 0 map to
// 0 and values above 255 map to 255. A NaN component maps to 0.
func (v Vec3) RGB() (r, g, b uint8) {
	return toByte(v.X), toByte(v.Y), toByte(v.Z)
}

func toByte(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(clamp(x, 0, 255))
}

func clamp(x, min, max float64) float64 {
	return math.Max(math.Min(x, max), min)
}

// String renders the vector as "(x, y, z)" using Go's default (shortest
// round-trip) float formatting.
func (v Vec3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
