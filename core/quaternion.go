package core

import "math"

// Quaternion represents a rotation.
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the no-rotation quaternion.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Mul returns the Hamilton product q * o, composing o's rotation after q's.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return Quaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Normalize returns q with unit magnitude, or identity when degenerate.
func (q Quaternion) Normalize() Quaternion {
	m := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if m == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{q.X / m, q.Y / m, q.Z / m, q.W / m}
}

// AxisAngle builds a quaternion rotating angle radians around axis.
func AxisAngle(axis Vector3, angle float64) Quaternion {
	axis = axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(angle / 2),
	}
}

// Rotate applies the rotation to v.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	u := Vector3{q.X, q.Y, q.Z}
	s := q.W
	return u.Scale(2 * u.Dot(v)).
		Add(v.Scale(s*s - u.Dot(u))).
		Add(u.Cross(v).Scale(2 * s))
}
