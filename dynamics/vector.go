package dynamics

import "github.com/go-gl/mathgl/mgl64"

// Vector is a value type that forms a vector space under Add, Sub and Mul.
// Rotations do not; use RotationFilter for them.
type Vector[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(float64) T
}

// Scalar is a one-dimensional Vector.
type Scalar float64

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Mul returns s scaled by c.
func (s Scalar) Mul(c float64) Scalar { return s * Scalar(c) }

// Vector types from mathgl.
type (
	Vec2 = mgl64.Vec2
	Vec3 = mgl64.Vec3
	Quat = mgl64.Quat
)

var (
	_ Vector[Scalar] = Scalar(0)
	_ Vector[Vec2]   = Vec2{}
	_ Vector[Vec3]   = Vec3{}
)
