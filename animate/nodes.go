package animate

import "github.com/cwbudde/algo-dynamics/dynamics"

// Animator flavours matching common scene-node properties. All of them start
// from dynamics.DefaultParams.
type (
	VectorAnimator[T dynamics.Vector[T]] = Animator[T, T]
	RotationAnimator                     = Animator[dynamics.Quat, dynamics.Vec3]
)

// NewVector creates an animator over any vector-space property.
func NewVector[T dynamics.Vector[T]](target func() T, depend Property[T], opts ...Option) (*VectorAnimator[T], error) {
	f, err := dynamics.NewFromParams[T](dynamics.DefaultParams())
	if err != nil {
		return nil, err
	}

	return New[T, T](f, target, depend, opts...)
}

// NewPosition2D animates a 2D position.
func NewPosition2D(target func() dynamics.Vec2, depend Property[dynamics.Vec2], opts ...Option) (*VectorAnimator[dynamics.Vec2], error) {
	return NewVector(target, depend, opts...)
}

// NewScale2D animates a 2D scale.
func NewScale2D(target func() dynamics.Vec2, depend Property[dynamics.Vec2], opts ...Option) (*VectorAnimator[dynamics.Vec2], error) {
	return NewVector(target, depend, opts...)
}

// NewRotation2D animates a 2D rotation angle in radians.
func NewRotation2D(target func() dynamics.Scalar, depend Property[dynamics.Scalar], opts ...Option) (*VectorAnimator[dynamics.Scalar], error) {
	return NewVector(target, depend, opts...)
}

// NewSkew2D animates a 2D skew angle in radians.
func NewSkew2D(target func() dynamics.Scalar, depend Property[dynamics.Scalar], opts ...Option) (*VectorAnimator[dynamics.Scalar], error) {
	return NewVector(target, depend, opts...)
}

// NewPosition3D animates a 3D position.
func NewPosition3D(target func() dynamics.Vec3, depend Property[dynamics.Vec3], opts ...Option) (*VectorAnimator[dynamics.Vec3], error) {
	return NewVector(target, depend, opts...)
}

// NewScale3D animates a 3D scale.
func NewScale3D(target func() dynamics.Vec3, depend Property[dynamics.Vec3], opts ...Option) (*VectorAnimator[dynamics.Vec3], error) {
	return NewVector(target, depend, opts...)
}

// NewRotation3D animates a 3D orientation.
func NewRotation3D(target func() dynamics.Quat, depend Property[dynamics.Quat], opts ...Option) (*RotationAnimator, error) {
	f, err := dynamics.NewRotationFromParams(dynamics.DefaultParams())
	if err != nil {
		return nil, err
	}

	return New[dynamics.Quat, dynamics.Vec3](f, target, depend, opts...)
}
