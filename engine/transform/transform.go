// package transform builds per-object model matrices from scale, Euler
// rotation, and translation components.
package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Compose builds a model matrix as T * Rz * Ry * Rx * S: scale is applied
// first to object-space geometry, then the X, Y, and Z axis rotations in that
// order, and translation last. This order is a contract; callers needing a
// different rotation order must pre-compose their own matrix. Rotation angles
// are given in degrees. The composer holds no state between calls.
//
// Parameters:
//   - scale: per-axis scale factors
//   - rotXDeg, rotYDeg, rotZDeg: rotation angles about each axis, in degrees
//   - translate: world-space translation
//
// Returns:
//   - mgl32.Mat4: the composed column-major model matrix
func Compose(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, translate mgl32.Vec3) mgl32.Mat4 {
	t := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	s := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())

	return t.Mul4(rz).Mul4(ry).Mul4(rx).Mul4(s)
}
