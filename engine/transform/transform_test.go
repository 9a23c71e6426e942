package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-5

func apply(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func assertVec3Near(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), epsilon)
	assert.InDelta(t, want.Y(), got.Y(), epsilon)
	assert.InDelta(t, want.Z(), got.Z(), epsilon)
}

func TestComposeIdentity(t *testing.T) {
	m := Compose(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{})
	assertVec3Near(t, mgl32.Vec3{0.5, -0.5, 0.25}, apply(m, mgl32.Vec3{0.5, -0.5, 0.25}))
}

func TestComposeScaleOnly(t *testing.T) {
	m := Compose(mgl32.Vec3{2, 1, 1}, 0, 0, 0, mgl32.Vec3{})

	// Corners of a unit cube stretch to x ±1 while y and z stay at ±0.5.
	assertVec3Near(t, mgl32.Vec3{1, 0.5, 0.5}, apply(m, mgl32.Vec3{0.5, 0.5, 0.5}))
	assertVec3Near(t, mgl32.Vec3{-1, -0.5, -0.5}, apply(m, mgl32.Vec3{-0.5, -0.5, -0.5}))
}

func TestComposeTranslateAfterRotate(t *testing.T) {
	m := Compose(mgl32.Vec3{1, 1, 1}, 0, 90, 0, mgl32.Vec3{5, 0, 0})

	// The object origin only translates.
	assertVec3Near(t, mgl32.Vec3{5, 0, 0}, apply(m, mgl32.Vec3{}))

	// +X rotates about Y into -Z before the translation is applied.
	assertVec3Near(t, mgl32.Vec3{5, 0, -1}, apply(m, mgl32.Vec3{1, 0, 0}))
}

func TestComposeRotationOrder(t *testing.T) {
	// Rx then Rz: +Y goes to +Z under Rx(90), which Rz(90) leaves fixed.
	m := Compose(mgl32.Vec3{1, 1, 1}, 90, 0, 90, mgl32.Vec3{})
	assertVec3Near(t, mgl32.Vec3{0, 0, 1}, apply(m, mgl32.Vec3{0, 1, 0}))

	// The reverse composition would instead send +Y to -X, so the fixed
	// X-then-Y-then-Z order is observable.
	reversed := mgl32.HomogRotate3DX(mgl32.DegToRad(90)).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90)))
	got := reversed.Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
	assert.InDelta(t, -1, got.X(), epsilon)
}

func TestComposeScaleBeforeRotate(t *testing.T) {
	// Scale acts in object space: stretching X then rotating 90 about Y
	// produces extent along Z, not X.
	m := Compose(mgl32.Vec3{3, 1, 1}, 0, 90, 0, mgl32.Vec3{})
	assertVec3Near(t, mgl32.Vec3{0, 0, -3}, apply(m, mgl32.Vec3{1, 0, 0}))
}
