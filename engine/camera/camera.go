// package camera computes the view and projection matrices and pushes them
// into the shader state sink once per frame.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenecraft/glstage/engine/shaderstate"
)

// camera is the implementation of the Camera interface.
type camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fovDeg float32
	aspect float32
	near   float32
	far    float32
}

// Camera holds the viewpoint for the render phase. It is configured during
// setup and applied once per frame before the scene script runs.
type Camera interface {
	// SetAspect updates the projection aspect ratio, typically from a window
	// resize callback.
	//
	// Parameters:
	//   - aspect: the viewport width/height ratio
	SetAspect(aspect float32)

	// SetPosition moves the camera.
	//
	// Parameters:
	//   - position: the new world-space camera position
	SetPosition(position mgl32.Vec3)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the camera position
	Position() mgl32.Vec3

	// Apply writes the view matrix, projection matrix, and view position
	// into the sink.
	//
	// Parameters:
	//   - sink: the shader state sink to write into
	Apply(sink shaderstate.Sink)
}

var _ Camera = &camera{}

// NewCamera creates a Camera configured with the provided options. Defaults
// to a 45 degree vertical field of view at the origin looking down -Z.
//
// Parameters:
//   - options: functional options for camera configuration
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &camera{
		position: mgl32.Vec3{0, 0, 10},
		target:   mgl32.Vec3{0, 0, 0},
		up:       mgl32.Vec3{0, 1, 0},
		fovDeg:   45,
		aspect:   16.0 / 9.0,
		near:     0.1,
		far:      100,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *camera) SetAspect(aspect float32) {
	c.aspect = aspect
}

func (c *camera) SetPosition(position mgl32.Vec3) {
	c.position = position
}

func (c *camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *camera) Apply(sink shaderstate.Sink) {
	view := mgl32.LookAtV(c.position, c.target, c.up)
	projection := mgl32.Perspective(mgl32.DegToRad(c.fovDeg), c.aspect, c.near, c.far)

	sink.SetMat4(shaderstate.UniformView, view)
	sink.SetMat4(shaderstate.UniformProjection, projection)
	sink.SetVec3(shaderstate.UniformViewPosition, c.position)
}
