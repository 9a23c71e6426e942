package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a function that configures a camera instance during construction.
type CameraBuilderOption func(*camera)

// WithPosition is an option builder that sets the camera's world-space position.
//
// Parameters:
//   - x, y, z: the camera position
//
// Returns:
//   - CameraBuilderOption: a function that applies the position option to a camera
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *camera) {
		c.position = mgl32.Vec3{x, y, z}
	}
}

// WithTarget is an option builder that sets the point the camera looks at.
//
// Parameters:
//   - x, y, z: the look-at target
//
// Returns:
//   - CameraBuilderOption: a function that applies the target option to a camera
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *camera) {
		c.target = mgl32.Vec3{x, y, z}
	}
}

// WithFov is an option builder that sets the vertical field of view.
//
// Parameters:
//   - degrees: the field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that applies the field-of-view option to a camera
func WithFov(degrees float32) CameraBuilderOption {
	return func(c *camera) {
		c.fovDeg = degrees
	}
}

// WithAspect is an option builder that sets the projection aspect ratio.
//
// Parameters:
//   - aspect: the viewport width/height ratio
//
// Returns:
//   - CameraBuilderOption: a function that applies the aspect option to a camera
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *camera) {
		c.aspect = aspect
	}
}

// WithClipPlanes is an option builder that sets the near and far clip distances.
//
// Parameters:
//   - near: the near clipping plane distance (must be > 0)
//   - far: the far clipping plane distance (must be > near)
//
// Returns:
//   - CameraBuilderOption: a function that applies the clip plane option to a camera
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *camera) {
		c.near = near
		c.far = far
	}
}
