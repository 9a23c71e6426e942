package material

import "github.com/go-gl/mathgl/mgl32"

// BuilderOption is a function that configures a Material during construction.
type BuilderOption func(*Material)

// WithAmbient is an option builder that sets the ambient color and strength.
//
// Parameters:
//   - color: the RGB ambient reflectance
//   - strength: the ambient scale factor in [0, 1]
//
// Returns:
//   - BuilderOption: a function that applies the ambient option to a material
func WithAmbient(color mgl32.Vec3, strength float32) BuilderOption {
	return func(m *Material) {
		m.AmbientColor = color
		m.AmbientStrength = strength
	}
}

// WithDiffuse is an option builder that sets the diffuse color.
//
// Parameters:
//   - color: the RGB diffuse reflectance
//
// Returns:
//   - BuilderOption: a function that applies the diffuse option to a material
func WithDiffuse(color mgl32.Vec3) BuilderOption {
	return func(m *Material) {
		m.DiffuseColor = color
	}
}

// WithSpecular is an option builder that sets the specular color.
//
// Parameters:
//   - color: the RGB specular reflectance
//
// Returns:
//   - BuilderOption: a function that applies the specular option to a material
func WithSpecular(color mgl32.Vec3) BuilderOption {
	return func(m *Material) {
		m.SpecularColor = color
	}
}

// WithShininess is an option builder that sets the specular exponent.
//
// Parameters:
//   - shininess: the positive specular exponent
//
// Returns:
//   - BuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) BuilderOption {
	return func(m *Material) {
		m.Shininess = shininess
	}
}
