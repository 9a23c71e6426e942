package light

import "github.com/go-gl/mathgl/mgl32"

// BuilderOption is a function that configures a Light during construction.
type BuilderOption func(*Light)

// WithAmbientColor is an option builder that sets the ambient contribution.
//
// Parameters:
//   - color: the RGB ambient color
//
// Returns:
//   - BuilderOption: a function that applies the ambient color option to a light
func WithAmbientColor(color mgl32.Vec3) BuilderOption {
	return func(l *Light) {
		l.AmbientColor = color
	}
}

// WithDiffuseColor is an option builder that sets the diffuse contribution.
//
// Parameters:
//   - color: the RGB diffuse color
//
// Returns:
//   - BuilderOption: a function that applies the diffuse color option to a light
func WithDiffuseColor(color mgl32.Vec3) BuilderOption {
	return func(l *Light) {
		l.DiffuseColor = color
	}
}

// WithSpecularColor is an option builder that sets the specular contribution.
//
// Parameters:
//   - color: the RGB specular color
//
// Returns:
//   - BuilderOption: a function that applies the specular color option to a light
func WithSpecularColor(color mgl32.Vec3) BuilderOption {
	return func(l *Light) {
		l.SpecularColor = color
	}
}

// WithFocalStrength is an option builder that sets the specular falloff shape.
//
// Parameters:
//   - strength: the focal strength exponent
//
// Returns:
//   - BuilderOption: a function that applies the focal strength option to a light
func WithFocalStrength(strength float32) BuilderOption {
	return func(l *Light) {
		l.FocalStrength = strength
	}
}

// WithSpecularIntensity is an option builder that sets the specular scale.
//
// Parameters:
//   - intensity: the specular intensity factor
//
// Returns:
//   - BuilderOption: a function that applies the specular intensity option to a light
func WithSpecularIntensity(intensity float32) BuilderOption {
	return func(l *Light) {
		l.SpecularIntensity = intensity
	}
}
