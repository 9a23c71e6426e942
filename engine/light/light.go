// package light defines scene light sources and pushes them into the shader
// state sink as the indexed lightSources uniform array.
package light

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenecraft/glstage/engine/shaderstate"
)

// MaxLights is the size of the lightSources uniform array in the shader
// contract. Lights beyond this count are ignored by Apply.
const MaxLights = 4

// Light is one point light source. Values are plain data, defined once during
// scene setup.
type Light struct {
	// Position is the world-space light position.
	Position mgl32.Vec3
	// AmbientColor is the RGB ambient contribution.
	AmbientColor mgl32.Vec3
	// DiffuseColor is the RGB diffuse contribution.
	DiffuseColor mgl32.Vec3
	// SpecularColor is the RGB specular contribution.
	SpecularColor mgl32.Vec3
	// FocalStrength shapes the specular falloff.
	FocalStrength float32
	// SpecularIntensity scales the specular contribution.
	SpecularIntensity float32
}

// New creates a Light at the given position, configured with the provided
// options. Unset fields default to a warm white light.
//
// Parameters:
//   - position: the world-space light position
//   - options: variadic list of BuilderOption functions to configure the light
//
// Returns:
//   - Light: the configured light value
func New(position mgl32.Vec3, options ...BuilderOption) Light {
	l := Light{
		Position:          position,
		AmbientColor:      mgl32.Vec3{0.8, 0.8, 0.7},
		DiffuseColor:      mgl32.Vec3{1.0, 0.95, 0.85},
		SpecularColor:     mgl32.Vec3{1.0, 1.0, 1.0},
		FocalStrength:     32.0,
		SpecularIntensity: 0.7,
	}
	for _, opt := range options {
		opt(&l)
	}
	return l
}

// Apply enables lighting in the sink and writes up to MaxLights light
// sources into the indexed lightSources uniform array. Calling with no lights
// still enables the lighting flag.
//
// Parameters:
//   - sink: the shader state sink to write into
//   - lights: the light sources, applied in order from index 0
func Apply(sink shaderstate.Sink, lights ...Light) {
	sink.SetBool(shaderstate.UniformUseLighting, true)
	for i, l := range lights {
		if i >= MaxLights {
			break
		}
		sink.SetVec3(shaderstate.LightField(i, shaderstate.LightPosition), l.Position)
		sink.SetVec3(shaderstate.LightField(i, shaderstate.LightAmbientColor), l.AmbientColor)
		sink.SetVec3(shaderstate.LightField(i, shaderstate.LightDiffuseColor), l.DiffuseColor)
		sink.SetVec3(shaderstate.LightField(i, shaderstate.LightSpecularColor), l.SpecularColor)
		sink.SetFloat(shaderstate.LightField(i, shaderstate.LightFocalStrength), l.FocalStrength)
		sink.SetFloat(shaderstate.LightField(i, shaderstate.LightSpecularIntensity), l.SpecularIntensity)
	}
}
