// package shaderstate defines the uniform-writing interface the scene layer
// targets and the wire-name contract shared with any shader backend.
package shaderstate

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names form a fixed contract between the scene layer and the shader
// program. A backend implementing Sink must expose uniforms under these exact
// names. They are collected here so no caller scatters string literals.
const (
	// UniformModel is the per-object model matrix.
	UniformModel = "model"
	// UniformView is the camera view matrix.
	UniformView = "view"
	// UniformProjection is the camera projection matrix.
	UniformProjection = "projection"
	// UniformViewPosition is the camera world-space position, used for specular lighting.
	UniformViewPosition = "viewPosition"
	// UniformObjectColor is the flat RGBA color used when texturing is disabled.
	UniformObjectColor = "objectColor"
	// UniformObjectTexture is the sampler bound to the object's texture slot.
	UniformObjectTexture = "objectTexture"
	// UniformUseTexture selects between sampled texture (true) and flat color (false).
	UniformUseTexture = "bUseTexture"
	// UniformUseLighting enables the lighting model in the fragment shader.
	UniformUseLighting = "bUseLighting"
	// UniformUVScale is the per-object texture coordinate multiplier.
	UniformUVScale = "UVscale"

	// Material struct fields.
	UniformMaterialDiffuseColor    = "material.diffuseColor"
	UniformMaterialSpecularColor   = "material.specularColor"
	UniformMaterialShininess       = "material.shininess"
	UniformMaterialAmbientColor    = "material.ambientColor"
	UniformMaterialAmbientStrength = "material.ambientStrength"
)

// Fields of the lightSources[i] uniform array. Combined with an index via
// LightField to form the full wire name.
const (
	LightPosition          = "position"
	LightAmbientColor      = "ambientColor"
	LightDiffuseColor      = "diffuseColor"
	LightSpecularColor     = "specularColor"
	LightFocalStrength     = "focalStrength"
	LightSpecularIntensity = "specularIntensity"
)

// LightField builds the wire name of one field of the indexed light-source
// uniform array, e.g. LightField(0, LightPosition) == "lightSources[0].position".
//
// Parameters:
//   - index: the light source index
//   - field: one of the Light* field constants
//
// Returns:
//   - string: the full uniform name
func LightField(index int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", index, field)
}

// Sink receives shader uniform writes. Every write is fire-and-forget: there
// is no read-back and no transaction concept, so a draw call observes
// whatever state was most recently written. Implementations are expected to
// apply a write before the next draw invocation on the same frame.
type Sink interface {
	// SetMat4 writes a 4x4 matrix uniform.
	//
	// Parameters:
	//   - name: the uniform wire name
	//   - value: the column-major matrix value
	SetMat4(name string, value mgl32.Mat4)

	// SetVec4 writes a 4-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform wire name
	//   - value: the vector value
	SetVec4(name string, value mgl32.Vec4)

	// SetVec3 writes a 3-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform wire name
	//   - value: the vector value
	SetVec3(name string, value mgl32.Vec3)

	// SetVec2 writes a 2-component vector uniform.
	//
	// Parameters:
	//   - name: the uniform wire name
	//   - value: the vector value
	SetVec2(name string, value mgl32.Vec2)

	// SetFloat writes a scalar float uniform.
	//
	// Parameters:
	//   - name: the uniform wire name
	//   - value: the scalar value
	SetFloat(name string, value float32)

	// SetBool writes a boolean uniform.
	//
	// Parameters:
	//   - name: the uniform wire name
	//   - value: the flag value
	SetBool(name string, value bool)

	// SetSampler writes an integer sampler uniform pointing at a texture slot.
	//
	// Parameters:
	//   - name: the uniform wire name
	//   - slot: the texture unit index the sampler reads from
	SetSampler(name string, slot int32)
}
