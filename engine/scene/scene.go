// package scene implements the per-draw-call state manager: it resolves
// texture and material tags, composes model matrices, pushes the results into
// the shader state sink, and invokes drawables in script order.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenecraft/glstage/common"
	"github.com/scenecraft/glstage/engine/material"
	"github.com/scenecraft/glstage/engine/shaderstate"
	"github.com/scenecraft/glstage/engine/texture"
	"github.com/scenecraft/glstage/engine/transform"
)

// Drawable is an opaque object that issues the draw commands for one shape.
// The mesh/geometry system behind it is not part of this layer.
type Drawable interface {
	// Draw issues the draw commands for this shape using whatever shader
	// state is currently resident.
	Draw()
}

// MeshLibrary is the mesh-owning collaborator whose lifetime the manager
// scopes: constructed before the manager, released exactly once by Release.
type MeshLibrary interface {
	// Release frees the library's GPU buffers.
	Release()
}

// Object is the literal draw data for one scene object. The executor consumes
// it in a single self-contained draw; no state carries across objects.
type Object struct {
	// Mesh is the drawable to invoke after state setup.
	Mesh Drawable
	// Scale is the per-axis scale. The zero value means no scaling (1,1,1).
	Scale mgl32.Vec3
	// RotationDeg is the X, Y, Z rotation in degrees.
	RotationDeg mgl32.Vec3
	// Position is the world-space translation.
	Position mgl32.Vec3
	// Color is the flat RGBA color, pushed when HasColor is true.
	Color mgl32.Vec4
	// HasColor enables the flat-color write. When a TextureTag is also set,
	// the texture write follows and wins the bUseTexture flag.
	HasColor bool
	// TextureTag selects a registered texture; empty means untextured.
	TextureTag string
	// UVScale is the texture coordinate multiplier. The zero value means (1,1).
	UVScale [2]float32
	// MaterialTag selects a defined material; a miss leaves material state untouched.
	MaterialTag string
}

// manager is the implementation of the Manager interface.
type manager struct {
	sink      shaderstate.Sink
	textures  texture.Registry
	materials material.Registry
	meshes    MeshLibrary
}

// Manager owns the scene's texture and material registries and writes
// per-draw shader state through the sink. All operations are synchronous and
// must run on the goroutine that owns the GPU context. The manager performs
// no caching of previously written values: every setter unconditionally
// overwrites the sink.
type Manager interface {
	// Textures returns the texture registry owned by the manager.
	//
	// Returns:
	//   - texture.Registry: the texture registry
	Textures() texture.Registry

	// Materials returns the material registry owned by the manager.
	//
	// Returns:
	//   - material.Registry: the material registry
	Materials() material.Registry

	// SetTransform composes a model matrix from the given components in the
	// fixed T * Rz * Ry * Rx * S order and pushes it as the active model
	// matrix. Rotation angles are in degrees.
	//
	// Parameters:
	//   - scale: per-axis scale factors
	//   - rotXDeg, rotYDeg, rotZDeg: rotation angles about each axis, in degrees
	//   - position: world-space translation
	SetTransform(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3)

	// SetColor pushes a flat RGBA color for the next draw and clears the
	// texture-use flag: a flat color and a sampled texture are mutually
	// exclusive, last write wins.
	//
	// Parameters:
	//   - r, g, b, a: the color components
	SetColor(r, g, b, a float32)

	// SetTexture resolves tag to a texture slot, pushes the sampler at that
	// slot, and sets the texture-use flag. A lookup miss degrades gracefully:
	// the sampler is written with slot -1 and the frame continues.
	//
	// Parameters:
	//   - tag: the texture tag to resolve
	SetTexture(tag string)

	// SetUVScale pushes the texture coordinate multiplier for the next draw.
	//
	// Parameters:
	//   - u, v: the scale along each texture axis
	SetUVScale(u, v float32)

	// SetMaterial resolves tag in the material registry and pushes all five
	// material uniforms on a hit. On a miss, or when no materials are
	// defined, prior shader state is left untouched.
	//
	// Parameters:
	//   - tag: the material tag to resolve
	SetMaterial(tag string)

	// Draw executes the scene script: for each object, in order, it writes
	// transform, color and/or texture, UV scale, and material state, then
	// invokes the object's drawable. Each object's draw is fully
	// self-contained given its literal parameters.
	//
	// Parameters:
	//   - objects: the ordered objects to draw
	Draw(objects ...Object)

	// Release frees the texture registry's GPU textures and the mesh
	// library. Idempotent.
	Release()
}

var _ Manager = &manager{}

// NewManager creates a scene Manager writing through the given sink and
// owning a texture registry backed by the given device. Both are required and
// NewManager panics if either is nil. The material registry starts empty; a
// mesh library may be attached via WithMeshLibrary.
//
// Parameters:
//   - sink: the shader state sink to write into (must not be nil)
//   - device: the GPU texture device for the texture registry (must not be nil)
//   - options: functional options to further configure the manager
//
// Returns:
//   - Manager: the newly created manager
func NewManager(sink shaderstate.Sink, device texture.Device, options ...ManagerBuilderOption) Manager {
	if sink == nil {
		panic("scene: NewManager requires a non-nil Sink")
	}
	if device == nil {
		panic("scene: NewManager requires a non-nil texture Device")
	}

	m := &manager{
		sink:      sink,
		materials: material.NewRegistry(),
	}
	for _, opt := range options {
		opt(m)
	}
	if m.textures == nil {
		m.textures = texture.NewRegistry(device)
	}
	return m
}

func (m *manager) Textures() texture.Registry {
	return m.textures
}

func (m *manager) Materials() material.Registry {
	return m.materials
}

func (m *manager) SetTransform(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) {
	model := transform.Compose(scale, rotXDeg, rotYDeg, rotZDeg, position)
	m.sink.SetMat4(shaderstate.UniformModel, model)
}

func (m *manager) SetColor(r, g, b, a float32) {
	m.sink.SetBool(shaderstate.UniformUseTexture, false)
	m.sink.SetVec4(shaderstate.UniformObjectColor, mgl32.Vec4{r, g, b, a})
}

func (m *manager) SetTexture(tag string) {
	m.sink.SetBool(shaderstate.UniformUseTexture, true)
	slot := m.textures.FindSlot(tag)
	m.sink.SetSampler(shaderstate.UniformObjectTexture, int32(slot))
}

func (m *manager) SetUVScale(u, v float32) {
	m.sink.SetVec2(shaderstate.UniformUVScale, mgl32.Vec2{u, v})
}

func (m *manager) SetMaterial(tag string) {
	mat, found := m.materials.Lookup(tag)
	if !found {
		return
	}
	m.sink.SetVec3(shaderstate.UniformMaterialDiffuseColor, mat.DiffuseColor)
	m.sink.SetVec3(shaderstate.UniformMaterialSpecularColor, mat.SpecularColor)
	m.sink.SetFloat(shaderstate.UniformMaterialShininess, mat.Shininess)
	m.sink.SetVec3(shaderstate.UniformMaterialAmbientColor, mat.AmbientColor)
	m.sink.SetFloat(shaderstate.UniformMaterialAmbientStrength, mat.AmbientStrength)
}

func (m *manager) Draw(objects ...Object) {
	for _, o := range objects {
		scale := common.Coalesce(o.Scale, mgl32.Vec3{1, 1, 1})
		m.SetTransform(scale, o.RotationDeg.X(), o.RotationDeg.Y(), o.RotationDeg.Z(), o.Position)

		if o.HasColor {
			m.SetColor(o.Color.X(), o.Color.Y(), o.Color.Z(), o.Color.W())
		}
		if o.TextureTag != "" {
			m.SetTexture(o.TextureTag)
		}

		uv := common.Coalesce(o.UVScale, [2]float32{1, 1})
		m.SetUVScale(uv[0], uv[1])
		m.SetMaterial(o.MaterialTag)

		if o.Mesh != nil {
			o.Mesh.Draw()
		}
	}
}

func (m *manager) Release() {
	m.textures.ReleaseAll()
	if m.meshes != nil {
		m.meshes.Release()
		m.meshes = nil
	}
}
