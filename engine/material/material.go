// package material implements the registry of named lighting-response
// presets. Materials are defined once during scene setup and looked up by tag
// at draw time.
package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a named lighting-response preset. Values are plain data,
// created once during the materials-definition phase and immutable afterward.
type Material struct {
	// Tag is the lookup identifier. Tags are not required to be unique; a
	// duplicate silently shadows and lookups return the first match.
	Tag string
	// AmbientColor is the RGB ambient reflectance.
	AmbientColor mgl32.Vec3
	// AmbientStrength scales the ambient term, in [0, 1].
	AmbientStrength float32
	// DiffuseColor is the RGB diffuse reflectance.
	DiffuseColor mgl32.Vec3
	// SpecularColor is the RGB specular reflectance.
	SpecularColor mgl32.Vec3
	// Shininess is the positive specular exponent.
	Shininess float32
}

// registry is the implementation of the Registry interface.
type registry struct {
	materials []Material
}

// Registry stores the scene's material presets. It is populated during a
// single-threaded setup phase and only read afterward, so no locking is
// provided or required.
type Registry interface {
	// Define appends a material to the registry. No uniqueness is enforced:
	// defining a second material under an existing tag shadows it, and
	// lookups keep returning the first one defined.
	//
	// Parameters:
	//   - m: the material to register
	Define(m Material)

	// Lookup scans for the first material defined under tag, in definition
	// order. Returns found=false when the registry is empty or no tag
	// matches exactly; callers must treat both cases identically and leave
	// prior shader state untouched.
	//
	// Parameters:
	//   - tag: the lookup tag
	//
	// Returns:
	//   - Material: a value copy of the stored material (zero value on miss)
	//   - bool: true if a material matched
	Lookup(tag string) (Material, bool)

	// Count returns the number of defined materials.
	//
	// Returns:
	//   - int: the material count
	Count() int
}

var _ Registry = &registry{}

// NewRegistry creates an empty material Registry.
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry() Registry {
	return &registry{}
}

// New creates a Material with the given tag, configured with the provided
// options. Unset fields default to a matte mid-gray with unit shininess.
//
// Parameters:
//   - tag: the lookup identifier for the material
//   - options: variadic list of BuilderOption functions to configure the material
//
// Returns:
//   - Material: the configured material value
func New(tag string, options ...BuilderOption) Material {
	m := Material{
		Tag:             tag,
		AmbientColor:    mgl32.Vec3{0.1, 0.1, 0.1},
		AmbientStrength: 0.1,
		DiffuseColor:    mgl32.Vec3{0.5, 0.5, 0.5},
		SpecularColor:   mgl32.Vec3{0.0, 0.0, 0.0},
		Shininess:       1.0,
	}
	for _, opt := range options {
		opt(&m)
	}
	return m
}

func (r *registry) Define(m Material) {
	r.materials = append(r.materials, m)
}

func (r *registry) Lookup(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

func (r *registry) Count() int {
	return len(r.materials)
}
