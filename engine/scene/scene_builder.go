package scene

import (
	"github.com/scenecraft/glstage/engine/material"
	"github.com/scenecraft/glstage/engine/texture"
)

// ManagerBuilderOption is a function that configures a manager instance during construction.
type ManagerBuilderOption func(*manager)

// WithTextureRegistry is an option builder that replaces the manager's
// texture registry. When omitted, NewManager constructs one from its device.
//
// Parameters:
//   - r: the texture registry to use
//
// Returns:
//   - ManagerBuilderOption: a function that applies the registry option to a manager
func WithTextureRegistry(r texture.Registry) ManagerBuilderOption {
	return func(m *manager) {
		m.textures = r
	}
}

// WithMaterialRegistry is an option builder that replaces the manager's
// material registry.
//
// Parameters:
//   - r: the material registry to use
//
// Returns:
//   - ManagerBuilderOption: a function that applies the registry option to a manager
func WithMaterialRegistry(r material.Registry) ManagerBuilderOption {
	return func(m *manager) {
		m.materials = r
	}
}

// WithMeshLibrary is an option builder that attaches the mesh library whose
// lifetime the manager owns. The library is released exactly once when the
// manager's Release is called; callers never need a nil check.
//
// Parameters:
//   - lib: the mesh library to scope to the manager
//
// Returns:
//   - ManagerBuilderOption: a function that applies the mesh library option to a manager
func WithMeshLibrary(lib MeshLibrary) ManagerBuilderOption {
	return func(m *manager) {
		m.meshes = lib
	}
}
