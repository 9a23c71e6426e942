package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEmptyRegistry(t *testing.T) {
	r := NewRegistry()

	_, found := r.Lookup("metal")
	assert.False(t, found)
	_, found = r.Lookup("")
	assert.False(t, found)
	assert.Equal(t, 0, r.Count())
}

func TestLookupMiss(t *testing.T) {
	r := NewRegistry()
	r.Define(New("metal"))

	_, found := r.Lookup("wood")
	assert.False(t, found)

	m, found := r.Lookup("metal")
	require.True(t, found)
	assert.Equal(t, "metal", m.Tag)
}

func TestDuplicateTagFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	r.Define(New("metal", WithShininess(64)))
	r.Define(New("metal", WithShininess(2)))

	assert.Equal(t, 2, r.Count())
	m, found := r.Lookup("metal")
	require.True(t, found)
	assert.Equal(t, float32(64), m.Shininess, "first definition shadows the second")
}

func TestLookupReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Define(New("wood", WithDiffuse(mgl32.Vec3{0.3, 0.3, 0.3})))

	m, found := r.Lookup("wood")
	require.True(t, found)
	m.DiffuseColor = mgl32.Vec3{1, 0, 0}

	again, _ := r.Lookup("wood")
	assert.Equal(t, mgl32.Vec3{0.3, 0.3, 0.3}, again.DiffuseColor, "mutating the returned value must not affect the registry")
}

func TestNewDefaultsAndOptions(t *testing.T) {
	def := New("plain")
	assert.Equal(t, mgl32.Vec3{0.1, 0.1, 0.1}, def.AmbientColor)
	assert.Equal(t, float32(0.1), def.AmbientStrength)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, def.DiffuseColor)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, def.SpecularColor)
	assert.Equal(t, float32(1), def.Shininess)

	m := New("metal",
		WithAmbient(mgl32.Vec3{0.3, 0.1, 0.1}, 0.1),
		WithDiffuse(mgl32.Vec3{0.3, 0.3, 0.3}),
		WithSpecular(mgl32.Vec3{0.5, 0.5, 0.5}),
		WithShininess(64),
	)
	assert.Equal(t, mgl32.Vec3{0.3, 0.1, 0.1}, m.AmbientColor)
	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0.5}, m.SpecularColor)
	assert.Equal(t, float32(64), m.Shininess)
}
