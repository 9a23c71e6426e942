package light

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenecraft/glstage/engine/shaderstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	ops []string
}

var _ shaderstate.Sink = &recordingSink{}

func (s *recordingSink) record(name string, value any) {
	s.ops = append(s.ops, fmt.Sprintf("%s=%v", name, value))
}

func (s *recordingSink) SetMat4(name string, value mgl32.Mat4) { s.record(name, "mat4") }
func (s *recordingSink) SetVec4(name string, value mgl32.Vec4) { s.record(name, [4]float32(value)) }
func (s *recordingSink) SetVec3(name string, value mgl32.Vec3) { s.record(name, [3]float32(value)) }
func (s *recordingSink) SetVec2(name string, value mgl32.Vec2) { s.record(name, [2]float32(value)) }
func (s *recordingSink) SetFloat(name string, value float32)   { s.record(name, value) }
func (s *recordingSink) SetBool(name string, value bool)       { s.record(name, value) }
func (s *recordingSink) SetSampler(name string, slot int32)    { s.record(name, slot) }

func TestLightFieldNames(t *testing.T) {
	assert.Equal(t, "lightSources[0].position", shaderstate.LightField(0, shaderstate.LightPosition))
	assert.Equal(t, "lightSources[3].specularIntensity", shaderstate.LightField(3, shaderstate.LightSpecularIntensity))
}

func TestApplyWritesIndexedFields(t *testing.T) {
	sink := &recordingSink{}

	Apply(sink, New(mgl32.Vec3{-7, 7, 10}, WithFocalStrength(16)))

	require.Equal(t, []string{
		"bUseLighting=true",
		"lightSources[0].position=[-7 7 10]",
		"lightSources[0].ambientColor=[0.8 0.8 0.7]",
		"lightSources[0].diffuseColor=[1 0.95 0.85]",
		"lightSources[0].specularColor=[1 1 1]",
		"lightSources[0].focalStrength=16",
		"lightSources[0].specularIntensity=0.7",
	}, sink.ops)
}

func TestApplyNoLightsStillEnablesLighting(t *testing.T) {
	sink := &recordingSink{}

	Apply(sink)

	assert.Equal(t, []string{"bUseLighting=true"}, sink.ops)
}

func TestApplyCapsAtMaxLights(t *testing.T) {
	sink := &recordingSink{}
	lights := make([]Light, MaxLights+2)
	for i := range lights {
		lights[i] = New(mgl32.Vec3{float32(i), 0, 0})
	}

	Apply(sink, lights...)

	// 1 flag write plus 6 fields per applied light.
	assert.Len(t, sink.ops, 1+6*MaxLights)
	assert.NotContains(t, sink.ops, fmt.Sprintf("lightSources[%d].position=[%v 0 0]", MaxLights, MaxLights))
}

func TestNewDefaults(t *testing.T) {
	l := New(mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, l.Position)
	assert.Equal(t, mgl32.Vec3{0.8, 0.8, 0.7}, l.AmbientColor)
	assert.Equal(t, mgl32.Vec3{1.0, 0.95, 0.85}, l.DiffuseColor)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, l.SpecularColor)
	assert.Equal(t, float32(32), l.FocalStrength)
	assert.Equal(t, float32(0.7), l.SpecularIntensity)
}
