package scene

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/scenecraft/glstage/common"
	"github.com/scenecraft/glstage/engine/material"
	"github.com/scenecraft/glstage/engine/shaderstate"
	"github.com/scenecraft/glstage/engine/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink logs every uniform write in order as "name=value" strings so
// tests can assert both content and sequencing.
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

// stubDevice satisfies texture.Device without touching a GPU.
type stubDevice struct {
	nextHandle uint32
}

func (d *stubDevice) CreateTexture(img *common.ImageData) (uint32, error) {
	d.nextHandle++
	return d.nextHandle, nil
}
func (d *stubDevice) BindTexture(unit int, handle uint32) {}
func (d *stubDevice) DeleteTexture(handle uint32)         {}

// stubMesh appends a marker to the sink's op log when drawn, so draw
// ordering relative to uniform writes is observable.
type stubMesh struct {
	sink *recordingSink
	name string
}

func (m *stubMesh) Draw() { m.sink.ops = append(m.sink.ops, "draw:"+m.name) }

// fixedRegistry resolves tags to preset slots without reading any files.
type fixedRegistry struct {
	texture.Registry
	slots map[string]int
}

func (r *fixedRegistry) FindSlot(tag string) int {
	if slot, ok := r.slots[tag]; ok {
		return slot
	}
	return -1
}

func newManagerWithSink(t *testing.T, slots map[string]int) (*recordingSink, Manager) {
	t.Helper()
	sink := &recordingSink{}
	dev := &stubDevice{}
	mgr := NewManager(sink, dev,
		WithTextureRegistry(&fixedRegistry{Registry: texture.NewRegistry(dev), slots: slots}),
	)
	return sink, mgr
}

func TestNewManagerRequiresCollaborators(t *testing.T) {
	assert.Panics(t, func() { NewManager(nil, &stubDevice{}) })
	assert.Panics(t, func() { NewManager(&recordingSink{}, nil) })
}

func TestSetColorDisablesTexturing(t *testing.T) {
	sink, mgr := newManagerWithSink(t, nil)

	mgr.SetColor(0.5, 0.5, 0.5, 1)

	require.Equal(t, []string{
		"bUseTexture=false",
		"objectColor=[0.5 0.5 0.5 1]",
	}, sink.ops)
}

func TestSetTextureEnablesTexturing(t *testing.T) {
	sink, mgr := newManagerWithSink(t, map[string]int{"grass": 3})

	mgr.SetTexture("grass")

	require.Equal(t, []string{
		"bUseTexture=true",
		"objectTexture=3",
	}, sink.ops)
}

func TestSetTextureMissDegrades(t *testing.T) {
	sink, mgr := newManagerWithSink(t, nil)

	mgr.SetTexture("missing")

	require.Equal(t, []string{
		"bUseTexture=true",
		"objectTexture=-1",
	}, sink.ops)
}

func TestColorThenTextureLastWriteWins(t *testing.T) {
	sink, mgr := newManagerWithSink(t, map[string]int{"wood": 1})

	mgr.SetColor(1, 0, 0, 1)
	mgr.SetTexture("wood")

	require.Equal(t, []string{
		"bUseTexture=false",
		"objectColor=[1 0 0 1]",
		"bUseTexture=true",
		"objectTexture=1",
	}, sink.ops)
}

func TestSetMaterialMissLeavesStateUntouched(t *testing.T) {
	sink, mgr := newManagerWithSink(t, nil)

	mgr.SetMaterial("undefined")
	assert.Empty(t, sink.ops)

	mgr.SetMaterial("")
	assert.Empty(t, sink.ops)
}

func TestSetMaterialWritesAllFields(t *testing.T) {
	sink, mgr := newManagerWithSink(t, nil)
	mgr.Materials().Define(material.New("metal",
		material.WithAmbient(mgl32.Vec3{0.3, 0.1, 0.1}, 0.1),
		material.WithDiffuse(mgl32.Vec3{0.3, 0.3, 0.3}),
		material.WithSpecular(mgl32.Vec3{0.5, 0.5, 0.5}),
		material.WithShininess(64),
	))

	mgr.SetMaterial("metal")

	require.Equal(t, []string{
		"material.diffuseColor=[0.3 0.3 0.3]",
		"material.specularColor=[0.5 0.5 0.5]",
		"material.shininess=64",
		"material.ambientColor=[0.3 0.1 0.1]",
		"material.ambientStrength=0.1",
	}, sink.ops)
}

func TestDrawObjectSequence(t *testing.T) {
	sink, mgr := newManagerWithSink(t, map[string]int{"grass": 0})

	mgr.Draw(Object{
		Mesh:       &stubMesh{sink: sink, name: "plane"},
		Scale:      mgl32.Vec3{20, 1, 10},
		Color:      mgl32.Vec4{0.5, 0.5, 0.5, 1},
		HasColor:   true,
		TextureTag: "grass",
		UVScale:    [2]float32{2, 3},
	})

	require.Equal(t, []string{
		"model=mat4",
		"bUseTexture=false",
		"objectColor=[0.5 0.5 0.5 1]",
		"bUseTexture=true",
		"objectTexture=0",
		"UVscale=[2 3]",
		"draw:plane",
	}, sink.ops)
}

func TestDrawDefaults(t *testing.T) {
	sink, mgr := newManagerWithSink(t, nil)

	mgr.Draw(Object{Mesh: &stubMesh{sink: sink, name: "box"}})

	// A zero-value object still gets a model matrix, the default UV scale,
	// and a draw; color and texture writes are skipped.
	require.Equal(t, []string{
		"model=mat4",
		"UVscale=[1 1]",
		"draw:box",
	}, sink.ops)
}

func TestDrawMultipleObjectsInOrder(t *testing.T) {
	sink, mgr := newManagerWithSink(t, nil)

	mgr.Draw(
		Object{Mesh: &stubMesh{sink: sink, name: "first"}},
		Object{Mesh: &stubMesh{sink: sink, name: "second"}},
	)

	var draws []string
	for _, op := range sink.ops {
		if op == "draw:first" || op == "draw:second" {
			draws = append(draws, op)
		}
	}
	assert.Equal(t, []string{"draw:first", "draw:second"}, draws)
}

func TestDrawNilMeshSkipsDraw(t *testing.T) {
	sink, mgr := newManagerWithSink(t, nil)

	mgr.Draw(Object{Scale: mgl32.Vec3{1, 1, 1}})

	assert.Equal(t, []string{"model=mat4", "UVscale=[1 1]"}, sink.ops)
}

// countingLibrary tracks Release calls for lifetime assertions.
type countingLibrary struct {
	releases int
}

func (l *countingLibrary) Release() { l.releases++ }

func TestReleaseIsIdempotent(t *testing.T) {
	sink := &recordingSink{}
	lib := &countingLibrary{}
	mgr := NewManager(sink, &stubDevice{}, WithMeshLibrary(lib))

	mgr.Release()
	mgr.Release()

	assert.Equal(t, 1, lib.releases, "mesh library released exactly once")
}
