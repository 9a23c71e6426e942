// package engine runs the render loop that drives the scene layer.
package engine

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/scenecraft/glstage/engine/profiler"
	"github.com/scenecraft/glstage/engine/window"
)

// engine implements the Engine interface.
// Everything runs on the single OS thread that owns the GL context: the scene
// layer is synchronous, so there are no render or tick goroutines.
type engine struct {
	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled bool

	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped

	clearColor [4]float32
}

// Engine owns the render loop. It clears the framebuffer, invokes the render
// callback, and presents, once per frame, until the window closes.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables frame statistics output to the log.
	EnableProfiler()

	// DisableProfiler disables frame statistics output.
	DisableProfiler()

	// SetRenderCallback registers the function called each frame between
	// clear and buffer swap. All scene drawing happens inside this callback.
	//
	// Parameters:
	//   - callback: function to call each frame, receiving the delta time in seconds
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Run starts the render loop and blocks until the window closes. Must be
	// called on the thread that created the window.
	Run()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// A window is required; NewEngine panics if none was supplied.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:   profiler.NewProfiler(),
		clearColor: [4]float32{0, 0, 0, 1},
	}
	for _, opt := range options {
		opt(e)
	}
	if e.window == nil {
		panic("engine: NewEngine requires a window")
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Second / time.Duration(fps)
}

func (e *engine) Run() {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(e.clearColor[0], e.clearColor[1], e.clearColor[2], e.clearColor[3])

	lastFrame := time.Now()
	for e.window.IsRunning() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		if e.renderCallback != nil {
			e.renderCallback(dt)
		}

		e.window.SwapBuffers()
		e.window.PollEvents()

		if e.profilingEnabled && e.profiler != nil {
			e.profiler.Tick()
		}

		if e.renderFrameLimit > 0 {
			if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}
