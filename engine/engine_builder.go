package engine

import "github.com/scenecraft/glstage/engine/window"

// EngineBuilderOption defines a functional option for configuring an engine
// during construction.
type EngineBuilderOption func(*engine)

// WithWindow sets the window the engine renders into. Required.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - EngineBuilderOption: the option
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithClearColor sets the framebuffer clear color. The default is opaque black.
//
// Parameters:
//   - r: red component (0-1)
//   - g: green component (0-1)
//   - b: blue component (0-1)
//   - a: alpha component (0-1)
//
// Returns:
//   - EngineBuilderOption: the option
func WithClearColor(r, g, b, a float32) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = [4]float32{r, g, b, a}
	}
}

// WithProfiler enables frame statistics logging from the start.
//
// Returns:
//   - EngineBuilderOption: the option
func WithProfiler() EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = true
	}
}
