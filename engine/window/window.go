// package window provides the GLFW window and OpenGL context the renderer
// draws into.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/scenecraft/glstage/common"
)

// Window provides platform windowing, the GL context, and input event
// handling. All methods must be called on the thread that created the window;
// New locks the calling goroutine to its OS thread for this reason.
type Window interface {
	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the GLFW key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// IsRunning returns true while the window is open.
	//
	// Returns:
	//   - bool: true if the window has not been closed
	IsRunning() bool

	// PollEvents processes pending window and input events without blocking.
	PollEvents()

	// SwapBuffers presents the back buffer. Call once per rendered frame.
	SwapBuffers()

	// Close destroys the window and terminates GLFW.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// glWindow is the implementation of the Window interface.
type glWindow struct {
	title  string
	width  int
	height int

	window  *glfw.Window
	running bool

	onResize  func(width, height int)
	onKeyDown func(keyCode uint32)
}

var _ Window = &glWindow{}

// New creates the GLFW window with an OpenGL 4.1 core context, makes the
// context current, and initializes the GL function bindings. The calling
// goroutine is locked to its OS thread: every GL call and window operation
// must happen on this thread.
//
// Parameters:
//   - options: functional options for window configuration
//
// Returns:
//   - Window: the created window
//   - error: error if GLFW, the window, or the GL bindings fail to initialize
func New(options ...WindowBuilderOption) (Window, error) {
	runtime.LockOSThread()

	w := &glWindow{
		title:  "glstage",
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.width = common.Coalesce(w.width, 1280)
	w.height = common.Coalesce(w.height, 720)

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Request a 4.1 core context, the highest version available everywhere
	// the engine targets (notably macOS).
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL bindings: %w", err)
	}

	w.window = win
	w.running = true

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.running = false
			win.SetShouldClose(true)
			return
		}
		if (action == glfw.Press || action == glfw.Repeat) && w.onKeyDown != nil {
			w.onKeyDown(uint32(key))
		}
	})

	// Framebuffer size gives pixel-accurate dimensions on high-DPI displays.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		gl.Viewport(0, 0, int32(width), int32(height))
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return w, nil
}

func (w *glWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *glWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *glWindow) IsRunning() bool {
	return w.window != nil && w.running && !w.window.ShouldClose()
}

func (w *glWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glWindow) Close() error {
	if w.window == nil {
		return fmt.Errorf("window is not initialized")
	}
	w.running = false
	w.window.SetShouldClose(true)
	w.window.Destroy()
	w.window = nil
	glfw.Terminate()
	return nil
}

func (w *glWindow) Width() int {
	return w.width
}

func (w *glWindow) Height() int {
	return w.height
}
