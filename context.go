package bright

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Context owns the OpenGL context every other type in this package renders
// against. It is backed by a hidden 1x1 GLFW window and must be created
// before any Camera, Mesh, Frame or Renderer touches the GPU.
//
// The context is bound to the calling OS thread. Callers must pin that
// thread with runtime.LockOSThread and keep all rendering on it.
type Context struct {
	window *glfw.Window
	closed bool
}

// NewContext initializes GLFW, creates an invisible floating window with a
// 2x multisampled OpenGL 4.3 core context and makes it current.
func NewContext() (*Context, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("could not initialize glfw: %v", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Floating, glfw.True)
	glfw.WindowHint(glfw.Samples, 2)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1, 1, "bright", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create offscreen window: %v", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("could not initialize opengl: %v", err)
	}

	// Global parameters shared by every renderer.
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(true)

	return &Context{window: window}, nil
}

// Close destroys the window and terminates GLFW. Calling Close more than
// once is a no-op.
func (c *Context) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.window.Destroy()
	glfw.Terminate()
}
