package bright

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform locations of the mesh shader.
const (
	uniformView       = 0
	uniformProjection = 1
)

const meshVertexShader = `#version 430

layout(location = 0) uniform mat4 camera_view_matrix;
layout(location = 1) uniform mat4 camera_perspective_matrix;

layout(location = 0) in vec3 model_vertex_position;
layout(location = 1) in vec4 model_vertex_color;

out vec4 color;

void main() {
    gl_Position = camera_perspective_matrix * camera_view_matrix *
                  vec4(model_vertex_position, 1.0);
    color = model_vertex_color;
}
`

const meshFragmentShader = `#version 430

in vec4 color;

out vec4 fragment_color;

void main() {
    fragment_color = color;
}
`

// Renderer renders a scene into an owned frame. Render may be called any
// number of times; each call leaves the result in Frame.
type Renderer interface {
	Render()
	Frame() *Frame
	Camera() *Camera
}

// Option configures a renderer at construction time.
type Option func(*rendererOptions)

type rendererOptions struct {
	background mgl32.Vec4
}

// WithBackground sets the RGBA background color of the renderer's frame.
// The default is (1, 1, 1, 0).
func WithBackground(background mgl32.Vec4) Option {
	return func(o *rendererOptions) { o.background = background }
}

// MeshRenderer rasterizes colored meshes through a camera into an
// off-screen frame. The rendering is flat vertex-color shading with
// perspective-correct interpolation, alpha blending and depth testing;
// there is no lighting and no texturing.
//
// The camera and meshes stay owned by the caller; the frame and shader are
// owned by the renderer. Renderers sharing a context must render
// sequentially, since viewport and blend/depth toggles are global state.
type MeshRenderer struct {
	camera *Camera
	frame  *Frame
	shader *Shader
	meshes []*Mesh

	released bool
}

// NewMeshRenderer creates a renderer that draws meshes as seen by camera.
// The frame is sized to the camera's dimensions at this moment.
func NewMeshRenderer(camera *Camera, meshes []*Mesh, opts ...Option) (*MeshRenderer, error) {
	options := rendererOptions{background: mgl32.Vec4{1, 1, 1, 0}}
	for _, opt := range opts {
		opt(&options)
	}

	frame, err := NewFrame(camera.Width(), camera.Height(), options.background)
	if err != nil {
		return nil, fmt.Errorf("could not create frame: %v", err)
	}

	shader, err := NewShader(meshVertexShader, meshFragmentShader)
	if err != nil {
		frame.Release()
		return nil, fmt.Errorf("could not create mesh shader: %v", err)
	}

	return &MeshRenderer{
		camera: camera,
		frame:  frame,
		shader: shader,
		meshes: meshes,
	}, nil
}

// Camera returns the camera used to render.
func (r *MeshRenderer) Camera() *Camera { return r.camera }

// Frame returns the output frame of the renderer.
func (r *MeshRenderer) Frame() *Frame { return r.frame }

// Meshes returns the meshes drawn by the renderer.
func (r *MeshRenderer) Meshes() []*Mesh { return r.meshes }

// SetMeshes replaces the meshes drawn by the renderer. The meshes remain
// owned by the caller.
func (r *MeshRenderer) SetMeshes(meshes []*Mesh) { r.meshes = meshes }

// Render draws every mesh into the frame in collection order. Overlapping
// translucent geometry blends in that order, so back-to-front sorting is
// the caller's responsibility. Blending and depth testing are disabled
// again before returning.
func (r *MeshRenderer) Render() {
	r.shader.Use()
	r.frame.Clear()

	gl.Viewport(0, 0, int32(r.camera.Width()), int32(r.camera.Height()))
	gl.Enable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)

	projection := r.camera.Projection()
	view := r.camera.View()

	gl.UniformMatrix4fv(uniformProjection, 1, false, &projection[0])
	gl.UniformMatrix4fv(uniformView, 1, false, &view[0])

	for _, mesh := range r.meshes {
		mesh.Draw()
	}

	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
}

// Release frees the frame and shader of the renderer. The camera and
// meshes are left untouched. Calling Release more than once is a no-op.
func (r *MeshRenderer) Release() {
	if r.released {
		return
	}
	r.released = true
	r.frame.Release()
	r.shader.Release()
}
