package bright

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera represents a pinhole camera that takes snapshots of a scene. It
// dictates the point of view and the resolution of the rendered output.
//
// A camera holds no GPU resources and may be shared across renderers. Its
// width and height are fixed at construction; a renderer built from this
// camera sizes its frame from them and the two can therefore never drift
// apart.
type Camera struct {
	location mgl32.Vec3
	target   mgl32.Vec3
	width    int
	height   int

	// Up is the up direction of the camera.
	Up mgl32.Vec3
	// FOV is the vertical field of view in degrees.
	FOV float32
	// Near and Far are the clip plane distances.
	Near float32
	Far  float32
}

// NewCamera creates a camera located at location looking at target with an
// output resolution of width by height pixels. Dimensions below 1 are
// clamped to 1.
func NewCamera(location, target mgl32.Vec3, width, height int) *Camera {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return &Camera{
		location: location,
		target:   target,
		width:    width,
		height:   height,
		Up:       mgl32.Vec3{0, 1, 0},
		FOV:      45.0,
		Near:     1.0,
		Far:      1e9,
	}
}

// Location returns the position of the camera.
func (c *Camera) Location() mgl32.Vec3 { return c.location }

// SetLocation moves the camera to location.
func (c *Camera) SetLocation(location mgl32.Vec3) { c.location = location }

// Target returns the point the camera is looking at.
func (c *Camera) Target() mgl32.Vec3 { return c.target }

// SetTarget aims the camera at target.
func (c *Camera) SetTarget(target mgl32.Vec3) { c.target = target }

// Width returns the width of the camera output in pixels.
func (c *Camera) Width() int { return c.width }

// Height returns the height of the camera output in pixels.
func (c *Camera) Height() int { return c.height }

// View returns the look-at view matrix of the camera.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.location, c.target, c.Up)
}

// Projection returns the perspective projection matrix of the camera.
func (c *Camera) Projection() mgl32.Mat4 {
	aspect := float32(c.width) / float32(c.height)
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
