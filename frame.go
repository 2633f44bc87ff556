package bright

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Frame is an off-screen render target combining an 8-bit RGBA color
// texture and a 32-bit float depth texture attached to one framebuffer
// object. Both textures are allocated once at construction and are never
// resized.
type Frame struct {
	width      int
	height     int
	background mgl32.Vec4

	handle   uint32
	color    uint32
	depth    uint32
	released bool
}

// NewFrame creates a width by height frame that clears to the background
// color. Dimensions below 1 are clamped to 1. The framebuffer is left
// unbound on return.
func NewFrame(width, height int, background mgl32.Vec4) (*Frame, error) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	f := &Frame{width: width, height: height, background: background}

	gl.GenFramebuffers(1, &f.handle)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)

	// Color attachment.
	gl.GenTextures(1, &f.color)
	gl.BindTexture(gl.TEXTURE_2D, f.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
		gl.TEXTURE_2D, f.color, 0)

	// Depth attachment.
	gl.GenTextures(1, &f.depth)
	gl.BindTexture(gl.TEXTURE_2D, f.depth)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT32F, int32(width), int32(height),
		0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT,
		gl.TEXTURE_2D, f.depth, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		f.Release()
		return nil, fmt.Errorf("framebuffer is incomplete: status 0x%x", status)
	}

	return f, nil
}

// Width returns the width of the frame in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the height of the frame in pixels.
func (f *Frame) Height() int { return f.height }

// Bind makes the frame the current render target. It does not unbind;
// callers decide what is bound once rendering completes.
func (f *Frame) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.handle)
}

// Clear binds the frame and clears its color buffer to the background
// color and its depth buffer to the far plane.
func (f *Frame) Clear() {
	f.Bind()
	gl.ClearColor(f.background[0], f.background[1], f.background[2], f.background[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Color reads back the color attachment as an RGB image. The alpha channel
// is dropped and rows are flipped so that row 0 is the top of the image.
func (f *Frame) Color() *Image {
	gl.BindTexture(gl.TEXTURE_2D, f.color)

	pix := make([]uint8, f.width*f.height*3)
	// Tightly packed rows, regardless of width.
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	flipRows(pix, f.width, f.height)

	return &Image{Width: f.width, Height: f.height, Pix: pix}
}

// Release deletes the framebuffer and its textures. Calling Release more
// than once is a no-op.
func (f *Frame) Release() {
	if f.released {
		return
	}
	f.released = true
	gl.DeleteFramebuffers(1, &f.handle)
	gl.DeleteTextures(1, &f.color)
	gl.DeleteTextures(1, &f.depth)
}
