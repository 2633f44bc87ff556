package bright

import (
	"image"
)

// Image is a CPU-side RGB image read back from a frame. Pix holds 3 bytes
// per pixel in row-major order with row 0 at the top of the image.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the RGB color of the pixel at the given row and column.
func (im *Image) At(row, col int) (r, g, b uint8) {
	i := (row*im.Width + col) * 3
	return im.Pix[i], im.Pix[i+1], im.Pix[i+2]
}

// RGBA converts the image to a standard library image with opaque alpha.
func (im *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for row := 0; row < im.Height; row++ {
		for col := 0; col < im.Width; col++ {
			src := (row*im.Width + col) * 3
			dst := row*out.Stride + col*4
			out.Pix[dst] = im.Pix[src]
			out.Pix[dst+1] = im.Pix[src+1]
			out.Pix[dst+2] = im.Pix[src+2]
			out.Pix[dst+3] = 255
		}
	}
	return out
}

// flipRows reverses the row order of a tightly packed RGB pixel buffer in
// place. OpenGL reads textures back with the origin at the bottom left;
// images returned by this package have row 0 at the top.
func flipRows(pix []uint8, width, height int) {
	stride := width * 3
	tmp := make([]uint8, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
