// Package frameio saves and rescales frames rendered by bright.
package frameio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/sdeslauriers/bright"
)

// WritePNG encodes the image as PNG to w.
func WritePNG(im *bright.Image, w io.Writer) error {
	return png.Encode(w, im.RGBA())
}

// SavePNG encodes the image as PNG to a file at path.
func SavePNG(im *bright.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create image file: %v", err)
	}
	if err := WritePNG(im, file); err != nil {
		file.Close()
		return fmt.Errorf("could not encode image: %v", err)
	}
	return file.Close()
}

// Scale returns the image enlarged by an integer factor using nearest
// neighbor sampling. Factors of 1 or less return the input unchanged.
func Scale(im *bright.Image, factor int) *bright.Image {
	if factor <= 1 {
		return im
	}

	src := im.RGBA()
	dst := image.NewRGBA(image.Rect(0, 0, im.Width*factor, im.Height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	out := &bright.Image{
		Width:  dst.Bounds().Dx(),
		Height: dst.Bounds().Dy(),
		Pix:    make([]uint8, dst.Bounds().Dx()*dst.Bounds().Dy()*3),
	}
	for row := 0; row < out.Height; row++ {
		for col := 0; col < out.Width; col++ {
			s := row*dst.Stride + col*4
			d := (row*out.Width + col) * 3
			out.Pix[d] = dst.Pix[s]
			out.Pix[d+1] = dst.Pix[s+1]
			out.Pix[d+2] = dst.Pix[s+2]
		}
	}
	return out
}
