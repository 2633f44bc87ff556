package bright

import (
	"testing"
)

func TestFlipRows(t *testing.T) {
	// 2x3 image, one distinct value per row.
	pix := []uint8{
		1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2,
		3, 3, 3, 3, 3, 3,
	}

	flipRows(pix, 2, 3)

	want := []uint8{
		3, 3, 3, 3, 3, 3,
		2, 2, 2, 2, 2, 2,
		1, 1, 1, 1, 1, 1,
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Fatalf("pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}

func TestFlipRowsSingleRow(t *testing.T) {
	pix := []uint8{9, 8, 7}
	flipRows(pix, 1, 1)
	if pix[0] != 9 || pix[1] != 8 || pix[2] != 7 {
		t.Errorf("single row changed by flip: %v", pix)
	}
}

func TestImageAt(t *testing.T) {
	im := &Image{
		Width:  2,
		Height: 2,
		Pix: []uint8{
			10, 11, 12, 20, 21, 22,
			30, 31, 32, 40, 41, 42,
		},
	}

	r, g, b := im.At(1, 0)
	if r != 30 || g != 31 || b != 32 {
		t.Errorf("At(1, 0) = (%d, %d, %d), want (30, 31, 32)", r, g, b)
	}
}

func TestImageRGBA(t *testing.T) {
	im := &Image{
		Width:  1,
		Height: 2,
		Pix:    []uint8{1, 2, 3, 4, 5, 6},
	}

	rgba := im.RGBA()
	if rgba.Bounds().Dx() != 1 || rgba.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 1x2", rgba.Bounds())
	}

	r, g, b, a := rgba.At(0, 1).RGBA()
	if r>>8 != 4 || g>>8 != 5 || b>>8 != 6 || a>>8 != 255 {
		t.Errorf("At(0, 1) = (%d, %d, %d, %d), want (4, 5, 6, 255)",
			r>>8, g>>8, b>>8, a>>8)
	}
}
