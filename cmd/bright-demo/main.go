// Renders an orbit around a vertex-colored square and writes the frames as
// a PNG sequence.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/sdeslauriers/bright"
	"github.com/sdeslauriers/bright/pkg/frameio"
)

func init() { runtime.LockOSThread() }

func main() {
	width := flag.Int("width", 256, "output width in pixels")
	height := flag.Int("height", 256, "output height in pixels")
	frames := flag.Int("frames", 60, "number of frames to render")
	scale := flag.Int("scale", 1, "integer upscaling factor for the output")
	out := flag.String("out", "frames", "output directory")
	flag.Parse()

	if err := run(*width, *height, *frames, *scale, *out); err != nil {
		log.Fatal(err)
	}
}

func run(width, height, frames, scale int, out string) error {
	ctx, err := bright.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	mesh, err := bright.NewMesh(
		[]mgl32.Vec3{
			{-1, -1, 0},
			{1, -1, 0},
			{1, 1, 0},
			{-1, 1, 0},
		},
		[][3]uint32{
			{0, 1, 2},
			{0, 2, 3},
		},
		[]mgl32.Vec4{
			{1, 0, 0, 1},
			{0, 1, 0, 1},
			{0, 0, 1, 1},
			{1, 1, 0, 1},
		},
	)
	if err != nil {
		return err
	}
	defer mesh.Release()

	meshes := []*bright.Mesh{mesh}
	target := bright.Center(meshes)
	camera := bright.NewCamera(mgl32.Vec3{0, 0, 5}, target, width, height)

	renderer, err := bright.NewMeshRenderer(camera, meshes,
		bright.WithBackground(mgl32.Vec4{0, 0, 0, 1}))
	if err != nil {
		return err
	}
	defer renderer.Release()

	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	for i := 0; i < frames; i++ {
		angle := 2 * math.Pi * float64(i) / float64(frames)
		camera.SetLocation(mgl32.Vec3{
			float32(5 * math.Sin(angle)),
			2,
			float32(5 * math.Cos(angle)),
		})

		renderer.Render()
		image := frameio.Scale(renderer.Frame().Color(), scale)

		path := filepath.Join(out, fmt.Sprintf("frame_%03d.png", i))
		if err := frameio.SavePNG(image, path); err != nil {
			return err
		}
	}

	log.Printf("wrote %d frames to %s", frames, out)
	return nil
}
