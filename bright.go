// Package bright renders colored triangle meshes off-screen through OpenGL
// and returns the frames as CPU-side RGB images.
//
// A Context must be created first and all calls must stay on the OS thread
// that owns it. Cameras and meshes are built independently and composed
// into renderers; the top-level Render function steps renderers across a
// frame index range and collects their output.
package bright

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Render steps every renderer once per frame index in [start, stop) and
// collects one image per index, read from the frame of the last renderer
// in the slice. The returned slice has stop - start images.
//
// Only the last renderer's frame is captured per index. Use RenderAll to
// capture the output of every renderer.
func Render(renderers []Renderer, start, stop int) []*Image {
	if stop < start {
		stop = start
	}
	frames := make([]*Image, 0, stop-start)
	for i := start; i < stop; i++ {
		var last Renderer
		for _, renderer := range renderers {
			renderer.Render()
			last = renderer
		}
		if last != nil {
			frames = append(frames, last.Frame().Color())
		}
	}
	return frames
}

// RenderAll steps every renderer once per frame index in [start, stop) and
// collects the output of each of them. The returned slice has stop - start
// entries, each holding one image per renderer in slice order.
func RenderAll(renderers []Renderer, start, stop int) [][]*Image {
	if stop < start {
		stop = start
	}
	frames := make([][]*Image, 0, stop-start)
	for i := start; i < stop; i++ {
		images := make([]*Image, 0, len(renderers))
		for _, renderer := range renderers {
			renderer.Render()
			images = append(images, renderer.Frame().Color())
		}
		frames = append(frames, images)
	}
	return frames
}

// Center returns the center of the axis-aligned bounding box enclosing the
// vertices of all the given meshes.
func Center(meshes []*Mesh) mgl32.Vec3 {
	sets := make([][]mgl32.Vec3, 0, len(meshes))
	for _, mesh := range meshes {
		sets = append(sets, mesh.Vertices())
	}
	return boundsCenter(sets)
}

func boundsCenter(sets [][]mgl32.Vec3) mgl32.Vec3 {
	first := true
	var mins, maxs mgl32.Vec3
	for _, vertices := range sets {
		for _, v := range vertices {
			if first {
				mins, maxs = v, v
				first = false
				continue
			}
			for axis := 0; axis < 3; axis++ {
				if v[axis] < mins[axis] {
					mins[axis] = v[axis]
				}
				if v[axis] > maxs[axis] {
					maxs[axis] = v[axis]
				}
			}
		}
	}
	return maxs.Add(mins).Mul(0.5)
}
