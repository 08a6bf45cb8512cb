package webdemo

import "github.com/cwbudde/algo-gmath/vec"

var cubeVertices = [8]vec.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: -1, Y: 1, Z: 1},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Wireframe appends the visible edges of the unit cube to dst as screen
// space line segments x0, y0, x1, y1. Edges with an endpoint that does not
// project are skipped.
func (e *Engine) Wireframe(dst []float32) []float32 {
	mvp := e.MVP()

	var screen [len(cubeVertices)]vec.Vec2
	var visible [len(cubeVertices)]bool
	for i, v := range cubeVertices {
		screen[i], visible[i] = e.project(mvp, v)
	}

	for _, edge := range cubeEdges {
		a, b := edge[0], edge[1]
		if !visible[a] || !visible[b] {
			continue
		}
		dst = append(dst,
			float32(screen[a].X), float32(screen[a].Y),
			float32(screen[b].X), float32(screen[b].Y),
		)
	}
	return dst
}
