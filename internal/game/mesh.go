package game

import "github.com/go-gl/gl/v4.1-core/gl"

// shape is one shared geometry buffer (position + normal interleaved).
type shape struct {
	vbo       uint32
	vertCount int32
}

// meshCache memoizes shared geometry: every instance group drawing the
// same shape reuses one vertex buffer instead of reallocating per group.
type meshCache struct {
	shapes map[string]shape
}

func newMeshCache() *meshCache {
	return &meshCache{shapes: make(map[string]shape)}
}

func (mc *meshCache) shape(name string, build func() []float32) shape {
	if s, ok := mc.shapes[name]; ok {
		return s
	}
	verts := build()
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	s := shape{vbo: vbo, vertCount: int32(len(verts) / 6)}
	mc.shapes[name] = s
	return s
}

func (mc *meshCache) destroy() {
	for _, s := range mc.shapes {
		gl.DeleteBuffers(1, &s.vbo)
	}
	mc.shapes = nil
}

// instanceFloats is the per-instance attribute stride:
// pos(3) + scale(3) + yaw(1) + color(3) + emissive(1).
const instanceFloats = 11

// InstanceGroup is one batched draw call: shared shape geometry plus its
// own instance buffer. Static groups upload once at startup; dynamic
// groups re-upload every frame.
type InstanceGroup struct {
	vao     uint32
	instVBO uint32
	shape   shape
	count   int32
	instCap int
}

func newInstanceGroup(s shape) *InstanceGroup {
	g := &InstanceGroup{shape: s}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, glOffset(3*4))

	gl.GenBuffers(1, &g.instVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.instVBO)
	stride := int32(instanceFloats * 4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.VertexAttribDivisor(2, 1)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.VertexAttribDivisor(3, 1)
	gl.EnableVertexAttribArray(4)
	gl.VertexAttribPointer(4, 1, gl.FLOAT, false, stride, glOffset(6*4))
	gl.VertexAttribDivisor(4, 1)
	gl.EnableVertexAttribArray(5)
	gl.VertexAttribPointer(5, 3, gl.FLOAT, false, stride, glOffset(7*4))
	gl.VertexAttribDivisor(5, 1)
	gl.EnableVertexAttribArray(6)
	gl.VertexAttribPointer(6, 1, gl.FLOAT, false, stride, glOffset(10*4))
	gl.VertexAttribDivisor(6, 1)

	gl.BindVertexArray(0)
	return g
}

// Upload replaces the instance buffer contents, growing it when needed.
func (g *InstanceGroup) Upload(instances []float32) {
	g.count = int32(len(instances) / instanceFloats)
	if g.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, g.instVBO)
	if int(g.count) > g.instCap {
		g.instCap = int(g.count) * 2
		gl.BufferData(gl.ARRAY_BUFFER, g.instCap*instanceFloats*4, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(instances)*4, gl.Ptr(instances))
}

// Draw renders the uploaded instances as one call.
func (g *InstanceGroup) Draw() {
	if g.count == 0 {
		return
	}
	gl.BindVertexArray(g.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, g.shape.vertCount, g.count)
	gl.BindVertexArray(0)
}

func (g *InstanceGroup) Destroy() {
	gl.DeleteBuffers(1, &g.instVBO)
	gl.DeleteVertexArrays(1, &g.vao)
}

// unitCubeVerts returns a unit cube centered at origin (position+normal,
// 36 vertices).
func unitCubeVerts() []float32 {
	faces := []struct {
		n [3]float32
		v [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-.5, -.5, .5}, {.5, -.5, .5}, {.5, .5, .5}, {-.5, .5, .5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{.5, -.5, -.5}, {-.5, -.5, -.5}, {-.5, .5, -.5}, {.5, .5, -.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{.5, -.5, .5}, {.5, -.5, -.5}, {.5, .5, -.5}, {.5, .5, .5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-.5, -.5, -.5}, {-.5, -.5, .5}, {-.5, .5, .5}, {-.5, .5, -.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-.5, .5, .5}, {.5, .5, .5}, {.5, .5, -.5}, {-.5, .5, -.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-.5, -.5, -.5}, {.5, -.5, -.5}, {.5, -.5, .5}, {-.5, -.5, .5}}},
	}
	verts := make([]float32, 0, 36*6)
	push := func(p [3]float32, n [3]float32) {
		verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for _, f := range faces {
		push(f.v[0], f.n)
		push(f.v[1], f.n)
		push(f.v[2], f.n)
		push(f.v[0], f.n)
		push(f.v[2], f.n)
		push(f.v[3], f.n)
	}
	return verts
}
