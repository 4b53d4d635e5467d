package game

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the whole scene as instanced boxes plus one point-sprite
// pass for particles and a few flat quads for the HUD. Static geometry is
// uploaded once; windows stay split into exactly two instance groups so the
// entire facade layer costs two draw calls.
type Renderer struct {
	boxProg        uint32
	uViewProj      int32
	uSunDir        int32
	uAmbient       int32
	uSunTint       int32
	uCamPos        int32
	uSkyColor      int32
	uFogDensity    int32
	uEmissiveScale int32

	pointProg     uint32
	ptUViewProj   int32
	ptUViewportH  int32
	pointVAO      uint32
	pointVBO      uint32
	pointCap      int

	hudProg   uint32
	hudURect  int32
	hudUColor int32
	hudVAO    uint32
	hudVBO    uint32

	cache *meshCache

	static       *InstanceGroup
	windowsLit   *InstanceGroup
	windowsUnlit *InstanceGroup
	dynamic      *InstanceGroup

	dynBuf      []float32
	particleBuf []float32

	viewProj Mat4
	fbW, fbH int
}

func NewRenderer() (*Renderer, error) {
	boxProg, err := linkProgram(boxVertexShader, boxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("box program: %w", err)
	}
	pointProg, err := linkProgram(pointVertexShader, pointFragmentShader)
	if err != nil {
		gl.DeleteProgram(boxProg)
		return nil, fmt.Errorf("point program: %w", err)
	}
	hudProg, err := linkProgram(hudVertexShader, hudFragmentShader)
	if err != nil {
		gl.DeleteProgram(boxProg)
		gl.DeleteProgram(pointProg)
		return nil, fmt.Errorf("hud program: %w", err)
	}

	r := &Renderer{
		boxProg:   boxProg,
		pointProg: pointProg,
		hudProg:   hudProg,
		cache:     newMeshCache(),
	}

	r.uViewProj = gl.GetUniformLocation(boxProg, gl.Str("uViewProj\x00"))
	r.uSunDir = gl.GetUniformLocation(boxProg, gl.Str("uSunDir\x00"))
	r.uAmbient = gl.GetUniformLocation(boxProg, gl.Str("uAmbient\x00"))
	r.uSunTint = gl.GetUniformLocation(boxProg, gl.Str("uSunTint\x00"))
	r.uCamPos = gl.GetUniformLocation(boxProg, gl.Str("uCamPos\x00"))
	r.uSkyColor = gl.GetUniformLocation(boxProg, gl.Str("uSkyColor\x00"))
	r.uFogDensity = gl.GetUniformLocation(boxProg, gl.Str("uFogDensity\x00"))
	r.uEmissiveScale = gl.GetUniformLocation(boxProg, gl.Str("uEmissiveScale\x00"))

	r.ptUViewProj = gl.GetUniformLocation(pointProg, gl.Str("uViewProj\x00"))
	r.ptUViewportH = gl.GetUniformLocation(pointProg, gl.Str("uViewportH\x00"))

	r.hudURect = gl.GetUniformLocation(hudProg, gl.Str("uRect\x00"))
	r.hudUColor = gl.GetUniformLocation(hudProg, gl.Str("uColor\x00"))

	cube := r.cache.shape("cube", unitCubeVerts)
	r.static = newInstanceGroup(cube)
	r.windowsLit = newInstanceGroup(cube)
	r.windowsUnlit = newInstanceGroup(cube)
	r.dynamic = newInstanceGroup(cube)

	// Particle point buffer: [x, y, z, size, r, g, b, fade] per point.
	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	stride := int32(8 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, glOffset(4*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))

	// HUD quad: unit square scaled/offset by uRect.
	gl.GenVertexArrays(1, &r.hudVAO)
	gl.GenBuffers(1, &r.hudVBO)
	gl.BindVertexArray(r.hudVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.hudVBO)
	hudVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(hudVerts)*4, gl.Ptr(&hudVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return r, nil
}

func (r *Renderer) Destroy() {
	r.static.Destroy()
	r.windowsLit.Destroy()
	r.windowsUnlit.Destroy()
	r.dynamic.Destroy()
	r.cache.destroy()
	gl.DeleteBuffers(1, &r.pointVBO)
	gl.DeleteVertexArrays(1, &r.pointVAO)
	gl.DeleteBuffers(1, &r.hudVBO)
	gl.DeleteVertexArrays(1, &r.hudVAO)
	gl.DeleteProgram(r.boxProg)
	gl.DeleteProgram(r.pointProg)
	gl.DeleteProgram(r.hudProg)
}

// appendBox packs one instance: position, scale, yaw, colour, emissive.
func appendBox(buf []float32, x, y, z, sx, sy, sz, yaw float64, col RGB, emissive float32) []float32 {
	cr, cg, cb := col.Vec3()
	return append(buf,
		float32(x), float32(y), float32(z),
		float32(sx), float32(sy), float32(sz),
		float32(yaw),
		cr, cg, cb,
		emissive,
	)
}

// UploadStatic flattens the generated world into the static instance
// groups. Called once after generation; the buffers never change again.
func (r *Renderer) UploadStatic(w *World) {
	buf := make([]float32, 0, 4096*instanceFloats)

	// Ground slab, top face at y=0.
	buf = appendBox(buf, 0, -0.5, 0, WorldSize, 1, WorldSize, 0, Palette.Street, 0)

	// Park pad. A box stands in for the disc; the grass reads fine from
	// street level.
	buf = appendBox(buf, 0, 0.01, 0, ParkRadius*2, 0.02, ParkRadius*2, 0, Palette.ParkGrass, 0)

	for i := range w.Sidewalks {
		s := &w.Sidewalks[i]
		buf = appendBox(buf, s.X, SidewalkLift/2, s.Z, s.W, SidewalkLift, s.D, 0, Palette.Sidewalk, 0)
	}

	for i := range w.Buildings {
		b := &w.Buildings[i]
		buf = appendBox(buf, b.X, b.H/2, b.Z, b.W, b.H, b.D, 0, BuildingPalette[b.ColorIdx], 0)
	}

	for i := range w.Trees {
		t := &w.Trees[i]
		leaf := Palette.TreeLeaf.Add(t.Tint*12-12, t.Tint*8, 0)
		buf = appendBox(buf, t.X, t.Height/2, t.Z, 0.32, t.Height, 0.32, 0, Palette.TreeTrunk, 0)
		buf = appendBox(buf, t.X, t.Height, t.Z, t.Canopy, t.Canopy*0.9, t.Canopy, 0, leaf, 0)
	}

	for i := range w.Benches {
		b := &w.Benches[i]
		buf = appendBox(buf, b.X, 0.42, b.Z, 1.6, 0.1, 0.5, b.Yaw, Palette.Bench, 0)
		// Backrest sits behind the seat along the bench's local -Z.
		bx := b.X - math.Sin(b.Yaw)*0.22
		bz := b.Z - math.Cos(b.Yaw)*0.22
		buf = appendBox(buf, bx, 0.72, bz, 1.6, 0.5, 0.08, b.Yaw, Palette.Bench, 0)
	}

	for i := range w.Lamps {
		l := &w.Lamps[i]
		buf = appendBox(buf, l.X, 1.6, l.Z, 0.12, 3.2, 0.12, 0, Palette.LampPost, 0)
		buf = appendBox(buf, l.X, 3.35, l.Z, 0.36, 0.3, 0.36, 0, Palette.LampGlow, 1)
	}

	r.static.Upload(buf)

	lit := make([]float32, 0, len(w.Windows.Lit)*instanceFloats)
	for i := range w.Windows.Lit {
		s := &w.Windows.Lit[i]
		lit = appendBox(lit, s.X, s.Y, s.Z, WindowW, WindowH, 0.08, s.Yaw, Palette.WindowLit, 1)
	}
	r.windowsLit.Upload(lit)

	unlit := make([]float32, 0, len(w.Windows.Unlit)*instanceFloats)
	for i := range w.Windows.Unlit {
		s := &w.Windows.Unlit[i]
		unlit = appendBox(unlit, s.X, s.Y, s.Z, WindowW, WindowH, 0.08, s.Yaw, Palette.WindowOff, 0)
	}
	r.windowsUnlit.Upload(unlit)
}

// sunDirection derives the directional light vector from the cycle phase.
// At night the "sun" settles into a dim overhead moon angle instead of
// lighting from below.
func sunDirection(gameTime float64) (x, y, z float32) {
	phase := CyclePhase(gameTime)
	az := phase * 2 * math.Pi
	el := math.Sin(phase * 2 * math.Pi)
	if el < 0.15 {
		el = 0.15
	}
	dx := math.Cos(az) * (1 - el*0.5)
	dz := math.Sin(az) * (1 - el*0.5)
	n := math.Sqrt(dx*dx + el*el + dz*dz)
	return float32(dx / n), float32(el / n), float32(dz / n)
}

// BeginFrame clears to the sky colour and binds the box program with the
// frame's lighting uniforms.
func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int, gameTime float64) {
	r.fbW, r.fbH = fbW, fbH
	r.viewProj = cam.ViewProj(fbW, fbH)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	sky := SkyColor(gameTime)
	skyR, skyG, skyB := sky.Vec3()
	gl.ClearColor(skyR, skyG, skyB, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	ambient, tr, tg, tb := SunCycleLight(gameTime)
	night := NightIntensityFromAmbient(ambient)
	sx, sy, sz := sunDirection(gameTime)

	gl.UseProgram(r.boxProg)
	gl.UniformMatrix4fv(r.uViewProj, 1, false, &r.viewProj[0])
	gl.Uniform3f(r.uSunDir, sx, sy, sz)
	gl.Uniform1f(r.uAmbient, ambient)
	gl.Uniform3f(r.uSunTint, tr, tg, tb)
	gl.Uniform3f(r.uCamPos, float32(cam.X), float32(cam.Y), float32(cam.Z))
	gl.Uniform3f(r.uSkyColor, skyR, skyG, skyB)
	gl.Uniform1f(r.uFogDensity, FogDensity(gameTime))
	// Emissive surfaces (lit windows, lamp heads) fade up with night.
	gl.Uniform1f(r.uEmissiveScale, 0.35+night*0.65)
}

// DrawWorld renders every static group: one call for the scenery, one per
// window batch.
func (r *Renderer) DrawWorld() {
	r.static.Draw()
	r.windowsLit.Draw()
	r.windowsUnlit.Draw()
}

// DrawDynamic rebuilds and draws the per-frame instances: walkers,
// wildlife, uncollected orbs, undiscovered landmark beacons.
func (r *Renderer) DrawDynamic(npcs *NPCSystem, wildlife *WildlifeSystem, collect *CollectibleSystem) {
	buf := r.dynBuf[:0]

	for i := range npcs.N {
		n := &npcs.N[i]
		if n.Hidden {
			continue
		}
		x, z := n.Pos()
		buf = appendBox(buf, x, 0.85, z, 0.5, 1.7, 0.35, n.Heading, n.Col, 0)
		buf = appendBox(buf, x, 1.85, z, 0.3, 0.3, 0.3, n.Heading, Palette.NPCBody, 0)
	}

	for i := range wildlife.A {
		a := &wildlife.A[i]
		if a.Hidden {
			continue
		}
		x, z := a.Pos()
		switch a.Kind {
		case AnimalBird:
			buf = appendBox(buf, x, a.Alt, z, 0.3, 0.18, 0.42, a.Heading, Palette.Bird, 0)
		case AnimalCat:
			buf = appendBox(buf, x, 0.18, z, 0.28, 0.3, 0.62, a.Heading, Palette.Cat, 0)
		}
	}

	for i := range collect.Orbs {
		o := &collect.Orbs[i]
		if o.Collected {
			continue
		}
		bob := math.Sin(o.Pulse) * 0.18
		pulse := float32(0.6 + 0.4*math.Sin(o.Pulse*1.7))
		buf = appendBox(buf, o.X, 1.1+bob, o.Z, 0.45, 0.45, 0.45, o.Pulse, Palette.Orb, pulse)
	}

	for i := range collect.Landmarks {
		l := &collect.Landmarks[i]
		if l.Discovered {
			continue
		}
		buf = appendBox(buf, l.X, 9, l.Z, 0.5, 18, 0.5, 0, Palette.Landmark, 0.7)
	}

	r.dynBuf = buf
	r.dynamic.Upload(buf)
	r.dynamic.Draw()
}

// DrawParticles renders the particle system as additive point sprites.
func (r *Renderer) DrawParticles(ps *ParticleSystem, px, pz float64) {
	r.particleBuf = ps.RenderData(r.particleBuf, px, pz)
	count := len(r.particleBuf) / 8
	if count == 0 {
		return
	}

	gl.UseProgram(r.pointProg)
	gl.UniformMatrix4fv(r.ptUViewProj, 1, false, &r.viewProj[0])
	gl.Uniform1f(r.ptUViewportH, float32(r.fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	if count > r.pointCap {
		r.pointCap = count * 2
		gl.BufferData(gl.ARRAY_BUFFER, r.pointCap*8*4, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.particleBuf)*4, gl.Ptr(r.particleBuf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// DrawHUDRect draws one flat quad in NDC. x,y is the lower-left corner.
func (r *Renderer) DrawHUDRect(x, y, w, h, cr, cg, cb, ca float32) {
	gl.UseProgram(r.hudProg)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.Uniform4f(r.hudURect, x, y, w, h)
	gl.Uniform4f(r.hudUColor, cr, cg, cb, ca)
	gl.BindVertexArray(r.hudVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}
