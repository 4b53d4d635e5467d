package game

import "math"

// Camera is the derived render pose. In walk mode it is computed from the
// player every frame; the intro and meditation modes drive it directly.
type Camera struct {
	X, Y, Z float64
	Yaw     float64
	Pitch   float64
}

// FromPlayer snaps the camera to the player's eye, plus any extra height
// offset (meditation sway).
func (c *Camera) FromPlayer(p *Player, extraY float64) {
	c.X = p.X
	c.Y = p.EyeY() + extraY
	c.Z = p.Z
	c.Yaw = p.Yaw
	c.Pitch = p.Pitch
}

// Mat4 is a column-major 4x4 matrix, ready for glUniformMatrix4fv.
type Mat4 [16]float32

func mat4Identity() Mat4 {
	return Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
}

func mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			m[col*4+row] = s
		}
	}
	return m
}

func mat4Perspective(fovyRad, aspect, near, far float64) Mat4 {
	f := float32(1.0 / math.Tan(fovyRad/2))
	nf := float32(1.0 / (near - far))
	var m Mat4
	m[0] = f / float32(aspect)
	m[5] = f
	m[10] = float32(near+far) * nf
	m[11] = -1
	m[14] = float32(2*near*far) * nf
	return m
}

func mat4Translate(x, y, z float64) Mat4 {
	m := mat4Identity()
	m[12] = float32(x)
	m[13] = float32(y)
	m[14] = float32(z)
	return m
}

func mat4RotateX(a float64) Mat4 {
	c := float32(math.Cos(a))
	s := float32(math.Sin(a))
	m := mat4Identity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
	return m
}

func mat4RotateY(a float64) Mat4 {
	c := float32(math.Cos(a))
	s := float32(math.Sin(a))
	m := mat4Identity()
	m[0] = c
	m[2] = -s
	m[8] = s
	m[10] = c
	return m
}

// ViewProj builds the combined view-projection matrix for this pose.
// Yaw 0 looks down +Z, matching Player.Forward.
func (c *Camera) ViewProj(fbW, fbH int) Mat4 {
	aspect := 1.0
	if fbH > 0 {
		aspect = float64(fbW) / float64(fbH)
	}
	proj := mat4Perspective(70*math.Pi/180, aspect, 0.1, 600)
	// View = inverse of camera transform: translate back, unwind yaw onto
	// GL's -Z view axis, then pitch.
	view := mat4Mul(mat4RotateX(-c.Pitch), mat4Mul(mat4RotateY(math.Pi-c.Yaw), mat4Translate(-c.X, -c.Y, -c.Z)))
	return mat4Mul(proj, view)
}
