package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// applyMat4 multiplies the column-major matrix by (x, y, z, 1).
func applyMat4(m Mat4, x, y, z float64) (cx, cy, cz, cw float64) {
	v := [4]float32{float32(x), float32(y), float32(z), 1}
	var out [4]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row] += m[col*4+row] * v[col]
		}
	}
	return float64(out[0]), float64(out[1]), float64(out[2]), float64(out[3])
}

func TestViewProjCentersForwardPoint(t *testing.T) {
	c := Camera{Y: EyeHeight} // yaw 0 faces +Z
	vp := c.ViewProj(1280, 720)

	cx, cy, _, cw := applyMat4(vp, 0, EyeHeight, 10)
	assert.Greater(t, cw, 0.0, "point ahead must be in front of the camera")
	assert.InDelta(t, 0.0, cx/cw, 1e-5)
	assert.InDelta(t, 0.0, cy/cw, 1e-5)
}

func TestViewProjBehindCamera(t *testing.T) {
	c := Camera{Y: EyeHeight}
	vp := c.ViewProj(1280, 720)

	_, _, _, cw := applyMat4(vp, 0, EyeHeight, -10)
	assert.Less(t, cw, 0.0, "point behind must land behind the clip plane")
}

func TestViewProjYawTracksForward(t *testing.T) {
	c := Camera{Y: EyeHeight, Yaw: math.Pi / 2} // faces +X
	vp := c.ViewProj(1280, 720)

	cx, _, _, cw := applyMat4(vp, 10, EyeHeight, 0)
	assert.Greater(t, cw, 0.0)
	assert.InDelta(t, 0.0, cx/cw, 1e-5)

	// A point to the camera's right (+Z here) lands on positive NDC x.
	cx, _, _, cw = applyMat4(vp, 10, EyeHeight, 5)
	assert.Greater(t, cw, 0.0)
	assert.Greater(t, cx/cw, 0.0)
}

func TestCameraFromPlayer(t *testing.T) {
	p := NewPlayer()
	p.X, p.Z = 3, 4
	p.Pitch = 0.2

	var c Camera
	c.FromPlayer(p, 0)
	assert.Equal(t, 3.0, c.X)
	assert.Equal(t, 4.0, c.Z)
	assert.Equal(t, p.EyeY(), c.Y)
	assert.Equal(t, 0.2, c.Pitch)
}
