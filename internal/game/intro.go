package game

import "math"

// IntroMode is the opening flyover: a slow descending orbit that hands
// control to the player when it lands at street level. Skippable.
type IntroMode struct {
	T float64
}

// Update advances the flyover; returns true once the descent is complete.
func (im *IntroMode) Update(dt float64) bool {
	im.T += dt
	return im.T >= IntroDuration
}

// CameraPose computes the orbit camera for the current time: radius and
// height both ease down toward the player's spawn at the park center.
func (im *IntroMode) CameraPose() Camera {
	k := smoothstep(clampF(im.T/IntroDuration, 0, 1))
	radius := lerpF(IntroRadius, 4, k)
	height := lerpF(IntroHeight, EyeHeight, k)
	angle := im.T * 0.3

	x := math.Sin(angle) * radius
	z := math.Cos(angle) * radius

	// Look back at the park center, pitching down from altitude.
	yaw := math.Atan2(-x, -z)
	pitch := -math.Atan2(height-EyeHeight, radius)

	return Camera{X: x, Y: height, Z: z, Yaw: yaw, Pitch: pitch}
}
