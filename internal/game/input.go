package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevKeys    map[glfw.Key]bool
	prevMouse   map[glfw.MouseButton]bool
	prevCursorX float64
	prevCursorY float64
	firstCursor bool
}

func NewInput() *Input {
	return &Input{
		prevKeys:    make(map[glfw.Key]bool),
		prevMouse:   make(map[glfw.MouseButton]bool),
		firstCursor: true,
	}
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// CursorDelta returns the raw cursor motion since the previous frame. The
// first poll is swallowed so the initial cursor warp from grabbing the
// pointer does not snap the view.
func (in *Input) CursorDelta(window *glfw.Window) (dx, dy float64) {
	cx, cy := window.GetCursorPos()
	if in.firstCursor {
		in.firstCursor = false
		in.prevCursorX, in.prevCursorY = cx, cy
		return 0, 0
	}
	dx = cx - in.prevCursorX
	dy = cy - in.prevCursorY
	in.prevCursorX, in.prevCursorY = cx, cy
	return dx, dy
}

// ReadMoveIntent samples WASD/arrows and mouse motion into one frame intent.
func (in *Input) ReadMoveIntent(window *glfw.Window) MoveIntent {
	var intent MoveIntent
	if window.GetKey(glfw.KeyW) == glfw.Press || window.GetKey(glfw.KeyUp) == glfw.Press {
		intent.Forward += 1
	}
	if window.GetKey(glfw.KeyS) == glfw.Press || window.GetKey(glfw.KeyDown) == glfw.Press {
		intent.Forward -= 1
	}
	if window.GetKey(glfw.KeyD) == glfw.Press || window.GetKey(glfw.KeyRight) == glfw.Press {
		intent.Strafe += 1
	}
	if window.GetKey(glfw.KeyA) == glfw.Press || window.GetKey(glfw.KeyLeft) == glfw.Press {
		intent.Strafe -= 1
	}
	intent.LookDX, intent.LookDY = in.CursorDelta(window)
	return intent
}
