package game

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// PhotoMode frames the scene: HUD hidden, letterbox bars slide in, shutter
// on click. The simulation keeps running underneath so light and walkers
// stay alive in the frame.
type PhotoMode struct {
	BarAnim float64 // 0..1 letterbox slide
}

func (pm *PhotoMode) Enter() {
	pm.BarAnim = 0
}

func (pm *PhotoMode) Update(dt float64) {
	pm.BarAnim = approach(pm.BarAnim, 1, dt*3)
}

// Draw renders the letterbox bars. Bar height eases in with BarAnim.
func (pm *PhotoMode) Draw(r *Renderer) {
	h := float32(smoothstep(pm.BarAnim)) * 0.16
	if h <= 0 {
		return
	}
	r.DrawHUDRect(-1, 1-h, 2, h, 0, 0, 0, 0.9)
	r.DrawHUDRect(-1, -1, 2, h, 0, 0, 0, 0.9)
}

// SaveScreenshot reads the front framebuffer and writes it as a PNG in the
// working directory. Returns the file name.
func SaveScreenshot(fbW, fbH int) (string, error) {
	pix := make([]uint8, fbW*fbH*4)
	gl.ReadPixels(0, 0, int32(fbW), int32(fbH), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))

	// GL rows run bottom-up; flip while copying into the image.
	img := image.NewRGBA(image.Rect(0, 0, fbW, fbH))
	rowLen := fbW * 4
	for y := 0; y < fbH; y++ {
		src := pix[(fbH-1-y)*rowLen : (fbH-y)*rowLen]
		copy(img.Pix[y*img.Stride:], src)
	}

	name := fmt.Sprintf("stroll-%s.png", uuid.NewString())
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("create screenshot: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return "", fmt.Errorf("encode screenshot: %w", err)
	}
	log.WithField("file", name).Info("screenshot saved")
	return name, nil
}
