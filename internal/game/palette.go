package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Vec3 converts to normalized float components for shader uniforms
// and instance buffers.
func (c RGB) Vec3() (float32, float32, float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

// BuildingPalette is the fixed set of facade colours; the generator picks
// an unweighted-random index per building.
var BuildingPalette = []RGB{
	{R: 153, G: 144, B: 133},
	{R: 104, G: 108, B: 112},
	{R: 195, G: 174, B: 142},
	{R: 171, G: 131, B: 115},
	{R: 126, G: 140, B: 147},
	{R: 189, G: 183, B: 160},
	{R: 96, G: 89, B: 102},
	{R: 142, G: 120, B: 100},
}

var Palette = struct {
	Ground    RGB
	Street    RGB
	Sidewalk  RGB
	ParkGrass RGB
	TreeTrunk RGB
	TreeLeaf  RGB
	Bench     RGB
	LampPost  RGB
	LampGlow  RGB
	WindowLit RGB
	WindowOff RGB
	Orb       RGB
	Landmark  RGB
	NPCBody   RGB
	Bird      RGB
	Cat       RGB
	SkyDay    RGB
	SkyDusk   RGB
	SkyNight  RGB
}{
	Ground:    RGB{R: 140, G: 136, B: 91},
	Street:    RGB{R: 60, G: 66, B: 79},
	Sidewalk:  RGB{R: 214, G: 190, B: 153},
	ParkGrass: RGB{R: 110, G: 142, B: 78},
	TreeTrunk: RGB{R: 92, G: 66, B: 44},
	TreeLeaf:  RGB{R: 90, G: 130, B: 65},
	Bench:     RGB{R: 134, G: 96, B: 60},
	LampPost:  RGB{R: 52, G: 56, B: 62},
	LampGlow:  RGB{R: 255, G: 210, B: 120},
	WindowLit: RGB{R: 255, G: 214, B: 130},
	WindowOff: RGB{R: 38, G: 44, B: 56},
	Orb:       RGB{R: 120, G: 220, B: 255},
	Landmark:  RGB{R: 235, G: 200, B: 90},
	NPCBody:   RGB{R: 200, G: 120, B: 90},
	Bird:      RGB{R: 220, G: 220, B: 228},
	Cat:       RGB{R: 90, G: 84, B: 80},
	SkyDay:    RGB{R: 128, G: 184, B: 226},
	SkyDusk:   RGB{R: 232, G: 140, B: 92},
	SkyNight:  RGB{R: 16, G: 20, B: 38},
}

// NPCClothPalette colours ambient walkers; picked per NPC at spawn.
var NPCClothPalette = []RGB{
	{R: 230, G: 40, B: 60}, {R: 40, G: 120, B: 235}, {R: 255, G: 200, B: 60},
	{R: 60, G: 200, B: 90}, {R: 180, G: 60, B: 200}, {R: 255, G: 110, B: 50},
}
