package game

// RectXZ is an axis-aligned rectangle on the ground plane.
type RectXZ struct {
	X0, Z0 float64
	X1, Z1 float64
}

// ContainsPadded reports whether (x,z) lies inside the rectangle expanded
// by pad on all sides.
func (r RectXZ) ContainsPadded(x, z, pad float64) bool {
	return x >= r.X0-pad && x <= r.X1+pad && z >= r.Z0-pad && z <= r.Z1+pad
}

// CollisionField is a flat list of building footprints. Rectangles are
// registered once during generation and never resized or removed for the
// session. Queries are a linear scan: a few hundred rectangles checked a
// few times per frame does not earn a spatial index.
type CollisionField struct {
	rects []RectXZ
}

func NewCollisionField() *CollisionField {
	return &CollisionField{rects: make([]RectXZ, 0, 256)}
}

// Add registers a footprint and returns its index.
func (f *CollisionField) Add(r RectXZ) int {
	f.rects = append(f.rects, r)
	return len(f.rects) - 1
}

// IsBlocked reports whether the point lies within any stored rectangle
// expanded by pad on all sides.
func (f *CollisionField) IsBlocked(x, z, pad float64) bool {
	for i := range f.rects {
		if f.rects[i].ContainsPadded(x, z, pad) {
			return true
		}
	}
	return false
}

// Count returns the number of registered footprints.
func (f *CollisionField) Count() int {
	return len(f.rects)
}
