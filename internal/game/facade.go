package game

import "math"

// WindowSlot is one window transform. Slots are folded into a batch at
// generation time and never touched individually again.
type WindowSlot struct {
	X, Y, Z float64
	Yaw     float64 // orientation facing outward from the wall
}

// WindowBatches partitions every window slot in the city into exactly two
// groups. Each group becomes a single instanced draw call; that two-call
// ceiling is the point of batching here.
type WindowBatches struct {
	Lit   []WindowSlot
	Unlit []WindowSlot
}

// Total returns the number of slots across both groups.
func (wb *WindowBatches) Total() int {
	return len(wb.Lit) + len(wb.Unlit)
}

// BatchWindows computes the window grid for every building and accumulates
// the slots into the lit/unlit groups. Each building rolls lit/unlit once
// for all its windows; individual slots are skipped with a fixed chance.
func BatchWindows(seed uint64, buildings []Building) WindowBatches {
	wb := WindowBatches{
		Lit:   make([]WindowSlot, 0, 4096),
		Unlit: make([]WindowSlot, 0, 4096),
	}
	for i := range buildings {
		r := NewRand(hash2D(seed^0xFACADE5, i, 0))
		lit := r.Intn(100) < WindowLitChance
		slots := buildingWindows(&buildings[i], r)
		if lit {
			wb.Lit = append(wb.Lit, slots...)
		} else {
			wb.Unlit = append(wb.Unlit, slots...)
		}
	}
	return wb
}

// buildingWindows emits the slot transforms for all four vertical faces.
// Front/back faces share the width axis, left/right the depth axis.
func buildingWindows(b *Building, r *Rand) []WindowSlot {
	floors := int(b.H / FloorSpacing)
	colsW := int(b.W / ColumnSpacing)
	colsD := int(b.D / ColumnSpacing)
	if floors <= 0 || (colsW <= 0 && colsD <= 0) {
		return nil
	}

	slots := make([]WindowSlot, 0, 2*floors*(colsW+colsD))
	hw := b.W / 2
	hd := b.D / 2

	// face: outward yaw, wall plane offset, slot axis.
	emitFace := func(cols int, yaw float64, along func(offset float64) (x, z float64)) {
		for f := 0; f < floors; f++ {
			y := (float64(f) + 0.5) * FloorSpacing
			for c := 0; c < cols; c++ {
				if r.Intn(100) < WindowSkipChance {
					continue
				}
				off := (float64(c)+0.5)*ColumnSpacing - float64(cols)*ColumnSpacing/2
				x, z := along(off)
				slots = append(slots, WindowSlot{X: x, Y: y, Z: z, Yaw: yaw})
			}
		}
	}

	// +Z face (yaw 0 looks down +Z), then -Z, +X, -X.
	emitFace(colsW, 0, func(off float64) (float64, float64) {
		return b.X + off, b.Z + hd + WindowInset
	})
	emitFace(colsW, math.Pi, func(off float64) (float64, float64) {
		return b.X + off, b.Z - hd - WindowInset
	})
	emitFace(colsD, math.Pi/2, func(off float64) (float64, float64) {
		return b.X + hw + WindowInset, b.Z + off
	})
	emitFace(colsD, -math.Pi/2, func(off float64) (float64, float64) {
		return b.X - hw - WindowInset, b.Z + off
	})

	return slots
}
