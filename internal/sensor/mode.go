// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sensor

// Fract is a frame interval expressed as Numerator/Denominator seconds.
type Fract struct {
	Numerator   uint32
	Denominator uint32
}

// Mode describes one fixed sensor configuration. The register tables and
// timing defaults are compiled-in constants shared by every instance of a
// chip model and must never be mutated.
type Mode struct {
	Width       uint32
	Height      uint32
	MaxFPS      Fract
	ExpDef      uint32
	HTSDef      uint32
	VTSDef      uint32
	VTSMax      uint32
	LinkFreqIdx int
	Regs        Table
}

func absDiff(a, b uint32) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// FindMode returns the mode whose geometry is nearest the request by
// Manhattan distance. Earlier entries win ties, so the selection is
// deterministic for any fixed mode list. Returns nil for an empty list.
func FindMode(modes []Mode, w, h uint32) *Mode {
	if len(modes) == 0 {
		return nil
	}
	cur := -1
	best := 0
	for i := range modes {
		dist := absDiff(w, modes[i].Width) + absDiff(h, modes[i].Height)
		if cur == -1 || dist < cur {
			cur = dist
			best = i
		}
	}
	return &modes[best]
}
