// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gc02m1 drives the GalaxyCore GC02M1 2MP CMOS sensor. The part
// answers 16-bit register addresses; control writes below 0x100 land in
// the page selected by the 0xfe dummy register.
package gc02m1

import (
	"github.com/platinasystems/camio/internal/sensor"
)

const Name = "gc02m1"

const (
	chipID = 0x02e0

	regChipIDH = 0xf0
	regChipIDL = 0xf1

	regShutterH  = 0x03
	shutterHMask = 0x3f
	regShutterL  = 0x04

	regMirror    = 0x17
	mirrorNoFlip = 0x80
	mirrorHFlip  = 0x81
	mirrorVFlip  = 0x82
	mirrorHVFlip = 0x83

	regTestPattern     = 0x8c
	testPatternEnable  = 0x11
	testPatternDisable = 0x10

	regFrameLengthH = 0x41
	regFrameLengthL = 0x42

	regAgainH      = 0xb1
	againHMask     = 0x1f
	againShift     = 3
	regAgainL      = 0xb2
	regAgainStep   = 0xb6
	againStepShift = 18

	// Writing 1 then 0 here flushes grouped updates.
	regDummy = 0xfe

	regStreaming = 0x0100

	tableWaitMS = 0x0000
	tableEnd    = 0x0001

	gainMin = 0
	gainMax = 0x2861
	gainDef = 0x0400
	expMax  = 3184
	expDef  = 0x0c70

	// LinkFreq is the single supported MIPI link frequency.
	LinkFreq  = 480000000
	XCLKRate  = 24000000
	frameRate = 30
)

var modes = []sensor.Mode{
	{
		Width:  1600,
		Height: 1200,
		MaxFPS: sensor.Fract{Numerator: 1, Denominator: frameRate},
		ExpDef: expDef,
		VTSDef: 0x04f4,
		VTSMax: 0x3fff,
		Regs:   mode1600x1200Regs,
	},
	{
		Width:  1600,
		Height: 1200,
		MaxFPS: sensor.Fract{Numerator: 1, Denominator: frameRate},
		ExpDef: expDef,
		VTSDef: 0x063c,
		VTSMax: 0x3fff,
		Regs:   mode1600x1200Custom1Regs,
	},
}

// Chip is the codec for one GC02M1 instance.
type Chip struct{}

func New() *Chip { return new(Chip) }

func (*Chip) Name() string   { return Name }
func (*Chip) ChipID() uint32 { return chipID }

func (*Chip) Bounds() sensor.Bounds {
	return sensor.Bounds{
		GainMin: gainMin,
		GainMax: gainMax,
		GainDef: gainDef,
	}
}

func (*Chip) Modes() []sensor.Mode { return modes }

func (*Chip) Global() sensor.Table { return commonRegs }

func (*Chip) ReadID(c sensor.Conn) (uint32, error) {
	h, err := c.Rd(regChipIDH)
	if err != nil {
		return 0, err
	}
	l, err := c.Rd(regChipIDL)
	if err != nil {
		return 0, err
	}
	return uint32(h)<<8 | uint32(l), nil
}

// SetExposure writes the shutter in lines, 14 bits split over two
// registers with the high byte masked to 6 bits.
func (*Chip) SetExposure(c sensor.Conn, m *sensor.Mode, lines uint32) error {
	if err := c.Wr(regShutterH, uint8((lines>>8)&shutterHMask)); err != nil {
		return err
	}
	return c.Wr(regShutterL, uint8(lines&0xff))
}

// SetGain splits the 21-bit gain request into the coarse step register
// and the 13-bit fine pair, guarded by a dummy flush.
func (*Chip) SetGain(c sensor.Conn, m *sensor.Mode, gain uint32) error {
	if err := c.Wr(regDummy, 1); err != nil {
		return err
	}
	if err := c.Wr(regDummy, 0); err != nil {
		return err
	}
	if err := c.Wr(regAgainStep, uint8(gain>>againStepShift)); err != nil {
		return err
	}
	if err := c.Wr(regAgainH, uint8((gain>>(8+againShift))&againHMask)); err != nil {
		return err
	}
	return c.Wr(regAgainL, uint8((gain>>againShift)&0xff))
}

// SetVBlank rewrites the frame length for the requested blanking.
func (*Chip) SetVBlank(c sensor.Conn, m *sensor.Mode, lines uint32) error {
	fl := m.Height + lines
	if err := c.Wr(regDummy, 0); err != nil {
		return err
	}
	if err := c.Wr(regFrameLengthH, uint8((fl>>8)&0x3f)); err != nil {
		return err
	}
	return c.Wr(regFrameLengthL, uint8(fl&0xff))
}

func (*Chip) SetTestPattern(c sensor.Conn, on bool) error {
	if err := c.Wr(regDummy, 1); err != nil {
		return err
	}
	val := uint8(testPatternDisable)
	if on {
		val = testPatternEnable
	}
	if err := c.Wr(regTestPattern, val); err != nil {
		return err
	}
	return c.Wr(regDummy, 0)
}

func (*Chip) SetFlip(c sensor.Conn, hflip, vflip bool) error {
	if err := c.Wr(regDummy, 0); err != nil {
		return err
	}
	val := uint8(mirrorNoFlip)
	switch {
	case hflip && vflip:
		val = mirrorHVFlip
	case hflip:
		val = mirrorHFlip
	case vflip:
		val = mirrorVFlip
	}
	return c.Wr(regMirror, val)
}

func (*Chip) StreamOn(c sensor.Conn, m *sensor.Mode) error {
	return c.Wr(regStreaming, 1)
}

func (*Chip) StreamOff(c sensor.Conn) error {
	return c.Wr(regStreaming, 0)
}
