// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package s5k5e9 drives the Samsung S5K5E9 5MP CMOS sensor. All registers
// are 16-bit addressed; exposure and gain updates are bracketed by the
// grouped parameter hold register so both bytes land in one frame.
package s5k5e9

import (
	"github.com/platinasystems/camio/internal/sensor"
)

const Name = "s5k5e9"

const (
	chipID    = 0x559b
	regChipID = 0x0000

	regModeSelect = 0x0100
	modeStandby   = 0x00
	modeStreaming = 0x01

	regFlip    = 0x0101
	flipNone   = 0x00
	flipH      = 0x01
	flipV      = 0x10
	flipHV     = 0x11
	regHold    = 0x0104
	regExpH    = 0x0202
	regExpL    = 0x0203
	regAgainH  = 0x0204
	regAgainL  = 0x0205
	regFrameLH = 0x0340
	regFrameLL = 0x0341

	regTestPattern     = 0x0601
	testPatternEnable  = 0x02
	testPatternDisable = 0x00

	// A write here latches a pending test pattern change.
	regUpdateDummy = 0x3200

	tableWaitMS = 0x0000
	tableEnd    = 0x0001

	gainMin = 0x10
	gainMax = 0xf8
	gainDef = 0xf8
	expMax  = 3184
	expDef  = 3184

	LinkFreq  = 480000000
	XCLKRate  = 19200000
	frameRate = 30
)

var modes = []sensor.Mode{
	{
		Width:  2592,
		Height: 1944,
		MaxFPS: sensor.Fract{Numerator: 1, Denominator: frameRate},
		ExpDef: expDef,
		VTSDef: 0x07ee,
		VTSMax: 0xffff,
		Regs:   mode2592x1944Regs,
	},
	{
		Width:  1920,
		Height: 1080,
		MaxFPS: sensor.Fract{Numerator: 1, Denominator: frameRate},
		ExpDef: expDef,
		VTSDef: 0x07ee,
		VTSMax: 0xffff,
		Regs:   mode1920x1080Regs,
	},
}

// Chip is the codec for one S5K5E9 instance.
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
	h, err := c.Rd(regChipID)
	if err != nil {
		return 0, err
	}
	l, err := c.Rd(regChipID + 1)
	if err != nil {
		return 0, err
	}
	return uint32(h)<<8 | uint32(l), nil
}

// hold brackets fn with the grouped parameter hold register.
func hold(c sensor.Conn, fn func() error) error {
	if err := c.Wr(regHold, 1); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	return c.Wr(regHold, 0)
}

func (*Chip) SetExposure(c sensor.Conn, m *sensor.Mode, lines uint32) error {
	return hold(c, func() error {
		if err := c.Wr(regExpH, uint8(lines>>8)); err != nil {
			return err
		}
		return c.Wr(regExpL, uint8(lines&0xff))
	})
}

// SetGain writes the analog gain code doubled, the register's step being
// half the control's.
func (*Chip) SetGain(c sensor.Conn, m *sensor.Mode, gain uint32) error {
	code := gain * 2
	return hold(c, func() error {
		if err := c.Wr(regAgainH, uint8((code>>8)&0xff)); err != nil {
			return err
		}
		return c.Wr(regAgainL, uint8(code&0xff))
	})
}

// SetVBlank rewrites the frame length for the requested blanking.
func (*Chip) SetVBlank(c sensor.Conn, m *sensor.Mode, lines uint32) error {
	fl := m.Height + lines
	if err := c.Wr(regFrameLH, uint8(fl>>8)); err != nil {
		return err
	}
	return c.Wr(regFrameLL, uint8(fl&0xff))
}

func (*Chip) SetTestPattern(c sensor.Conn, on bool) error {
	val := uint8(testPatternDisable)
	if on {
		val = testPatternEnable
	}
	if err := c.Wr(regTestPattern, val); err != nil {
		return err
	}
	return c.Wr(regUpdateDummy, 0)
}

func (*Chip) SetFlip(c sensor.Conn, hflip, vflip bool) error {
	val := uint8(flipNone)
	switch {
	case hflip && vflip:
		val = flipHV
	case hflip:
		val = flipH
	case vflip:
		val = flipV
	}
	return c.Wr(regFlip, val)
}

func (*Chip) StreamOn(c sensor.Conn, m *sensor.Mode) error {
	return c.Wr(regModeSelect, modeStreaming)
}

func (*Chip) StreamOff(c sensor.Conn) error {
	return c.Wr(regModeSelect, modeStandby)
}
