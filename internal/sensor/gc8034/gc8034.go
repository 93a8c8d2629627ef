// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gc8034 drives the GalaxyCore GC8034 8MP CMOS sensor. Registers
// are 8-bit addressed behind a bank select at 0xfe; the part ships in
// 2-lane and 4-lane board wirings with distinct register downloads.
package gc8034

import (
	"github.com/platinasystems/camio/internal/sensor"
)

const Name = "gc8034"

const (
	chipID = 0x8044

	regChipIDH = 0xf0
	regChipIDL = 0xf1

	regSetPage = 0xfe
	pageZero   = 0x00

	regCtrlMode        = 0x3f
	modeSwStandby      = 0x00
	modeStreaming      = 0xd0
	modeStreaming2Lane = 0x91

	regExposureH = 0x03
	regExposureL = 0x04
	regVTSH      = 0x07
	regVTSL      = 0x08
	regMirror    = 0x17
	regAgain     = 0xb6
	regDgainInt  = 0xb1
	regDgainFrac = 0xb2

	regNull = 0x00ff

	mirrorNormal = 0xc0

	expMin  = 4
	vtsMax  = 0x1fff
	gainMin = 64
	gainMax = 1092
	gainDef = 64

	// XVCLK rate and the number of its cycles the sensor needs
	// between reset release and the first register access.
	XVCLKRate    = 24000000
	SettleCycles = 8192
)

// Analog gain is quantized to one of these fixed-point (base 64) levels.
// The search in SetGain starts at index meagIndex-1, so the top two rows
// are never selected at run time; they are retained to keep the rows
// aligned with the sensor's 0xb6 index register values.
const meagIndex = 7

var gainLevel = [9]uint32{
	0x0040, // 1.000
	0x0058, // 1.375
	0x007d, // 1.950
	0x00ad, // 2.700
	0x00f3, // 3.800
	0x0159, // 5.400
	0x01ea, // 7.660
	0x02ac, // 10.688
	0x03c2, // 15.030
}

// Each gain level carries a fixed gamma/blacklevel/CSC "look", written
// register by register at these addresses.
var agcAddrs = [14]uint16{
	0xfe, 0x20, 0x33, 0xfe, 0xdf, 0xe7, 0xe8, 0xe9,
	0xea, 0xeb, 0xec, 0xed, 0xee, 0xfe,
}

var agcRegister = [9][14]uint8{
	// fullsize
	{0x00, 0x55, 0x83, 0x01, 0x06, 0x18, 0x20,
		0x16, 0x17, 0x50, 0x6c, 0x9b, 0xd8, 0x00},
	{0x00, 0x55, 0x83, 0x01, 0x06, 0x18, 0x20,
		0x16, 0x17, 0x50, 0x6c, 0x9b, 0xd8, 0x00},
	{0x00, 0x4e, 0x84, 0x01, 0x0c, 0x2e, 0x2d,
		0x15, 0x19, 0x47, 0x70, 0x9f, 0xd8, 0x00},
	{0x00, 0x51, 0x80, 0x01, 0x07, 0x28, 0x32,
		0x22, 0x20, 0x49, 0x70, 0x91, 0xd9, 0x00},
	{0x00, 0x4d, 0x83, 0x01, 0x0f, 0x3b, 0x3b,
		0x1c, 0x1f, 0x47, 0x6f, 0x9b, 0xd3, 0x00},
	{0x00, 0x50, 0x83, 0x01, 0x08, 0x35, 0x46,
		0x1e, 0x22, 0x4c, 0x70, 0x9a, 0xd2, 0x00},
	{0x00, 0x52, 0x80, 0x01, 0x0c, 0x35, 0x3a,
		0x2b, 0x2d, 0x4c, 0x67, 0x8d, 0xc0, 0x00},
	{0x00, 0x52, 0x80, 0x01, 0x0c, 0x35, 0x3a,
		0x2b, 0x2d, 0x4c, 0x67, 0x8d, 0xc0, 0x00},
	{0x00, 0x52, 0x80, 0x01, 0x0c, 0x35, 0x3a,
		0x2b, 0x2d, 0x4c, 0x67, 0x8d, 0xc0, 0x00},
}

var modes2Lane = []sensor.Mode{
	{
		Width:       3264,
		Height:      2448,
		MaxFPS:      sensor.Fract{Numerator: 10000, Denominator: 300000},
		ExpDef:      0x0900,
		HTSDef:      0x0858 * 2,
		VTSDef:      0x09c0,
		VTSMax:      vtsMax,
		LinkFreqIdx: 1,
		Regs:        mode3264x2448Regs2Lane,
	},
}

var modes4Lane = []sensor.Mode{
	{
		Width:       3264,
		Height:      2448,
		MaxFPS:      sensor.Fract{Numerator: 10000, Denominator: 300000},
		ExpDef:      0x08c6,
		HTSDef:      0x10b0,
		VTSDef:      0x09c0,
		VTSMax:      vtsMax,
		LinkFreqIdx: 0,
		Regs:        mode3264x2448Regs4Lane,
	},
}

// LinkFreqs are the per-lane-configuration MIPI link frequencies, indexed
// by Mode.LinkFreqIdx.
var LinkFreqs = []uint64{336000000, 634000000}

// Chip is the codec for one GC8034 instance. Lanes is fixed by board
// wiring, 2 or 4.
type Chip struct {
	Lanes int

	// dgainRatio compensates the next gain write for the fraction
	// of exposure lost to even-value rounding.
	dgainRatio uint32
}

func New(lanes int) (*Chip, error) {
	if lanes != 2 && lanes != 4 {
		return nil, sensor.ErrUnsupportedConfig
	}
	return &Chip{Lanes: lanes}, nil
}

func (*Chip) Name() string   { return Name }
func (*Chip) ChipID() uint32 { return chipID }

func (*Chip) Bounds() sensor.Bounds {
	return sensor.Bounds{
		ExpMin:  expMin,
		GainMin: gainMin,
		GainMax: gainMax,
		GainDef: gainDef,
	}
}

func (g *Chip) Modes() []sensor.Mode {
	if g.Lanes == 2 {
		return modes2Lane
	}
	return modes4Lane
}

func (g *Chip) Global() sensor.Table {
	if g.Lanes == 2 {
		return globalRegs2Lane
	}
	return globalRegs4Lane
}

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

// SetExposure writes the shutter in lines. The hardware wants an even
// value, so the requested value is rounded down and the lost fraction is
// folded into dgainRatio for the next SetGain. Callers clamp lines to at
// least expMin first.
func (g *Chip) SetExposure(c sensor.Conn, m *sensor.Mode, lines uint32) error {
	cal := (lines >> 1) << 1
	g.dgainRatio = 256 * lines / cal
	if err := c.Wr(regSetPage, pageZero); err != nil {
		return err
	}
	if err := c.Wr(regExposureH, uint8((cal>>8)&0x7f)); err != nil {
		return err
	}
	return c.Wr(regExposureL, uint8(cal&0xff))
}

// SetGain quantizes the requested analog gain (base 64 fixed point) to
// the highest table level at or below it, scanning down from index
// meagIndex-1. The residue times the pending exposure compensation
// becomes the digital gain pair. A request below the lowest level writes
// nothing.
func (g *Chip) SetGain(c sensor.Conn, m *sensor.Mode, gain uint32) error {
	for i := meagIndex - 1; i >= 0; i-- {
		if gain < gainLevel[i] {
			continue
		}
		if err := c.Wr(regSetPage, pageZero); err != nil {
			return err
		}
		if err := c.Wr(regAgain, uint8(i)); err != nil {
			return err
		}
		dgain := 256 * gain / gainLevel[i]
		dgain = dgain * g.dgainRatio / 256
		if err := c.Wr(regDgainInt, uint8(dgain>>8)); err != nil {
			return err
		}
		if err := c.Wr(regDgainFrac, uint8(dgain&0xff)); err != nil {
			return err
		}
		for j, addr := range agcAddrs {
			if err := c.Wr(addr, agcRegister[i][j]); err != nil {
				return err
			}
		}
		break
	}
	return nil
}

// SetVBlank derives the frame length from the requested blanking and the
// full-pixel-array geometry, not the mode height.
func (g *Chip) SetVBlank(c sensor.Conn, m *sensor.Mode, lines uint32) error {
	vts := lines + m.Height - 2448 - 36
	if err := c.Wr(regSetPage, pageZero); err != nil {
		return err
	}
	if err := c.Wr(regVTSH, uint8((vts>>8)&0xff)); err != nil {
		return err
	}
	return c.Wr(regVTSL, uint8(vts&0xff))
}

// SetTestPattern downloads the vendor overlay sequence. The sequence is
// written for either control value; the final 0x8c write selects the
// pattern.
func (g *Chip) SetTestPattern(c sensor.Conn, on bool) error {
	for _, rv := range testPatternRegs {
		val := rv.Val
		if rv.Addr == 0x8c && !on {
			val = 0x00
		}
		if err := c.Wr(rv.Addr, val); err != nil {
			return err
		}
	}
	return nil
}

// SetFlip drives the mirror register: bit 0 mirrors horizontally, bit 1
// vertically, on the 0xc0 base the register downloads configure.
func (g *Chip) SetFlip(c sensor.Conn, hflip, vflip bool) error {
	val := uint8(mirrorNormal)
	if hflip {
		val |= 0x01
	}
	if vflip {
		val |= 0x02
	}
	if err := c.Wr(regSetPage, pageZero); err != nil {
		return err
	}
	return c.Wr(regMirror, val)
}

func (g *Chip) StreamOn(c sensor.Conn, m *sensor.Mode) error {
	if err := c.Wr(regSetPage, pageZero); err != nil {
		return err
	}
	if g.Lanes == 2 {
		return c.Wr(regCtrlMode, modeStreaming2Lane)
	}
	return c.Wr(regCtrlMode, modeStreaming)
}

func (g *Chip) StreamOff(c sensor.Conn) error {
	if err := c.Wr(regSetPage, pageZero); err != nil {
		return err
	}
	return c.Wr(regCtrlMode, modeSwStandby)
}
