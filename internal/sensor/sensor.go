// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sensor

import (
	"errors"
	"fmt"
	"sync"

	"github.com/platinasystems/log"
)

var ErrUnsupportedConfig = errors.New("unsupported configuration")

// IDMismatchError reports a sensor that answered the identity probe with
// the wrong chip id.
type IDMismatchError struct {
	Want uint32
	Got  uint32
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("unexpected chip id %#04x (want %#04x)", e.Got, e.Want)
}

// Bounds are the chip's control limits.
type Bounds struct {
	ExpMin  uint32
	GainMin uint32
	GainMax uint32
	GainDef uint32
}

// Chip is one sensor model: its compiled-in tables plus the encoding of
// abstract control values into registers. Codec methods are called with
// the device lock held and power applied.
type Chip interface {
	Name() string
	ChipID() uint32
	ReadID(c Conn) (uint32, error)
	Modes() []Mode
	Global() Table
	Bounds() Bounds

	SetExposure(c Conn, m *Mode, lines uint32) error
	SetGain(c Conn, m *Mode, gain uint32) error
	SetVBlank(c Conn, m *Mode, lines uint32) error
	SetTestPattern(c Conn, on bool) error
	SetFlip(c Conn, hflip, vflip bool) error
	StreamOn(c Conn, m *Mode) error
	StreamOff(c Conn) error
}

// Sensor is the per-device streaming state machine. All exported methods
// serialize on one lock held across their full run, bus traffic included,
// so table downloads, control updates and power transitions never
// interleave on a device.
type Sensor struct {
	mutex sync.Mutex
	conn  Conn
	chip  Chip
	seq   *Sequencer

	modes     []Mode
	cur       *Mode
	powered   bool
	streaming bool

	exposure    uint32
	gain        uint32
	vblank      uint32
	testPattern bool
	hflip       bool
	vflip       bool
}

func New(conn Conn, chip Chip, seq *Sequencer) *Sensor {
	s := &Sensor{
		conn:  conn,
		chip:  chip,
		seq:   seq,
		modes: chip.Modes(),
	}
	s.cur = &s.modes[0]
	s.exposure = s.cur.ExpDef
	s.gain = chip.Bounds().GainDef
	s.vblank = s.cur.VTSDef - s.cur.Height
	return s
}

func (s *Sensor) Name() string { return s.chip.Name() }

// Attach verifies the sensor is present and is the expected part. The
// probe powers the device just long enough to read the id registers.
func (s *Sensor) Attach() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := s.seq.On(); err != nil {
		s.seq.Off()
		return err
	}
	defer s.seq.Off()

	id, err := s.chip.ReadID(s.conn)
	if err != nil {
		return err
	}
	if id != s.chip.ChipID() {
		return &IDMismatchError{Want: s.chip.ChipID(), Got: id}
	}
	log.Print("notice: ", s.chip.Name(), " detected, id ",
		fmt.Sprintf("%#04x", id))
	return nil
}

// Stream moves the sensor between standby and streaming. Both directions
// are idempotent. A failed start releases power and leaves the sensor in
// standby; stop always succeeds.
func (s *Sensor) Stream(on bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if on == s.streaming {
		return nil
	}
	if !on {
		if err := s.chip.StreamOff(s.conn); err != nil {
			log.Print("warning: ", s.chip.Name(),
				": stream off: ", err)
		}
		s.seq.Off()
		s.powered = false
		s.streaming = false
		return nil
	}

	if !s.powered {
		if err := s.seq.On(); err != nil {
			s.seq.Off()
			return err
		}
		s.powered = true
		if err := WriteTable(s.conn, s.chip.Global()); err != nil {
			s.abortStart(err)
			return err
		}
	}
	if err := WriteTable(s.conn, s.cur.Regs); err != nil {
		s.abortStart(err)
		return err
	}
	if err := s.applyCtrls(); err != nil {
		s.abortStart(err)
		return err
	}
	if err := s.chip.StreamOn(s.conn, s.cur); err != nil {
		s.abortStart(err)
		return err
	}
	s.streaming = true
	return nil
}

func (s *Sensor) abortStart(err error) {
	log.Print("error: ", s.chip.Name(), ": stream on: ", err)
	s.seq.Off()
	s.powered = false
}

// applyCtrls pushes every cached control to hardware, always in the same
// order, before streaming starts.
func (s *Sensor) applyCtrls() error {
	if err := s.chip.SetExposure(s.conn, s.cur, s.exposure); err != nil {
		return err
	}
	if err := s.chip.SetGain(s.conn, s.cur, s.gain); err != nil {
		return err
	}
	if err := s.chip.SetVBlank(s.conn, s.cur, s.vblank); err != nil {
		return err
	}
	if err := s.chip.SetTestPattern(s.conn, s.testPattern); err != nil {
		return err
	}
	return s.chip.SetFlip(s.conn, s.hflip, s.vflip)
}

// setCtrl records value and, when streaming with power held, writes it
// through. Without power the write is skipped and the set still succeeds;
// the value lands on the next stream start.
func (s *Sensor) setCtrl(record func(), write func() error) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record()
	if !s.streaming || !s.powered {
		return nil
	}
	if err := write(); err != nil {
		log.Print("warning: ", s.chip.Name(), ": ctrl: ", err)
		return err
	}
	return nil
}

func (s *Sensor) SetExposure(lines uint32) error {
	if min := s.chip.Bounds().ExpMin; lines < min {
		lines = min
	}
	return s.setCtrl(
		func() { s.exposure = lines },
		func() error {
			return s.chip.SetExposure(s.conn, s.cur, lines)
		})
}

func (s *Sensor) SetGain(gain uint32) error {
	b := s.chip.Bounds()
	if gain < b.GainMin {
		gain = b.GainMin
	}
	if gain > b.GainMax {
		gain = b.GainMax
	}
	return s.setCtrl(
		func() { s.gain = gain },
		func() error { return s.chip.SetGain(s.conn, s.cur, gain) })
}

func (s *Sensor) SetVBlank(lines uint32) error {
	return s.setCtrl(
		func() { s.vblank = lines },
		func() error { return s.chip.SetVBlank(s.conn, s.cur, lines) })
}

func (s *Sensor) SetTestPattern(on bool) error {
	return s.setCtrl(
		func() { s.testPattern = on },
		func() error { return s.chip.SetTestPattern(s.conn, on) })
}

func (s *Sensor) SetFlip(hflip, vflip bool) error {
	return s.setCtrl(
		func() { s.hflip, s.vflip = hflip, vflip },
		func() error { return s.chip.SetFlip(s.conn, hflip, vflip) })
}

// TryFormat returns the mode nearest the requested geometry without
// touching device state.
func (s *Sensor) TryFormat(w, h uint32) Mode {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return *FindMode(s.modes, w, h)
}

// SetFormat selects the mode nearest the requested geometry and resets
// vertical blanking to the new mode's default. The new mode takes effect
// on the next stream start.
func (s *Sensor) SetFormat(w, h uint32) Mode {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.cur = FindMode(s.modes, w, h)
	s.vblank = s.cur.VTSDef - s.cur.Height
	if s.exposure > s.cur.VTSMax-4 {
		s.exposure = s.cur.VTSMax - 4
	}
	return *s.cur
}

// FrameSize returns the geometry of mode index i for enumeration.
func (s *Sensor) FrameSize(i int) (w, h uint32, ok bool) {
	if i < 0 || i >= len(s.modes) {
		return 0, 0, false
	}
	return s.modes[i].Width, s.modes[i].Height, true
}

// FrameInterval returns the active mode's frame interval.
func (s *Sensor) FrameInterval() Fract {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.cur.MaxFPS
}

func (s *Sensor) Mode() Mode {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return *s.cur
}

func (s *Sensor) Streaming() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.streaming
}

func (s *Sensor) Exposure() uint32 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.exposure
}

func (s *Sensor) Gain() uint32 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.gain
}

func (s *Sensor) VBlank() uint32 {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.vblank
}
