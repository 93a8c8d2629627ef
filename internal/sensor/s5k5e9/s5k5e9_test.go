// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package s5k5e9

import (
	"reflect"
	"testing"

	"github.com/platinasystems/camio/internal/sensor"
)

type wr struct {
	Addr uint16
	Val  uint8
}

type fakeConn struct {
	writes []wr
	rd     map[uint16]uint8
}

func newFakeConn() *fakeConn {
	return &fakeConn{rd: make(map[uint16]uint8)}
}

func (c *fakeConn) Wr(addr uint16, val uint8) error {
	c.writes = append(c.writes, wr{addr, val})
	return nil
}

func (c *fakeConn) Rd(addr uint16) (uint8, error) {
	return c.rd[addr], nil
}

func TestReadID(t *testing.T) {
	conn := newFakeConn()
	conn.rd[regChipID] = 0x55
	conn.rd[regChipID+1] = 0x9b
	id, err := New().ReadID(conn)
	if err != nil {
		t.Fatal(err)
	}
	if id != chipID {
		t.Errorf("id %#04x", id)
	}
}

func TestTableSentinels(t *testing.T) {
	for _, tbl := range []sensor.Table{
		commonRegs, mode2592x1944Regs, mode1920x1080Regs,
	} {
		if tbl.End != tableEnd || tbl.Delay != tableWaitMS {
			t.Fatal("table markers:", tbl.End, tbl.Delay)
		}
		if !tbl.HasDelay {
			t.Fatal("s5k5e9 tables carry a delay marker")
		}
		last := tbl.Regs[len(tbl.Regs)-1]
		if last.Addr != tableEnd {
			t.Error("table not terminated:", last)
		}
	}
}

// mode_1920x1080 is nothing but a settle delay; it must produce zero bus
// transactions.
func TestEmptyModeTable(t *testing.T) {
	conn := newFakeConn()
	if err := sensor.WriteTable(conn, mode1920x1080Regs); err != nil {
		t.Fatal(err)
	}
	if len(conn.writes) != 0 {
		t.Error("writes:", conn.writes)
	}
}

func TestExposureGroupedHold(t *testing.T) {
	conn := newFakeConn()
	g := New()
	if err := g.SetExposure(conn, &modes[0], 0x00a9); err != nil {
		t.Fatal(err)
	}
	want := []wr{
		{regHold, 1},
		{regExpH, 0x00},
		{regExpL, 0xa9},
		{regHold, 0},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("exposure writes:", conn.writes)
	}
}

func TestGainDoublesCode(t *testing.T) {
	conn := newFakeConn()
	g := New()
	if err := g.SetGain(conn, &modes[0], 0xf8); err != nil {
		t.Fatal(err)
	}
	// 0xf8 * 2 = 0x1f0
	want := []wr{
		{regHold, 1},
		{regAgainH, 0x01},
		{regAgainL, 0xf0},
		{regHold, 0},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("gain writes:", conn.writes)
	}
}

func TestVBlank(t *testing.T) {
	conn := newFakeConn()
	g := New()
	m := &modes[0]
	if err := g.SetVBlank(conn, m, 86); err != nil {
		t.Fatal(err)
	}
	fl := m.Height + 86
	want := []wr{
		{regFrameLH, uint8(fl >> 8)},
		{regFrameLL, uint8(fl & 0xff)},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("frame length writes:", conn.writes)
	}
}

func TestTestPatternLatch(t *testing.T) {
	conn := newFakeConn()
	g := New()
	g.SetTestPattern(conn, true)
	want := []wr{
		{regTestPattern, testPatternEnable},
		{regUpdateDummy, 0},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("enable writes:", conn.writes)
	}
	conn = newFakeConn()
	g.SetTestPattern(conn, false)
	if conn.writes[0] != (wr{regTestPattern, testPatternDisable}) {
		t.Error("disable write:", conn.writes[0])
	}
}

func TestFlip(t *testing.T) {
	for _, x := range []struct {
		h, v bool
		want uint8
	}{
		{false, false, flipNone},
		{true, false, flipH},
		{false, true, flipV},
		{true, true, flipHV},
	} {
		conn := newFakeConn()
		New().SetFlip(conn, x.h, x.v)
		want := []wr{{regFlip, x.want}}
		if !reflect.DeepEqual(conn.writes, want) {
			t.Error("flip writes:", conn.writes)
		}
	}
}

func TestStreamCtrl(t *testing.T) {
	conn := newFakeConn()
	g := New()
	g.StreamOn(conn, &modes[0])
	g.StreamOff(conn)
	want := []wr{
		{regModeSelect, modeStreaming},
		{regModeSelect, modeStandby},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("stream writes:", conn.writes)
	}
}
