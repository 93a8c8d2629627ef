// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gc8034

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

func TestNew(t *testing.T) {
	for _, lanes := range []int{2, 4} {
		if _, err := New(lanes); err != nil {
			t.Error(lanes, "lanes:", err)
		}
	}
	if _, err := New(1); err != sensor.ErrUnsupportedConfig {
		t.Error("1 lane:", err)
	}
}

func TestReadID(t *testing.T) {
	conn := newFakeConn()
	conn.rd[regChipIDH] = 0x80
	conn.rd[regChipIDL] = 0x44
	g, _ := New(2)
	id, err := g.ReadID(conn)
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x8044 {
		t.Errorf("id %#04x", id)
	}
}

func TestTableSentinels(t *testing.T) {
	for _, tbl := range []sensor.Table{
		globalRegs2Lane, globalRegs4Lane,
		mode3264x2448Regs2Lane, mode3264x2448Regs4Lane,
	} {
		if tbl.End != regNull {
			t.Fatal("table end marker:", tbl.End)
		}
		if tbl.HasDelay {
			t.Fatal("gc8034 tables carry no delay marker")
		}
		last := tbl.Regs[len(tbl.Regs)-1]
		if last.Addr != regNull {
			t.Error("table not terminated:", last)
		}
	}
}

func TestExposureRoundsDownToEven(t *testing.T) {
	conn := newFakeConn()
	g, _ := New(2)
	m := &g.Modes()[0]
	if err := g.SetExposure(conn, m, 0x0901); err != nil {
		t.Fatal(err)
	}
	want := []wr{
		{regSetPage, pageZero},
		{regExposureH, 0x09},
		{regExposureL, 0x00},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("exposure writes:", conn.writes)
	}
	if g.dgainRatio != 256*0x0901/0x0900 {
		t.Error("compensation ratio:", g.dgainRatio)
	}
}

func TestExposureCompensationFoldsIntoGain(t *testing.T) {
	conn := newFakeConn()
	g, _ := New(2)
	m := &g.Modes()[0]
	// 101 lines rounds down to 100, ratio 258/256
	if err := g.SetExposure(conn, m, 101); err != nil {
		t.Fatal(err)
	}
	if g.dgainRatio != 258 {
		t.Fatal("ratio:", g.dgainRatio)
	}
	conn.writes = nil
	if err := g.SetGain(conn, m, 64); err != nil {
		t.Fatal(err)
	}
	// dgain = 256*64/64 * 258/256 = 258 = 0x0102
	var dint, dfrac uint8
	for _, w := range conn.writes {
		switch w.Addr {
		case regDgainInt:
			dint = w.Val
		case regDgainFrac:
			dfrac = w.Val
		}
	}
	if dint != 0x01 || dfrac != 0x02 {
		t.Errorf("dgain %#02x%02x", dint, dfrac)
	}
}

func TestGainQuantizesToFloor(t *testing.T) {
	conn := newFakeConn()
	g, _ := New(2)
	m := &g.Modes()[0]
	g.dgainRatio = 256
	// 200 lands between level 173 (0x00ad) and 243 (0x00f3)
	if err := g.SetGain(conn, m, 200); err != nil {
		t.Fatal(err)
	}
	if conn.writes[1] != (wr{regAgain, 3}) {
		t.Error("analog index:", conn.writes[1])
	}
	// dgain = 256*200/173 = 295 = 0x0127
	if conn.writes[2] != (wr{regDgainInt, 0x01}) ||
		conn.writes[3] != (wr{regDgainFrac, 0x27}) {
		t.Error("digital gain:", conn.writes[2:4])
	}
	// the per-level look follows
	if len(conn.writes) != 4+len(agcAddrs) {
		t.Error("write count:", len(conn.writes))
	}
}

func TestGainScanStartsBelowTopRows(t *testing.T) {
	conn := newFakeConn()
	g, _ := New(2)
	m := &g.Modes()[0]
	g.dgainRatio = 256
	// far above every level: the scan still starts at meagIndex-1
	if err := g.SetGain(conn, m, 5000); err != nil {
		t.Fatal(err)
	}
	if conn.writes[1] != (wr{regAgain, meagIndex - 1}) {
		t.Error("analog index:", conn.writes[1])
	}
}

func TestGainBelowLowestWritesNothing(t *testing.T) {
	conn := newFakeConn()
	g, _ := New(2)
	m := &g.Modes()[0]
	if err := g.SetGain(conn, m, 10); err != nil {
		t.Fatal(err)
	}
	if len(conn.writes) != 0 {
		t.Error("writes:", conn.writes)
	}
}

func TestVBlank(t *testing.T) {
	conn := newFakeConn()
	g, _ := New(2)
	m := &g.Modes()[0]
	if err := g.SetVBlank(conn, m, 100); err != nil {
		t.Fatal(err)
	}
	vts := uint32(100) + m.Height - 2448 - 36
	want := []wr{
		{regSetPage, pageZero},
		{regVTSH, uint8(vts >> 8)},
		{regVTSL, uint8(vts & 0xff)},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("vts writes:", conn.writes)
	}
}

func TestFlip(t *testing.T) {
	conn := newFakeConn()
	g, _ := New(2)
	if err := g.SetFlip(conn, true, true); err != nil {
		t.Fatal(err)
	}
	want := []wr{{regSetPage, pageZero}, {regMirror, 0xc3}}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("flip writes:", conn.writes)
	}
}

func TestStreamCtrl(t *testing.T) {
	conn := newFakeConn()
	g2, _ := New(2)
	if err := g2.StreamOn(conn, &g2.Modes()[0]); err != nil {
		t.Fatal(err)
	}
	if conn.writes[1] != (wr{regCtrlMode, modeStreaming2Lane}) {
		t.Error("2-lane stream on:", conn.writes[1])
	}

	conn = newFakeConn()
	g4, _ := New(4)
	g4.StreamOn(conn, &g4.Modes()[0])
	if conn.writes[1] != (wr{regCtrlMode, modeStreaming}) {
		t.Error("4-lane stream on:", conn.writes[1])
	}

	conn = newFakeConn()
	g4.StreamOff(conn)
	if conn.writes[1] != (wr{regCtrlMode, modeSwStandby}) {
		t.Error("stream off:", conn.writes[1])
	}
}
