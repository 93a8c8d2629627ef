// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sensor

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

type wr struct {
	Addr uint16
	Val  uint8
}

// fakeConn records writes and serves canned reads. failAt >= 0 fails the
// write with that index.
type fakeConn struct {
	writes []wr
	rd     map[uint16]uint8
	failAt int
	inUse  int32
	raced  bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{rd: make(map[uint16]uint8), failAt: -1}
}

func (c *fakeConn) enter() {
	if !atomic.CompareAndSwapInt32(&c.inUse, 0, 1) {
		c.raced = true
	}
}

func (c *fakeConn) leave() { atomic.StoreInt32(&c.inUse, 0) }

func (c *fakeConn) Wr(addr uint16, val uint8) error {
	c.enter()
	defer c.leave()
	if c.failAt >= 0 && len(c.writes) == c.failAt {
		return errors.New("bus error")
	}
	c.writes = append(c.writes, wr{addr, val})
	return nil
}

func (c *fakeConn) Rd(addr uint16) (uint8, error) {
	c.enter()
	defer c.leave()
	return c.rd[addr], nil
}

// fakeChip is a minimal codec whose control writes land at distinct
// addresses so tests can assert ordering.
type fakeChip struct {
	modes  []Mode
	global Table
	id     uint32
}

func newFakeChip() *fakeChip {
	return &fakeChip{
		id: 0x1234,
		modes: []Mode{
			{Width: 3264, Height: 2448, VTSDef: 2500,
				VTSMax: 0x1fff, ExpDef: 0x600,
				MaxFPS: Fract{1, 30},
				Regs: Table{
					Regs: []RegVal{{0x200, 1}, {0xff, 0}},
					End:  0xff,
				}},
			{Width: 1632, Height: 1224, VTSDef: 1300,
				VTSMax: 0x1fff, ExpDef: 0x300,
				MaxFPS: Fract{1, 30},
				Regs: Table{
					Regs: []RegVal{{0x201, 1}, {0xff, 0}},
					End:  0xff,
				}},
		},
		global: Table{
			Regs: []RegVal{{0x100, 1}, {0x101, 2}, {0xff, 0}},
			End:  0xff,
		},
	}
}

func (f *fakeChip) Name() string   { return "fake" }
func (f *fakeChip) ChipID() uint32 { return f.id }
func (f *fakeChip) Modes() []Mode  { return f.modes }
func (f *fakeChip) Global() Table  { return f.global }

func (f *fakeChip) Bounds() Bounds {
	return Bounds{ExpMin: 4, GainMin: 64, GainMax: 1092, GainDef: 64}
}

func (f *fakeChip) ReadID(c Conn) (uint32, error) {
	h, err := c.Rd(0xf0)
	if err != nil {
		return 0, err
	}
	l, err := c.Rd(0xf1)
	if err != nil {
		return 0, err
	}
	return uint32(h)<<8 | uint32(l), nil
}

func (f *fakeChip) SetExposure(c Conn, m *Mode, v uint32) error {
	return c.Wr(0x10, uint8(v))
}

func (f *fakeChip) SetGain(c Conn, m *Mode, v uint32) error {
	return c.Wr(0x11, uint8(v))
}

func (f *fakeChip) SetVBlank(c Conn, m *Mode, v uint32) error {
	return c.Wr(0x12, uint8(v))
}

func (f *fakeChip) SetTestPattern(c Conn, on bool) error {
	return c.Wr(0x13, b2u(on))
}

func (f *fakeChip) SetFlip(c Conn, h, v bool) error {
	return c.Wr(0x14, b2u(h)<<1|b2u(v))
}

func (f *fakeChip) StreamOn(c Conn, m *Mode) error { return c.Wr(0x15, 1) }
func (f *fakeChip) StreamOff(c Conn) error { return c.Wr(0x15, 0) }

func b2u(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// fakePin, fakeSupply and fakeClock instrument the power sequencer.
type fakePin struct {
	name string
	log  *[]string
	v    bool
}

func (p *fakePin) Set(v bool) error {
	p.v = v
	*p.log = append(*p.log, fmt.Sprint(p.name, "=", v))
	return nil
}

type fakeSupply struct {
	name    string
	log     *[]string
	fail    bool
	enabled bool
}

func (s *fakeSupply) String() string { return s.name }

func (s *fakeSupply) Enable() error {
	if s.fail {
		return errors.New("regulator fault")
	}
	s.enabled = true
	*s.log = append(*s.log, s.name+"+")
	return nil
}

func (s *fakeSupply) Disable() error {
	s.enabled = false
	*s.log = append(*s.log, s.name+"-")
	return nil
}

func testSensor(conn Conn, chip Chip) *Sensor {
	return New(conn, chip, &Sequencer{})
}

func TestFindModeNearest(t *testing.T) {
	chip := newFakeChip()
	m := FindMode(chip.modes, 2000, 1500)
	if m.Width != 1632 || m.Height != 1224 {
		t.Error("nearest mode:", m.Width, "x", m.Height)
	}
	// exact match
	m = FindMode(chip.modes, 3264, 2448)
	if m.Width != 3264 {
		t.Error("exact mode:", m.Width)
	}
	// first entry wins ties
	tie := []Mode{{Width: 100, Height: 100}, {Width: 300, Height: 300}}
	m = FindMode(tie, 200, 200)
	if m.Width != 100 {
		t.Error("tie should pick first entry, got:", m.Width)
	}
	if FindMode(nil, 1, 1) != nil {
		t.Error("empty mode list should yield nil")
	}
}

func TestWriteTableSentinel(t *testing.T) {
	conn := newFakeConn()
	tbl := Table{
		Regs: []RegVal{{0x03, 1}, {0xff, 0}, {0x04, 2}},
		End:  0xff,
	}
	if err := WriteTable(conn, tbl); err != nil {
		t.Fatal(err)
	}
	want := []wr{{0x03, 1}}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("writes past sentinel:", conn.writes)
	}
}

func TestWriteTableDelay(t *testing.T) {
	conn := newFakeConn()
	tbl := Table{
		Regs:     []RegVal{{0x03, 1}, {0x00, 10}, {0x04, 2}, {0x01, 0}},
		End:      0x01,
		Delay:    0x00,
		HasDelay: true,
	}
	if err := WriteTable(conn, tbl); err != nil {
		t.Fatal(err)
	}
	// the delay entry produces no bus transaction
	want := []wr{{0x03, 1}, {0x04, 2}}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("writes:", conn.writes)
	}
}

func TestWriteTableStopsOnError(t *testing.T) {
	conn := newFakeConn()
	conn.failAt = 1
	tbl := Table{
		Regs: []RegVal{{0x03, 1}, {0x04, 2}, {0x05, 3}, {0xff, 0}},
		End:  0xff,
	}
	if err := WriteTable(conn, tbl); err == nil {
		t.Fatal("expected bus error")
	}
	if len(conn.writes) != 1 {
		t.Error("writes after failure:", conn.writes)
	}
}

func TestAttach(t *testing.T) {
	conn := newFakeConn()
	chip := newFakeChip()
	conn.rd[0xf0] = 0x12
	conn.rd[0xf1] = 0x34
	s := testSensor(conn, chip)
	if err := s.Attach(); err != nil {
		t.Fatal(err)
	}

	conn.rd[0xf1] = 0x99
	err := s.Attach()
	var mism *IDMismatchError
	if !errors.As(err, &mism) {
		t.Fatal("expected id mismatch, got:", err)
	}
	if mism.Want != 0x1234 || mism.Got != 0x1299 {
		t.Error("mismatch detail:", mism)
	}
}

func TestStreamOnWritesOnce(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	n := len(conn.writes)
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	if len(conn.writes) != n {
		t.Error("second stream-on touched the bus:", conn.writes[n:])
	}
	if !s.Streaming() {
		t.Error("not streaming")
	}
}

func TestStreamOnSequence(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	// global table, mode table, controls in fixed order, stream on
	want := []wr{
		{0x100, 1}, {0x101, 2},
		{0x200, 1},
		{0x10, uint8(0x600 & 0xff)},
		{0x11, 64},
		{0x12, uint8((2500 - 2448) & 0xff)},
		{0x13, 0},
		{0x14, 0},
		{0x15, 1},
	}
	if !reflect.DeepEqual(conn.writes, want) {
		t.Error("stream-on sequence:", conn.writes)
	}
}

func TestStreamOffAlwaysSucceeds(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	conn.failAt = len(conn.writes) // fail the StreamOff write
	if err := s.Stream(false); err != nil {
		t.Error("stream-off should swallow bus errors:", err)
	}
	if s.Streaming() {
		t.Error("still streaming")
	}
	// and idempotent
	if err := s.Stream(false); err != nil {
		t.Error(err)
	}
}

func TestStreamOnFailureStaysStandby(t *testing.T) {
	conn := newFakeConn()
	conn.failAt = 1 // fail inside the global table
	s := testSensor(conn, newFakeChip())
	if err := s.Stream(true); err == nil {
		t.Fatal("expected failed start")
	}
	if s.Streaming() {
		t.Error("streaming after failed start")
	}
	// recovery works once the bus does
	conn.failAt = -1
	conn.writes = nil
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
}

func TestCtrlCachedInStandby(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	if err := s.SetExposure(0x42); err != nil {
		t.Fatal(err)
	}
	if len(conn.writes) != 0 {
		t.Error("standby control touched the bus:", conn.writes)
	}
	if s.Exposure() != 0x42 {
		t.Error("exposure not cached:", s.Exposure())
	}
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range conn.writes {
		if w == (wr{0x10, 0x42}) {
			found = true
		}
	}
	if !found {
		t.Error("cached exposure not applied on start:", conn.writes)
	}
}

func TestCtrlWriteThroughWhileStreaming(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	conn.writes = nil
	if err := s.SetGain(100); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(conn.writes, []wr{{0x11, 100}}) {
		t.Error("gain write-through:", conn.writes)
	}
}

func TestCtrlWriteFailureKeepsRequested(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	conn.failAt = len(conn.writes)
	if err := s.SetGain(100); err == nil {
		t.Fatal("expected ctrl write failure")
	}
	if s.Gain() != 100 {
		t.Error("cache lost requested value:", s.Gain())
	}
}

func TestCtrlClamping(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	s.SetExposure(1)
	if s.Exposure() != 4 {
		t.Error("exposure floor:", s.Exposure())
	}
	s.SetGain(1)
	if s.Gain() != 64 {
		t.Error("gain floor:", s.Gain())
	}
	s.SetGain(5000)
	if s.Gain() != 1092 {
		t.Error("gain ceiling:", s.Gain())
	}
}

func TestTryFormatNoMutation(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	m := s.TryFormat(2000, 1500)
	if m.Width != 1632 || m.Height != 1224 {
		t.Error("try format:", m.Width, "x", m.Height)
	}
	if cur := s.Mode(); cur.Width != 3264 {
		t.Error("try format mutated active mode:", cur.Width)
	}
}

func TestSetFormat(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	m := s.SetFormat(2000, 1500)
	if m.Width != 1632 {
		t.Error("set format:", m.Width)
	}
	if s.VBlank() != 1300-1224 {
		t.Error("vblank not reset:", s.VBlank())
	}
	if cur := s.Mode(); cur.Width != 1632 {
		t.Error("active mode:", cur.Width)
	}
}

func TestFrameEnum(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	w, h, ok := s.FrameSize(1)
	if !ok || w != 1632 || h != 1224 {
		t.Error("frame size 1:", w, h, ok)
	}
	if _, _, ok = s.FrameSize(2); ok {
		t.Error("frame size out of range should fail")
	}
	if fi := s.FrameInterval(); fi != (Fract{1, 30}) {
		t.Error("frame interval:", fi)
	}
}

func TestSupplyRollback(t *testing.T) {
	var log []string
	supplies := []Supply{
		&fakeSupply{name: "avdd", log: &log},
		&fakeSupply{name: "dovdd", log: &log, fail: true},
		&fakeSupply{name: "dvdd", log: &log},
	}
	q := &Sequencer{Supplies: supplies}
	if err := q.On(); err == nil {
		t.Fatal("expected supply failure")
	}
	want := []string{"avdd+", "avdd-"}
	if !reflect.DeepEqual(log, want) {
		t.Error("rollback order:", log)
	}
	if supplies[2].(*fakeSupply).enabled {
		t.Error("third supply enabled after failure")
	}
}

func TestSequencerOrder(t *testing.T) {
	var log []string
	q := &Sequencer{
		PowerPin: &fakePin{name: "pwr", log: &log},
		ResetPin: &fakePin{name: "rst", log: &log},
		PwdnPin:  &fakePin{name: "pwdn", log: &log},
		Supplies: []Supply{&fakeSupply{name: "avdd", log: &log}},
	}
	if err := q.On(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"pwr=true", "rst=true", "avdd+",
		"pwdn=false", "rst=false",
	}
	if !reflect.DeepEqual(log, want) {
		t.Error("power-on order:", log)
	}
	log = nil
	q.Off()
	want = []string{
		"pwdn=true", "rst=true", "pwr=false", "avdd-",
	}
	if !reflect.DeepEqual(log, want) {
		t.Error("power-off order:", log)
	}
}

func TestSettle(t *testing.T) {
	q := &Sequencer{SettleCycles: 8192, ClkRate: 24000000}
	// 8192 cycles at 24MHz rounds up to 342us
	if us := q.settle().Microseconds(); us != 342 {
		t.Error("settle:", us, "us")
	}
	q.SettleCycles = 0
	if q.settle() != 0 {
		t.Error("settle without cycles should be zero")
	}
}

func TestLockSerialization(t *testing.T) {
	conn := newFakeConn()
	s := testSensor(conn, newFakeChip())
	if err := s.Stream(true); err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				switch i % 4 {
				case 0:
					s.SetGain(uint32(64 + j))
				case 1:
					s.SetExposure(uint32(16 + j))
				case 2:
					s.SetVBlank(uint32(j))
				case 3:
					s.Stream(j%2 == 0)
				}
			}
		}(i)
	}
	wg.Wait()
	if conn.raced {
		t.Error("concurrent bus access detected")
	}
}
