// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package sensor provides the common control machinery for register-table
// driven CMOS image sensors: register transport, mode selection, power
// sequencing and the streaming state machine. Chip specifics (register
// tables and the gain/exposure encodings) live in the per-chip
// sub-packages.
package sensor

import (
	"fmt"
	"time"

	"github.com/platinasystems/i2c"
)

// RegVal is one entry of a register download table.
type RegVal struct {
	Addr uint16
	Val  uint8
}

// Table is an ordered register download. End marks the entry address that
// terminates the download; families with in-table delays set HasDelay and
// Delay to the address whose entry suspends the download for Val
// milliseconds instead of touching the bus.
type Table struct {
	Regs     []RegVal
	End      uint16
	Delay    uint16
	HasDelay bool
}

// Conn reads and writes single device registers.
type Conn interface {
	Rd(addr uint16) (uint8, error)
	Wr(addr uint16, val uint8) error
}

// WriteTable downloads t through c in order, stopping at the first bus
// error. A failed download leaves the device partially configured; the
// caller recovers by cycling power.
func WriteTable(c Conn, t Table) error {
	for _, rv := range t.Regs {
		if t.HasDelay && rv.Addr == t.Delay {
			time.Sleep(time.Duration(rv.Val) * time.Millisecond)
			continue
		}
		if rv.Addr == t.End {
			break
		}
		if err := c.Wr(rv.Addr, rv.Val); err != nil {
			return err
		}
	}
	return nil
}

// I2cDev is a Conn over an SMBus capable i2c master. Wide selects 16-bit
// register addressing.
type I2cDev struct {
	Bus  int
	Addr int
	Wide bool
}

func (h *I2cDev) String() string {
	return fmt.Sprintf("i2c-%d.%02x", h.Bus, h.Addr)
}

func (h *I2cDev) do(rw i2c.RW, command uint8, size i2c.SMBusSize, data *i2c.SMBusData) (err error) {
	var bus i2c.Bus

	err = bus.Open(h.Bus)
	if err != nil {
		return
	}
	defer bus.Close()

	err = bus.ForceSlaveAddress(h.Addr)
	if err != nil {
		return
	}
	return bus.Do(rw, command, size, data)
}

func (h *I2cDev) Wr(addr uint16, val uint8) error {
	var data i2c.SMBusData
	if !h.Wide {
		data[0] = val
		return h.do(i2c.Write, uint8(addr), i2c.ByteData, &data)
	}
	// 16-bit register address: high byte rides in the command slot,
	// low byte and value go out as word data.
	data[0] = uint8(addr & 0x00ff)
	data[1] = val
	return h.do(i2c.Write, uint8(addr>>8), i2c.WordData, &data)
}

func (h *I2cDev) Rd(addr uint16) (uint8, error) {
	var data i2c.SMBusData
	if !h.Wide {
		err := h.do(i2c.Read, uint8(addr), i2c.ByteData, &data)
		return data[0], err
	}
	data[0] = uint8(addr & 0x00ff)
	err := h.do(i2c.Write, uint8(addr>>8), i2c.ByteData, &data)
	if err != nil {
		return 0, err
	}
	err = h.do(i2c.Read, 0, i2c.Byte, &data)
	return data[0], err
}
