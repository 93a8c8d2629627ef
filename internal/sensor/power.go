// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package sensor

import (
	"fmt"
	"time"

	"github.com/platinasystems/gpio"
	"github.com/platinasystems/log"
)

// Pin drives one board control line. true asserts the line's function
// (reset held, powerdown held, rail on); line polarity is the machine
// wiring's problem.
type Pin interface {
	Set(bool) error
}

// Supply is one sensor rail.
type Supply interface {
	Enable() error
	Disable() error
	String() string
}

// Clock is the sensor's external clock (XVCLK/MCLK).
type Clock interface {
	SetRate(hz uint64) error
	Rate() uint64
	Enable() error
	Disable() error
}

// GpioPin resolves a named pin from the machine's device-tree pin map at
// each use, so a daemon may start before the map is populated.
type GpioPin string

func (p GpioPin) Set(v bool) error {
	pin, found := gpio.Pins[string(p)]
	if !found {
		return fmt.Errorf("%s: no such pin", string(p))
	}
	return pin.SetValue(v)
}

// GpioSupply is a rail switched by a board FET behind a gpio.
type GpioSupply struct {
	Name string
	Pin  Pin
}

func (s *GpioSupply) String() string { return s.Name }
func (s *GpioSupply) Enable() error  { return s.Pin.Set(true) }
func (s *GpioSupply) Disable() error { return s.Pin.Set(false) }

// GpioClock is a fixed-rate oscillator gated by a gpio.
type GpioClock struct {
	Pin Pin
	Hz  uint64
}

func (c *GpioClock) Rate() uint64   { return c.Hz }
func (c *GpioClock) Enable() error  { return c.Pin.Set(true) }
func (c *GpioClock) Disable() error { return c.Pin.Set(false) }

func (c *GpioClock) SetRate(hz uint64) error {
	if hz != c.Hz {
		return fmt.Errorf("clock: fixed at %d hz, cannot set %d", c.Hz, hz)
	}
	return nil
}

// Sequencer walks a sensor between OFF and ON. Any of the pins may be nil
// when the board hardwires that line. All delays are hardware minimums.
type Sequencer struct {
	PowerPin Pin
	ResetPin Pin
	PwdnPin  Pin
	Supplies []Supply
	Clk      Clock
	ClkRate  uint64

	// SettleCycles of Clk to wait after reset deassert before the
	// first register access.
	SettleCycles uint64
}

func (q *Sequencer) set(p Pin, v bool) error {
	if p == nil {
		return nil
	}
	return p.Set(v)
}

// enableSupplies brings up every rail in order. If one fails, the rails
// already enabled by this call are shut back down, in reverse, before the
// error is returned.
func (q *Sequencer) enableSupplies() error {
	for i, s := range q.Supplies {
		if err := s.Enable(); err != nil {
			for j := i - 1; j >= 0; j-- {
				if terr := q.Supplies[j].Disable(); terr != nil {
					log.Print("warning: ", q.Supplies[j],
						": disable: ", terr)
				}
			}
			return fmt.Errorf("%s: %v", s, err)
		}
	}
	return nil
}

// On powers the sensor up. On failure the caller owns recovery and calls
// Off; apart from the supply rollback no other step is unwound here.
func (q *Sequencer) On() error {
	if err := q.set(q.PowerPin, true); err != nil {
		return err
	}
	time.Sleep(2 * time.Millisecond)
	if q.Clk != nil && q.ClkRate != 0 {
		if err := q.Clk.SetRate(q.ClkRate); err != nil {
			log.Print("warning: clock rate: ", err)
		}
	}
	if err := q.set(q.ResetPin, true); err != nil {
		return err
	}
	if err := q.enableSupplies(); err != nil {
		return err
	}
	time.Sleep(200 * time.Microsecond)
	if q.Clk != nil {
		if err := q.Clk.Enable(); err != nil {
			return err
		}
	}
	time.Sleep(time.Millisecond)
	if err := q.set(q.PwdnPin, false); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	if err := q.set(q.ResetPin, false); err != nil {
		return err
	}
	time.Sleep(q.settle())
	return nil
}

// Off reverses On. Every step runs regardless of earlier failures so a
// half powered sensor still ends up off.
func (q *Sequencer) Off() {
	if err := q.set(q.PwdnPin, true); err != nil {
		log.Print("warning: powerdown: ", err)
	}
	if err := q.set(q.ResetPin, true); err != nil {
		log.Print("warning: reset: ", err)
	}
	if q.Clk != nil {
		if err := q.Clk.Disable(); err != nil {
			log.Print("warning: clock: ", err)
		}
	}
	if err := q.set(q.PowerPin, false); err != nil {
		log.Print("warning: power: ", err)
	}
	for _, s := range q.Supplies {
		if err := s.Disable(); err != nil {
			log.Print("warning: ", s, ": disable: ", err)
		}
	}
}

// settle is the post-reset delay: SettleCycles of the external clock,
// rounded up to whole microseconds.
func (q *Sequencer) settle() time.Duration {
	cycles := q.SettleCycles
	if cycles == 0 {
		return 0
	}
	rate := q.ClkRate
	if q.Clk != nil && q.Clk.Rate() != 0 {
		rate = q.Clk.Rate()
	}
	mhz := rate / 1000 / 1000
	if mhz == 0 {
		mhz = 1
	}
	us := (cycles + mhz - 1) / mhz
	return time.Duration(us) * time.Microsecond
}
