// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is the camera controller for the CAM1 board: a GC8034 front
// camera plus GC02M1 and S5K5E9 rear cameras.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/platinasystems/eeprom"
	"github.com/platinasystems/fdt"
	"github.com/platinasystems/gpio"

	"github.com/platinasystems/camio/cmd/camreg"
	"github.com/platinasystems/camio/cmd/gc02m1d"
	"github.com/platinasystems/camio/cmd/gc8034d"
	"github.com/platinasystems/camio/cmd/s5k5e9d"
	"github.com/platinasystems/camio/goes"
	"github.com/platinasystems/camio/internal/fdtgpio"
)

// The CAM1 FRU EEPROM is located on bus 0, addr 0x51:
var devEeprom = eeprom.Device{
	BusIndex:   0,
	BusAddress: 0x51,
}

func main() {
	gpio.File = "/boot/camio-cam1.dtb"

	g := make(goes.ByName)
	g.Plot(
		camreg.Command{},
		&gc8034d.Command{Init: gc8034dInit},
		&gc02m1d.Command{Init: gc02m1dInit},
		&s5k5e9d.Command{Init: s5k5e9dInit},
	)
	if err := confGpio(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	if err := g.Main(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func confGpio() error {
	gpio.Aliases = make(gpio.GpioAliasMap)
	gpio.Pins = make(gpio.PinMap)
	b, err := ioutil.ReadFile(gpio.File)
	if err != nil {
		return fmt.Errorf("%s: %v", gpio.File, err)
	}
	t := &fdt.Tree{Debug: false, IsLittleEndian: false}
	t.Parse(b)

	t.MatchNode("aliases", fdtgpio.GatherAliases)
	t.EachProperty("gpio-controller", "", fdtgpio.GatherPins)

	for name, pin := range gpio.Pins {
		if err := pin.SetDirection(); err != nil {
			fmt.Printf("%s: %v\n", name, err)
		}
	}
	return nil
}

// boardLanes reads the FRU EEPROM board type to pick the front camera
// wiring: rev A boards route two MIPI lanes, later revs route four.
func boardLanes() int {
	devEeprom.GetInfo()
	if devEeprom.Fields.BoardType == 0x01 {
		return 2
	}
	return 4
}
