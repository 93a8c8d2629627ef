// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package camreg peeks and pokes camera sensor registers for bringup.
package camreg

import (
	"fmt"
	"strconv"

	"github.com/platinasystems/flags"
	"github.com/platinasystems/parms"

	"github.com/platinasystems/camio/goes/lang"
	"github.com/platinasystems/camio/internal/sensor"
)

type Command struct{}

func (Command) String() string { return "camreg" }

func (Command) Usage() string {
	return "camreg [-16] [-b BUS] ADDR REG [VAL]"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "read or write a camera sensor register",
	}
}

func (Command) Main(args ...string) error {
	flag, args := flags.New(args, "-16")
	parm, args := parms.New(args, "-b")
	if len(parm.ByName["-b"]) == 0 {
		parm.ByName["-b"] = "0"
	}

	if n := len(args); n < 2 || n > 3 {
		return fmt.Errorf("%v: expect ADDR REG [VAL]", args)
	}

	bus, err := strconv.ParseUint(parm.ByName["-b"], 0, 8)
	if err != nil {
		return fmt.Errorf("%s: %v", parm.ByName["-b"], err)
	}

	var addr, reg, val uint64
	for i, p := range []*uint64{&addr, &reg, &val} {
		if i >= len(args) {
			break
		}
		if *p, err = strconv.ParseUint(args[i], 0, 16); err != nil {
			return fmt.Errorf("%s: %v", args[i], err)
		}
	}

	dev := sensor.I2cDev{
		Bus:  int(bus),
		Addr: int(addr),
		Wide: flag.ByName["-16"],
	}
	if len(args) == 3 {
		return dev.Wr(uint16(reg), uint8(val))
	}
	v, err := dev.Rd(uint16(reg))
	if err != nil {
		return err
	}
	fmt.Printf("%#02x\n", v)
	return nil
}
