// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package main

import (
	"github.com/platinasystems/camio/cmd/gc8034d"
	"github.com/platinasystems/camio/internal/sensor"
	"github.com/platinasystems/camio/internal/sensor/gc8034"
)

func gc8034dInit() {
	gc8034d.Vdev.Bus = 2
	gc8034d.Vdev.Addr = 0x37
	gc8034d.Lanes = boardLanes()
	gc8034d.Facing = "front"

	gc8034d.Seq = sensor.Sequencer{
		PowerPin: sensor.GpioPin("CAM0_PWR_EN"),
		ResetPin: sensor.GpioPin("CAM0_RST"),
		PwdnPin:  sensor.GpioPin("CAM0_PWDN"),
		Supplies: []sensor.Supply{
			&sensor.GpioSupply{
				Name: "avdd",
				Pin:  sensor.GpioPin("CAM0_AVDD_EN"),
			},
			&sensor.GpioSupply{
				Name: "dovdd",
				Pin:  sensor.GpioPin("CAM0_DOVDD_EN"),
			},
			&sensor.GpioSupply{
				Name: "dvdd",
				Pin:  sensor.GpioPin("CAM0_DVDD_EN"),
			},
		},
		Clk: &sensor.GpioClock{
			Pin: sensor.GpioPin("CAM0_MCLK_EN"),
			Hz:  gc8034.XVCLKRate,
		},
		ClkRate:      gc8034.XVCLKRate,
		SettleCycles: gc8034.SettleCycles,
	}

	gc8034d.WrRegFn["camera.front.exposure"] = "exposure"
	gc8034d.WrRegFn["camera.front.gain"] = "gain"
	gc8034d.WrRegFn["camera.front.vblank"] = "vblank"
	gc8034d.WrRegFn["camera.front.test_pattern"] = "test_pattern"
	gc8034d.WrRegFn["camera.front.hflip"] = "hflip"
	gc8034d.WrRegFn["camera.front.vflip"] = "vflip"
	gc8034d.WrRegFn["camera.front.streaming"] = "streaming"
	gc8034d.WrRegFn["camera.front.fmt"] = "fmt"

	gc8034d.WrRegRng["camera.front.exposure"] = []string{"4", "8185"}
	gc8034d.WrRegRng["camera.front.gain"] = []string{"64", "1092"}
	gc8034d.WrRegRng["camera.front.test_pattern"] = []string{"true", "false"}
	gc8034d.WrRegRng["camera.front.hflip"] = []string{"true", "false"}
	gc8034d.WrRegRng["camera.front.vflip"] = []string{"true", "false"}
	gc8034d.WrRegRng["camera.front.streaming"] = []string{"true", "false"}
}
