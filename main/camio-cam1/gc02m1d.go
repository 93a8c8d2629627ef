// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package main

import (
	"github.com/platinasystems/camio/cmd/gc02m1d"
	"github.com/platinasystems/camio/internal/sensor"
	"github.com/platinasystems/camio/internal/sensor/gc02m1"
)

func gc02m1dInit() {
	gc02m1d.Vdev.Bus = 3
	gc02m1d.Vdev.Addr = 0x37
	gc02m1d.Facing = "rear"

	gc02m1d.Seq = sensor.Sequencer{
		ResetPin: sensor.GpioPin("CAM1_RST"),
		PwdnPin:  sensor.GpioPin("CAM1_PWDN"),
		Supplies: []sensor.Supply{
			&sensor.GpioSupply{
				Name: "dovdd",
				Pin:  sensor.GpioPin("CAM1_DOVDD_EN"),
			},
			&sensor.GpioSupply{
				Name: "avdd",
				Pin:  sensor.GpioPin("CAM1_AVDD_EN"),
			},
			&sensor.GpioSupply{
				Name: "dvdd",
				Pin:  sensor.GpioPin("CAM1_DVDD_EN"),
			},
		},
		Clk: &sensor.GpioClock{
			Pin: sensor.GpioPin("CAM1_MCLK_EN"),
			Hz:  gc02m1.XCLKRate,
		},
		ClkRate: gc02m1.XCLKRate,
	}

	gc02m1d.WrRegFn["camera.rear.exposure"] = "exposure"
	gc02m1d.WrRegFn["camera.rear.gain"] = "gain"
	gc02m1d.WrRegFn["camera.rear.vblank"] = "vblank"
	gc02m1d.WrRegFn["camera.rear.test_pattern"] = "test_pattern"
	gc02m1d.WrRegFn["camera.rear.hflip"] = "hflip"
	gc02m1d.WrRegFn["camera.rear.vflip"] = "vflip"
	gc02m1d.WrRegFn["camera.rear.streaming"] = "streaming"
	gc02m1d.WrRegFn["camera.rear.fmt"] = "fmt"

	gc02m1d.WrRegRng["camera.rear.exposure"] = []string{"0", "3184"}
	gc02m1d.WrRegRng["camera.rear.test_pattern"] = []string{"true", "false"}
	gc02m1d.WrRegRng["camera.rear.hflip"] = []string{"true", "false"}
	gc02m1d.WrRegRng["camera.rear.vflip"] = []string{"true", "false"}
	gc02m1d.WrRegRng["camera.rear.streaming"] = []string{"true", "false"}
}
