// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package main

import (
	"github.com/platinasystems/camio/cmd/s5k5e9d"
	"github.com/platinasystems/camio/internal/sensor"
	"github.com/platinasystems/camio/internal/sensor/s5k5e9"
)

func s5k5e9dInit() {
	s5k5e9d.Vdev.Bus = 4
	s5k5e9d.Vdev.Addr = 0x10
	s5k5e9d.Facing = "rear_aux"

	s5k5e9d.Seq = sensor.Sequencer{
		ResetPin: sensor.GpioPin("CAM2_RST"),
		Supplies: []sensor.Supply{
			&sensor.GpioSupply{
				Name: "vdda",
				Pin:  sensor.GpioPin("CAM2_VDDA_EN"),
			},
			&sensor.GpioSupply{
				Name: "vddd",
				Pin:  sensor.GpioPin("CAM2_VDDD_EN"),
			},
			&sensor.GpioSupply{
				Name: "vdddo",
				Pin:  sensor.GpioPin("CAM2_VDDDO_EN"),
			},
		},
		Clk: &sensor.GpioClock{
			Pin: sensor.GpioPin("CAM2_MCLK_EN"),
			Hz:  s5k5e9.XCLKRate,
		},
		ClkRate: s5k5e9.XCLKRate,
	}

	s5k5e9d.WrRegFn["camera.rear_aux.exposure"] = "exposure"
	s5k5e9d.WrRegFn["camera.rear_aux.gain"] = "gain"
	s5k5e9d.WrRegFn["camera.rear_aux.vblank"] = "vblank"
	s5k5e9d.WrRegFn["camera.rear_aux.test_pattern"] = "test_pattern"
	s5k5e9d.WrRegFn["camera.rear_aux.hflip"] = "hflip"
	s5k5e9d.WrRegFn["camera.rear_aux.vflip"] = "vflip"
	s5k5e9d.WrRegFn["camera.rear_aux.streaming"] = "streaming"
	s5k5e9d.WrRegFn["camera.rear_aux.fmt"] = "fmt"

	s5k5e9d.WrRegRng["camera.rear_aux.exposure"] = []string{"0", "3184"}
	s5k5e9d.WrRegRng["camera.rear_aux.gain"] = []string{"16", "248"}
	s5k5e9d.WrRegRng["camera.rear_aux.test_pattern"] = []string{"true", "false"}
	s5k5e9d.WrRegRng["camera.rear_aux.hflip"] = []string{"true", "false"}
	s5k5e9d.WrRegRng["camera.rear_aux.vflip"] = []string{"true", "false"}
	s5k5e9d.WrRegRng["camera.rear_aux.streaming"] = []string{"true", "false"}
}
