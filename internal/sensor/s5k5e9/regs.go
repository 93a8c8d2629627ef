// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package s5k5e9

import "github.com/platinasystems/camio/internal/sensor"

var commonRegs = sensor.Table{
	End:      tableEnd,
	Delay:    tableWaitMS,
	HasDelay: true,
	Regs: []sensor.RegVal{
		{0x0100, 0x00},
		{0x3b45, 0x01},
		{0x0b05, 0x01},
		{0x392f, 0x01},
		{0x3930, 0x00},
		{0x3924, 0x7f},
		{0x3925, 0xfd},
		{0x3c08, 0xff},
		{0x3c09, 0xff},
		{0x3c0a, 0x05},
		{0x3c31, 0xff},
		{0x3c32, 0xff},
		{0x3290, 0x10},
		{0x3200, 0x01},
		{0x3074, 0x06},
		{0x3075, 0x2f},
		{0x308a, 0x20},
		{0x308b, 0x08},
		{0x308c, 0x0b},
		{0x3081, 0x07},
		{0x307b, 0x85},
		{0x307a, 0x0a},
		{0x3079, 0x0a},
		{0x306e, 0x71},
		{0x306f, 0x28},
		{0x301f, 0x20},
		{0x3012, 0x4e},
		{0x306b, 0x9a},
		{0x3091, 0x16},
		{0x30c4, 0x06},
		{0x306a, 0x79},
		{0x30b0, 0xff},
		{0x306d, 0x08},
		{0x3084, 0x16},
		{0x3070, 0x0f},
		{0x30c2, 0x05},
		{0x3069, 0x87},
		{0x3c0f, 0x00},
		{0x0a02, 0x3f},
		{0x3083, 0x14},
		{0x3080, 0x08},
		{0x3c34, 0xea},
		{0x3c35, 0x5c},
		{0x3931, 0x02},
		{0x0601, 0x00}, // disable test pattern
		{tableEnd, 0x00},
	},
}

var mode2592x1944Regs = sensor.Table{
	End:      tableEnd,
	Delay:    tableWaitMS,
	HasDelay: true,
	Regs: []sensor.RegVal{
		{0x0100, 0x00},
		{0x0136, 0x13},
		{0x0137, 0x33},
		{0x0305, 0x03},
		{0x0306, 0x00},
		{0x0307, 0x59},
		{0x030d, 0x03},
		{0x030e, 0x00},
		{0x030f, 0x89},
		{0x3c1f, 0x00},
		{0x3c17, 0x00},
		{0x0112, 0x0a},
		{0x0113, 0x0a},
		{0x0114, 0x01},
		{0x0820, 0x03},
		{0x0821, 0x6c},
		{0x0822, 0x00},
		{0x0823, 0x00},
		{0x3929, 0x0f},
		{0x0344, 0x00},
		{0x0345, 0x08},
		{0x0346, 0x00},
		{0x0347, 0x08},
		{0x0348, 0x0a},
		{0x0349, 0x27},
		{0x034a, 0x07},
		{0x034b, 0x9f},
		{0x034c, 0x0a},
		{0x034d, 0x20},
		{0x034e, 0x07},
		{0x034f, 0x98},
		{0x0900, 0x00},
		{0x0901, 0x00},
		{0x0381, 0x01},
		{0x0383, 0x01},
		{0x0385, 0x01},
		{0x0387, 0x01},
		{0x0101, 0x00},
		{0x0340, 0x07},
		{0x0341, 0xee},
		{0x0342, 0x0c},
		{0x0343, 0x28},
		{0x0200, 0x0b},
		{0x0201, 0x9c},
		{0x0202, 0x00},
		{0x0203, 0x02},
		{0x30b8, 0x2e},
		{0x30ba, 0x36},
		{0x0104, 0x00},
		{0x0340, 0x07},
		{0x0341, 0xee},
		{0x0202, 0x00},
		{0x0203, 0xa9},
		{0x0204, 0x00},
		{0x0205, 0x20},
		{0x0104, 0x00},
		{tableWaitMS, 10},
		{tableEnd, 0x00},
	},
}

var mode1920x1080Regs = sensor.Table{
	End:      tableEnd,
	Delay:    tableWaitMS,
	HasDelay: true,
	Regs: []sensor.RegVal{
		{tableWaitMS, 10},
		{tableEnd, 0x00},
	},
}
