// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package gc8034

import "github.com/platinasystems/camio/internal/sensor"

// Register downloads for the 30fps sensor setting, 2 and 4 lane wirings.
// An entry at regNull ends a download; this family has no in-table delay
// marker.

var globalRegs2Lane = sensor.Table{
	End: regNull,
	Regs: []sensor.RegVal{
		// SYS
		{0xf2, 0x00},
		{0xf4, 0x90},
		{0xf5, 0x3d},
		{0xf6, 0x44},
		{0xf8, 0x63},
		{0xfa, 0x42},
		{0xf9, 0x00},
		{0xf7, 0x95},
		{0xfc, 0x00},
		{0xfc, 0x00},
		{0xfc, 0xea},
		{0xfe, 0x03},
		{0x03, 0x9a},
		{0xfc, 0xee},
		{0xfe, 0x00},
		{0x88, 0x03},
		// Cisctl&Analog
		{0xfe, 0x00},
		{0x03, 0x08},
		{0x04, 0xc6},
		{0x05, 0x02},
		{0x06, 0x16},
		{0x07, 0x00},
		{0x08, 0x10},
		{0x0a, 0x3a}, //row start
		{0x0b, 0x00},
		{0x0c, 0x04}, //col start
		{0x0d, 0x09},
		{0x0e, 0xa0}, //win_height 2464
		{0x0f, 0x0c},
		{0x10, 0xd4}, //win_width 3284
		{0x17, mirrorNormal},
		{0x18, 0x02},
		{0x19, 0x17},
		{0x1e, 0x50},
		{0x1f, 0x80},
		{0x21, 0x4c},
		{0x25, 0x00},
		{0x28, 0x4a},
		{0x2d, 0x89},
		{0xca, 0x02},
		{0xcb, 0x00},
		{0xcc, 0x39},
		{0xce, 0xd0},
		{0xcf, 0x93},
		{0xd0, 0x1b},
		{0xd1, 0xaa},
		{0xd2, 0xcb},
		{0xd8, 0x40},
		{0xd9, 0xff},
		{0xda, 0x0e},
		{0xdb, 0xb0},
		{0xdc, 0x0e},
		{0xde, 0x08},
		{0xe4, 0xc6},
		{0xe5, 0x08},
		{0xe6, 0x10},
		{0xed, 0x2a},
		{0xfe, 0x02},
		{0x59, 0x02},
		{0x5a, 0x04},
		{0x5b, 0x08},
		{0x5c, 0x20},
		{0xfe, 0x00},
		{0x1a, 0x09},
		{0x1d, 0x13},
		{0xfe, 0x10},
		{0xfe, 0x00},
		{0xfe, 0x10},
		{0xfe, 0x00},
		// Gamma
		{0xfe, 0x00},
		{0x20, 0x54},
		{0x33, 0x82},
		{0xfe, 0x01},
		{0xdf, 0x06},
		{0xe7, 0x18},
		{0xe8, 0x20},
		{0xe9, 0x16},
		{0xea, 0x17},
		{0xeb, 0x50},
		{0xec, 0x6c},
		{0xed, 0x9b},
		{0xee, 0xd8},
		// ISP
		{0xfe, 0x00},
		{0x80, 0x13},
		{0x84, 0x01},
		{0x89, 0x03},
		{0x8d, 0x03},
		{0x8f, 0x14},
		{0xad, 0x00},
		{0x66, 0x0c},
		{0xbc, 0x09},
		{0xc2, 0x7f},
		{0xc3, 0xff},
		// Crop window
		{0x90, 0x01},
		{0x92, 0x08},
		{0x94, 0x09},
		{0x95, 0x09},
		{0x96, 0x90},
		{0x97, 0x0c},
		{0x98, 0xc0},
		// Gain
		{0xb0, 0x90},
		{0xb1, 0x01},
		{0xb2, 0x00},
		{0xb6, 0x00},
		// BLK
		{0xfe, 0x00},
		{0x40, 0x22},
		{0x41, 0x20},
		{0x42, 0x02},
		{0x43, 0x08},
		{0x4e, 0x0f},
		{0x4f, 0xf0},
		{0x58, 0x80},
		{0x59, 0x80},
		{0x5a, 0x80},
		{0x5b, 0x80},
		{0x5c, 0x00},
		{0x5d, 0x00},
		{0x5e, 0x00},
		{0x5f, 0x00},
		{0x6b, 0x01},
		{0x6c, 0x00},
		{0x6d, 0x0c},
		// WB offset
		{0xfe, 0x01},
		{0xbf, 0x40},
		// Dark Sun
		{0xfe, 0x01},
		{0x68, 0x77},
		// DPC
		{0xfe, 0x01},
		{0x60, 0x00},
		{0x61, 0x10},
		{0x62, 0x60},
		{0x63, 0x30},
		{0x64, 0x00},
		// LSC
		{0xfe, 0x01},
		{0xa8, 0x60},
		{0xa2, 0xd1},
		{0xc8, 0x57},
		{0xa1, 0xb8},
		{0xa3, 0x91},
		{0xc0, 0x50},
		{0xd0, 0x05},
		{0xd1, 0xb2},
		{0xd2, 0x1f},
		{0xd3, 0x00},
		{0xd4, 0x00},
		{0xd5, 0x00},
		{0xd6, 0x00},
		{0xd7, 0x00},
		{0xd8, 0x00},
		{0xd9, 0x00},
		{0xa4, 0x10},
		{0xa5, 0x20},
		{0xa6, 0x60},
		{0xa7, 0x80},
		{0xab, 0x18},
		{0xc7, 0xc0},
		// ABB
		{0xfe, 0x01},
		{0x20, 0x02},
		{0x21, 0x02},
		{0x23, 0x42},
		// MIPI
		{0xfe, 0x03},
		{0x01, 0x07},
		{0x02, 0x04},
		{0x04, 0x80},
		{0x11, 0x2b},
		{0x12, 0xf0}, //lwc 3264*5/4
		{0x13, 0x0f},
		{0x15, 0x10}, //LP
		{0x16, 0x29},
		{0x17, 0xff},
		{0x18, 0x01},
		{0x19, 0xaa},
		{0x1a, 0x02},
		{0x21, 0x0c},
		{0x22, 0x0e},
		{0x23, 0x45},
		{0x24, 0x01},
		{0x25, 0x1c},
		{0x26, 0x0b},
		{0x29, 0x0e},
		{0x2a, 0x1d},
		{0x2b, 0x0b},
		{0xfe, 0x00},
		{0x3f, 0x00},
		{regNull, 0x00},
	},
}

var mode3264x2448Regs2Lane = sensor.Table{
	End: regNull,
	Regs: []sensor.RegVal{
		// SYS
		{0xf2, 0x00},
		{0xf4, 0x90},
		{0xf5, 0x3d},
		{0xf6, 0x44},
		{0xf8, 0x63},
		{0xfa, 0x42},
		{0xf9, 0x00},
		{0xf7, 0x95},
		{0xfc, 0x00},
		{0xfc, 0x00},
		{0xfc, 0xea},
		{0xfe, 0x03},
		{0x03, 0x9a},
		{0xfc, 0xee},
		{0xfe, 0x00},
		{0x3f, 0x00},
		{0xfe, 0x10},
		{0xfe, 0x00},
		{0xfe, 0x10},
		{0xfe, 0x00},
		// ISP
		{0xfe, 0x00},
		{0x80, 0x13},
		{0xad, 0x00},
		{0x66, 0x0c},
		{0xbc, 0x06},
		// Crop window
		{0x90, 0x01},
		{0x92, 0x08},
		{0x94, 0x09},
		{0x95, 0x09},
		{0x96, 0x90},
		{0x97, 0x0c},
		{0x98, 0xc0},
		// MIPI
		{0xfe, 0x03},
		{0x01, 0x07},
		{0x02, 0x04},
		{0x04, 0x80},
		{0x11, 0x2b},
		{0x12, 0xf0}, //lwc 3264*5/4
		{0x13, 0x0f},
		{0x15, 0x10}, //LP
		{0x16, 0x29},
		{0x17, 0xff},
		{0x18, 0x01},
		{0x19, 0xaa},
		{0x1a, 0x02},
		{0x21, 0x0c},
		{0x22, 0x0c},
		{0x23, 0x56},
		{0x24, 0x00},
		{0x25, 0x1c},
		{0x26, 0x0b},
		{0x29, 0x0e},
		{0x2a, 0x1d},
		{0x2b, 0x0b},
		{0xfe, 0x00},
		{0x3f, 0x00},
		{regNull, 0x00},
	},
}

var globalRegs4Lane = sensor.Table{
	End: regNull,
	Regs: []sensor.RegVal{
		// SYS
		{0xf2, 0x00},
		{0xf4, 0x80},
		{0xf5, 0x19},
		{0xf6, 0x44},
		{0xf8, 0x63},
		{0xfa, 0x45},
		{0xf9, 0x00},
		{0xf7, 0x9d},
		{0xfc, 0x00},
		{0xfc, 0x00},
		{0xfc, 0xea},
		{0xfe, 0x03},
		{0x03, 0x9a},
		{0x18, 0x07},
		{0x01, 0x07},
		{0xfc, 0xee},
		// Cisctl&Analog
		{0xfe, 0x00},
		{0x03, 0x08},
		{0x04, 0xc6},
		{0x05, 0x02},
		{0x06, 0x16},
		{0x07, 0x00},
		{0x08, 0x10},
		{0x0a, 0x3a},
		{0x0b, 0x00},
		{0x0c, 0x04},
		{0x0d, 0x09},
		{0x0e, 0xa0},
		{0x0f, 0x0c},
		{0x10, 0xd4},
		{0x17, 0xc0},
		{0x18, 0x02},
		{0x19, 0x17},
		{0x1e, 0x50},
		{0x1f, 0x80},
		{0x21, 0x4c},
		{0x25, 0x00},
		{0x28, 0x4a},
		{0x2d, 0x89},
		{0xca, 0x02},
		{0xcb, 0x00},
		{0xcc, 0x39},
		{0xce, 0xd0},
		{0xcf, 0x93},
		{0xd0, 0x19},
		{0xd1, 0xaa},
		{0xd2, 0xcb},
		{0xd8, 0x40},
		{0xd9, 0xff},
		{0xda, 0x0e},
		{0xdb, 0xb0},
		{0xdc, 0x0e},
		{0xde, 0x08},
		{0xe4, 0xc6},
		{0xe5, 0x08},
		{0xe6, 0x10},
		{0xed, 0x2a},
		{0xfe, 0x02},
		{0x59, 0x02},
		{0x5a, 0x04},
		{0x5b, 0x08},
		{0x5c, 0x20},
		{0xfe, 0x00},
		{0x1a, 0x09},
		{0x1d, 0x13},
		{0xfe, 0x10},
		{0xfe, 0x00},
		{0xfe, 0x10},
		{0xfe, 0x00},
		// Gamma
		{0xfe, 0x00},
		{0x20, 0x55},
		{0x33, 0x83},
		{0xfe, 0x01},
		{0xdf, 0x06},
		{0xe7, 0x18},
		{0xe8, 0x20},
		{0xe9, 0x16},
		{0xea, 0x17},
		{0xeb, 0x50},
		{0xec, 0x6c},
		{0xed, 0x9b},
		{0xee, 0xd8},
		// ISP
		{0xfe, 0x00},
		{0x80, 0x10},
		{0x84, 0x01},
		{0x88, 0x03},
		{0x89, 0x03},
		{0x8d, 0x03},
		{0x8f, 0x14},
		{0xad, 0x30},
		{0x66, 0x2c},
		{0xbc, 0x49},
		{0xc2, 0x7f},
		{0xc3, 0xff},
		// Crop window
		{0x90, 0x01},
		{0x92, 0x08},
		{0x94, 0x09},
		{0x95, 0x04},
		{0x96, 0xc8},
		{0x97, 0x06},
		{0x98, 0x60},
		// Gain
		{0xb0, 0x90},
		{0xb1, 0x01},
		{0xb2, 0x00},
		{0xb6, 0x00},
		// BLK
		{0xfe, 0x00},
		{0x40, 0x22},
		{0x41, 0x20},
		{0x42, 0x02},
		{0x43, 0x08},
		{0x4e, 0x0f},
		{0x4f, 0xf0},
		{0x58, 0x80},
		{0x59, 0x80},
		{0x5a, 0x80},
		{0x5b, 0x80},
		{0x5c, 0x00},
		{0x5d, 0x00},
		{0x5e, 0x00},
		{0x5f, 0x00},
		{0x6b, 0x01},
		{0x6c, 0x00},
		{0x6d, 0x0c},
		// WB offset
		{0xfe, 0x01},
		{0xbf, 0x40},
		// Dark Sun
		{0xfe, 0x01},
		{0x68, 0x77},
		// DPC
		{0xfe, 0x01},
		{0x60, 0x00},
		{0x61, 0x10},
		{0x62, 0x28},
		{0x63, 0x10},
		{0x64, 0x02},
		// LSC
		{0xfe, 0x01},
		{0xa8, 0x60},
		{0xa2, 0xd1},
		{0xc8, 0x57},
		{0xa1, 0xb8},
		{0xa3, 0x91},
		{0xc0, 0x50},
		{0xd0, 0x05},
		{0xd1, 0xb2},
		{0xd2, 0x1f},
		{0xd3, 0x00},
		{0xd4, 0x00},
		{0xd5, 0x00},
		{0xd6, 0x00},
		{0xd7, 0x00},
		{0xd8, 0x00},
		{0xd9, 0x00},
		{0xa4, 0x10},
		{0xa5, 0x20},
		{0xa6, 0x60},
		{0xa7, 0x80},
		{0xab, 0x18},
		{0xc7, 0xc0},
		// ABB
		{0xfe, 0x01},
		{0x20, 0x02},
		{0x21, 0x02},
		{0x23, 0x42},
		// MIPI
		{0xfe, 0x03},
		{0x02, 0x03},
		{0x04, 0x80},
		{0x11, 0x2b},
		{0x12, 0xf8},
		{0x13, 0x07},
		{0x15, 0x10},
		{0x16, 0x29},
		{0x17, 0xff},
		{0x19, 0xaa},
		{0x1a, 0x02},
		{0x21, 0x02},
		{0x22, 0x03},
		{0x23, 0x0a},
		{0x24, 0x00},
		{0x25, 0x12},
		{0x26, 0x04},
		{0x29, 0x04},
		{0x2a, 0x02},
		{0x2b, 0x04},
		{0xfe, 0x00},
		{0x3f, 0x00},
		// SYS
		{0xf2, 0x00},
		{0xf4, 0x80},
		{0xf5, 0x19},
		{0xf6, 0x44},
		{0xf8, 0x63},
		{0xfa, 0x45},
		{0xf9, 0x00},
		{0xf7, 0x95},
		{0xfc, 0x00},
		{0xfc, 0x00},
		{0xfc, 0xea},
		{0xfe, 0x03},
		{0x03, 0x9a},
		{0x18, 0x07},
		{0x01, 0x07},
		{0xfc, 0xee},
		// ISP
		{0xfe, 0x00},
		{0x80, 0x13},
		{0xad, 0x00},
		// Crop window
		{0x90, 0x01},
		{0x92, 0x08},
		{0x94, 0x09},
		{0x95, 0x09},
		{0x96, 0x90},
		{0x97, 0x0c},
		{0x98, 0xc0},
		// DPC
		{0xfe, 0x01},
		{0x62, 0x60},
		{0x63, 0x48},
		// MIPI
		{0xfe, 0x03},
		{0x02, 0x03},
		{0x04, 0x80},
		{0x11, 0x2b},
		{0x12, 0xf0},
		{0x13, 0x0f},
		{0x15, 0x10},
		{0x16, 0x29},
		{0x17, 0xff},
		{0x19, 0xaa},
		{0x1a, 0x02},
		{0x21, 0x05},
		{0x22, 0x06},
		{0x23, 0x2b},
		{0x24, 0x00},
		{0x25, 0x12},
		{0x26, 0x07},
		{0x29, 0x07},
		{0x2a, 0x12},
		{0x2b, 0x07},
		{0xfe, 0x00},
		{0x3f, 0x00},
		{regNull, 0x00},
	},
}

var mode3264x2448Regs4Lane = sensor.Table{
	End: regNull,
	Regs: []sensor.RegVal{
		{regNull, 0x00},
	},
}

// Written in full, sentinel free, whenever the test pattern control is
// touched.
var testPatternRegs = []sensor.RegVal{
	{0xfc, 0x00},
	{0xf4, 0x80},
	{0xf5, 0x19},
	{0xf8, 0x63},
	{0xfa, 0x45},
	{0xfc, 0x00},
	{0xfc, 0xfe},
	{0xfe, 0x03},
	{0x21, 0x05},
	{0x22, 0x06},
	{0x23, 0x16},
	{0x25, 0x12},
	{0x26, 0x07},
	{0x29, 0x07},
	{0x2a, 0x08},
	{0x2b, 0x07},
	{0xfe, 0x00},
	{0x8c, 0x01},
}
