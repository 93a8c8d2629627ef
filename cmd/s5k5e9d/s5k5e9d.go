// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package s5k5e9d publishes the S5K5E9 camera sensor state to redis and
// accepts camera control hsets.
package s5k5e9d

import (
	"fmt"
	"net/rpc"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jpillora/backoff"
	"github.com/platinasystems/atsock"
	"github.com/platinasystems/log"
	"github.com/platinasystems/redis"
	"github.com/platinasystems/redis/publisher"
	"github.com/platinasystems/redis/rpc/args"
	"github.com/platinasystems/redis/rpc/reply"

	"github.com/platinasystems/camio/goes"
	"github.com/platinasystems/camio/goes/lang"
	"github.com/platinasystems/camio/internal/sensor"
	"github.com/platinasystems/camio/internal/sensor/s5k5e9"
)

var (
	// Machine mains assign these before Main runs.
	Vdev   = sensor.I2cDev{Wide: true}
	Seq    sensor.Sequencer
	Facing = "rear"

	hflip bool
	vflip bool

	WrRegFn  = make(map[string]string)
	WrRegVal = make(map[string]string)
	WrRegRng = make(map[string][]string)
)

type Command struct {
	Info
	Init func()
	init sync.Once
}

type Info struct {
	mutex sync.Mutex
	rpc   *atsock.RpcServer
	pub   *publisher.Publisher
	stop  chan struct{}
	sen   *sensor.Sensor
	chip  *s5k5e9.Chip
	lasts map[string]string
}

func (*Command) String() string { return "s5k5e9d" }

func (*Command) Usage() string { return "s5k5e9d" }

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "s5k5e9 camera sensor daemon",
	}
}

func (*Command) Kind() goes.Kind { return goes.Daemon }

func (c *Command) Main(...string) error {
	if c.Init != nil {
		c.init.Do(c.Init)
	}

	err := redis.IsReady()
	if err != nil {
		return err
	}

	chip := s5k5e9.New()
	c.chip = chip
	c.sen = sensor.New(&Vdev, chip, &Seq)

	b := &backoff.Backoff{
		Min:    1 * time.Second,
		Max:    30 * time.Second,
		Factor: 2,
		Jitter: false,
	}
	for {
		if err = c.sen.Attach(); err == nil {
			break
		}
		if b.Attempt() >= 5 {
			return err
		}
		log.Print("warning: ", c.sen.Name(), ": ", err)
		time.Sleep(b.Duration())
	}

	c.stop = make(chan struct{})
	c.lasts = make(map[string]string)

	if c.pub, err = publisher.New(); err != nil {
		return err
	}

	if c.rpc, err = atsock.NewRpcServer("s5k5e9d"); err != nil {
		return err
	}

	rpc.Register(&c.Info)
	err = redis.Assign(redis.DefaultHash+":camera."+Facing+".",
		"s5k5e9d", "Info")
	if err != nil {
		return err
	}

	t := time.NewTicker(5 * time.Second)
	defer t.Stop()
	for {
		select {
		case <-c.stop:
			return nil
		case <-t.C:
			c.update()
		}
	}
}

func (c *Command) Close() error {
	close(c.stop)
	return nil
}

func (c *Command) update() {
	if err := c.writeRegs(); err != nil {
		log.Print("warning: ", c.sen.Name(), ": ", err)
	}

	m := c.sen.Mode()
	c.publish("streaming", strconv.FormatBool(c.sen.Streaming()))
	c.publish("mode", fmt.Sprintf("%dx%d", m.Width, m.Height))
	c.publish("fps", fps(m.MaxFPS))
	c.publish("exposure", strconv.FormatUint(uint64(c.sen.Exposure()), 10))
	c.publish("gain", strconv.FormatUint(uint64(c.sen.Gain()), 10))
	c.publish("vblank", strconv.FormatUint(uint64(c.sen.VBlank()), 10))
	c.publish("chip_id", fmt.Sprintf("%#04x", c.chip.ChipID()))
}

func (c *Command) publish(field, v string) {
	k := "camera." + Facing + "." + field
	if v != c.lasts[k] {
		c.pub.Print(k, ": ", v)
		c.lasts[k] = v
	}
}

func fps(f sensor.Fract) string {
	if f.Numerator == 0 {
		return "0"
	}
	v := float64(f.Denominator) / float64(f.Numerator)
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (c *Command) writeRegs() error {
	for k, v := range WrRegVal {
		var err error
		switch WrRegFn[k] {
		case "exposure":
			err = setUint(v, c.sen.SetExposure)
		case "gain":
			err = setUint(v, c.sen.SetGain)
		case "vblank":
			err = setUint(v, c.sen.SetVBlank)
		case "test_pattern":
			err = c.sen.SetTestPattern(v == "true")
		case "hflip":
			hflip = v == "true"
			err = c.sen.SetFlip(hflip, vflip)
		case "vflip":
			vflip = v == "true"
			err = c.sen.SetFlip(hflip, vflip)
		case "streaming":
			err = c.sen.Stream(v == "true")
		case "fmt":
			err = setFormat(c.sen, v)
		}
		delete(WrRegVal, k)
		if err != nil {
			return err
		}
	}
	return nil
}

func setUint(v string, fn func(uint32) error) error {
	u, err := strconv.ParseUint(v, 0, 32)
	if err != nil {
		return err
	}
	return fn(uint32(u))
}

func setFormat(sen *sensor.Sensor, v string) error {
	wh := strings.Split(v, "x")
	if len(wh) != 2 {
		return fmt.Errorf("%s: invalid format, expect WxH", v)
	}
	w, err := strconv.ParseUint(wh[0], 10, 32)
	if err != nil {
		return err
	}
	h, err := strconv.ParseUint(wh[1], 10, 32)
	if err != nil {
		return err
	}
	sen.SetFormat(uint32(w), uint32(h))
	return nil
}

func (i *Info) Hset(args args.Hset, reply *reply.Hset) error {
	_, p := WrRegFn[args.Field]
	if !p {
		return fmt.Errorf("cannot hset: %s", args.Field)
	}
	_, q := WrRegRng[args.Field]
	if !q {
		err := i.set(args.Field, string(args.Value))
		if err == nil {
			*reply = 1
			WrRegVal[args.Field] = string(args.Value)
		}
		return err
	}
	var a [2]int
	var e [2]error
	if len(WrRegRng[args.Field]) == 2 {
		for i, v := range WrRegRng[args.Field] {
			a[i], e[i] = strconv.Atoi(v)
		}
		if e[0] == nil && e[1] == nil {
			val, err := strconv.Atoi(string(args.Value))
			if err != nil {
				return err
			}
			if val >= a[0] && val <= a[1] {
				err := i.set(args.Field, string(args.Value))
				if err == nil {
					*reply = 1
					WrRegVal[args.Field] =
						string(args.Value)
				}
				return err
			}
			return fmt.Errorf("Cannot hset.  Valid range is: %s",
				WrRegRng[args.Field])
		}
	}
	for _, v := range WrRegRng[args.Field] {
		if v == string(args.Value) {
			err := i.set(args.Field, string(args.Value))
			if err == nil {
				*reply = 1
				WrRegVal[args.Field] = string(args.Value)
			}
			return err
		}
	}
	return fmt.Errorf("Cannot hset.  Valid values are: %s",
		WrRegRng[args.Field])
}

func (i *Info) set(key, value string) error {
	i.pub.Print(key, ": ", value)
	return nil
}
