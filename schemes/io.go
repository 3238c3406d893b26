// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package schemes

import (
	"github.com/db47h/logicsim"
)

func init() {
	register(&Scheme{
		Name:        "simple-led",
		Description: "Battery, switch and LED in series. Close the switch to light the LED.",
		Inputs:      []string{"SW"},
		Outputs:     []string{"LED"},
		build: func(b *builder) {
			bat := b.gate(logicsim.Battery, "")
			b.col()
			sw := b.gate(logicsim.Switch, "SW")
			b.col()
			led := b.gate(logicsim.LED, "LED")
			b.w(bat, 0, sw, 0)
			b.w(sw, 0, led, 0)
			b.w(bat, 1, led, 1)
		},
	})

	register(&Scheme{
		Name:        "push-button-led",
		Description: "Two push buttons in series: the LED is lit only while both are pressed.",
		Inputs:      []string{"BTN1", "BTN2"},
		Outputs:     []string{"LED"},
		build: func(b *builder) {
			bat := b.gate(logicsim.Battery, "")
			b.col()
			b1, b2 := b.gate(logicsim.Button, "BTN1"), b.gate(logicsim.Button, "BTN2")
			b.col()
			led := b.gate(logicsim.LED, "LED")
			b.w(bat, 0, b1, 0)
			b.w(b1, 0, b2, 0)
			b.w(b2, 0, led, 0)
			b.w(bat, 1, led, 1)
		},
	})

	register(&Scheme{
		Name:        "relay-switch",
		Description: "A relay switches two LEDs: NO lights while the coil is energized, NC otherwise.",
		Inputs:      []string{"CTRL"},
		Outputs:     []string{"LED_NO", "LED_NC"},
		build: func(b *builder) {
			ctrl := b.gate(logicsim.Input, "CTRL")
			bat := b.gate(logicsim.Battery, "")
			gnd := b.gate(logicsim.Const0, "")
			b.col()
			rl := b.gate(logicsim.Relay, "")
			b.col()
			no, nc := b.gate(logicsim.LED, "LED_NO"), b.gate(logicsim.LED, "LED_NC")
			b.w(ctrl, 0, rl, 0)
			b.w(bat, 0, rl, 1)
			b.w(rl, 1, no, 0)
			b.w(gnd, 0, no, 1)
			b.w(rl, 2, nc, 0)
			b.w(gnd, 0, nc, 1)
		},
	})

	register(&Scheme{
		Name:        "relay-latch",
		Description: "Self-holding relay: a short press on SET energizes the relay, which keeps itself on through its NO contact.",
		Inputs:      []string{"POWER", "SET"},
		Outputs:     []string{"LAMP"},
		build: func(b *builder) {
			pwr := b.gate(logicsim.Input, "POWER")
			gnd := b.gate(logicsim.Const0, "")
			b.col()
			set := b.gate(logicsim.Button, "SET")
			b.col()
			or := b.gate(logicsim.Or, "")
			b.col()
			rl := b.gate(logicsim.Relay, "")
			b.col()
			lamp := b.gate(logicsim.Bulb, "LAMP")
			b.w(pwr, 0, set, 0)
			b.w(set, 0, or, 0)
			b.w(rl, 1, or, 1)
			b.w(or, 0, rl, 0)
			b.w(pwr, 0, rl, 1)
			b.w(rl, 1, lamp, 0)
			b.w(gnd, 0, lamp, 1)
		},
	})

	register(&Scheme{
		Name:        "sr-latch-led",
		Description: "NOR SR latch driven by push buttons, with LEDs on Q and Q̄.",
		Inputs:      []string{"S", "R"},
		Outputs:     []string{"LED_Q", "LED_QN"},
		build: func(b *builder) {
			bat := b.gate(logicsim.Battery, "")
			gnd := b.gate(logicsim.Const0, "")
			b.col()
			s, r := b.gate(logicsim.Button, "S"), b.gate(logicsim.Button, "R")
			b.col()
			norS, norR := b.gate(logicsim.Nor, ""), b.gate(logicsim.Nor, "")
			b.col()
			q, qn := b.gate(logicsim.LED, "LED_Q"), b.gate(logicsim.LED, "LED_QN")
			b.w(bat, 0, s, 0)
			b.w(bat, 0, r, 0)
			b.w(s, 0, norS, 0)
			b.w(norR, 0, norS, 1)
			b.w(norS, 0, norR, 0)
			b.w(r, 0, norR, 1)
			b.w(norR, 0, q, 0)
			b.w(gnd, 0, q, 1)
			b.w(norS, 0, qn, 0)
			b.w(gnd, 0, qn, 1)
		},
	})

	register(&Scheme{
		Name:        "buzzer-alarm",
		Description: "Alarm: the buzzer sounds when either door sensor switch is closed.",
		Inputs:      []string{"DOOR1", "DOOR2"},
		Outputs:     []string{"BUZZER"},
		build: func(b *builder) {
			bat := b.gate(logicsim.Battery, "")
			b.col()
			d1, d2 := b.gate(logicsim.Switch, "DOOR1"), b.gate(logicsim.Switch, "DOOR2")
			b.col()
			or := b.gate(logicsim.Or, "")
			b.col()
			bz := b.gate(logicsim.Buzzer, "BUZZER")
			b.w(bat, 0, d1, 0)
			b.w(bat, 0, d2, 0)
			b.w(d1, 0, or, 0)
			b.w(d2, 0, or, 1)
			b.w(or, 0, bz, 0)
			b.w(bat, 1, bz, 1)
		},
	})

	register(&Scheme{
		Name:        "traffic-light",
		Description: "A clocked counter and a 2:4 decoder cycle through red, yellow and green lights.",
		Inputs:      []string{"CLK"},
		Outputs:     []string{"RED", "YELLOW", "GREEN"},
		build: func(b *builder) {
			clk := b.gate(logicsim.Clock, "CLK")
			gnd := b.gate(logicsim.Const0, "")
			b.col()
			cnt := b.gate(logicsim.Counter4Bit, "")
			b.col()
			dec := b.gate(logicsim.Decoder2To4, "")
			b.col()
			leds := []*logicsim.Gate{
				b.gate(logicsim.LED, "RED"),
				b.gate(logicsim.LED, "YELLOW"),
				b.gate(logicsim.LED, "GREEN"),
			}
			b.w(clk, 0, cnt, 0)
			b.w(gnd, 0, cnt, 1)
			b.w(cnt, 0, dec, 0)
			b.w(cnt, 1, dec, 1)
			b.fan(dec, 0, leds)
			for _, l := range leds {
				b.w(gnd, 0, l, 1)
			}
		},
	})

	register(&Scheme{
		Name:        "transistor-switch",
		Description: "An NPN transistor used as a switch: the LED is lit while the base is high.",
		Inputs:      []string{"BASE"},
		Outputs:     []string{"LED"},
		build: func(b *builder) {
			base := b.gate(logicsim.Input, "BASE")
			gnd := b.gate(logicsim.Const0, "")
			b.col()
			q := b.gate(logicsim.BJTNPN, "")
			b.col()
			led := b.gate(logicsim.LED, "LED")
			b.w(base, 0, q, 0)
			b.w(q, 0, led, 0)
			b.w(gnd, 0, led, 1)
		},
	})

	register(&Scheme{
		Name:        "parallel-switches",
		Description: "Two switches with their outputs wired in parallel feed a bulb. The bulb is lit while either switch is closed.",
		Inputs:      []string{"SW1", "SW2"},
		Outputs:     []string{"LAMP"},
		build: func(b *builder) {
			bat := b.gate(logicsim.Battery, "")
			b.col()
			sw1, sw2 := b.gate(logicsim.Switch, "SW1"), b.gate(logicsim.Switch, "SW2")
			b.col()
			lamp := b.gate(logicsim.Bulb, "LAMP")
			b.w(bat, 0, sw2, 0)
			b.w(bat, 0, sw1, 0)
			b.power(sw2, 0, sw1, 0)
			b.w(sw1, 0, lamp, 0)
			b.w(bat, 1, lamp, 1)
		},
	})
}
