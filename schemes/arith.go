// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package schemes

import (
	"github.com/db47h/logicsim"
)

func init() {
	register(&Scheme{
		Name:        "half-adder",
		Description: "Half adder: SUM = A xor B, CARRY = A and B.",
		Inputs:      []string{"A", "B"},
		Outputs:     []string{"SUM", "CARRY"},
		build: func(b *builder) {
			in := b.in("A", "B")
			b.col()
			xor, and := b.gate(logicsim.Xor, ""), b.gate(logicsim.And, "")
			b.col()
			out := b.out("SUM", "CARRY")
			b.bus(in, xor, 0)
			b.bus(in, and, 0)
			b.w(xor, 0, out[0], 0)
			b.w(and, 0, out[1], 0)
		},
	})

	register(&Scheme{
		Name:        "full-adder",
		Description: "Full adder built from two half adders and an OR gate.",
		Inputs:      []string{"A", "B", "CIN"},
		Outputs:     []string{"SUM", "COUT"},
		build: func(b *builder) {
			in := b.in("A", "B", "CIN")
			b.col()
			xor1, and1 := b.gate(logicsim.Xor, ""), b.gate(logicsim.And, "")
			b.col()
			xor2, and2 := b.gate(logicsim.Xor, ""), b.gate(logicsim.And, "")
			b.col()
			or := b.gate(logicsim.Or, "")
			b.col()
			out := b.out("SUM", "COUT")
			b.bus(in[:2], xor1, 0)
			b.bus(in[:2], and1, 0)
			b.w(xor1, 0, xor2, 0)
			b.w(in[2], 0, xor2, 1)
			b.w(xor1, 0, and2, 0)
			b.w(in[2], 0, and2, 1)
			b.w(and1, 0, or, 0)
			b.w(and2, 0, or, 1)
			b.w(xor2, 0, out[0], 0)
			b.w(or, 0, out[1], 0)
		},
	})

	register(&Scheme{
		Name:        "calculator",
		Description: "4-bit adder showing A + B on an 8-bit display powered by a battery.",
		Inputs:      []string{"A0", "A1", "A2", "A3", "B0", "B1", "B2", "B3"},
		Outputs:     []string{"DISPLAY"},
		build: func(b *builder) {
			in := b.in("A0", "A1", "A2", "A3", "B0", "B1", "B2", "B3")
			b.col()
			add := b.gate(logicsim.Adder4Bit, "")
			gnd := b.gate(logicsim.Const0, "")
			bat := b.gate(logicsim.Battery, "")
			b.col()
			d := b.gate(logicsim.Display8Bit, "DISPLAY")
			b.bus(in, add, 0)
			b.w(gnd, 0, add, 8)
			// S0..S3, Cout to display B0..B4 (inputs 7..3)
			for i := 0; i < 5; i++ {
				b.w(add, i, d, 7-i)
			}
			b.w(bat, 0, d, 8)
			b.w(bat, 1, d, 9)
		},
	})

	register(&Scheme{
		Name:        "comparator-4bit",
		Description: "4-bit magnitude comparator with A>B, A=B and A<B outputs.",
		Inputs:      []string{"A0", "A1", "A2", "A3", "B0", "B1", "B2", "B3"},
		Outputs:     []string{"A>B", "A=B", "A<B"},
		build: func(b *builder) {
			in := b.in("A0", "A1", "A2", "A3", "B0", "B1", "B2", "B3")
			b.col()
			cmp := b.gate(logicsim.Comparator4Bit, "")
			b.col()
			out := b.out("A>B", "A=B", "A<B")
			b.bus(in, cmp, 0)
			b.fan(cmp, 0, out)
		},
	})
}
