// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package schemes

import (
	"github.com/db47h/logicsim"
)

func init() {
	register(&Scheme{
		Name:        "and-from-nand",
		Description: "AND gate built from a NAND gate followed by a NOT gate.",
		Inputs:      []string{"A", "B"},
		Outputs:     []string{"OUT"},
		build: func(b *builder) {
			in := b.in("A", "B")
			b.col()
			nand := b.gate(logicsim.Nand, "")
			b.col()
			not := b.gate(logicsim.Not, "")
			b.col()
			out := b.out("OUT")
			b.bus(in, nand, 0)
			b.w(nand, 0, not, 0)
			b.w(not, 0, out[0], 0)
		},
	})

	register(&Scheme{
		Name:        "xor-from-basic",
		Description: "XOR gate built from NOT, AND and OR gates: (A and not B) or (not A and B).",
		Inputs:      []string{"A", "B"},
		Outputs:     []string{"OUT"},
		build: func(b *builder) {
			in := b.in("A", "B")
			b.col()
			notA, notB := b.gate(logicsim.Not, ""), b.gate(logicsim.Not, "")
			b.col()
			and1, and2 := b.gate(logicsim.And, ""), b.gate(logicsim.And, "")
			b.col()
			or := b.gate(logicsim.Or, "")
			b.col()
			out := b.out("OUT")
			b.w(in[0], 0, notA, 0)
			b.w(in[1], 0, notB, 0)
			b.w(in[0], 0, and1, 0)
			b.w(notB, 0, and1, 1)
			b.w(notA, 0, and2, 0)
			b.w(in[1], 0, and2, 1)
			b.w(and1, 0, or, 0)
			b.w(and2, 0, or, 1)
			b.w(or, 0, out[0], 0)
		},
	})

	register(&Scheme{
		Name:        "multiplexer",
		Description: "2:1 multiplexer built from basic gates. OUT follows D0 when SEL is low, D1 when SEL is high.",
		Inputs:      []string{"D0", "D1", "SEL"},
		Outputs:     []string{"OUT"},
		build: func(b *builder) {
			in := b.in("D0", "D1", "SEL")
			b.col()
			not := b.gate(logicsim.Not, "")
			b.col()
			and1, and2 := b.gate(logicsim.And, ""), b.gate(logicsim.And, "")
			b.col()
			or := b.gate(logicsim.Or, "")
			b.col()
			out := b.out("OUT")
			b.w(in[2], 0, not, 0)
			b.w(in[0], 0, and1, 0)
			b.w(not, 0, and1, 1)
			b.w(in[1], 0, and2, 0)
			b.w(in[2], 0, and2, 1)
			b.w(and1, 0, or, 0)
			b.w(and2, 0, or, 1)
			b.w(or, 0, out[0], 0)
		},
	})

	register(&Scheme{
		Name:        "ring-oscillator",
		Description: "Three NOT gates in a loop. The circuit never settles: each pass shows a new state.",
		Outputs:     []string{"OUT"},
		build: func(b *builder) {
			n1, n2, n3 := b.gate(logicsim.Not, "N1"), b.gate(logicsim.Not, "N2"), b.gate(logicsim.Not, "N3")
			b.col()
			out := b.out("OUT")
			b.w(n1, 0, n2, 0)
			b.w(n2, 0, n3, 0)
			b.w(n3, 0, n1, 0)
			b.w(n3, 0, out[0], 0)
		},
	})
}
