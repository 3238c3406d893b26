// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package schemes

import (
	"github.com/db47h/logicsim"
)

func init() {
	register(&Scheme{
		Name:        "sr-latch",
		Description: "SR latch built from two cross-coupled NOR gates. S sets Q, R resets it.",
		Inputs:      []string{"S", "R"},
		Outputs:     []string{"Q", "QN"},
		build: func(b *builder) {
			in := b.in("S", "R")
			b.col()
			norS, norR := b.gate(logicsim.Nor, ""), b.gate(logicsim.Nor, "")
			b.col()
			out := b.out("Q", "QN")
			b.w(in[0], 0, norS, 0)
			b.w(norR, 0, norS, 1)
			b.w(norS, 0, norR, 0)
			b.w(in[1], 0, norR, 1)
			b.w(norR, 0, out[0], 0)
			b.w(norS, 0, out[1], 0)
		},
	})

	register(&Scheme{
		Name:        "d-latch",
		Description: "Gated D latch built from NAND gates. Q follows D while CLK is high and holds while CLK is low.",
		Inputs:      []string{"D", "CLK"},
		Outputs:     []string{"Q", "QN"},
		build: func(b *builder) {
			in := b.in("D", "CLK")
			d, clk := in[0], in[1]
			b.col()
			not := b.gate(logicsim.Not, "")
			b.col()
			nand1, nand2 := b.gate(logicsim.Nand, ""), b.gate(logicsim.Nand, "")
			b.col()
			nand3, nand4 := b.gate(logicsim.Nand, ""), b.gate(logicsim.Nand, "")
			b.col()
			out := b.out("Q", "QN")
			b.w(d, 0, not, 0)
			b.w(d, 0, nand1, 0)
			b.w(clk, 0, nand1, 1)
			b.w(not, 0, nand2, 0)
			b.w(clk, 0, nand2, 1)
			b.w(nand1, 0, nand3, 0)
			b.w(nand4, 0, nand3, 1)
			b.w(nand3, 0, nand4, 0)
			b.w(nand2, 0, nand4, 1)
			b.w(nand3, 0, out[0], 0)
			b.w(nand4, 0, out[1], 0)
		},
	})

	register(&Scheme{
		Name:        "d-flipflop-divider",
		Description: "D flip-flop with Q̄ fed back to D. Q toggles on every rising clock edge: a divide by two counter.",
		Inputs:      []string{"CLK"},
		Outputs:     []string{"Q"},
		build: func(b *builder) {
			clk := b.gate(logicsim.Clock, "CLK")
			b.col()
			dff := b.gate(logicsim.DFlipFlop, "")
			b.col()
			out := b.out("Q")
			b.w(dff, 1, dff, 0)
			b.w(clk, 0, dff, 1)
			b.w(dff, 0, out[0], 0)
		},
	})

	register(&Scheme{
		Name:        "t-flipflop",
		Description: "T flip-flop. Q toggles on rising clock edges while T is high.",
		Inputs:      []string{"T", "CLK"},
		Outputs:     []string{"Q", "QN"},
		build: func(b *builder) {
			t := b.gate(logicsim.Input, "T")
			clk := b.gate(logicsim.Clock, "CLK")
			b.col()
			tff := b.gate(logicsim.TFlipFlop, "")
			b.col()
			out := b.out("Q", "QN")
			b.w(t, 0, tff, 0)
			b.w(clk, 0, tff, 1)
			b.fan(tff, 0, out)
		},
	})

	register(&Scheme{
		Name:        "jk-flipflop",
		Description: "JK flip-flop. On rising clock edges J sets, K resets, both toggle.",
		Inputs:      []string{"J", "K", "CLK"},
		Outputs:     []string{"Q", "QN"},
		build: func(b *builder) {
			in := b.in("J", "K")
			clk := b.gate(logicsim.Clock, "CLK")
			b.col()
			jk := b.gate(logicsim.JKFlipFlop, "")
			b.col()
			out := b.out("Q", "QN")
			b.w(in[0], 0, jk, 0)
			b.w(clk, 0, jk, 1)
			b.w(in[1], 0, jk, 2)
			b.fan(jk, 0, out)
		},
	})

	register(&Scheme{
		Name:        "counter-4bit",
		Description: "4-bit binary counter driven by a clock. RST clears the count.",
		Inputs:      []string{"CLK", "RST"},
		Outputs:     []string{"Q0", "Q1", "Q2", "Q3"},
		build: func(b *builder) {
			clk := b.gate(logicsim.Clock, "CLK")
			rst := b.gate(logicsim.Input, "RST")
			b.col()
			cnt := b.gate(logicsim.Counter4Bit, "")
			b.col()
			out := b.out("Q0", "Q1", "Q2", "Q3")
			b.w(clk, 0, cnt, 0)
			b.w(rst, 0, cnt, 1)
			b.fan(cnt, 0, out)
		},
	})

	register(&Scheme{
		Name:        "register-4bit",
		Description: "4-bit register. D0..D3 are stored on the rising edge of CLK while LD is high.",
		Inputs:      []string{"D0", "D1", "D2", "D3", "CLK", "LD"},
		Outputs:     []string{"Q0", "Q1", "Q2", "Q3"},
		build: func(b *builder) {
			in := b.in("D0", "D1", "D2", "D3", "CLK", "LD")
			b.col()
			reg := b.gate(logicsim.Register4Bit, "")
			b.col()
			out := b.out("Q0", "Q1", "Q2", "Q3")
			b.bus(in, reg, 0)
			b.fan(reg, 0, out)
		},
	})

	register(&Scheme{
		Name:        "ram-4x4",
		Description: "4 words of 4 bits RAM. D0..D3 are written at A1 A0 while WE is high.",
		Inputs:      []string{"A0", "A1", "D0", "D1", "D2", "D3", "WE"},
		Outputs:     []string{"Q0", "Q1", "Q2", "Q3"},
		build: func(b *builder) {
			in := b.in("A0", "A1", "D0", "D1", "D2", "D3", "WE")
			b.col()
			ram := b.gate(logicsim.RAM4x4, "")
			b.col()
			out := b.out("Q0", "Q1", "Q2", "Q3")
			b.bus(in, ram, 0)
			b.fan(ram, 0, out)
		},
	})
}
