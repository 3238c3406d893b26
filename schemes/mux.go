// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package schemes

import (
	"github.com/db47h/logicsim"
)

func init() {
	register(&Scheme{
		Name:        "mux-4to1",
		Description: "4:1 data selector. OUT follows the data input selected by S1 S0.",
		Inputs:      []string{"D0", "D1", "D2", "D3", "S0", "S1"},
		Outputs:     []string{"OUT"},
		build: func(b *builder) {
			in := b.in("D0", "D1", "D2", "D3", "S0", "S1")
			b.col()
			mux := b.gate(logicsim.Mux4To1, "")
			b.col()
			out := b.out("OUT")
			b.bus(in, mux, 0)
			b.w(mux, 0, out[0], 0)
		},
	})

	register(&Scheme{
		Name:        "demux-1to4",
		Description: "1:4 distributor. IN is routed to the output selected by S1 S0.",
		Inputs:      []string{"IN", "S0", "S1"},
		Outputs:     []string{"OUT0", "OUT1", "OUT2", "OUT3"},
		build: func(b *builder) {
			in := b.in("IN", "S0", "S1")
			b.col()
			demux := b.gate(logicsim.Demux1To4, "")
			b.col()
			out := b.out("OUT0", "OUT1", "OUT2", "OUT3")
			b.bus(in, demux, 0)
			b.fan(demux, 0, out)
		},
	})

	register(&Scheme{
		Name:        "decoder-3to8",
		Description: "3:8 decoder. Exactly one output is high, selected by A2 A1 A0.",
		Inputs:      []string{"A0", "A1", "A2"},
		Outputs:     []string{"Y0", "Y1", "Y2", "Y3", "Y4", "Y5", "Y6", "Y7"},
		build: func(b *builder) {
			in := b.in("A0", "A1", "A2")
			b.col()
			dec := b.gate(logicsim.Decoder3To8, "")
			b.col()
			out := b.out("Y0", "Y1", "Y2", "Y3", "Y4", "Y5", "Y6", "Y7")
			b.bus(in, dec, 0)
			b.fan(dec, 0, out)
		},
	})
}
