// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// mux2 selects D0 or D1.
//
//	Inputs: D0, D1, SEL
//	Outputs: OUT
//	Function: if SEL { OUT = D1 } else { OUT = D0 }
//
func mux2(_ *State, in bits, out outputs) {
	if in.at(2) {
		out.set(0, in.at(1))
	} else {
		out.set(0, in.at(0))
	}
}

// mux4 selects one of D0..D3.
//
//	Inputs: D0, D1, D2, D3, S0, S1
//	Outputs: OUT
//	Function: OUT = D[S1 S0]
//
func mux4(_ *State, in bits, out outputs) {
	out.set(0, in.at(in.word(4, 2)))
}

// demux returns a demultiplexer with the given number of select bits. Input 0
// is routed to the selected output, all other outputs are low.
//
//	Inputs: IN, S0[, S1]
//	Outputs: OUT0..OUTn
//
func demux(sel int) transferFn {
	return func(_ *State, in bits, out outputs) {
		v, n := in.at(0), in.word(1, sel)
		for i := range out {
			out[i] = i == n && v
		}
	}
}

// decoder returns a one-hot decoder over the given number of address bits.
//
//	Inputs: A0..An
//	Outputs: Y0..Y(2^n-1)
//
func decoder(addr int) transferFn {
	return func(_ *State, in bits, out outputs) {
		n := in.word(0, addr)
		for i := range out {
			out[i] = i == n
		}
	}
}

// encoder4 encodes the index of the highest active input of D0..D3. No active
// input encodes as 0.
//
//	Inputs: D0, D1, D2, D3
//	Outputs: Y0, Y1
//
func encoder4(_ *State, in bits, out outputs) {
	n := 0
	for i := 3; i >= 0; i-- {
		if in.at(i) {
			n = i
			break
		}
	}
	out.set(0, n&1 != 0)
	out.set(1, n&2 != 0)
}

// comparator returns a magnitude comparator for two words of the given
// width. A is read from inputs 0..bits-1, B from bits..2*bits-1, LSB first.
//
//	Outputs: A>B, A=B, A<B
//
func comparator(width int) transferFn {
	return func(_ *State, in bits, out outputs) {
		a, b := in.word(0, width), in.word(width, width)
		out.set(0, a > b)
		out.set(1, a == b)
		out.set(2, a < b)
	}
}
