// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// halfAdder.
//
//	Inputs: A, B
//	Outputs: SUM, C
//	Function: SUM = lsb(A + B)
//	          C = msb(A + B)
//
func halfAdder(_ *State, in bits, out outputs) {
	a, b := in.at(0), in.at(1)
	out.set(0, a != b)
	out.set(1, a && b)
}

// fullAdder.
//
//	Inputs: A, B, Cin
//	Outputs: SUM, Cout
//
func fullAdder(_ *State, in bits, out outputs) {
	s, c := add(in.at(0), in.at(1), in.at(2))
	out.set(0, s)
	out.set(1, c)
}

// adder4 is a 4-bit ripple carry adder.
//
//	Inputs: A0..A3, B0..B3, Cin
//	Outputs: S0..S3, Cout
//
func adder4(_ *State, in bits, out outputs) {
	c := in.at(8)
	for i := 0; i < 4; i++ {
		var s bool
		s, c = add(in.at(i), in.at(4+i), c)
		out.set(i, s)
	}
	out.set(4, c)
}

func add(a, b, cin bool) (sum, cout bool) {
	s := a != b
	return s != cin, a && b || s && cin
}
