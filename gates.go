// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Combinational gates with a single output.

func allOf(in bits) bool {
	for _, v := range in {
		if !v {
			return false
		}
	}
	return true
}

func anyOf(in bits) bool {
	for _, v := range in {
		if v {
			return true
		}
	}
	return false
}

func parity(in bits) bool {
	p := false
	for _, v := range in {
		p = p != v
	}
	return p
}

// variadic wraps a function of all inputs into a transferFn driving output 0.
func variadic(fn func(in bits) bool) transferFn {
	return func(_ *State, in bits, out outputs) {
		out.set(0, fn(in))
	}
}

// gate wraps a 2-input boolean function. Missing inputs read as false.
func gate(fn func(a, b bool) bool) transferFn {
	return func(_ *State, in bits, out outputs) {
		out.set(0, fn(in.at(0), in.at(1)))
	}
}

func constant(v bool) transferFn {
	return func(_ *State, _ bits, out outputs) {
		out.set(0, v)
	}
}

// input keeps the externally toggled output value.
func input(_ *State, _ bits, _ outputs) {}

// passThrough copies input 0 to output 0. Gates without outputs (OUTPUT
// probes) are left untouched.
func passThrough(_ *State, in bits, out outputs) {
	out.set(0, in.at(0))
}

// clock outputs the externally driven clock level.
func clock(s *State, _ bits, out outputs) {
	out.set(0, s.ClockState)
}

// splitter fans its single input bit out to every output.
func splitter(_ *State, in bits, out outputs) {
	v := in.at(0)
	for i := range out {
		out[i] = v
	}
}
