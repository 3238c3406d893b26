// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// bits is a bounds checked view of input pin values. Reading past the end
// returns false.
type bits []bool

func (b bits) at(i int) bool {
	return i >= 0 && i < len(b) && b[i]
}

// word packs n bits starting at index from, LSB first.
func (b bits) word(from, n int) int {
	v := 0
	for i := 0; i < n; i++ {
		if b.at(from + i) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// outputs is a bounds checked view of output pin values. Writes past the end
// are dropped.
type outputs []bool

func (o outputs) set(i int, v bool) {
	if i >= 0 && i < len(o) {
		o[i] = v
	}
}

// setWord sets all outputs from the bits of v, LSB first.
func (o outputs) setWord(v int) {
	for i := range o {
		o[i] = v&(1<<uint(i)) != 0
	}
}

// A transferFn computes the new outputs of a gate from its inputs.
//
// out is pre-loaded with the current output values. s is a private copy of
// the gate state that the function may update. Transfer functions must not
// retain or mutate s.Memory in place: they replace it.
type transferFn func(s *State, in bits, out outputs)

var transfers [numKinds]transferFn

func init() {
	transfers = [numKinds]transferFn{
		Unknown: unknown,
		Input:   input,
		Output:  passThrough,

		And:      variadic(allOf),
		Or:       variadic(anyOf),
		Not:      variadic(func(in bits) bool { return !in.at(0) }),
		NotB:     gate(func(_, b bool) bool { return !b }),
		Xor:      variadic(parity),
		Xnor:     variadic(func(in bits) bool { return !parity(in) }),
		Nand:     variadic(func(in bits) bool { return !allOf(in) }),
		Nor:      variadic(func(in bits) bool { return !anyOf(in) }),
		AAndNotB: gate(func(a, b bool) bool { return a && !b }),
		NotAAndB: gate(func(a, b bool) bool { return !a && b }),
		ImplAB:   gate(func(a, b bool) bool { return !a || b }),
		ImplBA:   gate(func(a, b bool) bool { return a || !b }),
		ProjA:    gate(func(a, _ bool) bool { return a }),
		ProjB:    gate(func(_, b bool) bool { return b }),
		Const0:   constant(false),
		Const1:   constant(true),

		Button:      closedSwitch,
		Switch:      closedSwitch,
		LED:         indicator,
		Bulb:        indicator,
		Buzzer:      indicator,
		Relay:       relay,
		Resistor:    passThrough,
		Capacitor:   passThrough,
		Battery:     battery,
		BJTNPN:      transistor(false),
		BJTPNP:      transistor(true),
		MOSFETN:     transistor(false),
		MOSFETP:     transistor(true),
		Display8Bit: display8,

		DFlipFlop:  dFlipFlop,
		TFlipFlop:  tFlipFlop,
		JKFlipFlop: jkFlipFlop,
		SRLatch:    srLatch,

		Mux2To1:   mux2,
		Mux4To1:   mux4,
		Demux1To2: demux(1),
		Demux1To4: demux(2),

		Counter4Bit:  counter4,
		Register4Bit: register4,

		HalfAdder: halfAdder,
		FullAdder: fullAdder,
		Adder4Bit: adder4,

		Decoder2To4: decoder(2),
		Decoder3To8: decoder(3),
		Encoder4To2: encoder4,

		Comparator1Bit: comparator(1),
		Comparator4Bit: comparator(4),

		RAM4x4: ram4x4,
		ROM4x4: rom4x4,

		Clock: clock,

		Splitter4Bit: splitter,
		Combiner4Bit: variadic(anyOf),
	}
}

func transferOf(k Kind) transferFn {
	if k >= numKinds || transfers[k] == nil {
		return unknown
	}
	return transfers[k]
}

// unknown drives all outputs low and leaves the state alone.
func unknown(_ *State, _ bits, out outputs) {
	for i := range out {
		out[i] = false
	}
}
