// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Physical components. These model a circuit board with boolean levels only:
// a "conducting" element passes a true level, nothing more.

// closedSwitch passes input 0 through while the button or switch is closed.
func closedSwitch(s *State, in bits, out outputs) {
	out.set(0, s.Latched && in.at(0))
}

// battery drives + high and - low.
func battery(_ *State, _ bits, out outputs) {
	out.set(0, true)
	out.set(1, false)
}

// indicator lights LEDs, bulbs and buzzers when + is high and - is low.
func indicator(s *State, in bits, _ outputs) {
	s.Indicator = in.at(0) && !in.at(1)
}

// relay energizes its coil when both coil inputs are high.
//
//	Outputs: COM, NO = energized; NC = !energized
//
func relay(_ *State, in bits, out outputs) {
	on := in.at(0) && in.at(1)
	out.set(0, on)
	out.set(1, on)
	out.set(2, !on)
}

// transistor returns the transfer function of BJTs and MOSFETs. N-type parts
// conduct when their control input is high, P-type when it is low. Both
// outputs reflect conduction.
func transistor(pType bool) transferFn {
	return func(_ *State, in bits, out outputs) {
		c := in.at(0) != pType
		out.set(0, c)
		out.set(1, c)
	}
}

// display8 shows B7..B0 (inputs 0..7, MSB first) while powered by + (input 8)
// high and - (input 9) low.
func display8(s *State, in bits, _ outputs) {
	if !in.at(8) || in.at(9) {
		s.Display = 0
		return
	}
	v := 0
	for i := 0; i < 8; i++ {
		if in.at(i) {
			v |= 1 << uint(7-i)
		}
	}
	s.Display = v
}
