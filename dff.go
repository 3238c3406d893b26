// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// Sequential components. Edge triggered parts latch on a rising clock: the
// clock input is high and was low during the previous pass. PrevClock is
// updated on every pass.

// rising reports whether clk is a rising edge and records the clock level.
func rising(s *State, clk bool) bool {
	r := clk && !s.PrevClock
	s.PrevClock = clk
	return r
}

func setQ(s *State, out outputs) {
	out.set(0, s.Latched)
	out.set(1, !s.Latched)
}

// dFlipFlop.
//
//	Inputs: D, CLK
//	Outputs: Q, Q̄
//	Function: if rising(CLK) { Q = D }
//
func dFlipFlop(s *State, in bits, out outputs) {
	if rising(s, in.at(1)) {
		s.Latched = in.at(0)
	}
	setQ(s, out)
}

// tFlipFlop.
//
//	Inputs: T, CLK
//	Outputs: Q, Q̄
//	Function: if rising(CLK) && T { Q = !Q }
//
func tFlipFlop(s *State, in bits, out outputs) {
	if rising(s, in.at(1)) && in.at(0) {
		s.Latched = !s.Latched
	}
	setQ(s, out)
}

// jkFlipFlop.
//
//	Inputs: J, CLK, K
//	Outputs: Q, Q̄
//
func jkFlipFlop(s *State, in bits, out outputs) {
	if rising(s, in.at(1)) {
		switch j, k := in.at(0), in.at(2); {
		case j && k:
			s.Latched = !s.Latched
		case j:
			s.Latched = true
		case k:
			s.Latched = false
		}
	}
	setQ(s, out)
}

// srLatch is level sensitive. S and R both high holds the current state.
//
//	Inputs: S, R
//	Outputs: Q, Q̄
//
func srLatch(s *State, in bits, out outputs) {
	switch set, reset := in.at(0), in.at(1); {
	case set && !reset:
		s.Latched = true
	case reset && !set:
		s.Latched = false
	}
	setQ(s, out)
}

// word returns the value stored in Memory[0] by counters and registers.
func (s *State) word() uint8 {
	if len(s.Memory) == 0 {
		return 0
	}
	return s.Memory[0] & 0xF
}

// setWord stores v in Memory[0]. The slice is replaced, never written in
// place, so that snapshots sharing it are unaffected.
func (s *State) setWord(v uint8) {
	m := make([]uint8, len(s.Memory))
	if len(m) == 0 {
		m = make([]uint8, 1)
	}
	copy(m, s.Memory)
	m[0] = v & 0xF
	s.Memory = m
}

// counter4 is a 4-bit binary counter with asynchronous reset.
//
//	Inputs: CLK, RST
//	Outputs: Q0..Q3
//	Function: if RST { n = 0 } else if rising(CLK) { n = (n + 1) % 16 }
//
func counter4(s *State, in bits, out outputs) {
	up := rising(s, in.at(0))
	switch {
	case in.at(1):
		if s.word() != 0 {
			s.setWord(0)
		}
	case up:
		s.setWord(s.word() + 1)
	}
	out.setWord(int(s.word()))
}

// register4 is a 4-bit register.
//
//	Inputs: D0..D3, CLK, LD
//	Outputs: Q0..Q3
//	Function: if rising(CLK) && LD { Q = D }
//
func register4(s *State, in bits, out outputs) {
	if rising(s, in.at(4)) && in.at(5) {
		s.setWord(uint8(in.word(0, 4)))
	}
	out.setWord(int(s.word()))
}
