// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

const memWords = 4

func (s *State) read(addr int) uint8 {
	if addr < 0 || addr >= len(s.Memory) {
		return 0
	}
	return s.Memory[addr] & 0xF
}

// ram4x4 is a 4 words by 4 bits RAM. Writes are level sensitive.
//
//	Inputs: A0, A1, D0..D3, WE
//	Outputs: Q0..Q3
//	Function: if WE { M[A] = D }; Q = M[A]
//
func ram4x4(s *State, in bits, out outputs) {
	a := in.word(0, 2)
	s.Address = a
	if in.at(6) {
		if d := uint8(in.word(2, 4)); d != s.read(a) || len(s.Memory) <= a {
			m := make([]uint8, memWords)
			copy(m, s.Memory)
			m[a] = d
			s.Memory = m
		}
	}
	out.setWord(int(s.read(a)))
}

// rom4x4 is a 4 words by 4 bits ROM. Its contents are loaded externally.
//
//	Inputs: A0, A1
//	Outputs: D0..D3
//	Function: D = M[A]
//
func rom4x4(s *State, in bits, out outputs) {
	a := in.word(0, 2)
	s.Address = a
	out.setWord(int(s.read(a)))
}
