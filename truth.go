// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A Row is a line of a truth table.
//
type Row struct {
	In  []bool
	Out []bool
	// State is the gate state after evaluation. Useful for kinds without
	// outputs such as LEDs and displays.
	State State
}

// TruthTable evaluates a fresh gate of kind k once for every combination of
// its inputs. Row i holds input combination i, input 0 being the most
// significant bit. Sequential kinds are evaluated from their initial state.
//
func TruthTable(k Kind) []Row {
	ni, _ := k.PinCount()
	rows := make([]Row, 1<<uint(ni))
	var e Engine
	for i := range rows {
		g := NewGate(k)
		in := make([]bool, ni)
		for j := range in {
			in[j] = i&(1<<uint(ni-1-j)) != 0
			g.Inputs[j].Value = in[j]
		}
		e.Run(NewCircuit(g))
		out := make([]bool, len(g.Outputs))
		for j := range out {
			out[j] = g.Outputs[j].Value
		}
		rows[i] = Row{In: in, Out: out, State: g.State}
	}
	return rows
}
