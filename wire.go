// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// WireMode tells how a wire delivers its signal to its destination pin.
//
type WireMode uint8

// Wire modes.
const (
	// ModeSignal wires connect an output pin to an input pin. The destination
	// input takes the value of the source output.
	ModeSignal WireMode = iota
	// ModePower wires connect two output pins of power sources or chain
	// components in parallel. The destination output is OR-ed with the source
	// output.
	ModePower
)

func (m WireMode) String() string {
	if m == ModePower {
		return "power"
	}
	return "signal"
}

// MarshalText implements encoding.TextMarshaler.
func (m WireMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *WireMode) UnmarshalText(text []byte) error {
	if string(text) == "power" {
		*m = ModePower
	} else {
		*m = ModeSignal
	}
	return nil
}

// A Wire is a directed connection from an output pin of one gate to a pin of
// another gate.
//
// A wire that references a missing gate or an out of range pin is inert: it
// stays in the circuit but has no effect on the simulation.
//
type Wire struct {
	ID      string
	From    string // source gate ID
	FromPin int    // source output pin index
	To      string // destination gate ID
	ToPin   int    // destination pin index, input or output depending on Mode
	Mode    WireMode
	// Signal is the value of the source pin as of the last simulation pass.
	Signal bool
}

// Clone returns a copy of w.
//
func (w *Wire) Clone() *Wire {
	c := *w
	return &c
}

// ClassifyWire returns the mode of a wire going to pin toPin of gate to, for
// payloads that do not record it. An index addressing an input pin is a
// signal connection. Otherwise, if it addresses an output pin and either end
// can drive in parallel, it is a power connection. Anything else is a signal
// wire (possibly inert).
//
func ClassifyWire(from, to *Gate, toPin int) WireMode {
	if to == nil || toPin < len(to.Inputs) {
		return ModeSignal
	}
	if toPin < len(to.Outputs) && (to.Kind.CanDriveParallel() || from != nil && from.Kind.CanDriveParallel()) {
		return ModePower
	}
	return ModeSignal
}
