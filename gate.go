// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"

	"github.com/google/uuid"
)

// Direction is the direction of a pin.
//
type Direction uint8

// Pin directions.
const (
	DirIn Direction = iota
	DirOut
)

func (d Direction) String() string {
	if d == DirOut {
		return "output"
	}
	return "input"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	if string(text) == "output" {
		*d = DirOut
	} else {
		*d = DirIn
	}
	return nil
}

// Point is a position on the editor canvas. It is layout metadata and has no
// effect on simulation.
//
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// A Pin is a single boolean signal terminal of a gate.
//
// Pins are mutated in place by the evaluator: their identity is stable across
// simulation passes.
//
type Pin struct {
	ID     string
	Dir    Direction
	Value  bool
	Label  string
	Offset Point
}

// State holds the auxiliary state of a gate. Which fields are meaningful
// depends on the gate kind.
//
type State struct {
	// Latched is the stored bit of flip-flops and latches, and the closed
	// state of buttons and switches.
	Latched bool
	// PrevClock is the level of the clock input seen during the previous
	// pass. Used for rising edge detection.
	PrevClock bool
	// Memory holds RAM/ROM words, or the value of counters and registers in
	// Memory[0].
	Memory []uint8
	// Address is the last address decoded by a memory component.
	Address int
	// Indicator is true when an LED, bulb or buzzer is active.
	Indicator bool
	// Display is the value shown by an 8-bit display.
	Display int
	// ClockFrequency is the frequency in Hz of a CLOCK component.
	ClockFrequency float64
	// ClockState is the externally driven output level of a CLOCK component.
	ClockState bool
}

func (s State) clone() State {
	if s.Memory != nil {
		s.Memory = append([]uint8(nil), s.Memory...)
	}
	return s
}

// A Gate is a component in a circuit.
//
// The number of input and output pins is fixed at creation time by the gate
// kind and is never changed by the engine.
//
type Gate struct {
	ID string
	// Kind is the gate type.
	Kind Kind
	// RawKind is the original tag of a gate decoded as Unknown. It is kept so
	// that saving the circuit does not lose the tag.
	RawKind string
	// Suffix is an optional user defined name suffix.
	Suffix string
	// Description is an optional free form description.
	Description string
	// Value is a display value such as "10k" for resistors.
	Value string
	// Position is the gate position on the canvas.
	Position Point

	Inputs  []Pin
	Outputs []Pin

	State
}

// DisplayName returns the name of the gate as shown to users: its kind,
// followed by the user suffix and component value if any.
//
func (g *Gate) DisplayName() string {
	var b strings.Builder
	if g.Kind == Unknown && g.RawKind != "" {
		b.WriteString(g.RawKind)
	} else {
		b.WriteString(g.Kind.String())
	}
	if g.Suffix != "" {
		b.WriteByte(' ')
		b.WriteString(g.Suffix)
	}
	if g.Value != "" {
		b.WriteString(" (")
		b.WriteString(g.Value)
		b.WriteByte(')')
	}
	return b.String()
}

// Clone returns a deep copy of g.
//
func (g *Gate) Clone() *Gate {
	c := *g
	c.Inputs = append([]Pin(nil), g.Inputs...)
	c.Outputs = append([]Pin(nil), g.Outputs...)
	c.State = g.State.clone()
	return &c
}

// In returns the value of input pin i, or false if i is out of range.
//
func (g *Gate) In(i int) bool {
	if i < 0 || i >= len(g.Inputs) {
		return false
	}
	return g.Inputs[i].Value
}

// Out returns the value of output pin i, or false if i is out of range.
//
func (g *Gate) Out(i int) bool {
	if i < 0 || i >= len(g.Outputs) {
		return false
	}
	return g.Outputs[i].Value
}

// OutBits packs the output pins into an integer, output 0 being the least
// significant bit.
//
func (g *Gate) OutBits() int {
	v := 0
	for i := range g.Outputs {
		if g.Outputs[i].Value {
			v |= 1 << uint(i)
		}
	}
	return v
}

// NewGate returns a new gate of the given kind with a fresh ID and the pin
// layout of that kind.
//
func NewGate(k Kind) *Gate {
	return NewGateN(k, 0)
}

// NewGateN is like NewGate but sets the number of inputs for kinds that
// accept a variable number of inputs (AND, OR, NAND, NOR, XOR, XNOR). A count
// below 2, or any count for other kinds, selects the default layout.
//
func NewGateN(k Kind, inputs int) *Gate {
	l := layoutOf(k)
	ins := l.in
	if l.variadic && inputs >= 2 {
		ins = make([]string, inputs)
	}
	g := &Gate{
		ID:      uuid.NewString(),
		Kind:    k,
		Inputs:  makePins(DirIn, ins),
		Outputs: makePins(DirOut, l.out),
	}
	switch k {
	case Battery:
		g.Outputs[0].Value = true
	case Clock:
		g.ClockFrequency = 1
	case Resistor:
		g.Value = "10k"
	case Capacitor:
		g.Value = "100u"
	case RAM4x4, ROM4x4:
		g.Memory = make([]uint8, 4)
	}
	return g
}

func makePins(d Direction, labels []string) []Pin {
	if len(labels) == 0 {
		return nil
	}
	x, n := -50.0, len(labels)
	if d == DirOut {
		x = 50
	}
	pins := make([]Pin, n)
	for i, l := range labels {
		pins[i] = Pin{
			ID:     uuid.NewString(),
			Dir:    d,
			Label:  l,
			Offset: Point{X: x, Y: float64(i*24 - (n-1)*12)},
		}
	}
	return pins
}
