// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Circuit is a snapshot of gates and wires.
//
// The editing methods validate their arguments and return errors. The
// simulation itself (see Engine) never fails.
//
type Circuit struct {
	Gates []*Gate
	Wires []*Wire
}

// NewCircuit returns a circuit with the given gates and no wires.
//
func NewCircuit(gates ...*Gate) *Circuit {
	return &Circuit{Gates: gates}
}

// Clone returns a deep copy of c.
//
func (c *Circuit) Clone() *Circuit {
	n := &Circuit{
		Gates: make([]*Gate, len(c.Gates)),
		Wires: make([]*Wire, len(c.Wires)),
	}
	for i, g := range c.Gates {
		n.Gates[i] = g.Clone()
	}
	for i, w := range c.Wires {
		n.Wires[i] = w.Clone()
	}
	return n
}

// Gate returns the gate with the given ID or nil if not found.
//
func (c *Circuit) Gate(id string) *Gate {
	for _, g := range c.Gates {
		if g.ID == id {
			return g
		}
	}
	return nil
}

// Find returns the gate with the given ID, or else the first gate whose user
// suffix or description equals name. It returns nil if there is no match.
//
func (c *Circuit) Find(name string) *Gate {
	if g := c.Gate(name); g != nil {
		return g
	}
	for _, g := range c.Gates {
		if g.Suffix == name {
			return g
		}
	}
	for _, g := range c.Gates {
		if g.Description == name {
			return g
		}
	}
	return nil
}

// Wire returns the wire with the given ID or nil if not found.
//
func (c *Circuit) Wire(id string) *Wire {
	for _, w := range c.Wires {
		if w.ID == id {
			return w
		}
	}
	return nil
}

// Add adds gates to the circuit. Gates with an empty ID get a new one.
//
func (c *Circuit) Add(gates ...*Gate) error {
	for _, g := range gates {
		if g.ID == "" {
			g.ID = uuid.NewString()
		}
		if c.Gate(g.ID) != nil {
			return errors.Errorf("duplicate gate ID %q", g.ID)
		}
		c.Gates = append(c.Gates, g)
	}
	return nil
}

// Remove removes the gate with the given ID and all wires attached to it. It
// returns false if there is no such gate.
//
func (c *Circuit) Remove(id string) bool {
	found := false
	gs := c.Gates[:0]
	for _, g := range c.Gates {
		if g.ID == id {
			found = true
			continue
		}
		gs = append(gs, g)
	}
	c.Gates = gs
	if !found {
		return false
	}
	ws := c.Wires[:0]
	for _, w := range c.Wires {
		if w.From != id && w.To != id {
			ws = append(ws, w)
		}
	}
	c.Wires = ws
	return true
}

// PinRef references a pin of a gate by direction and index.
//
type PinRef struct {
	Gate  string
	Dir   Direction
	Index int
}

// Connect wires output pin fromPin of gate from to input pin toPin of gate to
// and returns the new wire.
//
func (c *Circuit) Connect(from string, fromPin int, to string, toPin int) (*Wire, error) {
	return c.ConnectPins(PinRef{from, DirOut, fromPin}, PinRef{to, DirIn, toPin})
}

// ConnectPins connects two pins. The wire direction is chosen from the pin
// directions:
//
//	output -> input: signal wire
//	input -> output: signal wire from the output to the input
//	output -> output: power wire, allowed only if one of the gates can drive in
//	                  parallel (see Kind.CanDriveParallel)
//
// Connecting two inputs, a pin to itself, or duplicating an existing wire is
// an error.
//
func (c *Circuit) ConnectPins(a, b PinRef) (*Wire, error) {
	if a == b {
		return nil, errors.New("cannot connect a pin to itself")
	}
	if a.Dir == DirIn && b.Dir == DirOut {
		a, b = b, a
	}
	if a.Dir == DirIn {
		return nil, errors.New("cannot connect two input pins")
	}
	src, dst := c.Gate(a.Gate), c.Gate(b.Gate)
	if src == nil {
		return nil, errors.Errorf("no such gate %q", a.Gate)
	}
	if dst == nil {
		return nil, errors.Errorf("no such gate %q", b.Gate)
	}
	if a.Index < 0 || a.Index >= len(src.Outputs) {
		return nil, errors.Errorf("%s has no output pin %d", src.DisplayName(), a.Index)
	}
	mode := ModeSignal
	if b.Dir == DirOut {
		if !src.Kind.CanDriveParallel() && !dst.Kind.CanDriveParallel() {
			return nil, errors.Errorf("cannot connect outputs of %s and %s", src.DisplayName(), dst.DisplayName())
		}
		if b.Index < 0 || b.Index >= len(dst.Outputs) {
			return nil, errors.Errorf("%s has no output pin %d", dst.DisplayName(), b.Index)
		}
		mode = ModePower
	} else if b.Index < 0 || b.Index >= len(dst.Inputs) {
		return nil, errors.Errorf("%s has no input pin %d", dst.DisplayName(), b.Index)
	}
	for _, w := range c.Wires {
		if w.From == a.Gate && w.FromPin == a.Index && w.To == b.Gate && w.ToPin == b.Index && w.Mode == mode {
			return nil, errors.New("duplicate wire")
		}
	}
	w := &Wire{
		ID:      uuid.NewString(),
		From:    a.Gate,
		FromPin: a.Index,
		To:      b.Gate,
		ToPin:   b.Index,
		Mode:    mode,
	}
	c.Wires = append(c.Wires, w)
	return w, nil
}

// Disconnect removes the wire with the given ID. It returns false if there is
// no such wire.
//
func (c *Circuit) Disconnect(id string) bool {
	for i, w := range c.Wires {
		if w.ID == id {
			c.Wires = append(c.Wires[:i], c.Wires[i+1:]...)
			return true
		}
	}
	return false
}

// DisconnectPin removes all wires attached to the given pin and returns the
// number of removed wires.
//
func (c *Circuit) DisconnectPin(p PinRef) int {
	n := 0
	ws := c.Wires[:0]
	for _, w := range c.Wires {
		out := w.From == p.Gate && w.FromPin == p.Index && p.Dir == DirOut
		in := w.To == p.Gate && w.ToPin == p.Index && (p.Dir == DirIn) == (w.Mode == ModeSignal)
		if out || in {
			n++
			continue
		}
		ws = append(ws, w)
	}
	c.Wires = ws
	return n
}

// Toggle flips the user controlled state of an INPUT, BUTTON or SWITCH gate.
//
func (c *Circuit) Toggle(id string) error {
	g := c.Gate(id)
	if g == nil {
		return errors.Errorf("no such gate %q", id)
	}
	switch g.Kind {
	case Input:
		if len(g.Outputs) == 0 {
			return errors.Errorf("%s has no output", g.DisplayName())
		}
		g.Outputs[0].Value = !g.Outputs[0].Value
	case Button, Switch:
		g.Latched = !g.Latched
	default:
		return errors.Errorf("%s cannot be toggled", g.DisplayName())
	}
	return nil
}

// Set sets the value of an INPUT gate, or the closed state of a BUTTON or
// SWITCH.
//
func (c *Circuit) Set(id string, v bool) error {
	g := c.Gate(id)
	if g == nil {
		return errors.Errorf("no such gate %q", id)
	}
	if !g.Kind.Toggleable() {
		return errors.Errorf("%s cannot be toggled", g.DisplayName())
	}
	cur := g.Latched
	if g.Kind == Input && len(g.Outputs) > 0 {
		cur = g.Outputs[0].Value
	}
	if cur != v {
		return c.Toggle(id)
	}
	return nil
}

// SetInput sets the value of input pin i of a gate. The value is kept until
// a wire drives that pin.
//
func (c *Circuit) SetInput(id string, i int, v bool) error {
	g := c.Gate(id)
	if g == nil {
		return errors.Errorf("no such gate %q", id)
	}
	if i < 0 || i >= len(g.Inputs) {
		return errors.Errorf("%s has no input pin %d", g.DisplayName(), i)
	}
	g.Inputs[i].Value = v
	return nil
}

// LoadMemory sets the contents of a RAM or ROM gate. Words are truncated to 4
// bits and at most 4 words are used.
//
func (c *Circuit) LoadMemory(id string, words ...uint8) error {
	g := c.Gate(id)
	if g == nil {
		return errors.Errorf("no such gate %q", id)
	}
	if g.Kind != RAM4x4 && g.Kind != ROM4x4 {
		return errors.Errorf("%s has no memory", g.DisplayName())
	}
	if len(words) > 4 {
		return errors.Errorf("%d words do not fit in %s", len(words), g.DisplayName())
	}
	m := make([]uint8, 4)
	for i, w := range words {
		m[i] = w & 0xF
	}
	g.Memory = m
	return nil
}
