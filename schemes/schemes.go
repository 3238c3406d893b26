// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package schemes provides a library of example circuits for logicsim.
//
// Gates in example circuits are named with their user suffix ("A", "SUM",
// "CLK"...) and can be looked up with Circuit.Find.
//
package schemes

import (
	"sort"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// A Scheme is a named example circuit.
//
type Scheme struct {
	Name        string
	Description string
	// Inputs and Outputs name the gates that drive and show the circuit, in
	// display order.
	Inputs  []string
	Outputs []string

	build func(b *builder)
}

// Build returns a new instance of the circuit.
//
func (s *Scheme) Build() (*logicsim.Circuit, error) {
	b := newBuilder()
	s.build(b)
	if b.err != nil {
		return nil, errors.Wrapf(b.err, "build %s", s.Name)
	}
	return b.c, nil
}

var registry = make(map[string]*Scheme)

func register(s *Scheme) {
	if _, ok := registry[s.Name]; ok {
		panic("duplicate scheme " + s.Name)
	}
	registry[s.Name] = s
}

// All returns all example schemes sorted by name.
//
func All() []*Scheme {
	r := make([]*Scheme, 0, len(registry))
	for _, s := range registry {
		r = append(r, s)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

// Lookup returns the scheme with the given name.
//
func Lookup(name string) (*Scheme, bool) {
	s, ok := registry[name]
	return s, ok
}

// Word returns the outputs of the named gates as an integer. The first gate
// is lsb. OUTPUT probes, LEDs and bulbs contribute their input or indicator
// value, other gates their first output.
//
func Word(c *logicsim.Circuit, names ...string) int {
	var out int
	for bit, n := range names {
		if Level(c, n) {
			out |= 1 << uint(bit)
		}
	}
	return out
}

// Level returns the level shown by the named gate: the indicator state of
// LEDs, bulbs and buzzers, the input of OUTPUT probes, and output 0 of any
// other gate.
//
func Level(c *logicsim.Circuit, name string) bool {
	g := c.Find(name)
	switch {
	case g == nil:
		return false
	case g.Kind.IsIndicator():
		return g.Indicator
	case g.Kind == logicsim.Output:
		return g.In(0)
	}
	return g.Out(0)
}

// SetWord sets the named INPUT, BUTTON or SWITCH gates to the bits of v. The
// first gate is lsb.
//
func SetWord(c *logicsim.Circuit, v int, names ...string) error {
	for bit, n := range names {
		g := c.Find(n)
		if g == nil {
			return errors.Errorf("no gate named %q", n)
		}
		if err := c.Set(g.ID, v&(1<<uint(bit)) != 0); err != nil {
			return err
		}
	}
	return nil
}

// builder lays out gates in columns and records the first error.
type builder struct {
	c    *logicsim.Circuit
	x, y float64
	err  error
}

const (
	colWidth  = 150
	rowHeight = 80
)

func newBuilder() *builder {
	return &builder{c: logicsim.NewCircuit(), x: 100, y: 100}
}

// col starts a new column.
func (b *builder) col() {
	b.x += colWidth
	b.y = 100
}

func (b *builder) gate(k logicsim.Kind, name string) *logicsim.Gate {
	return b.gateN(k, 0, name)
}

func (b *builder) gateN(k logicsim.Kind, inputs int, name string) *logicsim.Gate {
	g := logicsim.NewGateN(k, inputs)
	g.Suffix = name
	g.Position = logicsim.Point{X: b.x, Y: b.y}
	b.y += rowHeight
	if err := b.c.Add(g); err != nil && b.err == nil {
		b.err = err
	}
	return g
}

func (b *builder) in(names ...string) []*logicsim.Gate {
	gs := make([]*logicsim.Gate, len(names))
	for i, n := range names {
		gs[i] = b.gate(logicsim.Input, n)
	}
	return gs
}

func (b *builder) out(names ...string) []*logicsim.Gate {
	gs := make([]*logicsim.Gate, len(names))
	for i, n := range names {
		gs[i] = b.gate(logicsim.Output, n)
	}
	return gs
}

// w connects output fromPin of from to input toPin of to.
func (b *builder) w(from *logicsim.Gate, fromPin int, to *logicsim.Gate, toPin int) {
	if _, err := b.c.Connect(from.ID, fromPin, to.ID, toPin); err != nil && b.err == nil {
		b.err = err
	}
}

// power wires output fromPin of from in parallel with output toPin of to.
func (b *builder) power(from *logicsim.Gate, fromPin int, to *logicsim.Gate, toPin int) {
	_, err := b.c.ConnectPins(
		logicsim.PinRef{Gate: from.ID, Dir: logicsim.DirOut, Index: fromPin},
		logicsim.PinRef{Gate: to.ID, Dir: logicsim.DirOut, Index: toPin})
	if err != nil && b.err == nil {
		b.err = err
	}
}

// bus connects output 0 of each gate in from to consecutive inputs of to,
// starting at input first.
func (b *builder) bus(from []*logicsim.Gate, to *logicsim.Gate, first int) {
	for i, g := range from {
		b.w(g, 0, to, first+i)
	}
}

// fan connects consecutive outputs of from, starting at output first, to
// input 0 of each gate in to.
func (b *builder) fan(from *logicsim.Gate, first int, to []*logicsim.Gate) {
	for i, g := range to {
		b.w(from, first+i, g, 0)
	}
}
