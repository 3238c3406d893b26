// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"testing"

	"github.com/db47h/logicsim"
)

// Bench drives a circuit one pass at a time. Methods fail the test on error.
//
type Bench struct {
	T       testing.TB
	Circuit *logicsim.Circuit
	Engine  *logicsim.Engine
}

// NewBench returns a Bench for c using the default engine.
//
func NewBench(t testing.TB, c *logicsim.Circuit) *Bench {
	return &Bench{T: t, Circuit: c, Engine: new(logicsim.Engine)}
}

func (b *Bench) gate(id string) *logicsim.Gate {
	b.T.Helper()
	g := b.Circuit.Gate(id)
	if g == nil {
		b.T.Fatalf("no such gate %q", id)
	}
	return g
}

// Set sets the level of an INPUT or CLOCK gate, or closes/opens a BUTTON or
// SWITCH. It does not run a pass.
//
func (b *Bench) Set(id string, v bool) {
	b.T.Helper()
	if g := b.gate(id); g.Kind == logicsim.Clock {
		g.ClockState = v
		return
	}
	if err := b.Circuit.Set(id, v); err != nil {
		b.T.Fatal(err)
	}
}

// SetInput sets the value of a free input pin. It does not run a pass.
//
func (b *Bench) SetInput(id string, pin int, v bool) {
	b.T.Helper()
	if err := b.Circuit.SetInput(id, pin, v); err != nil {
		b.T.Fatal(err)
	}
}

// Run runs one pass.
//
func (b *Bench) Run() logicsim.Result {
	return b.Engine.Run(b.Circuit)
}

// Pulse drives the clock gate clk low then high with a pass after each
// change: exactly one rising edge.
//
func (b *Bench) Pulse(clk string) {
	b.T.Helper()
	b.Set(clk, false)
	b.Run()
	b.Set(clk, true)
	b.Run()
}

// Out returns the value of output pin i of gate id.
//
func (b *Bench) Out(id string, i int) bool {
	b.T.Helper()
	return b.gate(id).Out(i)
}

// Word packs the outputs of gate id, output 0 being the least significant
// bit.
//
func (b *Bench) Word(id string) int {
	b.T.Helper()
	return b.gate(id).OutBits()
}

// Gate returns the gate with the given ID.
//
func (b *Bench) Gate(id string) *logicsim.Gate {
	b.T.Helper()
	return b.gate(id)
}
