// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/logicsim"
)

// A Part is a circuit seen as a black box: a list of INPUT gates that drive it
// and a list of output pins to observe.
//
type Part struct {
	Circuit *logicsim.Circuit
	Inputs  []string          // IDs of INPUT gates
	Outputs []logicsim.PinRef // observed output pins
}

// KindPart wraps a single gate of kind k into a Part. Every input pin of the
// gate is driven by its own INPUT gate and every output pin is observed.
//
func KindPart(k logicsim.Kind) (Part, error) {
	g := logicsim.NewGate(k)
	c := logicsim.NewCircuit(g)
	p := Part{Circuit: c}
	for i := range g.Inputs {
		in := logicsim.NewGate(logicsim.Input)
		if err := c.Add(in); err != nil {
			return p, err
		}
		if _, err := c.Connect(in.ID, 0, g.ID, i); err != nil {
			return p, err
		}
		p.Inputs = append(p.Inputs, in.ID)
	}
	for i := range g.Outputs {
		p.Outputs = append(p.Outputs, logicsim.PinRef{Gate: g.ID, Dir: logicsim.DirOut, Index: i})
	}
	return p, nil
}

// Set sets the value of input i.
//
func (p Part) Set(i int, v bool) error {
	return p.Circuit.Set(p.Inputs[i], v)
}

// Out returns the value of observed output i.
//
func (p Part) Out(i int) bool {
	r := p.Outputs[i]
	g := p.Circuit.Gate(r.Gate)
	if g == nil {
		return false
	}
	return g.Out(r.Index)
}

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same number of inputs and outputs.
//
// All inputs false, all inputs true, then random combinations are tried. Each
// combination is evaluated with a single pass of e (a nil Engine uses the
// defaults).
//
func ComparePart(t *testing.T, e *logicsim.Engine, p1, p2 Part) {
	t.Helper()

	if len(p1.Inputs) != len(p2.Inputs) {
		t.Fatalf("input count mismatch: %d != %d", len(p1.Inputs), len(p2.Inputs))
	}
	if len(p1.Outputs) != len(p2.Outputs) {
		t.Fatalf("output count mismatch: %d != %d", len(p1.Outputs), len(p2.Outputs))
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	inputs := make([]bool, len(p1.Inputs))

	errString := func(o int, ex, got bool) string {
		var b strings.Builder
		for i, v := range inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "in%d=%v", i, v)
		}
		return fmt.Sprintf("\nExpected %s => out%d=%v\nGot %v", b.String(), o, ex, got)
	}

	check := func() {
		t.Helper()
		for i, v := range inputs {
			if err := p1.Set(i, v); err != nil {
				t.Fatal(err)
			}
			if err := p2.Set(i, v); err != nil {
				t.Fatal(err)
			}
		}
		e.Run(p1.Circuit)
		e.Run(p2.Circuit)
		for o := range p1.Outputs {
			if ex, got := p1.Out(o), p2.Out(o); ex != got {
				t.Fatal(errString(o, ex, got))
			}
		}
	}

	iter := len(inputs)
	if iter > 12 {
		iter = 12
	}
	iter = 1 << uint(iter)

	start := time.Now()

	// try all 0
	check()

	// try all 1
	for i := range inputs {
		inputs[i] = true
	}
	check()

	for n := 0; n < iter; n++ {
		for i := range inputs {
			inputs[i] = randBool(rnd)
		}
		check()
	}

	t.Logf("%d + %d gates. %d passes in %v", len(p1.Circuit.Gates), len(p2.Circuit.Gates), iter+2, time.Since(start))
}

// CheckTruthTable checks the outputs of a fresh gate of kind k against
// result, where result[o][i] is the expected value of output o for input
// combination i, input 0 being the most significant bit of i.
//
func CheckTruthTable(t *testing.T, k logicsim.Kind, result [][]bool) {
	t.Helper()
	rows := logicsim.TruthTable(k)
	_, no := k.PinCount()
	if len(result) != no {
		t.Fatalf("%s: %d outputs, expected results for %d", k, no, len(result))
	}
	for o := range result {
		if len(result[o]) != len(rows) {
			t.Fatalf("%s: %d input combinations, output %d has %d results", k, len(rows), o, len(result[o]))
		}
	}
	for i, r := range rows {
		for o, exp := range result {
			if r.Out[o] != exp[i] {
				t.Errorf("%s %v: out%d = %v, got %v", k, r.In, o, exp[i], r.Out[o])
			}
		}
	}
}
