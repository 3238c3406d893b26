// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/sirupsen/logrus"
)

// DefaultMaxIterations is the default iteration cap of a relaxation pass.
//
const DefaultMaxIterations = 20

// Strategy identifies the evaluation strategy used for a pass.
//
type Strategy uint8

// Evaluation strategies.
const (
	Topological Strategy = iota
	Relaxation
)

func (s Strategy) String() string {
	if s == Relaxation {
		return "relaxation"
	}
	return "topological"
}

// Result describes a simulation pass.
//
type Result struct {
	Strategy   Strategy
	Iterations int
	// Converged is false if a relaxation pass hit its iteration cap. The
	// circuit then holds the values computed by the last iteration.
	Converged bool
	// Loops lists the gate IDs of each feedback loop. It is only set when a
	// pass did not converge.
	Loops [][]string
}

// An Evaluator runs one simulation pass over a net, updating its circuit in
// place.
//
type Evaluator interface {
	Evaluate(n *Net) Result
}

// TopologicalEvaluator evaluates every gate once in topological order. Before
// a gate is evaluated, its inputs are updated from its upstream gates, which
// have already been evaluated.
//
// On a cyclic net, only the gates in the partial order are evaluated and the
// result is not converged.
//
type TopologicalEvaluator struct{}

// Evaluate implements Evaluator.
//
func (TopologicalEvaluator) Evaluate(n *Net) Result {
	order, acyclic := n.Order()
	var in, out []bool
	for _, i := range order {
		g := n.c.Gates[i]
		n.propagate(i)
		in, out = grow(in, len(g.Inputs)), grow(out, len(g.Outputs))
		s := step(g, in, out)
		n.merge(i, out)
		commit(g, s, out)
	}
	n.sync()
	return Result{Strategy: Topological, Iterations: 1, Converged: acyclic}
}

// RelaxationEvaluator repeatedly evaluates all gates until no output changes
// or MaxIterations is reached.
//
// Each iteration has separate read and write phases: wire values are
// propagated into input pins, then every gate computes its new state from
// these inputs, then all new states are committed at once. The result does
// not depend on gate order.
//
type RelaxationEvaluator struct {
	MaxIterations int // DefaultMaxIterations if <= 0
}

// Evaluate implements Evaluator.
//
func (e RelaxationEvaluator) Evaluate(n *Net) Result {
	max := e.MaxIterations
	if max <= 0 {
		max = DefaultMaxIterations
	}
	gates := n.c.Gates
	states := make([]State, len(gates))
	outs := make([][]bool, len(gates))
	for i, g := range gates {
		outs[i] = make([]bool, len(g.Outputs))
	}
	var in []bool
	r := Result{Strategy: Relaxation}
	for r.Iterations < max {
		r.Iterations++
		for i := range gates {
			n.propagate(i)
		}
		for i, g := range gates {
			in = grow(in, len(g.Inputs))
			states[i] = step(g, in, outs[i])
		}
		for i := range gates {
			n.merge(i, outs[i])
		}
		changed := false
		for i, g := range gates {
			if commit(g, states[i], outs[i]) {
				changed = true
			}
		}
		if !changed {
			r.Converged = true
			break
		}
	}
	for i := range gates {
		n.propagate(i)
	}
	n.sync()
	return r
}

func grow(b []bool, n int) []bool {
	if cap(b) < n {
		return make([]bool, n)
	}
	return b[:n]
}

// step runs the transfer function of g on its current pins and returns its
// new state. The new outputs are stored in out. g is not modified.
func step(g *Gate, in, out []bool) State {
	for i := range g.Inputs {
		in[i] = g.Inputs[i].Value
	}
	for i := range g.Outputs {
		out[i] = g.Outputs[i].Value
	}
	s := g.State
	transferOf(g.Kind)(&s, bits(in), outputs(out))
	return s
}

// commit stores the new state and outputs of g and reports whether any
// observable value changed.
func commit(g *Gate, s State, out []bool) bool {
	changed := s.Indicator != g.Indicator || s.Display != g.Display
	for i := range g.Outputs {
		if g.Outputs[i].Value != out[i] {
			g.Outputs[i].Value = out[i]
			changed = true
		}
	}
	g.State = s
	return changed
}

// Engine runs simulation passes. The zero value is ready to use.
//
type Engine struct {
	// MaxIterations caps relaxation passes. DefaultMaxIterations if <= 0.
	MaxIterations int
	// Log receives pass statistics at debug level. Defaults to the logrus
	// standard logger.
	Log logrus.FieldLogger
}

func (e *Engine) log() logrus.FieldLogger {
	if e == nil || e.Log == nil {
		return logrus.StandardLogger()
	}
	return e.Log
}

func (e *Engine) maxIterations() int {
	if e == nil || e.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return e.MaxIterations
}

// Run runs one simulation pass on c and updates it in place. Acyclic
// circuits are evaluated with a TopologicalEvaluator, cyclic ones with a
// RelaxationEvaluator.
//
// Run never fails. Wires to missing gates or pins are ignored, gates of
// unknown kind drive all their outputs low, and circuits that do not settle
// keep the values of the last iteration.
//
func (e *Engine) Run(c *Circuit) Result {
	n := NewNet(c)
	var ev Evaluator = TopologicalEvaluator{}
	if _, acyclic := n.Order(); !acyclic {
		ev = RelaxationEvaluator{MaxIterations: e.maxIterations()}
	}
	r := ev.Evaluate(n)
	if !r.Converged {
		r.Loops = n.Loops()
	}
	l := e.log().WithFields(logrus.Fields{
		"gates":      len(c.Gates),
		"wires":      len(c.Wires),
		"strategy":   r.Strategy,
		"iterations": r.Iterations,
	})
	if r.Converged {
		l.Debug("simulation pass")
	} else {
		l.WithField("loops", len(r.Loops)).Debug("simulation pass did not settle")
	}
	return r
}

// Evaluate runs one simulation pass over a copy of the given snapshot and
// returns the updated copies. The Signal field of every returned wire holds
// the evaluated value of its source pin. The arguments are not modified.
//
func Evaluate(gates []*Gate, wires []*Wire) ([]*Gate, []*Wire) {
	c := (&Circuit{Gates: gates, Wires: wires}).Clone()
	new(Engine).Run(c)
	return c.Gates, c.Wires
}
