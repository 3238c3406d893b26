package logicsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ls "github.com/db47h/logicsim"
)

func outputs(gs []*ls.Gate) [][]bool {
	r := make([][]bool, len(gs))
	for i, g := range gs {
		for _, p := range g.Outputs {
			r[i] = append(r[i], p.Value)
		}
	}
	return r
}

func TestEvaluate_determinism(t *testing.T) {
	b := newBuilder(t)
	in := b.inputs(3)
	fa := b.gate(ls.FullAdder)
	xor := b.gate(ls.Xor)
	for i, g := range in {
		b.wire(g, 0, fa, i)
	}
	b.wire(fa, 0, xor, 0)
	b.wire(fa, 1, xor, 1)
	require.NoError(t, b.c.Set(in[0].ID, true))
	require.NoError(t, b.c.Set(in[2].ID, true))

	gs, ws := ls.Evaluate(b.c.Gates, b.c.Wires)
	for i := 0; i < 10; i++ {
		gs2, ws2 := ls.Evaluate(gs, ws)
		assert.Equal(t, outputs(gs), outputs(gs2))
		assert.Equal(t, gs, gs2)
		assert.Equal(t, ws, ws2)
	}
	assert.False(t, gs[3].Out(0))
	assert.True(t, gs[3].Out(1))
	assert.True(t, gs[4].Out(0))
}

func TestEvaluate_copy(t *testing.T) {
	b := newBuilder(t)
	in := b.gate(ls.Input)
	not := b.gate(ls.Not)
	w := b.wire(in, 0, not, 0)

	gs, ws := ls.Evaluate(b.c.Gates, b.c.Wires)
	assert.True(t, gs[1].Out(0))
	assert.False(t, not.Out(0), "arguments are not modified")
	assert.NotSame(t, w, ws[0])

	require.NoError(t, b.c.Toggle(in.ID))
	gs, ws = ls.Evaluate(b.c.Gates, b.c.Wires)
	assert.False(t, gs[1].Out(0))
	assert.True(t, ws[0].Signal)
	assert.False(t, w.Signal)
}

// A chain of NOT gates listed in reverse order settles in a single pass.
func TestEvaluate_topological(t *testing.T) {
	b := newBuilder(t)
	in := b.gate(ls.Input)
	n1, n2, n3 := b.gate(ls.Not), b.gate(ls.Not), b.gate(ls.Not)
	probe := b.gate(ls.Output)
	b.wire(in, 0, n1, 0)
	b.wire(n1, 0, n2, 0)
	b.wire(n2, 0, n3, 0)
	b.wire(n3, 0, probe, 0)
	c := ls.NewCircuit(probe, n3, n2, n1, in)
	c.Wires = b.c.Wires

	net := ls.NewNet(c)
	order, acyclic := net.Order()
	require.True(t, acyclic)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, order)

	var e ls.Engine
	r := e.Run(c)
	assert.Equal(t, ls.Topological, r.Strategy)
	assert.Equal(t, 1, r.Iterations)
	assert.True(t, r.Converged)
	assert.True(t, probe.In(0))

	require.NoError(t, c.Toggle(in.ID))
	e.Run(c)
	assert.False(t, probe.In(0))
	for _, w := range c.Wires {
		assert.Equal(t, c.Gate(w.From).Out(w.FromPin), w.Signal)
	}
}

func TestEvaluate_ringOscillator(t *testing.T) {
	b := newBuilder(t)
	n := []*ls.Gate{b.gate(ls.Not), b.gate(ls.Not), b.gate(ls.Not)}
	for i := range n {
		b.wire(n[i], 0, n[(i+1)%3], 0)
	}

	c1, c2 := b.c.Clone(), b.c.Clone()
	var e ls.Engine
	r := e.Run(c1)
	assert.Equal(t, ls.Relaxation, r.Strategy)
	assert.False(t, r.Converged)
	assert.Equal(t, ls.DefaultMaxIterations, r.Iterations)
	require.Len(t, r.Loops, 1)
	assert.ElementsMatch(t, []string{n[0].ID, n[1].ID, n[2].ID}, r.Loops[0])

	e.Run(c2)
	assert.Equal(t, outputs(c1.Gates), outputs(c2.Gates))

	e.MaxIterations = 3
	r = e.Run(c1)
	assert.Equal(t, 3, r.Iterations)
}

func TestEvaluate_srNorLatch(t *testing.T) {
	b := newBuilder(t)
	in := b.inputs(2)
	s, r := in[0], in[1]
	nq, q := b.gate(ls.Nor), b.gate(ls.Nor)
	b.wire(s, 0, nq, 0)
	b.wire(q, 0, nq, 1)
	b.wire(nq, 0, q, 0)
	b.wire(r, 0, q, 1)
	bench := b.bench()

	bench.Set(s.ID, true)
	res := bench.Run()
	require.True(t, res.Converged)
	assert.Equal(t, ls.Relaxation, res.Strategy)
	assert.True(t, bench.Out(q.ID, 0))
	assert.False(t, bench.Out(nq.ID, 0))

	bench.Set(s.ID, false)
	res = bench.Run()
	require.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.True(t, bench.Out(q.ID, 0), "hold")

	bench.Set(r.ID, true)
	res = bench.Run()
	require.True(t, res.Converged)
	assert.False(t, bench.Out(q.ID, 0))
	assert.True(t, bench.Out(nq.ID, 0))
}

// A D flip-flop fed back through its Q̄ output divides the clock by two.
func TestEvaluate_cyclicSequential(t *testing.T) {
	b := newBuilder(t)
	clk := b.gate(ls.Clock)
	dff := b.gate(ls.DFlipFlop)
	b.wire(dff, 1, dff, 0)
	b.wire(clk, 0, dff, 1)
	bench := b.bench()
	for i := 1; i <= 4; i++ {
		bench.Pulse(clk.ID)
		assert.Equal(t, i%2 == 1, bench.Out(dff.ID, 0), "pulse %d", i)
	}
	assert.Equal(t, [][]string{{dff.ID}}, ls.Loops(b.c))
}

func TestEvaluate_power(t *testing.T) {
	b := newBuilder(t)
	bat := b.gate(ls.Battery)
	c0 := b.gate(ls.Const0)
	c0b := b.gate(ls.Const0)
	p1, p2 := b.gate(ls.Output), b.gate(ls.Output)
	pw, err := b.c.ConnectPins(
		ls.PinRef{Gate: bat.ID, Dir: ls.DirOut, Index: 0},
		ls.PinRef{Gate: c0.ID, Dir: ls.DirOut, Index: 0})
	require.NoError(t, err)
	require.Equal(t, ls.ModePower, pw.Mode)
	_, err = b.c.ConnectPins(
		ls.PinRef{Gate: c0b.ID, Dir: ls.DirOut, Index: 0},
		ls.PinRef{Gate: c0.ID, Dir: ls.DirOut, Index: 0})
	require.NoError(t, err)
	b.wire(c0, 0, p1, 0)
	b.wire(c0b, 0, p2, 0)

	net := ls.NewNet(b.c)
	_, acyclic := net.Order()
	require.True(t, acyclic, "power wires do not create dependencies")

	b.bench().Run()
	assert.True(t, c0.Out(0), "OR-merged with the battery")
	assert.True(t, p1.In(0))
	assert.False(t, c0b.Out(0))
	assert.False(t, p2.In(0))
	assert.True(t, pw.Signal)
	assert.False(t, c0.In(0), "no input pin touched")
}

func TestEvaluate_powerWithoutMode(t *testing.T) {
	bat, npn := ls.NewGate(ls.Battery), ls.NewGate(ls.BJTNPN)
	ws := []*ls.Wire{
		// index 1 is past the single base input: emitter output
		{ID: "w1", From: bat.ID, FromPin: 0, To: npn.ID, ToPin: 1},
	}
	gs, ws := ls.Evaluate([]*ls.Gate{bat, npn}, ws)
	require.Len(t, gs, 2)
	assert.False(t, gs[1].In(0), "base untouched")
	assert.False(t, gs[1].Out(0))
	assert.True(t, gs[1].Out(1), "battery + OR-merged into E")
	assert.True(t, ws[0].Signal)

	// no parallel driver on either end: inert
	in, not := ls.NewGate(ls.Input), ls.NewGate(ls.Not)
	in.Outputs[0].Value = true
	gs, _ = ls.Evaluate([]*ls.Gate{in, not}, []*ls.Wire{
		{ID: "w2", From: in.ID, FromPin: 0, To: not.ID, ToPin: 1},
	})
	assert.True(t, gs[1].Out(0))
}

func TestEvaluate_dangling(t *testing.T) {
	b := newBuilder(t)
	in := b.gate(ls.Input)
	and := b.gate(ls.And)
	require.NoError(t, b.c.Set(in.ID, true))
	b.c.Wires = append(b.c.Wires,
		&ls.Wire{ID: "w1", From: in.ID, FromPin: 0, To: and.ID, ToPin: 5},
		&ls.Wire{ID: "w2", From: in.ID, FromPin: 7, To: and.ID, ToPin: 0},
		&ls.Wire{ID: "w3", From: "ghost", FromPin: 0, To: and.ID, ToPin: 1},
		&ls.Wire{ID: "w4", From: in.ID, FromPin: 0, To: "ghost", ToPin: 0},
		&ls.Wire{ID: "w5", From: in.ID, FromPin: 0, To: and.ID, ToPin: 3, Mode: ls.ModePower},
	)
	and.Inputs[0].Value = true
	and.Inputs[1].Value = true

	gs, ws := ls.Evaluate(b.c.Gates, b.c.Wires)
	g := gs[1]
	require.Len(t, g.Inputs, 2)
	require.Len(t, g.Outputs, 1)
	assert.False(t, g.In(0), "out of range source pin reads false")
	assert.False(t, g.In(1), "missing source gate drives false")
	assert.False(t, g.Out(0))
	assert.Len(t, ws, 5)
	assert.True(t, ws[0].Signal)
	assert.False(t, ws[1].Signal)
	assert.False(t, ws[2].Signal)
}

func TestEvaluate_empty(t *testing.T) {
	gs, ws := ls.Evaluate(nil, nil)
	assert.Empty(t, gs)
	assert.Empty(t, ws)
}

func TestRelaxationEvaluator_order(t *testing.T) {
	build := func(rev bool) (*ls.Circuit, *ls.Gate) {
		b := newBuilder(t)
		in := b.inputs(2)
		nq, q := b.gate(ls.Nor), b.gate(ls.Nor)
		b.wire(in[0], 0, nq, 0)
		b.wire(q, 0, nq, 1)
		b.wire(nq, 0, q, 0)
		b.wire(in[1], 0, q, 1)
		require.NoError(t, b.c.Set(in[0].ID, true))
		if rev {
			gs := b.c.Gates
			for i, j := 0, len(gs)-1; i < j; i, j = i+1, j-1 {
				gs[i], gs[j] = gs[j], gs[i]
			}
		}
		return b.c, q
	}
	c1, q1 := build(false)
	c2, q2 := build(true)
	r1 := ls.RelaxationEvaluator{}.Evaluate(ls.NewNet(c1))
	r2 := ls.RelaxationEvaluator{}.Evaluate(ls.NewNet(c2))
	assert.Equal(t, r1.Iterations, r2.Iterations)
	assert.Equal(t, q1.Out(0), q2.Out(0))
}
