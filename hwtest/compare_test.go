package hwtest_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwtest"
)

// nandOr builds an OR gate out of three NAND gates.
func nandOr(t *testing.T) hwtest.Part {
	a, b := ls.NewGate(ls.Input), ls.NewGate(ls.Input)
	notA, notB, out := ls.NewGate(ls.Nand), ls.NewGate(ls.Nand), ls.NewGate(ls.Nand)
	c := ls.NewCircuit(a, b, notA, notB, out)
	wire := func(from, to *ls.Gate, pin int) {
		_, err := c.Connect(from.ID, 0, to.ID, pin)
		require.NoError(t, err)
	}
	wire(a, notA, 0)
	wire(a, notA, 1)
	wire(b, notB, 0)
	wire(b, notB, 1)
	wire(notA, out, 0)
	wire(notB, out, 1)
	return hwtest.Part{
		Circuit: c,
		Inputs:  []string{a.ID, b.ID},
		Outputs: []ls.PinRef{{Gate: out.ID, Dir: ls.DirOut}},
	}
}

func TestComparePart(t *testing.T) {
	or, err := hwtest.KindPart(ls.Or)
	require.NoError(t, err)
	hwtest.ComparePart(t, nil, or, nandOr(t))
}

func TestCheckTruthTable(t *testing.T) {
	hwtest.CheckTruthTable(t, ls.Nand, [][]bool{{true, true, true, false}})
}

func TestBench(t *testing.T) {
	in, clk, d := ls.NewGate(ls.Input), ls.NewGate(ls.Clock), ls.NewGate(ls.DFlipFlop)
	c := ls.NewCircuit(in, clk, d)
	_, err := c.Connect(in.ID, 0, d.ID, 0)
	require.NoError(t, err)
	_, err = c.Connect(clk.ID, 0, d.ID, 1)
	require.NoError(t, err)

	b := hwtest.NewBench(t, c)
	b.Set(in.ID, true)
	b.Pulse(clk.ID)
	require.True(t, b.Out(d.ID, 0))
	require.Equal(t, 1, b.Word(d.ID))
}
