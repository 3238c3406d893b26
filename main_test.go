package logicsim_test

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/hwtest"
)

func TestMain(m *testing.M) {
	// Set DEBUG_TESTS=1 to see pass statistics: DEBUG_TESTS=1 go test -v .
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}
	os.Exit(m.Run())
}

// builder builds test circuits and fails the test on error.
type builder struct {
	t *testing.T
	c *ls.Circuit
}

func newBuilder(t *testing.T) *builder {
	return &builder{t: t, c: ls.NewCircuit()}
}

func (b *builder) gate(k ls.Kind) *ls.Gate {
	return b.gateN(k, 0)
}

func (b *builder) gateN(k ls.Kind, inputs int) *ls.Gate {
	b.t.Helper()
	g := ls.NewGateN(k, inputs)
	require.NoError(b.t, b.c.Add(g))
	return g
}

func (b *builder) inputs(n int) []*ls.Gate {
	gs := make([]*ls.Gate, n)
	for i := range gs {
		gs[i] = b.gate(ls.Input)
	}
	return gs
}

func (b *builder) wire(from *ls.Gate, fromPin int, to *ls.Gate, toPin int) *ls.Wire {
	b.t.Helper()
	w, err := b.c.Connect(from.ID, fromPin, to.ID, toPin)
	require.NoError(b.t, err)
	return w
}

func (b *builder) bench() *hwtest.Bench {
	return hwtest.NewBench(b.t, b.c)
}

// part returns the circuit as a black box with the given input gates and
// all outputs of the given output gates.
func (b *builder) part(ins []*ls.Gate, outs ...*ls.Gate) hwtest.Part {
	p := hwtest.Part{Circuit: b.c}
	for _, g := range ins {
		p.Inputs = append(p.Inputs, g.ID)
	}
	for _, g := range outs {
		for i := range g.Outputs {
			p.Outputs = append(p.Outputs, ls.PinRef{Gate: g.ID, Dir: ls.DirOut, Index: i})
		}
	}
	return p
}

func kindPart(t *testing.T, k ls.Kind) hwtest.Part {
	t.Helper()
	p, err := hwtest.KindPart(k)
	require.NoError(t, err)
	return p
}
