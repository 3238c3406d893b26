package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/logicsim"
)

func TestMerge(t *testing.T) {
	in, not, sw := logicsim.NewGate(logicsim.Input), logicsim.NewGate(logicsim.Not), logicsim.NewGate(logicsim.Switch)
	live := logicsim.NewCircuit(in, not, sw)
	w0, err := live.Connect(in.ID, 0, not.ID, 0)
	require.NoError(t, err)

	ev := live.Clone()
	new(logicsim.Engine).Run(ev)
	require.True(t, ev.Gate(not.ID).Out(0))
	require.True(t, ev.Wires[0].ID == w0.ID)

	// edits made while the pass was running
	not.Position = logicsim.Point{X: 10, Y: 20}
	not.Description = "inverter"
	require.NoError(t, live.Toggle(in.ID))
	require.NoError(t, live.Toggle(sw.ID))
	require.True(t, live.Remove(sw.ID))

	merge(live, ev)
	require.Len(t, live.Gates, 2, "deleted gates stay deleted")
	g := live.Gate(not.ID)
	assert.NotSame(t, not, g)
	assert.True(t, g.Out(0))
	assert.Equal(t, logicsim.Point{X: 10, Y: 20}, g.Position)
	assert.Equal(t, "inverter", g.Description)
	assert.True(t, live.Gate(in.ID).Out(0), "user toggle kept")
	require.Len(t, live.Wires, 1)
	assert.Same(t, w0, live.Wires[0])
}

func TestApplyDropsStale(t *testing.T) {
	in, not := logicsim.NewGate(logicsim.Input), logicsim.NewGate(logicsim.Not)
	c := logicsim.NewCircuit(in, not)
	_, err := c.Connect(in.ID, 0, not.ID, 0)
	require.NoError(t, err)

	w := New(c, DefaultConfig())
	defer w.Close()

	older := w.Snapshot()
	new(logicsim.Engine).Run(older) // NOT out = true
	require.NoError(t, w.Toggle(in.ID))
	newer := w.Snapshot()
	new(logicsim.Engine).Run(newer) // NOT out = false

	w.mu.Lock()
	gen := w.gen + 2
	w.gen = gen
	w.mu.Unlock()

	w.apply(gen, newer)
	w.apply(gen-1, older)
	assert.False(t, w.Snapshot().Gate(not.ID).Out(0))
}
