package logicsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ls "github.com/db47h/logicsim"
)

func TestIndicators(t *testing.T) {
	for _, k := range []ls.Kind{ls.LED, ls.Bulb, ls.Buzzer} {
		rows := ls.TruthTable(k)
		require.Len(t, rows, 4)
		for _, r := range rows {
			assert.Equal(t, r.In[0] && !r.In[1], r.State.Indicator, "%s %v", k, r.In)
			assert.Empty(t, r.Out)
		}
	}
}

func TestSwitch(t *testing.T) {
	for _, k := range []ls.Kind{ls.Switch, ls.Button} {
		t.Run(k.String(), func(t *testing.T) {
			b := newBuilder(t)
			bat := b.gate(ls.Battery)
			sw := b.gate(k)
			led := b.gate(ls.LED)
			b.wire(bat, 0, sw, 0)
			b.wire(sw, 0, led, 0)
			b.wire(bat, 1, led, 1)
			bench := b.bench()

			bench.Run()
			assert.False(t, bench.Gate(led.ID).Indicator, "open")
			require.NoError(t, b.c.Toggle(sw.ID))
			bench.Run()
			assert.True(t, bench.Gate(led.ID).Indicator, "closed")
			bench.Run()
			assert.True(t, bench.Gate(led.ID).Indicator, "stays closed")
			require.NoError(t, b.c.Set(sw.ID, false))
			bench.Run()
			assert.False(t, bench.Gate(led.ID).Indicator)
		})
	}
}

func TestRelayCircuit(t *testing.T) {
	b := newBuilder(t)
	in := b.gate(ls.Input)
	bat := b.gate(ls.Battery)
	rl := b.gate(ls.Relay)
	no, nc := b.gate(ls.LED), b.gate(ls.LED)
	gnd := b.gate(ls.Const0)
	b.wire(in, 0, rl, 0)
	b.wire(bat, 0, rl, 1)
	b.wire(rl, 1, no, 0)
	b.wire(gnd, 0, no, 1)
	b.wire(rl, 2, nc, 0)
	b.wire(gnd, 0, nc, 1)
	bench := b.bench()

	bench.Run()
	assert.False(t, bench.Gate(no.ID).Indicator)
	assert.True(t, bench.Gate(nc.ID).Indicator)
	bench.Set(in.ID, true)
	bench.Run()
	assert.True(t, bench.Gate(no.ID).Indicator)
	assert.False(t, bench.Gate(nc.ID).Indicator)
}

func TestTransistorSwitch(t *testing.T) {
	b := newBuilder(t)
	in := b.gate(ls.Input)
	q := b.gate(ls.BJTNPN)
	p := b.gate(ls.MOSFETP)
	b.wire(in, 0, q, 0)
	b.wire(in, 0, p, 0)
	bench := b.bench()
	for _, v := range []bool{false, true, false} {
		bench.Set(in.ID, v)
		bench.Run()
		assert.Equal(t, v, bench.Out(q.ID, 0))
		assert.Equal(t, v, bench.Out(q.ID, 1))
		assert.Equal(t, !v, bench.Out(p.ID, 0))
		assert.Equal(t, !v, bench.Out(p.ID, 1))
	}
}

func TestDisplay8Bit(t *testing.T) {
	b := newBuilder(t)
	d := b.gate(ls.Display8Bit)
	bench := b.bench()
	// B7..B0 = 1010 0101
	for i, v := range []bool{T, F, T, F, F, T, F, T} {
		bench.SetInput(d.ID, i, v)
	}
	bench.Run()
	assert.Equal(t, 0, bench.Gate(d.ID).Display, "unpowered")

	bench.SetInput(d.ID, 8, true)
	bench.Run()
	assert.Equal(t, 0xA5, bench.Gate(d.ID).Display)

	bench.SetInput(d.ID, 9, true)
	bench.Run()
	assert.Equal(t, 0, bench.Gate(d.ID).Display, "- must be low")
}
