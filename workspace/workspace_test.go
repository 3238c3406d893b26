package workspace_test

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/workspace"
)

func TestMain(m *testing.M) {
	if os.Getenv("DEBUG_TESTS") == "" {
		logrus.SetLevel(logrus.WarnLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}
	os.Exit(m.Run())
}

// lamp returns a circuit INPUT -> NOT -> LED+ with LED- tied to CONST0.
func lamp(t *testing.T) (c *logicsim.Circuit, in, not, led *logicsim.Gate) {
	t.Helper()
	in, not, led = logicsim.NewGate(logicsim.Input), logicsim.NewGate(logicsim.Not), logicsim.NewGate(logicsim.LED)
	gnd := logicsim.NewGate(logicsim.Const0)
	c = logicsim.NewCircuit(in, not, led, gnd)
	for _, w := range [][4]interface{}{
		{in, 0, not, 0},
		{not, 0, led, 0},
		{gnd, 0, led, 1},
	} {
		_, err := c.Connect(w[0].(*logicsim.Gate).ID, w[1].(int), w[2].(*logicsim.Gate).ID, w[3].(int))
		require.NoError(t, err)
	}
	return c, in, not, led
}

func ctx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestSimulateNow(t *testing.T) {
	c, in, not, led := lamp(t)
	w := workspace.New(c, workspace.DefaultConfig())
	defer w.Close()

	r, err := w.SimulateNow(ctx(t))
	require.NoError(t, err)
	assert.True(t, r.Converged)
	s := w.Snapshot()
	assert.True(t, s.Gate(not.ID).Out(0))
	assert.True(t, s.Gate(led.ID).Indicator)
	assert.False(t, s.Wires[0].Signal)
	assert.True(t, s.Wires[1].Signal)

	require.NoError(t, w.Edit(func(c *logicsim.Circuit) error { return c.Toggle(in.ID) }))
	_, err = w.SimulateNow(ctx(t))
	require.NoError(t, err)
	s = w.Snapshot()
	assert.False(t, s.Gate(not.ID).Out(0))
	assert.False(t, s.Gate(led.ID).Indicator)

	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = w.SimulateNow(cctx)
	assert.Equal(t, context.Canceled, err)
}

func TestBackground(t *testing.T) {
	c, in, not, _ := lamp(t)
	w := workspace.New(c, workspace.DefaultConfig())
	defer w.Close()

	for i := 0; i < 101; i++ {
		require.NoError(t, w.Toggle(in.ID))
	}
	require.NoError(t, w.Wait(ctx(t)))
	s := w.Snapshot()
	assert.True(t, s.Gate(in.ID).Out(0), "101 toggles")
	assert.False(t, s.Gate(not.ID).Out(0), "latest request applied")

	assert.Error(t, w.Toggle("nope"))
	assert.Error(t, w.Edit(func(c *logicsim.Circuit) error {
		_, err := c.Connect(in.ID, 0, in.ID, 0)
		return err
	}))
}

func TestIndicator(t *testing.T) {
	c, in, _, led := lamp(t)
	w := workspace.New(c, workspace.DefaultConfig())
	defer w.Close()

	var (
		mu     sync.Mutex
		events []bool
	)
	w.OnIndicator(func(id string, active bool) {
		assert.Equal(t, led.ID, id)
		mu.Lock()
		events = append(events, active)
		mu.Unlock()
	})
	for i := 0; i < 3; i++ {
		_, err := w.SimulateNow(ctx(t))
		require.NoError(t, err)
		require.NoError(t, w.Edit(func(c *logicsim.Circuit) error { return c.Toggle(in.ID) }))
		require.NoError(t, w.Wait(ctx(t)))
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{true, false, true, false}, events)
}

func TestMergeKeepsLayout(t *testing.T) {
	c, in, not, led := lamp(t)
	w := workspace.New(c, workspace.DefaultConfig())
	defer w.Close()

	require.NoError(t, w.Edit(func(c *logicsim.Circuit) error {
		g := c.Gate(not.ID)
		g.Position = logicsim.Point{X: 42, Y: 24}
		g.Suffix = "N1"
		c.Remove(led.ID)
		return nil
	}))
	_, err := w.SimulateNow(ctx(t))
	require.NoError(t, err)
	s := w.Snapshot()
	assert.Nil(t, s.Gate(led.ID))
	assert.Len(t, s.Gates, 3)
	g := s.Gate(not.ID)
	assert.Equal(t, logicsim.Point{X: 42, Y: 24}, g.Position)
	assert.Equal(t, "N1", g.Suffix)
	assert.True(t, g.Out(0))
	assert.False(t, s.Gate(in.ID).Out(0))
}

func TestTick(t *testing.T) {
	clk := logicsim.NewGate(logicsim.Clock)
	cnt := logicsim.NewGate(logicsim.Counter4Bit)
	c := logicsim.NewCircuit(clk, cnt)
	_, err := c.Connect(clk.ID, 0, cnt.ID, 0)
	require.NoError(t, err)

	w := workspace.New(c, workspace.DefaultConfig())
	defer w.Close()
	for i := 0; i < 10; i++ {
		w.Tick()
		_, err := w.SimulateNow(ctx(t))
		require.NoError(t, err)
	}
	s := w.Snapshot()
	assert.False(t, s.Gate(clk.ID).ClockState)
	assert.Equal(t, 5, s.Gate(cnt.ID).OutBits())
}

func TestClockPeriod(t *testing.T) {
	w := workspace.New(nil, workspace.DefaultConfig())
	assert.Equal(t, workspace.DefaultClockPeriod, w.ClockPeriod())
	w.Close()

	c := logicsim.NewCircuit(logicsim.NewGate(logicsim.Clock), logicsim.NewGate(logicsim.Clock))
	c.Gates[1].ClockFrequency = 10
	w = workspace.New(c, workspace.DefaultConfig())
	assert.Equal(t, 50*time.Millisecond, w.ClockPeriod())
	w.Close()

	cfg := workspace.DefaultConfig()
	cfg.ClockPeriod = time.Second
	w = workspace.New(c, cfg)
	assert.Equal(t, time.Second, w.ClockPeriod())
	w.Close()
	w.Close()
}

func TestRunClock(t *testing.T) {
	clk, led := logicsim.NewGate(logicsim.Clock), logicsim.NewGate(logicsim.LED)
	c := logicsim.NewCircuit(clk, led)
	_, err := c.Connect(clk.ID, 0, led.ID, 0)
	require.NoError(t, err)

	cfg := workspace.DefaultConfig()
	cfg.ClockPeriod = 2 * time.Millisecond
	w := workspace.New(c, cfg)
	defer w.Close()
	var n int32
	w.OnIndicator(func(string, bool) { atomic.AddInt32(&n, 1) })

	rctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.Equal(t, context.DeadlineExceeded, w.RunClock(rctx))
	require.NoError(t, w.Wait(ctx(t)))
	assert.NotZero(t, atomic.LoadInt32(&n))
}

func TestSaveLoad(t *testing.T) {
	c, in, not, _ := lamp(t)
	w := workspace.New(c, workspace.DefaultConfig())
	defer w.Close()
	_, err := w.SimulateNow(ctx(t))
	require.NoError(t, err)

	path := t.TempDir() + "/lamp.json"
	require.NoError(t, w.Save(path))

	w2 := workspace.New(nil, workspace.DefaultConfig())
	defer w2.Close()
	require.NoError(t, w2.Load(path))
	require.NoError(t, w2.Wait(ctx(t)))
	assert.Equal(t, w.Snapshot(), w2.Snapshot())

	require.NoError(t, w2.Toggle(in.ID))
	require.NoError(t, w2.Wait(ctx(t)))
	assert.False(t, w2.Snapshot().Gate(not.ID).Out(0))

	assert.Error(t, w2.Load(path+".missing"))
}
