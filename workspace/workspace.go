// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package workspace drives the simulation of an interactive circuit.
//
// A Workspace owns the live circuit. Editing methods mutate it under a lock
// and request a simulation pass. Passes run on a single background worker
// over a snapshot of the circuit; their results are merged back into the live
// circuit, newest request first:
//
//	w := workspace.New(c, workspace.DefaultConfig())
//	defer w.Close()
//	w.OnIndicator(func(id string, active bool) { ... })
//	w.Toggle(inputID) // simulates in the background
//
package workspace

import (
	"context"
	"sync"
	"time"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// IndicatorFunc is called when an LED, bulb or buzzer turns on or off.
//
type IndicatorFunc func(id string, active bool)

type request struct {
	gen uint64
	c   *logicsim.Circuit
}

// A Workspace is the authoritative owner of a circuit.
//
// Callers must make sure to call Close once the workspace is no longer needed
// in order to stop the simulation worker.
//
type Workspace struct {
	cfg    Config
	engine *logicsim.Engine
	log    logrus.FieldLogger

	mu      sync.Mutex
	c       *logicsim.Circuit
	gen     uint64 // last requested generation
	applied uint64 // last applied generation
	settled uint64 // last generation whose indicator events were delivered
	lit     map[string]bool
	onInd   IndicatorFunc
	waiters []waiter
	closed  bool

	req  chan request // one slot, latest wins
	done chan struct{}
	wg   sync.WaitGroup
}

type waiter struct {
	gen uint64
	ch  chan struct{}
}

// New returns a workspace owning c and starts its simulation worker. A nil
// circuit starts empty.
//
func New(c *logicsim.Circuit, cfg Config) *Workspace {
	if c == nil {
		c = logicsim.NewCircuit()
	}
	log := logrus.WithField("component", "workspace")
	w := &Workspace{
		cfg:    cfg,
		engine: &logicsim.Engine{MaxIterations: cfg.MaxIterations, Log: log},
		log:    log,
		c:      c,
		lit:    make(map[string]bool),
		req:    make(chan request, 1),
		done:   make(chan struct{}),
	}
	for _, g := range c.Gates {
		if g.Kind.IsIndicator() {
			w.lit[g.ID] = g.Indicator
		}
	}
	w.wg.Add(1)
	go w.worker()
	return w
}

// Close stops the simulation worker. Pending requests are discarded.
//
func (w *Workspace) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()
	w.wg.Wait()
}

func (w *Workspace) worker() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case r := <-w.req:
			w.engine.Run(r.c)
			w.apply(r.gen, r.c)
		}
	}
}

// OnIndicator sets the function called when an indicator changes state. It
// is called from the goroutine that applied the simulation result, without
// holding any lock.
//
func (w *Workspace) OnIndicator(fn IndicatorFunc) {
	w.mu.Lock()
	w.onInd = fn
	w.mu.Unlock()
}

// Snapshot returns a copy of the live circuit.
//
func (w *Workspace) Snapshot() *logicsim.Circuit {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.c.Clone()
}

// Edit runs fn on the live circuit under the workspace lock, then requests a
// simulation pass. fn must not retain c. If fn returns an error, no pass is
// requested.
//
func (w *Workspace) Edit(fn func(c *logicsim.Circuit) error) error {
	w.mu.Lock()
	if err := fn(w.c); err != nil {
		w.mu.Unlock()
		return err
	}
	w.simulate()
	w.mu.Unlock()
	return nil
}

// Toggle flips an INPUT, BUTTON or SWITCH gate and requests a pass.
//
func (w *Workspace) Toggle(id string) error {
	return w.Edit(func(c *logicsim.Circuit) error { return c.Toggle(id) })
}

// Replace swaps the live circuit for c and requests a pass.
//
func (w *Workspace) Replace(c *logicsim.Circuit) {
	w.mu.Lock()
	w.c = c
	w.lit = make(map[string]bool)
	for _, g := range c.Gates {
		if g.Kind.IsIndicator() {
			w.lit[g.ID] = g.Indicator
		}
	}
	w.simulate()
	w.mu.Unlock()
}

// Simulate requests a simulation pass on the background worker and returns
// immediately. A request that the worker has not picked up yet is replaced.
//
func (w *Workspace) Simulate() {
	w.mu.Lock()
	w.simulate()
	w.mu.Unlock()
}

// simulate must be called with w.mu held.
func (w *Workspace) simulate() {
	if w.closed {
		return
	}
	w.gen++
	r := request{gen: w.gen, c: w.c.Clone()}
	for {
		select {
		case w.req <- r:
			return
		default:
		}
		select {
		case old := <-w.req:
			w.log.WithField("generation", old.gen).Debug("simulation request superseded")
		default:
		}
	}
}

// SimulateNow runs a simulation pass synchronously and applies it.
//
func (w *Workspace) SimulateNow(ctx context.Context) (logicsim.Result, error) {
	if err := ctx.Err(); err != nil {
		return logicsim.Result{}, err
	}
	w.mu.Lock()
	w.gen++
	gen, c := w.gen, w.c.Clone()
	w.mu.Unlock()

	r := w.engine.Run(c)
	if err := ctx.Err(); err != nil {
		return r, err
	}
	w.apply(gen, c)
	return r, nil
}

// Wait blocks until the result of the latest request, or of a newer one, has
// been applied.
//
func (w *Workspace) Wait(ctx context.Context) error {
	w.mu.Lock()
	if w.settled >= w.gen {
		w.mu.Unlock()
		return nil
	}
	if w.closed {
		w.mu.Unlock()
		return errors.New("workspace closed")
	}
	wt := waiter{gen: w.gen, ch: make(chan struct{})}
	w.waiters = append(w.waiters, wt)
	w.mu.Unlock()

	select {
	case <-wt.ch:
		return nil
	case <-w.done:
		return errors.New("workspace closed")
	case <-ctx.Done():
		return ctx.Err()
	}
}

type event struct {
	id     string
	active bool
}

// apply merges an evaluated snapshot into the live circuit. Results older
// than the last applied one are dropped.
func (w *Workspace) apply(gen uint64, ev *logicsim.Circuit) {
	w.mu.Lock()
	if gen <= w.applied {
		w.mu.Unlock()
		w.log.WithFields(logrus.Fields{"generation": gen, "applied": w.applied}).Debug("stale simulation result dropped")
		return
	}
	w.applied = gen
	merge(w.c, ev)

	var events []event
	for _, g := range w.c.Gates {
		if !g.Kind.IsIndicator() {
			continue
		}
		if prev, ok := w.lit[g.ID]; !ok || prev != g.Indicator {
			w.lit[g.ID] = g.Indicator
			if ok || g.Indicator {
				events = append(events, event{g.ID, g.Indicator})
			}
		}
	}
	fn := w.onInd
	w.mu.Unlock()

	if fn != nil {
		for _, e := range events {
			fn(e.id, e.active)
		}
	}

	w.mu.Lock()
	if gen > w.settled {
		w.settled = gen
	}
	ws := w.waiters[:0]
	for _, wt := range w.waiters {
		if wt.gen <= w.settled {
			close(wt.ch)
			continue
		}
		ws = append(ws, wt)
	}
	w.waiters = ws
	w.mu.Unlock()
}

// merge copies simulation results from ev into live. Gates and wires are
// matched by ID. Gates missing from live were deleted after the snapshot was
// taken and are not restored. Layout metadata and user controlled values of
// live gates are kept.
func merge(live, ev *logicsim.Circuit) {
	idx := make(map[string]int, len(live.Gates))
	for i, g := range live.Gates {
		idx[g.ID] = i
	}
	for _, g := range ev.Gates {
		i, ok := idx[g.ID]
		if !ok {
			continue
		}
		cur := live.Gates[i]
		if len(cur.Inputs) != len(g.Inputs) || len(cur.Outputs) != len(g.Outputs) {
			continue
		}
		g.Position = cur.Position
		g.Suffix = cur.Suffix
		g.Description = cur.Description
		g.Value = cur.Value
		switch g.Kind {
		case logicsim.Input:
			for j := range g.Outputs {
				g.Outputs[j].Value = cur.Outputs[j].Value
			}
		case logicsim.Button, logicsim.Switch:
			g.Latched = cur.Latched
		case logicsim.Clock:
			g.ClockState = cur.ClockState
			g.ClockFrequency = cur.ClockFrequency
		}
		live.Gates[i] = g
	}
	ws := make(map[string]*logicsim.Wire, len(ev.Wires))
	for _, wr := range ev.Wires {
		ws[wr.ID] = wr
	}
	for _, wr := range live.Wires {
		if e, ok := ws[wr.ID]; ok {
			wr.Signal = e.Signal
		}
	}
}

// Tick toggles the state of every CLOCK gate and requests a pass.
//
func (w *Workspace) Tick() {
	w.mu.Lock()
	tick(w.c)
	w.simulate()
	w.mu.Unlock()
}

func tick(c *logicsim.Circuit) {
	for _, g := range c.Gates {
		if g.Kind == logicsim.Clock {
			g.ClockState = !g.ClockState
		}
	}
}

// DefaultClockPeriod is the tick period used when neither the configuration
// nor the circuit set one.
//
const DefaultClockPeriod = 500 * time.Millisecond

// ClockPeriod returns the delay between two ticks: the configured period,
// or half the period of the fastest CLOCK gate.
//
func (w *Workspace) ClockPeriod() time.Duration {
	if w.cfg.ClockPeriod > 0 {
		return w.cfg.ClockPeriod
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	f := 0.0
	for _, g := range w.c.Gates {
		if g.Kind == logicsim.Clock && g.ClockFrequency > f {
			f = g.ClockFrequency
		}
	}
	if f <= 0 {
		return DefaultClockPeriod
	}
	return time.Duration(float64(time.Second) / (2 * f))
}

// RunClock ticks the clocks until ctx is done or the workspace is closed.
//
func (w *Workspace) RunClock(ctx context.Context) error {
	t := time.NewTicker(w.ClockPeriod())
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		case <-t.C:
			w.Tick()
		}
	}
}

// Save writes the live circuit to the named file.
//
func (w *Workspace) Save(path string) error {
	return Save(path, w.Snapshot())
}

// Load replaces the live circuit with the one read from the named file.
//
func (w *Workspace) Load(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	w.Replace(c)
	return nil
}
