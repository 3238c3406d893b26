// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A link is a resolved wire.
type link struct {
	wire   int // index in Circuit.Wires
	src    int // source gate index, -1 if missing
	srcPin int
	dst    int // destination gate index
	dstPin int
}

// Net is the resolved dependency graph of a circuit. Gates are addressed by
// their index in the circuit's gate list.
//
// Building a Net never fails: wires that reference missing gates or out of
// range pins are kept aside as inert.
//
type Net struct {
	c     *Circuit
	index map[string]int

	signal [][]link // incoming signal links per destination gate
	power  [][]link // incoming power links per destination gate
	fanout [][]int  // downstream gates per source gate, one entry per signal link
	indeg  []int

	order   []int
	acyclic bool
}

// NewNet builds the dependency graph of c. Only signal wires with an
// existing source gate count as dependencies: power wires are excluded from
// the ordering.
//
func NewNet(c *Circuit) *Net {
	n := &Net{
		c:      c,
		index:  make(map[string]int, len(c.Gates)),
		signal: make([][]link, len(c.Gates)),
		power:  make([][]link, len(c.Gates)),
		fanout: make([][]int, len(c.Gates)),
		indeg:  make([]int, len(c.Gates)),
	}
	for i, g := range c.Gates {
		if _, ok := n.index[g.ID]; !ok {
			n.index[g.ID] = i
		}
	}
	for i, w := range c.Wires {
		mode := n.mode(w)
		l, ok := n.resolve(i, w, mode)
		if !ok {
			continue
		}
		if mode == ModePower {
			n.power[l.dst] = append(n.power[l.dst], l)
			continue
		}
		n.signal[l.dst] = append(n.signal[l.dst], l)
		if l.src >= 0 {
			n.fanout[l.src] = append(n.fanout[l.src], l.dst)
			n.indeg[l.dst]++
		}
	}
	n.order, n.acyclic = n.sort()
	return n
}

// mode returns the effective mode of w. A signal wire whose pin index is past
// the inputs of its destination is classified as for legacy payloads.
func (n *Net) mode(w *Wire) WireMode {
	if w.Mode != ModeSignal {
		return w.Mode
	}
	dst, ok := n.index[w.To]
	if !ok || w.ToPin < len(n.c.Gates[dst].Inputs) {
		return ModeSignal
	}
	var src *Gate
	if i, ok := n.index[w.From]; ok {
		src = n.c.Gates[i]
	}
	return ClassifyWire(src, n.c.Gates[dst], w.ToPin)
}

// resolve maps a wire to gate indices. A wire is inert if its destination
// gate or pin does not exist. A missing source gate drives false.
func (n *Net) resolve(i int, w *Wire, mode WireMode) (link, bool) {
	dst, ok := n.index[w.To]
	if !ok {
		return link{}, false
	}
	g := n.c.Gates[dst]
	pins := g.Inputs
	if mode == ModePower {
		pins = g.Outputs
	}
	if w.ToPin < 0 || w.ToPin >= len(pins) {
		return link{}, false
	}
	src, ok := n.index[w.From]
	if !ok {
		src = -1
	}
	return link{wire: i, src: src, srcPin: w.FromPin, dst: dst, dstPin: w.ToPin}, true
}

// sort runs Kahn's algorithm. The queue is seeded and fed in gate order so
// that the result only depends on the snapshot.
func (n *Net) sort() ([]int, bool) {
	deg := append([]int(nil), n.indeg...)
	queue := make([]int, 0, len(deg))
	for i, d := range deg {
		if d == 0 {
			queue = append(queue, i)
		}
	}
	order := make([]int, 0, len(deg))
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		order = append(order, i)
		for _, o := range n.fanout[i] {
			if deg[o]--; deg[o] == 0 {
				queue = append(queue, o)
			}
		}
	}
	return order, len(order) == len(deg)
}

// Order returns the topological order of the gates and whether it covers all
// gates. In a cyclic circuit, the gates on or downstream of a loop are
// missing from the order.
//
func (n *Net) Order() (order []int, acyclic bool) {
	return n.order, n.acyclic
}

// Circuit returns the circuit n was built from.
//
func (n *Net) Circuit() *Circuit { return n.c }

// value returns the current value of the source pin of l.
func (n *Net) value(l link) bool {
	if l.src < 0 {
		return false
	}
	return n.c.Gates[l.src].Out(l.srcPin)
}

// propagate copies the source values of the signal links of gate i into its
// input pins. Inputs without a link keep their value.
func (n *Net) propagate(i int) {
	g := n.c.Gates[i]
	for _, l := range n.signal[i] {
		g.Inputs[l.dstPin].Value = n.value(l)
	}
}

// merge ORs the source values of the power links of gate i into out.
func (n *Net) merge(i int, out []bool) {
	for _, l := range n.power[i] {
		if n.value(l) {
			out[l.dstPin] = true
		}
	}
}

// sync refreshes the Signal field of every wire from its source pin.
func (n *Net) sync() {
	for _, w := range n.c.Wires {
		w.Signal = false
		if i, ok := n.index[w.From]; ok {
			w.Signal = n.c.Gates[i].Out(w.FromPin)
		}
	}
}
