// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Loops returns the feedback loops of the signal graph of c: the strongly
// connected components with more than one gate, and gates wired to
// themselves. Each loop lists gate IDs in circuit order, and loops are sorted
// by their first gate.
//
func Loops(c *Circuit) [][]string {
	return NewNet(c).Loops()
}

// Loops returns the feedback loops of n. See the package level Loops
// function.
//
func (n *Net) Loops() [][]string {
	g := simple.NewDirectedGraph()
	self := make([]bool, len(n.c.Gates))
	for i := range n.c.Gates {
		g.AddNode(simple.Node(i))
	}
	for i, fo := range n.fanout {
		for _, o := range fo {
			if o == i {
				self[i] = true
				continue
			}
			g.SetEdge(g.NewEdge(simple.Node(i), simple.Node(o)))
		}
	}
	var loops [][]int
	for _, scc := range topo.TarjanSCC(g) {
		if len(scc) == 1 && !self[scc[0].ID()] {
			continue
		}
		l := make([]int, len(scc))
		for j, v := range scc {
			l[j] = int(v.ID())
		}
		slices.Sort(l)
		loops = append(loops, l)
	}
	slices.SortFunc(loops, func(a, b []int) int { return a[0] - b[0] })

	r := make([][]string, len(loops))
	for i, l := range loops {
		ids := make([]string, len(l))
		for j, x := range l {
			ids[j] = n.c.Gates[x].ID
		}
		r[i] = ids
	}
	return r
}
