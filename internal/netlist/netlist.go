// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package netlist parses a line oriented text description of a circuit.
//
// Each non blank line is one of:
//
//	name: KIND          declares a gate
//	name: KIND/N        declares a gate with N inputs (AND, OR, XOR, ...)
//	src -> dst          connects pins
//	name = 1            sets an INPUT, BUTTON, SWITCH or CLOCK gate
//	name.in[i] = 0      sets a free input pin
//	name.mem = 1,2,3,4  loads RAM or ROM contents
//
// Text after a # is a comment. A pin reference is a gate name optionally
// followed by a dot and either a pin label (e.g. g.CLK), in or out with an
// optional index (g.in[2]), or a bus range (g.out[0..3], g.in[7..4]). A bare
// gate name refers to output 0 on the left side of an arrow and to input 0 on
// the right side.
//
// Connecting an output to an output creates a power wire.
//
//	bat: BATTERY
//	sw:  SWITCH
//	led: LED
//	bat.out[0] -> sw
//	sw -> led
//	bat.out[1] -> led.in[1]
//	sw = 1
//
package netlist

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// A Netlist is a parsed circuit along with the gate names used in the
// source.
//
type Netlist struct {
	Circuit *logicsim.Circuit
	Names   map[string]*logicsim.Gate
	Order   []string // gate names in declaration order
}

// Gate returns the gate declared with the given name or nil.
//
func (n *Netlist) Gate(name string) *logicsim.Gate {
	return n.Names[name]
}

// Parse parses a netlist. Gate suffixes are set to their declared name.
//
func Parse(r io.Reader) (*Netlist, error) {
	n := &Netlist{
		Circuit: logicsim.NewCircuit(),
		Names:   make(map[string]*logicsim.Gate),
	}
	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		l := s.Text()
		if i := strings.IndexByte(l, '#'); i >= 0 {
			l = l[:i]
		}
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if err := n.parseLine(l); err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read netlist")
	}
	return n, nil
}

// ParseString is a shorthand for Parse(strings.NewReader(s)).
//
func ParseString(s string) (*Netlist, error) {
	return Parse(strings.NewReader(s))
}

func (n *Netlist) parseLine(l string) error {
	if i := strings.Index(l, "->"); i >= 0 {
		return n.connect(strings.TrimSpace(l[:i]), strings.TrimSpace(l[i+2:]))
	}
	if i := strings.IndexByte(l, '='); i >= 0 {
		return n.assign(strings.TrimSpace(l[:i]), strings.TrimSpace(l[i+1:]))
	}
	if i := strings.IndexByte(l, ':'); i >= 0 {
		return n.declare(strings.TrimSpace(l[:i]), strings.TrimSpace(l[i+1:]))
	}
	return errors.Errorf("syntax error: %q", l)
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}

func (n *Netlist) declare(name, kind string) error {
	if !validName(name) {
		return errors.Errorf("invalid gate name %q", name)
	}
	if n.Names[name] != nil {
		return errors.Errorf("gate %s redeclared", name)
	}
	inputs := 0
	if i := strings.IndexByte(kind, '/'); i >= 0 {
		v, err := strconv.Atoi(strings.TrimSpace(kind[i+1:]))
		if err != nil || v < 2 {
			return errors.Errorf("invalid input count in %q", kind)
		}
		inputs, kind = v, strings.TrimSpace(kind[:i])
	}
	k := logicsim.ParseKind(kind)
	if k == logicsim.Unknown {
		return errors.Errorf("unknown gate kind %q", kind)
	}
	g := logicsim.NewGateN(k, inputs)
	if inputs > 0 && len(g.Inputs) != inputs {
		return errors.Errorf("%s does not accept an input count", k)
	}
	g.Suffix = name
	if err := n.Circuit.Add(g); err != nil {
		return err
	}
	n.Names[name] = g
	n.Order = append(n.Order, name)
	return nil
}

func (n *Netlist) connect(src, dst string) error {
	as, err := n.pins(src, logicsim.DirOut)
	if err != nil {
		return err
	}
	bs, err := n.pins(dst, logicsim.DirIn)
	if err != nil {
		return err
	}
	switch {
	case len(as) == len(bs):
	case len(as) == 1:
		// one to many
		for len(as) < len(bs) {
			as = append(as, as[0])
		}
	default:
		return errors.Errorf("pin count mismatch in %s -> %s", src, dst)
	}
	for i := range as {
		if _, err := n.Circuit.ConnectPins(as[i], bs[i]); err != nil {
			return errors.Wrapf(err, "%s -> %s", src, dst)
		}
	}
	return nil
}

func (n *Netlist) assign(lhs, rhs string) error {
	name, pin := lhs, ""
	if i := strings.IndexByte(lhs, '.'); i >= 0 {
		name, pin = lhs[:i], lhs[i+1:]
	}
	g := n.Names[name]
	if g == nil {
		return errors.Errorf("undeclared gate %s", name)
	}
	if pin == "mem" {
		var words []uint8
		for _, f := range strings.Split(rhs, ",") {
			v, err := strconv.ParseUint(strings.TrimSpace(f), 0, 4)
			if err != nil {
				return errors.Wrapf(err, "memory word %q", f)
			}
			words = append(words, uint8(v))
		}
		return n.Circuit.LoadMemory(g.ID, words...)
	}
	v, err := parseBool(rhs)
	if err != nil {
		return err
	}
	if pin == "" {
		if g.Kind == logicsim.Clock {
			g.ClockState = v
			return nil
		}
		return n.Circuit.Set(g.ID, v)
	}
	refs, err := n.pins(lhs, logicsim.DirIn)
	if err != nil {
		return err
	}
	for _, r := range refs {
		if r.Dir != logicsim.DirIn {
			return errors.Errorf("%s is not an input pin", lhs)
		}
		if err := n.Circuit.SetInput(g.ID, r.Index, v); err != nil {
			return err
		}
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.Errorf("invalid value %q", s)
	}
	return v, nil
}

// pins resolves a pin reference. def is the direction of a bare gate name.
func (n *Netlist) pins(ref string, def logicsim.Direction) ([]logicsim.PinRef, error) {
	name, pin := ref, ""
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		name, pin = ref[:i], ref[i+1:]
	}
	g := n.Names[name]
	if g == nil {
		return nil, errors.Errorf("undeclared gate %s", name)
	}
	if pin == "" {
		return []logicsim.PinRef{{Gate: g.ID, Dir: def, Index: 0}}, nil
	}
	bus, idx, err := expandRange(pin)
	if err != nil {
		return nil, errors.Wrapf(err, "pin %s", ref)
	}
	var d logicsim.Direction
	switch bus {
	case "in":
		d = logicsim.DirIn
	case "out":
		d = logicsim.DirOut
	default:
		// label lookup, inputs first
		if i := pinIndex(g.Inputs, pin); i >= 0 {
			return []logicsim.PinRef{{Gate: g.ID, Dir: logicsim.DirIn, Index: i}}, nil
		}
		if i := pinIndex(g.Outputs, pin); i >= 0 {
			return []logicsim.PinRef{{Gate: g.ID, Dir: logicsim.DirOut, Index: i}}, nil
		}
		return nil, errors.Errorf("%s has no pin %s", name, pin)
	}
	if idx == nil {
		idx = []int{0}
	}
	refs := make([]logicsim.PinRef, len(idx))
	for i, x := range idx {
		refs[i] = logicsim.PinRef{Gate: g.ID, Dir: d, Index: x}
	}
	return refs, nil
}

func pinIndex(ps []logicsim.Pin, label string) int {
	for i := range ps {
		if ps[i].Label != "" && ps[i].Label == label {
			return i
		}
	}
	return -1
}

// maxBusWidth caps bus ranges. No gate has that many pins.
const maxBusWidth = 64

// expandRange splits a pin name like out[2] or in[0..3] into its bus name
// and indices. Ranges may be descending. A name without brackets returns nil
// indices.
//
func expandRange(name string) (string, []int, error) {
	i := strings.IndexRune(name, '[')
	if i < 0 {
		return name, nil, nil
	}
	bus := name[:i]
	if bus == "" {
		return "", nil, errors.New("empty bus name")
	}
	n := name[i+1:]
	i = strings.IndexRune(n, ']')
	if i < 0 || i != len(n)-1 {
		return "", nil, errors.New("no terminating ] in bus range")
	}
	n = n[:i]
	i = strings.Index(n, "..")
	if i < 0 {
		v, err := strconv.Atoi(n)
		if err != nil {
			return "", nil, err
		}
		return bus, []int{v}, nil
	}
	start, err := strconv.Atoi(n[:i])
	if err != nil {
		return "", nil, err
	}
	end, err := strconv.Atoi(n[i+2:])
	if err != nil {
		return "", nil, err
	}
	if start < 0 || end < 0 {
		return "", nil, errors.New("negative index in bus range")
	}
	step, width := 1, end-start
	if end < start {
		step, width = -1, start-end
	}
	if width >= maxBusWidth {
		return "", nil, errors.Errorf("bus range wider than %d pins", maxBusWidth)
	}
	r := make([]int, 0, width+1)
	for i := start; i != end+step; i += step {
		r = append(r, i)
	}
	return bus, r, nil
}
