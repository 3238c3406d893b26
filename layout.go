// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// layout is the pin layout of a gate kind: input and output labels.
// An empty label means an unlabeled pin.
type layout struct {
	in, out  []string
	variadic bool // accepts any number of inputs >= 2
}

var (
	unary  = []string{""}
	binary = []string{"", ""}
	q      = []string{"Q", "Q̄"}
	q4     = []string{"Q0", "Q1", "Q2", "Q3"}
	cmp    = []string{"A>B", "A=B", "A<B"}
	polar  = []string{"+", "-"}
)

var layouts = [numKinds]layout{
	Unknown: {},
	Input:   {out: unary},
	Output:  {in: unary},

	And:      {in: binary, out: unary, variadic: true},
	Or:       {in: binary, out: unary, variadic: true},
	Not:      {in: unary, out: unary},
	NotB:     {in: binary, out: unary},
	Xor:      {in: binary, out: unary, variadic: true},
	Xnor:     {in: binary, out: unary, variadic: true},
	Nand:     {in: binary, out: unary, variadic: true},
	Nor:      {in: binary, out: unary, variadic: true},
	AAndNotB: {in: binary, out: unary},
	NotAAndB: {in: binary, out: unary},
	ImplAB:   {in: binary, out: unary},
	ImplBA:   {in: binary, out: unary},
	ProjA:    {in: binary, out: unary},
	ProjB:    {in: binary, out: unary},
	Const0:   {out: unary},
	Const1:   {out: unary},

	Button:    {in: []string{"IN"}, out: []string{"OUT"}},
	Switch:    {in: []string{"IN"}, out: []string{"OUT"}},
	LED:       {in: polar},
	Bulb:      {in: polar},
	Buzzer:    {in: polar},
	Relay:     {in: polar, out: []string{"COM", "NO", "NC"}},
	Resistor:  {in: unary, out: unary},
	Capacitor: {in: polar, out: []string{"OUT"}},
	Battery:   {out: polar},
	BJTNPN:    {in: []string{"B"}, out: []string{"C", "E"}},
	BJTPNP:    {in: []string{"B"}, out: []string{"C", "E"}},
	MOSFETN:   {in: []string{"G"}, out: []string{"D", "S"}},
	MOSFETP:   {in: []string{"G"}, out: []string{"D", "S"}},
	Display8Bit: {in: []string{
		"B7", "B6", "B5", "B4", "B3", "B2", "B1", "B0", "+", "-",
	}},

	DFlipFlop:  {in: []string{"D", "CLK"}, out: q},
	TFlipFlop:  {in: []string{"T", "CLK"}, out: q},
	JKFlipFlop: {in: []string{"J", "CLK", "K"}, out: q},
	SRLatch:    {in: []string{"S", "R"}, out: q},

	Mux2To1:   {in: []string{"D0", "D1", "SEL"}, out: []string{"OUT"}},
	Mux4To1:   {in: []string{"D0", "D1", "D2", "D3", "S0", "S1"}, out: []string{"OUT"}},
	Demux1To2: {in: []string{"IN", "SEL"}, out: []string{"OUT0", "OUT1"}},
	Demux1To4: {in: []string{"IN", "S0", "S1"}, out: []string{"OUT0", "OUT1", "OUT2", "OUT3"}},

	Counter4Bit:  {in: []string{"CLK", "RST"}, out: q4},
	Register4Bit: {in: []string{"D0", "D1", "D2", "D3", "CLK", "LD"}, out: q4},

	HalfAdder: {in: []string{"A", "B"}, out: []string{"SUM", "C"}},
	FullAdder: {in: []string{"A", "B", "Cin"}, out: []string{"SUM", "Cout"}},
	Adder4Bit: {
		in:  []string{"A0", "A1", "A2", "A3", "B0", "B1", "B2", "B3", "Cin"},
		out: []string{"S0", "S1", "S2", "S3", "Cout"},
	},

	Decoder2To4: {in: []string{"A0", "A1"}, out: []string{"Y0", "Y1", "Y2", "Y3"}},
	Decoder3To8: {
		in:  []string{"A0", "A1", "A2"},
		out: []string{"Y0", "Y1", "Y2", "Y3", "Y4", "Y5", "Y6", "Y7"},
	},
	Encoder4To2: {in: []string{"D0", "D1", "D2", "D3"}, out: []string{"Y0", "Y1"}},

	Comparator1Bit: {in: []string{"A", "B"}, out: cmp},
	Comparator4Bit: {in: []string{"A0", "A1", "A2", "A3", "B0", "B1", "B2", "B3"}, out: cmp},

	RAM4x4: {in: []string{"A0", "A1", "D0", "D1", "D2", "D3", "WE"}, out: q4},
	ROM4x4: {in: []string{"A0", "A1"}, out: []string{"D0", "D1", "D2", "D3"}},

	Clock: {out: []string{"CLK"}},

	Splitter4Bit: {in: []string{"IN"}, out: []string{"B0", "B1", "B2", "B3"}},
	Combiner4Bit: {in: []string{"B0", "B1", "B2", "B3"}, out: []string{"OUT"}},
}

func layoutOf(k Kind) layout {
	if k >= numKinds {
		return layouts[Unknown]
	}
	return layouts[k]
}

// PinCount returns the default number of input and output pins for gates of
// kind k.
//
func (k Kind) PinCount() (inputs, outputs int) {
	l := layoutOf(k)
	return len(l.in), len(l.out)
}

// PinIndex returns the index of the pin with the given label for kind k, or
// -1 if there is no such pin.
//
func (k Kind) PinIndex(d Direction, label string) int {
	l := layoutOf(k)
	ls := l.in
	if d == DirOut {
		ls = l.out
	}
	for i, n := range ls {
		if n != "" && n == label {
			return i
		}
	}
	return -1
}
