// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strings"
)

// Kind identifies the type of a gate.
//
// The zero value, Unknown, is used for kinds that could not be recognized
// when decoding a circuit. Unknown gates drive all their outputs to false.
//
type Kind uint8

// Gate kinds.
const (
	Unknown Kind = iota

	Input
	Output

	And
	Or
	Not
	NotB
	Xor
	Xnor
	Nand
	Nor
	AAndNotB
	NotAAndB
	ImplAB
	ImplBA
	ProjA
	ProjB
	Const0
	Const1

	Button
	Switch
	LED
	Bulb
	Buzzer
	Relay
	Resistor
	Capacitor
	Battery
	BJTNPN
	BJTPNP
	MOSFETN
	MOSFETP
	Display8Bit

	DFlipFlop
	TFlipFlop
	JKFlipFlop
	SRLatch

	Mux2To1
	Mux4To1
	Demux1To2
	Demux1To4

	Counter4Bit
	Register4Bit

	HalfAdder
	FullAdder
	Adder4Bit

	Decoder2To4
	Decoder3To8
	Encoder4To2

	Comparator1Bit
	Comparator4Bit

	RAM4x4
	ROM4x4

	Clock

	Splitter4Bit
	Combiner4Bit

	numKinds
)

var kindNames = [numKinds]string{
	Unknown:        "UNKNOWN",
	Input:          "INPUT",
	Output:         "OUTPUT",
	And:            "AND",
	Or:             "OR",
	Not:            "NOT",
	NotB:           "NOT_B",
	Xor:            "XOR",
	Xnor:           "XNOR",
	Nand:           "NAND",
	Nor:            "NOR",
	AAndNotB:       "A_AND_NOT_B",
	NotAAndB:       "NOT_A_AND_B",
	ImplAB:         "IMPL_AB",
	ImplBA:         "IMPL_BA",
	ProjA:          "PROJ_A",
	ProjB:          "PROJ_B",
	Const0:         "CONST0",
	Const1:         "CONST1",
	Button:         "BUTTON",
	Switch:         "SWITCH",
	LED:            "LED",
	Bulb:           "BULB",
	Buzzer:         "BUZZER",
	Relay:          "RELAY",
	Resistor:       "RESISTOR",
	Capacitor:      "CAPACITOR",
	Battery:        "BATTERY",
	BJTNPN:         "BJT_NPN",
	BJTPNP:         "BJT_PNP",
	MOSFETN:        "MOSFET_N",
	MOSFETP:        "MOSFET_P",
	Display8Bit:    "DISPLAY8BIT",
	DFlipFlop:      "D_FLIPFLOP",
	TFlipFlop:      "T_FLIPFLOP",
	JKFlipFlop:     "JK_FLIPFLOP",
	SRLatch:        "SR_LATCH",
	Mux2To1:        "MUX_2TO1",
	Mux4To1:        "MUX_4TO1",
	Demux1To2:      "DEMUX_1TO2",
	Demux1To4:      "DEMUX_1TO4",
	Counter4Bit:    "COUNTER_4BIT",
	Register4Bit:   "REGISTER_4BIT",
	HalfAdder:      "HALF_ADDER",
	FullAdder:      "FULL_ADDER",
	Adder4Bit:      "ADDER_4BIT",
	Decoder2To4:    "DECODER_2TO4",
	Decoder3To8:    "DECODER_3TO8",
	Encoder4To2:    "ENCODER_4TO2",
	Comparator1Bit: "COMPARATOR_1BIT",
	Comparator4Bit: "COMPARATOR_4BIT",
	RAM4x4:         "RAM_4X4",
	ROM4x4:         "ROM_4X4",
	Clock:          "CLOCK",
	Splitter4Bit:   "SPLITTER_4BIT",
	Combiner4Bit:   "COMBINER_4BIT",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, numKinds)
	for k := Kind(1); k < numKinds; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// Kinds returns all known gate kinds, Unknown excluded, in declaration order.
//
func Kinds() []Kind {
	ks := make([]Kind, 0, numKinds-1)
	for k := Kind(1); k < numKinds; k++ {
		ks = append(ks, k)
	}
	return ks
}

// ParseKind returns the Kind for the given tag name. Matching is case
// insensitive. Unrecognized names map to Unknown.
//
func ParseKind(name string) Kind {
	return kindByName[strings.ToUpper(strings.TrimSpace(name))]
}

// String returns the tag name of k, as used in saved circuits.
//
func (k Kind) String() string {
	if k >= numKinds {
		return kindNames[Unknown]
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It never fails: unknown
// names decode to Unknown.
func (k *Kind) UnmarshalText(text []byte) error {
	*k = ParseKind(string(text))
	return nil
}

// IsSequential returns true for kinds that keep state across simulation
// passes.
//
func (k Kind) IsSequential() bool {
	switch k {
	case DFlipFlop, TFlipFlop, JKFlipFlop, SRLatch, Counter4Bit, Register4Bit, RAM4x4:
		return true
	}
	return false
}

// IsIndicator returns true for LED type components whose activity is
// reported to presentation collaborators.
//
func (k Kind) IsIndicator() bool {
	return k == LED || k == Bulb || k == Buzzer
}

// CanDriveParallel returns true for power sources and chain components whose
// output pins may be wired to other output pins. Such connections OR-combine
// their signals.
//
func (k Kind) CanDriveParallel() bool {
	switch k {
	case Battery, Const0, Const1, Relay, Button, Switch, BJTNPN, BJTPNP, MOSFETN, MOSFETP:
		return true
	}
	return false
}

// Toggleable returns true for kinds that the user can toggle directly.
//
func (k Kind) Toggleable() bool {
	return k == Input || k == Button || k == Switch
}

var kindDescriptions = [numKinds]string{
	Unknown:        "Unrecognized component. All outputs are false.",
	Input:          "Input source. Its output is toggled by the user.",
	Output:         "Output probe. Displays the value of its input.",
	And:            "AND gate. Output is true when all inputs are true.",
	Or:             "OR gate. Output is true when any input is true.",
	Not:            "NOT gate. Output is the inverse of the input.",
	NotB:           "NOT B. Output is the inverse of the second input.",
	Xor:            "XOR gate. Output is true when an odd number of inputs are true.",
	Xnor:           "XNOR gate. Output is true when an even number of inputs are true.",
	Nand:           "NAND gate. Output is false only when all inputs are true.",
	Nor:            "NOR gate. Output is true only when all inputs are false.",
	AAndNotB:       "A AND NOT B. True when A is true and B is false.",
	NotAAndB:       "NOT A AND B. True when A is false and B is true.",
	ImplAB:         "Implication A → B. False only when A is true and B is false.",
	ImplBA:         "Implication B → A. False only when B is true and A is false.",
	ProjA:          "Projection of A. Output equals the first input.",
	ProjB:          "Projection of B. Output equals the second input.",
	Const0:         "Constant 0.",
	Const1:         "Constant 1.",
	Button:         "Push button. Passes its input through while pressed.",
	Switch:         "Switch. Passes its input through while closed.",
	LED:            "LED. Lit when + is high and - is low.",
	Bulb:           "Light bulb. Lit when + is high and - is low.",
	Buzzer:         "Buzzer. Sounds when + is high and - is low.",
	Relay:          "Relay. The coil is energized when both coil inputs are high. COM and NO follow the coil, NC is its inverse.",
	Resistor:       "Resistor. Passes its input through.",
	Capacitor:      "Capacitor. Passes its + input through.",
	Battery:        "Battery. + is always high, - is always low.",
	BJTNPN:         "NPN bipolar transistor. Collector and emitter conduct when the base is high.",
	BJTPNP:         "PNP bipolar transistor. Collector and emitter conduct when the base is low.",
	MOSFETN:        "N-channel MOSFET. Drain and source conduct when the gate is high.",
	MOSFETP:        "P-channel MOSFET. Drain and source conduct when the gate is low.",
	Display8Bit:    "8-bit display. Shows B7..B0 as a number from 0 to 255 while powered.",
	DFlipFlop:      "D flip-flop. Latches D on the rising edge of CLK.",
	TFlipFlop:      "T flip-flop. Toggles on the rising edge of CLK when T is high.",
	JKFlipFlop:     "JK flip-flop. On the rising edge of CLK: J sets, K resets, both toggle.",
	SRLatch:        "SR latch. S sets, R resets, level sensitive.",
	Mux2To1:        "2:1 multiplexer. OUT is D0 or D1 depending on SEL.",
	Mux4To1:        "4:1 multiplexer. OUT is the data input selected by S1 S0.",
	Demux1To2:      "1:2 demultiplexer. Routes IN to OUT0 or OUT1 depending on SEL.",
	Demux1To4:      "1:4 demultiplexer. Routes IN to the output selected by S1 S0.",
	Counter4Bit:    "4-bit counter. Counts rising edges of CLK modulo 16. RST clears.",
	Register4Bit:   "4-bit register. Loads D0..D3 on the rising edge of CLK when LD is high.",
	HalfAdder:      "Half adder. SUM = A xor B, C = A and B.",
	FullAdder:      "Full adder. Adds A, B and Cin.",
	Adder4Bit:      "4-bit ripple carry adder.",
	Decoder2To4:    "2:4 decoder. One-hot output selected by A1 A0.",
	Decoder3To8:    "3:8 decoder. One-hot output selected by A2 A1 A0.",
	Encoder4To2:    "4:2 priority encoder. Encodes the highest active input.",
	Comparator1Bit: "1-bit comparator. Outputs A>B, A=B, A<B.",
	Comparator4Bit: "4-bit magnitude comparator. Outputs A>B, A=B, A<B.",
	RAM4x4:         "4x4 RAM. Writes D0..D3 at address A1 A0 while WE is high.",
	ROM4x4:         "4x4 ROM. Outputs the word stored at address A1 A0.",
	Clock:          "Clock generator. Its output is driven by an external timer.",
	Splitter4Bit:   "Splitter. Copies its input to four outputs.",
	Combiner4Bit:   "Combiner. Output is the OR of its four inputs.",
}

// Describe returns a short human readable description of k.
//
func (k Kind) Describe() string {
	if k >= numKinds {
		return kindDescriptions[Unknown]
	}
	return kindDescriptions[k]
}
