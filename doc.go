// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim provides a digital logic circuit simulation engine.

A circuit is a snapshot of gates (typed components with fixed input and output
pin lists) and wires (directed connections from an output pin to an input pin,
or between two output pins for parallel power sources). A simulation pass
computes the boolean value of every pin:

	gates, wires = logicsim.Evaluate(gates, wires)

Acyclic circuits are evaluated once in topological order. Circuits with
feedback loops (latches, oscillators) are relaxed iteratively until they settle
or until the iteration cap is reached.

The engine never fails: dangling wires, out of range pin indices and unknown
component kinds all evaluate to false.

Edge triggered components (flip-flops, counters, registers) keep the level of
their clock input from the previous pass and latch on a rising edge, so passes
are not idempotent for sequential circuits.
*/
package logicsim
