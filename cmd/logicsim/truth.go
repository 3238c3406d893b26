// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// truthLimit caps the number of inputs of printed tables.
const truthLimit = 10

func newTruthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "truth KIND",
		Short: "Print the truth table of a gate kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k := logicsim.ParseKind(args[0])
			if k == logicsim.Unknown {
				return errors.Errorf("unknown gate kind %q", args[0])
			}
			ni, _ := k.PinCount()
			if ni > truthLimit {
				return errors.Errorf("%s has %d inputs, truth table too large", k, ni)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n\n", k, k.Describe())

			g := logicsim.NewGate(k)
			var hdr []string
			for i, p := range g.Inputs {
				hdr = append(hdr, pinLabel(p, "in", i))
			}
			hdr = append(hdr, "|")
			for i, p := range g.Outputs {
				hdr = append(hdr, pinLabel(p, "out", i))
			}
			switch {
			case k.IsIndicator():
				hdr = append(hdr, "lit")
			case k == logicsim.Display8Bit:
				hdr = append(hdr, "display")
			}

			tw := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
			fmt.Fprintln(tw, strings.Join(hdr, "\t"))
			for _, r := range logicsim.TruthTable(k) {
				var cols []string
				for _, v := range r.In {
					cols = append(cols, bit(v))
				}
				cols = append(cols, "|")
				for _, v := range r.Out {
					cols = append(cols, bit(v))
				}
				switch {
				case k.IsIndicator():
					cols = append(cols, bit(r.State.Indicator))
				case k == logicsim.Display8Bit:
					cols = append(cols, fmt.Sprint(r.State.Display))
				}
				fmt.Fprintln(tw, strings.Join(cols, "\t"))
			}
			return tw.Flush()
		},
	}
}

func pinLabel(p logicsim.Pin, prefix string, i int) string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("%s%d", prefix, i)
}
