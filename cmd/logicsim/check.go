// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Report feedback loops and dangling wires of a circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d gates, %d wires\n", len(c.Gates), len(c.Wires))

			for _, g := range c.Gates {
				if g.Kind == logicsim.Unknown {
					logrus.WithField("gate", g.ID).Warnf("unknown gate kind %s", g.RawKind)
				}
			}
			dangling := 0
			for _, w := range c.Wires {
				if c.Gate(w.From) == nil || c.Gate(w.To) == nil {
					dangling++
				}
			}
			if dangling > 0 {
				fmt.Fprintf(out, "%d dangling wires\n", dangling)
			}

			loops := logicsim.Loops(c)
			if len(loops) == 0 {
				fmt.Fprintln(out, "no feedback loops")
				return nil
			}
			fmt.Fprintf(out, "feedback loops: %d\n", len(loops))
			for _, l := range loops {
				names := make([]string, len(l))
				for i, id := range l {
					names[i] = gateName(c.Gate(id))
				}
				fmt.Fprintf(out, "  %s\n", strings.Join(names, ", "))
			}
			return nil
		},
	}
}
