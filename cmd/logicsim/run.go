// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/workspace"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRunCmd(o *options) *cobra.Command {
	var (
		sets          []string // name=value assignments
		ticks         int      // Number of full clock cycles
		maxIterations int      // Relaxation cap
		save          string   // Output JSON path
	)
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Simulate a circuit and print its outputs",
		Long: `Simulate a circuit read from a netlist or a JSON workspace file (.json)
and print the state of its OUTPUT probes, indicators and displays.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCircuit(args[0])
			if err != nil {
				return err
			}
			cfg := o.cfg
			if cmd.Flags().Changed("max-iterations") {
				cfg.MaxIterations = maxIterations
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			w := workspace.New(c, cfg)
			defer w.Close()

			if err := w.Edit(func(c *logicsim.Circuit) error { return applySets(c, sets) }); err != nil {
				return err
			}
			r, err := w.SimulateNow(cmd.Context())
			if err != nil {
				return err
			}
			for i := 0; i < 2*ticks; i++ {
				w.Tick()
				if r, err = w.SimulateNow(cmd.Context()); err != nil {
					return err
				}
			}
			logrus.WithFields(logrus.Fields{
				"strategy":   r.Strategy,
				"iterations": r.Iterations,
				"converged":  r.Converged,
			}).Info("simulation done")

			s := w.Snapshot()
			if err := printResult(cmd.OutOrStdout(), s, r); err != nil {
				return err
			}
			if save != "" {
				return workspace.Save(save, s)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "Set an INPUT, BUTTON, SWITCH or CLOCK gate (name=0|1), may be repeated")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "Number of clock cycles to run after the first pass")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", logicsim.DefaultMaxIterations, "Maximum relaxation passes on cyclic circuits")
	cmd.Flags().StringVar(&save, "save", "", "Save the simulated circuit to a JSON file")
	return cmd
}

func applySets(c *logicsim.Circuit, sets []string) error {
	for _, s := range sets {
		name, val, ok := strings.Cut(s, "=")
		if !ok {
			return errors.Errorf("invalid assignment %q, want name=value", s)
		}
		v, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return errors.Errorf("invalid value in %q", s)
		}
		g := c.Find(strings.TrimSpace(name))
		if g == nil {
			return errors.Errorf("no gate named %q", name)
		}
		if g.Kind == logicsim.Clock {
			g.ClockState = v
			continue
		}
		if err := c.Set(g.ID, v); err != nil {
			return err
		}
	}
	return nil
}

func printResult(out io.Writer, c *logicsim.Circuit, r logicsim.Result) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, g := range c.Gates {
		var v string
		switch {
		case g.Kind == logicsim.Output:
			v = bit(g.In(0))
		case g.Kind.IsIndicator():
			v = bit(g.Indicator)
		case g.Kind == logicsim.Display8Bit:
			v = strconv.Itoa(g.Display)
		default:
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", gateName(g), g.Kind, v)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !r.Converged {
		fmt.Fprintf(out, "did not settle after %d iterations (%d feedback loops)\n", r.Iterations, len(r.Loops))
	}
	return nil
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
