// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/schemes"
	"github.com/db47h/logicsim/workspace"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newExamplesCmd() *cobra.Command {
	var save string
	cmd := &cobra.Command{
		Use:   "examples [NAME]",
		Short: "List example circuits or export one as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				for _, s := range schemes.All() {
					fmt.Fprintf(tw, "%s\t%s\n", s.Name, s.Description)
				}
				return tw.Flush()
			}
			s, ok := schemes.Lookup(args[0])
			if !ok {
				return errors.Errorf("no example named %q", args[0])
			}
			c, err := s.Build()
			if err != nil {
				return err
			}
			new(logicsim.Engine).Run(c)
			if save != "" {
				return workspace.Save(save, c)
			}
			data, err := workspace.Marshal(c)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Save the example to a JSON file instead of printing it")
	return cmd
}
