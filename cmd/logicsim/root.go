// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/netlist"
	"github.com/db47h/logicsim/workspace"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all commands.
type options struct {
	logLevel   string // Log verbosity level
	configPath string // Path of a YAML engine configuration
	cfg        workspace.Config
}

// newRootCmd returns the base command for the CLI with all sub commands
// attached.
func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "logicsim",
		Short:         "Digital logic circuit simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&o.logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	root.PersistentFlags().StringVar(&o.configPath, "config", "", "YAML engine configuration file")

	root.AddCommand(
		newRunCmd(o),
		newTruthCmd(),
		newExamplesCmd(),
		newCheckCmd(),
	)
	return root
}

// setup loads the configuration file, if any, and sets the log level. The
// --log flag overrides the configuration file.
func (o *options) setup(cmd *cobra.Command) error {
	o.cfg = workspace.DefaultConfig()
	if o.configPath != "" {
		cfg, err := workspace.LoadConfig(o.configPath)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	if o.configPath == "" || cmd.Flags().Changed("log") {
		o.cfg.LogLevel = o.logLevel
	}
	if err := o.cfg.ApplyLogLevel(); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	return nil
}

// loadCircuit reads a circuit from a JSON workspace file (.json) or from a
// netlist.
func loadCircuit(path string) (*logicsim.Circuit, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return workspace.Load(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open netlist")
	}
	defer f.Close()
	n, err := netlist.Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	logrus.WithFields(logrus.Fields{
		"path":  path,
		"gates": len(n.Circuit.Gates),
		"wires": len(n.Circuit.Wires),
	}).Info("netlist loaded")
	return n.Circuit, nil
}

// gateName returns the user suffix of g, or its display name if there is
// none.
func gateName(g *logicsim.Gate) string {
	if g.Suffix != "" {
		return g.Suffix
	}
	return g.DisplayName()
}

// Execute runs the root command and exits with a non zero status on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
