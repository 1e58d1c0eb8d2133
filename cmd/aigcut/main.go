// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command aigcut reads a textual netlist, builds its And-Inverter Graph,
// and enumerates a bounded cut at every AND node using a fixed pool of
// worker goroutines.
//
//	aigcut -i circuit.net -w 8
package main

import (
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aigcut/aigcut/aig"
	"github.com/aigcut/aigcut/diag"
	"github.com/aigcut/aigcut/netlist"
	"github.com/aigcut/aigcut/pool"
	"github.com/aigcut/aigcut/z"
)

// severityFlag adapts diag.Severity to pflag.Value so it can be set
// with -m/--min-severity by name (note, warning, error, ...).
type severityFlag struct {
	value *diag.Severity
}

func (f severityFlag) String() string {
	if f.value == nil {
		return diag.Warning.String()
	}
	return f.value.String()
}

func (f severityFlag) Set(s string) error {
	sev, ok := diag.ParseSeverity(s)
	if !ok {
		return errors.Errorf("unknown severity %q", s)
	}
	*f.value = sev
	return nil
}

func (f severityFlag) Type() string {
	return "severity"
}

var _ pflag.Value = severityFlag{}

// options are defined globally so that they appear on the test binary
// as well.
var (
	options = &runOptions{
		Workers:     runtime.NumCPU(),
		QueueDepth:  64,
		MinSeverity: diag.Warning,
	}
	cmd = &cobra.Command{
		Use:   "aigcut",
		Short: "Enumerate bounded cuts over a netlist's And-Inverter Graph",
		Long:  "aigcut reads a textual netlist, builds its And-Inverter Graph, and enumerates a bounded cut at every AND node using a fixed pool of worker goroutines.",
		RunE: func(c *cobra.Command, args []string) error {
			return options.Run(os.Stdout)
		},
	}
)

type runOptions struct {
	InputPath   string
	Workers     int
	QueueDepth  int
	Debug       bool
	MinSeverity diag.Severity
}

func init() {
	flags := cmd.Flags()

	flags.StringVarP(&options.InputPath, "input", "i", "", "path to the netlist file to read (- for stdin)")
	flags.IntVarP(&options.Workers, "workers", "w", options.Workers, "number of worker goroutines")
	flags.IntVarP(&options.QueueDepth, "queue-depth", "q", options.QueueDepth, "depth of the pool's task queue")
	flags.BoolVar(&options.Debug, "debug", options.Debug, "use debug log level")
	flags.VarP(severityFlag{&options.MinSeverity}, "min-severity", "m", "minimum netlist diagnostic severity to log (note, remark, warning, error, fatal)")

	cmd.MarkFlagRequired("input")
}

func (o *runOptions) openInput() (io.ReadCloser, error) {
	if o.InputPath == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(o.InputPath)
}

// Run reads the netlist named by o.InputPath, builds its graph, and
// dispatches a CreateCut/ReleaseCut pass over every AND node across
// o.Workers goroutines, writing a summary to w.
func (o *runOptions) Run(w io.Writer) error {
	if o.Debug {
		log.SetLevel(log.DebugLevel)
	}

	f, err := o.openInput()
	if err != nil {
		return errors.Wrap(err, "aigcut: open input")
	}
	defer f.Close()

	net := aig.NewNet()
	sink := &diag.FilterSink{Next: diag.NewLogrusSink(log.StandardLogger()), Min: o.MinSeverity}
	if err := netlist.Read(f, net, sink); err != nil {
		return errors.Wrap(err, "aigcut: read netlist")
	}

	log.WithField("nodes", net.Len()).Info("netlist loaded")

	p := pool.New(o.Workers, o.QueueDepth)
	results := newSummary()

	var nextThreadID uint32
	net.ForeachNode(func(n z.Index) {
		if net.IsPI(n) || net.IsConstant(n) {
			return
		}
		nextThreadID++
		id := nextThreadID
		p.Submit(func() {
			cutNode(net, n, id, results)
		})
	})

	p.Stop()
	results.WriteTo(w, net.Len())
	return nil
}

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
