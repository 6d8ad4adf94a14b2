// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cyclemd/emdmod"
	"github.com/katalvlaran/cyclemd/ratiomatch"
	"github.com/katalvlaran/cyclemd/siftdist"
)

type emdCommand struct {
	app *app

	Input     string  `short:"i" long:"input" required:"true" description:"YAML/JSON file with histograms p and q"`
	Flow      bool    `long:"flow" description:"print the optimal transport plan (rows: source bins)"`
	Tolerance float64 `long:"tolerance" default:"1e-9" description:"relative tolerance of the mass balance check"`
}

func (c *emdCommand) Execute([]string) error {
	var in histogramPair
	if err := readYAML(c.Input, &in); err != nil {
		return err
	}

	opts := emdmod.DefaultOptions()
	opts.RecordFlow = c.Flow
	opts.MassTolerance = c.Tolerance
	cost, flow, err := emdmod.Distance(in.P, in.Q, opts)
	if err != nil {
		return errors.Wrap(err, "cyclic emd")
	}
	c.app.logger().WithFields(logrus.Fields{
		"action": "emd",
		"bins":   len(in.P),
		"cost":   cost,
	}).Debug("distance computed")

	fmt.Fprintf(c.app.out, "cost: %g\n", cost)
	if c.Flow {
		fmt.Fprintf(c.app.out, "%v\n", mat.Formatted(flow.Dense(), mat.Squeeze()))
	}

	return nil
}

type distCommand struct {
	app *app

	Input      string    `short:"i" long:"input" required:"true" description:"YAML/JSON file with descriptor lists set1 and set2"`
	Bins       int       `long:"bins" default:"8" description:"orientation bins per cell"`
	Cells      int       `long:"cells" default:"16" description:"cells per descriptor"`
	Thresholds []float64 `long:"threshold" description:"per-cell stop threshold, repeated once per cell"`
	Stop       float64   `long:"stop" description:"stop value expanded into per-cell thresholds with --gamma"`
	Gamma      float64   `long:"gamma" default:"0.7" description:"exponent of the threshold profile"`
	Workers    int       `long:"workers" description:"parallel rows (default: GOMAXPROCS)"`
}

func (c *distCommand) thresholds() (siftdist.Thresholds[float64], error) {
	switch {
	case len(c.Thresholds) > 0:
		return siftdist.NewThresholds(c.Thresholds, c.Cells)
	case c.Stop > 0:
		return siftdist.ScaledThresholds(c.Stop, c.Gamma, c.Cells)
	}

	return nil, nil
}

func (c *distCommand) Execute([]string) error {
	var in descriptorSets
	if err := readYAML(c.Input, &in); err != nil {
		return err
	}
	m, err := siftdist.New[float64](c.Bins, c.Cells)
	if err != nil {
		return errors.Wrap(err, "descriptor shape")
	}
	stop, err := c.thresholds()
	if err != nil {
		return errors.Wrap(err, "stop thresholds")
	}

	d, err := siftdist.Pairwise(c.app.ctx, m, in.Set1, in.Set2, stop, c.Workers)
	if err != nil {
		return errors.Wrap(err, "pairwise distances")
	}
	c.app.logger().WithFields(logrus.Fields{
		"action": "dist",
		"set1":   len(in.Set1),
		"set2":   len(in.Set2),
		"pruned": stop != nil,
	}).Debug("distance matrix computed")

	fmt.Fprintf(c.app.out, "%v\n", mat.Formatted(d, mat.Squeeze()))

	return nil
}

type matchCommand struct {
	app *app

	Input   string `short:"i" long:"input" required:"true" description:"YAML/JSON file with feature sets set1 and set2"`
	Config  string `short:"c" long:"config" description:"YAML file overriding the matcher defaults"`
	Workers int    `long:"workers" description:"parallel batches (overrides the config file)"`
}

func (c *matchCommand) options() (ratiomatch.Options, error) {
	opts := ratiomatch.DefaultOptions()
	if c.Config != "" {
		var cfg matchConfig
		if err := readYAML(c.Config, &cfg); err != nil {
			return opts, errors.Wrap(err, "matcher config")
		}
		cfg.apply(&opts)
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	opts.Logger = c.app.logger()

	return opts, nil
}

func (c *matchCommand) Execute([]string) error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	var in matchInput
	if err := readYAML(c.Input, &in); err != nil {
		return err
	}

	m, err := ratiomatch.New(opts)
	if err != nil {
		return errors.Wrap(err, "matcher options")
	}
	res, err := m.Match(c.app.ctx, in.Set1.Descriptors, in.Set1.frames(), in.Set2.Descriptors, in.Set2.frames())
	if err != nil {
		return errors.Wrap(err, "ratio matching")
	}

	matched := 0
	for i, r := range res {
		if !r.Matched() {
			continue
		}
		matched++
		fmt.Fprintf(c.app.out, "%d\t%d\t%g\n", i, r.Index, r.Ratio)
	}
	c.app.logger().WithFields(logrus.Fields{
		"action":  "match",
		"queries": len(res),
		"matched": matched,
	}).Info("matching finished")

	return nil
}
