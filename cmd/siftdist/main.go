// SPDX-License-Identifier: MIT

// Command siftdist computes cyclic Earth Mover's Distances from the command
// line.
//
//	siftdist emd   -i pair.yaml [--flow]
//	siftdist dist  -i sets.yaml --bins 8 --cells 16 [--stop 500 --gamma 0.7]
//	siftdist match -i features.yaml [--config match.yaml]
//
// Inputs are YAML (or JSON) documents; see input.go for their layout.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// app holds the global flags and what every command shares.
type app struct {
	LogLevel  string `long:"log-level" default:"info" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"log level"`
	LogFormat string `long:"log-format" default:"text" choice:"text" choice:"json" description:"log output format"`

	ctx context.Context
	out io.Writer
	log *logrus.Logger
}

// logger builds the logger from the parsed global flags on first use.
func (a *app) logger() *logrus.Logger {
	if a.log == nil {
		a.log = newLogger(a.LogLevel, a.LogFormat, os.Stderr)
	}

	return a.log
}

func newLogger(level, format string, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}

func newParser(a *app) (*flags.Parser, error) {
	p := flags.NewParser(a, flags.Default)
	p.LongDescription = "Cyclic Earth Mover's Distance for orientation histograms and SIFT-like descriptors."

	cmds := []struct {
		name, short, long string
		data              any
	}{
		{"emd", "cyclic EMD of two equal-mass histograms",
			"Solves the transportation problem on a ring and optionally prints the optimal plan.",
			&emdCommand{app: a}},
		{"dist", "pairwise descriptor distances",
			"Computes the SiftDist matrix between two descriptor sets, optionally with stop thresholds.",
			&distCommand{app: a}},
		{"match", "ratio matching of two feature sets",
			"Finds symmetric nearest neighbours that pass the distance-ratio test.",
			&matchCommand{app: a}},
	}
	for _, c := range cmds {
		if _, err := p.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return nil, errors.Wrapf(err, "register command %q", c.name)
		}
	}

	return p, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{ctx: ctx, out: os.Stdout}
	p, err := newParser(a)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up the command line")
	}

	if _, err := p.Parse(); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}
