// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cyclemd/ratiomatch"
)

// histogramPair is the input of the emd command:
//
//	p: [3, 0, 0, 1]
//	q: [0, 2, 0, 2]
type histogramPair struct {
	P []float64 `yaml:"p"`
	Q []float64 `yaml:"q"`
}

// descriptorSets is the input of the dist command.
type descriptorSets struct {
	Set1 [][]float64 `yaml:"set1"`
	Set2 [][]float64 `yaml:"set2"`
}

// featureSet is one side of the match command input:
//
//	descriptors: [[...], [...]]
//	frames:
//	  - {x: 10, y: 20, scale: 1.5, orientation: 0.3}
type featureSet struct {
	Descriptors [][]float64 `yaml:"descriptors"`
	Frames      []frame     `yaml:"frames"`
}

type frame struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Scale       float64 `yaml:"scale"`
	Orientation float64 `yaml:"orientation"`
}

func (s featureSet) frames() []ratiomatch.Frame {
	out := make([]ratiomatch.Frame, len(s.Frames))
	for i, f := range s.Frames {
		out[i] = ratiomatch.Frame{X: f.X, Y: f.Y, Scale: f.Scale, Orientation: f.Orientation}
	}

	return out
}

type matchInput struct {
	Set1 featureSet `yaml:"set1"`
	Set2 featureSet `yaml:"set2"`
}

// matchConfig overrides ratiomatch.DefaultOptions; absent keys keep defaults.
//
//	dist_ratio: 1.5   # -1 disables the ratio test
//	stop_gamma: 0.7
//	bins: 8
//	spatial_bins: 4
//	magnif: 3
//	max_overlap: 0.5
//	workers: 4
type matchConfig struct {
	DistRatio   *float64 `yaml:"dist_ratio"`
	StopGamma   *float64 `yaml:"stop_gamma"`
	Bins        *int     `yaml:"bins"`
	SpatialBins *int     `yaml:"spatial_bins"`
	Magnif      *float64 `yaml:"magnif"`
	MaxOverlap  *float64 `yaml:"max_overlap"`
	Workers     *int     `yaml:"workers"`
}

func (c matchConfig) apply(o *ratiomatch.Options) {
	if c.DistRatio != nil {
		o.DistRatio = *c.DistRatio
	}
	if c.StopGamma != nil {
		o.StopGamma = *c.StopGamma
	}
	if c.Bins != nil {
		o.Bins = *c.Bins
	}
	if c.SpatialBins != nil {
		o.SpatialBins = *c.SpatialBins
	}
	if c.Magnif != nil {
		o.Magnif = *c.Magnif
	}
	if c.MaxOverlap != nil {
		o.MaxOverlap = *c.MaxOverlap
	}
	if c.Workers != nil {
		o.Workers = *c.Workers
	}
}

// readYAML decodes the YAML or JSON document at path into v, rejecting
// unknown keys.
func readYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}

	return nil
}
