package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclemd/emdmod"
	"github.com/katalvlaran/cyclemd/ratiomatch"
	"github.com/katalvlaran/cyclemd/siftdist"
)

// testApp returns an app writing to a buffer and logging into a hook.
func testApp() (*app, *bytes.Buffer, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	out := &bytes.Buffer{}

	return &app{ctx: context.Background(), out: out, log: logger}, out, hook
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func run(t *testing.T, a *app, args ...string) error {
	t.Helper()
	p, err := newParser(a)
	require.NoError(t, err)
	_, err = p.ParseArgs(args)

	return err
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger("debug", "json", &buf)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	l.WithField("k", 1).Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	l = newLogger("nonsense", "text", &buf)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	_, isText := l.Formatter.(*logrus.TextFormatter)
	assert.True(t, isText)
}

func TestEmdCommand(t *testing.T) {
	a, out, hook := testApp()
	path := writeFile(t, "pair.yaml", "p: [3, 0, 0, 1]\nq: [0, 2, 0, 2]\n")

	require.NoError(t, run(t, a, "emd", "-i", path))
	assert.Equal(t, "cost: 3\n", out.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, 3.0, hook.LastEntry().Data["cost"])

	out.Reset()
	require.NoError(t, run(t, a, "emd", "-i", path, "--flow"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "cost: 3", lines[0])
}

func TestEmdCommand_JSONInput(t *testing.T) {
	a, out, _ := testApp()
	path := writeFile(t, "pair.json", `{"p": [0, 0, 0, 4], "q": [1, 0, 2, 1]}`)

	require.NoError(t, run(t, a, "emd", "--input", path))
	assert.Equal(t, "cost: 3\n", out.String())
}

func TestEmdCommand_Errors(t *testing.T) {
	a, _, _ := testApp()

	err := run(t, a, "emd", "-i", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "bad.yaml", "p: [1, 2]\nq: [1, 1]\n")
	err = run(t, a, "emd", "-i", path)
	assert.ErrorIs(t, err, emdmod.ErrMassMismatch)
	assert.Contains(t, err.Error(), "cyclic emd")

	path = writeFile(t, "unknown.yaml", "p: [1]\nq: [1]\nr: [1]\n")
	err = run(t, a, "emd", "-i", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

const descriptorSetsYAML = `
set1:
  - [9, 6, 9, 9, 6, 4, 3, 5, 2, 5, 3, 5, 9, 2, 8, 2, 8, 6, 3, 1, 2, 9, 7, 2, 6, 2, 3, 6, 1, 1, 2, 7]
set2:
  - [6, 2, 1, 9, 4, 3, 7, 2, 3, 1, 4, 4, 1, 6, 7, 5, 6, 3, 9, 1, 9, 3, 9, 1, 3, 5, 2, 1, 9, 7, 3, 9]
  - [9, 6, 9, 9, 6, 4, 3, 5, 2, 5, 3, 5, 9, 2, 8, 2, 8, 6, 3, 1, 2, 9, 7, 2, 6, 2, 3, 6, 1, 1, 2, 7]
`

// matrixFields splits a printed single-row matrix into its values.
func matrixFields(s string) []string {
	return strings.Fields(strings.Trim(strings.TrimSpace(s), "[]"))
}

func TestDistCommand(t *testing.T) {
	path := writeFile(t, "sets.yaml", descriptorSetsYAML)

	a, out, _ := testApp()
	require.NoError(t, run(t, a, "dist", "-i", path, "--bins", "8", "--cells", "4"))
	assert.Equal(t, []string{"110", "0"}, matrixFields(out.String()))

	a, out, _ = testApp()
	require.NoError(t, run(t, a, "dist", "-i", path, "--bins", "8", "--cells", "4",
		"--threshold", "39", "--threshold", "39", "--threshold", "39", "--threshold", "4242"))
	assert.Equal(t, []string{"4242", "0"}, matrixFields(out.String()))

	a, _, _ = testApp()
	err := run(t, a, "dist", "-i", path, "--bins", "8", "--cells", "4", "--threshold", "39")
	assert.ErrorIs(t, err, siftdist.ErrThresholdLength)

	a, _, _ = testApp()
	err = run(t, a, "dist", "-i", path, "--bins", "8", "--cells", "16")
	assert.ErrorIs(t, err, siftdist.ErrDescriptorLength)
}

func TestDistCommand_ScaledStop(t *testing.T) {
	c := &distCommand{Cells: 4, Stop: 100, Gamma: 1}
	stop, err := c.thresholds()
	require.NoError(t, err)
	assert.Equal(t, siftdist.Thresholds[float64]{25, 50, 75, 100}, stop)

	c = &distCommand{Cells: 4}
	stop, err = c.thresholds()
	require.NoError(t, err)
	assert.Nil(t, stop)
}

const featuresYAML = `
set1:
  descriptors: [[8, 0, 0, 0], [0, 0, 8, 0], [0, 8, 0, 0]]
  frames:
    - {x: 0, y: 0, scale: 1}
    - {x: 100, y: 0, scale: 1}
    - {x: 200, y: 0, scale: 1}
set2:
  descriptors: [[0, 0, 7, 1], [7, 1, 0, 0]]
  frames:
    - {x: 0, y: 0, scale: 1}
    - {x: 100, y: 0, scale: 1, orientation: 1.5}
`

func TestMatchCommand(t *testing.T) {
	input := writeFile(t, "features.yaml", featuresYAML)
	cfg := writeFile(t, "match.yaml", "dist_ratio: -1\nbins: 4\nspatial_bins: 1\n")

	a, out, hook := testApp()
	require.NoError(t, run(t, a, "match", "-i", input, "-c", cfg, "--workers", "2"))
	assert.Equal(t, "0\t1\t7\n1\t0\t9\n", out.String())

	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, "matching finished", last.Message)
	assert.Equal(t, 2, last.Data["matched"])
}

func TestMatchCommand_Errors(t *testing.T) {
	input := writeFile(t, "features.yaml", featuresYAML)

	// defaults expect 256-value descriptors
	a, _, _ := testApp()
	err := run(t, a, "match", "-i", input)
	assert.ErrorIs(t, err, siftdist.ErrDescriptorLength)

	cfg := writeFile(t, "bad.yaml", "dist_ratio: 0.5\nbins: 4\nspatial_bins: 1\n")
	a, _, _ = testApp()
	err = run(t, a, "match", "-i", input, "-c", cfg)
	assert.ErrorIs(t, err, ratiomatch.ErrBadRatio)
}

func TestMatchConfig_Apply(t *testing.T) {
	path := writeFile(t, "match.yaml", "magnif: 2.5\nmax_overlap: 0.2\nstop_gamma: 1\nworkers: 3\n")
	var cfg matchConfig
	require.NoError(t, readYAML(path, &cfg))

	opts := ratiomatch.DefaultOptions()
	cfg.apply(&opts)
	assert.Equal(t, 2.5, opts.Magnif)
	assert.Equal(t, 0.2, opts.MaxOverlap)
	assert.Equal(t, 1.0, opts.StopGamma)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, ratiomatch.DefaultDistRatio, opts.DistRatio)
	assert.Equal(t, ratiomatch.DefaultBins, opts.Bins)
}
