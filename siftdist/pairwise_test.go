package siftdist_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclemd/siftdist"
)

func TestPairwise_MatchesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	m, err := siftdist.New[float64](8, 4)
	require.NoError(t, err)

	set1 := [][]float64{sift1, sift2}
	set2 := [][]float64{sift2, sift1}
	for i := 0; i < 5; i++ {
		set1 = append(set1, randomDescriptor(rng, m.Dim(), 10))
		set2 = append(set2, randomDescriptor(rng, m.Dim(), 10))
	}

	for _, workers := range []int{0, 1, 3} {
		d, err := siftdist.Pairwise(context.Background(), m, set1, set2, nil, workers)
		require.NoError(t, err)
		r, c := d.Dims()
		require.Equal(t, len(set1), r)
		require.Equal(t, len(set2), c)
		for i := range set1 {
			for j := range set2 {
				want, err := m.Distance(set1[i], set2[j], nil)
				require.NoError(t, err)
				assert.Equal(t, want, d.At(i, j), "workers=%d (%d,%d)", workers, i, j)
			}
		}
		assert.Equal(t, 110.0, d.At(0, 0))
		assert.Zero(t, d.At(0, 1))
	}
}

func TestPairwise_Thresholds(t *testing.T) {
	m, err := siftdist.New[float64](8, 4)
	require.NoError(t, err)
	stop, err := siftdist.NewThresholds([]float64{39, 39, 39, 4242}, 4)
	require.NoError(t, err)

	d, err := siftdist.Pairwise(context.Background(), m, [][]float64{sift1}, [][]float64{sift2, sift1}, stop, 2)
	require.NoError(t, err)
	assert.Equal(t, 4242.0, d.At(0, 0))
	assert.Zero(t, d.At(0, 1))
}

func TestPairwise_Errors(t *testing.T) {
	m, err := siftdist.New[float64](8, 4)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = siftdist.Pairwise(ctx, m, nil, [][]float64{sift1}, nil, 1)
	assert.ErrorIs(t, err, siftdist.ErrEmptySet)
	_, err = siftdist.Pairwise(ctx, m, [][]float64{sift1}, [][]float64{sift2[:5]}, nil, 1)
	assert.ErrorIs(t, err, siftdist.ErrDescriptorLength)
	_, err = siftdist.Pairwise(ctx, m, [][]float64{sift1}, [][]float64{sift2}, siftdist.Thresholds[float64]{1}, 1)
	assert.ErrorIs(t, err, siftdist.ErrThresholdLength)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = siftdist.Pairwise(cancelled, m, [][]float64{sift1, sift2}, [][]float64{sift2}, nil, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
