package siftdist_test

import (
	"fmt"

	"github.com/katalvlaran/cyclemd/siftdist"
)

// ExampleMetric_Distance compares two 4-cell × 8-bin descriptors, once
// exactly and once with per-cell stop thresholds. The running sum passes 39
// after the second cell, so the pruned call returns the last threshold.
func ExampleMetric_Distance() {
	m, err := siftdist.New[float64](8, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	exact, _ := m.Distance(sift1, sift2, nil)
	stop, _ := siftdist.NewThresholds([]float64{39, 39, 39, 4242}, 4)
	pruned, _ := m.Distance(sift1, sift2, stop)

	fmt.Println("exact:", exact)
	fmt.Println("pruned:", pruned)
	// Output:
	// exact: 110
	// pruned: 4242
}

// ExampleCellDistance shows the three price levels of a single cell: free in
// place, 1 to a neighbouring bin (the ring wraps), 2 otherwise.
func ExampleCellDistance() {
	q := []int{0, 1, 0, 1}
	p := []int{1, 0, 1, 0}
	d, _ := siftdist.CellDistance(q, p)
	fmt.Println("alternating:", d)

	d, _ = siftdist.CellDistance([]int{5, 0, 0, 0, 0, 0}, []int{0, 0, 0, 5, 0, 0})
	fmt.Println("opposite:", d)
	// Output:
	// alternating: 2
	// opposite: 10
}
