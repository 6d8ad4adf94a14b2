// SPDX-License-Identifier: MIT

package emdmod

import (
	"github.com/katalvlaran/cyclemd/cyclic"
	"gonum.org/v1/gonum/mat"
)

// Bins returns the number of bins the plan was built for.
func (f Flow) Bins() int { return len(f) }

// Incoming returns, per destination bin, the total amount received.
// For a plan from Distance(p, q, …) this equals q.
func (f Flow) Incoming() []float64 {
	in := make([]float64, len(f))
	for to, list := range f {
		for _, t := range list {
			in[to] += t.Amount
		}
	}

	return in
}

// Outgoing returns, per source bin, the total amount sent.
// For a plan from Distance(p, q, …) this equals p.
func (f Flow) Outgoing() []float64 {
	out := make([]float64, len(f))
	for _, list := range f {
		for _, t := range list {
			out[t.From] += t.Amount
		}
	}

	return out
}

// Cost recomputes Σ amount · cyclic.Distance(from, to, n) over the plan.
func (f Flow) Cost() float64 {
	n := len(f)
	var c float64
	for to, list := range f {
		for _, t := range list {
			c += t.Amount * float64(cyclic.Distance(t.From, to, n))
		}
	}

	return c
}

// Dense exports the plan as an n×n matrix with M[from, to] = amount moved
// (row = source, column = destination). Returns nil for an empty plan.
//
// Complexity: O(n² + entries).
func (f Flow) Dense() *mat.Dense {
	n := len(f)
	if n == 0 {
		return nil
	}
	m := mat.NewDense(n, n, nil)
	for to, list := range f {
		for _, t := range list {
			m.Set(t.From, to, m.At(t.From, to)+t.Amount)
		}
	}

	return m
}
