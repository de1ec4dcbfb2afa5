// SPDX-License-Identifier: MIT

package centrality

import "gonum.org/v1/gonum/floats"

// uniform returns the length-n vector with every entry 1/n.
func uniform(n int) []float64 {
	v := make([]float64, n)
	floats.AddConst(1.0/float64(n), v)

	return v
}

// vectorFromMapping lays m out in nodelist order; absent nodes get 0.
func vectorFromMapping[K comparable](nodelist []K, m map[K]float64) []float64 {
	v := make([]float64, len(nodelist))
	for i, id := range nodelist {
		v[i] = m[id]
	}

	return v
}

// normalizeL1 divides v in place by its sum. A zero sum leaves v untouched
// and returns onZero, so no call site ever sees NaN.
func normalizeL1(v []float64, onZero error) error {
	sum := floats.Sum(v)
	if sum == 0 {
		return onZero
	}
	floats.Scale(1/sum, v)

	return nil
}

// distribution resolves an optional mapping into a normalized vector:
// uniform when m is nil, otherwise the L1-normalized mapping (onZero on a zero sum).
func distribution[K comparable](nodelist []K, m map[K]float64, onZero error) ([]float64, error) {
	if m == nil {
		return uniform(len(nodelist)), nil
	}
	v := vectorFromMapping(nodelist, m)
	if err := normalizeL1(v, onZero); err != nil {
		return nil, err
	}

	return v, nil
}

// l1Distance returns Σ|a[i] - b[i]|; a and b have equal length.
func l1Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

// toMapping zips nodelist with v.
func toMapping[K comparable](nodelist []K, v []float64) map[K]float64 {
	out := make(map[K]float64, len(nodelist))
	for i, id := range nodelist {
		out[id] = v[i]
	}

	return out
}
