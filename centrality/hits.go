// SPDX-License-Identifier: MIT

package centrality

import "gonum.org/v1/gonum/floats"

// HITS computes hub and authority scores of every node of g.
//
// Implementation:
//   - Stage 1: resolve options; N == 0 returns two empty maps without iterating.
//   - Stage 2: authority matrix M = AᵀA.
//   - Stage 3: power iteration on M with max-element rescaling, starting from
//     uniform 1/N or the normalized nstart mapping.
//   - Stage 4: authorities a = x, hubs h = A·a; with Normalized both are divided by their sums.
//
// Iteration bound:
//
//	The counter is checked after the convergence test and fails only once it
//	exceeds MaxIter, so up to MaxIter+2 products are computed. PageRank, by
//	contrast, stops after exactly MaxIter. Both bounds are kept as they are.
//
// Errors:
//   - ErrOptionViolation, ErrNilGraph, ErrDimensionMismatch, ErrZeroNStart as in PageRank.
//   - ErrZeroVector when M·x is all zero (no node has an incoming edge), or when
//     normalization meets a zero sum.
//   - *PowerIterationFailedConvergence (matches ErrPowerIterationFailedConvergence).
//
// Complexity:
//   - Time O(nnz(AᵀA) build + iterations·(N + nnz(AᵀA))), Space O(N + nnz(AᵀA)).
func HITS[K comparable](g Graph[K], opts ...Option) (hubs, authorities map[K]float64, err error) {
	const tag = "HITS"

	cfg, err := gatherOptions(opts)
	if err != nil {
		return nil, nil, centralityErrorf(tag, err)
	}
	nstart, err := mappingFor[K]("nstart", cfg.nstart)
	if err != nil {
		return nil, nil, centralityErrorf(tag, err)
	}
	if g == nil {
		return nil, nil, centralityErrorf(tag, ErrNilGraph)
	}

	nodelist := g.Nodelist()
	n := len(nodelist)
	if n == 0 {
		return map[K]float64{}, map[K]float64{}, nil
	}
	a, err := adjacency(tag, g, n)
	if err != nil {
		return nil, nil, err
	}

	ata := a.TransposeMul()
	x, err := distribution(nodelist, nstart, ErrZeroNStart)
	if err != nil {
		return nil, nil, centralityErrorf(tag, err)
	}

	var (
		xlast    []float64
		peak     float64
		residual float64
	)
	for i := 0; ; i++ {
		xlast = x
		// Shapes were checked above, MulVec cannot fail here.
		x, _ = ata.MulVec(xlast)
		peak = floats.Max(x)
		if peak == 0 {
			return nil, nil, centralityErrorf(tag, ErrZeroVector)
		}
		floats.Scale(1/peak, x)

		residual = l1Distance(x, xlast)
		if cfg.OnIteration != nil {
			cfg.OnIteration(i, residual)
		}
		if residual < cfg.Tol {
			break
		}
		if i > cfg.MaxIter {
			return nil, nil, centralityErrorf(tag, &PowerIterationFailedConvergence{MaxIter: cfg.MaxIter})
		}
	}

	auth := x
	// Shapes were checked above, MulVec cannot fail here.
	hub, _ := a.MulVec(auth)
	if cfg.Normalized {
		if err = normalizeL1(hub, ErrZeroVector); err != nil {
			return nil, nil, centralityErrorf(tag, err)
		}
		if err = normalizeL1(auth, ErrZeroVector); err != nil {
			return nil, nil, centralityErrorf(tag, err)
		}
	}

	return toMapping(nodelist, hub), toMapping(nodelist, auth), nil
}
