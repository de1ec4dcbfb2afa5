// SPDX-License-Identifier: MIT

package centrality

// PageRank computes the PageRank of every node of g by damped power iteration
// on the row-stochastic transition matrix of g's adjacency.
//
// Implementation:
//   - Stage 1: resolve options; N == 0 returns an empty map without iterating.
//   - Stage 2: S = row sums of A, inverted where non-zero; P = diag(S)·A.
//     Rows with S == 0 are dangling and stay all-zero in P.
//   - Stage 3: x (uniform or nstart), p (uniform or personalization) and the
//     dangling weights (p, or the normalized dangling mapping).
//   - Stage 4: up to MaxIter times
//     x = α·(x·P + Σx[dangling]·dangling) + (1−α)·p,
//     returning as soon as ‖x − xlast‖₁ < N·tol.
//
// Errors:
//   - ErrOptionViolation for invalid options or mismatched mapping key types.
//   - ErrNilGraph, ErrDimensionMismatch for a broken adapter.
//   - ErrZeroNStart, ErrZeroPersonalization, ErrZeroDangling when the
//     corresponding mapping sums to 0 over the nodelist.
//   - *PowerIterationFailedConvergence (matches ErrPowerIterationFailedConvergence)
//     when MaxIter iterations do not converge. MaxIter == 0 always fails on N > 0.
//
// Determinism:
//   - Fixed nodelist order and fixed kernel loop orders; repeated calls with
//     identical inputs return identical maps.
//
// Complexity:
//   - Time O(MaxIter·(N + nnz)), Space O(N + nnz).
//
// Options.Weight is recorded but not read: the matrix is taken as already weighted.
func PageRank[K comparable](g Graph[K], opts ...Option) (map[K]float64, error) {
	const tag = "PageRank"

	cfg, err := gatherOptions(opts)
	if err != nil {
		return nil, centralityErrorf(tag, err)
	}
	personalization, err := mappingFor[K]("personalization", cfg.personalization)
	if err != nil {
		return nil, centralityErrorf(tag, err)
	}
	nstart, err := mappingFor[K]("nstart", cfg.nstart)
	if err != nil {
		return nil, centralityErrorf(tag, err)
	}
	danglingMap, err := mappingFor[K]("dangling", cfg.dangling)
	if err != nil {
		return nil, centralityErrorf(tag, err)
	}
	if g == nil {
		return nil, centralityErrorf(tag, ErrNilGraph)
	}

	nodelist := g.Nodelist()
	n := len(nodelist)
	if n == 0 {
		return map[K]float64{}, nil
	}
	a, err := adjacency(tag, g, n)
	if err != nil {
		return nil, err
	}

	// Transition matrix: left-multiply A by diag(1/rowsum), zero rows untouched.
	s := a.RowSums()
	var i int
	for i = range s {
		if s[i] != 0 {
			s[i] = 1.0 / s[i]
		}
	}
	p, err := a.ScaleRows(s)
	if err != nil {
		return nil, centralityErrorf(tag, err)
	}

	x, err := distribution(nodelist, nstart, ErrZeroNStart)
	if err != nil {
		return nil, centralityErrorf(tag, err)
	}
	teleport, err := distribution(nodelist, personalization, ErrZeroPersonalization)
	if err != nil {
		return nil, centralityErrorf(tag, err)
	}
	danglingWeights := teleport
	if danglingMap != nil {
		danglingWeights = vectorFromMapping(nodelist, danglingMap)
		if err = normalizeL1(danglingWeights, ErrZeroDangling); err != nil {
			return nil, centralityErrorf(tag, err)
		}
	}
	dangling := make([]int, 0)
	for i = range s {
		if s[i] == 0 {
			dangling = append(dangling, i)
		}
	}

	alpha := cfg.Alpha
	threshold := float64(n) * cfg.Tol
	var (
		xlast    []float64
		flow     []float64
		mass     float64
		residual float64
		iter     int
	)
	for iter = 0; iter < cfg.MaxIter; iter++ {
		xlast = x
		// Shapes were checked above, VecMul cannot fail here.
		flow, _ = p.VecMul(xlast)
		mass = 0
		for _, i = range dangling {
			mass += xlast[i]
		}
		x = make([]float64, n)
		for i = 0; i < n; i++ {
			x[i] = alpha*(flow[i]+mass*danglingWeights[i]) + (1-alpha)*teleport[i]
		}

		residual = l1Distance(x, xlast)
		if cfg.OnIteration != nil {
			cfg.OnIteration(iter, residual)
		}
		if residual < threshold {
			return toMapping(nodelist, x), nil
		}
	}

	return nil, centralityErrorf(tag, &PowerIterationFailedConvergence{MaxIter: cfg.MaxIter})
}
