// SPDX-License-Identifier: MIT

package centrality_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlrank/centrality"
)

func TestDefaultOptions_Contract(t *testing.T) {
	t.Parallel()

	o := centrality.DefaultOptions()
	assert.Equal(t, 0.85, o.Alpha)
	assert.Equal(t, 100, o.MaxIter)
	assert.Equal(t, 1.0e-6, o.Tol)
	assert.Equal(t, "weight", o.Weight)
	assert.True(t, o.Normalized)
	assert.Nil(t, o.OnIteration)
}

func TestOptions_NonFiniteRejected(t *testing.T) {
	t.Parallel()

	for name, opt := range map[string]centrality.Option{
		"alpha NaN": centrality.WithAlpha(math.NaN()),
		"tol +Inf":  centrality.WithTol(math.Inf(1)),
	} {
		_, err := centrality.PageRank[string](cycleView(t), opt)
		require.ErrorIs(t, err, centrality.ErrOptionViolation, name)
		require.Contains(t, err.Error(), "finite", name)
	}
}

func TestOptions_RawSetterIsValidated(t *testing.T) {
	t.Parallel()

	// Options is exported, so callers may write fields directly; validation still applies.
	raw := func(o *centrality.Options) { o.MaxIter = -3 }
	_, _, err := centrality.HITS[string](cycleView(t), raw)
	require.ErrorIs(t, err, centrality.ErrOptionViolation)
	require.Contains(t, err.Error(), "MaxIter")
}

func TestOptions_NilOptionIgnoredAndNilMapIsDefault(t *testing.T) {
	t.Parallel()

	base, err := centrality.PageRank[string](diamondView(t))
	require.NoError(t, err)

	var none map[string]float64
	got, err := centrality.PageRank[string](diamondView(t), nil, centrality.WithPersonalization(none))
	require.NoError(t, err)
	require.Equal(t, base, got)
}

func TestOptions_LastWriteWins(t *testing.T) {
	t.Parallel()

	_, err := centrality.PageRank[string](cycleView(t), centrality.WithMaxIter(0), centrality.WithMaxIter(50))
	require.NoError(t, err)
}
