package dist

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededFloat64Source(seed int64) func() float64 {
	r := rand.New(rand.NewSource(seed))
	return r.Float64
}

func relClose(t *testing.T, got, want, reltol float64) {
	t.Helper()
	if want == 0 {
		assert.InDelta(t, want, got, reltol)
		return
	}
	assert.LessOrEqual(t, math.Abs(got-want)/math.Abs(want), reltol)
}

func TestMoment1EqualsMean(t *testing.T) {
	// BDD: for every distribution, moment(1) == mean() within 1e-6 relative.
	dists := []Distribution{
		NewDeterministic(0.3),
		NewExponential(0.3),
		mustErlang(t, 0.3, 4),
		mustHypo(t, 0.3, []float64{1, 2, 3}),
		mustHyper(t, 0.3, []float64{1, 10}, []float64{1, 3.26}),
	}
	for _, d := range dists {
		m1, err := d.Moment(1)
		require.NoError(t, err)
		relClose(t, m1, d.Mean(), 1e-6)
	}
}

func TestVarianceEqualsMoment2MinusMean2(t *testing.T) {
	dists := []Distribution{
		NewDeterministic(0.3),
		NewExponential(0.3),
		mustErlang(t, 0.3, 4),
		mustHypo(t, 0.3, []float64{1, 2, 3}),
		mustHyper(t, 0.3, []float64{1, 10}, []float64{1, 3.26}),
	}
	for _, d := range dists {
		m2, err := d.Moment(2)
		require.NoError(t, err)
		want := m2 - d.Mean()*d.Mean()
		relClose(t, d.Variance(), want, 1e-6)
	}
}

func TestHypoMeanIsReciprocalOfLambda(t *testing.T) {
	lambd := 0.07
	d := mustHypo(t, lambd, []float64{2, 5, 1})
	assert.InDelta(t, 1/lambd, d.Mean(), 1e-12)
}

func TestHyperMeanIsReciprocalOfLambda(t *testing.T) {
	lambd := 0.25
	d := mustHyper(t, lambd, []float64{1, 10}, []float64{1, 3.26})
	assert.InDelta(t, 1/lambd, d.Mean(), 1e-12)
}

func TestErlangMomentNotImplementedAboveThree(t *testing.T) {
	d := mustErlang(t, 1, 4)
	_, err := d.Moment(4)
	assert.ErrorIs(t, err, ErrNotImplementedMoment)
}

func TestHypoMomentNotImplementedAboveThree(t *testing.T) {
	d := mustHypo(t, 1, []float64{1, 2})
	_, err := d.Moment(4)
	assert.ErrorIs(t, err, ErrNotImplementedMoment)
}

func TestErlangInvalidK(t *testing.T) {
	_, err := NewErlang(1, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestParseRoundTrip_Hyper(t *testing.T) {
	// Scenario 4: parsing "Hyper(WL=[1, 10], WP=[1, 3.26])".
	kind, args, err := Parse("Hyper(WL=[1, 10], WP=[1, 3.26])")
	require.NoError(t, err)
	assert.Equal(t, KindHyperexponential, kind)
	assert.Equal(t, []float64{1, 10}, args.LambdWeights)
	assert.Equal(t, []float64{1, 3.26}, args.ProbWeights)

	d, err := Instantiate(kind, args, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d.Mean(), 1e-12)
}

func TestParseErlang(t *testing.T) {
	kind, args, err := Parse("E4")
	require.NoError(t, err)
	assert.Equal(t, KindErlang, kind)
	assert.Equal(t, 4, args.K)
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"X", "E0", "Ek", "Hypo(1,2", "Hyper(WL=[1],WP=[1,2])x"} {
		_, _, err := Parse(s)
		assert.ErrorIs(t, err, ErrMalformedType, "input %q should be malformed", s)
	}
}

func TestParseHypoWithWhitespace(t *testing.T) {
	kind, args, err := Parse("Hypo( 1 , 2 , 3 )")
	require.NoError(t, err)
	assert.Equal(t, KindHypoexponential, kind)
	assert.Equal(t, []float64{1, 2, 3}, args.Weights)
}

func TestWeightedChoice_Deterministic(t *testing.T) {
	wc := NewWeightedChoice([]float64{1, 1, 1})
	assert.Equal(t, 0, wc.Choice(0.0))
	assert.Equal(t, 0, wc.Choice(0.32))
	assert.Equal(t, 1, wc.Choice(0.5))
	assert.Equal(t, 2, wc.Choice(0.99))
}

func TestWeightedChoice_FrequencyWithinFourSigma(t *testing.T) {
	weights := []float64{1, 3, 6}
	total := 10.0
	wc := NewWeightedChoice(weights)

	const n = 1_000_000
	counts := make([]int, len(weights))
	// Deterministic pseudo-random sequence via a fixed LCG-free approach:
	// use math/rand with a fixed seed for reproducibility.
	src := newSeededFloat64Source(12345)
	for i := 0; i < n; i++ {
		counts[wc.Choice(src())]++
	}

	for i, w := range weights {
		p := w / total
		mean := p * n
		sigma := math.Sqrt(n * p * (1 - p))
		assert.LessOrEqual(t, math.Abs(float64(counts[i])-mean), 4*sigma,
			"outcome %d: got %d, want within 4 sigma of %v", i, counts[i], mean)
	}
}

func mustErlang(t *testing.T, lambd float64, k int) *Erlang {
	t.Helper()
	d, err := NewErlang(lambd, k)
	require.NoError(t, err)
	return d
}

func mustHypo(t *testing.T, lambd float64, weights []float64) *Hypoexponential {
	t.Helper()
	d, err := NewHypoexponential(lambd, weights)
	require.NoError(t, err)
	return d
}

func mustHyper(t *testing.T, lambd float64, lambdWeights, probWeights []float64) *Hyperexponential {
	t.Helper()
	d, err := NewHyperexponential(lambd, lambdWeights, probWeights)
	require.NoError(t, err)
	return d
}
