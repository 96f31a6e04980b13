package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsInvalidGeometry(t *testing.T) {
	_, err := New(10, 3, 1, 5, 1.0, 0.1)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = New(2, 10, 1, 5, 1.0, 0.1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestModel_StableParameterPointHasFiniteWaitTimes(t *testing.T) {
	m, err := NewFromOfferedLoad(100, 10, 100, 11, 1.0, 0.5)
	require.NoError(t, err)

	assert.True(t, m.IsStable())
	assert.Less(t, m.Rho, 1.0)
	assert.Equal(t, m.X, m.Ws)
	assert.InDelta(t, float64(m.C)*m.TClk, m.X, 1e-12)
	assert.InDelta(t, m.TS+m.TV, m.TT, 1e-9)
	assert.InDelta(t, 1.0, m.Ps+m.Pv, 1e-9)

	assert.False(t, math.IsNaN(m.P0))
	assert.False(t, math.IsNaN(m.Wq))
	assert.Greater(t, m.Wq, 0.0)
	assert.InDelta(t, m.Wq+m.Ws, m.WTOT, 1e-9)
	assert.InDelta(t, m.Lambd*m.Wq, m.Nq, 1e-9)
	assert.InDelta(t, m.Lambd*m.Ws, m.Ns, 1e-9)
	assert.InDelta(t, m.Lambd*m.WTOT, m.NTOT, 1e-9)
}

func TestModel_OverloadedParameterPointYieldsNaNWaitTimes(t *testing.T) {
	// Arrival rate far beyond the server's capacity.
	m, err := New(100, 10, 100, 11, 1.0, 1.0)
	require.NoError(t, err)

	assert.False(t, m.IsStable())
	assert.True(t, m.Rho >= 1)
	assert.True(t, math.IsNaN(m.P0))
	assert.True(t, math.IsNaN(m.V))
	assert.True(t, math.IsNaN(m.Wq))
	assert.True(t, math.IsNaN(m.WTOT))

	// Geometry-only quantities are unaffected by instability.
	assert.False(t, math.IsNaN(m.TT))
	assert.False(t, math.IsNaN(m.X))
}

func TestLambdFromRho_RoundTripsThroughModelRho(t *testing.T) {
	const wantRho = 0.6
	m, err := NewFromRho(40, 4, 20, 8, 1.0, wantRho)
	require.NoError(t, err)
	assert.InDelta(t, wantRho, m.Rho, 1e-9)
}

func TestOfferedLoadFromLambd_RoundTrips(t *testing.T) {
	n := 20
	tClk := 0.5
	lambd := 0.03
	offered := OfferedLoadFromLambd(n, tClk, lambd)
	back := LambdFromOfferedLoad(n, tClk, offered)
	assert.InDelta(t, lambd, back, 1e-12)
}

func TestModel_RsMinIsFloorPlusOneOfRsGtF(t *testing.T) {
	m, err := NewFromOfferedLoad(100, 10, 100, 11, 1.0, 0.3)
	require.NoError(t, err)
	assert.Equal(t, 1+int(math.Floor(m.RsGtF)), m.RsMin)
}
