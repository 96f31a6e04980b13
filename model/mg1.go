package model

import (
	"fmt"
	"math"
)

// Model is the closed-form M/G/1-with-vacations result for one parameter
// point, ported line-for-line from
// original_source/virt_queueing_model.py: QueueingSystemModel_MG1, with
// symbol names preserved (spec.md §4.6).
type Model struct {
	N, C, S, Rs int
	TClk        float64
	Lambd       float64

	OfferedLoad float64

	TCS, TT, TS, TV float64
	X, X2, X3       float64
	MuS             float64
	Ps, Pv, Pcs     float64
	Ws              float64

	RsGtF float64
	RsMin int

	Rho float64
	P0  float64
	V   float64

	Wh, Wq, WTOT float64
	Nq, Ns, NTOT float64
}

// New builds the model directly from an arrival rate Lambd.
func New(n, c, s, rs int, tClk, lambd float64) (*Model, error) {
	if n < c || n%c != 0 {
		return nil, fmt.Errorf("%w: N=%d must be >= C=%d and a multiple of it", ErrInvalidParameter, n, c)
	}
	m := &Model{N: n, C: c, S: s, Rs: rs, TClk: tClk, Lambd: lambd}
	m.compute()
	return m, nil
}

// NewFromRho builds the model from a target utilization rho instead of an
// arrival rate directly.
func NewFromRho(n, c, s, rs int, tClk, rho float64) (*Model, error) {
	return New(n, c, s, rs, tClk, LambdFromRho(n, c, s, rs, tClk, rho))
}

// NewFromOfferedLoad builds the model from an offered load instead of an
// arrival rate directly.
func NewFromOfferedLoad(n, c, s, rs int, tClk, offeredLoad float64) (*Model, error) {
	return New(n, c, s, rs, tClk, LambdFromOfferedLoad(n, tClk, offeredLoad))
}

// OfferedLoadFromLambd converts an arrival rate to the dimensionless
// offered load N*lambd*t_clk.
func OfferedLoadFromLambd(n int, tClk, lambd float64) float64 {
	return lambd * float64(n) * tClk
}

// LambdFromOfferedLoad is the inverse of OfferedLoadFromLambd.
func LambdFromOfferedLoad(n int, tClk, offeredLoad float64) float64 {
	return offeredLoad / (float64(n) * tClk)
}

// LambdFromRho converts a target utilization rho to the arrival rate that
// achieves it, for the given scheduling geometry.
func LambdFromRho(n, c, s, rs int, tClk, rho float64) float64 {
	nf, cf, sf, rsf := float64(n), float64(c), float64(s), float64(rs)
	muS := rsf / ((rsf*nf + sf*nf/cf) * tClk)
	return rho * muS
}

// OfferedLoadFromRho composes LambdFromRho and OfferedLoadFromLambd.
func OfferedLoadFromRho(n, c, s, rs int, tClk, rho float64) float64 {
	lambd := LambdFromRho(n, c, s, rs, tClk, rho)
	return OfferedLoadFromLambd(n, tClk, lambd)
}

// IsStable reports rho < 1.
func (m *Model) IsStable() bool { return m.Rho < 1 }

func (m *Model) compute() {
	n, c, s, rs := float64(m.N), float64(m.C), float64(m.S), float64(m.Rs)
	tClk, lambd := m.TClk, m.Lambd

	TCS := s * n / c
	TT := rs*n + TCS
	TS := rs * c
	TV := TT - TS
	X := c * tClk
	X2 := X * X
	X3 := X2 * X
	muS := rs / (TT * tClk)

	ps := TS / TT
	pv := 1 - ps
	pcs := TCS / TT

	Ws := X

	offeredLoad := OfferedLoadFromLambd(m.N, tClk, lambd)
	RsGtF := (s * n * lambd * tClk) / (c * (1 - n*lambd*tClk))
	RsMin := 1 + int(math.Floor(RsGtF))

	rho := lambd / muS

	// p0 is NaN whenever rho >= 1 (or is itself NaN); everything derived
	// from it (V, Wh, Wq, ...) inherits that NaN through ordinary
	// arithmetic, so no separate branch is needed downstream.
	p0 := math.NaN()
	if rho < 1 {
		p0 = 1 - rho
	}

	V := 0.5*p0*(1-ps)*TV*tClk + 0.5*p0*ps*c*tClk + (1-p0)*(TV*tClk)/rs
	Wh := V / (1 - rho)
	Wq := Wh + lambd*X2/(2*(1-rho))
	WTOT := Wq + Ws

	Nq := lambd * Wq
	Ns := lambd * Ws
	NTOT := lambd * WTOT

	m.OfferedLoad = offeredLoad
	m.TCS, m.TT, m.TS, m.TV = TCS, TT, TS, TV
	m.X, m.X2, m.X3 = X, X2, X3
	m.MuS = muS
	m.Ps, m.Pv, m.Pcs = ps, pv, pcs
	m.Ws = Ws
	m.RsGtF = RsGtF
	m.RsMin = RsMin
	m.Rho = rho
	m.P0 = p0
	m.V = V
	m.Wh, m.Wq, m.WTOT = Wh, Wq, WTOT
	m.Nq, m.Ns, m.NTOT = Nq, Ns, NTOT
}
