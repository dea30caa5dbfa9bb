package deriv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seatherm/teos10/gibbs"
)

func near(a, b, tol float64) bool {
	if b == 0 {
		return math.Abs(a) < tol
	}
	return math.Abs(a-b) < tol*math.Abs(b)
}

// The three saline state points of IAPWS-08 Tables 8-10.
var saltPoints = [][3]float64{
	{273.15, 101325. / gibbs.DbarToPa, 35.16504},
	{353, 101325. / gibbs.DbarToPa, 100},
	{273.15, 1.e8 / gibbs.DbarToPa, 35.16504},
}

// TestSaltDerivatives compares the analytic derivatives of the saline
// Gibbs function with the IAPWS-08 check values, which are exact for
// this part of the formulation (the water columns of those tables are
// quoted from IAPWS-95 instead and only agree with the IAPWS-09
// polynomial to about six digits).
func TestSaltDerivatives(t *testing.T) {
	checks := map[string]struct {
		wrt  []gibbs.Var
		want [3]float64
	}{
		"dG_dS":    {[]gibbs.Var{gibbs.Salinity}, [3]float64{+0.639974067e5, +0.251957276e6, -0.545861581e4}},
		"dG_dT":    {[]gibbs.Var{gibbs.Temperature}, [3]float64{-0.147643376, +0.156230907e3, +0.754045685e1}},
		"dG_dp":    {[]gibbs.Var{gibbs.Pressure}, [3]float64{-0.274957224e-4, -0.579227286e-4, -0.229123842e-4}},
		"d2G_dSdp": {[]gibbs.Var{gibbs.Salinity, gibbs.Pressure}, [3]float64{-0.759615412e-3, -0.305957802e-3, -0.640757619e-3}},
		"d2G_dT2":  {[]gibbs.Var{gibbs.Temperature, gibbs.Temperature}, [3]float64{+0.852861151, +0.127922649e1, +0.488076974}},
		"d2G_dTdp": {[]gibbs.Var{gibbs.Temperature, gibbs.Pressure}, [3]float64{+0.119286787e-6, +0.803061596e-6, +0.466284412e-7}},
		"d2G_dp2":  {[]gibbs.Var{gibbs.Pressure, gibbs.Pressure}, [3]float64{+0.581535172e-13, +0.213086154e-12, +0.357345736e-13}},
	}
	for name, c := range checks {
		d := Partial(gibbs.Salt, c.wrt...)
		for i, pt := range saltPoints {
			got := d.Eval(pt[0], pt[1], pt[2])
			assert.True(t, near(got, c.want[i], 5.e-9), "%s at point %d: got %v want %v", name, i, got, c.want[i])
		}
	}
}

// Salinity derivatives of the full seawater function equal those of its
// saline part: the water part carries no salinity dependence.
func TestSeawaterSalinityDerivatives(t *testing.T) {
	for _, pt := range saltPoints {
		assert.Equal(t,
			DGdS(gibbs.Salt).Eval(pt[0], pt[1], pt[2]),
			DGdS(gibbs.Seawater).Eval(pt[0], pt[1], pt[2]))
		assert.Equal(t,
			D2GdSdP(gibbs.Salt).Eval(pt[0], pt[1], pt[2]),
			D2GdSdP(gibbs.Seawater).Eval(pt[0], pt[1], pt[2]))
	}
}

func TestMixedPartialSymmetry(t *testing.T) {
	funcs := []gibbs.Func{gibbs.Water, gibbs.Salt, gibbs.Seawater}
	for _, g := range funcs {
		tp := Partial(g, gibbs.Temperature, gibbs.Pressure)
		pt := Partial(g, gibbs.Pressure, gibbs.Temperature)
		for _, s := range saltPoints {
			args := []float64{s[0], s[1], s[2]}[:g.NArgs()]
			assert.True(t, near(tp.Eval(args...), pt.Eval(args...), 1.e-12))
		}
	}
}

// opaque hides the Differentiable capability, forcing the finite
// difference backend.
type opaque struct{ g gibbs.Func }

func (o opaque) NArgs() int                   { return o.g.NArgs() }
func (o opaque) Eval(args ...float64) float64 { return o.g.Eval(args...) }

func TestFiniteDifferenceFallback(t *testing.T) {
	pt := []float64{293.15, 1000, 35.16504}
	w := pt[:2]

	// First order, against the analytic path.
	assert.True(t, near(
		DGdT(opaque{gibbs.Water}).Eval(w...), DGdT(gibbs.Water).Eval(w...), 1.e-6))
	assert.True(t, near(
		DGdP(opaque{gibbs.Water}).Eval(w...), DGdP(gibbs.Water).Eval(w...), 1.e-6))
	assert.True(t, near(
		DGdS(opaque{gibbs.Salt}).Eval(pt...), DGdS(gibbs.Salt).Eval(pt...), 1.e-6))

	// Second order tolerances are looser: the fallback is for
	// caller-supplied functions, not for the reference tables.
	assert.True(t, near(
		D2GdT2(opaque{gibbs.Water}).Eval(w...), D2GdT2(gibbs.Water).Eval(w...), 1.e-4))
	assert.True(t, near(
		D2GdTdP(opaque{gibbs.Seawater}).Eval(pt...), D2GdTdP(gibbs.Seawater).Eval(pt...), 1.e-4))
	assert.True(t, near(
		D2GdSdP(opaque{gibbs.Salt}).Eval(pt...), D2GdSdP(gibbs.Salt).Eval(pt...), 1.e-4))

	// Mixed partials need a step per argument: a single shared step sized
	// for one axis drowns the other axis in rounding noise.
	for _, s := range saltPoints {
		args := []float64{s[0], s[1], s[2]}
		assert.True(t, near(
			D2GdTdP(opaque{gibbs.Seawater}).Eval(args...),
			D2GdTdP(gibbs.Seawater).Eval(args...), 1.e-4))
	}
}

func TestMissingArgument(t *testing.T) {
	assert.Panics(t, func() { Partial(gibbs.Water, gibbs.Salinity) })
	assert.Panics(t, func() { Partial(opaque{gibbs.Water}, gibbs.Salinity) })
	// Both backends reject a repeated salinity derivative.
	assert.Panics(t, func() { Partial(gibbs.Salt, gibbs.Salinity, gibbs.Salinity) })
	assert.Panics(t, func() { Partial(opaque{gibbs.Salt}, gibbs.Salinity, gibbs.Salinity) })
}

func TestEmptyPartial(t *testing.T) {
	g := Partial(gibbs.Water)
	assert.Equal(t, gibbs.Water.Eval(273.15, 10.1325), g.Eval(273.15, 10.1325))
}
