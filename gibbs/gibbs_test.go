package gibbs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The published check tables report 9 significant figures.
func near9(a, b float64) bool {
	if b == 0 {
		return math.Abs(a) < 1.e-9
	}
	return math.Abs(a-b) < 5.e-9*math.Abs(b)
}

func TestGibbsWater(t *testing.T) {
	// IAPWS-09 Table 6.
	checks := []struct {
		t, p float64 // K, dbar
		g    float64 // J/kg
	}{
		{273.15, 101325. / DbarToPa, +0.101342743e3},
		{273.15, 1.e8 / DbarToPa, +0.977303868e5},
		{313.15, 101325. / DbarToPa, -0.116198898e5},
	}
	for _, c := range checks {
		assert.True(t, near9(Water.Eval(c.t, c.p), c.g), "g_water(%v, %v)", c.t, c.p)
	}
}

func TestGibbsSalt(t *testing.T) {
	// IAPWS-08 Tables 8-10, saline part.
	checks := []struct {
		t, p, s float64 // K, dbar, g/kg
		g       float64 // J/kg
	}{
		{273.15, 101325. / DbarToPa, 35.16504, -0.101342742e3},
		{353, 101325. / DbarToPa, 100, +0.150871740e5},
		{273.15, 1.e8 / DbarToPa, 35.16504, -0.260093051e4},
	}
	for _, c := range checks {
		assert.True(t, near9(Salt.Eval(c.t, c.p, c.s), c.g), "g_salt(%v, %v, %v)", c.t, c.p, c.s)
	}
}

func TestSeawaterComposition(t *testing.T) {
	// g_sw(T,p,S) == g_w(T,p) + g_s(T,p,S), bit for bit: the seawater
	// series evaluates its parts with the identical operations.
	pts := [][3]float64{
		{273.15, 10.1325, 35.16504},
		{293.15, 500, 35},
		{313.15, 10.1325, 100},
		{283.15, 1.e4, 5},
	}
	for _, pt := range pts {
		sum := Water.Eval(pt[0], pt[1]) + Salt.Eval(pt[0], pt[1], pt[2])
		assert.Equal(t, sum, Seawater.Eval(pt[0], pt[1], pt[2]))
	}
}

func TestZeroSalinity(t *testing.T) {
	// The cxi^2*ln(cxi) term must resolve to its limit 0 at S == 0,
	// not to the NaN of a naive 0*(-Inf).
	for _, pt := range [][2]float64{{273.15, 10.1325}, {313.15, 1.e4}, {280, 0.01}} {
		g := Salt.Eval(pt[0], pt[1], 0)
		assert.Equal(t, 0., g, "g_salt(%v, %v, 0)", pt[0], pt[1])
		assert.Equal(t, Water.Eval(pt[0], pt[1]), Seawater.Eval(pt[0], pt[1], 0))
	}
}

func TestValidity(t *testing.T) {
	// Pressure bounds are inclusive at 100 Pa and 1e8 Pa.
	assert.True(t, CheckValidity(300, 100./DbarToPa).Pressure)
	assert.True(t, CheckValidity(300, 1.e8/DbarToPa).Pressure)
	assert.False(t, CheckValidity(300, 99.9/DbarToPa).Pressure)
	assert.False(t, CheckValidity(300, (1.e8+1)/DbarToPa).Pressure)

	// Temperature is open below, closed above.
	assert.True(t, CheckValidity(313.15, 10.1325).Temperature)
	assert.False(t, CheckValidity(313.1500001, 10.1325).Temperature)
	pPa := 101325.
	tLow := 270.5 - pPa*7.43e-8
	assert.False(t, CheckValidity(tLow, pPa/DbarToPa).Temperature)
	assert.True(t, CheckValidity(tLow+1.e-9, pPa/DbarToPa).Temperature)

	// Total is the conjunction of the two sub-flags.
	for _, tt := range []float64{250, 270.5, 280, 313.15, 320} {
		for _, p := range []float64{0.001, 0.01, 100, 1.e4, 2.e4} {
			v := CheckValidity(tt, p)
			assert.Equal(t, v.Temperature && v.Pressure, v.Total)
		}
	}
}

func TestIdempotence(t *testing.T) {
	a := Seawater.Eval(293.15, 1000, 35.16504)
	for i := 0; i < 3; i++ {
		assert.Equal(t, a, Seawater.Eval(293.15, 1000, 35.16504))
	}
}

func TestArgumentChecks(t *testing.T) {
	assert.Panics(t, func() { Water.Eval(273.15, 10.1325, 35) })
	assert.Panics(t, func() { Salt.Eval(273.15, 10.1325) })
	assert.Panics(t, func() { Water.Partial(Salinity) })
	assert.Panics(t, func() { Salt.Partial(Salinity, Salinity) })
}
