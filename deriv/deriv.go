// Package deriv builds partial derivative functions of Gibbs energy
// functions. Built-in series advertise exact analytic derivatives
// through the gibbs.Differentiable capability; anything else falls back
// to central finite differences built on gonum diff/fd, which is adequate
// for well-scaled caller-supplied formulations but is not held to the
// 9-significant-figure accuracy of the analytic path.
//
// Whatever the backend, derivatives follow the IAPWS check-table
// convention: per K, per Pa and per kg/kg of absolute salinity, even
// though the arguments themselves are in K, dbar and g/kg.
package deriv

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/seatherm/teos10/gibbs"
)

// Partial returns the partial derivative of g along each variable in
// wrt, applied in order. Mixed second partials commute, so the order
// only matters for reproducing a particular rounding. With an empty wrt
// it returns g itself.
func Partial(g gibbs.Func, wrt ...gibbs.Var) gibbs.Func {
	if len(wrt) == 0 {
		return g
	}
	if d, ok := g.(gibbs.Differentiable); ok {
		return d.Partial(wrt...)
	}
	var saline int
	for _, v := range wrt {
		if int(v) >= g.NArgs() {
			panic("deriv: Gibbs function has no " + v.String() + " argument")
		}
		if v == gibbs.Salinity {
			saline++
		}
	}
	// The analytic backend rejects repeated salinity derivatives, so the
	// fallback does too; the backends stay interchangeable.
	if saline > 1 {
		panic("deriv: second salinity derivatives are not supported")
	}
	return &fdPartial{g: g, wrt: wrt}
}

// Shorthands for the derivative set the property formulas need,
// mirroring IAPWS-09 Table 3 / IAPWS-08 Table 4.
func DGdT(g gibbs.Func) gibbs.Func   { return Partial(g, gibbs.Temperature) }
func DGdP(g gibbs.Func) gibbs.Func   { return Partial(g, gibbs.Pressure) }
func DGdS(g gibbs.Func) gibbs.Func   { return Partial(g, gibbs.Salinity) }
func D2GdT2(g gibbs.Func) gibbs.Func { return Partial(g, gibbs.Temperature, gibbs.Temperature) }
func D2GdTdP(g gibbs.Func) gibbs.Func {
	return Partial(g, gibbs.Temperature, gibbs.Pressure)
}
func D2GdSdP(g gibbs.Func) gibbs.Func {
	return Partial(g, gibbs.Salinity, gibbs.Pressure)
}
func D2GdP2(g gibbs.Func) gibbs.Func { return Partial(g, gibbs.Pressure, gibbs.Pressure) }

// argScale converts a derivative taken along a public argument (K,
// dbar, g/kg) to the per-K, per-Pa, per-(kg/kg) convention.
func argScale(v gibbs.Var) float64 {
	switch v {
	case gibbs.Temperature:
		return 1
	case gibbs.Pressure:
		return gibbs.DbarToPa
	case gibbs.Salinity:
		return gibbs.GKgToKgKg
	}
	panic("deriv: unknown variable")
}

// fdPartial is the finite-difference backend for Gibbs functions that do
// not implement gibbs.Differentiable.
type fdPartial struct {
	g   gibbs.Func
	wrt []gibbs.Var
}

func (d *fdPartial) NArgs() int { return d.g.NArgs() }

func (d *fdPartial) Eval(args ...float64) float64 {
	if len(args) != d.g.NArgs() {
		panic("deriv: wrong number of state arguments")
	}
	return estimate(d.g, d.wrt, args)
}

func estimate(g gibbs.Func, wrt []gibbs.Var, args []float64) float64 {
	// Second order avoids nesting two central differences, which
	// amplifies the inner rounding noise beyond the signal: a repeated
	// variable uses the three-point formula, a mixed pair the four-point
	// cross stencil.
	if len(wrt) == 2 {
		if wrt[0] == wrt[1] {
			v := wrt[0]
			f := alongVar(g, nil, v, args)
			set := &fd.Settings{Formula: fd.Central2nd, Step: stepFor(fd.Central2nd.Step, args[v])}
			scale := argScale(v)
			return fd.Derivative(f, args[v], set) / (scale * scale)
		}
		return crossPartial(g, wrt[0], wrt[1], args)
	}
	v := wrt[len(wrt)-1]
	f := alongVar(g, wrt[:len(wrt)-1], v, args)
	set := &fd.Settings{Formula: fd.Central, Step: stepFor(fd.Central.Step, args[v])}
	return fd.Derivative(f, args[v], set) / argScale(v)
}

// stepFor widens a formula's default step in proportion to the argument
// magnitude. The defaults are absolute; at temperatures near 300 K and
// pressures in the thousands of dbar they lose most of the available
// digits to rounding.
func stepFor(def, x float64) float64 {
	if a := math.Abs(x); a > 1 {
		return def * a
	}
	return def
}

// crossPartial is the four-point cross stencil for a mixed second
// derivative, with each step scaled to its own argument: temperature
// and pressure arguments differ by orders of magnitude, and a shared
// step loses the signal to rounding noise on one axis or the other.
func crossPartial(g gibbs.Func, u, v gibbs.Var, args []float64) float64 {
	hu := stepFor(fd.Central2nd.Step, args[u])
	hv := stepFor(fd.Central2nd.Step, args[v])
	at := func(du, dv float64) float64 {
		pt := append([]float64(nil), args...)
		pt[u] += du
		pt[v] += dv
		return g.Eval(pt...)
	}
	return (at(hu, hv) - at(hu, -hv) - at(-hu, hv) + at(-hu, -hv)) /
		(4 * hu * hv * argScale(u) * argScale(v))
}

// alongVar freezes all arguments but v, recursing through any remaining
// inner derivatives.
func alongVar(g gibbs.Func, inner []gibbs.Var, v gibbs.Var, args []float64) func(float64) float64 {
	return func(x float64) float64 {
		pt := append([]float64(nil), args...)
		pt[v] = x
		if len(inner) == 0 {
			return g.Eval(pt...)
		}
		return estimate(g, inner, pt)
	}
}
