package gibbs

import (
	"math"

	"github.com/james-bowman/sparse"
)

// Var identifies one argument of a Gibbs function, in calling order.
type Var int

const (
	Temperature Var = iota
	Pressure
	Salinity
)

func (v Var) String() string {
	switch v {
	case Temperature:
		return "temperature"
	case Pressure:
		return "pressure"
	case Salinity:
		return "salinity"
	}
	return "unknown"
}

// Func is the capability every Gibbs energy function exposes. The
// property and differentiation layers depend only on this interface, so
// caller-supplied formulations are interchangeable with the built-in
// IAPWS series.
type Func interface {
	// NArgs reports the number of state arguments: 2 for pure water
	// functions (temperature, pressure), 3 when salinity is present.
	NArgs() int
	// Eval returns the value at a state point. Arguments are
	// temperature in K, pressure in dbar and, when present, salinity
	// in g/kg.
	Eval(args ...float64) float64
}

// Differentiable is implemented by Gibbs functions able to produce their
// own exact partial derivatives. Derivative functions accept the same
// arguments as the parent but are expressed per K, per Pa and per kg/kg
// of absolute salinity, the convention of the IAPWS check tables.
type Differentiable interface {
	Func
	// Partial returns the partial derivative along each variable in
	// wrt, applied in order. It panics when asked for a salinity
	// derivative of a function without a salinity argument.
	Partial(wrt ...Var) Func
}

// evalSeries sums a sparse power series. CSR row-major iteration gives
// ascending (j,k) term order, so rounding is reproducible run to run.
func evalSeries(c *sparse.CSR, x, y float64) (sum float64) {
	c.DoNonZero(func(j, k int, g float64) {
		sum += g * ipow(x, j) * ipow(y, k)
	})
	return
}

// ipow is x^n for small non-negative n, with 0^0 == 1.
func ipow(x float64, n int) float64 {
	p := 1.0
	for ; n > 0; n-- {
		p *= x
	}
	return p
}

// diffTau differentiates a reduced series with respect to temperature in
// K: each (j,k) term maps to (j-1,k) scaled by j/TStar.
func diffTau(m *sparse.CSR) *sparse.CSR {
	rows, cols := m.Dims()
	var cs []coef
	m.DoNonZero(func(j, k int, g float64) {
		if j == 0 {
			return
		}
		cs = append(cs, coef{j - 1, k, g * float64(j) / TStar})
	})
	return buildCSR(rows, cols, cs)
}

// diffPi differentiates with respect to pressure in Pa: (j,k) maps to
// (j,k-1) scaled by k/PStar.
func diffPi(m *sparse.CSR) *sparse.CSR {
	rows, cols := m.Dims()
	var cs []coef
	m.DoNonZero(func(j, k int, g float64) {
		if k == 0 {
			return
		}
		cs = append(cs, coef{j, k - 1, g * float64(k) / PStar})
	})
	return buildCSR(rows, cols, cs)
}

// waterSeries is the IAPWS-09 pure water Gibbs function, or any partial
// derivative of it: the series family is closed under term-by-term
// differentiation of the coefficient table.
type waterSeries struct {
	c *sparse.CSR
}

func (w *waterSeries) NArgs() int { return 2 }

func (w *waterSeries) Eval(args ...float64) float64 {
	t, p := args2(args)
	ctau := (t - TZero) / TStar
	cpi := (p*DbarToPa - PNorm) / PStar
	return evalSeries(w.c, ctau, cpi)
}

func (w *waterSeries) Partial(wrt ...Var) Func {
	c := w.c
	for _, v := range wrt {
		switch v {
		case Temperature:
			c = diffTau(c)
		case Pressure:
			c = diffPi(c)
		default:
			panic("gibbs: pure water Gibbs function has no " + v.String() + " argument")
		}
	}
	return &waterSeries{c: c}
}

// saltSeries is the IAPWS-08 saline part of the seawater Gibbs function.
// tables[i] holds the (j,k) series multiplying the salinity basis
// function of power i. At most one salinity derivative can be applied;
// the property formulas never need a second.
type saltSeries struct {
	tables []*sparse.CSR
	dSalt  bool
}

func (s *saltSeries) NArgs() int { return 3 }

func (s *saltSeries) Eval(args ...float64) float64 {
	t, p, sal := args3(args)
	var (
		ctau = (t - TZero) / TStar
		cpi  = (p*DbarToPa - PNorm) / PStar
		cxi  = math.Sqrt(sal * GKgToKgKg / SStar)
		sum  float64
	)
	for i, c := range s.tables {
		if c == nil {
			continue
		}
		sum += s.xiBasis(i, cxi) * evalSeries(c, ctau, cpi)
	}
	return sum
}

// xiBasis is the salinity factor multiplying the (j,k) series of power
// i: cxi^2*ln(cxi) at i == 1, cxi^i for i >= 2 (IAPWS-08 Eq. 4). The
// i == 1 term is forced to its limit 0 at zero salinity; evaluated
// naively, 0*(-Inf) would poison the sum with NaN. With one salinity
// derivative applied the factors become (ln(cxi)+1/2)/SStar and
// i*cxi^(i-2)/(2*SStar); the logarithmic divergence at S = 0 is then
// genuine and is left to propagate.
func (s *saltSeries) xiBasis(i int, cxi float64) float64 {
	if s.dSalt {
		if i == 1 {
			return (math.Log(cxi) + 0.5) / SStar
		}
		return float64(i) * ipow(cxi, i-2) / (2 * SStar)
	}
	if i == 1 {
		if cxi == 0 {
			return 0
		}
		return cxi * cxi * math.Log(cxi)
	}
	return ipow(cxi, i)
}

func (s *saltSeries) Partial(wrt ...Var) Func {
	out := &saltSeries{tables: append([]*sparse.CSR(nil), s.tables...), dSalt: s.dSalt}
	for _, v := range wrt {
		switch v {
		case Temperature:
			for i, c := range out.tables {
				if c != nil {
					out.tables[i] = diffTau(c)
				}
			}
		case Pressure:
			for i, c := range out.tables {
				if c != nil {
					out.tables[i] = diffPi(c)
				}
			}
		case Salinity:
			if out.dSalt {
				panic("gibbs: second salinity derivatives are not supported")
			}
			out.dSalt = true
		default:
			panic("gibbs: unknown variable")
		}
	}
	return out
}

// seawaterSeries is the sum of the water and salt series. A salinity
// derivative drops the water part entirely.
type seawaterSeries struct {
	water *waterSeries
	salt  *saltSeries
}

func (sw *seawaterSeries) NArgs() int { return 3 }

func (sw *seawaterSeries) Eval(args ...float64) float64 {
	t, p, sal := args3(args)
	var sum float64
	if sw.water != nil {
		sum = sw.water.Eval(t, p)
	}
	return sum + sw.salt.Eval(t, p, sal)
}

func (sw *seawaterSeries) Partial(wrt ...Var) Func {
	out := &seawaterSeries{water: sw.water, salt: sw.salt}
	for _, v := range wrt {
		if v == Salinity {
			out.water = nil
		} else if out.water != nil {
			out.water = out.water.Partial(v).(*waterSeries)
		}
		out.salt = out.salt.Partial(v).(*saltSeries)
	}
	return out
}

func args2(args []float64) (t, p float64) {
	if len(args) != 2 {
		panic("gibbs: want 2 arguments: temperature K, pressure dbar")
	}
	return args[0], args[1]
}

func args3(args []float64) (t, p, s float64) {
	if len(args) != 3 {
		panic("gibbs: want 3 arguments: temperature K, pressure dbar, salinity g/kg")
	}
	return args[0], args[1], args[2]
}
