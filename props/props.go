// Package props derives named thermodynamic properties of water and
// seawater from a Gibbs energy function and its partial derivatives,
// following IAPWS-09 Table 3 and IAPWS-08 Table 5.
//
// Every property takes a State and an optional Gibbs function, which
// defaults to gibbs.Seawater. Properties are pure: the same inputs give
// bit-identical outputs. Validity of the state point is not checked
// here; callers who care invoke gibbs.CheckValidity themselves. Where a
// formula hits a genuine physical singularity (a vanishing pressure
// derivative, a negative radicand in the sound speed) the non-finite
// result is returned as is.
package props

import (
	"math"

	"github.com/seatherm/teos10/deriv"
	"github.com/seatherm/teos10/gibbs"
)

// State is one evaluation point. Salinity is ignored by two-argument
// Gibbs functions.
type State struct {
	T float64 // temperature, K
	P float64 // pressure, dbar
	S float64 // salinity, g/kg
}

// args flattens a state to the argument list of g.
func (st State) args(g gibbs.Func) []float64 {
	if g.NArgs() == 2 {
		return []float64{st.T, st.P}
	}
	return []float64{st.T, st.P, st.S}
}

// pPa is the absolute pressure in Pa, the unit the energy formulas
// combine with the per-Pa pressure derivative.
func (st State) pPa() float64 { return st.P * gibbs.DbarToPa }

// sAbs is the absolute salinity in kg/kg.
func (st State) sAbs() float64 { return st.S * gibbs.GKgToKgKg }

func pick(gfunc []gibbs.Func) gibbs.Func {
	if len(gfunc) > 0 {
		return gfunc[0]
	}
	return gibbs.Seawater
}

// needSalinity panics unless g carries a salinity argument. Requesting a
// saline property of a pure water function is a programming error, not a
// state-dependent failure.
func needSalinity(g gibbs.Func) {
	if g.NArgs() < 3 {
		panic("props: property needs a salinity argument, Gibbs function has none")
	}
}

// Gibbs evaluates the Gibbs energy itself in J/kg.
func Gibbs(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return g.Eval(st.args(g)...)
}

// Density (rho) in kg/m^3. IAPWS-09 Table 3 (4).
func Density(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return 1 / deriv.DGdP(g).Eval(st.args(g)...)
}

// Entropy (s) in J/(kg K). IAPWS-09 Table 3 (5).
func Entropy(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return -deriv.DGdT(g).Eval(st.args(g)...)
}

// HeatCapacity is the specific isobaric heat capacity (c_p) in
// J/(kg K). IAPWS-09 Table 3 (6).
func HeatCapacity(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return -st.T * deriv.D2GdT2(g).Eval(st.args(g)...)
}

// Enthalpy (h) in J/kg. IAPWS-09 Table 3 (7).
func Enthalpy(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return g.Eval(st.args(g)...) + st.T*Entropy(st, g)
}

// InternalEnergy (u) in J/kg. IAPWS-09 Table 3 (8).
func InternalEnergy(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return Enthalpy(st, g) - st.pPa()*deriv.DGdP(g).Eval(st.args(g)...)
}

// HelmholtzEnergy (f) in J/kg. IAPWS-09 Table 3 (9).
func HelmholtzEnergy(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return g.Eval(st.args(g)...) - st.pPa()*deriv.DGdP(g).Eval(st.args(g)...)
}

// ThermalExpansion coefficient (alpha) in 1/K. IAPWS-09 Table 3 (10).
func ThermalExpansion(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	args := st.args(g)
	return deriv.D2GdTdP(g).Eval(args...) / deriv.DGdP(g).Eval(args...)
}

// AdiabaticLapseRate is the isentropic temperature-pressure coefficient
// (beta_s) in K/Pa. IAPWS-09 Table 3 (11).
func AdiabaticLapseRate(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	args := st.args(g)
	return -deriv.D2GdTdP(g).Eval(args...) / deriv.DGdP(g).Eval(args...)
}

// IsothermalCompressibility (kappa_T) in 1/Pa. IAPWS-09 Table 3 (12).
func IsothermalCompressibility(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	args := st.args(g)
	return -deriv.D2GdP2(g).Eval(args...) / deriv.DGdP(g).Eval(args...)
}

// IsentropicCompressibility (kappa_s) in 1/Pa. IAPWS-09 Table 3 (13).
func IsentropicCompressibility(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	args := st.args(g)
	gTp := deriv.D2GdTdP(g).Eval(args...)
	gTT := deriv.D2GdT2(g).Eval(args...)
	gpp := deriv.D2GdP2(g).Eval(args...)
	return (gTp*gTp - gTT*gpp) /
		(deriv.DGdP(g).Eval(args...) * deriv.DGdT(g).Eval(args...))
}

// SoundSpeed (w) in m/s. IAPWS-09 Table 3 (14).
func SoundSpeed(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	args := st.args(g)
	gTp := deriv.D2GdTdP(g).Eval(args...)
	gTT := deriv.D2GdT2(g).Eval(args...)
	gpp := deriv.D2GdP2(g).Eval(args...)
	return deriv.DGdP(g).Eval(args...) * math.Sqrt(gTT/(gTp*gTp-gTT*gpp))
}

// ChemicalPotentialRelative (mu) in J/kg. IAPWS-08 Table 5 (25).
func ChemicalPotentialRelative(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	needSalinity(g)
	return deriv.DGdS(g).Eval(st.args(g)...)
}

// ChemicalPotentialWater is the chemical potential of H2O in seawater
// (mu_W) in J/kg. IAPWS-08 Table 5 (26).
func ChemicalPotentialWater(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	needSalinity(g)
	args := st.args(g)
	return g.Eval(args...) - st.sAbs()*deriv.DGdS(g).Eval(args...)
}

// ChemicalPotentialSalt is the chemical potential of sea salt (mu_S) in
// J/kg. IAPWS-08 Table 5 (27).
func ChemicalPotentialSalt(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	needSalinity(g)
	args := st.args(g)
	return g.Eval(args...) + (1-st.sAbs())*deriv.DGdS(g).Eval(args...)
}

// Molality of seawater in mol/kg from absolute salinity in kg/kg.
func Molality(sAbs float64) float64 {
	return sAbs / ((1 - sAbs) * gibbs.SaltMolarMass)
}

// OsmoticCoefficient (phi), dimensionless. IAPWS-08 Table 5 (28).
func OsmoticCoefficient(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	return -ChemicalPotentialWater(st, g) /
		(Molality(st.sAbs()) * gibbs.GasConstant * st.T)
}

// HalineContraction coefficient (beta) in kg/kg. IAPWS-08 Table 5 (29).
func HalineContraction(st State, gfunc ...gibbs.Func) float64 {
	g := pick(gfunc)
	needSalinity(g)
	args := st.args(g)
	return -deriv.D2GdSdP(g).Eval(args...) / deriv.DGdP(g).Eval(args...)
}
