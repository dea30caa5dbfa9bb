// Package gibbs implements the TEOS-10 Gibbs energy functions for pure
// water (IAPWS-09) and seawater (IAPWS-08) as sparse power series in
// reduced temperature, pressure and salinity. Thermodynamic properties
// are obtained from these functions by partial differentiation; see the
// deriv and props packages.
//
// All public state arguments are temperature in K, pressure in dbar and
// salinity (reference composition) in g/kg.
package gibbs

var (
	// Water is the Gibbs energy of pure water g(T,p) in J/kg,
	// IAPWS-09 Eq. 1.
	Water Differentiable = &waterSeries{c: waterTable}

	// Salt is the saline part of the Gibbs energy of seawater
	// g(T,p,S) in J/kg, IAPWS-08 Eq. 4. It is exactly zero at zero
	// salinity.
	Salt Differentiable = &saltSeries{tables: saltTables[:]}

	// Seawater is Water plus Salt, the Gibbs energy of seawater in
	// J/kg (IAPWS-08 Eq. 3).
	Seawater Differentiable = &seawaterSeries{
		water: &waterSeries{c: waterTable},
		salt:  &saltSeries{tables: saltTables[:]},
	}
)

// Validity reports whether a state point lies inside the envelope the
// IAPWS releases are validated for. It is advisory only: the Gibbs
// functions evaluate at any state point regardless.
type Validity struct {
	Total       bool // both of the below
	Temperature bool // (270.5 - pPa*7.43e-8) < T <= 313.15 K
	Pressure    bool // 100 <= pPa <= 1e8 Pa
}

// CheckValidity evaluates the IAPWS validity bounds for a temperature in
// K and pressure in dbar. The temperature interval is open below and
// closed above, as published; the pressure bounds are inclusive.
func CheckValidity(t, p float64) Validity {
	pPa := p * DbarToPa
	vt := (270.5-pPa*7.43e-8) < t && t <= 313.15
	vp := 100 <= pPa && pPa <= 1.e8
	return Validity{Total: vt && vp, Temperature: vt, Pressure: vp}
}
