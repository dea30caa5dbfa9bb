package props

import "github.com/seatherm/teos10/gibbs"

// Property is a named entry of the property library, usable from
// parameter files and the command line.
type Property struct {
	Name          string
	Unit          string
	NeedsSalinity bool // requires a 3-argument Gibbs function
	Eval          func(State, ...gibbs.Func) float64
}

var registry = []Property{
	{"gibbs", "J/kg", false, Gibbs},
	{"density", "kg/m^3", false, Density},
	{"entropy", "J/(kg K)", false, Entropy},
	{"heat_capacity", "J/(kg K)", false, HeatCapacity},
	{"enthalpy", "J/kg", false, Enthalpy},
	{"internal_energy", "J/kg", false, InternalEnergy},
	{"helmholtz_energy", "J/kg", false, HelmholtzEnergy},
	{"thermal_expansion", "1/K", false, ThermalExpansion},
	{"adiabatic_lapse_rate", "K/Pa", false, AdiabaticLapseRate},
	{"isothermal_compressibility", "1/Pa", false, IsothermalCompressibility},
	{"isentropic_compressibility", "1/Pa", false, IsentropicCompressibility},
	{"sound_speed", "m/s", false, SoundSpeed},
	{"chemical_potential_relative", "J/kg", true, ChemicalPotentialRelative},
	{"chemical_potential_water", "J/kg", true, ChemicalPotentialWater},
	{"chemical_potential_salt", "J/kg", true, ChemicalPotentialSalt},
	{"osmotic_coefficient", "1", true, OsmoticCoefficient},
	{"haline_contraction", "kg/kg", true, HalineContraction},
}

// ByName looks a property up by its registry name.
func ByName(name string) (Property, bool) {
	for _, p := range registry {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Names lists the registered property names in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name
	}
	return names
}
