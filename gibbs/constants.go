package gibbs

// Reducing and reference constants for the IAPWS-08/09 Gibbs functions.
// Sources: IAPWS-08 Table 1, IAPWS-09 Section 2.
const (
	PNorm = 101325.           // normal pressure, Pa
	PStar = 1.e8              // reducing pressure, Pa
	TZero = 273.15            // Celsius zero point, K
	TStar = 40.               // reducing temperature, K
	SNorm = 0.03516504        // normal (reference-composition) salinity, kg/kg
	SStar = SNorm * 40. / 35. // reducing salinity, kg/kg

	DbarToPa  = 1.e4  // pressure unit conversion, Pa/dbar
	GKgToKgKg = 1.e-3 // salinity unit conversion, (kg/kg)/(g/kg)

	GasConstant   = 8.314472     // molar gas constant, J/(mol K)
	SaltMolarMass = 0.0314038218 // molar mass of reference sea salt, kg/mol
)
