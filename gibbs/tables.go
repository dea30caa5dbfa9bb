package gibbs

import (
	"sort"

	"github.com/james-bowman/sparse"
)

// coef is one term of a bivariate series in the reduced temperature
// (power j) and reduced pressure (power k).
type coef struct {
	j, k int
	g    float64
}

// coef3 additionally carries the salinity power i of the saline series.
type coef3 struct {
	i, j, k int
	g       float64
}

// waterCoefs are the coefficients g(j,k) of the pure water Gibbs
// function, IAPWS-09 Table 2. The (j,k) grid is sparse: absent entries
// are zero.
var waterCoefs = []coef{
	{0, 0, +0.101342743139674e3},
	{0, 1, +0.100015695367145e6},
	{0, 2, -0.254457654203630e4},
	{0, 3, +0.284517778446287e3},
	{0, 4, -0.333146754253611e2},
	{0, 5, +0.420263108803084e1},
	{0, 6, -0.546428511471039},
	{1, 0, +0.590578347909402e1},
	{1, 1, -0.270983805184062e3},
	{1, 2, +0.776153611613101e3},
	{1, 3, -0.196512550881220e3},
	{1, 4, +0.289796526294175e2},
	{1, 5, -0.213290083518327e1},
	{2, 0, -0.123577859330390e5},
	{2, 1, +0.145503645404680e4},
	{2, 2, -0.756558385769359e3},
	{2, 3, +0.273479662323528e3},
	{2, 4, -0.555604063817218e2},
	{2, 5, +0.434420671917197e1},
	{3, 0, +0.736741204151612e3},
	{3, 1, -0.672507783145070e3},
	{3, 2, +0.499360390819152e3},
	{3, 3, -0.239545330654412e3},
	{3, 4, +0.488012518593872e2},
	{3, 5, -0.166307106208905e1},
	{4, 0, -0.148185936433658e3},
	{4, 1, +0.397968445406972e3},
	{4, 2, -0.301815380621876e3},
	{4, 3, +0.152196371733841e3},
	{4, 4, -0.263748377232802e2},
	{5, 0, +0.580259125842571e2},
	{5, 1, -0.194618310617595e3},
	{5, 2, +0.120520654902025e3},
	{5, 3, -0.552723052340152e2},
	{5, 4, +0.648190668077221e1},
	{6, 0, -0.189843846514172e2},
	{6, 1, +0.635113936641785e2},
	{6, 2, -0.222897317140459e2},
	{6, 3, +0.817060541818112e1},
	{7, 0, +0.305081646487967e1},
	{7, 1, -0.963108119393062e1},
}

// saltCoefs are the coefficients g(i,j,k) of the saline part of the
// seawater Gibbs function, IAPWS-08 Table 2. i is the salinity power,
// j the temperature power, k the pressure power. The i == 1 terms
// multiply cxi^2*ln(cxi) rather than cxi.
var saltCoefs = []coef3{
	{1, 0, 0, +0.581281456626732e4},
	{1, 1, 0, +0.851226734946706e3},
	{2, 0, 0, +0.141627648484197e4},
	{2, 0, 1, -0.331049154044839e4},
	{2, 0, 2, +0.384794152978599e3},
	{2, 0, 3, -0.965324320107458e2},
	{2, 0, 4, +0.158408172766824e2},
	{2, 0, 5, -0.262480156590992e1},
	{2, 1, 0, +0.168072408311545e3},
	{2, 1, 1, +0.729116529735046e3},
	{2, 1, 2, -0.343956902961561e3},
	{2, 1, 3, +0.124687671116248e3},
	{2, 1, 4, -0.316569643860730e2},
	{2, 1, 5, +0.704658803315449e1},
	{2, 2, 0, +0.880031352997204e3},
	{2, 2, 1, -0.860764303783977e3},
	{2, 2, 2, +0.337409530269367e3},
	{2, 2, 3, -0.178314556207638e3},
	{2, 2, 4, +0.442040358308000e2},
	{2, 2, 5, -0.792001547211682e1},
	{2, 3, 0, -0.225267649263401e3},
	{2, 3, 1, +0.694244814133268e3},
	{2, 3, 2, -0.204889641964903e3},
	{2, 3, 3, +0.113561697840594e3},
	{2, 3, 4, -0.111282734326413e2},
	{2, 4, 0, +0.914260447751259e2},
	{2, 4, 1, -0.297728741987187e3},
	{2, 4, 2, +0.747261411387560e2},
	{2, 4, 3, -0.364872919001588e2},
	{2, 5, 0, -0.216603240875311e2},
	{2, 6, 0, +0.213016970847183e1},
	{3, 0, 0, -0.243214662381794e4},
	{3, 0, 1, +0.199459603073901e3},
	{3, 0, 2, -0.522940909281335e2},
	{3, 0, 3, +0.680444942726459e2},
	{3, 0, 4, -0.341251932441282e1},
	{3, 1, 0, -0.493407510141682e3},
	{3, 1, 1, -0.175292041186547e3},
	{3, 1, 2, +0.831923927801819e2},
	{3, 1, 3, -0.294830643494290e2},
	{3, 2, 0, -0.430664675978042e2},
	{3, 2, 1, +0.383058066002476e3},
	{3, 2, 2, -0.541917262517112e2},
	{3, 2, 3, +0.256398487389914e2},
	{3, 3, 0, -0.100227370861875e2},
	{3, 3, 1, -0.460319931801257e3},
	{3, 4, 0, +0.875600661808945},
	{3, 4, 1, +0.234565187611355e3},
	{4, 0, 0, +0.202580115603697e4},
	{4, 0, 1, -0.547919133532887e2},
	{4, 0, 2, -0.408193978912261e1},
	{4, 0, 3, -0.301755111971161e2},
	{4, 1, 0, +0.543835333000098e3},
	{4, 1, 1, -0.226683558512829e2},
	{4, 2, 0, -0.685572509204491e2},
	{4, 3, 0, +0.493667694856254e2},
	{4, 4, 0, -0.171397577419788e2},
	{4, 5, 0, +0.249697009569508e1},
	{5, 0, 0, -0.109166841042967e4},
	{5, 0, 1, +0.360284195611086e2},
	{5, 1, 0, -0.196028306689776e3},
	{6, 0, 0, +0.374601237877840e3},
	{6, 1, 0, +0.367571622995805e2},
	{7, 0, 0, -0.485891069025409e2},
}

const (
	waterRows, waterCols = 8, 7 // j <= 7, k <= 6
	saltRows, saltCols   = 7, 6 // j <= 6, k <= 5
	saltPowers           = 8    // i <= 7
)

var (
	waterTable = buildCSR(waterRows, waterCols, waterCoefs)
	saltTables = buildSaltTables()
)

// buildCSR assembles the coefficients into a CSR matrix. Row-major CSR
// iteration is what fixes the ascending (j,k) summation order of the
// series evaluation.
func buildCSR(rows, cols int, cs []coef) *sparse.CSR {
	sorted := make([]coef, len(cs))
	copy(sorted, cs)
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].j != sorted[b].j {
			return sorted[a].j < sorted[b].j
		}
		return sorted[a].k < sorted[b].k
	})
	var (
		ia   = make([]int, rows+1)
		ja   = make([]int, 0, len(sorted))
		data = make([]float64, 0, len(sorted))
		row  int
	)
	for _, c := range sorted {
		for row < c.j {
			row++
			ia[row] = len(ja)
		}
		ja = append(ja, c.k)
		data = append(data, c.g)
	}
	for row < rows {
		row++
		ia[row] = len(ja)
	}
	return sparse.NewCSR(rows, cols, ia, ja, data)
}

// buildSaltTables splits the trivariate table into one (j,k) matrix per
// salinity power. Index 0 is unused: the series starts at i == 1.
func buildSaltTables() [saltPowers]*sparse.CSR {
	var (
		out    [saltPowers]*sparse.CSR
		groups [saltPowers][]coef
	)
	for _, c := range saltCoefs {
		groups[c.i] = append(groups[c.i], coef{c.j, c.k, c.g})
	}
	for i := 1; i < saltPowers; i++ {
		out[i] = buildCSR(saltRows, saltCols, groups[i])
	}
	return out
}
