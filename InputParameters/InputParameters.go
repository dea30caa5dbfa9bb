package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/seatherm/teos10/gibbs"
	"github.com/seatherm/teos10/props"
)

// Parameters obtained from the YAML input file describing one batch
// property evaluation. Temperature/Pressure/Salinity arrays broadcast
// against each other: a length-1 array repeats to the longest length.
type EvalParameters struct {
	Title         string    `yaml:"Title"`
	GibbsFunction string    `yaml:"GibbsFunction"` // water, salt or seawater (default)
	Properties    []string  `yaml:"Properties"`
	Temperature   []float64 `yaml:"Temperature"` // K
	Pressure      []float64 `yaml:"Pressure"`    // dbar
	Salinity      []float64 `yaml:"Salinity"`    // g/kg, optional for water
}

func (ip *EvalParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *EvalParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= Gibbs Function\n", ip.gibbsName())
	fmt.Printf("%v\t= Properties\n", ip.Properties)
	if pts, err := ip.StatePoints(); err == nil {
		fmt.Printf("[%d]\t\t\t= State Points\n", len(pts))
	}
}

func (ip *EvalParameters) gibbsName() string {
	if ip.GibbsFunction == "" {
		return "seawater"
	}
	return ip.GibbsFunction
}

// Gibbs resolves the named Gibbs function.
func (ip *EvalParameters) Gibbs() (gibbs.Func, error) {
	switch ip.gibbsName() {
	case "water":
		return gibbs.Water, nil
	case "salt":
		return gibbs.Salt, nil
	case "seawater":
		return gibbs.Seawater, nil
	}
	return nil, fmt.Errorf("unknown Gibbs function %q: want water, salt or seawater", ip.GibbsFunction)
}

// StatePoints expands the input arrays into one state per entry of the
// longest array.
func (ip *EvalParameters) StatePoints() ([]props.State, error) {
	n := len(ip.Temperature)
	if len(ip.Pressure) > n {
		n = len(ip.Pressure)
	}
	if len(ip.Salinity) > n {
		n = len(ip.Salinity)
	}
	if n == 0 {
		return nil, fmt.Errorf("no state points: Temperature and Pressure are required")
	}
	t, err := broadcast("Temperature", ip.Temperature, n)
	if err != nil {
		return nil, err
	}
	p, err := broadcast("Pressure", ip.Pressure, n)
	if err != nil {
		return nil, err
	}
	s := make([]float64, n)
	if len(ip.Salinity) > 0 {
		if s, err = broadcast("Salinity", ip.Salinity, n); err != nil {
			return nil, err
		}
	}
	pts := make([]props.State, n)
	for i := range pts {
		pts[i] = props.State{T: t[i], P: p[i], S: s[i]}
	}
	return pts, nil
}

func broadcast(name string, vals []float64, n int) ([]float64, error) {
	switch len(vals) {
	case n:
		return vals, nil
	case 1:
		out := make([]float64, n)
		for i := range out {
			out[i] = vals[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%s: want 1 or %d values, have %d", name, n, len(vals))
}
