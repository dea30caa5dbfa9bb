/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"log"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/seatherm/teos10/InputParameters"
	"github.com/seatherm/teos10/gibbs"
	"github.com/seatherm/teos10/props"
)

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate thermodynamic properties at one or more state points",
	Long: `
Evaluates the requested properties against a Gibbs energy function,
either at a single state point given by flags or at a batch of points
described by a YAML parameter file, e.g.

    teos10 eval -t 273.15 -p 10.1325 -s 35.16504
    teos10 eval -F run.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		me := &ModelEval{}
		me.ParamFile, _ = cmd.Flags().GetString("paramFile")
		me.GibbsName, _ = cmd.Flags().GetString("gibbs")
		me.Properties, _ = cmd.Flags().GetStringSlice("properties")
		me.T, _ = cmd.Flags().GetFloat64("temperature")
		me.P, _ = cmd.Flags().GetFloat64("pressure")
		me.S, _ = cmd.Flags().GetFloat64("salinity")
		me.Profile, _ = cmd.Flags().GetBool("profile")
		RunEval(me)
	},
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().StringP("paramFile", "F", "", "YAML parameter file describing a batch evaluation")
	EvalCmd.Flags().StringP("gibbs", "g", "seawater", "Gibbs function: water, salt or seawater")
	EvalCmd.Flags().StringSlice("properties", nil, "properties to evaluate (default: all applicable)")
	EvalCmd.Flags().Float64P("temperature", "t", 273.15, "temperature in K")
	EvalCmd.Flags().Float64P("pressure", "p", 10.1325, "pressure in dbar")
	EvalCmd.Flags().Float64P("salinity", "s", 35.16504, "salinity in g/kg")
	EvalCmd.Flags().Bool("profile", false, "write a CPU profile of the evaluation")
}

type ModelEval struct {
	ParamFile  string
	GibbsName  string
	Properties []string
	T, P, S    float64
	Profile    bool
}

func RunEval(me *ModelEval) {
	if me.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	ip := processEvalInput(me)
	ip.Print()
	g, err := ip.Gibbs()
	if err != nil {
		log.Fatalf("error: %s", err)
	}
	pts, err := ip.StatePoints()
	if err != nil {
		log.Fatalf("error: %s", err)
	}
	selected, err := selectProperties(ip.Properties, g)
	if err != nil {
		log.Fatalf("error: %s", err)
	}
	printTable(pts, g, selected)
}

func processEvalInput(me *ModelEval) (ip *InputParameters.EvalParameters) {
	ip = &InputParameters.EvalParameters{}
	if len(me.ParamFile) != 0 {
		data, err := ioutil.ReadFile(me.ParamFile)
		if err != nil {
			log.Fatalf("unable to read parameter file %s: %s", me.ParamFile, err)
		}
		if err = ip.Parse(data); err != nil {
			log.Fatalf("unable to parse parameter file %s: %s", me.ParamFile, err)
		}
		return
	}
	ip.GibbsFunction = me.GibbsName
	ip.Properties = me.Properties
	ip.Temperature = []float64{me.T}
	ip.Pressure = []float64{me.P}
	ip.Salinity = []float64{me.S}
	return
}

// selectProperties resolves names against the registry; with no names
// given it takes every property the Gibbs function can support.
func selectProperties(names []string, g gibbs.Func) (sel []props.Property, err error) {
	explicit := len(names) != 0
	if !explicit {
		names = props.Names()
	}
	for _, name := range names {
		p, ok := props.ByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown property %q, available: %v", name, props.Names())
		}
		if p.NeedsSalinity && g.NArgs() < 3 {
			// An explicit request against a pure water function is an
			// error; skipping it silently would misreport the batch.
			if explicit {
				return nil, fmt.Errorf("property %q needs a salinity argument", name)
			}
			continue
		}
		sel = append(sel, p)
	}
	return sel, nil
}

func printTable(pts []props.State, g gibbs.Func, sel []props.Property) {
	fmt.Printf("%12s %12s %12s %6s", "T[K]", "p[dbar]", "S[g/kg]", "valid")
	for _, p := range sel {
		fmt.Printf(" %27s", fmt.Sprintf("%s[%s]", p.Name, p.Unit))
	}
	fmt.Println()
	for _, st := range pts {
		v := gibbs.CheckValidity(st.T, st.P)
		fmt.Printf("%12.6f %12.6f %12.6f %6v", st.T, st.P, st.S, v.Total)
		for _, p := range sel {
			fmt.Printf(" %27.9e", p.Eval(st, g))
		}
		fmt.Println()
	}
}
