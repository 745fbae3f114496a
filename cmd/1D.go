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
	"os"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/fdlab/FD1D"
	"github.com/notargets/fdlab/InputParameters"
	"github.com/notargets/fdlab/model_problems/Burgers1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional finite difference scheme runs",
	Long: `
Integrates the 1D advection / viscous Burgers model problem with the
selected scheme and prints a terminal sketch of the final field,

fdlab 1D -s riemann`,
	Run: func(cmd *cobra.Command, args []string) {
		m1d := &Model1D{}
		m1d.Scheme, _ = cmd.Flags().GetString("scheme")
		m1d.Nx, _ = cmd.Flags().GetInt("nx")
		m1d.Nt, _ = cmd.Flags().GetInt("nt")
		m1d.A, _ = cmd.Flags().GetFloat64("a")
		m1d.B, _ = cmd.Flags().GetFloat64("b")
		m1d.CFL, _ = cmd.Flags().GetFloat64("CFL")
		m1d.InputFile, _ = cmd.Flags().GetString("input")
		m1d.Plot, _ = cmd.Flags().GetBool("plot")
		m1d.Profile, _ = cmd.Flags().GetBool("profile")
		Run1D(m1d)
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().StringP("scheme", "s", "advect", "scheme to run: "+strings.Join(schemeNames(), ", "))
	OneDCmd.Flags().IntP("nx", "x", 100, "number of grid points")
	OneDCmd.Flags().IntP("nt", "t", 1000, "number of time steps")
	OneDCmd.Flags().Float64P("a", "a", -1, "first advective/diffusive coefficient")
	OneDCmd.Flags().Float64P("b", "b", 0.5, "second advective coefficient (splitting schemes)")
	OneDCmd.Flags().Float64("CFL", 0, "CFL safety factor, 0 keeps the scheme default")
	OneDCmd.Flags().StringP("input", "i", "", "YAML input deck overriding the flags")
	OneDCmd.Flags().BoolP("plot", "p", true, "print an ascii sketch of the final field")
	OneDCmd.Flags().Bool("profile", false, "write a CPU profile to the working directory")
}

type Model1D struct {
	Scheme     string
	Nx, Nt     int
	A, B, CFL  float64
	InputFile  string
	Plot       bool
	Profile    bool
}

func schemeNames() (names []string) {
	for s := Burgers1D.Advect; s <= Burgers1D.DiffSTS; s++ {
		names = append(names, s.String())
	}
	return
}

func schemeFromName(name string) (Burgers1D.SchemeType, error) {
	for s := Burgers1D.Advect; s <= Burgers1D.DiffSTS; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown scheme %q, want one of: %s", name, strings.Join(schemeNames(), ", "))
}

// applyDeck carries the solver fields of the input deck onto the model
// problem, on top of the scheme defaults.
func applyDeck(c *Burgers1D.Burgers1D, ip *InputParameters.InputParameters1D) {
	if ip.XMin != 0 || ip.XMax != 0 {
		c.XMin, c.XMax = ip.XMin, ip.XMax
	}
	switch ip.Deriv {
	case "downwind":
		c.Config.Deriv = FD1D.Dnw
	case "upwind":
		c.Config.Deriv = FD1D.Upw
	case "centered":
		c.Config.Deriv = FD1D.Cent
	}
	switch ip.BndType {
	case "wrap":
		c.Config.Bnd.Type = FD1D.Wrap
	case "edge":
		c.Config.Bnd.Type = FD1D.Edge
	case "constant":
		c.Config.Bnd.Type = FD1D.Constant
	}
	if ip.Nu != 0 {
		c.Nu = ip.Nu
	}
	if ip.NSub != 0 {
		c.NSub = ip.NSub
	}
	if ip.Tol != 0 {
		c.Tol = ip.Tol
	}
	if ip.MaxIterations != 0 {
		c.MaxIter = ip.MaxIterations
	}
	if ip.Dt != 0 {
		c.Dt = ip.Dt
	}
}

func Run1D(m1d *Model1D) {
	if m1d.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var ip *InputParameters.InputParameters1D
	if len(m1d.InputFile) != 0 {
		ip = &InputParameters.InputParameters1D{}
		data, err := ioutil.ReadFile(m1d.InputFile)
		if err != nil {
			fmt.Printf("unable to read input file: %v\n", err)
			os.Exit(1)
		}
		if err = ip.Parse(data); err != nil {
			fmt.Printf("unable to parse input file: %v\n", err)
			os.Exit(1)
		}
		ip.Print()
		if len(ip.Scheme) != 0 {
			m1d.Scheme = ip.Scheme
		}
		if ip.Nx != 0 {
			m1d.Nx = ip.Nx
		}
		if ip.Nt != 0 {
			m1d.Nt = ip.Nt
		}
		if ip.A != 0 {
			m1d.A = ip.A
		}
		if ip.B != 0 {
			m1d.B = ip.B
		}
		if ip.CFL != 0 {
			m1d.CFL = ip.CFL
		}
	}
	scheme, err := schemeFromName(m1d.Scheme)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	c := Burgers1D.NewBurgers1D(scheme, m1d.Nx, m1d.Nt, m1d.A, m1d.B, m1d.CFL)
	if ip != nil {
		applyDeck(c, ip)
	}
	ts, diag, err := c.Run()
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		os.Exit(1)
	}
	final := ts.Final()
	fmt.Printf("scheme = %s, nx = %d, nt = %d, tFinal = %8.4f\n",
		scheme, m1d.Nx, m1d.Nt, ts.T[len(ts.T)-1])
	fmt.Printf("umin = %8.5f, umax = %8.5f, sum = %8.5f\n",
		final.Min(), final.Max(), final.Sum())
	if diag != nil {
		var warned int
		for _, ok := range diag.Converged {
			if !ok {
				warned++
			}
		}
		fmt.Printf("newton: %d/%d steps hit the iteration cap, final err = %v\n",
			warned, len(diag.Converged)-1, diag.Err[len(diag.Err)-1])
	}
	if m1d.Plot {
		fmt.Println(asciigraph.Plot(final.Data(),
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("u(x, t = %.3f)", ts.T[len(ts.T)-1]))))
	}
}
