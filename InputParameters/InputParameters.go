package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title         string  `yaml:"Title"`
	Scheme        string  `yaml:"Scheme"`
	Nx            int     `yaml:"Nx"`
	Nt            int     `yaml:"Nt"`
	XMin          float64 `yaml:"XMin"`
	XMax          float64 `yaml:"XMax"`
	A             float64 `yaml:"A"`
	B             float64 `yaml:"B"`
	CFL           float64 `yaml:"CFL"`
	BndType       string  `yaml:"BndType"`
	Deriv         string  `yaml:"Deriv"`
	Nu            float64 `yaml:"Nu"`
	NSub          int     `yaml:"NSub"`
	Tol           float64 `yaml:"Tol"`
	MaxIterations int     `yaml:"MaxIterations"`
	Dt            float64 `yaml:"Dt"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Scheme\n", ip.Scheme)
	fmt.Printf("[%d x %d]\t\t= Nx x Nt\n", ip.Nx, ip.Nt)
	fmt.Printf("[%8.5f, %8.5f]\t= X range\n", ip.XMin, ip.XMax)
	fmt.Printf("%8.5f, %8.5f\t= A, B\n", ip.A, ip.B)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("[%s]\t\t\t= BndType\n", ip.BndType)
	fmt.Printf("[%s]\t\t\t= Deriv\n", ip.Deriv)
}
