package InputParameters

import (
	"fmt"
	"io"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML case file. A single cell case uses
// Corners/NodeValues, a mesh case uses Vertices/Elements/Field.
type InputParametersHex struct {
	Title            string       `yaml:"Title"`
	Corners          [][3]float64 `yaml:"Corners"`          // 8 physical corners in hexa ordering
	NodeValues       []float64    `yaml:"NodeValues"`       // 8 field values, one per corner
	ParametricPoints [][3]float64 `yaml:"ParametricPoints"` // Evaluation points for eval
	Points           [][3]float64 `yaml:"Points"`           // Physical points for locate and probe
	Vertices         [][3]float64 `yaml:"Vertices"`
	Elements         [][8]int     `yaml:"Elements"`
	Field            []float64    `yaml:"Field"` // One value per vertex
	MaxIterations    int          `yaml:"MaxIterations"`
	Tolerance        float64      `yaml:"Tolerance"`
	Fallback         bool         `yaml:"Fallback"`
}

func (ip *InputParametersHex) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ValidateCell checks the single cell portion of the case
func (ip *InputParametersHex) ValidateCell() (err error) {
	if len(ip.Corners) != 8 {
		return fmt.Errorf("case %q: need 8 corners, have %d", ip.Title, len(ip.Corners))
	}
	if len(ip.NodeValues) != 0 && len(ip.NodeValues) != 8 {
		return fmt.Errorf("case %q: need 8 node values, have %d", ip.Title, len(ip.NodeValues))
	}
	return
}

// ValidateMesh checks the mesh portion of the case
func (ip *InputParametersHex) ValidateMesh() (err error) {
	if len(ip.Vertices) == 0 || len(ip.Elements) == 0 {
		return fmt.Errorf("case %q: mesh needs Vertices and Elements", ip.Title)
	}
	if len(ip.Field) != len(ip.Vertices) {
		return fmt.Errorf("case %q: field has %d values, mesh has %d vertices",
			ip.Title, len(ip.Field), len(ip.Vertices))
	}
	return
}

func (ip *InputParametersHex) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	if len(ip.Corners) != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t= Corners\n", len(ip.Corners))
	}
	if len(ip.Elements) != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t= Vertices\n", len(ip.Vertices))
		fmt.Fprintf(w, "[%d]\t\t\t= Elements\n", len(ip.Elements))
	}
	fmt.Fprintf(w, "[%d]\t\t\t= Parametric Points\n", len(ip.ParametricPoints))
	fmt.Fprintf(w, "[%d]\t\t\t= Points\n", len(ip.Points))
	if ip.MaxIterations != 0 {
		fmt.Fprintf(w, "[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	}
	if ip.Tolerance != 0 {
		fmt.Fprintf(w, "%8.2e\t\t= Tolerance\n", ip.Tolerance)
	}
	fmt.Fprintf(w, "[%v]\t\t\t= Fallback\n", ip.Fallback)
}
