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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/hexinterp/InputParameters"
	"github.com/notargets/hexinterp/hexahedra"
)

const exampleFile = `
########################################
Title: "Test Case"
Corners:          # hexa ordering
  - [0, 0, 0]
  - [2, 0, 0]
  - [2, 1, 0]
  - [0, 1, 0]
  - [0, 0, 3]
  - [2, 0, 3]
  - [2, 1, 3]
  - [0, 1, 3]
NodeValues: [1, 2, 3, 4, 5, 6, 7, 8]
Points:
  - [1, 0.5, 1.5]
ParametricPoints:
  - [0.5, 0.5, 0.5]
########################################
`

func addCaseFlag(c *cobra.Command) {
	c.Flags().StringP("inputConditionsFile", "I", "", "YAML case file with the cell (or mesh) and the points to process")
}

func readCase(cmd *cobra.Command) (ip *InputParameters.InputParametersHex, err error) {
	var (
		file string
		data []byte
	)
	if file, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
		return
	}
	if len(file) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)\nExample File:%s", exampleFile)
		return
	}
	if data, err = os.ReadFile(file); err != nil {
		return
	}
	ip = &InputParameters.InputParametersHex{}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("reading %s: %w", file, err)
		return
	}
	if viper.GetBool("verbose") {
		ip.Print(cmd.OutOrStdout())
	}
	return
}

// newMapper takes solver settings from the case file, falling back to flags
// and config
func newMapper(ip *InputParameters.InputParametersHex) (im *hexahedra.InverseMapper, fallback bool) {
	im = &hexahedra.InverseMapper{
		MaxIterations: viper.GetInt("maxIterations"),
		Tolerance:     viper.GetFloat64("tolerance"),
	}
	if ip.MaxIterations != 0 {
		im.MaxIterations = ip.MaxIterations
	}
	if ip.Tolerance != 0 {
		im.Tolerance = ip.Tolerance
	}
	fallback = ip.Fallback || viper.GetBool("fallback")
	return
}

func newCell(ip *InputParameters.InputParametersHex) (c *hexahedra.Cell, phi hexahedra.NodeValues, hasField bool, err error) {
	if err = ip.ValidateCell(); err != nil {
		return
	}
	var corners [8]hexahedra.Vec3
	for n, pt := range ip.Corners {
		corners[n] = hexahedra.Vec3(pt)
	}
	c = hexahedra.NewCell(corners)
	c.Mapper, c.Fallback = newMapper(ip)
	if hasField = len(ip.NodeValues) == 8; hasField {
		copy(phi[:], ip.NodeValues)
	}
	return
}

func newMesh(ip *InputParameters.InputParametersHex) (m *hexahedra.HexMesh, err error) {
	if err = ip.ValidateMesh(); err != nil {
		return
	}
	vertices := make([]hexahedra.Vec3, len(ip.Vertices))
	for n, v := range ip.Vertices {
		vertices[n] = hexahedra.Vec3(v)
	}
	if m, err = hexahedra.NewHexMesh(vertices, ip.Elements); err != nil {
		return
	}
	m.SetMapper(newMapper(ip))
	return
}

func fmtVec(v hexahedra.Vec3) string {
	return fmt.Sprintf("[%10.6f %10.6f %10.6f]", v[0], v[1], v[2])
}
