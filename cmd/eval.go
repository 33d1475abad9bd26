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

	"github.com/spf13/cobra"

	"github.com/notargets/hexinterp/hexahedra"
)

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Map parametric points to physical space and evaluate the nodal field",
	Long: `
For each entry in ParametricPoints prints the physical location, the field
interpolated from NodeValues and its parametric and physical gradients,

hexinterp eval -I case.yaml`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ip, err := readCase(cmd)
		if err != nil {
			return
		}
		c, phi, hasField, err := newCell(ip)
		if err != nil {
			return
		}
		var (
			out  = cmd.OutOrStdout()
			coef = hexahedra.GetCoefficients(phi)
		)
		for _, p := range ip.ParametricPoints {
			xhat := hexahedra.Vec3(p)
			fmt.Fprintf(out, "xhat = %s  x = %s", fmtVec(xhat), fmtVec(c.Map(xhat)))
			if hasField {
				fmt.Fprintf(out, "  phi = %12.6f  dphi/dxhat = %s",
					hexahedra.Value(xhat, coef), fmtVec(hexahedra.Gradient(xhat, coef)))
				grad, gErr := hexahedra.PhysicalGradient(xhat, coef, c.XCoef, c.YCoef, c.ZCoef)
				if gErr == nil {
					fmt.Fprintf(out, "  dphi/dx = %s", fmtVec(grad))
				} else {
					fmt.Fprintf(out, "  dphi/dx = %s", gErr)
				}
			}
			fmt.Fprintln(out)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	addCaseFlag(EvalCmd)
}
