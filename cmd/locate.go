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
	"github.com/spf13/viper"

	"github.com/notargets/hexinterp/hexahedra"
)

// LocateCmd represents the locate command
var LocateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find the parametric coordinates of physical points in a single cell",
	Long: `
For each entry in Points solves for the parametric coordinate inside the
cell described by Corners, and interpolates NodeValues there when given,

hexinterp locate -I case.yaml --maxIterations 200`,
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
			out     = cmd.OutOrStdout()
			verbose = viper.GetBool("verbose")
			coef    = hexahedra.GetCoefficients(phi)
			failed  int
		)
		if verbose {
			fmt.Fprintf(out, "MaxIterations = %d, Tolerance = %8.2e, Fallback = %v\n",
				c.Mapper.MaxIterations, c.Mapper.Tolerance, c.Fallback)
		}
		for _, p := range ip.Points {
			var (
				x    = hexahedra.Vec3(p)
				xhat hexahedra.Vec3
				lErr error
			)
			if verbose {
				sol, sErr := c.Mapper.Solve(x, c.XCoef, c.YCoef, c.ZCoef)
				fmt.Fprintf(out, "x = %s  iterations = %d  increment = %8.2e  skipped = %v  err = %v\n",
					fmtVec(x), sol.Iterations, sol.Increment, sol.Skipped, sErr)
			}
			if xhat, lErr = c.Locate(x); lErr != nil {
				fmt.Fprintf(out, "x = %s  error: %v\n", fmtVec(x), lErr)
				failed++
				continue
			}
			fmt.Fprintf(out, "x = %s  xhat = %s  inside = %v", fmtVec(x), fmtVec(xhat),
				hexahedra.InsideUnitCube(xhat))
			if hasField {
				fmt.Fprintf(out, "  phi = %12.6f", hexahedra.Value(xhat, coef))
			}
			fmt.Fprintln(out)
		}
		if failed != 0 {
			err = fmt.Errorf("%d of %d points could not be located", failed, len(ip.Points))
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(LocateCmd)
	addCaseFlag(LocateCmd)
}
