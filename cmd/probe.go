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
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/hexinterp/hexahedra"
)

// ProbeCmd represents the probe command
var ProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Sample a vertex field of a hexahedral mesh at physical points",
	Long: `
Finds the element containing each entry of Points and interpolates Field,
the points are processed in parallel,

hexinterp probe -I mesh_case.yaml --procs 4`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		ip, err := readCase(cmd)
		if err != nil {
			return
		}
		m, err := newMesh(ip)
		if err != nil {
			return
		}
		procs, _ := cmd.Flags().GetInt("procs")
		var (
			out     = cmd.OutOrStdout()
			points  = make([]hexahedra.Vec3, len(ip.Points))
			results []hexahedra.ProbeResult
			start   = time.Now()
		)
		for i, p := range ip.Points {
			points[i] = hexahedra.Vec3(p)
		}
		if results, err = m.Probe(ip.Field, points, procs); err != nil {
			return
		}
		verbose := viper.GetBool("verbose")
		pm := hexahedra.Partition(len(points), procs)
		if verbose {
			fmt.Fprintf(out, "Probed %d points in %d elements in %v\n",
				len(points), m.NumElements(), time.Since(start))
			for np := 0; np < pm.ParallelDegree; np++ {
				fmt.Fprintf(out, "worker %d: %d points\n", np, pm.GetBucketDimension(np))
			}
		}
		for i, res := range results {
			if verbose {
				bn, _, _ := pm.GetBucket(i)
				fmt.Fprintf(out, "[worker %d] ", bn)
			}
			if res.Element == -1 {
				fmt.Fprintf(out, "x = %s  outside mesh\n", fmtVec(res.Point))
				continue
			}
			fmt.Fprintf(out, "x = %s  element = %d  xhat = %s  phi = %12.6f  dphi/dx = %s",
				fmtVec(res.Point), res.Element, fmtVec(res.Xhat), res.Value, fmtVec(res.Gradient))
			if res.Degenerate {
				fmt.Fprint(out, "  degenerate jacobian")
			}
			fmt.Fprintln(out)
		}
		return
	},
}

func init() {
	rootCmd.AddCommand(ProbeCmd)
	addCaseFlag(ProbeCmd)
	ProbeCmd.Flags().IntP("procs", "p", 0, "number of go routines, 0 uses every CPU")
}
