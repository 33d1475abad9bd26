package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/hexinterp/InputParameters"
	"github.com/notargets/hexinterp/hexahedra"
)

func execute(t *testing.T, args ...string) (output string, err error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	output = buf.String()
	// Flag values persist between executions of the same command tree
	pf := rootCmd.PersistentFlags()
	require.NoError(t, pf.Set("maxIterations", strconv.Itoa(hexahedra.DefaultMaxIterations)))
	require.NoError(t, pf.Set("tolerance", strconv.FormatFloat(hexahedra.DefaultTolerance, 'g', -1, 64)))
	require.NoError(t, pf.Set("fallback", "false"))
	require.NoError(t, pf.Set("verbose", "false"))
	for _, c := range []*cobra.Command{EvalCmd, LocateCmd, ProbeCmd} {
		require.NoError(t, c.Flags().Set("inputConditionsFile", ""))
	}
	return
}

func writeCase(t *testing.T, content string) (file string) {
	file = filepath.Join(t.TempDir(), "case.yaml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	return
}

func TestExampleFile(t *testing.T) {
	var ip InputParameters.InputParametersHex
	require.NoError(t, ip.Parse([]byte(exampleFile)))
	assert.NoError(t, ip.ValidateCell())
	assert.Len(t, ip.Points, 1)
}

func TestEval(t *testing.T) {
	file := writeCase(t, `
Title: Box
Corners: [[0,0,0],[2,0,0],[2,1,0],[0,1,0],[0,0,3],[2,0,3],[2,1,3],[0,1,3]]
NodeValues: [1, 2, 3, 4, 5, 6, 7, 8]
ParametricPoints:
  - [0, 0, 0]
  - [1, 1, 1]
  - [0.5, 0.5, 0.5]
`)
	out, err := execute(t, "eval", "-I", file)
	require.NoError(t, err)
	assert.Contains(t, out, "phi =     1.000000")
	assert.Contains(t, out, "phi =     7.000000")
	assert.Contains(t, out, "phi =     4.500000")
	assert.Contains(t, out, fmtVec(hexahedra.Vec3{2, 1, 3}))
}

func TestLocate(t *testing.T) {
	file := writeCase(t, exampleFile)
	out, err := execute(t, "locate", "-I", file)
	require.NoError(t, err)
	assert.Contains(t, out, "xhat = "+fmtVec(hexahedra.Vec3{0.5, 0.5, 0.5}))
	assert.Contains(t, out, "inside = true")
	assert.Contains(t, out, "phi =     4.500000")

	out, err = execute(t, "locate", "-I", file, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "iterations = 2")
	assert.Contains(t, out, "\"Test Case\"\t\t= Title")
}

const skewedCase = `
Title: Skewed
Corners:
  - [0, 0, 0]
  - [2, 0, 0.1]
  - [2.3, 1, 0.1]
  - [0.3, 1, 0]
  - [0, 0.2, 3]
  - [2, 0.2, 3.1]
  - [2.3, 1.2, 3.1]
  - [0.3, 1.2, 3]
Points:
  - [1.2, 0.6, 1.5]
`

func TestLocateNonConvergence(t *testing.T) {
	file := writeCase(t, skewedCase)
	out, err := execute(t, "locate", "-I", file, "--maxIterations", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 points could not be located")
	assert.Contains(t, out, "did not converge")

	out, err = execute(t, "locate", "-I", file, "--maxIterations", "1", "--fallback")
	require.NoError(t, err)
	assert.Contains(t, out, "inside = true")

	out, err = execute(t, "locate", "-I", file)
	require.NoError(t, err)
	assert.Contains(t, out, "inside = true")
}

func TestProbe(t *testing.T) {
	file := writeCase(t, `
Title: Two cubes
Vertices:
  - [0, 0, 0]
  - [1, 0, 0]
  - [2, 0, 0]
  - [0, 1, 0]
  - [1, 1, 0]
  - [2, 1, 0]
  - [0, 0, 1]
  - [1, 0, 1]
  - [2, 0, 1]
  - [0, 1, 1]
  - [1, 1, 1]
  - [2, 1, 1]
Elements:
  - [0, 1, 4, 3, 6, 7, 10, 9]
  - [1, 2, 5, 4, 7, 8, 11, 10]
Field: [0, 1, 2, 0, 1, 2, 0, 1, 2, 0, 1, 2]
Points:
  - [0.5, 0.5, 0.5]
  - [1.75, 0.5, 0.5]
  - [3, 3, 3]
`)
	out, err := execute(t, "probe", "-I", file, "--procs", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "element = 0")
	assert.Contains(t, out, "element = 1")
	assert.Contains(t, out, "phi =     1.750000")
	assert.Contains(t, out, "outside mesh")
	assert.NotContains(t, out, "degenerate jacobian")

	out, err = execute(t, "probe", "-I", file, "--procs", "2", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "\"Two cubes\"\t\t= Title")
	assert.Contains(t, out, "worker 0: 2 points")
	assert.Contains(t, out, "worker 1: 1 points")
	assert.Contains(t, out, "[worker 1] x = ")
}

func TestProbeDegenerate(t *testing.T) {
	file := writeCase(t, `
Title: Folded
Vertices:
  - [0, 0, 0]
  - [1, 1, 0]
  - [2, 2, 0]
  - [1, 1, 0]
  - [0, 0, 1]
  - [1, 1, 1]
  - [2, 2, 1]
  - [1, 1, 1]
Elements:
  - [0, 1, 2, 3, 4, 5, 6, 7]
Field: [0, 0, 0, 0, 1, 1, 1, 1]
Points:
  - [1, 1, 0.5]
`)
	out, err := execute(t, "probe", "-I", file)
	require.NoError(t, err)
	assert.Contains(t, out, "element = 0")
	assert.Contains(t, out, "phi =     0.500000")
	assert.Contains(t, out, "degenerate jacobian")
}

func TestMissingCaseFile(t *testing.T) {
	_, err := execute(t, "locate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must supply an input parameters file")

	_, err = execute(t, "locate", "-I", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	file := writeCase(t, "Title: no corners\n")
	_, err = execute(t, "eval", "-I", file)
	assert.Error(t, err)
}
