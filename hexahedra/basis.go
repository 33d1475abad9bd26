package hexahedra

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Vec3 is a point or direction in either parametric (xhat) or physical (x)
// space, depending on context.
type Vec3 [3]float64

// NodeValues holds one scalar per hexahedron corner, in hexa ordering:
//
//	   7-------6
//	  /|      /|        z
//	 4-------5 |        | y
//	 | 3-----|-2        |/
//	 |/      |/         +---x
//	 0-------1
type NodeValues [8]float64

// Coefficients are the weights of the trilinear polynomial
//
//	c0 + c1*x + c2*y + c3*z + c4*x*y + c5*x*z + c6*y*z + c7*x*y*z
//
// in parametric coordinates.
type Coefficients [8]float64

// BasisTransform converts nodal values in hexa ordering to trilinear
// coefficients. It is shared by every caller and must not be modified.
var BasisTransform = [8][8]float64{
	{1, 0, 0, 0, 0, 0, 0, 0},
	{-1, 1, 0, 0, 0, 0, 0, 0},
	{-1, 0, 0, 1, 0, 0, 0, 0},
	{-1, 0, 0, 0, 1, 0, 0, 0},
	{1, -1, 1, -1, 0, 0, 0, 0},
	{1, -1, 0, 0, -1, 1, 0, 0},
	{1, 0, 0, -1, -1, 0, 0, 1},
	{-1, 1, -1, 1, 1, -1, 1, -1},
}

// UnitCorners are the parametric coordinates of the eight nodes implied by
// BasisTransform; the reference cell is the unit cube [0,1]^3.
var UnitCorners = [8]Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{1, 1, 1},
	{0, 1, 1},
}

var basisDense = newBasisDense()

func newBasisDense() (B *mat.Dense) {
	B = mat.NewDense(8, 8, nil)
	for i := 0; i < 8; i++ {
		B.SetRow(i, BasisTransform[i][:])
	}
	return
}

// GetCoefficients returns BasisTransform * phi
func GetCoefficients(phi NodeValues) (coef Coefficients) {
	for i := 0; i < 8; i++ {
		var sum float64
		for j := 0; j < 8; j++ {
			sum += BasisTransform[i][j] * phi[j]
		}
		coef[i] = sum
	}
	return
}

// BasisMatrix returns a copy of BasisTransform as a gonum matrix
func BasisMatrix() *mat.Dense {
	return mat.DenseCopyOf(basisDense)
}

// GetCoefficientsBatch transforms nodal values for K cells at once. Phi is
// [8 x K] with one column per cell, the result has the same layout.
func GetCoefficientsBatch(Phi mat.Matrix) (C *mat.Dense) {
	var (
		nr, nc = Phi.Dims()
	)
	if nr != 8 {
		panic(fmt.Sprintf("nodal value matrix must have 8 rows, has %d", nr))
	}
	C = mat.NewDense(8, nc, nil)
	C.Mul(basisDense, Phi)
	return
}

// Column extracts the coefficients of cell k from a batch result
func Column(C mat.Matrix, k int) (coef Coefficients) {
	for i := 0; i < 8; i++ {
		coef[i] = C.At(i, k)
	}
	return
}
