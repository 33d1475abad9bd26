package hexahedra

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Jacobian returns J[i][j] = d(x_i)/d(xhat_j) of the map described by the
// three coordinate coefficient vectors.
func Jacobian(xhat Vec3, xcoef, ycoef, zcoef Coefficients) (J *mat.Dense) {
	J = mat.NewDense(3, 3, nil)
	for i, coef := range [3]Coefficients{xcoef, ycoef, zcoef} {
		g := Gradient(xhat, coef)
		J.SetRow(i, g[:])
	}
	return
}

func JacobianDet(xhat Vec3, xcoef, ycoef, zcoef Coefficients) float64 {
	return mat.Det(Jacobian(xhat, xcoef, ycoef, zcoef))
}

// PhysicalGradient transforms the parametric gradient of the field coef
// into physical space by solving J^T * g = grad(coef).
func PhysicalGradient(xhat Vec3, coef, xcoef, ycoef, zcoef Coefficients) (grad Vec3, err error) {
	var (
		J    = Jacobian(xhat, xcoef, ycoef, zcoef)
		gHat = Gradient(xhat, coef)
		g    mat.VecDense
	)
	if err = g.SolveVec(J.T(), mat.NewVecDense(3, gHat[:])); err != nil {
		err = fmt.Errorf("%w at xhat = %v: %v", ErrDegenerateJacobian, xhat, err)
		return
	}
	for i := 0; i < 3; i++ {
		grad[i] = g.AtVec(i)
	}
	return
}

// DiagonalGradient scales each parametric derivative by the inverse of the
// matching diagonal Jacobian entry. It is exact for cells whose edges are
// aligned with the physical axes. Degenerate diagonal entries yield a zero
// component.
func DiagonalGradient(xhat Vec3, coef, xcoef, ycoef, zcoef Coefficients) (grad Vec3) {
	grad[0] = DX(xhat, coef) * InvDX(xhat, xcoef)
	grad[1] = DY(xhat, coef) * InvDY(xhat, ycoef)
	grad[2] = DZ(xhat, coef) * InvDZ(xhat, zcoef)
	return
}
