package hexahedra

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// Optimize locates x by minimising the squared mapping residual with BFGS,
// starting from the cell centre. It is slower than FindXhat but does not
// depend on the cell being close to axis aligned.
func (im *InverseMapper) Optimize(x Vec3, xcoef, ycoef, zcoef Coefficients) (xhat Vec3, err error) {
	var (
		coefs = [3]Coefficients{xcoef, ycoef, zcoef}
		tol   = im.Tolerance
	)
	if tol <= 0 {
		tol = DefaultTolerance
	}
	residual := func(p []float64) (r Vec3) {
		xh := Vec3{p[0], p[1], p[2]}
		for i, coef := range coefs {
			r[i] = Value(xh, coef) - x[i]
		}
		return
	}
	p := optimize.Problem{
		Func: func(p []float64) float64 {
			r := residual(p)
			return r[0]*r[0] + r[1]*r[1] + r[2]*r[2]
		},
		Grad: func(grad, p []float64) {
			var (
				r  = residual(p)
				xh = Vec3{p[0], p[1], p[2]}
			)
			for j := range grad {
				grad[j] = 0
			}
			for i, coef := range coefs {
				g := Gradient(xh, coef)
				for j := 0; j < 3; j++ {
					grad[j] += 2 * r[i] * g[j]
				}
			}
		},
	}
	result, minErr := optimize.Minimize(p, []float64{0.5, 0.5, 0.5}, nil, &optimize.BFGS{})
	if result == nil {
		err = fmt.Errorf("%w: %v", ErrNonConvergence, minErr)
		return
	}
	xhat = Vec3{result.X[0], result.X[1], result.X[2]}
	// A line search failure at the round-off floor still leaves a usable
	// minimum, so the residual decides.
	var (
		r     = residual(result.X)
		rNorm = floats.Norm(r[:], 1)
		scale = 1 + floats.Norm(x[:], math.Inf(1))
	)
	if rNorm > tol*scale {
		err = &NonConvergenceError{
			Iterations: result.MajorIterations,
			Increment:  rNorm,
			Xhat:       xhat,
		}
		return
	}
	xhat = Quantize(xhat)
	return
}
