package hexahedra

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultMaxIterations = 100
	DefaultTolerance     = 1e-6 // On |dx0|+|dx1|+|dx2|
	PivotThreshold       = 1e-10
	Resolution           = 1e-6 // Converged results are rounded to this
	resolutionScale      = 1e6  // 1/Resolution
)

var (
	ErrNonConvergence     = errors.New("inverse mapping did not converge")
	ErrDegenerateJacobian = errors.New("degenerate jacobian")
)

// NonConvergenceError reports the state of the solver when it ran out of
// iterations.
type NonConvergenceError struct {
	Iterations int
	Increment  float64 // Sum of absolute increments in the last iteration
	Xhat       Vec3    // Last estimate, not rounded
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d iterations, last increment %g, xhat = %v",
		ErrNonConvergence, e.Iterations, e.Increment, e.Xhat)
}

func (e *NonConvergenceError) Unwrap() error { return ErrNonConvergence }

// Solution describes a completed inverse mapping
type Solution struct {
	Xhat       Vec3
	Iterations int
	Increment  float64
	Skipped    [3]bool // Axes whose diagonal derivative was below PivotThreshold in the final iteration
}

func (s Solution) Degenerate() bool {
	return s.Skipped[0] || s.Skipped[1] || s.Skipped[2]
}

// InverseMapper finds the parametric coordinate of a physical point. Each
// axis is updated with its own diagonal derivative only, the other axes'
// most recent increments enter as correction terms. This is not a full
// Newton step on the 3x3 Jacobian and can fail on strongly skewed cells.
type InverseMapper struct {
	MaxIterations int
	Tolerance     float64
}

func NewInverseMapper() *InverseMapper {
	return &InverseMapper{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
	}
}

var defaultMapper = NewInverseMapper()

// FindXhat uses the default iteration limit and tolerance
func FindXhat(x Vec3, xcoef, ycoef, zcoef Coefficients) (xhat Vec3, err error) {
	return defaultMapper.FindXhat(x, xcoef, ycoef, zcoef)
}

// FindXhat returns the parametric point that xcoef, ycoef and zcoef map onto
// x. On ErrDegenerateJacobian the rounded estimate is still returned, on
// non-convergence the last unrounded estimate is returned with a
// *NonConvergenceError.
func (im *InverseMapper) FindXhat(x Vec3, xcoef, ycoef, zcoef Coefficients) (xhat Vec3, err error) {
	var sol Solution
	sol, err = im.Solve(x, xcoef, ycoef, zcoef)
	xhat = sol.Xhat
	return
}

func (im *InverseMapper) Solve(x Vec3, xcoef, ycoef, zcoef Coefficients) (sol Solution, err error) {
	var (
		maxIter = im.MaxIterations
		tol     = im.Tolerance
		xhat    Vec3 // Initial guess is the parametric origin
		dx      Vec3 // Persists across iterations, stale entries are reused
	)
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	for iter := 1; iter <= maxIter; iter++ {
		var skipped [3]bool

		dxx, dxy, dxz := DX(xhat, xcoef), DY(xhat, xcoef), DZ(xhat, xcoef)
		if math.Abs(dxx) > PivotThreshold {
			dx[0] = (x[0] - Value(xhat, xcoef) - dx[1]*dxy - dx[2]*dxz) / dxx
		} else {
			skipped[0] = true
		}

		dyx, dyy, dyz := DX(xhat, ycoef), DY(xhat, ycoef), DZ(xhat, ycoef)
		if math.Abs(dyy) > PivotThreshold {
			dx[1] = (x[1] - Value(xhat, ycoef) - dx[0]*dyx - dx[2]*dyz) / dyy
		} else {
			skipped[1] = true
		}

		dzx, dzy, dzz := DX(xhat, zcoef), DY(xhat, zcoef), DZ(xhat, zcoef)
		if math.Abs(dzz) > PivotThreshold {
			dx[2] = (x[2] - Value(xhat, zcoef) - dx[0]*dzx - dx[1]*dzy) / dzz
		} else {
			skipped[2] = true
		}

		for i := 0; i < 3; i++ {
			xhat[i] += dx[i]
		}

		inc := math.Abs(dx[0]) + math.Abs(dx[1]) + math.Abs(dx[2])
		sol = Solution{Xhat: xhat, Iterations: iter, Increment: inc, Skipped: skipped}
		if inc < tol {
			sol.Xhat = Quantize(xhat)
			if sol.Degenerate() {
				err = ErrDegenerateJacobian
			}
			return
		}
	}
	err = &NonConvergenceError{
		Iterations: sol.Iterations,
		Increment:  sol.Increment,
		Xhat:       sol.Xhat,
	}
	return
}

// Quantize rounds each component to the nearest multiple of Resolution,
// ties to even.
func Quantize(v Vec3) (q Vec3) {
	for i := range v {
		q[i] = math.RoundToEven(v[i]*resolutionScale) * Resolution
	}
	return
}
