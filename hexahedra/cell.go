package hexahedra

import (
	"errors"
	"fmt"
	"math"
)

// InsideTol is how far outside [0,1] a parametric coordinate may fall and
// still count as inside the cell.
const InsideTol = 1e-6

var ErrOutsideCell = errors.New("point is outside the cell")

// Cell is a single hexahedron with its coordinate map precomputed
type Cell struct {
	Corners             [8]Vec3
	XCoef, YCoef, ZCoef Coefficients
	Mapper              *InverseMapper
	Fallback            bool // Retry with Optimize when FindXhat fails
	Min, Max            Vec3 // Bounding box of the corners
}

// NewCell builds the coordinate map of a hexahedron from its corners, given
// in hexa ordering.
func NewCell(corners [8]Vec3) (c *Cell) {
	var X, Y, Z NodeValues
	for n, pt := range corners {
		X[n], Y[n], Z[n] = pt[0], pt[1], pt[2]
	}
	return newCellFromCoefficients(corners,
		GetCoefficients(X), GetCoefficients(Y), GetCoefficients(Z))
}

func newCellFromCoefficients(corners [8]Vec3, xcoef, ycoef, zcoef Coefficients) (c *Cell) {
	c = &Cell{
		Corners: corners,
		XCoef:   xcoef,
		YCoef:   ycoef,
		ZCoef:   zcoef,
		Mapper:  NewInverseMapper(),
	}
	c.Min, c.Max = corners[0], corners[0]
	for _, pt := range corners[1:] {
		for i := 0; i < 3; i++ {
			c.Min[i] = math.Min(c.Min[i], pt[i])
			c.Max[i] = math.Max(c.Max[i], pt[i])
		}
	}
	return
}

// Map returns the physical location of xhat
func (c *Cell) Map(xhat Vec3) Vec3 {
	return Vec3{
		Value(xhat, c.XCoef),
		Value(xhat, c.YCoef),
		Value(xhat, c.ZCoef),
	}
}

// Locate returns the parametric coordinate of x. The point is not required
// to lie inside the cell.
func (c *Cell) Locate(x Vec3) (xhat Vec3, err error) {
	xhat, err = c.Mapper.FindXhat(x, c.XCoef, c.YCoef, c.ZCoef)
	if err == nil || !c.Fallback {
		return
	}
	var optErr error
	if xhat, optErr = c.Mapper.Optimize(x, c.XCoef, c.YCoef, c.ZCoef); optErr != nil {
		err = fmt.Errorf("%w; fallback: %v", err, optErr)
		return
	}
	err = nil
	return
}

func (c *Cell) InBoundingBox(x Vec3) bool {
	for i := 0; i < 3; i++ {
		pad := InsideTol * (1 + c.Max[i] - c.Min[i])
		if x[i] < c.Min[i]-pad || x[i] > c.Max[i]+pad {
			return false
		}
	}
	return true
}

// Contains reports whether x maps into the unit cube
func (c *Cell) Contains(x Vec3) bool {
	if !c.InBoundingBox(x) {
		return false
	}
	xhat, err := c.Locate(x)
	return err == nil && InsideUnitCube(xhat)
}

func InsideUnitCube(xhat Vec3) bool {
	for _, v := range xhat {
		if v < -InsideTol || v > 1+InsideTol {
			return false
		}
	}
	return true
}

// Interpolate evaluates the nodal field phi at the physical point x
func (c *Cell) Interpolate(x Vec3, phi NodeValues) (val float64, err error) {
	var xhat Vec3
	if xhat, err = c.Locate(x); err != nil {
		return
	}
	if !InsideUnitCube(xhat) {
		err = fmt.Errorf("%w: x = %v, xhat = %v", ErrOutsideCell, x, xhat)
		return
	}
	val = Value(xhat, GetCoefficients(phi))
	return
}

// Gradient returns the physical gradient of phi at x
func (c *Cell) Gradient(x Vec3, phi NodeValues) (grad Vec3, err error) {
	var xhat Vec3
	if xhat, err = c.Locate(x); err != nil {
		return
	}
	return PhysicalGradient(xhat, GetCoefficients(phi), c.XCoef, c.YCoef, c.ZCoef)
}
