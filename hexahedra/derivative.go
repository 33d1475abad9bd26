package hexahedra

import (
	"fmt"
	"math"
)

// DerivativeThreshold is the smallest partial derivative magnitude that is
// inverted.
const DerivativeThreshold = 1e-6

type Axis uint8

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	case ZAxis:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// Partial returns the derivative of Value along axis
func Partial(axis Axis, xhat Vec3, coef Coefficients) float64 {
	switch axis {
	case XAxis:
		return DX(xhat, coef)
	case YAxis:
		return DY(xhat, coef)
	case ZAxis:
		return DZ(xhat, coef)
	}
	panic(fmt.Sprintf("invalid axis %d", uint8(axis)))
}

// InverseDerivative returns 1/Partial. When the derivative magnitude is
// below DerivativeThreshold inv is 0 and degenerate is true.
func InverseDerivative(axis Axis, xhat Vec3, coef Coefficients) (inv float64, degenerate bool) {
	d := Partial(axis, xhat, coef)
	if math.Abs(d) < DerivativeThreshold {
		return 0, true
	}
	return 1. / d, false
}

func InvDX(xhat Vec3, coef Coefficients) (inv float64) {
	inv, _ = InverseDerivative(XAxis, xhat, coef)
	return
}

func InvDY(xhat Vec3, coef Coefficients) (inv float64) {
	inv, _ = InverseDerivative(YAxis, xhat, coef)
	return
}

func InvDZ(xhat Vec3, coef Coefficients) (inv float64) {
	inv, _ = InverseDerivative(ZAxis, xhat, coef)
	return
}
