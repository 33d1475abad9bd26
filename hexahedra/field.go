package hexahedra

// Value evaluates the trilinear polynomial at xhat
func Value(xhat Vec3, coef Coefficients) float64 {
	var (
		x, y, z = xhat[0], xhat[1], xhat[2]
	)
	return coef[0] + coef[1]*x + coef[2]*y + coef[3]*z +
		coef[4]*x*y + coef[5]*x*z + coef[6]*y*z + coef[7]*x*y*z
}

// DX is the partial derivative of Value with respect to xhat[0]
func DX(xhat Vec3, coef Coefficients) float64 {
	var (
		y, z = xhat[1], xhat[2]
	)
	return coef[1] + coef[4]*y + coef[5]*z + coef[7]*y*z
}

// DY is the partial derivative of Value with respect to xhat[1]
func DY(xhat Vec3, coef Coefficients) float64 {
	var (
		x, z = xhat[0], xhat[2]
	)
	return coef[2] + coef[4]*x + coef[6]*z + coef[7]*x*z
}

// DZ is the partial derivative of Value with respect to xhat[2]
func DZ(xhat Vec3, coef Coefficients) float64 {
	var (
		x, y = xhat[0], xhat[1]
	)
	return coef[3] + coef[5]*x + coef[6]*y + coef[7]*x*y
}

// Gradient returns the parametric gradient (DX, DY, DZ)
func Gradient(xhat Vec3, coef Coefficients) Vec3 {
	return Vec3{DX(xhat, coef), DY(xhat, coef), DZ(xhat, coef)}
}
