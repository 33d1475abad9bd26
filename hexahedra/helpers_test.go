package hexahedra

// Test cells used across the package tests

func boxCorners(lx, ly, lz float64) (corners [8]Vec3) {
	for n, c := range UnitCorners {
		corners[n] = Vec3{lx * c[0], ly * c[1], lz * c[2]}
	}
	return
}

// distortedCorners is a 2x1x3 box with every corner but the first moved by
// a few percent of the edge length.
func distortedCorners() (corners [8]Vec3) {
	perturb := [8]Vec3{
		{0, 0, 0},
		{0.1, -0.05, 0.02},
		{-0.1, 0.08, 0.05},
		{0.05, 0.1, -0.04},
		{0.03, -0.02, 0.1},
		{-0.06, 0.04, -0.08},
		{0.12, 0.1, 0.1},
		{-0.04, -0.06, 0.07},
	}
	corners = boxCorners(2, 1, 3)
	for n := range corners {
		for i := 0; i < 3; i++ {
			corners[n][i] += perturb[n][i]
		}
	}
	return
}

// shearedCorners is the parallelepiped x = 2r+0.3s, y = s+0.2t, z = 3t+0.1r
func shearedCorners() (corners [8]Vec3) {
	for n, c := range UnitCorners {
		r, s, t := c[0], c[1], c[2]
		corners[n] = Vec3{2*r + 0.3*s, s + 0.2*t, 3*t + 0.1*r}
	}
	return
}

func linearField(corners [8]Vec3, a, b, c, d float64) (phi NodeValues) {
	for n, pt := range corners {
		phi[n] = a*pt[0] + b*pt[1] + c*pt[2] + d
	}
	return
}

// interiorPoints is a 4x4x4 grid strictly inside the unit cube
func interiorPoints() (pts []Vec3) {
	vals := []float64{0.05, 0.35, 0.65, 0.95}
	for _, r := range vals {
		for _, s := range vals {
			for _, t := range vals {
				pts = append(pts, Vec3{r, s, t})
			}
		}
	}
	return
}
