package hexahedra

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/hexinterp/utils"
)

// HexMesh is a set of hexahedra sharing a vertex list
type HexMesh struct {
	Vertices []Vec3
	Elements [][8]int // Element to vertex connectivity, hexa ordering
	cells    []*Cell
}

func NewHexMesh(vertices []Vec3, elements [][8]int) (m *HexMesh, err error) {
	var (
		K       = len(elements)
		corners = make([][8]Vec3, K)
	)
	m = &HexMesh{
		Vertices: vertices,
		Elements: elements,
		cells:    make([]*Cell, K),
	}
	if K == 0 {
		return
	}
	// Columns 3k, 3k+1, 3k+2 hold the x, y, z corner coordinates of element k
	X := mat.NewDense(8, 3*K, nil)
	for k, elem := range elements {
		for n, v := range elem {
			if v < 0 || v >= len(vertices) {
				err = fmt.Errorf("element %d references vertex %d, mesh has %d vertices",
					k, v, len(vertices))
				return nil, err
			}
			corners[k][n] = vertices[v]
			for i := 0; i < 3; i++ {
				X.Set(n, 3*k+i, vertices[v][i])
			}
		}
	}
	C := GetCoefficientsBatch(X)
	for k := range elements {
		m.cells[k] = newCellFromCoefficients(corners[k],
			Column(C, 3*k), Column(C, 3*k+1), Column(C, 3*k+2))
	}
	return
}

func (m *HexMesh) NumElements() int { return len(m.Elements) }

func (m *HexMesh) Cell(k int) *Cell { return m.cells[k] }

// SetMapper replaces the inverse mapper and fallback setting of every cell
func (m *HexMesh) SetMapper(im *InverseMapper, fallback bool) {
	for _, c := range m.cells {
		c.Mapper = im
		c.Fallback = fallback
	}
}

// GatherNodeValues picks the nodal values of element k out of a vertex field
func (m *HexMesh) GatherNodeValues(k int, field []float64) (phi NodeValues) {
	for n, v := range m.Elements[k] {
		phi[n] = field[v]
	}
	return
}

// ProbeResult is the field sampled at one point. Element is -1 when no
// cell contains the point. Degenerate marks a singular Jacobian at Xhat,
// Gradient is zero then.
type ProbeResult struct {
	Point      Vec3
	Element    int
	Xhat       Vec3
	Value      float64
	Gradient   Vec3
	Degenerate bool
}

// Find returns the first element containing x, or -1
func (m *HexMesh) Find(x Vec3) (int, Vec3) {
	for k, c := range m.cells {
		if !c.InBoundingBox(x) {
			continue
		}
		if xhat, err := c.Locate(x); err == nil && InsideUnitCube(xhat) {
			return k, xhat
		}
	}
	return -1, Vec3{}
}

// Probe samples the vertex field at each point, spreading the points over
// procLimit go routines (all CPUs when zero).
func (m *HexMesh) Probe(field []float64, points []Vec3, procLimit int) (results []ProbeResult, err error) {
	if len(field) != len(m.Vertices) {
		err = fmt.Errorf("field has %d values, mesh has %d vertices", len(field), len(m.Vertices))
		return
	}
	results = make([]ProbeResult, len(points))
	if len(points) == 0 {
		return
	}
	var (
		pm = Partition(len(points), procLimit)
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			for i := kMin; i < kMax; i++ {
				results[i] = m.probePoint(field, points[i])
			}
		}(np)
	}
	wg.Wait()
	return
}

// Partition is the split of nPoints over go routines used by Probe
func Partition(nPoints, procLimit int) *utils.PartitionMap {
	return utils.NewPartitionMap(utils.ParallelDegree(procLimit, nPoints), nPoints)
}

func (m *HexMesh) probePoint(field []float64, x Vec3) (res ProbeResult) {
	res.Point = x
	res.Element, res.Xhat = m.Find(x)
	if res.Element == -1 {
		return
	}
	var (
		c    = m.cells[res.Element]
		coef = GetCoefficients(m.GatherNodeValues(res.Element, field))
	)
	res.Value = Value(res.Xhat, coef)
	var err error
	if res.Gradient, err = PhysicalGradient(res.Xhat, coef, c.XCoef, c.YCoef, c.ZCoef); err != nil {
		res.Gradient, res.Degenerate = Vec3{}, true
	}
	return
}
