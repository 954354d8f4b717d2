package aero

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Lookup grid axes. Velocity rows, spin columns.
const (
	VMin  = 5.0  // m/s
	VMax  = 60.0 // m/s
	VStep = 1.0  // m/s

	SpinMin  = 0.0    // rpm
	SpinMax  = 4000.0 // rpm
	SpinStep = 50.0   // rpm
)

// Calibration constants for the default coefficient model.
const (
	cdBase         = 0.32
	spinDragFactor = 0.00002 // extra Cd per rpm
	spinDragMax    = 0.15    // cap on spin-induced Cd increase
	spinFactor     = 0.000145
	spinSaturation = 2500.0 // rpm; Cl grows at 20% slope beyond
)

// Table holds immutable drag (Cd) and lift (Cl) coefficient grids indexed by
// (velocity, spin rate). Shared read-only across all workers in a batch.
type Table struct {
	cd, cl *mat.Dense
	rows   int
	cols   int
}

// NewTable builds a Table from row-major grids. Both grids must be
// rectangular, identically sized and at least 2x2 so every bilinear lookup
// has four corner samples.
func NewTable(cd, cl [][]float64) (*Table, error) {
	dense := func(name string, grid [][]float64) (*mat.Dense, error) {
		if len(grid) < 2 || len(grid[0]) < 2 {
			return nil, fmt.Errorf("%s table must be at least 2x2, got %dx%d", name, len(grid), colsOf(grid))
		}
		cols := len(grid[0])
		flat := make([]float64, 0, len(grid)*cols)
		for i, row := range grid {
			if len(row) != cols {
				return nil, fmt.Errorf("%s table row %d has %d columns, want %d", name, i, len(row), cols)
			}
			flat = append(flat, row...)
		}
		return mat.NewDense(len(grid), cols, flat), nil
	}

	cdDense, err := dense("cd", cd)
	if err != nil {
		return nil, err
	}
	clDense, err := dense("cl", cl)
	if err != nil {
		return nil, err
	}

	cr, cc := cdDense.Dims()
	lr, lc := clDense.Dims()
	if cr != lr || cc != lc {
		return nil, fmt.Errorf("cd table is %dx%d but cl table is %dx%d", cr, cc, lr, lc)
	}

	return &Table{cd: cdDense, cl: clDense, rows: cr, cols: cc}, nil
}

func colsOf(grid [][]float64) int {
	if len(grid) == 0 {
		return 0
	}
	return len(grid[0])
}

// DefaultTable generates coefficient grids over the standard axes using the
// calibrated spin-drag and lift saturation model.
func DefaultTable() *Table {
	rows := int((VMax - VMin) / VStep)
	cols := int((SpinMax - SpinMin) / SpinStep)

	cd := mat.NewDense(rows, cols, nil)
	cl := mat.NewDense(rows, cols, nil)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			spin := SpinMin + float64(j)*SpinStep
			cd.Set(i, j, dragCoefficient(spin))
			cl.Set(i, j, liftCoefficient(spin))
		}
	}

	return &Table{cd: cd, cl: cl, rows: rows, cols: cols}
}

func dragCoefficient(spinRPM float64) float64 {
	return cdBase + math.Min(spinDragFactor*spinRPM, spinDragMax)
}

func liftCoefficient(spinRPM float64) float64 {
	if spinRPM <= spinSaturation {
		return spinFactor * spinRPM
	}
	return spinFactor*spinSaturation + spinFactor*(spinRPM-spinSaturation)*0.2
}

// Dims returns the grid dimensions (velocity rows, spin columns).
func (t *Table) Dims() (rows, cols int) {
	return t.rows, t.cols
}

// Lookup returns (Cd, Cl) for the given velocity and spin rate via bilinear
// interpolation. Inputs are clamped to the grid range, never rejected.
// Safe for concurrent use.
func (t *Table) Lookup(velocity, spinRPM float64) (cd, cl float64) {
	v := clamp(velocity, VMin, VMax-VStep)
	s := clamp(spinRPM, SpinMin, SpinMax-SpinStep)

	vIdx := int((v - VMin) / VStep)
	sIdx := int((s - SpinMin) / SpinStep)

	// Guard the last cell so the +1 corners always exist.
	if vIdx > t.rows-2 {
		vIdx = t.rows - 2
	}
	if sIdx > t.cols-2 {
		sIdx = t.cols - 2
	}

	vFrac := (v - (VMin + float64(vIdx)*VStep)) / VStep
	sFrac := (s - (SpinMin + float64(sIdx)*SpinStep)) / SpinStep

	cd = bilinear(t.cd, vIdx, sIdx, vFrac, sFrac)
	cl = bilinear(t.cl, vIdx, sIdx, vFrac, sFrac)
	return cd, cl
}

func bilinear(grid *mat.Dense, i, j int, iFrac, jFrac float64) float64 {
	v00 := grid.At(i, j)
	v10 := grid.At(i+1, j)
	v01 := grid.At(i, j+1)
	v11 := grid.At(i+1, j+1)

	return v00*(1-iFrac)*(1-jFrac) +
		v10*iFrac*(1-jFrac) +
		v01*(1-iFrac)*jFrac +
		v11*iFrac*jFrac
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
