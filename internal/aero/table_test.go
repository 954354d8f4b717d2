package aero

import (
	"math"
	"testing"
)

func TestNewTableValidation(t *testing.T) {
	good := [][]float64{{0.3, 0.3}, {0.3, 0.3}}

	tests := []struct {
		name string
		cd   [][]float64
		cl   [][]float64
	}{
		{"empty cd", [][]float64{}, good},
		{"single row", [][]float64{{0.3, 0.3}}, good},
		{"single column", [][]float64{{0.3}, {0.3}}, good},
		{"ragged rows", [][]float64{{0.3, 0.3}, {0.3}}, good},
		{"mismatched dims", good, [][]float64{{0.1, 0.1, 0.1}, {0.1, 0.1, 0.1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTable(tt.cd, tt.cl); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	if _, err := NewTable(good, good); err != nil {
		t.Fatalf("valid table rejected: %v", err)
	}
}

func TestDefaultTableDims(t *testing.T) {
	tbl := DefaultTable()
	rows, cols := tbl.Dims()

	wantRows := int((VMax - VMin) / VStep)
	wantCols := int((SpinMax - SpinMin) / SpinStep)
	if rows != wantRows || cols != wantCols {
		t.Errorf("dims = %dx%d, want %dx%d", rows, cols, wantRows, wantCols)
	}
}

func TestLookupClamping(t *testing.T) {
	tbl := DefaultTable()

	// Far out-of-range queries must return the edge values, not panic.
	tests := []struct {
		name     string
		velocity float64
		spin     float64
	}{
		{"below velocity range", 0.1, 1000},
		{"above velocity range", 500, 1000},
		{"negative spin", 30, -100},
		{"above spin range", 30, 99999},
		{"both out of range", -10, 1e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cd, cl := tbl.Lookup(tt.velocity, tt.spin)
			if math.IsNaN(cd) || math.IsNaN(cl) {
				t.Fatalf("Lookup(%v, %v) returned NaN", tt.velocity, tt.spin)
			}
			if cd < cdBase || cd > cdBase+spinDragMax {
				t.Errorf("cd = %v out of model range", cd)
			}
			if cl < 0 {
				t.Errorf("cl = %v negative", cl)
			}
		})
	}
}

func TestLookupMatchesModel(t *testing.T) {
	tbl := DefaultTable()

	// On a grid node the bilinear interpolation collapses to the node value.
	cd, cl := tbl.Lookup(30.0, 1500.0)
	if math.Abs(cd-dragCoefficient(1500)) > 1e-12 {
		t.Errorf("cd = %v, want %v", cd, dragCoefficient(1500))
	}
	if math.Abs(cl-liftCoefficient(1500)) > 1e-12 {
		t.Errorf("cl = %v, want %v", cl, liftCoefficient(1500))
	}

	// Between nodes the result sits between the bracketing node values.
	cdLo, _ := tbl.Lookup(30.0, 1500.0)
	cdHi, _ := tbl.Lookup(30.0, 1550.0)
	cdMid, _ := tbl.Lookup(30.0, 1525.0)
	if cdMid < math.Min(cdLo, cdHi) || cdMid > math.Max(cdLo, cdHi) {
		t.Errorf("interpolated cd %v outside [%v, %v]", cdMid, cdLo, cdHi)
	}
}

func TestDragCoefficientCap(t *testing.T) {
	if got := dragCoefficient(0); got != cdBase {
		t.Errorf("zero-spin cd = %v, want %v", got, cdBase)
	}
	// 2e-5 per rpm caps out at +0.15 by 7500 rpm; the grid tops out below
	// that, but the model itself must still be bounded.
	if got := dragCoefficient(1e6); got != cdBase+spinDragMax {
		t.Errorf("high-spin cd = %v, want %v", got, cdBase+spinDragMax)
	}
}

func TestLiftCoefficientSaturation(t *testing.T) {
	below := liftCoefficient(2000)
	at := liftCoefficient(2500)
	above := liftCoefficient(3000)

	if below >= at {
		t.Errorf("cl not increasing below saturation: %v >= %v", below, at)
	}
	if above <= at {
		t.Errorf("cl flat above saturation: %v <= %v", above, at)
	}

	// Slope drops to 20% past the knee.
	preSlope := (at - below) / 500
	postSlope := (above - at) / 500
	if math.Abs(postSlope-0.2*preSlope) > 1e-12 {
		t.Errorf("post-saturation slope = %v, want %v", postSlope, 0.2*preSlope)
	}
}
