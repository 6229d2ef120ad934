package bitutil

import "testing"

func TestBitMatrixGetSet(t *testing.T) {
	bm := NewBitMatrixWithSize(10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixDimensionsCrossWordBoundary(t *testing.T) {
	bm := NewBitMatrixWithSize(40, 2)
	bm.Set(39, 1)
	if bm.Width() != 40 || bm.Height() != 2 {
		t.Errorf("dimensions = %dx%d, want 40x2", bm.Width(), bm.Height())
	}
	if !bm.Get(39, 1) {
		t.Error("bit (39,1) should be set across a row-size boundary")
	}
	if bm.Get(38, 1) {
		t.Error("bit (38,1) should not be set")
	}
}

func TestParseBoolMatrixPreservesTopLeftOrientation(t *testing.T) {
	image := [][]bool{
		{true, false, false},
		{false, true, false},
	}
	bm := ParseBoolMatrix(image)
	if bm.Width() != 3 || bm.Height() != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", bm.Width(), bm.Height())
	}
	if !bm.Get(0, 0) || bm.Get(1, 0) || bm.Get(2, 0) {
		t.Error("row 0 mismatch")
	}
	if !bm.Get(1, 1) || bm.Get(0, 1) || bm.Get(2, 1) {
		t.Error("row 1 mismatch")
	}
}
