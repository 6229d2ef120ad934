package encoder

import (
	"testing"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrcode/geometry"
	"github.com/qr-go/qrencode/qrcode/tables"
)

// allDark builds a dimension x dimension matrix with every cell set to 1,
// the synthetic worst-case fixture the balance rule's penalty is checked
// against: maximally imbalanced, so rule 4 alone must contribute 100.
func allDark(dimension int) *ByteMatrix {
	m := NewByteMatrix(dimension)
	for y := 0; y < dimension; y++ {
		for x := 0; x < dimension; x++ {
			m.Set(x, y, 1)
		}
	}
	return m
}

func TestMaskPenaltyRule4FullyDarkMatrix(t *testing.T) {
	m := allDark(21)
	if got := applyMaskPenaltyRule4(m); got != 100 {
		t.Errorf("applyMaskPenaltyRule4(all dark) = %d, want 100", got)
	}
}

func TestMaskPenaltyRule1LongRun(t *testing.T) {
	m := NewByteMatrix(21)
	// Every other row is a checkerboard, so only row 0 holds a run of five
	// or more.
	for y := 0; y < 21; y++ {
		for x := 0; x < 21; x++ {
			m.Set(x, y, byte((x+y)%2))
		}
	}
	for x := 0; x < 21; x++ {
		m.Set(x, 0, 0)
	}
	// A run of 21 same-colored cells in one row: 3 base + (21-5) extra.
	want := 3 + (21 - 5)
	if got := applyMaskPenaltyRule1Internal(m, true); got != want {
		t.Errorf("applyMaskPenaltyRule1Internal(horizontal) = %d, want %d", got, want)
	}
}

func TestMaskPenaltyRule2AllDarkBlock(t *testing.T) {
	m := NewByteMatrix(4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.Set(x, y, 1)
		}
	}
	// A fully dark 4x4 region contains nine overlapping 2x2 blocks.
	if got := applyMaskPenaltyRule2(m); got != 9*3 {
		t.Errorf("applyMaskPenaltyRule2(4x4 dark) = %d, want %d", got, 9*3)
	}
}

func TestChooseMaskPatternPicksLowestPenaltyAmongCandidates(t *testing.T) {
	version, err := tables.GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("GetVersionForNumber(1): %v", err)
	}
	level := tables.ECLevelH
	functionPattern := geometry.FunctionPatternPositions(version)

	numDataBits := version.NumDataCodewords(level) * 8
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(0, numDataBits)

	pattern, matrix := ChooseMaskPattern(bits, version, level, functionPattern)
	if pattern < 0 || pattern > 7 {
		t.Fatalf("ChooseMaskPattern returned out-of-range pattern %d", pattern)
	}

	best := scoreMaskPenalty(matrix)
	for i := 0; i < numMaskPatterns; i++ {
		candidate := BuildMatrix(bits, version, level, i, functionPattern)
		if p := scoreMaskPenalty(candidate); p < best {
			t.Errorf("pattern %d scores %d, lower than chosen pattern %d's %d", i, p, pattern, best)
		}
	}
}
