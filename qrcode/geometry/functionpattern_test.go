package geometry

import (
	"testing"

	"github.com/qr-go/qrencode/qrcode/tables"
)

func TestFunctionPatternPositionsVersion1ExcludesVersionInfo(t *testing.T) {
	version, err := tables.GetVersionForNumber(1)
	if err != nil {
		t.Fatalf("GetVersionForNumber(1): %v", err)
	}
	set := FunctionPatternPositions(version)

	// Version 1 has no alignment patterns and no version-info block; the
	// finder/separator corners and the two timing strips are the whole set.
	if !set.Contains(Position{3, 3}) {
		t.Error("expected top-left finder core to be a function-pattern cell")
	}
	if set.Contains(Position{10, 10}) {
		t.Error("did not expect a data-region cell to be a function-pattern cell")
	}
}

func TestFunctionPatternPositionsVersion7IncludesVersionInfo(t *testing.T) {
	version, err := tables.GetVersionForNumber(7)
	if err != nil {
		t.Fatalf("GetVersionForNumber(7): %v", err)
	}
	dim := version.DimensionForVersion()
	set := FunctionPatternPositions(version)

	if !set.Contains(Position{dim - 9, 0}) {
		t.Error("expected the top-right version-info block to be reserved")
	}
	if !set.Contains(Position{0, dim - 9}) {
		t.Error("expected the bottom-left version-info block to be reserved")
	}
}

func TestFunctionPatternPositionsVersion2SkipsFinderAdjacentAlignmentCenters(t *testing.T) {
	version, err := tables.GetVersionForNumber(2)
	if err != nil {
		t.Fatalf("GetVersionForNumber(2): %v", err)
	}
	set := FunctionPatternPositions(version)

	// Version 2's only alignment center pair away from all three finders is
	// (18, 18); the other three center combinations overlap a finder and are
	// already covered by the finder/separator blocks.
	if !set.Contains(Position{18, 18}) {
		t.Error("expected the lone standalone alignment pattern to be reserved")
	}
}

func TestFormatInfoPositionsBitOrderAndLength(t *testing.T) {
	topLeft, split := FormatInfoPositions(21)
	if len(topLeft) != 15 || len(split) != 15 {
		t.Fatalf("len(topLeft)=%d len(split)=%d, want 15 and 15", len(topLeft), len(split))
	}
	if topLeft[0] != (Position{8, 0}) {
		t.Errorf("topLeft[0] = %v, want (8,0)", topLeft[0])
	}
	if split[0] != (Position{20, 8}) {
		t.Errorf("split[0] = %v, want (20,8)", split[0])
	}
}

func TestVersionInfoPositionsBitOrderAndLength(t *testing.T) {
	version, err := tables.GetVersionForNumber(7)
	if err != nil {
		t.Fatalf("GetVersionForNumber(7): %v", err)
	}
	dim := version.DimensionForVersion()
	topRight, bottomLeft := VersionInfoPositions(dim)
	if len(topRight) != 18 || len(bottomLeft) != 18 {
		t.Fatalf("len(topRight)=%d len(bottomLeft)=%d, want 18 and 18", len(topRight), len(bottomLeft))
	}
	if topRight[0] != (Position{dim - 11, 0}) {
		t.Errorf("topRight[0] = %v, want (%d,0)", topRight[0], dim-11)
	}
	if bottomLeft[0] != (Position{0, dim - 11}) {
		t.Errorf("bottomLeft[0] = %v, want (0,%d)", bottomLeft[0], dim-11)
	}
}
