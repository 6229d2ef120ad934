package geometry

import "github.com/qr-go/qrencode/qrcode/tables"

// FunctionPatternPositions returns the set of every module cell occupied by
// a structural (non-payload) pattern for the given version: the three
// finder+separator blocks, the alignment grid (skipping centers that
// overlap a finder), the timing rows, and -- for version 7 and up -- the
// two version-information reservations. The data walk and mask application
// both consult this set to skip these cells.
func FunctionPatternPositions(version *tables.Version) *PositionSet {
	dim := version.DimensionForVersion()
	set := NewPositionSet()

	// Three 7x7 finder patterns plus their separators, as 9x9/8x9/9x8
	// bounding blocks at the top-left, top-right, and bottom-left corners.
	set.AddRect(0, 0, 9, 9)
	set.AddRect(dim-8, 0, 8, 9)
	set.AddRect(0, dim-8, 9, 8)

	addAlignmentPositions(set, version)

	// Timing patterns: the full row/column 6, except where it crosses a
	// finder block (already covered above).
	set.AddRect(6, 9, 1, dim-17)
	set.AddRect(9, 6, dim-17, 1)

	if version.Number > 6 {
		set.AddRect(dim-11, 0, 3, 6)
		set.AddRect(0, dim-11, 6, 3)
	}

	return set
}

func addAlignmentPositions(set *PositionSet, version *tables.Version) {
	centers := version.AlignmentPatternCenters
	max := len(centers)
	for col := 0; col < max; col++ {
		top := centers[col] - 2
		for row := 0; row < max; row++ {
			if (col == 0 && (row == 0 || row == max-1)) || (col == max-1 && row == 0) {
				continue
			}
			set.AddRect(centers[row]-2, top, 5, 5)
		}
	}
}

// FormatInfoPositions returns the two 15-bit position sequences the format
// word is written into: the L-shaped run of cells adjacent to the top-left
// finder, and the run split across the top-right and bottom-left finders.
// Bit i of the format word maps to index i of each sequence.
func FormatInfoPositions(dim int) (topLeft, split PositionSeq) {
	topLeft = topLeft.Append(
		Position{8, 0}, Position{8, 1}, Position{8, 2}, Position{8, 3},
		Position{8, 4}, Position{8, 5}, Position{8, 7}, Position{8, 8},
		Position{7, 8}, Position{5, 8}, Position{4, 8}, Position{3, 8},
		Position{2, 8}, Position{1, 8}, Position{0, 8},
	)
	for i := 0; i < 8; i++ {
		split = split.Append(Position{dim - 1 - i, 8})
	}
	for i := 8; i < 15; i++ {
		split = split.Append(Position{8, dim - 7 + (i - 8)})
	}
	return topLeft, split
}

// VersionInfoPositions returns the two 18-bit position sequences the version
// word is written into, for version >= 7: the 6x3 block near the top-right
// finder and the 3x6 block near the bottom-left finder. Bit i of the
// version word maps to index i of each sequence.
func VersionInfoPositions(dim int) (topRight, bottomLeft PositionSeq) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 3; j++ {
			bottomLeft = bottomLeft.Append(Position{i, dim - 11 + j})
			topRight = topRight.Append(Position{dim - 11 + j, i})
		}
	}
	return topRight, bottomLeft
}
