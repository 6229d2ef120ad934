package encoder

import (
	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrcode/geometry"
	"github.com/qr-go/qrencode/qrcode/tables"
)

// ByteMatrix is a dimension x dimension grid of module values, addressed
// (x, y) = (column, row) with row 0 at the top -- the assembler's native
// working convention (see Design Notes in DESIGN.md on the coordinate
// decision). 0xFF marks a cell the data walk has not yet written.
type ByteMatrix struct {
	Data          [][]byte
	Width, Height int
}

const emptyCell = 0xFF

// NewByteMatrix creates a dimension x dimension ByteMatrix, cleared to
// emptyCell.
func NewByteMatrix(dimension int) *ByteMatrix {
	data := make([][]byte, dimension)
	for i := range data {
		row := make([]byte, dimension)
		for j := range row {
			row[j] = emptyCell
		}
		data[i] = row
	}
	return &ByteMatrix{Data: data, Width: dimension, Height: dimension}
}

// Get returns the value at (x, y).
func (bm *ByteMatrix) Get(x, y int) byte { return bm.Data[y][x] }

// Set sets the value at (x, y) to 0 or 1.
func (bm *ByteMatrix) Set(x, y int, value byte) { bm.Data[y][x] = value }

// SetBool sets the value at (x, y) as 1 (true) or 0 (false).
func (bm *ByteMatrix) SetBool(x, y int, value bool) {
	if value {
		bm.Data[y][x] = 1
	} else {
		bm.Data[y][x] = 0
	}
}

var positionDetectionPattern = [7][7]byte{
	{1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1},
}

var positionAdjustmentPattern = [5][5]byte{
	{1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1},
	{1, 0, 1, 0, 1},
	{1, 0, 0, 0, 1},
	{1, 1, 1, 1, 1},
}

// embedBasicPatterns draws the finder patterns, separators, alignment
// patterns, timing patterns, and the dark module.
func embedBasicPatterns(version *tables.Version, matrix *ByteMatrix) {
	embedPositionDetectionPattern(0, 0, matrix)
	embedPositionDetectionPattern(matrix.Width-7, 0, matrix)
	embedPositionDetectionPattern(0, matrix.Height-7, matrix)

	embedHorizontalSeparator(0, 7, matrix)
	embedHorizontalSeparator(matrix.Width-8, 7, matrix)
	embedHorizontalSeparator(0, matrix.Height-8, matrix)

	embedVerticalSeparator(7, 0, matrix)
	embedVerticalSeparator(matrix.Width-8, 0, matrix)
	embedVerticalSeparator(7, matrix.Height-7, matrix)

	if version.Number >= 2 {
		embedPositionAdjustmentPatterns(version, matrix)
	}

	embedTimingPatterns(matrix)

	// Dark module, spec (4*version+9, 8): row dim-8, column 8 (row 13 for
	// version 1).
	matrix.Set(8, matrix.Height-8, 1)
}

func embedPositionDetectionPattern(xStart, yStart int, matrix *ByteMatrix) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			matrix.Set(xStart+x, yStart+y, positionDetectionPattern[y][x])
		}
	}
}

func embedHorizontalSeparator(xStart, yStart int, matrix *ByteMatrix) {
	for x := 0; x < 8; x++ {
		if xStart+x < matrix.Width {
			matrix.Set(xStart+x, yStart, 0)
		}
	}
}

func embedVerticalSeparator(xStart, yStart int, matrix *ByteMatrix) {
	for y := 0; y < 7; y++ {
		if yStart+y < matrix.Height {
			matrix.Set(xStart, yStart+y, 0)
		}
	}
}

func embedPositionAdjustmentPatterns(version *tables.Version, matrix *ByteMatrix) {
	centers := version.AlignmentPatternCenters
	for _, cy := range centers {
		for _, cx := range centers {
			if matrix.Get(cx, cy) != emptyCell {
				continue
			}
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					matrix.Set(cx-2+x, cy-2+y, positionAdjustmentPattern[y][x])
				}
			}
		}
	}
}

func embedTimingPatterns(matrix *ByteMatrix) {
	for i := 8; i < matrix.Width-8; i++ {
		bit := byte((i + 1) % 2)
		if matrix.Get(i, 6) == emptyCell {
			matrix.Set(i, 6, bit)
		}
		if matrix.Get(6, i) == emptyCell {
			matrix.Set(6, i, bit)
		}
	}
}

// embedDataBits streams finalBits along the zig-zag path: two columns at a
// time from the right edge, skipping the vertical timing column, with the
// vertical direction alternating each time a two-column strip is completed.
// Cells reached after finalBits is exhausted are written as a zero bit
// (before masking). Any cell in functionPattern is left untouched by the
// data walk.
func embedDataBits(finalBits *bitutil.BitArray, functionPattern *geometry.PositionSet, maskPattern int, matrix *ByteMatrix) {
	dimension := matrix.Height
	bitIndex := 0
	totalBits := finalBits.Size()

	for j := dimension - 1; j > 0; j -= 2 {
		if j == 6 {
			j--
		}
		for count := 0; count < dimension; count++ {
			upward := (((dimension - 1 - j) / 2) & 1) == 0
			i := count
			if upward {
				i = dimension - 1 - count
			}
			for col := 0; col < 2; col++ {
				x := j - col
				if functionPattern.Contains(geometry.Position{X: x, Y: i}) {
					continue
				}
				var bit bool
				if bitIndex < totalBits {
					bit = finalBits.Get(bitIndex)
					bitIndex++
				}
				if tables.DataMasks[maskPattern](i, x) {
					bit = !bit
				}
				matrix.SetBool(x, i, bit)
			}
		}
	}
}
