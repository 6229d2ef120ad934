package encoder

import (
	"math"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrcode/geometry"
	"github.com/qr-go/qrencode/qrcode/tables"
)

// BuildMatrix assembles the full dimension x dimension matrix for one mask
// candidate: function patterns, format/version info, and the interleaved
// codeword stream along the zig-zag data walk.
func BuildMatrix(finalBits *bitutil.BitArray, version *tables.Version, level tables.ErrorCorrectionLevel, maskPattern int, functionPattern *geometry.PositionSet) *ByteMatrix {
	matrix := NewByteMatrix(version.DimensionForVersion())
	embedBasicPatterns(version, matrix)
	embedTypeInfo(level, maskPattern, matrix)
	maybeEmbedVersionInfo(version, matrix)
	embedDataBits(finalBits, functionPattern, maskPattern, matrix)
	return matrix
}

// ChooseMaskPattern renders all 8 mask candidates and returns the index and
// matrix with the lowest combined penalty score; the lowest index wins ties.
func ChooseMaskPattern(finalBits *bitutil.BitArray, version *tables.Version, level tables.ErrorCorrectionLevel, functionPattern *geometry.PositionSet) (int, *ByteMatrix) {
	bestPattern := 0
	var bestMatrix *ByteMatrix
	minPenalty := math.MaxInt32
	for i := 0; i < numMaskPatterns; i++ {
		candidate := BuildMatrix(finalBits, version, level, i, functionPattern)
		if penalty := scoreMaskPenalty(candidate); penalty < minPenalty {
			minPenalty = penalty
			bestPattern = i
			bestMatrix = candidate
		}
	}
	return bestPattern, bestMatrix
}
