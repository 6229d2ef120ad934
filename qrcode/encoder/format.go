package encoder

import (
	"github.com/qr-go/qrencode/qrcode/geometry"
	"github.com/qr-go/qrencode/qrcode/tables"
)

const (
	typeInfoPoly        = 0x537
	typeInfoMaskPattern = 0x5412
)

// embedTypeInfo computes the 15-bit format word (EC level + mask pattern,
// BCH(15,5)-protected and XORed with the fixed mask) and writes it, LSB
// first, into both format-info position sequences.
func embedTypeInfo(ecLevel tables.ErrorCorrectionLevel, maskPattern int, matrix *ByteMatrix) {
	typeInfo := (ecLevel.Bits() << 3) | maskPattern
	bchCode := calculateBCHCode(typeInfo, typeInfoPoly)
	bits := ((typeInfo << 10) | bchCode) ^ typeInfoMaskPattern

	topLeft, split := geometry.FormatInfoPositions(matrix.Width)
	for i := 0; i < 15; i++ {
		bit := byte((bits >> uint(i)) & 1)
		matrix.Set(topLeft[i].X, topLeft[i].Y, bit)
		matrix.Set(split[i].X, split[i].Y, bit)
	}
}

// maybeEmbedVersionInfo writes the precomputed 18-bit version word,
// BCH(18,6)-protected, into both version-info blocks for version 7 and up.
// Versions below 7 carry no version-information block.
func maybeEmbedVersionInfo(version *tables.Version, matrix *ByteMatrix) {
	if version.Number < 7 {
		return
	}
	bits := version.VersionInfoWord()

	topRight, bottomLeft := geometry.VersionInfoPositions(matrix.Width)
	for i := 0; i < 18; i++ {
		bit := byte((bits >> uint(i)) & 1)
		matrix.Set(topRight[i].X, topRight[i].Y, bit)
		matrix.Set(bottomLeft[i].X, bottomLeft[i].Y, bit)
	}
}

func calculateBCHCode(value, poly int) int {
	msbSetInPoly := findMSBSet(poly)
	value <<= uint(msbSetInPoly - 1)
	for findMSBSet(value) >= msbSetInPoly {
		value ^= poly << uint(findMSBSet(value)-msbSetInPoly)
	}
	return value
}

func findMSBSet(value int) int {
	count := 0
	for value != 0 {
		value >>= 1
		count++
	}
	return count
}
