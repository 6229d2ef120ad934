// Package qrcode builds QR Code symbol matrices: it selects an unspecified
// version/error-correction level against a payload's capacity, packs the
// payload into codewords, generates Reed-Solomon error correction, and
// assembles the placed-and-masked module matrix.
package qrcode

import (
	"errors"
	"fmt"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrcode/encoder"
	"github.com/qr-go/qrencode/qrcode/geometry"
	"github.com/qr-go/qrencode/qrcode/tables"
)

// Mode is the payload encoding mode: how characters are packed into bits.
type Mode = tables.Mode

// The four modes Generate supports.
const (
	ModeNumeric      = tables.ModeNumeric
	ModeAlphanumeric = tables.ModeAlphanumeric
	ModeByte         = tables.ModeByte
	ModeKanji        = tables.ModeKanji
)

// Level is an error-correction level: the fraction of codewords that can be
// recovered if damaged or obscured.
type Level = tables.ErrorCorrectionLevel

// The four standard error-correction levels, weakest to strongest.
const (
	LevelL = tables.ECLevelL
	LevelM = tables.ECLevelM
	LevelQ = tables.ECLevelQ
	LevelH = tables.ECLevelH
)

// LevelAuto requests BuilderConfig.Level be chosen automatically.
const LevelAuto Level = -1

// VersionAuto requests BuilderConfig.Version be chosen automatically.
const VersionAuto = -1

// MaskAuto requests BuilderConfig.Mask be chosen by penalty evaluation.
const MaskAuto = -1

var (
	// ErrVersionUnavailable reports that no version at any acceptable level
	// holds a payload of the given length.
	ErrVersionUnavailable = errors.New("qrcode: no version fits the payload")

	// ErrLevelUnavailable reports that no error-correction level fits the
	// payload at the requested version.
	ErrLevelUnavailable = errors.New("qrcode: no level fits at the requested version")

	// ErrPayloadTooLarge reports that the resolved (version, level) does not
	// hold a payload of the given length.
	ErrPayloadTooLarge = errors.New("qrcode: payload exceeds capacity")

	// ErrModeViolation reports that the payload contains a byte outside the
	// chosen mode's alphabet.
	ErrModeViolation = encoder.ErrModeViolation

	// ErrNotImplemented reports a mode Generate cannot encode.
	ErrNotImplemented = encoder.ErrNotImplemented
)

// QRCode is the finished symbol: the resolved version/level/mode/mask and
// the placed, masked module matrix. Modules[x][y] addresses column x, row y
// with (0, 0) at the bottom-left; true is a dark module.
type QRCode struct {
	Version int
	Level   Level
	Mode    Mode
	Mask    int
	Modules [][]bool
}

// Dimension returns the module width/height of the symbol (dim == len(q.Modules)).
func (q *QRCode) Dimension() int {
	return len(q.Modules)
}

// BitMatrix packs the symbol into a word-aligned bitutil.BitMatrix, row-major
// with (0, 0) at the top-left -- the orientation image renderers and other
// bitutil consumers expect, as opposed to Modules' bottom-left addressing.
func (q *QRCode) BitMatrix() *bitutil.BitMatrix {
	dim := q.Dimension()
	rows := make([][]bool, dim)
	for row := 0; row < dim; row++ {
		y := dim - 1 - row
		cells := make([]bool, dim)
		for x := 0; x < dim; x++ {
			cells[x] = q.Modules[x][y]
		}
		rows[row] = cells
	}
	return bitutil.ParseBoolMatrix(rows)
}

// BuilderConfig selects a Builder's version, level, mode, and mask before any
// payload is known. Version/Level/Mask accept their respective Auto
// sentinels; Mode has no auto form -- the caller names the encoding.
type BuilderConfig struct {
	Version int
	Level   Level
	Mode    Mode
	Mask    int
}

// Builder resolves a (version, level) pair once, up front, and reuses it for
// every Generate call. It holds no payload state between calls.
type Builder struct {
	version         *tables.Version
	level           Level
	mode            Mode
	mask            int
	functionPattern *geometry.PositionSet
}

// NewBuilder resolves cfg against a payload of dataLength mode-units (bytes
// for NUM/ALNUM/BIT8, Shift-JIS character pairs for KANJI), following the
// search policy in resolveVersionLevel. The returned Builder's Generate must
// only be called with a payload of exactly this length.
func NewBuilder(dataLength int, cfg BuilderConfig) (*Builder, error) {
	version, level, err := resolveVersionLevel(dataLength, cfg.Mode, cfg.Version, cfg.Level)
	if err != nil {
		return nil, err
	}
	mask := cfg.Mask
	if mask < 0 || mask > 7 {
		mask = MaskAuto
	}
	return &Builder{
		version:         version,
		level:           level,
		mode:            cfg.Mode,
		mask:            mask,
		functionPattern: geometry.FunctionPatternPositions(version),
	}, nil
}

// resolveVersionLevel implements the four selection cases: both pinned,
// both auto (search level H down to L, smallest fitting version per level),
// version pinned with level auto (strongest fitting level), and level pinned
// with version auto (smallest fitting version).
func resolveVersionLevel(dataLength int, mode Mode, reqVersion int, reqLevel Level) (*tables.Version, Level, error) {
	switch {
	case reqVersion >= 1 && reqLevel != LevelAuto:
		version, err := tables.GetVersionForNumber(reqVersion)
		if err != nil {
			return nil, 0, err
		}
		if version.Capacity(reqLevel, mode) < dataLength {
			return nil, 0, fmt.Errorf("%w: version %d level %s holds %d, need %d",
				ErrPayloadTooLarge, reqVersion, reqLevel, version.Capacity(reqLevel, mode), dataLength)
		}
		return version, reqLevel, nil

	case reqVersion == VersionAuto && reqLevel == LevelAuto:
		for _, level := range tables.LevelsByStrengthDescending {
			if version, ok := smallestVersionFitting(dataLength, mode, level); ok {
				return version, level, nil
			}
		}
		return nil, 0, fmt.Errorf("%w: %d mode-units", ErrVersionUnavailable, dataLength)

	case reqVersion == VersionAuto:
		if version, ok := smallestVersionFitting(dataLength, mode, reqLevel); ok {
			return version, reqLevel, nil
		}
		return nil, 0, fmt.Errorf("%w: %d mode-units at level %s", ErrVersionUnavailable, dataLength, reqLevel)

	default:
		version, err := tables.GetVersionForNumber(reqVersion)
		if err != nil {
			return nil, 0, err
		}
		for _, level := range tables.LevelsByStrengthDescending {
			if version.Capacity(level, mode) >= dataLength {
				return version, level, nil
			}
		}
		return nil, 0, fmt.Errorf("%w: version %d", ErrLevelUnavailable, reqVersion)
	}
}

func smallestVersionFitting(dataLength int, mode Mode, level Level) (*tables.Version, bool) {
	for n := 1; n <= 40; n++ {
		version, _ := tables.GetVersionForNumber(n)
		if version.Capacity(level, mode) >= dataLength {
			return version, true
		}
	}
	return nil, false
}

// Generate packs payload through the bit-stream encoder, Reed-Solomon and
// interleaving stages, and matrix assembly, returning the finished symbol.
// Once a Builder is constructed successfully, Generate does not fail for any
// payload consistent with the mode and length NewBuilder was given --
// ErrModeViolation is the one case that still depends on payload content.
func (b *Builder) Generate(payload []byte) (*QRCode, error) {
	bits := bitutil.NewBitArray(0)
	bits.AppendBits(uint32(b.mode.Bits()), 4)

	count, err := modeUnitCount(b.mode, payload)
	if err != nil {
		return nil, err
	}
	bits.AppendBits(uint32(count), b.mode.CharacterCountBits(b.version))

	if err := encoder.AppendPayload(b.mode, payload, bits); err != nil {
		return nil, err
	}

	numDataBytes := b.version.NumDataCodewords(b.level)
	if err := encoder.TerminateAndPad(bits, numDataBytes); err != nil {
		return nil, err
	}

	finalBits, err := encoder.Interleave(bits, b.version, b.level)
	if err != nil {
		return nil, err
	}
	finalBits.AppendBits(0, b.version.RemainderBits())

	maskPattern := b.mask
	var matrix *encoder.ByteMatrix
	if maskPattern == MaskAuto {
		maskPattern, matrix = encoder.ChooseMaskPattern(finalBits, b.version, b.level, b.functionPattern)
	} else {
		matrix = encoder.BuildMatrix(finalBits, b.version, b.level, maskPattern, b.functionPattern)
	}

	return &QRCode{
		Version: b.version.Number,
		Level:   b.level,
		Mode:    b.mode,
		Mask:    maskPattern,
		Modules: toBottomLeftModules(matrix),
	}, nil
}

func modeUnitCount(mode Mode, payload []byte) (int, error) {
	if mode == tables.ModeKanji {
		return encoder.NumKanjiCharacters(payload)
	}
	return len(payload), nil
}

// toBottomLeftModules performs the one coordinate flip between the
// assembler's native top-left (column, row) working grid and the
// bottom-left addressing QRCode.Modules exposes to callers: row i from the
// top becomes row dim-1-i from the bottom.
func toBottomLeftModules(matrix *encoder.ByteMatrix) [][]bool {
	dim := matrix.Width
	modules := make([][]bool, dim)
	for x := 0; x < dim; x++ {
		column := make([]bool, dim)
		for y := 0; y < dim; y++ {
			column[y] = matrix.Get(x, dim-1-y) == 1
		}
		modules[x] = column
	}
	return modules
}
