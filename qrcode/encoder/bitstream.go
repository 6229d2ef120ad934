package encoder

import (
	"errors"
	"fmt"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrcode/tables"
	"golang.org/x/text/encoding/japanese"
)

// ErrModeViolation reports that the payload contains a byte outside the
// alphabet the chosen mode requires.
var ErrModeViolation = errors.New("qrcode/encoder: payload violates mode alphabet")

// ErrNotImplemented reports a mode the encoder does not support.
var ErrNotImplemented = errors.New("qrcode/encoder: mode not implemented")

// AppendPayload packs payload into bits using the mode-specific scheme: each
// byte directly for Byte mode, digit triples for Numeric, symbol pairs for
// Alphanumeric, and Shift-JIS double-byte codes for Kanji.
func AppendPayload(mode tables.Mode, payload []byte, bits *bitutil.BitArray) error {
	switch mode {
	case tables.ModeNumeric:
		return appendNumeric(payload, bits)
	case tables.ModeAlphanumeric:
		return appendAlphanumeric(payload, bits)
	case tables.ModeByte:
		appendByte(payload, bits)
		return nil
	case tables.ModeKanji:
		return appendKanji(payload, bits)
	default:
		return fmt.Errorf("%w: mode %v", ErrNotImplemented, mode)
	}
}

func appendByte(payload []byte, bits *bitutil.BitArray) {
	for _, b := range payload {
		bits.AppendBits(uint32(b), 8)
	}
}

func appendNumeric(payload []byte, bits *bitutil.BitArray) error {
	n := len(payload)
	for i := 0; i < n; {
		d1, err := digit(payload[i])
		if err != nil {
			return err
		}
		switch {
		case i+2 < n:
			d2, err := digit(payload[i+1])
			if err != nil {
				return err
			}
			d3, err := digit(payload[i+2])
			if err != nil {
				return err
			}
			bits.AppendBits(uint32(d1*100+d2*10+d3), 10)
			i += 3
		case i+1 < n:
			d2, err := digit(payload[i+1])
			if err != nil {
				return err
			}
			bits.AppendBits(uint32(d1*10+d2), 7)
			i += 2
		default:
			bits.AppendBits(uint32(d1), 4)
			i++
		}
	}
	return nil
}

func digit(b byte) (int, error) {
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("%w: %q is not a digit", ErrModeViolation, b)
	}
	return int(b - '0'), nil
}

func appendAlphanumeric(payload []byte, bits *bitutil.BitArray) error {
	n := len(payload)
	for i := 0; i < n; {
		code1 := tables.AlphanumericCode(int(payload[i]))
		if code1 == -1 {
			return fmt.Errorf("%w: %q is not alphanumeric", ErrModeViolation, payload[i])
		}
		if i+1 < n {
			code2 := tables.AlphanumericCode(int(payload[i+1]))
			if code2 == -1 {
				return fmt.Errorf("%w: %q is not alphanumeric", ErrModeViolation, payload[i+1])
			}
			bits.AppendBits(uint32(code1*45+code2), 11)
			i += 2
		} else {
			bits.AppendBits(uint32(code1), 6)
			i++
		}
	}
	return nil
}

// kanjiEncoder converts payload text to Shift-JIS double-byte codes before
// packing; it is shared across calls since text/transform encoders hold no
// per-call state that needs isolation here.
var kanjiEncoder = japanese.ShiftJIS.NewEncoder()

func appendKanji(payload []byte, bits *bitutil.BitArray) error {
	sjis, err := kanjiEncoder.Bytes(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrModeViolation, err)
	}
	if len(sjis)%2 != 0 {
		return fmt.Errorf("%w: odd Shift-JIS byte count", ErrModeViolation)
	}
	for i := 0; i < len(sjis); i += 2 {
		code := int(sjis[i])<<8 | int(sjis[i+1])
		var reduced int
		switch {
		case code >= 0x8140 && code <= 0x9FFC:
			reduced = code - 0x8140
		case code >= 0xE040 && code <= 0xEBBF:
			reduced = code - 0xC140
		default:
			return fmt.Errorf("%w: code %#x outside Kanji range", ErrModeViolation, code)
		}
		packed := (reduced>>8)*0xC0 + (reduced & 0xFF)
		bits.AppendBits(uint32(packed), 13)
	}
	return nil
}

// NumKanjiCharacters returns how many Kanji characters payload would encode
// to, the value written into the character-count indicator.
func NumKanjiCharacters(payload []byte) (int, error) {
	sjis, err := kanjiEncoder.Bytes(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrModeViolation, err)
	}
	return len(sjis) / 2, nil
}

// TerminateAndPad appends the terminator, pads to a byte boundary, and fills
// any remaining codeword slots alternating 0xEC/0x11 until bits holds
// exactly numDataBytes bytes.
func TerminateAndPad(bits *bitutil.BitArray, numDataBytes int) error {
	capacity := numDataBytes * 8
	if bits.Size() > capacity {
		return fmt.Errorf("qrcode/encoder: %d data bits exceed %d-bit capacity", bits.Size(), capacity)
	}

	for i := 0; i < 4 && bits.Size() < capacity; i++ {
		bits.AppendBit(false)
	}

	if rem := bits.Size() & 0x07; rem > 0 {
		for i := rem; i < 8; i++ {
			bits.AppendBit(false)
		}
	}

	for i := 0; bits.SizeInBytes() < numDataBytes; i++ {
		if i%2 == 0 {
			bits.AppendBits(0xEC, 8)
		} else {
			bits.AppendBits(0x11, 8)
		}
	}
	return nil
}
