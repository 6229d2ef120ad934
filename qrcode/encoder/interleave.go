package encoder

import (
	"fmt"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrcode/tables"
	"github.com/qr-go/qrencode/reedsolomon"
)

// Interleave splits dataBits into the version/level's block groups,
// generates each block's Reed-Solomon codewords, and reassembles the final
// codeword stream: all data codewords taken column-by-column across blocks
// in block order (skipping blocks too short to contribute at that column),
// followed by all EC codewords the same way.
func Interleave(dataBits *bitutil.BitArray, version *tables.Version, level tables.ErrorCorrectionLevel) (*bitutil.BitArray, error) {
	ecBlocks := version.ECBlocksForLevel(level)
	numDataBytes := version.NumDataCodewords(level)
	numTotalBytes := version.TotalCodewords
	numBlocks := ecBlocks.NumBlocks()

	if dataBits.SizeInBytes() != numDataBytes {
		return nil, fmt.Errorf("qrcode/encoder: %d data bytes, want %d", dataBits.SizeInBytes(), numDataBytes)
	}

	type block struct {
		data []byte
		ec   []byte
	}
	blocks := make([]block, 0, numBlocks)

	offset := 0
	maxDataLen, maxECLen := 0, 0
	for _, group := range ecBlocks.Blocks {
		for n := 0; n < group.Count; n++ {
			data := make([]byte, group.DataCodewords)
			dataBits.ToBytes(8*offset, data, 0, group.DataCodewords)
			offset += group.DataCodewords

			ec := reedsolomon.GenerateECCodewords(data, ecBlocks.ECCodewordsPerBlock)

			blocks = append(blocks, block{data: data, ec: ec})
			if len(data) > maxDataLen {
				maxDataLen = len(data)
			}
			if len(ec) > maxECLen {
				maxECLen = len(ec)
			}
		}
	}

	result := bitutil.NewBitArray(0)
	for i := 0; i < maxDataLen; i++ {
		for _, b := range blocks {
			if i < len(b.data) {
				result.AppendBits(uint32(b.data[i]), 8)
			}
		}
	}
	for i := 0; i < maxECLen; i++ {
		for _, b := range blocks {
			if i < len(b.ec) {
				result.AppendBits(uint32(b.ec[i]), 8)
			}
		}
	}

	if result.SizeInBytes() != numTotalBytes {
		return nil, fmt.Errorf("qrcode/encoder: interleaved stream is %d bytes, want %d", result.SizeInBytes(), numTotalBytes)
	}
	return result, nil
}
