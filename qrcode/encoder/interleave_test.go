package encoder

import (
	"testing"

	"github.com/qr-go/qrencode/bitutil"
	"github.com/qr-go/qrencode/qrcode/tables"
)

func TestInterleaveVersion5LevelH(t *testing.T) {
	data := []byte{
		66, 134, 135, 71, 71, 7, 51, 162, 242, 246, 118, 151, 70, 135, 86, 34,
		230, 54, 246, 210, 246, 54, 22, 247, 166, 134, 22, 230, 134, 22, 242,
		247, 23, 38, 54, 246, 70, 82, 230, 214, 39, 64, 236, 17, 236, 17,
	}
	want := []byte{
		66, 151, 22, 54, 134, 70, 247, 246, 135, 135, 166, 70, 71, 86, 134, 82,
		71, 34, 22, 230, 7, 230, 230, 214, 51, 54, 134, 39, 162, 246, 22, 64,
		242, 210, 242, 236, 246, 246, 247, 17, 118, 54, 23, 236, 38, 17, 114,
		246, 5, 121, 155, 241, 122, 65, 95, 227, 61, 223, 176, 246, 21, 92,
		166, 191, 137, 165, 24, 252, 182, 1, 122, 217, 191, 196, 10, 111, 66,
		214, 170, 133, 210, 223, 169, 26, 33, 186, 212, 6, 13, 98, 212, 95,
		123, 14, 78, 44, 188, 178, 2, 45, 81, 88, 142, 206, 97, 105, 202, 220,
		185, 133, 109, 112, 189, 161, 244, 244, 150, 24, 253, 39, 23, 73, 152,
		239, 145, 114, 34, 194, 213, 81, 186, 170, 200, 82,
	}

	version, err := tables.GetVersionForNumber(5)
	if err != nil {
		t.Fatalf("GetVersionForNumber(5): %v", err)
	}
	dataBits := bitutil.NewBitArray(0)
	for _, b := range data {
		dataBits.AppendBits(uint32(b), 8)
	}

	got, err := Interleave(dataBits, version, tables.ECLevelH)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	gotBytes := make([]byte, got.SizeInBytes())
	got.ToBytes(0, gotBytes, 0, len(gotBytes))

	if string(gotBytes) != string(want) {
		t.Errorf("interleaved stream =\n%v\nwant\n%v", gotBytes, want)
	}
}

func TestInterleaveRejectsWrongDataLength(t *testing.T) {
	version, _ := tables.GetVersionForNumber(1)
	dataBits := bitutil.NewBitArray(0)
	dataBits.AppendBits(0, 8)

	if _, err := Interleave(dataBits, version, tables.ECLevelH); err == nil {
		t.Fatal("expected error for data length mismatch")
	}
}
