package reedsolomon

import (
	"bytes"
	"testing"
)

func TestGenerateECCodewordsVersion1LevelH(t *testing.T) {
	data := []byte{32, 65, 205, 69, 41, 220, 46, 128, 236}
	want := []byte{42, 159, 74, 221, 244, 169, 239, 150, 138, 70, 237, 85, 224, 96, 74, 219, 61}

	got := GenerateECCodewords(data, 17)
	if !bytes.Equal(got, want) {
		t.Errorf("GenerateECCodewords(%v, 17) = %v, want %v", data, got, want)
	}
}

func TestGenerateECCodewordsLengthMatchesECWords(t *testing.T) {
	for _, ecWords := range generatorWordCounts {
		data := make([]byte, 16)
		for i := range data {
			data[i] = byte(i * 7)
		}
		got := GenerateECCodewords(data, ecWords)
		if len(got) != ecWords {
			t.Errorf("ecWords=%d: got %d codewords, want %d", ecWords, len(got), ecWords)
		}
	}
}

func TestGenerateECCodewordsDeterministic(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	first := GenerateECCodewords(data, 10)
	second := GenerateECCodewords(data, 10)
	if !bytes.Equal(first, second) {
		t.Errorf("GenerateECCodewords is not deterministic: %v != %v", first, second)
	}
}
