package tables

import "testing"

func TestAlphanumericCodeKnownValues(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{'0', 0}, {'9', 9},
		{'A', 10}, {'Z', 35},
		{' ', 36}, {'$', 37}, {'%', 38}, {'*', 39}, {'+', 40},
		{'-', 41}, {'.', 42}, {'/', 43}, {':', 44},
	}
	for _, c := range cases {
		if got := AlphanumericCode(int(c.b)); got != c.want {
			t.Errorf("AlphanumericCode(%q) = %d, want %d", c.b, got, c.want)
		}
	}
}

func TestAlphanumericCodeRejectsOutsideAlphabet(t *testing.T) {
	for _, b := range []byte{'a', 'z', '!', '?', '\\'} {
		if got := AlphanumericCode(int(b)); got != -1 {
			t.Errorf("AlphanumericCode(%q) = %d, want -1", b, got)
		}
	}
}

func TestAlphanumericCodeBoundsChecksOutOfRangeBytes(t *testing.T) {
	if got := AlphanumericCode(-1); got != -1 {
		t.Errorf("AlphanumericCode(-1) = %d, want -1", got)
	}
	if got := AlphanumericCode(200); got != -1 {
		t.Errorf("AlphanumericCode(200) = %d, want -1", got)
	}
}
