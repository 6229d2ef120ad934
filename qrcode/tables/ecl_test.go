package tables

import "testing"

func TestECLevelBitsKnownValues(t *testing.T) {
	cases := []struct {
		level ErrorCorrectionLevel
		want  int
	}{
		{ECLevelL, 0x01}, {ECLevelM, 0x00}, {ECLevelQ, 0x03}, {ECLevelH, 0x02},
	}
	for _, c := range cases {
		if got := c.level.Bits(); got != c.want {
			t.Errorf("%v.Bits() = 0x%X, want 0x%X", c.level, got, c.want)
		}
	}
}

func TestLevelsByStrengthDescendingOrder(t *testing.T) {
	want := [4]ErrorCorrectionLevel{ECLevelH, ECLevelQ, ECLevelM, ECLevelL}
	if LevelsByStrengthDescending != want {
		t.Errorf("LevelsByStrengthDescending = %v, want %v", LevelsByStrengthDescending, want)
	}
}
