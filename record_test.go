package sbits

import "testing"

func TestCompareUint32Key(t *testing.T) {
	cases := []struct {
		a, b uint32
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{5, 5, 0},
		{0, 0xFFFFFFFF, -1},
	}
	for _, c := range cases {
		got := CompareUint32Key(key4(c.a), key4(c.b))
		if sign(got) != c.want {
			t.Fatalf("CompareUint32Key(%d, %d) = %d, want sign %d", c.a, c.b, got, c.want)
		}
	}
}

func TestKeyAsUint64TruncatesToLowEightBytes(t *testing.T) {
	k := make([]byte, 12)
	k[8], k[9], k[10], k[11] = 0, 0, 0, 1
	if got := keyAsUint64(k); got != 1 {
		t.Fatalf("keyAsUint64 = %d, want 1 (low 8 bytes only)", got)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
