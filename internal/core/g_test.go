package core

import "testing"

func TestRotr64(t *testing.T) {
	tests := []struct {
		name     string
		input    uint64
		rotation uint
		expected uint64
	}{
		{"rotate_by_8", 0x123456789ABCDEF0, 8, 0xF0123456789ABCDE},
		{"rotate_by_16", 0xFFFFFFFF00000000, 16, 0x0000FFFFFFFF0000},
		{"rotate_by_32", 0x123456789ABCDEF0, 32, 0x9ABCDEF012345678},
		{"rotate_by_63", 0x8000000000000001, 63, 0x0000000000000003},
		{"rotate_zero_by_any", 0, 15, 0},
		{"rotate_max_by_any", 0xFFFFFFFFFFFFFFFF, 27, 0xFFFFFFFFFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rotr64(tt.input, tt.rotation); got != tt.expected {
				t.Errorf("rotr64(0x%X, %d) = 0x%X, want 0x%X", tt.input, tt.rotation, got, tt.expected)
			}
		})
	}
}

func TestGDeterministic(t *testing.T) {
	inputs := [][4]uint64{
		{0x123456789ABCDEF0, 0xFEDCBA9876543210, 0x0F0E0D0C0B0A0908, 0x0706050403020100},
		{0, 0, 0, 0},
		{1, 2, 3, 4},
	}
	for i, in := range inputs {
		a1, b1, c1, d1 := g(in[0], in[1], in[2], in[3])
		a2, b2, c2, d2 := g(in[0], in[1], in[2], in[3])
		if a1 != a2 || b1 != b2 || c1 != c2 || d1 != d2 {
			t.Errorf("g not deterministic for input %d", i)
		}
	}
}

func TestGZero(t *testing.T) {
	a, b, c, d := g(0, 0, 0, 0)
	if a != 0 || b != 0 || c != 0 || d != 0 {
		t.Errorf("g(0,0,0,0) = (%#x,%#x,%#x,%#x), want all zero", a, b, c, d)
	}
}

func TestGRoundModifiesBlock(t *testing.T) {
	var block Block
	for i := range block {
		block[i] = uint64(i)
	}
	idx := columnGroup(0)
	before := block
	gRound(&block, idx)
	if block == before {
		t.Error("gRound did not modify the addressed words")
	}
	for i := 16; i < QWordsInBlock; i++ {
		if block[i] != before[i] {
			t.Errorf("gRound modified word %d outside its index set", i)
		}
	}
}

func BenchmarkG(b *testing.B) {
	a, x, c, d := uint64(0x123456789ABCDEF0), uint64(0xFEDCBA9876543210), uint64(0x0F0E0D0C0B0A0908), uint64(0x0706050403020100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a, x, c, d = g(a, x, c, d)
	}
	_ = a + x + c + d
}
