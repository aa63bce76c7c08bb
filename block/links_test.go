package block

import "testing"

func TestDegreeBandOffsets(t *testing.T) {
	want := [MaxDegree + 1]int{0, 256, 384, 448, 480, 496, 504, 508, 510}
	if DegreeBandOffsets != want {
		t.Fatalf("unexpected band offsets %v, want %v", DegreeBandOffsets, want)
	}
}

func TestLinkIndex(t *testing.T) {
	tests := []struct {
		index, degree int
		want          int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{255, 0, 255},
		{0, 1, 256},
		{1, 1, 256},
		{2, 1, 257},
		{5, 2, 385},
		{7, 3, 448},
		{8, 3, 449},
		{255, 7, 509},
		{0, 8, 510},
		{255, 8, 510},
	}
	for _, tt := range tests {
		if got := LinkIndex(tt.index, tt.degree); got != tt.want {
			t.Errorf("LinkIndex(%d, %d) = %d, want %d", tt.index, tt.degree, got, tt.want)
		}
	}
}

func TestLinksToUpdate(t *testing.T) {
	tests := []struct {
		size int
		want [MaxDegree + 1]int
	}{
		{0, [MaxDegree + 1]int{}},
		{1, [MaxDegree + 1]int{0, 256, 384, 448, 480, 496, 504, 508, 510}},
		{2, [MaxDegree + 1]int{1, 256, 384, 448, 480, 496, 504, 508, 510}},
		{3, [MaxDegree + 1]int{2, 257, 384, 448, 480, 496, 504, 508, 510}},
		{5, [MaxDegree + 1]int{4, 258, 385, 448, 480, 496, 504, 508, 510}},
		{255, [MaxDegree + 1]int{254, 383, 447, 479, 495, 503, 507, 509, 510}},
	}
	for _, tt := range tests {
		if got := LinksToUpdate(tt.size); got != tt.want {
			t.Errorf("LinksToUpdate(%d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

// Every slot must be covered by exactly the elements of its group.
func TestLinksToUpdateCoverGroups(t *testing.T) {
	for size := 1; size < Capacity; size++ {
		slots := LinksToUpdate(size)
		for d, slot := range slots {
			if slot != LinkIndex(size-1, d) {
				t.Fatalf("size %d, degree %d: slot %d, expected group slot %d", size, d, slot, LinkIndex(size-1, d))
			}
		}
	}
}

func TestFreshLinks(t *testing.T) {
	tests := []struct {
		size, want int
	}{
		{0, 0},
		{1, 9},
		{2, 1},
		{3, 2},
		{4, 1},
		{5, 3},
		{129, 8},
		{255, 2},
	}
	for _, tt := range tests {
		if got := FreshLinks(tt.size); got != tt.want {
			t.Errorf("FreshLinks(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestLinkIndexPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for degree beyond MaxDegree")
		}
	}()
	_ = LinkIndex(0, MaxDegree+1)
}
