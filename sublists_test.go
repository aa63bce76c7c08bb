package spacedlist

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// scenario: elements at 1 and 5, sublist elements at 2 and 4
func nestedList(t *testing.T) *List[int] {
	t.Helper()
	l := New[int]()
	for _, d := range []int{1, 4} {
		if err := l.Append(d); err != nil {
			t.Fatal(err)
		}
	}
	sub, err := l.SublistBefore(1)
	if err != nil {
		t.Fatalf("cannot attach sublist: %v", err)
	}
	for _, d := range []int{1, 2} {
		if err := sub.Append(d); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func TestSublistNesting(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := nestedList(t)
	tests := []struct {
		position int
		want     Address
		found    bool
	}{
		{1, Address{0}, true},
		{2, Address{0, 0}, true},
		{3, nil, false},
		{4, Address{0, 1}, true},
		{5, Address{1}, true},
		{6, nil, false},
	}
	for _, tt := range tests {
		addr, ok := l.At(tt.position)
		if ok != tt.found || !addr.Equal(tt.want) {
			t.Errorf("At(%d) = %v (ok=%v), want %v (ok=%v)", tt.position, addr, ok, tt.want, tt.found)
		}
	}
	if err := l.Check(); err != nil {
		t.Errorf("nested list invalid: %v", err)
	}
}

func TestSublistBeforeAndAfter(t *testing.T) {
	l := nestedList(t)
	before := []struct {
		position int
		want     Address
		residual int
		found    bool
	}{
		{1, nil, 0, false},
		{2, Address{0}, 1, true},
		{3, Address{0, 0}, 1, true},
		{4, Address{0, 0}, 2, true},
		{5, Address{0, 1}, 1, true},
		{9, Address{1}, 4, true},
	}
	for _, tt := range before {
		addr, residual, ok := l.Before(tt.position)
		if ok != tt.found || !addr.Equal(tt.want) || residual != tt.residual {
			t.Errorf("Before(%d) = %v/%d (ok=%v), want %v/%d", tt.position, addr, residual, ok, tt.want, tt.residual)
		}
	}
	after := []struct {
		position int
		want     Address
		residual int
		found    bool
	}{
		{0, Address{0}, 1, true},
		{1, Address{0, 0}, 1, true},
		{2, Address{0, 1}, 2, true},
		{3, Address{0, 1}, 1, true},
		{4, Address{1}, 1, true},
		{5, nil, 0, false},
	}
	for _, tt := range after {
		addr, residual, ok := l.After(tt.position)
		if ok != tt.found || !addr.Equal(tt.want) || residual != tt.residual {
			t.Errorf("After(%d) = %v/%d (ok=%v), want %v/%d", tt.position, addr, residual, ok, tt.want, tt.residual)
		}
	}
}

func TestSublistBeforeIsIdempotent(t *testing.T) {
	l := nestedList(t)
	first, _ := l.SublistBefore(1)
	second, err := l.SublistBefore(1)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("expected the same sublist for repeated attachment")
	}
	if l.Sublists() != 1 || second.Len() != 2 {
		t.Errorf("unexpected sublist state: %d sublists, %d elements", l.Sublists(), second.Len())
	}
}

func TestSublistBeforeBounds(t *testing.T) {
	l := nestedList(t)
	for _, index := range []int{-1, 0, 2, 3} {
		if _, err := l.SublistBefore(index); !errors.Is(err, ErrIndexOutOfBounds) {
			t.Errorf("SublistBefore(%d): expected ErrIndexOutOfBounds, got %v", index, err)
		}
	}
	if _, ok := l.Sublist(0); ok {
		t.Errorf("no sublist can exist before the first element")
	}
}

func TestDeeplyNestedSublists(t *testing.T) {
	l := New[int]()
	_ = l.Append(0)
	_ = l.Append(1000)
	outer := l
	// each sublist sits inside the first gap of its parent, halving its width
	width := 500
	for depth := range 5 {
		sub, err := outer.SublistBefore(1)
		if err != nil {
			t.Fatalf("depth %d: %v", depth, err)
		}
		_ = sub.Append(1)
		_ = sub.Append(width)
		outer = sub
		width /= 2
	}
	// innermost elements at 5 and 5+31, relative to the outermost element 0
	addr, ok := l.At(36)
	if !ok || !addr.Equal(Address{0, 0, 0, 0, 0, 1}) {
		t.Errorf("At(36) = %v, want [0 0 0 0 0 1]", addr)
	}
	addr, residual, ok := l.Before(37)
	if !ok || !addr.Equal(Address{0, 0, 0, 0, 0, 1}) || residual != 1 {
		t.Errorf("Before(37) = %v/%d, want [0 0 0 0 0 1]/1", addr, residual)
	}
	if pos, err := l.Resolve(Address{0, 0, 0, 0, 0, 0}); err != nil || pos != 5 {
		t.Errorf("Resolve([0 0 0 0 0 0]) = %d (%v), want 5", pos, err)
	}
	if err := l.Check(); err != nil {
		t.Errorf("nested list invalid: %v", err)
	}
}

func TestSublistsAcrossBlocks(t *testing.T) {
	l := New[int64]()
	for range 600 {
		_ = l.Append(10)
	}
	for _, index := range []int{1, 255, 256, 257, 599} {
		sub, err := l.SublistBefore(index)
		if err != nil {
			t.Fatal(err)
		}
		_ = sub.Append(5)
	}
	if l.Sublists() != 5 {
		t.Errorf("expected 5 sublists, have %d", l.Sublists())
	}
	for _, index := range []int{1, 255, 256, 257, 599} {
		p := int64(index)*10 + 5 // element index-1 sits at index*10
		addr, ok := l.At(p)
		if !ok || !addr.Equal(Address{index - 1, 0}) {
			t.Errorf("At(%d) = %v, want [%d 0]", p, addr, index-1)
		}
	}
	if err := l.Check(); err != nil {
		t.Errorf("list invalid: %v", err)
	}
}

func TestCheckDetectsOverlongSublist(t *testing.T) {
	l := nestedList(t)
	sub, _ := l.SublistBefore(1)
	_ = sub.Append(1) // sublist now reaches 4, the gap is 4 wide
	if err := l.Check(); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("expected ErrInvalidStructure for sublist leaving its gap, got %v", err)
	}
}
