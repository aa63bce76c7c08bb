package spacedlist

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/spacedlist/block"
)

// Distance is the numeric type a spaced list measures positions with.
type Distance = block.Distance

// List is a spaced list of elements positioned by distance.
//
// A list created by
//
//	List[int64]{}
//
// is valid and empty.
//
//	Operation      |  Cost
//	---------------+-------------------------------------
//	Append         |  O(1) amortized
//	At/Before/After|  O(log n) plus sublist nesting depth
//	PositionOf     |  O(log n)
//	SublistBefore  |  O(1)
type List[D Distance] struct {
	size        int
	totalLength D // position of the last element
	offset      D // position of the first element
	// levels[0] holds the elements, levels[k+1] holds one element per block
	// of levels[k]. The last level always consists of a single block.
	levels [][]*block.Block[D]
	// sublists[b] holds the sublists attached to gaps in block b of level 0.
	sublists []*attachments[D]
}

// New creates an empty spaced list.
func New[D Distance]() *List[D] {
	return &List[D]{}
}

// Len returns the number of elements in the list, not counting elements of
// sublists.
func (l *List[D]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// IsEmpty reports whether the list has no elements.
func (l *List[D]) IsEmpty() bool {
	return l == nil || l.size == 0
}

// TotalLength returns the sum of all distances appended, which is the
// position of the last element.
func (l *List[D]) TotalLength() D {
	if l == nil {
		var zero D
		return zero
	}
	return l.totalLength
}

// Offset returns the position of the first element.
func (l *List[D]) Offset() D {
	if l == nil {
		var zero D
		return zero
	}
	return l.offset
}

// Height returns the number of block levels, where 0 means empty and 1 means
// a single block.
func (l *List[D]) Height() int {
	if l == nil {
		return 0
	}
	return len(l.levels)
}

// Append adds an element at distance from the last element, or at position
// distance if the list is empty.
//
// Negative, infinite and NaN distances are rejected with ErrInvalidDistance.
// If the total length would overflow D, Append returns ErrOverflow. In both
// cases the list is left unchanged.
func (l *List[D]) Append(distance D) error {
	if !block.IsValid(distance) {
		return fmt.Errorf("%w: %v", ErrInvalidDistance, distance)
	}
	total, ok := block.CheckedAdd(l.totalLength, distance)
	if !ok {
		return fmt.Errorf("%w: %v + %v", ErrOverflow, l.totalLength, distance)
	}
	l.makeSpace(0, distance)
	if l.size == 0 {
		l.offset = distance
	}
	l.tail(0).Append(distance)
	l.size++
	l.totalLength = total
	return nil
}

// makeSpace makes sure the tail block at level can take another element at
// distance from the current last element of that level.
//
// A full tail block is folded into a single element one level up, spanning
// from the first element of the full block to the first element of the new
// block. Folding may cascade and create a new top level, which starts with a
// zero-distance placeholder for the first block below it.
func (l *List[D]) makeSpace(level int, distance D) {
	if len(l.levels) == 0 {
		assert(level == 0, "makeSpace: upper level requested for empty list")
		l.levels = append(l.levels, []*block.Block[D]{new(block.Block[D])})
		l.sublists = append(l.sublists, new(attachments[D]))
		return
	}
	if level == len(l.levels) {
		top := new(block.Block[D])
		var zero D
		top.Append(zero)
		l.levels = append(l.levels, []*block.Block[D]{top})
		T().Debugf("spaced list: new top level %d for %d elements", level, l.size)
		return
	}
	tail := l.tail(level)
	if !tail.IsFull() {
		return
	}
	folded := tail.TotalLength() + distance
	l.makeSpace(level+1, folded)
	l.tail(level + 1).Append(folded)
	l.levels[level] = append(l.levels[level], new(block.Block[D]))
	if level == 0 {
		l.sublists = append(l.sublists, new(attachments[D]))
	}
}

func (l *List[D]) tail(level int) *block.Block[D] {
	blocks := l.levels[level]
	return blocks[len(blocks)-1]
}

// gapLength returns the distance between element index-1 and element index.
//
// If element index is the first of its block, its distance only shows up
// one level up, folded together with the total length of the preceding block.
func (l *List[D]) gapLength(index int) D {
	assert(index > 0 && index < l.size, "gapLength: index out of range")
	var carry D
	for level := range l.levels {
		blk := l.levels[level][index>>block.MaxDegree]
		local := index & block.IndexMask
		if local != 0 {
			return blk.Distance(local) - carry
		}
		index >>= block.MaxDegree
		carry += l.levels[level][index-1].TotalLength()
	}
	panic("gapLength: top level reached without finding a link")
}
