package block

import (
	"errors"
	"fmt"
)

// ErrInvalidBlock signals a block whose partial sums are inconsistent.
var ErrInvalidBlock = errors.New("block: invalid block")

// Block is a fixed-capacity partial-sum structure over up to Capacity
// elements. The zero value is an empty block.
type Block[D Distance] struct {
	size        int
	totalLength D
	// links[LinkIndex(i, d)] is the distance from local element i&^(1<<d-1)
	// to the element 2^d positions further. Links of incomplete groups hold
	// the distances appended so far.
	links [LinkSlots]D
}

// Append adds an element at distance from the current last element.
//
// The distance of the first element is not recorded: the block's owner
// accounts for it one level up. Appending to a full block is a contract
// violation and panics; callers open a new block instead.
func (b *Block[D]) Append(distance D) {
	assert(b.size < Capacity, "block: append to full block")
	if b.size == 0 {
		b.size = 1
		return
	}
	for _, slot := range &linksToUpdate[b.size] {
		b.links[slot] += distance
	}
	b.size++
	b.totalLength += distance
}

// Size returns the number of elements in the block.
func (b *Block[D]) Size() int {
	return b.size
}

// IsEmpty reports whether the block holds no elements.
func (b *Block[D]) IsEmpty() bool {
	return b.size == 0
}

// IsFull reports whether the block has reached Capacity.
func (b *Block[D]) IsFull() bool {
	return b.size == Capacity
}

// TotalLength is the distance from the first to the last element of the block.
func (b *Block[D]) TotalLength() D {
	return b.totalLength
}

// Link returns the partial sum stored for localIndex at degree.
func (b *Block[D]) Link(localIndex, degree int) D {
	return b.links[LinkIndex(localIndex, degree)]
}

// Distance returns the distance of local element localIndex from its
// predecessor. Local element 0 has none and reports 0.
func (b *Block[D]) Distance(localIndex int) D {
	assert(localIndex >= 0 && localIndex < b.size, "block: distance index out of range")
	if localIndex == 0 {
		var zero D
		return zero
	}
	return b.links[LinkIndex(localIndex-1, 0)]
}

// Prefix returns the distance from local element 0 to local element
// localIndex, adding one link per set bit of localIndex.
func (b *Block[D]) Prefix(localIndex int) D {
	assert(localIndex >= 0 && localIndex < b.size, "block: prefix index out of range")
	var sum D
	at := 0
	for d := MaxDegree; d >= 0; d-- {
		if localIndex&(1<<d) != 0 {
			sum += b.links[LinkIndex(at, d)]
			at += 1 << d
		}
	}
	return sum
}

// Check validates the block's partial sums against its total length.
func (b *Block[D]) Check() error {
	if b == nil {
		return fmt.Errorf("%w: nil block", ErrInvalidBlock)
	}
	if b.size < 0 || b.size > Capacity {
		return fmt.Errorf("%w: size %d exceeds capacity %d", ErrInvalidBlock, b.size, Capacity)
	}
	if b.size == 0 {
		var zero D
		if b.totalLength != zero {
			return fmt.Errorf("%w: empty block with total length %v", ErrInvalidBlock, b.totalLength)
		}
		return nil
	}
	if whole := b.Link(0, MaxDegree); whole != b.totalLength {
		return fmt.Errorf("%w: widest link %v != total length %v", ErrInvalidBlock, whole, b.totalLength)
	}
	if last := b.Prefix(b.size - 1); last != b.totalLength {
		return fmt.Errorf("%w: prefix of last element %v != total length %v", ErrInvalidBlock, last, b.totalLength)
	}
	return nil
}
