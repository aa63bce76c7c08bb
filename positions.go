package spacedlist

import (
	"fmt"
	"iter"

	"github.com/npillmayer/spacedlist/block"
)

// PositionOf returns the position of element index.
func (l *List[D]) PositionOf(index int) (D, error) {
	if index < 0 || index >= l.Len() {
		var zero D
		return zero, fmt.Errorf("%w: element %d of %d", ErrIndexOutOfBounds, index, l.Len())
	}
	return l.offset + l.relative(index), nil
}

// relative sums the prefixes of element index within its block at every
// level, i.e. the distance from the first element.
func (l *List[D]) relative(index int) D {
	var position D
	for level := range l.levels {
		blocks := l.levels[level]
		b := index >> block.MaxDegree
		assert(b < len(blocks), "relative: block index out of range")
		position += blocks[b].Prefix(index & block.IndexMask)
		index = b
	}
	assert(index == 0, "relative: top level has more than one block")
	return position
}

// Resolve returns the position of the element denoted by addr, measured in
// the coordinates of l.
func (l *List[D]) Resolve(addr Address) (D, error) {
	var zero D
	if len(addr) == 0 {
		return zero, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	position, err := l.PositionOf(addr[0])
	if err != nil {
		return zero, fmt.Errorf("%w: %s: %w", ErrInvalidAddress, addr, err)
	}
	if len(addr) == 1 {
		return position, nil
	}
	child, ok := l.Sublist(addr[0] + 1)
	if !ok {
		return zero, fmt.Errorf("%w: %s: no sublist after element %d", ErrInvalidAddress, addr, addr[0])
	}
	inner, err := child.Resolve(addr[1:])
	if err != nil {
		return zero, err
	}
	return position + inner, nil
}

// All returns an iterator over all elements of the list, not including
// sublists, yielding each element's index and position.
func (l *List[D]) All() iter.Seq2[int, D] {
	return func(yield func(int, D) bool) {
		if l.IsEmpty() {
			return
		}
		position := l.offset
		for i := range l.size {
			if i > 0 {
				position += l.gapLength(i)
			}
			if !yield(i, position) {
				return
			}
		}
	}
}

// Walk visits every element of the list and its sublists in position order.
//
// f receives each element's address and position. Walking stops at the first
// callback error and returns that error to the caller.
func (l *List[D]) Walk(f func(addr Address, position D) error) error {
	var zero D
	return l.walk(nil, zero, f)
}

func (l *List[D]) walk(prefix Address, base D, f func(Address, D) error) error {
	for i, position := range l.All() {
		addr := make(Address, len(prefix), len(prefix)+1)
		copy(addr, prefix)
		addr = append(addr, i)
		if err := f(addr, base+position); err != nil {
			return err
		}
		if child, ok := l.Sublist(i + 1); ok {
			if err := child.walk(addr, base+position, f); err != nil {
				return err
			}
		}
	}
	return nil
}
