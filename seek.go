package spacedlist

import "github.com/npillmayer/spacedlist/block"

// seek descends from the top level to level 0 and returns the last element
// whose position relative to the first element is below target, or at most
// target if inclusive is set. The first element (at relative position 0)
// must satisfy the condition.
//
// At every level the descent enters a block at its first element and tries
// links from the widest degree down, committing every link which does not
// overshoot. The element reached names the block to continue with one level
// down.
func (l *List[D]) seek(target D, inclusive bool) (index int, position D) {
	for level := len(l.levels) - 1; level >= 0; level-- {
		assert(index < len(l.levels[level]), "seek: block index out of range")
		blk := l.levels[level][index]
		local := 0
		for d := block.MaxDegree; d >= 0; d-- {
			if local+1<<d >= blk.Size() {
				continue
			}
			next := position + blk.Link(local, d)
			if next < target || inclusive && next == target {
				local += 1 << d
				position = next
			}
		}
		index = index<<block.MaxDegree + local
	}
	return index, position
}

// At returns the address of the element at position.
//
// If position falls into a gap with a sublist attached, the sublist is
// searched, with position taken relative to the element before the gap.
// If several elements share position, the first one is returned.
func (l *List[D]) At(position D) (Address, bool) {
	if l.IsEmpty() || position < l.offset || position > l.totalLength {
		return nil, false
	}
	target := position - l.offset
	var zero D
	if target == zero {
		return Address{0}, true
	}
	index, at := l.seek(target, false)
	next := at + l.gapLength(index+1)
	if next == target {
		return Address{index + 1}, true
	}
	// target lies inside the gap before index+1
	child, ok := l.Sublist(index + 1)
	if !ok {
		return nil, false
	}
	sub, ok := child.At(target - at)
	if !ok {
		return nil, false
	}
	return nested(index, sub), true
}

// Before returns the address of the last element strictly before position,
// together with the distance from that element to position.
//
// Sublists in the gap preceding position are searched for a closer element.
// Positions beyond the last element resolve to the last element (or its
// sublist's last element). If position is at or before the first element,
// Before reports false.
func (l *List[D]) Before(position D) (Address, D, bool) {
	var zero D
	if l.IsEmpty() || position <= l.offset {
		return nil, zero, false
	}
	target := position - l.offset
	index, at := l.seek(target, false)
	if child, ok := l.Sublist(index + 1); ok {
		if sub, residual, ok := child.Before(target - at); ok {
			return nested(index, sub), residual, true
		}
	}
	return Address{index}, target - at, true
}

// After returns the address of the first element strictly after position,
// together with the distance from position to that element.
//
// Sublists in the gap containing position are searched for a closer element.
// Positions before the first element resolve to the first element. If
// position is at or beyond the last element, After reports false.
func (l *List[D]) After(position D) (Address, D, bool) {
	var zero D
	if l.IsEmpty() || position >= l.totalLength {
		return nil, zero, false
	}
	if position < l.offset {
		return Address{0}, l.offset - position, true
	}
	target := position - l.offset
	index, at := l.seek(target, true)
	if child, ok := l.Sublist(index + 1); ok {
		if sub, residual, ok := child.After(target - at); ok {
			return nested(index, sub), residual, true
		}
	}
	next := at + l.gapLength(index+1)
	return Address{index + 1}, next - target, true
}
