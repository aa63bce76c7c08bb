package spacedlist

import (
	"fmt"

	"github.com/npillmayer/spacedlist/block"
)

// childRef refers to a sublist in attachments.children, if ok is set.
type childRef struct {
	at uint8
	ok bool
}

// attachments maps the gaps of one level-0 block to their sublists.
//
// index[g] refers to the sublist attached before local element g. Sublists
// are stored in creation order, not in gap order.
type attachments[D Distance] struct {
	index    [block.Capacity]childRef
	children []*List[D]
}

// childAt returns the sublist for gap, creating it on first use.
func (a *attachments[D]) childAt(gap int) *List[D] {
	if child, ok := a.existingChildAt(gap); ok {
		return child
	}
	assert(len(a.children) < block.Capacity, "attachments: more sublists than gaps")
	child := New[D]()
	a.index[gap] = childRef{at: uint8(len(a.children)), ok: true}
	a.children = append(a.children, child)
	return child
}

// existingChildAt returns the sublist for gap, if one has been attached.
func (a *attachments[D]) existingChildAt(gap int) (*List[D], bool) {
	ref := a.index[gap]
	if !ref.ok {
		return nil, false
	}
	return a.children[ref.at], true
}

func (a *attachments[D]) count() int {
	return len(a.children)
}

// SublistBefore returns the sublist attached to the gap between element
// index-1 and element index, attaching an empty one on first use.
//
// Positions in the sublist are measured from element index-1. Clients are
// expected to keep every element of the sublist strictly inside the gap, i.e.
// below the distance between the two elements; Check reports violations.
// Addresses of sublist elements start with index-1.
//
// index must be in [1, Len()), otherwise ErrIndexOutOfBounds is returned.
func (l *List[D]) SublistBefore(index int) (*List[D], error) {
	if index < 1 || index >= l.Len() {
		return nil, fmt.Errorf("%w: no gap before element %d of %d", ErrIndexOutOfBounds, index, l.Len())
	}
	table := l.sublists[index>>block.MaxDegree]
	gap := index & block.IndexMask
	child, ok := table.existingChildAt(gap)
	if !ok {
		child = table.childAt(gap)
		T().Debugf("spaced list: attached sublist before element %d", index)
	}
	return child, nil
}

// Sublist returns the sublist attached to the gap before element index,
// if there is one.
func (l *List[D]) Sublist(index int) (*List[D], bool) {
	if index < 1 || index >= l.Len() {
		return nil, false
	}
	return l.sublists[index>>block.MaxDegree].existingChildAt(index & block.IndexMask)
}

// Sublists returns the number of sublists attached directly to this list.
func (l *List[D]) Sublists() int {
	if l == nil {
		return 0
	}
	n := 0
	for _, table := range l.sublists {
		n += table.count()
	}
	return n
}
