package spacedlist

import (
	"fmt"
	"slices"
)

// Address locates an element across sublist nesting. The first index refers
// to the outermost list. Every further index refers to an element of the
// sublist attached after the element denoted by the preceding indices.
//
//	[3]     element 3 of the list
//	[3 0]   first element of the sublist between elements 3 and 4
type Address []int

// Depth returns the number of nesting levels the address spans.
func (a Address) Depth() int {
	return len(a)
}

// Equal reports whether two addresses denote the same element.
func (a Address) Equal(other Address) bool {
	return slices.Equal(a, other)
}

func (a Address) String() string {
	return fmt.Sprint([]int(a))
}

// nested prefixes a sublist address with the index of the element before
// the sublist's gap.
func nested(index int, sub Address) Address {
	addr := make(Address, 0, len(sub)+1)
	addr = append(addr, index)
	return append(addr, sub...)
}
