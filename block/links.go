package block

import "math/bits"

const (
	// MaxDegree is the degree of the widest link in a block.
	MaxDegree = 8
	// Capacity is the maximum number of elements in a block.
	Capacity = 1 << MaxDegree
	// IndexMask extracts a block-local index from a level index.
	IndexMask = Capacity - 1
	// LinkSlots is the number of partial sums a block keeps, summed over all
	// degree bands.
	LinkSlots = 2*Capacity - 1
)

// DegreeBandOffsets holds the first slot of each degree band. Band d has
// Capacity>>d slots.
var DegreeBandOffsets [MaxDegree + 1]int

// linksToUpdate[s] lists the slot per degree which receives the distance of
// local element s.
var linksToUpdate [Capacity][MaxDegree + 1]uint16

func init() {
	offset := 0
	for d := 0; d <= MaxDegree; d++ {
		DegreeBandOffsets[d] = offset
		offset += Capacity >> d
	}
	assert(offset == LinkSlots, "degree bands do not add up to LinkSlots")
	for size := 1; size < Capacity; size++ {
		index := size - 1
		for d := 0; d <= MaxDegree; d++ {
			linksToUpdate[size][d] = uint16(LinkIndex(index, d))
			index &^= 1 << d
		}
	}
}

// LinkIndex returns the slot of the link at degree which starts at or covers
// localIndex, i.e. the slot of group localIndex>>degree within band degree.
func LinkIndex(localIndex, degree int) int {
	assert(localIndex >= 0 && localIndex < Capacity, "link index out of range")
	assert(degree >= 0 && degree <= MaxDegree, "link degree out of range")
	return DegreeBandOffsets[degree] + localIndex>>degree
}

// LinksToUpdate returns, for an occupancy of size elements, the slots which
// have to include the distance of the next element (local index size).
// Every degree contributes exactly one slot. For size 0 the result is all
// zeros, as the first element of a block has no predecessor to measure from.
func LinksToUpdate(size int) [MaxDegree + 1]int {
	assert(size >= 0 && size < Capacity, "occupancy out of range")
	var slots [MaxDegree + 1]int
	for d, slot := range linksToUpdate[size] {
		slots[d] = int(slot)
	}
	return slots
}

// FreshLinks returns the number of degrees at which the element appended at
// occupancy size opens a new group. These are the leading entries of
// LinksToUpdate(size) whose slots receive their first contribution.
func FreshLinks(size int) int {
	assert(size >= 0 && size < Capacity, "occupancy out of range")
	if size == 0 {
		return 0
	}
	return min(bits.TrailingZeros(uint(size-1))+1, MaxDegree+1)
}
