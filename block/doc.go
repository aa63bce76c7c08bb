/*
Package block provides the fixed-capacity partial-sum blocks a spaced list is
built from.

A block stores up to Capacity elements, each identified only by its distance
from the previous element. For every dyadic skip 2^d (the degree d) the block
keeps the cumulative distance spanned by each aligned group of 2^d elements.
All partial sums of a block live in one fixed array of LinkSlots values,
grouped into bands by degree:

	band 0: 256 slots, one per element         (skip 1)
	band 1: 128 slots, one per pair            (skip 2)
	…
	band 8:   1 slot, spanning the whole block (skip 256)

The slot of group g at degree d holds the distance from local element g·2^d to
local element (g+1)·2^d. Appending an element adds its distance to exactly one
slot per degree; the slots are listed by LinksToUpdate, which is precomputed
for every occupancy.

Blocks are append-only. Elements are never relocated once written.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package block

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
