/*
Package spacedlist offers an append-friendly indexed sequence of elements
positioned along a one-dimensional continuum.

Spaced Lists

A spaced list stores elements at positions on an ordered line, e.g. offsets in
a buffer, coordinates or timestamps. It never stores an absolute position.
Each element is represented by its distance from the previous element, and the
first element by its distance from position 0 (the list's offset).

	positions:   1         5              12
	             ●─────────●──────────────●
	distances:   1    4            7

Lookups by position run in O(log n): the list answers exact matches (At),
predecessors (Before) and successors (After). Elements are appended at the
tail only, and no element is ever relocated once written.

Internally the list is a stack of levels of fixed-capacity blocks
(see package block). Level 0 holds the elements themselves, each level above
holds one element per block of the level below, yielding a tree of fan-out
256. Every block keeps dyadic partial sums of its distances, so a lookup
descends the levels like a binary search over Fenwick-style links.

Sublists

Elements may be logically inserted between two adjacent elements by attaching
a sublist to the gap between them (SublistBefore). A sublist is a spaced list
of its own, measuring positions from the element before the gap. Lookups
resolve to an Address, the path of indices through the nesting:

	l.Append(1)                 // element [0] at 1
	l.Append(4)                 // element [1] at 5
	sub, _ := l.SublistBefore(1)
	sub.Append(1)               // element [0 0] at 2
	sub.Append(2)               // element [0 1] at 4

Distances must be non-negative. Spaced lists are not safe for concurrent use;
clients have to serialize access to a list and all its sublists.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package spacedlist

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
