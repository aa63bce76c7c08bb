/*
Package textindex indexes positions in text with spaced lists.

Every index in this package stores byte offsets as distances between
consecutive positions of interest: line starts, line-break opportunities, or
the text fragments of an HTML document. Lookups by byte offset then resolve to
an element of the index in logarithmic time.

Fragments shows the use of sublists: each block-level element of an HTML
document is an entry of the index, and the text nodes inside a block are
inserted into the gap following the block's first node.

# Status

Work in progress.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package textindex

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'spacedlist'
func tracer() tracing.Trace {
	return tracing.Select("spacedlist")
}

// ErrOffsetOutOfRange signals a byte offset outside the indexed text.
var ErrOffsetOutOfRange = errors.New("textindex: offset out of range")
