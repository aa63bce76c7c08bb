package textindex

import (
	"bufio"
	"strings"

	"github.com/npillmayer/spacedlist"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Breaks is an index of the line-break opportunities of a text, as defined
// by UAX #14. The text between two consecutive opportunities is a segment.
type Breaks struct {
	// element i is the start of segment i, the last element marks the end
	// of text
	starts *spacedlist.List[int64]
	text   string
}

// IndexBreaks segments text at every line-break opportunity.
func IndexBreaks(text string) *Breaks {
	breaks := &Breaks{starts: spacedlist.New[int64](), text: text}
	if len(text) == 0 {
		return breaks
	}
	_ = breaks.starts.Append(0)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	var end int64
	for segmenter.Next() {
		n := int64(len(segmenter.Bytes()))
		if n == 0 {
			continue
		}
		_ = breaks.starts.Append(n)
		end += n
	}
	if end != int64(len(text)) {
		// segmenter stopped early, treat the rest as a single segment
		tracer().Errorf("line-wrap segmenter covered %d of %d bytes", end, len(text))
		_ = breaks.starts.Append(int64(len(text)) - end)
	}
	tracer().Debugf("indexed %d break opportunities", breaks.Count())
	return breaks
}

// Count returns the number of segments.
func (breaks *Breaks) Count() int {
	return max(breaks.starts.Len()-1, 0)
}

// SegmentAt returns the segment containing the byte at offset, as its index
// and its byte range [start, end).
func (breaks *Breaks) SegmentAt(offset int64) (index int, start, end int64, ok bool) {
	if offset < 0 || offset >= int64(len(breaks.text)) {
		return 0, 0, 0, false
	}
	addr, residual, ok := breaks.starts.Before(offset + 1)
	if !ok {
		return 0, 0, 0, false
	}
	index = addr[0]
	start = offset + 1 - residual
	end, err := breaks.starts.PositionOf(index + 1)
	if err != nil {
		tracer().Errorf("segment %d has no end: %v", index, err)
		return 0, 0, 0, false
	}
	return index, start, end, true
}

// Segment returns the text of segment i.
func (breaks *Breaks) Segment(i int) (string, bool) {
	if i < 0 || i >= breaks.Count() {
		return "", false
	}
	start, _ := breaks.starts.PositionOf(i)
	end, _ := breaks.starts.PositionOf(i + 1)
	return breaks.text[start:end], true
}

// NextBreak returns the first break opportunity strictly after offset. The
// end of text counts as a break opportunity.
func (breaks *Breaks) NextBreak(offset int64) (int64, bool) {
	_, residual, ok := breaks.starts.After(offset)
	if !ok {
		return 0, false
	}
	return offset + residual, true
}
