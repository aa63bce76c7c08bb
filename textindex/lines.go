package textindex

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/spacedlist"
)

// Lines is an index of line starts for a text.
//
// Line 0 always starts at offset 0. Every newline character starts a new
// line, unless it is the last byte of the text.
type Lines struct {
	starts *spacedlist.List[int64]
	length int64
}

// IndexLines reads r up to EOF and records the start of every line.
func IndexLines(r io.Reader) (*Lines, error) {
	lines := &Lines{starts: spacedlist.New[int64]()}
	if err := lines.starts.Append(0); err != nil {
		return nil, err
	}
	br := bufio.NewReader(r)
	var last int64
	pending := false
	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 && pending {
			if err := lines.starts.Append(lines.length - last); err != nil {
				return nil, err
			}
			last = lines.length
			pending = false
		}
		lines.length += int64(len(chunk))
		switch {
		case err == nil:
			pending = true
		case errors.Is(err, bufio.ErrBufferFull):
			// line continues in the next chunk
		case errors.Is(err, io.EOF):
			tracer().Debugf("indexed %d lines in %d bytes", lines.Count(), lines.length)
			return lines, nil
		default:
			return nil, err
		}
	}
}

// Count returns the number of lines.
func (lines *Lines) Count() int {
	return lines.starts.Len()
}

// Len returns the length of the indexed text in bytes.
func (lines *Lines) Len() int64 {
	return lines.length
}

// LineOf returns the line containing the byte at offset. An offset equal to
// Len() belongs to the last line.
func (lines *Lines) LineOf(offset int64) (int, error) {
	if offset < 0 || offset > lines.length {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetOutOfRange, offset, lines.length)
	}
	addr, _, ok := lines.starts.Before(offset + 1)
	if !ok {
		panic("line index lost its first line")
	}
	return addr[0], nil
}

// LineStart returns the offset of the first byte of line i.
func (lines *Lines) LineStart(i int) (int64, error) {
	return lines.starts.PositionOf(i)
}
