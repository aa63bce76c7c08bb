package spacedlist

import (
	"fmt"

	"github.com/npillmayer/spacedlist/block"
)

// Check validates structural list invariants, including all sublists.
//
// Check is strict and rather expensive; it is meant to be used in tests.
func (l *List[D]) Check() error {
	if l == nil {
		return fmt.Errorf("%w: nil list", ErrInvalidStructure)
	}
	var zero D
	if l.size == 0 {
		if len(l.levels) != 0 || l.totalLength != zero || l.offset != zero {
			return fmt.Errorf("%w: empty list with levels or length", ErrInvalidStructure)
		}
		return nil
	}
	if len(l.levels) == 0 {
		return fmt.Errorf("%w: non-empty list without levels", ErrInvalidStructure)
	}
	if top := l.levels[len(l.levels)-1]; len(top) != 1 {
		return fmt.Errorf("%w: top level has %d blocks", ErrInvalidStructure, len(top))
	}
	if len(l.sublists) != len(l.levels[0]) {
		return fmt.Errorf("%w: %d attachment tables for %d blocks",
			ErrInvalidStructure, len(l.sublists), len(l.levels[0]))
	}
	for level, blocks := range l.levels {
		if err := l.checkLevel(level, blocks); err != nil {
			return err
		}
	}
	if last := l.relative(l.size - 1); last != l.totalLength-l.offset {
		return fmt.Errorf("%w: last element at %v, total length %v, offset %v",
			ErrInvalidStructure, last, l.totalLength, l.offset)
	}
	return l.checkSublists()
}

func (l *List[D]) checkLevel(level int, blocks []*block.Block[D]) error {
	elements := 0
	for b, blk := range blocks {
		if err := blk.Check(); err != nil {
			return fmt.Errorf("%w: level %d, block %d: %w", ErrInvalidStructure, level, b, err)
		}
		if b < len(blocks)-1 && !blk.IsFull() {
			return fmt.Errorf("%w: level %d, inner block %d not full", ErrInvalidStructure, level, b)
		}
		elements += blk.Size()
	}
	want := l.size
	if level > 0 {
		want = len(l.levels[level-1])
	}
	if elements != want {
		return fmt.Errorf("%w: level %d holds %d elements, expected %d", ErrInvalidStructure, level, elements, want)
	}
	if level == 0 {
		return nil
	}
	// a folded element spans at least the block it stands for
	below := l.levels[level-1]
	for e := 1; e < elements; e++ {
		local := e & block.IndexMask
		if local == 0 {
			continue
		}
		if d, t := blocks[e>>block.MaxDegree].Distance(local), below[e-1].TotalLength(); d < t {
			return fmt.Errorf("%w: level %d, element %d: distance %v shorter than block below (%v)",
				ErrInvalidStructure, level, e, d, t)
		}
	}
	return nil
}

func (l *List[D]) checkSublists() error {
	for b, table := range l.sublists {
		for gap := range block.Capacity {
			child, ok := table.existingChildAt(gap)
			if !ok {
				continue
			}
			index := b<<block.MaxDegree + gap
			if index < 1 || index >= l.size {
				return fmt.Errorf("%w: sublist attached before missing element %d", ErrInvalidStructure, index)
			}
			if err := child.Check(); err != nil {
				return fmt.Errorf("%w: sublist before element %d: %w", ErrInvalidStructure, index, err)
			}
			if !child.IsEmpty() && child.TotalLength() >= l.gapLength(index) {
				return fmt.Errorf("%w: sublist before element %d extends to %v, gap is %v",
					ErrInvalidStructure, index, child.TotalLength(), l.gapLength(index))
			}
		}
	}
	return nil
}
