package spacedlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/spacedlist/block"
)

type nodeids struct {
	max int
}

func (ids *nodeids) alloc() int {
	ids.max++
	return ids.max
}

// ListToDot outputs the internal structure of a spaced list in Graphviz DOT
// format (for debugging purposes). Blocks are drawn from the top level down,
// sublists hang off the level-0 block holding their gap.
func ListToDot[D Distance](l *List[D], w io.Writer) error {
	var nodes, edges strings.Builder
	ids := &nodeids{}
	listToDot(l, "", ids, &nodes, &edges)
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodes.String()+edges.String()+"}\n")
	return err
}

// listToDot writes the blocks of l and returns the DOT id of its top block,
// or of an empty marker for an empty list.
func listToDot[D Distance](l *List[D], label string, ids *nodeids, nodes, edges *strings.Builder) int {
	if l.IsEmpty() {
		id := ids.alloc()
		fmt.Fprintf(nodes, "\"%d\" [label=\"%s∅\",shape=circle,fixedsize=true,width=.4];\n", id, label)
		return id
	}
	var above []int
	root := 0
	for level := len(l.levels) - 1; level >= 0; level-- {
		current := make([]int, len(l.levels[level]))
		for b, blk := range l.levels[level] {
			current[b] = ids.alloc()
			text := fmt.Sprintf("L%d B%d\\nsize %d\\nlength %v", level, b, blk.Size(), blk.TotalLength())
			if level == len(l.levels)-1 {
				root = current[b]
				if label != "" {
					text = label + "\\n" + text
				}
			}
			fmt.Fprintf(nodes, "\"%d\" [label=\"%s\"%s];\n", current[b], text, blockDotStyles(level))
			if above != nil {
				parent := above[b>>block.MaxDegree]
				fmt.Fprintf(edges, "\"%d\" -> \"%d\";\n", parent, current[b])
			}
		}
		above = current
	}
	for b, table := range l.sublists {
		for gap := range len(table.index) {
			child, ok := table.existingChildAt(gap)
			if !ok {
				continue
			}
			index := b<<block.MaxDegree + gap
			sub := listToDot(child, fmt.Sprintf("before %d", index), ids, nodes, edges)
			fmt.Fprintf(edges, "\"%d\" -> \"%d\" [style=dashed];\n", above[b], sub)
		}
	}
	return root
}

func blockDotStyles(level int) string {
	s := ",style=filled,shape=box"
	s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(level, len(hexcolors)-1)])
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
