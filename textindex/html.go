package textindex

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/spacedlist"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragments is an index of the text nodes of an HTML document by their
// offset in the document's inner text.
//
// Every block-level element with text content is an entry of the top-level
// list, positioned at the start of its first text node. The text nodes
// following the first one within the same block live in the sublist after
// the entry. Offsets therefore resolve to addresses [b] for the first text
// node of block b, or [b k] for text node k+1 of block b.
type Fragments struct {
	index  *spacedlist.List[int64]
	blocks []fragmentBlock
	text   strings.Builder
}

type fragmentBlock struct {
	tag   string // enclosing block-level element, empty for loose text
	nodes []Node
}

// Node is a text node of an HTML document.
type Node struct {
	Address spacedlist.Address
	Tag     string // innermost enclosing block-level element
	Start   int64  // offset of the node in the inner text
	Text    string
}

// IndexHTML parses an HTML fragment and indexes its inner text.
//
// Whitespace-only text between blocks is dropped. Contents of script and
// style elements are not considered text.
func IndexHTML(r io.Reader) (*Fragments, error) {
	nodes, err := html.ParseFragment(r, nil)
	if err != nil {
		tracer().Errorf("cannot parse HTML fragment: %v", err)
		return nil, err
	}
	frags := &Fragments{index: spacedlist.New[int64]()}
	c := &collector{frags: frags}
	for _, n := range nodes {
		c.collect(n, "")
	}
	if err := frags.build(); err != nil {
		return nil, err
	}
	tracer().Debugf("indexed %d HTML blocks, %d bytes of text", len(frags.blocks), frags.text.Len())
	return frags, nil
}

type collector struct {
	frags *Fragments
	open  bool // is the last block still accepting text nodes?
}

func (c *collector) collect(n *html.Node, tag string) {
	switch n.Type {
	case html.TextNode:
		c.text(n.Data, tag)
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
		if isBlockLevel(n.DataAtom) {
			tag = n.Data
			c.open = false
			defer func() { c.open = false }()
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.collect(ch, tag)
	}
}

func (c *collector) text(s string, tag string) {
	if s == "" {
		return
	}
	f := c.frags
	if !c.open {
		if strings.TrimSpace(s) == "" {
			return
		}
		f.blocks = append(f.blocks, fragmentBlock{tag: tag})
		c.open = true
	}
	blk := &f.blocks[len(f.blocks)-1]
	blk.nodes = append(blk.nodes, Node{
		Tag:   tag,
		Start: int64(f.text.Len()),
		Text:  s,
	})
	f.text.WriteString(s)
}

// build creates the top-level list first, as sublists may only be attached
// to gaps between existing entries.
func (f *Fragments) build() error {
	var last int64
	for _, blk := range f.blocks {
		start := blk.nodes[0].Start
		if err := f.index.Append(start - last); err != nil {
			return err
		}
		last = start
	}
	end := int64(f.text.Len())
	if err := f.index.Append(end - last); err != nil { // end marker
		return err
	}
	for b := range f.blocks {
		blk := &f.blocks[b]
		blk.nodes[0].Address = spacedlist.Address{b}
		if len(blk.nodes) == 1 {
			continue
		}
		sub, err := f.index.SublistBefore(b + 1)
		if err != nil {
			return err
		}
		for k := 1; k < len(blk.nodes); k++ {
			blk.nodes[k].Address = spacedlist.Address{b, k - 1}
			if err := sub.Append(blk.nodes[k].Start - blk.nodes[k-1].Start); err != nil {
				return err
			}
		}
	}
	return nil
}

// Text returns the inner text of the document.
func (f *Fragments) Text() string {
	return f.text.String()
}

// Blocks returns the number of blocks with text content.
func (f *Fragments) Blocks() int {
	return len(f.blocks)
}

// NodeAt returns the text node containing the byte at offset of the inner
// text.
func (f *Fragments) NodeAt(offset int64) (Node, error) {
	if offset < 0 || offset >= int64(f.text.Len()) {
		return Node{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOffsetOutOfRange, offset, f.text.Len())
	}
	addr, _, ok := f.index.Before(offset + 1)
	if !ok {
		panic("fragment index lost its first block")
	}
	blk := f.blocks[addr[0]]
	if addr.Depth() == 1 {
		return blk.nodes[0], nil
	}
	return blk.nodes[addr[1]+1], nil
}

var blockLevel = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true,
	atom.Td: true, atom.Th: true, atom.Tr: true, atom.Ul: true,
}

func isBlockLevel(a atom.Atom) bool {
	return blockLevel[a]
}
