package textindex

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/spacedlist"
)

func TestFragmentsNodeAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spacedlist")
	defer teardown()

	frags, err := IndexHTML(strings.NewReader(`<p>Hello <b>bold</b> world</p><div>Second</div>`))
	if err != nil {
		t.Fatal(err)
	}
	if frags.Text() != "Hello bold worldSecond" {
		t.Fatalf("unexpected inner text %q", frags.Text())
	}
	if frags.Blocks() != 2 {
		t.Fatalf("expected 2 blocks, have %d", frags.Blocks())
	}
	tests := []struct {
		offset int64
		addr   spacedlist.Address
		text   string
		tag    string
	}{
		{0, spacedlist.Address{0}, "Hello ", "p"},
		{5, spacedlist.Address{0}, "Hello ", "p"},
		{6, spacedlist.Address{0, 0}, "bold", "p"},
		{9, spacedlist.Address{0, 0}, "bold", "p"},
		{10, spacedlist.Address{0, 1}, " world", "p"},
		{15, spacedlist.Address{0, 1}, " world", "p"},
		{16, spacedlist.Address{1}, "Second", "div"},
		{21, spacedlist.Address{1}, "Second", "div"},
	}
	for _, tt := range tests {
		node, err := frags.NodeAt(tt.offset)
		if err != nil {
			t.Fatalf("NodeAt(%d): %v", tt.offset, err)
		}
		if !node.Address.Equal(tt.addr) || node.Text != tt.text || node.Tag != tt.tag {
			t.Errorf("NodeAt(%d) = %v %q <%s>, want %v %q <%s>", tt.offset,
				node.Address, node.Text, node.Tag, tt.addr, tt.text, tt.tag)
		}
		if frags.Text()[node.Start:node.Start+int64(len(node.Text))] != node.Text {
			t.Errorf("node %v does not start at %d", node.Address, node.Start)
		}
	}
	if _, err := frags.NodeAt(22); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("NodeAt(22): expected ErrOffsetOutOfRange, got %v", err)
	}
	if err := frags.index.Check(); err != nil {
		t.Errorf("fragment index invalid: %v", err)
	}
}

func TestFragmentsSkipScriptsAndBlankText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "spacedlist")
	defer teardown()

	input := "<ul>\n  <li>one</li>\n  <li>two <i>2</i></li>\n</ul><script>var x;</script>tail"
	frags, err := IndexHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if frags.Text() != "onetwo 2tail" {
		t.Fatalf("unexpected inner text %q", frags.Text())
	}
	if frags.Blocks() != 3 {
		t.Fatalf("expected 3 blocks, have %d", frags.Blocks())
	}
	node, err := frags.NodeAt(7)
	if err != nil || !node.Address.Equal(spacedlist.Address{1, 0}) || node.Text != "2" {
		t.Errorf("NodeAt(7) = %v %q (%v), want [1 0] \"2\"", node.Address, node.Text, err)
	}
	node, err = frags.NodeAt(8)
	if err != nil || !node.Address.Equal(spacedlist.Address{2}) || node.Tag != "" {
		t.Errorf("NodeAt(8) = %v <%s> (%v), want loose text [2]", node.Address, node.Tag, err)
	}
}
