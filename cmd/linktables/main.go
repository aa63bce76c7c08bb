/*
Command linktables prints the link geometry of spaced-list blocks.

For every block occupancy in a range, linktables shows the link slots an
appended element contributes its distance to, one per degree. Slots which
receive their first contribution are highlighted.

	linktables [-from n] [-to n] [-decimal] [-bands] [-color auto|always|never]

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/spacedlist/block"
	"golang.org/x/term"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linktables", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.Int("from", 1, "first block occupancy to print")
	to := fs.Int("to", 16, "last block occupancy to print")
	decimal := fs.Bool("decimal", false, "print slot numbers in decimal")
	bands := fs.Bool("bands", false, "print the band offsets per degree")
	colorMode := fs.String("color", "auto", "highlight fresh slots: auto, always or never")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options]\n\n", fs.Name()),
			writeln(stderr, "Prints the link slots updated by an append, per block occupancy."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	usage := func(msg string) int {
		if err := writeln(stderr, "error:", msg); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}
	if fs.NArg() > 0 {
		return usage("unexpected arguments")
	}
	if *from < 0 || *to >= block.Capacity || *from > *to {
		return usage(fmt.Sprintf("occupancy range must satisfy 0 <= from <= to < %d", block.Capacity))
	}
	fresh := color.New(color.FgRed, color.Bold)
	switch *colorMode {
	case "always":
		fresh.EnableColor()
	case "never":
		fresh.DisableColor()
	case "auto":
		if isTerminal(stdout) {
			fresh.EnableColor()
		} else {
			fresh.DisableColor()
		}
	default:
		return usage(fmt.Sprintf("invalid color mode %q", *colorMode))
	}
	p := printer{w: stdout, fresh: fresh, decimal: *decimal}
	if *bands {
		p.bands()
	}
	for size := *from; size <= *to; size++ {
		p.row(size)
	}
	if p.err != nil {
		_ = writef(stderr, "error writing tables: %v\n", p.err)
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printer remembers the first write error and suppresses further output.
type printer struct {
	w       io.Writer
	fresh   *color.Color
	decimal bool
	err     error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = writef(p.w, format, args...)
}

func (p *printer) bands() {
	p.printf("degree  offset  slots\n")
	for d, offset := range block.DegreeBandOffsets {
		p.printf("%6d  %6d  %5d\n", d, offset, block.Capacity>>d)
	}
	p.printf("\n")
}

func (p *printer) row(size int) {
	slots := block.LinksToUpdate(size)
	n := block.FreshLinks(size)
	cells := make([]string, len(slots))
	for d, slot := range slots {
		cell := fmt.Sprintf("%09b", slot)
		if p.decimal {
			cell = fmt.Sprintf("%3d", slot)
		}
		if d < n {
			cell = p.fresh.Sprint(cell)
		}
		cells[d] = cell
	}
	p.printf("%3d %08b  %s\n", size, size, strings.Join(cells, " "))
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
