/*
Package dump renders vmap maps for humans.

The core package keeps its debugging output machine-oriented (Graphviz DOT);
this package adds a console view: an aligned, optionally colored key/value
table, sized to the terminal it prints to.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/vmap"
	"golang.org/x/term"
)

// Palette holds the colors used by Table. A nil color leaves the column
// uncolored.
type Palette struct {
	Header *color.Color
	Key    *color.Color
}

// DefaultPalette is used by Table when no palette is given.
var DefaultPalette = Palette{
	Header: color.New(color.Bold),
	Key:    color.New(color.FgCyan),
}

// Table writes the entries of m to w as an aligned two-column table in
// ascending key order. Keys and values render with fmt's %v verb.
//
// When w is an interactive terminal, columns are colored and lines are
// clipped to the terminal width; otherwise output is plain and clipped to 80
// columns. palette may be nil for the default colors.
func Table[K, V any](w io.Writer, m *vmap.Map[K, V], palette *Palette) error {
	if palette == nil {
		palette = &DefaultPalette
	}
	linewidth, colored := lineWidth(w)
	keys := make([]string, 0, m.Len())
	vals := make([]string, 0, m.Len())
	keywidth := len("KEY")
	for k, v := range m.All() {
		ks, vs := fmt.Sprintf("%v", k), fmt.Sprintf("%v", v)
		keywidth = max(keywidth, len(ks))
		keys = append(keys, ks)
		vals = append(vals, vs)
	}
	keywidth = min(keywidth, linewidth/2)
	valwidth := linewidth - keywidth - 2
	header := fmt.Sprintf("%-*s  %s", keywidth, "KEY", clip("VALUE", valwidth))
	if colored && palette.Header != nil {
		header = palette.Header.Sprint(header)
	}
	if _, err := io.WriteString(w, header+"\n"); err != nil {
		return err
	}
	for i := range keys {
		key := fmt.Sprintf("%-*s", keywidth, clip(keys[i], keywidth))
		if colored && palette.Key != nil {
			key = palette.Key.Sprint(key)
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", key, clip(vals[i], valwidth)); err != nil {
			return err
		}
	}
	return nil
}

// lineWidth determines the output width and whether coloring makes sense.
func lineWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 80, false
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 80, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

func clip(s string, width int) string {
	if len(s) <= width || width < 1 {
		return s
	}
	return s[:width-1] + "…"
}
