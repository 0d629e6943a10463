package vmap

import (
	"fmt"
	"io"
	"strings"
)

// Map2Dot outputs the entry sequence of a Map in Graphviz DOT format
// (for debugging purposes).
//
// Entries appear as a left-to-right chain of record nodes showing index,
// key and value, which makes shifted or out-of-order sequences easy to spot
// when debugging comparator trouble.
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\trankdir=LR;\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=record];\n")
	nodelist, edgelist := "", ""
	if m.Len() == 0 {
		nodelist += "\"empty\" [label=\"(empty)\",shape=plaintext];\n"
	}
	for i := range m.Len() {
		e := m.entries[i]
		label := fmt.Sprintf("{%d|%s|%s}", i,
			dotEscape(fmt.Sprintf("%v", e.Key)),
			dotEscape(fmt.Sprintf("%v", e.Value)))
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"];\n", i, label)
		if i > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", i-1, i)
		}
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

var dotEscaper = strings.NewReplacer(
	`"`, `\"`, `{`, `\{`, `}`, `\}`, `|`, `\|`, `<`, `\<`, `>`, `\>`,
)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}
