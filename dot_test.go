package vmap

import (
	"bytes"
	"strings"
	"testing"
)

func TestMap2Dot(t *testing.T) {
	m := FromPairs([]Pair[int, string]{{1, "one"}, {2, "two"}})
	var buf bytes.Buffer
	Map2Dot(m, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("malformed DOT output:\n%s", out)
	}
	if !strings.Contains(out, "one") || !strings.Contains(out, "two") {
		t.Fatalf("entry values missing from DOT output:\n%s", out)
	}
	if !strings.Contains(out, "\"0\" -> \"1\"") {
		t.Fatalf("entry chain missing from DOT output:\n%s", out)
	}
}

func TestMap2DotEscapesRecordSyntax(t *testing.T) {
	m := FromPairs([]Pair[string, string]{{"a|b", `say "hi" {now}`}})
	var buf bytes.Buffer
	Map2Dot(m, &buf)
	out := buf.String()
	for _, esc := range []string{`\|`, `\"`, `\{`, `\}`} {
		if !strings.Contains(out, esc) {
			t.Fatalf("expected escape %s in DOT output:\n%s", esc, out)
		}
	}
}

func TestMap2DotEmptyMap(t *testing.T) {
	var buf bytes.Buffer
	Map2Dot(New[int, int](), &buf)
	if !strings.Contains(buf.String(), "(empty)") {
		t.Fatalf("expected empty-map marker, got:\n%s", buf.String())
	}
}
