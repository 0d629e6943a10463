package kvfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/vmap"
)

var (
	// ErrSyntax signals a line which is neither a pair, a comment nor blank.
	ErrSyntax = errors.New("kvfile: malformed line")
	// ErrNotRegular signals a path which does not name a regular file.
	ErrNotRegular = errors.New("kvfile: not a regular file")
)

// broadcast a progress event roughly every this many parsed entries
const progressStride = 64

// Progress reports how far a load has come.
type Progress struct {
	Line    int // last parsed line number
	Entries int // entries inserted so far
}

// Handle represents a key/value file being loaded in the background.
type Handle struct {
	path string
	cast *caster.Caster // broadcasts progress while parsing, closed when done
	m    *vmap.Map[string, string]
	err  error
}

// Load opens a key/value file and starts parsing it into a map on a
// background goroutine. Opening is synchronous, so path errors surface
// immediately; parse errors surface from Map.
func Load(name string) (*Handle, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	h := &Handle{path: name, cast: caster.New(nil)}
	go h.parse(file)
	return h, nil
}

// Map blocks until loading has completed and returns the loaded map, or the
// first error the parser ran into. Any number of goroutines may call Map on
// the same handle; repeated calls after completion return immediately.
func (h *Handle) Map() (*vmap.Map[string, string], error) {
	if ch, ok := h.cast.Sub(context.Background(), 1); ok {
		for range ch {
			// drain until the parser closes the broadcast
		}
	}
	return h.m, h.err
}

// Progress returns a channel of progress events, closed when loading
// completes. Events are broadcast best-effort: a slow consumer may miss
// intermediate ones.
func (h *Handle) Progress() <-chan Progress {
	out := make(chan Progress, 1)
	ch, ok := h.cast.Sub(context.Background(), 1)
	if !ok { // load already done
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for ev := range ch {
			if p, ok := ev.(Progress); ok {
				select {
				case out <- p:
				default:
				}
			}
		}
	}()
	return out
}

func (h *Handle) parse(file *os.File) {
	defer h.cast.Close()
	defer file.Close()
	m := vmap.New[string, string]()
	scanner := bufio.NewScanner(file)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			h.err = fmt.Errorf("%s:%d: %w", h.path, lineno, ErrSyntax)
			return
		}
		m.Insert(strings.TrimSpace(key), strings.TrimSpace(value))
		if m.Len()%progressStride == 0 {
			h.cast.TryPub(Progress{Line: lineno, Entries: m.Len()})
		}
	}
	if err := scanner.Err(); err != nil {
		h.err = fmt.Errorf("kvfile: reading %s: %w", h.path, err)
		return
	}
	h.m = m
	tracer().Debugf("kvfile: loaded %d entries from %s", m.Len(), h.path)
}
