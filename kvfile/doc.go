/*
Package kvfile loads key/value files into vmap maps.

The file format is the usual properties style: one `key = value` pair per
line, `#` or `;` starting a comment line, blank lines ignored. Parsing runs
on a background goroutine while the caller keeps working; the map handle
synchronizes transparently, and any number of goroutines may wait for the
same load.

Duplicate keys follow the map's first-wins policy: the first occurrence in
the file is kept.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package kvfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'vmap'
func tracer() tracing.Trace {
	return tracing.Select("vmap")
}
