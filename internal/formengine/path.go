// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tenancy Hub Authors

package formengine

import (
	"strconv"
	"strings"
)

// Segment is one step of an edit path: an object key or an array index.
type Segment struct {
	Key     string
	Index   int
	indexed bool
}

// IsIndex reports whether the segment addresses an array element.
func (s Segment) IsIndex() bool {
	return s.indexed
}

// Path identifies a value's position relative to the root. It is an
// addressing and display concept only; nothing is persisted by it.
type Path []Segment

// Key returns a new path extended with an object key segment.
func (p Path) Key(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Key: name})
}

// Index returns a new path extended with an array index segment.
func (p Path) Index(i int) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, Segment{Index: i, indexed: true})
}

// Depth is the nesting depth of the addressed value; the root is depth 0.
func (p Path) Depth() int {
	return len(p)
}

// String renders the path in dotted form, e.g. "alerting.channels[2].name".
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if seg.indexed {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Key)
	}
	return b.String()
}
