package jcs

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/canonform/jcs-format/go-jcs/debug"
	"github.com/canonform/jcs-format/go-jcs/tree"
)

// Generator writes canonical JSON text to a writer. It traverses trees
// through a tree.Adapter with an explicit frame stack, one frame per open
// object or array, so input depth is bounded by memory rather than by the
// call stack.
//
// A Generator holds no state between calls to Node and is safe to reuse;
// concurrent use requires one Generator per goroutine.
type Generator struct {
	w     io.Writer
	stack []frame
}

// frame is the cursor of one open container.
type frame struct {
	kind tree.Kind

	// object: entries in canonical key order
	entries []entry
	next    int

	// array: pull cursor with one element of lookahead
	elems *elemCursor
}

type entry struct {
	key   string
	units []uint16
	val   any
}

type elemCursor struct {
	next func() (any, bool)
	stop func()
	head any
	more bool
}

func newElemCursor(seq iter.Seq[any]) *elemCursor {
	c := &elemCursor{}
	c.next, c.stop = iter.Pull(seq)
	c.head, c.more = c.next()
	return c
}

func (c *elemCursor) hasNext() bool {
	return c.more
}

func (c *elemCursor) advance() any {
	v := c.head
	c.head, c.more = c.next()
	return v
}

// NewGenerator creates a generator writing to w.
func NewGenerator(w io.Writer) *Generator {
	return &Generator{w: w}
}

// Node writes the canonical form of the tree rooted at node, navigated
// through ad. Adapter and sink errors abort the call immediately; no
// partial-output recovery is attempted.
func (g *Generator) Node(node any, ad tree.Adapter) error {
	g.reset()
	defer g.reset()
	if err := g.value(node, ad); err != nil {
		return err
	}
	for len(g.stack) > 0 {
		if err := g.step(ad); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) reset() {
	for i := range g.stack {
		if g.stack[i].elems != nil {
			g.stack[i].elems.stop()
		}
	}
	g.stack = g.stack[:0]
}

// value emits a scalar token, or opens a container and pushes its frame.
func (g *Generator) value(node any, ad tree.Adapter) error {
	kind, err := ad.Kind(node)
	if err != nil {
		return err
	}
	if debug.Generate() {
		debug.Logf("jcs: generate depth=%d kind=%s\n", len(g.stack), kind)
	}
	switch kind {
	case tree.Null:
		return g.scalar("null")
	case tree.True:
		return g.scalar("true")
	case tree.False:
		return g.scalar("false")
	case tree.Number:
		s, err := CanonizeNumber(ad.Number(node))
		if err != nil {
			return err
		}
		return g.scalar(s)
	case tree.String:
		return g.scalar(`"` + Escape(ad.String(node)) + `"`)
	case tree.Array:
		if err := g.writeString("["); err != nil {
			return err
		}
		g.stack = append(g.stack, frame{
			kind:  tree.Array,
			elems: newElemCursor(ad.Elements(node)),
		})
		return nil
	case tree.Object:
		if err := g.writeString("{"); err != nil {
			return err
		}
		g.stack = append(g.stack, frame{
			kind:    tree.Object,
			entries: sortedEntries(node, ad),
		})
		return nil
	}
	return fmt.Errorf("%w: kind %d", ErrUnsupportedNode, kind)
}

// step advances the innermost open container by one entry, element or
// closing token.
func (g *Generator) step(ad tree.Adapter) error {
	f := &g.stack[len(g.stack)-1]
	if f.kind == tree.Object {
		if f.next >= len(f.entries) {
			return g.endStructure("}")
		}
		ent := &f.entries[f.next]
		f.next++
		if err := g.writeString(`"` + Escape(ent.key) + `":`); err != nil {
			return err
		}
		return g.value(ent.val, ad)
	}
	if !f.elems.hasNext() {
		return g.endStructure("]")
	}
	return g.value(f.elems.advance(), ad)
}

func (g *Generator) scalar(token string) error {
	if err := g.writeString(token); err != nil {
		return err
	}
	return g.comma()
}

func (g *Generator) endStructure(token string) error {
	f := &g.stack[len(g.stack)-1]
	if f.elems != nil {
		f.elems.stop()
	}
	g.stack = g.stack[:len(g.stack)-1]
	if err := g.writeString(token); err != nil {
		return err
	}
	return g.comma()
}

// comma separates siblings. The decision peeks the enclosing frame's
// cursor rather than counting emitted items, so empty, single and
// many-element containers need no special cases.
func (g *Generator) comma() error {
	if len(g.stack) == 0 {
		return nil
	}
	f := &g.stack[len(g.stack)-1]
	if f.kind == tree.Object {
		if f.next < len(f.entries) {
			return g.writeString(",")
		}
		return nil
	}
	if f.elems.hasNext() {
		return g.writeString(",")
	}
	return nil
}

func (g *Generator) writeString(s string) error {
	_, err := io.WriteString(g.w, s)
	return err
}

// sortedEntries collects an object's entries and sorts them into
// canonical UTF-16 code-unit key order.
func sortedEntries(node any, ad tree.Adapter) []entry {
	entries := make([]entry, 0, ad.Len(node))
	for k, v := range ad.Entries(node) {
		entries = append(entries, entry{key: k, val: v})
	}
	if len(entries) < 2 {
		return entries
	}
	ascii := true
	for i := range entries {
		if !isASCII(entries[i].key) {
			ascii = false
			break
		}
	}
	if !ascii {
		for i := range entries {
			entries[i].units = keyUnits(entries[i].key)
		}
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if ascii {
			return strings.Compare(a.key, b.key)
		}
		return slices.Compare(a.units, b.units)
	})
	return entries
}
