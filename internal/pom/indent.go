package pom

import (
	"slices"
	"strings"

	"github.com/beevik/etree"
)

const defaultIndent = "    "

// detectIndent returns the whitespace one nesting level adds in doc, taken
// from the line before the root's first child.
func detectIndent(doc *etree.Document) string {
	root := doc.Root()
	if root == nil {
		return defaultIndent
	}

	for _, tok := range root.Child {
		if !isIndent(tok) {
			continue
		}

		data := tok.(*etree.CharData).Data
		if i := strings.LastIndexByte(data, '\n'); i >= 0 && i < len(data)-1 {
			return data[i+1:]
		}
	}

	return defaultIndent
}

// isIndent reports whether tok is whitespace-only character data.
func isIndent(tok etree.Token) bool {
	cd, ok := tok.(*etree.CharData)

	return ok && !cd.IsCData() && strings.TrimSpace(cd.Data) == ""
}

// depth is the number of elements between el and the document root element.
func depth(el *etree.Element) int {
	n := 0
	for p := el.Parent(); p != nil && p.Parent() != nil; p = p.Parent() {
		n++
	}

	return n
}

func (m *Model) newline(level int) *etree.CharData {
	if level < 0 {
		level = 0
	}

	return etree.NewText("\n" + strings.Repeat(m.indent, level))
}

// indentTree replaces the whitespace between el's children so el's subtree
// reads as nested level deep. Leaf text is never touched.
func (m *Model) indentTree(el *etree.Element, level int) {
	if len(el.ChildElements()) == 0 {
		return
	}

	for _, tok := range slices.Clone(el.Child) {
		if isIndent(tok) {
			el.RemoveChild(tok)
		}
	}

	for _, tok := range slices.Clone(el.Child) {
		el.InsertChildAt(tok.Index(), m.newline(level+1))

		if child, ok := tok.(*etree.Element); ok {
			m.indentTree(child, level+1)
		}
	}

	el.AddChild(m.newline(level))
}

// indentAttached lays out el, just appended to its parent, on its own lines
// at its nesting depth. The rest of the document keeps its formatting.
func (m *Model) indentAttached(el *etree.Element) {
	parent := el.Parent()
	if parent == nil {
		return
	}

	level := depth(el)
	m.indentTree(el, level)

	if i := el.Index(); i > 0 && isIndent(parent.Child[i-1]) {
		parent.RemoveChildAt(i - 1)
	}

	parent.InsertChildAt(el.Index(), m.newline(level))

	if el.Index() == len(parent.Child)-1 {
		parent.AddChild(m.newline(level - 1))
	}
}

// detachIndented removes el from its parent together with the line break
// that precedes it.
func detachIndented(el *etree.Element) {
	parent := el.Parent()
	if parent == nil {
		return
	}

	if i := el.Index(); i > 0 && isIndent(parent.Child[i-1]) {
		parent.RemoveChildAt(i - 1)
	}

	parent.RemoveChild(el)
}
