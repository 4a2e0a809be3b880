package main

import (
	"fmt"
	"sort"

	"github.com/Konfuzian/symbolic-language"
)

// node is one row of the browsable tree. Containers (arrays and
// objects) carry children and an expanded flag; scalars never expand.
type node struct {
	label    string
	value    sym.Value
	children []*node
	expanded bool
}

// buildTree turns a parsed [sym.Value] into a [node] tree whose root
// carries the given label. Object keys are sorted for a stable,
// reproducible layout across runs.
func buildTree(label string, v sym.Value) *node {
	n := &node{label: label, value: v}

	switch v.Kind() {
	case sym.KindArray:
		arr, _ := v.AsArray()
		for i, e := range arr {
			n.children = append(n.children, buildTree(fmt.Sprintf("[%d]", i), e))
		}

		n.expanded = true
	case sym.KindObject:
		obj, _ := v.AsObject()

		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			n.children = append(n.children, buildTree(":"+k, obj[k]))
		}

		n.expanded = true
	}

	return n
}

// isContainer reports whether n has children to expand or collapse.
func (n *node) isContainer() bool {
	return n.value.Kind() == sym.KindArray || n.value.Kind() == sym.KindObject
}

// visibleRow pairs a node with its rendering depth, produced by
// flattening the tree according to each ancestor's expanded state.
type visibleRow struct {
	n     *node
	depth int
}

// flatten walks the tree depth-first, emitting a row for n and, if n is
// expanded, for every descendant still reachable through expanded
// ancestors.
func flatten(n *node, depth int, out []visibleRow) []visibleRow {
	out = append(out, visibleRow{n: n, depth: depth})

	if !n.expanded {
		return out
	}

	for _, c := range n.children {
		out = flatten(c, depth+1, out)
	}

	return out
}

// scalarPreview renders a one-line summary of a scalar value for
// display next to its label. Containers are summarized by their child
// count.
func scalarPreview(v sym.Value) string {
	switch v.Kind() {
	case sym.KindNull:
		return "null"
	case sym.KindBool:
		b, _ := v.AsBool()

		return fmt.Sprintf("%t", b)
	case sym.KindInt:
		i, _ := v.AsInt()

		return fmt.Sprintf("%d", i)
	case sym.KindFloat:
		f, _ := v.AsFloat()

		return fmt.Sprintf("%g", f)
	case sym.KindString:
		s, _ := v.AsString()

		return fmt.Sprintf("%q", s)
	case sym.KindSymbol:
		name, _ := v.AsSymbol()

		return ":" + name
	case sym.KindArray:
		arr, _ := v.AsArray()

		return fmt.Sprintf("[%d items]", len(arr))
	case sym.KindObject:
		obj, _ := v.AsObject()

		return fmt.Sprintf("{%d fields}", len(obj))
	default:
		return ""
	}
}
