package strie

import "github.com/gostrie/strie/bitwise"

// Tree couples a parentheses index with a label store: the balanced-parens
// encoding of the topology, plus one label per opening parenthesis in
// visit order (§4.6).
type Tree[L any] struct {
	parens *bitwise.Parens
	labels Labels[L]
}

// NewTree wraps a finished parentheses bit string and label store. Callers
// normally obtain a Tree from Builder.Finish rather than calling this
// directly.
func NewTree[L any](parens *bitwise.Parens, labels Labels[L]) *Tree[L] {
	return &Tree[L]{parens: parens, labels: labels}
}

// ExternalByteSize is the heap footprint of the parentheses index (and its
// pioneer chain) plus the label store.
func (t *Tree[L]) ExternalByteSize() uint64 {
	return t.parens.ExternalByteSize() + t.labels.ExternalByteSize()
}

// NodeCount returns the number of real nodes (excluding the virtual root).
func (t *Tree[L]) NodeCount() int {
	return t.labels.Len()
}

// Node is a lightweight cursor into an immutable Tree: an inner position
// (index into the parentheses bit string, for parenthesis math) and a
// label position (dense index for label lookup), per the data model in
// §3. In Go both the "borrowed" and "shared" node-ownership modes the
// original distinguishes collapse to this one type, since the garbage
// collector keeps the backing Tree alive for as long as any Node
// references it; there is no separate Rc-style handle to manage.
type Node[L any] struct {
	tree  *Tree[L]
	inner bitwise.Index
	label bitwise.Index
}

// Root returns a cursor at the tree's root node, borrowing the tree for
// the lifetime of the returned Node.
func (t *Tree[L]) Root() Node[L] {
	return Node[L]{tree: t, inner: 0, label: 0}
}

// ToOwnedRoot returns a cursor at the root node, for use by iterators that
// must outlive the scope where the tree was obtained. See the Node
// doc comment: identical to Root in Go.
func (t *Tree[L]) ToOwnedRoot() Node[L] {
	return t.Root()
}

// ID returns the node's dense pre-order identifier (1 for the first real
// node; 0 is reserved for the virtual root, per property 7).
func (n Node[L]) ID() bitwise.Index {
	return n.label
}

// Label returns the label stored for this node. Labels are stored from
// index 0 for the first real node, so node ID k reads entry k-1; the
// virtual root has no label.
func (n Node[L]) Label() (L, bool) {
	return n.tree.labels.Get(int(n.label) - 1)
}

// FirstChild returns the node's first child, if any (§4.6).
func (n Node[L]) FirstChild() (Node[L], bool) {
	open, ok := n.tree.parens.Get(n.inner + 1)
	if !ok || !open {
		return Node[L]{}, false
	}
	return Node[L]{tree: n.tree, inner: n.inner + 1, label: n.label + 1}, true
}

// NextSibling returns the node's next sibling, if any (§4.6).
func (n Node[L]) NextSibling() (Node[L], bool) {
	c, ok := n.tree.parens.GetClose(n.inner)
	if !ok {
		return Node[L]{}, false
	}
	open, ok := n.tree.parens.Get(c + 1)
	if !ok || !open {
		return Node[L]{}, false
	}
	siblingLabel := n.label + (c-n.inner+1)/2
	return Node[L]{tree: n.tree, inner: c + 1, label: siblingLabel}, true
}

// Children returns every child of n, left to right.
func (n Node[L]) Children() []Node[L] {
	var out []Node[L]
	child, ok := n.FirstChild()
	for ok {
		out = append(out, child)
		child, ok = child.NextSibling()
	}
	return out
}

// FindPath descends the tree one step per element of path, at each level
// picking the child whose label matches according to match, and returns
// the last matched node. It returns false if path is empty or any step
// fails to find a matching child.
func FindPath[L any, P any](start Node[L], path []P, match func(probe P, label L) bool) (Node[L], bool) {
	if len(path) == 0 {
		return Node[L]{}, false
	}
	current := start
	for _, probe := range path {
		found := false
		child, ok := current.FirstChild()
		for ok {
			if label, has := child.Label(); has && match(probe, label) {
				current = child
				found = true
				break
			}
			child, ok = child.NextSibling()
		}
		if !found {
			return Node[L]{}, false
		}
	}
	return current, true
}
