package strie

// treeTraversalFrame is one pending (edge, level, nth_child) triple in the
// explicit DFS stack described in §4.8.
type treeTraversalFrame[L any] struct {
	node Node[L]
	level,
	nth int
}

// TreeTraversal is a Source[L] adapter that re-derives a depth-first
// pre-order visit sequence from any tree node, using an explicit stack
// rather than recursion.
type TreeTraversal[L any] struct {
	stack []treeTraversalFrame[L]
}

// NewTreeTraversal returns a TreeTraversal starting at root's first child
// (root itself, the virtual root, is never visited).
func NewTreeTraversal[L any](root Node[L]) *TreeTraversal[L] {
	t := &TreeTraversal[L]{}
	if child, ok := root.FirstChild(); ok {
		t.stack = append(t.stack, treeTraversalFrame[L]{node: child, level: 0, nth: 0})
	}
	return t
}

// Next implements Source[L].
func (t *TreeTraversal[L]) Next() (VisitNode[L], bool) {
	if len(t.stack) == 0 {
		var zero VisitNode[L]
		return zero, false
	}
	top := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]

	if sib, ok := top.node.NextSibling(); ok {
		t.stack = append(t.stack, treeTraversalFrame[L]{node: sib, level: top.level, nth: top.nth + 1})
	}
	if child, ok := top.node.FirstChild(); ok {
		t.stack = append(t.stack, treeTraversalFrame[L]{node: child, level: top.level + 1, nth: 0})
	}

	label, _ := top.node.Label()
	return VisitNode[L]{Label: label, Level: top.level, NthChild: top.nth}, true
}

// PatriciaLabel is the label type PatriciaTreeTraversal emits: a
// concatenated run of letters compressed from a unary chain (one or more
// single-child, non-word-terminating nodes followed by the node that ends
// the chain), plus that final node's end-of-word flag.
type PatriciaLabel struct {
	Path      []byte
	EndOfWord bool
}

// PatriciaTreeTraversal is the same traversal as TreeTraversal but
// coalesces a unary chain of single-child edges into one visit, the way a
// Patricia (radix) trie compresses non-branching runs (§4.8, "optional").
// A chain extends through a node only while that node has exactly one
// child and is not itself end-of-word; it stops at the first branching
// node, leaf, or end-of-word node, which is included in the emitted path.
type PatriciaTreeTraversal struct {
	stack []treeTraversalFrame[Letter]
}

// NewPatriciaTreeTraversal returns a PatriciaTreeTraversal starting at
// root's first child.
func NewPatriciaTreeTraversal(root Node[Letter]) *PatriciaTreeTraversal {
	p := &PatriciaTreeTraversal{}
	if child, ok := root.FirstChild(); ok {
		p.stack = append(p.stack, treeTraversalFrame[Letter]{node: child, level: 0, nth: 0})
	}
	return p
}

// Next implements Source[PatriciaLabel].
func (p *PatriciaTreeTraversal) Next() (VisitNode[PatriciaLabel], bool) {
	if len(p.stack) == 0 {
		var zero VisitNode[PatriciaLabel]
		return zero, false
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	var path []byte
	node := top.node
	for {
		label, _ := node.Label()
		path = append(path, label.Value)
		if label.EndOfWord {
			break
		}
		child, ok := node.FirstChild()
		if !ok {
			break
		}
		if _, hasSibling := child.NextSibling(); hasSibling {
			// node branches: stop the chain here, start a fresh one at
			// child on a later Next() call.
			break
		}
		node = child
	}

	if sib, ok := top.node.NextSibling(); ok {
		p.stack = append(p.stack, treeTraversalFrame[Letter]{node: sib, level: top.level, nth: top.nth + 1})
	}
	if child, ok := node.FirstChild(); ok {
		p.stack = append(p.stack, treeTraversalFrame[Letter]{node: child, level: top.level + 1, nth: 0})
	}

	lastLabel, _ := node.Label()
	return VisitNode[PatriciaLabel]{
		Label:    PatriciaLabel{Path: path, EndOfWord: lastLabel.EndOfWord},
		Level:    top.level,
		NthChild: top.nth,
	}, true
}
