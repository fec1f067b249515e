package strie

import "github.com/gostrie/strie/bitwise"

// VisitNode is one step of a depth-first pre-order traversal: a label, its
// level (root is 0), and its index among its parent's children.
type VisitNode[L any] struct {
	Label    L
	Level    int
	NthChild int
}

// Source produces a depth-first pre-order traversal one visit at a time.
// Next returns (visit, true) while visits remain and (zero, false) once
// exhausted. Implementations are not required to detect malformed
// traversals (§7); a Source's only contract is Next's exhaustion signal.
type Source[L any] interface {
	Next() (VisitNode[L], bool)
}

// Builder consumes a Source and incrementally appends opens/closes to a
// parentheses bit string and labels to a Labels store (§4.7). The
// parentheses string starts with a virtual-root OPEN, popped by Finish.
type Builder[L any] struct {
	bits      *bitwise.BitString[uint64]
	labels    Labels[L]
	source    Source[L]
	prevLevel bitwise.Index
	finished  bool
}

// NewBuilder returns a Builder reading visits from source and storing
// labels in the given Labels implementation.
func NewBuilder[L any](source Source[L], labels Labels[L]) *Builder[L] {
	b := &Builder[L]{
		bits:   bitwise.NewBitString[uint64](),
		labels: labels,
		source: source,
	}
	b.bits.Push(true) // virtual root OPEN
	return b
}

// BuildOnce processes exactly one visit from the source and reports
// whether more visits remain to be processed. Once it returns false the
// builder has consumed every visit but has not yet been finalized; call
// Finish to obtain the Tree.
func (b *Builder[L]) BuildOnce() bool {
	visit, ok := b.source.Next()
	if !ok {
		return false
	}
	currLevel := bitwise.Index(visit.Level + 1) // account for virtual root
	closes := (b.prevLevel + 1) - currLevel
	for i := bitwise.Index(0); i < closes; i++ {
		b.bits.Push(false)
	}
	b.bits.Push(true)
	b.labels.Push(visit.Label)
	b.prevLevel = currLevel
	return true
}

// BuildAll drains the source by repeatedly calling BuildOnce, then
// finalizes the tree.
func (b *Builder[L]) BuildAll() *Tree[L] {
	for b.BuildOnce() {
	}
	return b.Finish()
}

// Finish closes out every still-open node plus the virtual root, shrinks
// the label store, and computes the pioneer family over the finished
// parentheses string. Calling Finish again after the first call closes
// nothing more; it builds a new, equivalent Tree over the same parentheses
// and labels.
func (b *Builder[L]) Finish() *Tree[L] {
	if !b.finished {
		for i := bitwise.Index(0); i < b.prevLevel; i++ {
			b.bits.Push(false)
		}
		b.bits.Push(false) // close the virtual root
		b.labels.ShrinkToFit()
		b.finished = true
	}
	return NewTree[L](bitwise.NewParens(b.bits), b.labels)
}
