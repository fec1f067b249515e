package bitwise

// blockSize is the word width the pioneer decomposition operates over: a
// parenthesis pair is "local" when both its open and close fall in the same
// 64-bit block, and "far" otherwise.
const blockSize Index = 64

// Parens indexes a balanced-parentheses bit string (true = open, false =
// close) for O(1)-ish GetClose queries: most pairs resolve with a single
// in-word GetClose call; pairs whose open and close fall in different
// 64-bit blocks ("far" pairs) are resolved via a recursively compressed
// pioneer family, following the classic pioneer-parentheses construction.
type Parens struct {
	bits     *BitString[uint64]
	pioneers *pioneerFamily
}

// NewParens builds the pioneer index over bits. Building is skipped (and
// GetClose always takes the in-word fast path) when bits fits in a single
// block.
func NewParens(bits *BitString[uint64]) *Parens {
	var pf *pioneerFamily
	if bits.Len() > blockSize {
		pf = newPioneerFamily(bits)
	}
	return &Parens{bits: bits, pioneers: pf}
}

// ExternalByteSize returns the heap footprint of the underlying bit string
// plus the full pioneer chain, if one was built.
func (p *Parens) ExternalByteSize() uint64 {
	size := p.bits.ExternalByteSize()
	if p.pioneers != nil {
		size += p.pioneers.externalByteSize()
	}
	return size
}

// Get returns the bit at index.
func (p *Parens) Get(index Index) (bool, bool) {
	return p.bits.Get(index)
}

// GetClose returns the position of the close matching the open at index.
func (p *Parens) GetClose(index Index) (Index, bool) {
	base := index / blockSize
	offset := index % blockSize
	if int(base) >= len(p.bits.Blocks()) {
		return 0, false
	}
	block := p.bits.Blocks()[base]
	if i, ok := GetClose(block, offset); ok {
		return base*blockSize + i, true
	}

	pf := p.pioneers
	openPioneer, ok := pf.pred(index)
	if !ok {
		return 0, false
	}
	openBlock := openPioneer / blockSize

	var level Index
	if openBlock == base {
		level = RelativeLevel(block, openPioneer%blockSize, offset)
	} else {
		// The open pioneer's block and the base block are not adjacent in
		// general; only the excess contributed by each of those two blocks
		// is needed, since every block strictly between them is fully
		// covered by the pioneer pair and contributes net zero.
		nextBlock := p.bits.Blocks()[openBlock]
		level = RelativeLevel(nextBlock, openPioneer%blockSize, blockSize-1) +
			RelativeLevel(block, 0, offset)
	}

	closePioneer := pf.getClose(openPioneer)
	closeBlockIdx := closePioneer / blockSize
	blocks := p.bits.Blocks()
	var closeBlock uint64
	if int(closeBlockIdx) < len(blocks) {
		closeBlock = blocks[closeBlockIdx]
	} else {
		return linearScanClose(p.bits, index)
	}

	localClose := FarChild(closeBlock, closePioneer%blockSize, level)
	return closeBlockIdx*blockSize + localClose, true
}

// linearScanClose is the degenerate fallback for a pair whose close falls
// past the last full block (a final word made of only opens).
func linearScanClose(bits *BitString[uint64], index Index) (Index, bool) {
	var level int64
	for i := index + 1; i < bits.Len(); i++ {
		b, _ := bits.Get(i)
		if b {
			level++
		} else if level == 0 {
			return i, true
		} else {
			level--
		}
	}
	return 0, false
}

// pioneerFamily recursively compresses the far pairs of a parentheses
// string into a smaller balanced-parentheses string plus a sparse-ones
// dictionary locating them in the original.
type pioneerFamily struct {
	nnd    *SparseOneNND
	parens *Parens
}

func newPioneerFamily(bits *BitString[uint64]) *pioneerFamily {
	flags, parens := extractPioneers(bits)
	return &pioneerFamily{
		nnd:    NewSparseOneNND(flags.Len(), flags.onesSeq()),
		parens: NewParens(parens),
	}
}

func (pf *pioneerFamily) externalByteSize() uint64 {
	return pf.nnd.ExternalByteSize() + pf.parens.ExternalByteSize()
}

func (pf *pioneerFamily) pred(index Index) (Index, bool) {
	return pf.nnd.Pred1(index)
}

func (pf *pioneerFamily) getClose(index Index) Index {
	rank := pf.nnd.Rank1(index)
	close, ok := pf.parens.GetClose(rank - 1)
	if !ok {
		panic("bitwise: pioneer family lost a closing bracket")
	}
	at, ok := pf.nnd.Select1(close + 1)
	if !ok {
		panic("bitwise: pioneer family select1 failed for a known rank")
	}
	return at
}

// extractPioneers walks bits once with an explicit open-bracket stack,
// classifying every close as local (open and close share a block) or far.
// Among far pairs it keeps only "pioneers": taking far pairs in the order
// their closes appear, a pair is kept when the next far pair's open or close
// falls in a different block than its own, and the last far pair is always
// kept. A string with no far pair yields no pioneers. The kept positions are flagged in
// a same-length bit string; the bits at those positions, in order, form the
// compressed parenthesis string passed to the recursive Parens.
func extractPioneers(bits *BitString[uint64]) (*BitString[uint64], *BitString[uint64]) {
	block := func(i Index) Index { return i / blockSize }

	var stack []Index
	flags := NewBitStringWithCapacity[uint64](bits.Len())
	for i := Index(0); i < bits.Len(); i++ {
		flags.Push(false)
	}

	type pair struct{ open, close Index }
	var lastFar *pair

	for i := Index(0); i < bits.Len(); i++ {
		b, _ := bits.Get(i)
		if b {
			stack = append(stack, i)
			continue
		}
		open := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		closeIdx := i

		if block(open) == block(closeIdx) {
			continue
		}

		if lastFar != nil {
			if block(lastFar.open) != block(open) || block(lastFar.close) != block(closeIdx) {
				flags.Set(lastFar.open, true)
				flags.Set(lastFar.close, true)
			}
		}
		lastFar = &pair{open: open, close: closeIdx}
	}

	if lastFar != nil {
		flags.Set(lastFar.open, true)
		flags.Set(lastFar.close, true)
	}

	parens := NewBitStringWithCapacity[uint64](flags.Len())
	for i := Index(0); i < bits.Len(); i++ {
		f, _ := flags.Get(i)
		if !f {
			continue
		}
		bit, _ := bits.Get(i)
		parens.Push(bit)
	}

	return flags, parens
}

// onesSeq yields the positions of the set bits, ascending.
func (b *BitString[N]) onesSeq() func(yield func(Index) bool) {
	return func(yield func(Index) bool) {
		for i := Index(0); i < b.length; i++ {
			if v, _ := b.Get(i); v {
				if !yield(i) {
					return
				}
			}
		}
	}
}
