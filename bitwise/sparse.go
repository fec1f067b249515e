package bitwise

import "iter"

// Three-level bucket sizes for the sparse-ones dictionary: SMALL covers one
// byte's worth of positions (256), MIDDLE covers 8 SMALL buckets (2048), and
// LARGE covers 32 MIDDLE buckets (65536). Mirrors sparse_one_nnd.rs exactly.
const (
	smallSize  = 256
	middleSize = smallSize * 8
	middleCount = 32
	largeSize  = middleSize * middleCount
)

type sparseBase struct {
	smallIndex uint32
	rank       uint32
}

// SparseOneNND is a succinct rank/select dictionary over a bit string whose
// 1-bits are sparse: it stores, per 256-bit block, a count byte followed by
// each set bit's offset from the start of that block in a byte, with middle/large summary
// tables giving O(1)-ish rank and O(log bucket-count) select.
type SparseOneNND struct {
	smalls  []byte
	middles []sparseBase
	larges  []sparseBase
}

// NewSparseOneNND builds a dictionary from the positions of the 1-bits in a
// bit string of the given total length, visited in ascending order.
func NewSparseOneNND(length Index, ones iter.Seq[Index]) *SparseOneNND {
	var larges, middles []sparseBase
	smalls := make([]byte, 0)

	var smallCountIndex int
	var rank Rank
	var prevIndex Index
	middlePrev := sparseBase{}

	i := Index(0)
	emit := func(isOne bool) {
		smallBase := len(smalls)
		if i%smallSize == 0 {
			smallCountIndex = len(smalls)
			smalls = append(smalls, 0)
			prevIndex = i
		}
		if i%largeSize == 0 {
			largePrev := sparseBase{smallIndex: uint32(smallBase), rank: uint32(rank)}
			middlePrev = largePrev
			larges = append(larges, largePrev)
		}
		if i%middleSize == 0 {
			middles = append(middles, sparseBase{
				smallIndex: uint32(smallBase) - middlePrev.smallIndex,
				rank:       uint32(rank) - middlePrev.rank,
			})
		}
		if isOne {
			rank++
			smalls = append(smalls, byte(i-prevIndex))
			smalls[smallCountIndex]++
		}
	}

	if ones != nil {
		ones(func(pos Index) bool {
			for ; i < pos; i++ {
				emit(false)
			}
			emit(true)
			i++
			return true
		})
	}
	for ; i < length; i++ {
		emit(false)
	}

	return &SparseOneNND{smalls: smalls, middles: middles, larges: larges}
}

// Rank1 returns the number of 1-bits in positions 0..=index.
func (s *SparseOneNND) Rank1(index Index) Rank {
	largeIndex := int(index / largeSize)
	largeBase := s.larges[largeIndex]

	middleIndex := int(index / middleSize)
	middleBase := s.middles[middleIndex]
	middleOffset := Index(middleIndex) * middleSize

	smallIndex := int(largeBase.smallIndex) + int(middleBase.smallIndex)
	currRank := Rank(largeBase.rank) + Rank(middleBase.rank)
	currIndex := middleOffset

	for currIndex+smallSize <= index {
		currRank += Rank(s.smalls[smallIndex])
		smallIndex += int(s.smalls[smallIndex]) + 1
		currIndex += smallSize
	}

	count := int(s.smalls[smallIndex])
	delta := byte(index - currIndex)
	deltas := s.smalls[smallIndex+1:]
	if count > len(deltas) {
		count = len(deltas)
	}
	var extra Rank
	for _, d := range deltas[:count] {
		if d <= delta {
			extra++
		} else {
			break
		}
	}
	return currRank + extra
}

// Select1 returns the index of the rank-th (1-based) set bit, or
// (0, false) if fewer than rank bits are set.
func (s *SparseOneNND) Select1(rank Rank) (Index, bool) {
	if rank == 0 {
		return 0, false
	}
	rank--

	li := searchBase(s.larges, rank)
	largeBase := s.larges[li]
	largeIndex := Index(li) * largeSize
	middleRank := rank - Rank(largeBase.rank)

	middleStart := li * middleCount
	middleEnd := middleStart + middleCount
	if middleEnd > len(s.middles) {
		middleEnd = len(s.middles)
	}
	middles := s.middles[middleStart:middleEnd]
	mi := searchBase(middles, middleRank)
	middleBase := middles[mi]
	middleIndex := Index(mi) * middleSize

	smallIndex := int(largeBase.smallIndex) + int(middleBase.smallIndex)
	currRank := Rank(largeBase.rank) + Rank(middleBase.rank)
	currIndex := largeIndex + middleIndex

	for currRank+Rank(s.smalls[smallIndex]) <= rank {
		currRank += Rank(s.smalls[smallIndex])
		currIndex += smallSize
		smallIndex += int(s.smalls[smallIndex]) + 1
		if smallIndex >= len(s.smalls) {
			return 0, false
		}
	}

	delta := int(rank - currRank)
	currIndex += Index(s.smalls[smallIndex+delta+1])
	return currIndex, true
}

// searchBase returns the index of the last entry whose rank is <= target
// (a "predecessor" binary search, mirroring Rust's
// binary_search_by_key().unwrap_or_else(|i| i - 1)).
func searchBase(bases []sparseBase, target Rank) int {
	lo, hi := 0, len(bases)
	for lo < hi {
		mid := (lo + hi) / 2
		if Rank(bases[mid].rank) <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo - 1
}

// Pred1 returns the largest j <= index with a set bit, computed from
// Rank1/Select1 since sparse dictionaries have no cheaper direct formula.
func (s *SparseOneNND) Pred1(index Index) (Index, bool) {
	return s.Select1(s.Rank1(index))
}

// Succ1 returns the smallest j >= index with a set bit.
func (s *SparseOneNND) Succ1(index Index) (Index, bool) {
	rank := s.Rank1(index)
	if at, ok := s.Select1(rank); ok && at == index {
		return index, true
	}
	return s.Select1(rank + 1)
}

// ExternalByteSize returns the heap footprint of the three summary tables.
func (s *SparseOneNND) ExternalByteSize() uint64 {
	const baseSize = 8 // two uint32 fields
	return uint64(len(s.smalls)) +
		uint64(len(s.middles))*baseSize +
		uint64(len(s.larges))*baseSize
}
