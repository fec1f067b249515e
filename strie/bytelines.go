package strie

import (
	"bufio"
	"io"
)

// ByteLines is a Source[Letter] adapter over an ascending, deduplicated
// stream of byte-string lines: it walks the trie the sorted lines induce,
// emitting one visit per newly-seen suffix character and flagging the
// last character of each line end-of-word (§4.8).
type ByteLines struct {
	scanner  *bufio.Scanner
	prevLine []byte
	counters []int // per-level nth_child counters
	pending  []byte
	pendDone int // index into pending already turned into visits
	err      error
}

// NewByteLines returns a ByteLines reading newline-terminated lines from r.
func NewByteLines(r io.Reader) *ByteLines {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &ByteLines{scanner: scanner}
}

// Err returns the first error encountered while scanning, if any.
func (bl *ByteLines) Err() error {
	if bl.err != nil {
		return bl.err
	}
	return bl.scanner.Err()
}

// Next implements Source[Letter].
func (bl *ByteLines) Next() (VisitNode[Letter], bool) {
	for {
		if bl.pendDone < len(bl.pending) {
			level := bl.pendDone
			c := bl.pending[level]
			if level >= len(bl.counters) {
				bl.counters = append(bl.counters, make([]int, level-len(bl.counters)+1)...)
			}
			nth := bl.counters[level]
			bl.counters[level]++
			bl.pendDone++
			end := bl.pendDone == len(bl.pending)
			return VisitNode[Letter]{
				Label:    Letter{Value: c, EndOfWord: end},
				Level:    level,
				NthChild: nth,
			}, true
		}
		if !bl.scanner.Scan() {
			return VisitNode[Letter]{}, false
		}
		line := append([]byte(nil), bl.scanner.Bytes()...)
		common := commonPrefixLen(bl.prevLine, line)
		if common+1 < len(bl.counters) {
			bl.counters = bl.counters[:common+1]
		}
		bl.pending = line
		bl.pendDone = common
		bl.prevLine = line
	}
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
