// Package strie implements a succinct, ordered, immutable string trie: a
// balanced-parentheses tree over byte labels, built once from a sorted
// stream of keys and then queried read-only.
package strie

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Key is a byte-string trie key. Use FromBytes or FromString to build one.
type Key []byte

// FromBytes returns a copy of b as a Key. A nil b yields an empty
// (non-nil) Key.
func FromBytes(b []byte) Key {
	if b == nil {
		return []byte{}
	}
	kb := make([]byte, len(b))
	copy(kb, b)
	return Key(kb)
}

// FromString returns a Key built from the UTF-8 encoding of s after
// normalizing s to Unicode NFC, so that precomposed and combining-mark byte
// sequences that represent the same text collapse to the same trie path.
func FromString(s string) Key {
	s = norm.NFC.String(s)
	return FromBytes([]byte(s))
}

// Bytes returns a copy of the Key's contents.
func (k Key) Bytes() []byte {
	if k == nil {
		return nil
	}
	b := make([]byte, len(k))
	copy(b, k)
	return b
}

// Clone returns an independent copy of the Key. A nil Key clones to nil.
func (k Key) Clone() Key {
	if k == nil {
		return nil
	}
	kb := make([]byte, len(k))
	copy(kb, k)
	return Key(kb)
}

// String returns the Key as uppercase hex byte tuples, e.g. "[01,AB,00]".
func (k Key) String() string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether k and other have the same contents.
func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}

// LessThan reports whether k is lexicographically less than other.
func (k Key) LessThan(other Key) bool {
	for i := 0; i < len(k) && i < len(other); i++ {
		if k[i] < other[i] {
			return true
		} else if k[i] > other[i] {
			return false
		}
	}
	return len(k) < len(other)
}

// IsEmpty reports whether the Key is empty or nil.
func (k Key) IsEmpty() bool { return len(k) == 0 }

// LongestCommonPrefix returns the length of the longest common prefix of k
// and other.
func (k Key) LongestCommonPrefix(other Key) int {
	n := len(k)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if k[i] != other[i] {
			return i
		}
	}
	return n
}
