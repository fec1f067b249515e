package main

// splaySet is a minimal top-down splay-tree set of strings, used by the
// "splayset" CLI mode as a baseline comparison for the succinct trie. No
// splay or self-balancing tree library appears anywhere in the retrieved
// example pack, so this is implemented directly against the standard
// library, the same way the pack implements other data structures it has
// no ecosystem dependency for.
type splaySet struct {
	root *splayNode
	size int
}

type splayNode struct {
	value       string
	left, right *splayNode
}

func newSplaySet() *splaySet {
	return &splaySet{}
}

// Insert adds value to the set if not already present, and reports
// whether the set grew.
func (s *splaySet) Insert(value string) bool {
	if s.root == nil {
		s.root = &splayNode{value: value}
		s.size++
		return true
	}
	s.root = splay(s.root, value)
	switch {
	case s.root.value == value:
		return false
	case value < s.root.value:
		n := &splayNode{value: value, right: s.root}
		n.left, s.root.left = s.root.left, nil
		s.root = n
	default:
		n := &splayNode{value: value, left: s.root}
		n.right, s.root.right = s.root.right, nil
		s.root = n
	}
	s.size++
	return true
}

// Len returns the number of distinct values inserted.
func (s *splaySet) Len() int { return s.size }

// splay brings the node closest to value to the root via repeated
// zig/zig-zig rotations (top-down, Sleator-Tarjan style).
func splay(root *splayNode, value string) *splayNode {
	if root == nil {
		return nil
	}
	var header splayNode
	left, right := &header, &header
	n := root
	for {
		switch {
		case value < n.value:
			if n.left == nil {
				goto done
			}
			if value < n.left.value {
				n = rotateRight(n)
				if n.left == nil {
					goto done
				}
			}
			right.left = n
			right = n
			n = n.left
		case value > n.value:
			if n.right == nil {
				goto done
			}
			if value > n.right.value {
				n = rotateLeft(n)
				if n.right == nil {
					goto done
				}
			}
			left.right = n
			left = n
			n = n.right
		default:
			goto done
		}
	}
done:
	left.right = n.left
	right.left = n.right
	n.left = header.right
	n.right = header.left
	return n
}

func rotateLeft(n *splayNode) *splayNode {
	r := n.right
	n.right = r.left
	r.left = n
	return r
}

func rotateRight(n *splayNode) *splayNode {
	l := n.left
	n.left = l.right
	l.right = n
	return l
}
