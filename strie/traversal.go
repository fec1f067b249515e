package strie

// Words walks a letter-trie depth-first, yielding one byte slice per node
// whose label has EndOfWord set, the word being the concatenation of
// labels from the root to that node (§8 property 9, "Supplemented
// features" item 2). It uses an explicit stack of sibling lists rather
// than recursion, so it does not overflow the Go call stack on
// arbitrarily deep tries.
type Words struct {
	stack [][]Node[Letter]
	path  []byte
}

// NewWords returns a Words iterator starting at the root of tree.
func NewWords(tree *Tree[Letter]) *Words {
	w := &Words{}
	root := tree.ToOwnedRoot()
	w.stack = [][]Node[Letter]{root.Children()}
	return w
}

// Next returns the next stored word, or (nil, false) once every node has
// been visited.
func (w *Words) Next() ([]byte, bool) {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		if len(top) == 0 {
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.path) > 0 {
				w.path = w.path[:len(w.path)-1]
			}
			continue
		}
		node := top[0]
		w.stack[len(w.stack)-1] = top[1:]

		label, _ := node.Label()
		w.path = append(w.path, label.Value)
		w.stack = append(w.stack, node.Children())

		if label.EndOfWord {
			word := make([]byte, len(w.path))
			copy(word, w.path)
			return word, true
		}
	}
	return nil, false
}

// AllWords drains a Words iterator into a slice, in visit order.
func AllWords(tree *Tree[Letter]) [][]byte {
	w := NewWords(tree)
	var out [][]byte
	for {
		word, ok := w.Next()
		if !ok {
			return out
		}
		out = append(out, word)
	}
}
