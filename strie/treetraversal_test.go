package strie

import "testing"

func drainTreeTraversal(trav Source[Letter]) []VisitNode[Letter] {
	var out []VisitNode[Letter]
	for {
		v, ok := trav.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestTreeTraversalVisitOrder(t *testing.T) {
	tree := buildFromLines(t, []string{"ab", "ac"})
	trav := NewTreeTraversal[Letter](tree.Root())
	visits := drainTreeTraversal(trav)

	// a(level0,nth0) -> b(level1,nth0,eow) -> c(level1,nth1,eow)
	want := []struct {
		value    byte
		level    int
		nth      int
		eow      bool
	}{
		{'a', 0, 0, false},
		{'b', 1, 0, true},
		{'c', 1, 1, true},
	}
	if len(visits) != len(want) {
		t.Fatalf("got %d visits, want %d: %+v", len(visits), len(want), visits)
	}
	for i, w := range want {
		v := visits[i]
		if v.Label.Value != w.value || v.Level != w.level || v.NthChild != w.nth || v.Label.EndOfWord != w.eow {
			t.Fatalf("visit %d = %+v, want %+v", i, v, w)
		}
	}
}

func TestTreeTraversalRoundTripsThroughBuilder(t *testing.T) {
	tree := buildFromLines(t, []string{"aaa", "abc", "d"})
	trav := NewTreeTraversal[Letter](tree.Root())
	rebuilt := NewBuilder[Letter](trav, NewLetterStore()).BuildAll()

	if rebuilt.NodeCount() != tree.NodeCount() {
		t.Fatalf("rebuilt NODES = %d, want %d", rebuilt.NodeCount(), tree.NodeCount())
	}
	want := AllWords(tree)
	got := AllWords(rebuilt)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if string(got[i]) != string(want[i]) {
			t.Fatalf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPatriciaTreeTraversalCoalescesChains(t *testing.T) {
	// "aaa" and "abc" share the prefix "a", then branch at the second
	// letter; "d" is a single-letter word with no chain to coalesce.
	tree := buildFromLines(t, []string{"aaa", "abc", "d"})
	patricia := NewPatriciaTreeTraversal(tree.Root())

	var visits []VisitNode[PatriciaLabel]
	for {
		v, ok := patricia.Next()
		if !ok {
			break
		}
		visits = append(visits, v)
	}

	if len(visits) != 4 {
		t.Fatalf("got %d patricia visits, want 4: %+v", len(visits), visits)
	}
	paths := make(map[string]bool)
	for _, v := range visits {
		paths[string(v.Label.Path)] = v.Label.EndOfWord
	}
	wantPaths := map[string]bool{"a": false, "aa": true, "bc": true, "d": true}
	for path, eow := range wantPaths {
		if got, ok := paths[path]; !ok || got != eow {
			t.Fatalf("paths = %+v, missing or wrong %q", paths, path)
		}
	}
}

func TestPatriciaTreeTraversalSingleChain(t *testing.T) {
	// One word, no branches: the whole thing coalesces into a single visit.
	tree := buildFromLines(t, []string{"hello"})
	patricia := NewPatriciaTreeTraversal(tree.Root())

	v, ok := patricia.Next()
	if !ok {
		t.Fatal("expected one visit")
	}
	if string(v.Label.Path) != "hello" || !v.Label.EndOfWord {
		t.Fatalf("got %+v", v)
	}
	if _, ok := patricia.Next(); ok {
		t.Fatal("expected exactly one visit")
	}
}
