package bitwise

import "testing"

func TestBitStringPushGet(t *testing.T) {
	bs := NewBitString[uint64]()
	pattern := []bool{true, false, true, true, false, false, true}
	for _, b := range pattern {
		bs.Push(b)
	}
	if bs.Len() != Index(len(pattern)) {
		t.Fatalf("len = %d", bs.Len())
	}
	for i, want := range pattern {
		got, ok := bs.Get(Index(i))
		if !ok || got != want {
			t.Fatalf("Get(%d) = (%v,%v), want %v", i, got, ok, want)
		}
	}
	if _, ok := bs.Get(bs.Len()); ok {
		t.Fatal("Get past the end should report false")
	}
}

func TestBitStringRankSelectAcrossBlocks(t *testing.T) {
	bs := NewBitString[uint64]()
	for i := 0; i < 200; i++ {
		bs.Push(i%3 == 0)
	}
	var wantRank Rank
	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			wantRank++
		}
		if got := bs.Rank1(Index(i)); got != wantRank {
			t.Fatalf("Rank1(%d) = %d, want %d", i, got, wantRank)
		}
	}
	at, ok := bs.Select1(1)
	if !ok || at != 0 {
		t.Fatalf("Select1(1) = (%d,%v)", at, ok)
	}
	at, ok = bs.Select1(wantRank)
	if !ok || at != 198 {
		t.Fatalf("Select1(%d) = (%d,%v), want 198", wantRank, at, ok)
	}
}

func TestBitStringSet(t *testing.T) {
	bs := NewBitString[uint64]()
	for i := 0; i < 10; i++ {
		bs.Push(false)
	}
	bs.Set(3, true)
	for i := 0; i < 10; i++ {
		got, _ := bs.Get(Index(i))
		want := i == 3
		if got != want {
			t.Fatalf("Get(%d) = %v after Set(3,true), want %v", i, got, want)
		}
	}
	bs.Set(3, false)
	if got, _ := bs.Get(3); got {
		t.Fatal("Set(3,false) should clear the bit")
	}
}

func TestBitStringResizeGrowAndShrink(t *testing.T) {
	bs := NewBitString[uint64]()
	for i := 0; i < 5; i++ {
		bs.Push(true)
	}
	bs.Resize(130)
	if bs.Len() != 130 {
		t.Fatalf("Len() = %d, want 130", bs.Len())
	}
	for i := 0; i < 5; i++ {
		if got, _ := bs.Get(Index(i)); !got {
			t.Fatalf("Get(%d) = false after grow, want original bit preserved", i)
		}
	}
	for i := 5; i < 130; i++ {
		if got, _ := bs.Get(Index(i)); got {
			t.Fatalf("Get(%d) = true, want zero-filled after grow", i)
		}
	}
	bs.Resize(3)
	if bs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", bs.Len())
	}
	if _, ok := bs.Get(3); ok {
		t.Fatal("Get past a shrunk length should report false")
	}
	bs.Resize(5)
	for i := 3; i < 5; i++ {
		if got, _ := bs.Get(Index(i)); got {
			t.Fatalf("Get(%d) = true, want zero-filled after regrow past a shrink", i)
		}
	}
}

func TestBitStringExternalByteSize(t *testing.T) {
	bs := NewBitString[uint64]()
	for i := 0; i < 65; i++ {
		bs.Push(true)
	}
	if got := bs.ExternalByteSize(); got != 16 {
		t.Fatalf("got %d, want 16 (two 8-byte blocks)", got)
	}
}
