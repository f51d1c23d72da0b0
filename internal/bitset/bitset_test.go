package bitset

import "testing"

func TestSetGet(t *testing.T) {
	b := NewZeros(6)
	b.Set(1, true)
	b.Set(2, false)
	b.Toggle(3)

	want := []bool{false, true, false, true, false, false}
	for i, w := range want {
		if got := b.Get(i); got != w {
			t.Errorf("bit %d = %v, want %v", i, got, w)
		}
	}
}

func TestOnesAndToggle(t *testing.T) {
	b := NewOnes(6)
	b.Toggle(3)
	b.Set(1, true)
	b.Set(2, false)

	want := []bool{true, true, false, false, true, true}
	for i, w := range want {
		if got := b.Get(i); got != w {
			t.Errorf("bit %d = %v, want %v", i, got, w)
		}
	}
}

func TestTailMasking(t *testing.T) {
	for _, n := range []int{31, 32, 33, 34} {
		b := NewOnes(n)
		for i := 0; i < n; i++ {
			if !b.Get(i) {
				t.Fatalf("NewOnes(%d): bit %d should be set", n, i)
			}
		}
		if rem := n % wordBits; rem != 0 && b.words[len(b.words)-1]>>uint(rem) != 0 {
			t.Fatalf("NewOnes(%d): bits beyond the length are set in the last word", n)
		}
	}
}

func TestNegateAcrossWordBoundary(t *testing.T) {
	for _, idx := range []int{31, 32, 33} {
		b := NewZeros(34)
		b.Toggle(idx)
		for i := 0; i < 34; i++ {
			want := i == idx
			if got := b.Get(i); got != want {
				t.Errorf("negate(%d): bit %d = %v, want %v", idx, i, got, want)
			}
		}
	}
}

func TestSetFalseClearsBit(t *testing.T) {
	b := NewZeros(6)
	b.Set(1, true)
	b.Set(1, false)
	for i := 0; i < 6; i++ {
		if b.Get(i) {
			t.Errorf("bit %d should be clear", i)
		}
	}
}

func TestXorFrom(t *testing.T) {
	a := NewZeros(8)
	a.Set(0, true)
	a.Set(3, true)
	b := NewZeros(8)
	b.Set(3, true)
	b.Set(5, true)

	a.XorFrom(b)
	want := map[int]bool{0: true, 5: true}
	for i := 0; i < 8; i++ {
		if got, expect := a.Get(i), want[i]; got != expect {
			t.Errorf("bit %d = %v, want %v", i, got, expect)
		}
	}
}

func TestXorFromLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	NewZeros(4).XorFrom(NewZeros(5))
}

func TestOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range index")
		}
	}()
	NewZeros(4).Get(10)
}

func TestIndices(t *testing.T) {
	b := NewZeros(41)
	for _, i := range []int{0, 3, 21, 31, 32, 33} {
		b.Toggle(i)
	}
	got := b.Indices()
	want := []int{0, 3, 21, 31, 32, 33}
	if len(got) != len(want) {
		t.Fatalf("Indices() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Indices() = %v, want %v", got, want)
		}
	}
}

func TestIndicesAllOnes(t *testing.T) {
	b := NewOnes(3)
	got := b.Indices()
	want := []int{0, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Indices() = %v, want %v", got, want)
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	a := NewZeros(10)
	a.Set(4, true)
	clone := a.Clone()
	clone.Set(4, false)
	clone.Set(5, true)

	if !a.Get(4) || a.Get(5) {
		t.Fatal("mutating clone affected original")
	}
}

func TestEqual(t *testing.T) {
	a := NewZeros(10)
	b := NewZeros(10)
	a.Set(3, true)
	if a.Equal(b) {
		t.Fatal("expected Sets to differ")
	}
	b.Set(3, true)
	if !a.Equal(b) {
		t.Fatal("expected Sets to be equal")
	}
}
