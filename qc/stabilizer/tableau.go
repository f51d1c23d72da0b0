// Package stabilizer implements the Aaronson–Gottesman CHP tableau: n
// Pauli-group stabilizer generators over n qubits, the Clifford gate
// update rules that rewrite the tableau in place, and the measurement
// algorithm (Gaussian elimination over GF(2) in the deterministic
// branch, generator multiplication plus random sampling in the
// nondeterministic branch).
//
// The phase of every generator is truncated to a single sign bit r ∈
// {0,1} rather than the full ±1/±i phase; ±i factors are not tracked
// (see Tableau's doc comment).
package stabilizer

import (
	"fmt"
	"strings"

	"github.com/kegliz/gkstab/internal/bitset"
)

// Tableau holds n commuting stabilizer generators for an n-qubit state,
// each row k represented as
//
//	(-1)^r_k · ⊗_j (X_j^{x[k][j]} · Z_j^{z[k][j]})
//
// up to a global ±i phase this core does not track. Row k's X-support
// lives in x[k], its Z-support in z[k]; sign bit k lives in sign.
type Tableau struct {
	n    int
	x    []*bitset.Set
	z    []*bitset.Set
	sign *bitset.Set
}

// New returns a Tableau for n qubits, initialized to the canonical
// |0…0⟩ stabilizer state: row k stabilizes Z_k (z-row = e_k, x-row = 0,
// sign 0).
func New(n int) *Tableau {
	t := &Tableau{
		n:    n,
		x:    make([]*bitset.Set, n),
		z:    make([]*bitset.Set, n),
		sign: bitset.NewZeros(n),
	}
	for k := 0; k < n; k++ {
		t.x[k] = bitset.NewZeros(n)
		t.z[k] = bitset.NewZeros(n)
	}
	t.Initialize()
	return t
}

// NQubits reports the number of qubits (and stabilizer generators).
func (t *Tableau) NQubits() int { return t.n }

// Initialize resets the tableau in place to the canonical |0…0⟩ state:
// every X-row cleared, every Z-row set to e_k, every sign cleared. This
// is what the INIT operation drives.
func (t *Tableau) Initialize() {
	for k := 0; k < t.n; k++ {
		t.x[k].Clear()
		t.z[k].Clear()
		t.z[k].Set(k, true)
	}
	t.sign.Clear()
}

func (t *Tableau) checkQubit(q int) {
	if q < 0 || q >= t.n {
		panic(fmt.Sprintf("stabilizer: qubit index %d out of range [0,%d)", q, t.n))
	}
}

// X applies the Pauli-X gate on qubit q to every row: if z_{k,q}=1, the
// row's sign flips (X anticommutes with Z).
func (t *Tableau) X(q int) {
	t.checkQubit(q)
	for k := 0; k < t.n; k++ {
		if t.z[k].Get(q) {
			t.sign.Toggle(k)
		}
	}
}

// Z applies the Pauli-Z gate on qubit q: sign flips wherever x_{k,q}=1.
func (t *Tableau) Z(q int) {
	t.checkQubit(q)
	for k := 0; k < t.n; k++ {
		if t.x[k].Get(q) {
			t.sign.Toggle(k)
		}
	}
}

// Y applies the Pauli-Y gate on qubit q, treated as X·Z with the
// implicit ±i factors absorbed: sign flips wherever x_{k,q} xor
// z_{k,q} = 1.
func (t *Tableau) Y(q int) {
	t.checkQubit(q)
	for k := 0; k < t.n; k++ {
		if t.x[k].Get(q) != t.z[k].Get(q) {
			t.sign.Toggle(k)
		}
	}
}

// H applies the Hadamard gate on qubit q: swaps the X and Z support at
// column q (toggling both when exactly one is set), flipping the sign
// when both were set.
func (t *Tableau) H(q int) {
	t.checkQubit(q)
	for k := 0; k < t.n; k++ {
		x := t.x[k].Get(q)
		z := t.z[k].Get(q)
		if x && z {
			t.sign.Toggle(k)
		} else if x != z {
			t.x[k].Toggle(q)
			t.z[k].Toggle(q)
		}
	}
}

// S applies the phase gate on qubit q: where x_{k,q}=1, sign flips if
// z_{k,q}=1, then z_{k,q} toggles.
func (t *Tableau) S(q int) {
	t.checkQubit(q)
	for k := 0; k < t.n; k++ {
		if t.x[k].Get(q) {
			if t.z[k].Get(q) {
				t.sign.Toggle(k)
			}
			t.z[k].Toggle(q)
		}
	}
}

// Sdg applies the inverse phase gate (S†) on qubit q: where x_{k,q}=1,
// sign flips if z_{k,q}=0, then z_{k,q} toggles.
func (t *Tableau) Sdg(q int) {
	t.checkQubit(q)
	for k := 0; k < t.n; k++ {
		if t.x[k].Get(q) {
			if !t.z[k].Get(q) {
				t.sign.Toggle(k)
			}
			t.z[k].Toggle(q)
		}
	}
}

// CX applies the controlled-NOT gate with control c and target t2,
// using the simpler sign-toggle rule (toggle iff x_c=1 ∧ z_c=1); see
// SPEC_FULL.md §9 for the Open Question this resolves.
func (t *Tableau) CX(c, t2 int) {
	t.checkQubit(c)
	t.checkQubit(t2)
	for k := 0; k < t.n; k++ {
		xc := t.x[k].Get(c)
		zc := t.z[k].Get(c)
		if xc {
			t.x[k].Toggle(t2)
			if zc {
				t.sign.Toggle(k)
			}
		}
		if t.z[k].Get(t2) {
			t.z[k].Toggle(c)
		}
	}
}

// addRowInto adds row src into row dst: XORs their X- and Z-rows, and
// toggles dst's sign iff src's sign is set. dst and src must differ.
//
// The pivot row (src) is read via bitset.Set.XorFrom, which never
// mutates its argument, so there is no self-reference hazard to guard
// against here — unlike the Rust original, which needed an unsafe
// pointer cast purely to satisfy its borrow checker across two indices
// of the same Vec.
func (t *Tableau) addRowInto(dst, src int) {
	if dst == src {
		panic("stabilizer: addRowInto requires dst != src")
	}
	t.x[dst].XorFrom(t.x[src])
	t.z[dst].XorFrom(t.z[src])
	if t.sign.Get(src) {
		t.sign.Toggle(dst)
	}
}

// XBit reports row k's X-support bit at column q, for read-only
// inspection (e.g. by qc/renderer).
func (t *Tableau) XBit(k, q int) bool { return t.x[k].Get(q) }

// ZBit reports row k's Z-support bit at column q.
func (t *Tableau) ZBit(k, q int) bool { return t.z[k].Get(q) }

// Sign reports row k's sign bit.
func (t *Tableau) Sign(k int) bool { return t.sign.Get(k) }

// DumpPrint returns a diagnostic, human-readable dump of X, Z, the sign
// vector, in the same spirit as the reference implementation's
// dump_print — layout is unspecified and meant for debugging only.
func (t *Tableau) DumpPrint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "xs:\n")
	for k := 0; k < t.n; k++ {
		fmt.Fprintf(&b, "  [%2d] %s\n", k, t.x[k].String())
	}
	fmt.Fprintf(&b, "zs:\n")
	for k := 0; k < t.n; k++ {
		fmt.Fprintf(&b, "  [%2d] %s\n", k, t.z[k].String())
	}
	fmt.Fprintf(&b, "sgns: %s\n", t.sign.String())
	return b.String()
}
