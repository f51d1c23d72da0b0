package stabilizer

import (
	"github.com/kegliz/gkstab/internal/bitset"
	"github.com/kegliz/gkstab/qc/rng"
)

// Measure performs a single-qubit computational-basis measurement of
// qubit q, collapsing the tableau as required, and returns the outcome
// bit. src supplies the one uniform random bit consumed by the
// nondeterministic branch; it is never touched in the deterministic
// branch.
//
// Grounded on original_source/src/lib.rs's free function measure.
func (t *Tableau) Measure(q int, src rng.Source) bool {
	t.checkQubit(q)

	var noncommuting []int
	for k := 0; k < t.n; k++ {
		if t.x[k].Get(q) {
			noncommuting = append(noncommuting, k)
		}
	}

	if len(noncommuting) == 0 {
		return t.measureDeterministic(q)
	}
	return t.measureRandom(q, noncommuting, src)
}

// measureDeterministic handles Case A of spec.md §4.3: Z_q already
// commutes with every generator, so the outcome is forced. Two
// reduced-row-echelon passes over GF(2) isolate the single generator
// equal to ±Z_q; its sign is the outcome.
func (t *Tableau) measureDeterministic(q int) bool {
	indices := make([]int, t.n)
	for i := range indices {
		indices[i] = i
	}

	// Pass 1: clear X-support column by column.
	for col := 0; col < t.n; col++ {
		t.reduceColumn(&indices, col, t.x)
	}
	// Pass 2: clear Z-support column by column, except at q itself
	// (the surviving generator's Z-support must stay confined to q).
	for col := 0; col < t.n; col++ {
		if col == q {
			continue
		}
		t.reduceColumn(&indices, col, t.z)
	}

	if len(indices) != 1 {
		panic("stabilizer: measurement post-condition violated, expected exactly one pivot row")
	}
	return t.sign.Get(indices[0])
}

// reduceColumn finds the rows (among the live indices) with a set bit
// in the given column of rows (t.x or t.z), adds the first such row
// (the pivot) into every other one to clear that bit there, and
// removes the pivot from the live index set (unordered swap-remove).
func (t *Tableau) reduceColumn(indices *[]int, col int, rows []*bitset.Set) {
	live := *indices
	var positions []int
	for pos, rowIdx := range live {
		if rows[rowIdx].Get(col) {
			positions = append(positions, pos)
		}
	}
	if len(positions) == 0 {
		return
	}

	pivotPos := positions[0]
	pivotRow := live[pivotPos]
	for _, pos := range positions[1:] {
		t.addRowInto(live[pos], pivotRow)
	}

	// Unordered swap-remove of the pivot from the live index set.
	last := len(live) - 1
	live[pivotPos] = live[last]
	*indices = live[:last]
}

// measureRandom handles Case B of spec.md §4.3: at least one generator
// anticommutes with Z_q. The lowest-indexed such generator (the pivot)
// is first added into every other anticommuting generator, so that the
// pivot is the only one left anticommuting with Z_q; the pivot is then
// collapsed in place to ±Z_q with a freshly sampled sign.
func (t *Tableau) measureRandom(q int, noncommuting []int, src rng.Source) bool {
	pivot := noncommuting[0]
	for _, k := range noncommuting[1:] {
		t.addRowInto(k, pivot)
	}

	outcome := src.NextU32()&1 != 0
	t.x[pivot].Clear()
	t.z[pivot].Clear()
	t.z[pivot].Toggle(q)
	t.sign.Set(pivot, outcome)
	return outcome
}
