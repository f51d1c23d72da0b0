package rng

// RepeatSeq is a deterministic "repeat-sequence" RNG that cycles
// through a caller-supplied non-empty sequence of 64-bit words. It
// makes random-branch measurements reproducible in tests: the n-th call
// to NextU32 returns the low 32 bits of seq[n % len(seq)].
//
// Grounded on original_source/src/fakerng.rs's RepeatSeqFakeRng.
type RepeatSeq struct {
	seq []uint64
	n   int
}

// NewRepeatSeq builds a RepeatSeq over seq. An empty sequence is a
// programmer error: there is nothing to repeat.
func NewRepeatSeq(seq []uint64) *RepeatSeq {
	if len(seq) == 0 {
		panic("rng: RepeatSeq requires a non-empty sequence")
	}
	cp := make([]uint64, len(seq))
	copy(cp, seq)
	return &RepeatSeq{seq: cp}
}

// NextU64 returns the next 64-bit word in the cycle.
func (r *RepeatSeq) NextU64() uint64 {
	v := r.seq[r.n%len(r.seq)]
	r.n++
	return v
}

// NextU32 returns the low 32 bits of the next 64-bit word.
func (r *RepeatSeq) NextU32() uint32 {
	return uint32(r.NextU64())
}

// FillBytes fills dst with successive 64-bit words in little-endian
// order, matching original_source/src/fakerng.rs's documented contract.
func (r *RepeatSeq) FillBytes(dst []byte) {
	for i := 0; i < len(dst); i += 8 {
		v := r.NextU64()
		for j := 0; j < 8 && i+j < len(dst); j++ {
			dst[i+j] = byte(v >> (8 * uint(j)))
		}
	}
}
