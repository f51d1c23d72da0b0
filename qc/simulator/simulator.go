// Package simulator exposes the Gottesman–Knill core as an operation
// dispatcher (StabilizerSimulator, spec.md §4.4/§6) and, above it, a
// shot-batched histogram runner (Simulator) in the style of the
// teacher's qc/simulator.Simulator{Shots, Workers, Runner}.
package simulator

import (
	"fmt"

	"github.com/kegliz/gkstab/internal/bitset"
	"github.com/kegliz/gkstab/qc/ops"
	"github.com/kegliz/gkstab/qc/rng"
	"github.com/kegliz/gkstab/qc/stabilizer"
)

// StabilizerSimulator is a single-threaded Gottesman–Knill simulator
// instance. It exclusively owns its Tableau, its internal measurement
// buffer, and its RNG (spec.md §3, §5); it must never be driven from
// more than one goroutine concurrently.
type StabilizerSimulator struct {
	n        int
	tableau  *stabilizer.Tableau
	measured *bitset.Set
	rngSrc   rng.Source
}

// New constructs a StabilizerSimulator for n qubits drawing its random
// bits from src.
func New(n int, src rng.Source) *StabilizerSimulator {
	return &StabilizerSimulator{
		n:        n,
		tableau:  stabilizer.New(n),
		measured: bitset.NewZeros(n),
		rngSrc:   src,
	}
}

// NewSeeded constructs a StabilizerSimulator for n qubits using the
// default fast PRNG (rng.XorShift32) seeded from seed, for reproducible
// runs.
func NewSeeded(n int, seed uint64) *StabilizerSimulator {
	return New(n, rng.NewXorShift32(seed))
}

// NQubits reports the number of qubits this simulator was built for.
func (s *StabilizerSimulator) NQubits() int { return s.n }

// Send applies a read-only batch of operations in order. Each operation
// fully completes — including any RNG consumption and measurement-
// buffer write — before the next begins (spec.md §5).
func (s *StabilizerSimulator) Send(batch []ops.Op) {
	for _, op := range batch {
		switch op.Kind {
		case ops.OpInit:
			s.tableau.Initialize()
			s.measured.Clear()
		case ops.OpX:
			s.tableau.X(op.Q0)
		case ops.OpY:
			s.tableau.Y(op.Q0)
		case ops.OpZ:
			s.tableau.Z(op.Q0)
		case ops.OpH:
			s.tableau.H(op.Q0)
		case ops.OpS:
			s.tableau.S(op.Q0)
		case ops.OpSdg:
			s.tableau.Sdg(op.Q0)
		case ops.OpCX:
			s.tableau.CX(op.Q0, op.Q1)
		case ops.OpMeasure:
			bit := s.tableau.Measure(op.Q0, s.rngSrc)
			s.measured.Set(op.Slot, bit)
		default:
			panic(fmt.Sprintf("simulator: unknown opcode %v", op.Kind))
		}
	}
}

// Receive copies the internal measurement buffer into buf, which must
// already have length n (use MakeBuffer to obtain one).
func (s *StabilizerSimulator) Receive(buf *bitset.Set) {
	buf.CopyFrom(s.measured)
}

// SendReceive applies batch, then copies the resulting measurement
// buffer into buf — the atomic composition of Send and Receive.
func (s *StabilizerSimulator) SendReceive(batch []ops.Op, buf *bitset.Set) {
	s.Send(batch)
	s.Receive(buf)
}

// MakeBuffer returns a fresh, zeroed measurement buffer of length n.
func (s *StabilizerSimulator) MakeBuffer() *bitset.Set {
	return bitset.NewZeros(s.n)
}

// DumpPrint returns a diagnostic human-readable dump of the tableau and
// the measurement buffer. Layout is unspecified; for debugging only.
func (s *StabilizerSimulator) DumpPrint() string {
	return s.tableau.DumpPrint() + fmt.Sprintf("measured: %s\n", s.measured.String())
}
