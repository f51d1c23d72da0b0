// Package ops defines the closed tagged-union of operations a
// StabilizerSimulator accepts, and a fluent Builder for assembling a
// batch of them. The opcode set is fixed; there is no user-defined op.
package ops

import "fmt"

// OpKind identifies the shape/opcode of an Op. The set is closed: a
// dispatcher encountering an OpKind outside this enum has a programmer
// error on its hands and must fail fast (spec.md §7).
type OpKind int

const (
	OpInit OpKind = iota
	OpX
	OpY
	OpZ
	OpH
	OpS
	OpSdg
	OpCX
	OpMeasure
)

func (k OpKind) String() string {
	switch k {
	case OpInit:
		return "INIT"
	case OpX:
		return "X"
	case OpY:
		return "Y"
	case OpZ:
		return "Z"
	case OpH:
		return "H"
	case OpS:
		return "S"
	case OpSdg:
		return "SDG"
	case OpCX:
		return "CX"
	case OpMeasure:
		return "MEAS"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one tagged operation. Depending on Kind, only a subset of
// fields is meaningful:
//
//	OpInit:            no fields used.
//	OpX/Y/Z/H/S/OpSdg:  Q0 is the target qubit.
//	OpCX:               Q0 is the control, Q1 is the target.
//	OpMeasure:          Q0 is the qubit, Slot is the result slot.
type Op struct {
	Kind OpKind
	Q0   int
	Q1   int
	Slot int
}

// Init returns an INITIALIZE operation.
func Init() Op { return Op{Kind: OpInit} }

// Gate1 returns a single-qubit gate operation. kind must be one of
// OpX, OpY, OpZ, OpH, OpS, OpSdg.
func Gate1(kind OpKind, q int) Op { return Op{Kind: kind, Q0: q} }

// CX returns a controlled-NOT operation with the given control/target.
func CX(control, target int) Op { return Op{Kind: OpCX, Q0: control, Q1: target} }

// Measure returns a MEASURE operation for qubit q writing into slot.
func Measure(q, slot int) Op { return Op{Kind: OpMeasure, Q0: q, Slot: slot} }

// Builder assembles a batch of Ops with a fluent, chainable API, in the
// style of the teacher's qc/builder fluent circuit builder
// (builder.New(...).H(0).CNOT(0,1).Measure(0,0)), and mirroring
// original_source/src/lib.rs's test-only OpsVec (ops.x(i); ops.cx(c,t)).
type Builder struct {
	ops []Op
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Init appends an INITIALIZE operation.
func (b *Builder) Init() *Builder {
	b.ops = append(b.ops, Init())
	return b
}

// X appends an X gate on qubit q.
func (b *Builder) X(q int) *Builder { return b.push(Gate1(OpX, q)) }

// Y appends a Y gate on qubit q.
func (b *Builder) Y(q int) *Builder { return b.push(Gate1(OpY, q)) }

// Z appends a Z gate on qubit q.
func (b *Builder) Z(q int) *Builder { return b.push(Gate1(OpZ, q)) }

// H appends a Hadamard gate on qubit q.
func (b *Builder) H(q int) *Builder { return b.push(Gate1(OpH, q)) }

// S appends a phase gate on qubit q.
func (b *Builder) S(q int) *Builder { return b.push(Gate1(OpS, q)) }

// Sdg appends an inverse phase gate on qubit q.
func (b *Builder) Sdg(q int) *Builder { return b.push(Gate1(OpSdg, q)) }

// CNOT appends a controlled-NOT gate, control then target.
func (b *Builder) CNOT(control, target int) *Builder { return b.push(CX(control, target)) }

// Measure appends a MEASURE operation for qubit q writing into slot.
func (b *Builder) Measure(q, slot int) *Builder { return b.push(Measure(q, slot)) }

func (b *Builder) push(op Op) *Builder {
	b.ops = append(b.ops, op)
	return b
}

// Ops returns the accumulated operations as an immutable snapshot.
func (b *Builder) Ops() []Op {
	out := make([]Op, len(b.ops))
	copy(out, b.ops)
	return out
}

// Clear empties the builder so it can be reused for a new batch.
func (b *Builder) Clear() *Builder {
	b.ops = b.ops[:0]
	return b
}
