// Package gkstab provides a stabilizer-formalism quantum circuit
// simulator for Go: a Gottesman–Knill (CHP-style) tableau restricted to
// the Clifford gate set, with shot-batched parallel execution, an HTTP
// gateway, and a demo CLI built on top of it.
//
// # Quick Start
//
// Build and run a Bell-state circuit:
//
//	import (
//	    "github.com/kegliz/gkstab/qc/ops"
//	    "github.com/kegliz/gkstab/qc/simulator"
//	)
//
//	batch := ops.NewBuilder().
//	    H(0).
//	    CNOT(0, 1).
//	    Measure(0, 0).
//	    Measure(1, 1).
//	    Ops()
//
//	sim := simulator.NewSeeded(2, 42)
//	buf := sim.MakeBuffer()
//	sim.SendReceive(batch, buf)
//
// # Architecture
//
// gkstab is organized into the following packages:
//
//   - qc/stabilizer: the Tableau — n stabilizer generators over n
//     qubits, their Clifford update rules, and the measurement algorithm
//   - qc/ops: a tagged-union operation type and a fluent Builder for
//     assembling operation batches
//   - qc/rng: the pluggable randomness source used for nondeterministic
//     measurement outcomes, plus a deterministic test double
//   - qc/simulator: StabilizerSimulator (single-owner op dispatcher) and
//     Simulator (shot-batched parallel runner with a histogram result)
//   - qc/renderer: PNG rendering of a tableau's X/Z parity matrices
//   - internal/bitset: packed-word GF(2) bit vectors
//   - internal/logger: structured logging wrapper
//
// # Supported Gates
//
// Single-qubit gates: X, Y, Z, H, S, S†
// Two-qubit gates: CX (CNOT)
// Measurement: projective Z-basis measurement with deterministic or
// random outcomes, depending on whether the measured Pauli commutes
// with every stabilizer generator
//
// # Performance
//
// Shots run concurrently across a worker pool, each shot driving its
// own freshly seeded StabilizerSimulator so no Tableau is ever shared
// across goroutines.
package gkstab
