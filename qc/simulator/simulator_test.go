package simulator

import (
	"testing"

	"github.com/kegliz/gkstab/qc/ops"
	"github.com/kegliz/gkstab/qc/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendReceiveBasic(t *testing.T) {
	sim := New(2, rng.NewXorShift32(0))
	batch := ops.NewBuilder().X(0).Measure(0, 0).Measure(1, 1).Ops()

	buf := sim.MakeBuffer()
	sim.SendReceive(batch, buf)

	assert.True(t, buf.Get(0))
	assert.False(t, buf.Get(1))
}

func TestInitOpResetsState(t *testing.T) {
	sim := New(2, rng.NewXorShift32(0))
	sim.Send(ops.NewBuilder().X(0).X(1).Ops())
	sim.Send(ops.NewBuilder().Init().Ops())

	buf := sim.MakeBuffer()
	sim.SendReceive(ops.NewBuilder().Measure(0, 0).Measure(1, 1).Ops(), buf)

	assert.False(t, buf.Get(0))
	assert.False(t, buf.Get(1))
}

func TestUnknownOpcodePanics(t *testing.T) {
	sim := New(1, rng.NewXorShift32(0))
	bad := ops.Op{Kind: ops.OpKind(99), Q0: 0}
	assert.Panics(t, func() { sim.Send([]ops.Op{bad}) })
}

func TestNewSeededIsDeterministic(t *testing.T) {
	batch := ops.NewBuilder().H(1).CNOT(1, 0).Measure(0, 0).Measure(1, 1).Ops()

	a := NewSeeded(2, 7)
	b := NewSeeded(2, 7)
	bufA, bufB := a.MakeBuffer(), b.MakeBuffer()
	a.SendReceive(batch, bufA)
	b.SendReceive(batch, bufB)

	assert.True(t, bufA.Equal(bufB), "same seed, same batch must produce identical results")
}

func TestDumpPrintIncludesMeasured(t *testing.T) {
	sim := New(1, rng.NewXorShift32(0))
	sim.Send(ops.NewBuilder().X(0).Measure(0, 0).Ops())
	dump := sim.DumpPrint()
	assert.Contains(t, dump, "measured:")
	assert.Contains(t, dump, "xs:")
	assert.Contains(t, dump, "zs:")
}

func TestRunParallelHistogramBellState(t *testing.T) {
	batch := ops.NewBuilder().H(0).CNOT(0, 1).Measure(0, 0).Measure(1, 1).Ops()
	sim := NewSimulator(Options{Shots: 256, Workers: 4, Seed: 1})

	hist, err := sim.Run(batch, 2)
	require.NoError(t, err)

	for bits, count := range hist {
		assert.Truef(t, bits == "00" || bits == "11", "unexpected bell outcome %q (count %d)", bits, count)
	}
	assert.Equal(t, 256, hist["00"]+hist["11"])
}

func TestRunDefaultsShotsAndWorkers(t *testing.T) {
	sim := NewSimulator(Options{})
	assert.Equal(t, 1024, sim.Shots)
	assert.Greater(t, sim.Workers, 0)
}

func TestMetricsSnapshotAfterRun(t *testing.T) {
	batch := ops.NewBuilder().X(0).Measure(0, 0).Ops()
	sim := NewSimulator(Options{Shots: 10, Workers: 2})
	_, err := sim.Run(batch, 1)
	require.NoError(t, err)

	snap := sim.MetricsSnapshot()
	assert.EqualValues(t, 10, snap.TotalExecutions)
	assert.EqualValues(t, 10, snap.SuccessfulRuns)
	assert.EqualValues(t, 0, snap.FailedRuns)
}
