package ops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderChaining(t *testing.T) {
	b := NewBuilder().Init().X(0).H(1).CNOT(0, 1).Measure(0, 0).Measure(1, 1)
	got := b.Ops()

	want := []Op{
		Init(),
		Gate1(OpX, 0),
		Gate1(OpH, 1),
		CX(0, 1),
		Measure(0, 0),
		Measure(1, 1),
	}
	assert.Equal(t, want, got)
}

func TestOpsReturnsSnapshot(t *testing.T) {
	b := NewBuilder().X(0)
	snap := b.Ops()
	b.X(1)
	assert.Len(t, snap, 1, "earlier snapshot must not see later appends")
	assert.Len(t, b.Ops(), 2)
}

func TestClearResetsBuilder(t *testing.T) {
	b := NewBuilder().X(0).H(1)
	b.Clear()
	assert.Empty(t, b.Ops())
}

func TestOpKindString(t *testing.T) {
	cases := map[OpKind]string{
		OpInit:    "INIT",
		OpX:       "X",
		OpCX:      "CX",
		OpMeasure: "MEAS",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}
