// Package renderer draws a stabilizer tableau's X/Z parity matrices and
// sign vector as a PNG image, the visual counterpart of
// StabilizerSimulator.DumpPrint. Named after the teacher's own
// "renderer: PNG visualization" package, repurposed here to draw a
// tableau instead of a circuit diagram — a Clifford tableau has no
// circuit diagram of its own in this core.
package renderer

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Matrix is the minimal read-only view renderer needs; stabilizer.Tableau
// does not export its raw rows, but implements this small interface
// through its NQubits, XBit, ZBit and Sign accessors.
type Matrix interface {
	NQubits() int
	XBit(row, col int) bool
	ZBit(row, col int) bool
	Sign(row int) bool
}

const (
	cellSize  = 18
	margin    = 24
	gutter    = 32
	labelArea = 20
)

// RenderPNG draws m's X matrix, Z matrix, and sign column side by side
// and returns the finished gg.Context. Callers save it with
// ctx.SavePNG(path) or read ctx.Image() directly.
func RenderPNG(m Matrix) *gg.Context {
	n := m.NQubits()
	width := margin*2 + labelArea + n*cellSize*2 + gutter*2 + cellSize
	height := margin*2 + labelArea + n*cellSize

	ctx := gg.NewContext(width, height)
	ctx.SetColor(color.White)
	ctx.Clear()

	originX := margin + labelArea
	originY := margin + labelArea

	drawMatrix(ctx, originX, originY, n, func(r, c int) bool { return m.XBit(r, c) }, "X")
	zOriginX := originX + n*cellSize + gutter
	drawMatrix(ctx, zOriginX, originY, n, func(r, c int) bool { return m.ZBit(r, c) }, "Z")

	signX := zOriginX + n*cellSize + gutter
	for row := 0; row < n; row++ {
		y := originY + row*cellSize
		drawCell(ctx, signX, y, m.Sign(row))
	}
	ctx.SetColor(color.Black)
	ctx.DrawString("r", float64(signX), float64(originY-6))

	return ctx
}

func drawMatrix(ctx *gg.Context, x0, y0, n int, bit func(r, c int) bool, label string) {
	ctx.SetColor(color.Black)
	ctx.DrawStringAnchored(label, float64(x0+n*cellSize/2), float64(y0-10), 0.5, 0.5)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			drawCell(ctx, x0+col*cellSize, y0+row*cellSize, bit(row, col))
		}
	}
}

func drawCell(ctx *gg.Context, x, y int, set bool) {
	if set {
		ctx.SetColor(color.RGBA{R: 0x1f, G: 0x5f, B: 0xa8, A: 0xff})
	} else {
		ctx.SetColor(color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff})
	}
	ctx.DrawRectangle(float64(x), float64(y), cellSize-1, cellSize-1)
	ctx.Fill()
}
