package tetris

import (
	"fmt"
	"sort"
)

// MinFieldSize is the smallest allowed field dimension. Smaller fields
// cannot hold every spawned piece.
const MinFieldSize = 4

// Field is the playing grid of placed cells. Cell values are 0 for
// empty and 1-7 for the color index of the locked piece kind. Row 0 is
// the top of the field.
type Field struct {
	cells [][]uint8
	rows  int
	cols  int
}

// NewField creates an empty field. Dimensions below MinFieldSize are a
// contract violation and panic.
func NewField(rows, cols int) *Field {
	if rows < MinFieldSize || cols < MinFieldSize {
		panic(fmt.Sprintf("tetris: field %dx%d below minimum %d", rows, cols, MinFieldSize))
	}
	cells := make([][]uint8, rows)
	for i := range cells {
		cells[i] = make([]uint8, cols)
	}
	return &Field{cells: cells, rows: rows, cols: cols}
}

// Rows returns the number of grid rows.
func (f *Field) Rows() int {
	return f.rows
}

// Cols returns the number of grid columns.
func (f *Field) Cols() int {
	return f.cols
}

// Cells returns a copy of the grid contents.
func (f *Field) Cells() [][]uint8 {
	out := make([][]uint8, f.rows)
	for i, row := range f.cells {
		out[i] = make([]uint8, f.cols)
		copy(out[i], row)
	}
	return out
}

// CellsWithBlock returns a copy of the grid with the block's cells
// merged in. Block cells above the visible field are omitted.
func (f *Field) CellsWithBlock(b *Block) [][]uint8 {
	out := f.Cells()
	bx, by := b.Position()
	for j, row := range b.Shape() {
		for i, cell := range row {
			x, y := bx+i, by+j
			if cell > 0 && f.inBounds(x, y, false) {
				out[y][x] = cell
			}
		}
	}
	return out
}

// inBounds reports whether (x, y) is a valid grid coordinate. With
// relaxed set, negative rows count as in bounds; pieces live there
// between spawning and their first descent.
func (f *Field) inBounds(x, y int, relaxed bool) bool {
	if y >= f.rows || x < 0 || x >= f.cols {
		return false
	}
	return relaxed || y >= 0
}

// Collides reports whether any nonzero cell of the block's rotated
// shape lands on a nonzero grid cell. Cells projected above the grid
// never collide; bounds violations are Overflows' concern.
func (f *Field) Collides(b *Block) bool {
	bx, by := b.Position()
	for j, row := range b.Shape() {
		for i, cell := range row {
			if cell == 0 {
				continue
			}
			x, y := bx+i, by+j
			if y < 0 || y >= f.rows || x < 0 || x >= f.cols {
				continue
			}
			if f.cells[y][x] > 0 {
				return true
			}
		}
	}
	return false
}

// Overflows reports whether any nonzero cell of the block's rotated
// shape projects outside the field horizontally or below its last row.
// Rows above the field are permitted.
func (f *Field) Overflows(b *Block) bool {
	bx, by := b.Position()
	for j, row := range b.Shape() {
		for i, cell := range row {
			if cell > 0 && !f.inBounds(bx+i, by+j, true) {
				return true
			}
		}
	}
	return false
}

// TryMove speculatively offsets the block by (dx, dy) and keeps the
// new position iff it neither overflows nor collides. Reports whether
// the move was accepted.
func (f *Field) TryMove(b *Block, dx, dy int) bool {
	b.begin(b.x+dx, b.y+dy, b.rot)
	ok := !f.Overflows(b) && !f.Collides(b)
	b.end(ok)
	return ok
}

// TryRotate advances the block's rotation state, trying each wall-kick
// offset of the current state in table order and accepting the first
// candidate that neither overflows nor collides. The block is left
// unchanged if every candidate fails.
func (f *Field) TryRotate(b *Block) bool {
	for _, kick := range b.kind.kicks(b.rot) {
		b.begin(b.x+kick.dx, b.y+kick.dy, b.rot.next(b.kind.spin()))
		ok := !f.Overflows(b) && !f.Collides(b)
		b.end(ok)
		if ok {
			return true
		}
	}
	return false
}

// DropDistance returns how far the block can descend before resting:
// for every column the block spans, the gap between the block's lowest
// cell and the highest occupied grid cell below it, minimized across
// columns.
func (f *Field) DropDistance(b *Block) int {
	shape := b.Shape()
	bx, by := b.Position()
	distance := f.rows
	for i := range shape {
		// Lowest piece cell in this column; may sit above the field.
		lowest, occupied := 0, false
		for j := range shape {
			if shape[j][i] > 0 {
				lowest = by + j
				occupied = true
			}
		}
		if !occupied {
			continue
		}
		highest := f.rows
		for y := max(lowest+1, 0); y < f.rows; y++ {
			if f.cells[y][bx+i] > 0 {
				highest = y
				break
			}
		}
		if gap := highest - lowest - 1; gap < distance {
			distance = gap
		}
	}
	return distance
}

// Drop moves the block down by its drop distance and returns the
// distance traveled. The distance computation guarantees the result
// does not collide, so no re-validation happens here.
func (f *Field) Drop(b *Block) int {
	distance := f.DropDistance(b)
	b.y += distance
	return distance
}

// Lock writes the block's cells into the grid and returns the sorted
// distinct row indices it touched. Cells still above the visible field
// are dropped silently.
func (f *Field) Lock(b *Block) []int {
	bx, by := b.Position()
	touched := make(map[int]struct{})
	for j, row := range b.Shape() {
		for i, cell := range row {
			x, y := bx+i, by+j
			if cell > 0 && f.inBounds(x, y, false) {
				f.cells[y][x] = cell
				touched[y] = struct{}{}
			}
		}
	}
	rows := make([]int, 0, len(touched))
	for y := range touched {
		rows = append(rows, y)
	}
	sort.Ints(rows)
	return rows
}

// ClearFullRows removes every candidate row whose cells are all
// nonzero, inserting an empty row at the top for each so the grid
// keeps its dimensions. Returns the number of rows cleared.
func (f *Field) ClearFullRows(candidates []int) int {
	cleared := 0
candidates:
	for _, y := range candidates {
		for _, cell := range f.cells[y] {
			if cell == 0 {
				continue candidates
			}
		}
		f.cells = append(f.cells[:y], f.cells[y+1:]...)
		f.cells = append([][]uint8{make([]uint8, f.cols)}, f.cells...)
		cleared++
	}
	return cleared
}
