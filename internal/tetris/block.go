package tetris

// Block is a live tetromino on the field: a kind plus its current
// rotation state and top-left offset into the grid. Coordinates may be
// negative while the piece is still above the visible rows.
type Block struct {
	kind Kind
	rot  Rotation
	x, y int

	// Single-slot undo buffer for speculative moves. The field never
	// begins a second attempt before resolving the first.
	saved    bool
	savedX   int
	savedY   int
	savedRot Rotation
}

// Spawn creates a block of the given kind centered horizontally in a
// field of the given width, one row above the visible field. The base
// shape encoding reserves a leading blank row for most kinds, so the
// piece's cells start at row 0.
func Spawn(kind Kind, cols int) *Block {
	side := len(kind.shape())
	return &Block{
		kind: kind,
		rot:  RotationDefault,
		x:    cols/2 - (side+1)/2,
		y:    -1,
	}
}

// Kind returns the block's tetromino kind.
func (b *Block) Kind() Kind {
	return b.kind
}

// Rotation returns the block's current rotation state.
func (b *Block) Rotation() Rotation {
	return b.rot
}

// Position returns the block's top-left offset into the grid.
func (b *Block) Position() (x, y int) {
	return b.x, b.y
}

// Shape returns the block's base shape transformed by its current
// rotation state. The result is a fresh same-size square matrix.
func (b *Block) Shape() [][]uint8 {
	shape := b.kind.shape()
	n := len(shape)
	out := make([][]uint8, n)
	for i := range out {
		out[i] = make([]uint8, n)
		for j := range out[i] {
			var sy, sx int
			switch b.rot {
			case RotationDefault:
				sy, sx = i, j
			case RotationCCW:
				sy, sx = j, n-i-1
			case RotationReverse:
				sy, sx = n-i-1, n-j-1
			case RotationCW:
				sy, sx = n-j-1, i
			}
			out[i][j] = shape[sy][sx]
		}
	}
	return out
}

// begin records the current position and rotation, then applies the
// candidate ones. It must be resolved by end before the next attempt.
func (b *Block) begin(x, y int, rot Rotation) {
	b.savedX, b.savedY, b.savedRot = b.x, b.y, b.rot
	b.saved = true
	b.x, b.y, b.rot = x, y, rot
}

// commit accepts the pending speculative change.
func (b *Block) commit() {
	b.saved = false
}

// revert restores the position and rotation saved by begin.
func (b *Block) revert() {
	if !b.saved {
		return
	}
	b.x, b.y, b.rot = b.savedX, b.savedY, b.savedRot
	b.saved = false
}

// end resolves the pending speculative change.
func (b *Block) end(ok bool) {
	if ok {
		b.commit()
	} else {
		b.revert()
	}
}
