package tetris

import "fmt"

// Kind identifies one of the seven tetromino shapes.
// The zero value KindNone means "no piece".
type Kind uint8

const (
	KindNone Kind = iota
	KindI
	KindT
	KindJ
	KindL
	KindS
	KindZ
	KindO
)

// Kinds is an ordered array of the seven playable kinds.
var Kinds = [7]Kind{KindI, KindT, KindJ, KindL, KindS, KindZ, KindO}

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindO:
		return "O"
	case KindNone:
		return "none"
	}
	panic(fmt.Sprintf("tetris: unknown kind %d", uint8(k)))
}

// spin is the rotation arity of a kind: how many distinct rotation
// states it cycles through.
type spin uint8

const (
	spinNone spin = iota // O: rotation-invariant
	spinHalf             // I, S, Z: two distinct states
	spinFull             // T, J, L: four distinct states
)

// Rotation is one of the four orientations of a piece.
type Rotation uint8

const (
	RotationDefault Rotation = iota
	RotationCW
	RotationReverse
	RotationCCW
)

// next advances the rotation according to the kind's spin arity.
// Combinations that the state machine can never produce panic.
func (r Rotation) next(s spin) Rotation {
	switch s {
	case spinNone:
		if r == RotationDefault {
			return RotationDefault
		}
	case spinHalf:
		switch r {
		case RotationDefault:
			return RotationCCW
		case RotationCCW:
			return RotationDefault
		}
	case spinFull:
		switch r {
		case RotationDefault:
			return RotationCW
		case RotationCW:
			return RotationReverse
		case RotationReverse:
			return RotationCCW
		case RotationCCW:
			return RotationDefault
		}
	}
	panic(fmt.Sprintf("tetris: rotation %d unreachable for spin %d", r, s))
}

// Base shape matrices. Nonzero cells carry the kind's color index.
// Most shapes reserve a leading blank row so pieces spawn one row
// above the visible field.
var kindShapes = [...][][]uint8{
	KindI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	KindT: {
		{0, 2, 0},
		{2, 2, 2},
		{0, 0, 0},
	},
	KindJ: {
		{3, 0, 0},
		{3, 3, 3},
		{0, 0, 0},
	},
	KindL: {
		{0, 0, 4},
		{4, 4, 4},
		{0, 0, 0},
	},
	KindS: {
		{0, 5, 5},
		{5, 5, 0},
		{0, 0, 0},
	},
	KindZ: {
		{6, 6, 0},
		{0, 6, 6},
		{0, 0, 0},
	},
	KindO: {
		{7, 7},
		{7, 7},
	},
}

// shape returns the kind's base shape matrix. Callers must not
// mutate the returned slices.
func (k Kind) shape() [][]uint8 {
	if k == KindNone || int(k) >= len(kindShapes) {
		panic(fmt.Sprintf("tetris: no shape for kind %d", uint8(k)))
	}
	return kindShapes[k]
}

// spin returns the kind's rotation arity.
func (k Kind) spin() spin {
	switch k {
	case KindT, KindJ, KindL:
		return spinFull
	case KindI, KindS, KindZ:
		return spinHalf
	case KindO:
		return spinNone
	}
	panic(fmt.Sprintf("tetris: no spin for kind %d", uint8(k)))
}

// offset is a wall-kick displacement tried during rotation.
type offset struct {
	dx, dy int
}

// Wall-kick tables per rotation state. The first candidate is always
// the in-place rotation; the rest nudge the piece away from walls and
// stacked cells. Half-spin kinds only ever occupy the Default and CCW
// states, so the other two rows are unreachable.
var (
	kicksFull = [...][]offset{
		RotationDefault: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		RotationCW:      {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		RotationReverse: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		RotationCCW:     {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}
	kicksSZ = [...][]offset{
		RotationDefault: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		RotationCCW:     {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}
	kicksI = [...][]offset{
		RotationDefault: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		RotationCCW:     {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	}
	kicksO = []offset{{0, 0}}
)

// kicks returns the wall-kick candidates for rotating the kind out of
// the given rotation state, in trial order.
func (k Kind) kicks(r Rotation) []offset {
	switch k {
	case KindT, KindJ, KindL:
		return kicksFull[r]
	case KindS, KindZ:
		if r != RotationDefault && r != RotationCCW {
			panic(fmt.Sprintf("tetris: kind %s cannot be in rotation %d", k, r))
		}
		return kicksSZ[r]
	case KindI:
		if r != RotationDefault && r != RotationCCW {
			panic(fmt.Sprintf("tetris: kind %s cannot be in rotation %d", k, r))
		}
		return kicksI[r]
	case KindO:
		return kicksO
	}
	panic(fmt.Sprintf("tetris: no kick table for kind %d", uint8(k)))
}

// PreviewSize is the side length of the next-piece preview matrix.
const PreviewSize = 4

// Preview returns the kind's base shape centered into a fixed 4x4
// matrix for the next-piece display.
func (k Kind) Preview() [][]uint8 {
	shape := k.shape()
	preview := make([][]uint8, 0, PreviewSize)
	for _, row := range shape {
		padded := make([]uint8, 0, PreviewSize)
		if len(row) < 3 {
			padded = append(padded, 0)
		}
		padded = append(padded, row...)
		for len(padded) < PreviewSize {
			padded = append(padded, 0)
		}
		preview = append(preview, padded)
	}
	if len(preview) < PreviewSize {
		preview = append([][]uint8{make([]uint8, PreviewSize)}, preview...)
	}
	for len(preview) < PreviewSize {
		preview = append(preview, make([]uint8, PreviewSize))
	}
	return preview
}

// EmptyPreview returns an all-zero 4x4 preview matrix, shown when no
// next piece is queued.
func EmptyPreview() [][]uint8 {
	preview := make([][]uint8, PreviewSize)
	for i := range preview {
		preview[i] = make([]uint8, PreviewSize)
	}
	return preview
}
