package tetris

import "testing"

func TestRotationCycle(t *testing.T) {
	tests := []struct {
		name  string
		spin  spin
		steps []Rotation
	}{
		{
			name:  "rotation-invariant",
			spin:  spinNone,
			steps: []Rotation{RotationDefault, RotationDefault},
		},
		{
			name:  "half cycle",
			spin:  spinHalf,
			steps: []Rotation{RotationDefault, RotationCCW, RotationDefault},
		},
		{
			name:  "full cycle",
			spin:  spinFull,
			steps: []Rotation{RotationDefault, RotationCW, RotationReverse, RotationCCW, RotationDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.steps[0]
			for i, want := range tt.steps[1:] {
				r = r.next(tt.spin)
				if r != want {
					t.Fatalf("step %d: rotation = %v, want %v", i+1, r, want)
				}
			}
		})
	}
}

func TestKindSpin(t *testing.T) {
	tests := []struct {
		kind Kind
		want spin
	}{
		{KindT, spinFull},
		{KindJ, spinFull},
		{KindL, spinFull},
		{KindI, spinHalf},
		{KindS, spinHalf},
		{KindZ, spinHalf},
		{KindO, spinNone},
	}

	for _, tt := range tests {
		if got := tt.kind.spin(); got != tt.want {
			t.Errorf("%s.spin() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestShapeRotations(t *testing.T) {
	b := Spawn(KindT, 10)

	// 0 degrees: the base shape.
	want := [][]uint8{
		{0, 2, 0},
		{2, 2, 2},
		{0, 0, 0},
	}
	assertShape(t, "default", b.Shape(), want)

	b.rot = RotationCW
	want = [][]uint8{
		{0, 2, 0},
		{0, 2, 2},
		{0, 2, 0},
	}
	assertShape(t, "cw", b.Shape(), want)

	b.rot = RotationReverse
	want = [][]uint8{
		{0, 0, 0},
		{2, 2, 2},
		{0, 2, 0},
	}
	assertShape(t, "reverse", b.Shape(), want)

	b.rot = RotationCCW
	want = [][]uint8{
		{0, 2, 0},
		{2, 2, 0},
		{0, 2, 0},
	}
	assertShape(t, "ccw", b.Shape(), want)
}

func assertShape(t *testing.T, label string, got, want [][]uint8) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: shape has %d rows, want %d", label, len(got), len(want))
	}
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("%s: cell (%d,%d) = %d, want %d\ngot %v", label, x, y, got[y][x], want[y][x], got)
			}
		}
	}
}

func TestKicksStartInPlace(t *testing.T) {
	for _, kind := range Kinds {
		rotations := []Rotation{RotationDefault}
		if kind.spin() == spinHalf {
			rotations = append(rotations, RotationCCW)
		}
		if kind.spin() == spinFull {
			rotations = append(rotations, RotationCW, RotationReverse, RotationCCW)
		}
		for _, r := range rotations {
			kicks := kind.kicks(r)
			if len(kicks) == 0 {
				t.Fatalf("%s: empty kick table for rotation %d", kind, r)
			}
			if kicks[0] != (offset{}) {
				t.Errorf("%s rotation %d: first kick = %v, want (0,0)", kind, r, kicks[0])
			}
		}
	}
}

func TestKicksUnreachableRotationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for I piece in CW rotation")
		}
	}()
	KindI.kicks(RotationCW)
}

func TestPreviewDimensions(t *testing.T) {
	for _, kind := range Kinds {
		preview := kind.Preview()
		if len(preview) != PreviewSize {
			t.Fatalf("%s: preview has %d rows, want %d", kind, len(preview), PreviewSize)
		}
		nonzero := 0
		for _, row := range preview {
			if len(row) != PreviewSize {
				t.Fatalf("%s: preview row has %d cells, want %d", kind, len(row), PreviewSize)
			}
			for _, cell := range row {
				if cell > 0 {
					nonzero++
				}
			}
		}
		if nonzero != 4 {
			t.Errorf("%s: preview has %d filled cells, want 4", kind, nonzero)
		}
	}
}

func TestSpawnCentersBlock(t *testing.T) {
	tests := []struct {
		kind  Kind
		cols  int
		wantX int
	}{
		{KindI, 10, 3}, // side 4
		{KindT, 10, 3}, // side 3
		{KindO, 10, 4}, // side 2
		{KindT, 4, 0},
	}

	for _, tt := range tests {
		b := Spawn(tt.kind, tt.cols)
		x, y := b.Position()
		if x != tt.wantX {
			t.Errorf("Spawn(%s, %d): x = %d, want %d", tt.kind, tt.cols, x, tt.wantX)
		}
		if y != -1 {
			t.Errorf("Spawn(%s, %d): y = %d, want -1", tt.kind, tt.cols, y)
		}
		if b.Rotation() != RotationDefault {
			t.Errorf("Spawn(%s, %d): rotation = %v, want default", tt.kind, tt.cols, b.Rotation())
		}
	}
}

func TestBlockSpeculativeRevert(t *testing.T) {
	b := Spawn(KindT, 10)
	x, y := b.Position()

	b.begin(x+2, y+3, RotationCW)
	if bx, by := b.Position(); bx != x+2 || by != y+3 {
		t.Fatalf("begin did not apply candidate position: got (%d,%d)", bx, by)
	}
	b.end(false)
	if bx, by := b.Position(); bx != x || by != y {
		t.Errorf("revert: position = (%d,%d), want (%d,%d)", bx, by, x, y)
	}
	if b.Rotation() != RotationDefault {
		t.Errorf("revert: rotation = %v, want default", b.Rotation())
	}

	b.begin(x+1, y, RotationCW)
	b.end(true)
	if bx, by := b.Position(); bx != x+1 || by != y {
		t.Errorf("commit: position = (%d,%d), want (%d,%d)", bx, by, x+1, y)
	}
	if b.Rotation() != RotationCW {
		t.Errorf("commit: rotation = %v, want CW", b.Rotation())
	}
}
