// Package tetris implements the falling-block puzzle engine: the
// playing field, tetromino pieces with wall-kick rotation, the bag
// piece sequencer, and the tick-driven game state machine. It contains
// no terminal or timing dependencies; the platform layer feeds it
// timestamps and one action per tick and renders the snapshots it
// returns.
package tetris

import (
	"math/rand"
	"time"
)

// Action is a discrete player input delivered with a tick. The zero
// value ActionNone means no input this tick.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionDrop
	ActionEscape
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionEscape:
		return "Escape"
	}
	return "Unknown"
}

// Config holds the engine's construction parameters.
type Config struct {
	Cols       int           // field width, >= 4
	Rows       int           // field height, >= 4
	FallDelay  time.Duration // gravity interval
	BagBatches int           // complete kind sets per bag refill
	Seed       int64         // RNG seed for the piece sequence
}

// DefaultConfig returns the standard 10x20 field with half-second
// gravity.
func DefaultConfig() Config {
	return Config{
		Cols:       10,
		Rows:       20,
		FallDelay:  500 * time.Millisecond,
		BagBatches: 3,
	}
}

// ChangeKind tags the outcome of one engine tick.
type ChangeKind uint8

const (
	// ChangeIdle means nothing visible happened; the driver can skip
	// re-rendering.
	ChangeIdle ChangeKind = iota
	// ChangeDraw carries a game view snapshot.
	ChangeDraw
	// ChangeText carries a menu overlay view.
	ChangeText
	// ChangeRestart asks the driver to construct a fresh engine.
	ChangeRestart
	// ChangeExit asks the driver to stop the loop.
	ChangeExit
)

// Change is the result of one tick: a render snapshot, a control
// signal, or an idle marker. Exactly the field matching Kind is set.
type Change struct {
	Kind ChangeKind
	Game *GameView
	Menu *MenuView
}

// GameView is an immutable render snapshot of the playing state.
type GameView struct {
	Cells   [][]uint8 // field merged with the active piece, rows x cols
	Preview [][]uint8 // next piece in a fixed 4x4 matrix
	Score   int
	Lines   int
}

// MenuView is an immutable render snapshot of a menu overlay.
type MenuView struct {
	Items    []MenuItem
	Selected int // index into Items, -1 if none
}

// Menu item IDs for the pause and game-over overlays.
const (
	menuTitle = iota
	menuContinue
	menuRestart
	menuExit
)

// stateKind enumerates the game state machine's variants.
type stateKind uint8

const (
	stateStart stateKind = iota
	stateFall
	stateDrop
	stateGameOver
)

// Game drives one active piece through spawn, fall, drop, lock and
// next-spawn, tracks the score, and layers a pause or game-over menu
// on top. It is single-threaded: the driver calls Frame once per tick
// with the current timestamp and at most one action.
type Game struct {
	cfg    Config
	moment time.Time // last gravity tick
	field  *Field
	bag    *Bag
	score  int
	lines  int

	state  stateKind
	active *Block // set in Fall and Drop
	next   Kind   // preview kind, set in Fall and Drop

	pause     *Menu
	pauseOver bool // overlay belongs to the game-over state
}

// New creates a game over an empty field. The start timestamp anchors
// the first gravity interval; all later time flows in through Frame.
// Field dimensions below the minimum panic.
func New(cfg Config, start time.Time) *Game {
	return &Game{
		cfg:    cfg,
		moment: start,
		field:  NewField(cfg.Rows, cfg.Cols),
		bag:    NewBag(rand.New(rand.NewSource(cfg.Seed)), cfg.BagBatches),
		state:  stateStart,
	}
}

// Score returns the current score. It never decreases.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int {
	return g.lines
}

// Over reports whether the game has reached its terminal state.
func (g *Game) Over() bool {
	return g.state == stateGameOver
}

// Frame advances the machine by one tick. The returned Change is
// either a render snapshot (game or menu), a control signal the driver
// must honor, or Idle when nothing visible changed.
func (g *Game) Frame(now time.Time, action Action) Change {
	switch {
	case g.pause != nil:
		switch action {
		case ActionEscape:
			// Only the pause overlay can be dismissed; the game-over
			// menu reappears on the next tick anyway.
			if !g.pauseOver {
				g.pause = nil
			}
		case ActionUp:
			g.pause.Up()
		case ActionDown:
			g.pause.Down()
		case ActionDrop:
			if id, ok := g.pause.Select(); ok {
				switch id {
				case menuContinue:
					g.pause = nil
				case menuRestart:
					return Change{Kind: ChangeRestart}
				case menuExit:
					return Change{Kind: ChangeExit}
				}
			}
		default:
			return Change{Kind: ChangeIdle}
		}
	case action == ActionEscape:
		g.pause = pauseMenu()
		g.pauseOver = false
	default:
		switch g.state {
		case stateStart:
			g.stateStart()
		case stateFall:
			if !g.stateFall(now, action) {
				return Change{Kind: ChangeIdle}
			}
		case stateDrop:
			g.stateDrop()
		case stateGameOver:
			g.pause = overMenu()
			g.pauseOver = true
		}
	}

	if g.pause != nil {
		return Change{Kind: ChangeText, Menu: g.menuView()}
	}
	return Change{Kind: ChangeDraw, Game: g.gameView()}
}

// stateStart draws the first piece and enters the spawn cycle.
func (g *Game) stateStart() {
	g.spawnCycle(Spawn(g.bag.Draw(), g.cfg.Cols))
}

// stateFall applies the tick's action to the active piece and runs
// gravity. Reports whether anything visibly changed. A failed descent,
// from input or gravity, moves the machine to Drop.
func (g *Game) stateFall(now time.Time, action Action) bool {
	b := g.active
	drop := false
	changed := false

	switch action {
	case ActionLeft:
		changed = g.field.TryMove(b, -1, 0)
	case ActionRight:
		changed = g.field.TryMove(b, 1, 0)
	case ActionDown:
		// Soft drop resets the gravity interval.
		g.moment = now
		if g.field.TryMove(b, 0, 1) {
			changed = true
		} else {
			drop = true
		}
	case ActionDrop:
		changed = g.field.Drop(b) > 0
		drop = true
	case ActionUp:
		changed = g.field.TryRotate(b)
	}

	if !drop && now.Sub(g.moment) >= g.cfg.FallDelay {
		g.moment = now
		if g.field.TryMove(b, 0, 1) {
			changed = true
		} else {
			drop = true
		}
	}

	if drop {
		g.state = stateDrop
	}
	return changed
}

// stateDrop locks the resting piece, clears full rows, scores them,
// and spawns the previewed piece.
func (g *Game) stateDrop() {
	touched := g.field.Lock(g.active)
	lines := g.field.ClearFullRows(touched)
	g.lines += lines
	g.score += lines * (lines + 1) / 2
	g.spawnCycle(Spawn(g.next, g.cfg.Cols))
}

// spawnCycle installs a freshly spawned piece, drawing its preview
// successor. A piece that collides at its spawn position ends the
// game.
func (g *Game) spawnCycle(b *Block) {
	next := g.bag.Draw()
	if g.field.Collides(b) {
		g.state = stateGameOver
		g.active = nil
		g.next = KindNone
		return
	}
	g.state = stateFall
	g.active = b
	g.next = next
}

// gameView snapshots the grid, preview, and score for rendering.
func (g *Game) gameView() *GameView {
	view := &GameView{Score: g.score, Lines: g.lines}
	if g.active != nil {
		view.Cells = g.field.CellsWithBlock(g.active)
		view.Preview = g.next.Preview()
	} else {
		view.Cells = g.field.Cells()
		view.Preview = EmptyPreview()
	}
	return view
}

// menuView snapshots the active overlay for rendering.
func (g *Game) menuView() *MenuView {
	return &MenuView{Items: g.pause.Items(), Selected: g.pause.Selected()}
}

func pauseMenu() *Menu {
	return NewMenu(
		MenuItem{ID: menuTitle, Label: "Paused"},
		MenuItem{ID: menuContinue, Label: "Continue", Selectable: true},
		MenuItem{ID: menuRestart, Label: "New Game", Selectable: true},
		MenuItem{ID: menuExit, Label: "Exit", Selectable: true},
	)
}

func overMenu() *Menu {
	return NewMenu(
		MenuItem{ID: menuTitle, Label: "Game Over"},
		MenuItem{ID: menuRestart, Label: "New Game", Selectable: true},
		MenuItem{ID: menuExit, Label: "Exit", Selectable: true},
	)
}
