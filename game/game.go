package game

import (
	"fmt"
	"sync"

	"github.com/deadloct/minus-one/lib"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Phase int

const (
	Idle Phase = iota
	AwaitingHands
	AwaitingDiscard
	Resolved
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AwaitingHands:
		return "awaiting hands"
	case AwaitingDiscard:
		return "awaiting discard"
	case Resolved:
		return "resolved"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// RoundState is a snapshot of a single round. Selections and Final are indexed
// by Actor and Side; NoHand means unset.
type RoundState struct {
	ID         string
	Phase      Phase
	Selections [2][2]Hand
	Final      [2]Hand
}

func (rs RoundState) Selection(a Actor, s Side) Hand {
	if !a.Valid() || !s.Valid() {
		panic(fmt.Errorf("%w: actor %v side %v", ErrInvalidArgument, a, s))
	}

	return rs.Selections[a][s]
}

func (rs RoundState) FinalHand(a Actor) Hand {
	if !a.Valid() {
		panic(fmt.Errorf("%w: actor %v", ErrInvalidArgument, a))
	}

	return rs.Final[a]
}

// HandLocked describes a recorded pick. When Revealed is set the pick
// completed the player's hands and the opponent's hands were drawn.
type HandLocked struct {
	Side          Side
	Hand          Hand
	Revealed      bool
	OpponentLeft  Hand
	OpponentRight Hand
}

// DiscardResult describes the discard step for both actors.
type DiscardResult struct {
	SelfDiscarded     Side
	SelfKept          Side
	OpponentDiscarded Side
	OpponentKept      Side
	Result            Result
}

type GameConfig struct {
	Chooser  Chooser
	Listener Listener
}

// Game runs one Minus One round at a time. Calls made outside the phase that
// accepts them are ignored.
type Game struct {
	GameConfig

	state RoundState

	sync.Mutex
}

func NewGame(cfg GameConfig) *Game {
	if cfg.Chooser == nil {
		cfg.Chooser = lib.NewCryptoChooser()
	}

	if cfg.Listener == nil {
		cfg.Listener = NopListener{}
	}

	return &Game{GameConfig: cfg}
}

// StartRound discards the current round and opens a fresh one for hand
// selection. It is valid from any phase.
func (g *Game) StartRound() {
	g.Lock()
	g.state = RoundState{ID: uuid.NewString(), Phase: AwaitingHands}
	id := g.state.ID
	g.Unlock()

	g.logMessage(id, log.DebugLevel, "round started")
	g.Listener.OnRoundReset()
}

// Reset clears the round and leaves the game idle until StartRound.
func (g *Game) Reset() {
	g.Lock()
	g.state = RoundState{}
	g.Unlock()

	g.logMessage("", log.DebugLevel, "round reset")
	g.Listener.OnRoundReset()
}

// ChooseHand records the player's pick for side. Once both sides are picked
// the opponent's hands are drawn in the same call. The bool is false when the
// call was ignored because the round was not accepting hands.
func (g *Game) ChooseHand(side Side, hand Hand) (HandLocked, bool) {
	mustSide(side)
	mustHand(hand)

	locked, id, ok := g.chooseHand(side, hand)
	if !ok {
		g.logMessage(id, log.DebugLevel, "ignoring %v %v pick outside of hand selection", side, hand)
		return HandLocked{}, false
	}

	g.logMessage(id, log.DebugLevel, "locked %v hand as %v", side, hand)
	g.Listener.OnHandLocked(side, hand)

	if locked.Revealed {
		g.logMessage(id, log.DebugLevel, "opponent drew %v and %v", locked.OpponentLeft, locked.OpponentRight)
		g.Listener.OnOpponentHandsRevealed(locked.OpponentLeft, locked.OpponentRight)
	}

	return locked, true
}

func (g *Game) chooseHand(side Side, hand Hand) (HandLocked, string, bool) {
	g.Lock()
	defer g.Unlock()

	if g.state.Phase != AwaitingHands {
		return HandLocked{}, g.state.ID, false
	}

	locked := HandLocked{Side: side, Hand: hand}
	if g.state.Selections[Self][side.Other()] == NoHand {
		g.state.Selections[Self][side] = hand
		return locked, g.state.ID, true
	}

	// Draw before storing anything so a failed draw leaves the round untouched.
	left := Hands[g.draw(len(Hands))]
	right := Hands[g.draw(len(Hands))]

	g.state.Selections[Self][side] = hand
	g.state.Selections[Opponent][Left] = left
	g.state.Selections[Opponent][Right] = right
	g.state.Phase = AwaitingDiscard

	locked.Revealed = true
	locked.OpponentLeft = left
	locked.OpponentRight = right
	return locked, g.state.ID, true
}

// Discard removes the player's hand on side and keeps the other. The opponent
// discards one of its hands at random in the same call and the round is
// resolved. The bool is false when the round was not waiting for a discard.
func (g *Game) Discard(side Side) (DiscardResult, bool) {
	mustSide(side)

	dr, id, ok := g.discard(side)
	if !ok {
		g.logMessage(id, log.DebugLevel, "ignoring %v discard outside of the discard step", side)
		return DiscardResult{}, false
	}

	g.logMessage(
		id, log.InfoLevel, "round resolved: %v (%v vs %v)",
		dr.Result.Outcome, dr.Result.SelfHand, dr.Result.OpponentHand,
	)
	g.Listener.OnDiscardResolved(dr.SelfDiscarded, dr.OpponentDiscarded, dr.Result)

	return dr, true
}

func (g *Game) discard(side Side) (DiscardResult, string, bool) {
	g.Lock()
	defer g.Unlock()

	if g.state.Phase != AwaitingDiscard {
		return DiscardResult{}, g.state.ID, false
	}

	opponentSide := Sides[g.draw(len(Sides))]

	self := g.state.Selections[Self][side.Other()]
	opponent := g.state.Selections[Opponent][opponentSide.Other()]

	g.state.Final[Self] = self
	g.state.Final[Opponent] = opponent
	g.state.Phase = Resolved

	return DiscardResult{
		SelfDiscarded:     side,
		SelfKept:          side.Other(),
		OpponentDiscarded: opponentSide,
		OpponentKept:      opponentSide.Other(),
		Result: Result{
			Outcome:      Resolve(self, opponent),
			SelfHand:     self,
			OpponentHand: opponent,
		},
	}, g.state.ID, true
}

// State returns a copy of the current round.
func (g *Game) State() RoundState {
	g.Lock()
	defer g.Unlock()

	return g.state
}

func (g *Game) Phase() Phase {
	return g.State().Phase
}

// Outcome resolves the round's final hands. ok is false until the discard
// step has run.
func (g *Game) Outcome() (Result, bool) {
	state := g.State()
	self, opponent := state.Final[Self], state.Final[Opponent]
	if self == NoHand || opponent == NoHand {
		return Result{}, false
	}

	return Result{Outcome: Resolve(self, opponent), SelfHand: self, OpponentHand: opponent}, true
}

// draw must be called with the lock held.
func (g *Game) draw(n int) int {
	i := g.Chooser.Choose(n)
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: chooser returned %v for a set of %v", ErrInvalidArgument, i, n))
	}

	return i
}

func (g *Game) logMessage(roundID string, level log.Level, msg string, args ...interface{}) {
	entry := log.NewEntry(log.StandardLogger())
	if roundID != "" {
		entry = entry.WithField("round", roundID)
	}

	entry.Logf(level, msg, args...)
}
