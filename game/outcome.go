package game

type Outcome int

const (
	Tie Outcome = iota
	SelfWins
	OpponentWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case SelfWins:
		return "self wins"
	case OpponentWins:
		return "opponent wins"
	default:
		return "unknown"
	}
}

// beats maps each hand to the hand it defeats.
var beats = map[Hand]Hand{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Beats reports whether a defeats b.
func Beats(a, b Hand) bool {
	mustHand(a)
	mustHand(b)
	return beats[a] == b
}

// Resolve compares the two final hands. It has no side effects and panics on
// hands outside rock, paper and scissors.
func Resolve(self, opponent Hand) Outcome {
	mustHand(self)
	mustHand(opponent)

	switch {
	case self == opponent:
		return Tie
	case Beats(self, opponent):
		return SelfWins
	default:
		return OpponentWins
	}
}

// Result is an outcome together with the hands that produced it.
type Result struct {
	Outcome      Outcome
	SelfHand     Hand
	OpponentHand Hand
}

// Winner returns the winning and losing hands, or ok=false on a tie.
func (r Result) Winner() (winner, loser Hand, ok bool) {
	switch r.Outcome {
	case SelfWins:
		return r.SelfHand, r.OpponentHand, true
	case OpponentWins:
		return r.OpponentHand, r.SelfHand, true
	default:
		return NoHand, NoHand, false
	}
}
