package game

// Chooser picks uniformly from a small finite set. Choose returns an index in
// [0, n).
type Chooser interface {
	Choose(n int) int
}

// Listener receives round events. Notifications carry data only; rendering is
// up to the implementation.
type Listener interface {
	OnHandLocked(side Side, hand Hand)
	OnOpponentHandsRevealed(left, right Hand)
	OnDiscardResolved(selfDiscarded, opponentDiscarded Side, result Result)
	OnRoundReset()
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) OnHandLocked(Side, Hand) {}
func (NopListener) OnOpponentHandsRevealed(Hand, Hand) {}
func (NopListener) OnDiscardResolved(Side, Side, Result) {}
func (NopListener) OnRoundReset() {}
