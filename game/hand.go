package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is wrapped by every failure caused by a malformed hand,
// side or actor value.
var ErrInvalidArgument = errors.New("invalid argument")

type Hand int

const (
	NoHand Hand = iota
	Rock
	Paper
	Scissors
)

// Hands lists the playable hands in the order random draws index into.
var Hands = []Hand{Rock, Paper, Scissors}

var handName = map[Hand]string{
	NoHand:   "none",
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
}

func (h Hand) String() string {
	if name, ok := handName[h]; ok {
		return name
	}

	return fmt.Sprintf("Hand(%d)", int(h))
}

func (h Hand) Valid() bool {
	return h >= Rock && h <= Scissors
}

type Side int

const (
	Left Side = iota
	Right
)

// Sides lists both sides in the order random draws index into.
var Sides = []Side{Left, Right}

var sideName = map[Side]string{
	Left:  "left",
	Right: "right",
}

func (s Side) String() string {
	if name, ok := sideName[s]; ok {
		return name
	}

	return fmt.Sprintf("Side(%d)", int(s))
}

func (s Side) Valid() bool {
	return s == Left || s == Right
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == Left {
		return Right
	}

	return Left
}

type Actor int

const (
	Self Actor = iota
	Opponent
)

func (a Actor) String() string {
	switch a {
	case Self:
		return "self"
	case Opponent:
		return "opponent"
	default:
		return fmt.Sprintf("Actor(%d)", int(a))
	}
}

func (a Actor) Valid() bool {
	return a == Self || a == Opponent
}

// ParseHand reads a hand name typed by a player. Single letter shortcuts are
// accepted.
func ParseHand(str string) (Hand, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "rock", "r":
		return Rock, nil
	case "paper", "p":
		return Paper, nil
	case "scissors", "scissor", "s":
		return Scissors, nil
	}

	return NoHand, fmt.Errorf("%w: unknown hand %q", ErrInvalidArgument, str)
}

// ParseSide reads a side name typed by a player.
func ParseSide(str string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}

	return Left, fmt.Errorf("%w: unknown side %q", ErrInvalidArgument, str)
}

func mustHand(h Hand) {
	if !h.Valid() {
		panic(fmt.Errorf("%w: hand %v", ErrInvalidArgument, h))
	}
}

func mustSide(s Side) {
	if !s.Valid() {
		panic(fmt.Errorf("%w: side %v", ErrInvalidArgument, s))
	}
}
