package cmd

import (
	"fmt"
	"strings"

	"github.com/deadloct/minus-one/game"
	"github.com/deadloct/minus-one/lib"
	"github.com/deadloct/minus-one/settings"
	log "github.com/sirupsen/logrus"
)

const (
	CommandHelp   = "help"
	CommandPlay   = "play"
	CommandPick   = "pick"
	CommandRemove = "remove"
	CommandReset  = "reset"
	CommandState  = "state"
	CommandQuit   = "quit"
)

var commandAliases = map[string]string{
	"start":   CommandPlay,
	"again":   CommandPlay,
	"discard": CommandRemove,
	"minus":   CommandRemove,
	"status":  CommandState,
	"exit":    CommandQuit,
	"?":       CommandHelp,
}

type CaptionGenerator interface {
	GetCaption(kind string, vals lib.CaptionValues) string
}

type ManagerConfig struct {
	Captions CaptionGenerator
	Chooser  game.Chooser
	Sender   Sender
}

// Manager is the terminal front end for a single game. It gates commands by
// phase the way disabled buttons would and renders the engine's
// notifications.
type Manager struct {
	ManagerConfig

	game *game.Game
}

func NewManager(cfg ManagerConfig) *Manager {
	m := &Manager{ManagerConfig: cfg}
	m.game = game.NewGame(game.GameConfig{
		Chooser:  cfg.Chooser,
		Listener: m,
	})

	return m
}

func (m *Manager) Game() *game.Game {
	return m.game
}

func (m *Manager) Welcome() {
	m.send(fmt.Sprintf("%v\n%v\nType %q to start a round or %q for the rules.",
		ToDoubleStruck(strings.ToUpper(settings.Title)), settings.DefaultSeparator, CommandPlay, CommandHelp))
}

// CommandHandler runs one line of player input. It returns false once the
// player asks to quit.
func (m *Manager) CommandHandler(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return true
	}

	name := fields[0]
	if alias, ok := commandAliases[name]; ok {
		name = alias
	}

	args := fields[1:]
	log.Debugf("received command %v %v", name, args)

	switch name {
	case CommandHelp:
		if err := m.Sender.Send(settings.Help); err != nil {
			log.Errorf("failed to send help: %v", err)
		}

	case CommandPlay:
		m.play()

	case CommandPick:
		if len(args) != 2 {
			m.send(`Usage: pick <left|right> <rock|paper|scissors>`)
			return true
		}
		m.pick(args[0], args[1])

	case CommandRemove:
		if len(args) != 1 {
			m.send(`Usage: remove <left|right>`)
			return true
		}
		m.remove(args[0])

	case CommandReset:
		m.game.Reset()

	case CommandState:
		m.sendState()

	case CommandQuit:
		m.send("Thanks for playing!")
		return false

	default:
		// "left rock" is shorthand for "pick left rock"
		if _, err := game.ParseSide(name); err == nil && len(args) == 1 {
			m.pick(name, args[0])
			return true
		}

		m.send(fmt.Sprintf("Unknown command %q, type %q for the list of commands.", name, CommandHelp))
	}

	return true
}

func (m *Manager) play() {
	switch m.game.Phase() {
	case game.AwaitingHands, game.AwaitingDiscard:
		m.send("A round is already in progress. Finish it or reset first.")
		return
	}

	m.game.StartRound()
}

func (m *Manager) pick(sideArg, handArg string) {
	side, err := game.ParseSide(sideArg)
	if err != nil {
		m.send(fmt.Sprintf("%q is not a side, use left or right.", sideArg))
		return
	}

	hand, err := game.ParseHand(handArg)
	if err != nil {
		m.send(fmt.Sprintf("%q is not a hand, use rock, paper or scissors.", handArg))
		return
	}

	state := m.game.State()
	if state.Phase != game.AwaitingHands {
		m.sendUnavailable(state.Phase)
		return
	}

	if locked := state.Selection(game.Self, side); locked != game.NoHand && locked != hand {
		m.send(fmt.Sprintf("Your %v hand is already locked in as %v.", side, locked))
		return
	}

	m.game.ChooseHand(side, hand)
}

func (m *Manager) remove(sideArg string) {
	side, err := game.ParseSide(sideArg)
	if err != nil {
		m.send(fmt.Sprintf("%q is not a side, use left or right.", sideArg))
		return
	}

	if phase := m.game.Phase(); phase != game.AwaitingDiscard {
		m.sendUnavailable(phase)
		return
	}

	m.game.Discard(side)
}

func (m *Manager) sendUnavailable(phase game.Phase) {
	switch phase {
	case game.Idle:
		m.send(fmt.Sprintf("No round is running, type %q to start one.", CommandPlay))
	case game.AwaitingHands:
		m.send("Pick both of your hands first.")
	case game.AwaitingDiscard:
		m.send("Your hands are locked, remove one of them.")
	case game.Resolved:
		m.send(fmt.Sprintf("The round is over, type %q to play again.", CommandPlay))
	}
}

func (m *Manager) sendState() {
	state := m.game.State()
	lines := []string{
		fmt.Sprintf("Phase: %v", state.Phase),
		fmt.Sprintf("You:      %v | %v",
			handLabel(state.Selection(game.Self, game.Left)), handLabel(state.Selection(game.Self, game.Right))),
		fmt.Sprintf("Computer: %v | %v",
			handLabel(state.Selection(game.Opponent, game.Left)), handLabel(state.Selection(game.Opponent, game.Right))),
	}

	if result, ok := m.game.Outcome(); ok {
		lines = append(lines, m.caption(result))
	}

	m.send(strings.Join(lines, "\n"))
}

func (m *Manager) OnRoundReset() {
	if m.game.Phase() == game.Idle {
		m.send(fmt.Sprintf("Round cleared. Type %q when you are ready.", CommandPlay))
		return
	}

	m.send(strings.Join([]string{
		settings.DefaultSeparator,
		"Let's play! Pick a hand for each side, e.g. \"left rock\" then \"right paper\".",
	}, "\n"))
}

func (m *Manager) OnHandLocked(side game.Side, hand game.Hand) {
	m.send(fmt.Sprintf("%v hand locked: %v", lib.Capitalize(side.String()), handLabel(hand)))
}

func (m *Manager) OnOpponentHandsRevealed(left, right game.Hand) {
	m.send(strings.Join([]string{
		fmt.Sprintf("Computer: %v | %v", handLabel(left), handLabel(right)),
		m.Captions.GetCaption(lib.CaptionDiscard, lib.CaptionValues{}),
	}, "\n"))
}

func (m *Manager) OnDiscardResolved(selfDiscarded, opponentDiscarded game.Side, result game.Result) {
	m.send(strings.Join([]string{
		fmt.Sprintf("You removed your %v hand and kept %v.", selfDiscarded, handLabel(result.SelfHand)),
		fmt.Sprintf("Computer removed its %v hand and kept %v.", opponentDiscarded, handLabel(result.OpponentHand)),
		m.caption(result),
		fmt.Sprintf("Type %q to play again.", CommandPlay),
	}, "\n"))
}

func (m *Manager) caption(result game.Result) string {
	winner, loser, ok := result.Winner()
	if !ok {
		return m.Captions.GetCaption(lib.CaptionTie, lib.CaptionValues{})
	}

	kind := lib.CaptionWin
	if result.Outcome == game.OpponentWins {
		kind = lib.CaptionLose
	}

	return m.Captions.GetCaption(kind, lib.CaptionValues{Winner: winner.String(), Loser: loser.String()})
}

func (m *Manager) send(str string) {
	if err := m.Sender.SendQuoted(str); err != nil {
		log.Errorf("failed to send message: %v", err)
	}
}
