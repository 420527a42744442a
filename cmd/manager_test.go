package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/deadloct/minus-one/data"
	"github.com/deadloct/minus-one/game"
	"github.com/deadloct/minus-one/lib"
	"github.com/deadloct/minus-one/settings"
	log "github.com/sirupsen/logrus"
)

type scriptedChooser struct {
	picks []int
	calls int
}

func (c *scriptedChooser) Choose(n int) int {
	v := c.picks[c.calls%len(c.picks)]
	c.calls++
	return v
}

func testSetupManager(t *testing.T, picks ...int) (*Manager, *bytes.Buffer) {
	t.Helper()
	log.SetLevel(log.WarnLevel)

	captions, err := lib.NewJSONCaptions(data.CaptionsJSON)
	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer
	m := NewManager(ManagerConfig{
		Captions: captions,
		Chooser:  &scriptedChooser{picks: picks},
		Sender:   NewWriterSender(&buffer, false),
	})

	return m, &buffer
}

func run(t *testing.T, m *Manager, buffer *bytes.Buffer, line string) string {
	t.Helper()
	buffer.Reset()
	if !m.CommandHandler(line) {
		t.Fatalf("%q unexpectedly quit", line)
	}

	return buffer.String()
}

func expectContains(t *testing.T, output string, expected ...string) {
	t.Helper()
	for _, e := range expected {
		if !strings.Contains(output, e) {
			t.Errorf("expected output to contain %q, got:\n%v", e, output)
		}
	}
}

func TestManager_FullRound(t *testing.T) {
	// opponent draws rock, scissors and discards right
	m, buffer := testSetupManager(t, 0, 2, 1)

	expectContains(t, run(t, m, buffer, "play"), "Let's play!")
	expectContains(t, run(t, m, buffer, "left rock"), "Left hand locked: ✊ rock")
	expectContains(t, run(t, m, buffer, "pick right paper"),
		"Right hand locked: ✋ paper",
		"Computer: ✊ rock | ✌️ scissors",
		"Minus one! (pick one hand to remove)",
	)
	expectContains(t, run(t, m, buffer, "remove left"),
		"You removed your left hand and kept ✋ paper.",
		"Computer removed its right hand and kept ✊ rock.",
		"Paper beats rock, you win!",
		`Type "play" to play again.`,
	)
	expectContains(t, run(t, m, buffer, "state"), "Phase: resolved", "Paper beats rock, you win!")

	if phase := m.Game().Phase(); phase != game.Resolved {
		t.Errorf("expected resolved, got %v", phase)
	}

	expectContains(t, run(t, m, buffer, "play again"), "Let's play!")
	if phase := m.Game().Phase(); phase != game.AwaitingHands {
		t.Errorf("expected awaiting hands, got %v", phase)
	}
}

func TestManager_Captions(t *testing.T) {
	tests := map[string]struct {
		Picks    []int
		Left     string
		Right    string
		Remove   string
		Expected string
	}{
		"tie": {
			Picks:    []int{0, 0, 0},
			Left:     "rock",
			Right:    "paper",
			Remove:   "right",
			Expected: "It's a tie!",
		},
		"computer wins": {
			Picks:    []int{2, 2, 0},
			Left:     "paper",
			Right:    "rock",
			Remove:   "right",
			Expected: "Scissors beats paper, computer wins!",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, buffer := testSetupManager(t, test.Picks...)
			run(t, m, buffer, "play")
			run(t, m, buffer, "left "+test.Left)
			run(t, m, buffer, "right "+test.Right)
			expectContains(t, run(t, m, buffer, "remove "+test.Remove), test.Expected)
		})
	}
}

func TestManager_Gating(t *testing.T) {
	tests := map[string]struct {
		Setup    []string
		Line     string
		Expected string
		Phase    game.Phase
	}{
		"remove before play": {
			Line:     "remove left",
			Expected: "No round is running",
			Phase:    game.Idle,
		},
		"pick before play": {
			Line:     "left rock",
			Expected: "No round is running",
			Phase:    game.Idle,
		},
		"play during round": {
			Setup:    []string{"play"},
			Line:     "play",
			Expected: "A round is already in progress",
			Phase:    game.AwaitingHands,
		},
		"remove with one hand": {
			Setup:    []string{"play", "left rock"},
			Line:     "remove left",
			Expected: "Pick both of your hands first.",
			Phase:    game.AwaitingHands,
		},
		"change a locked hand": {
			Setup:    []string{"play", "left rock"},
			Line:     "left paper",
			Expected: "Your left hand is already locked in as rock.",
			Phase:    game.AwaitingHands,
		},
		"pick while discarding": {
			Setup:    []string{"play", "left rock", "right rock"},
			Line:     "pick left paper",
			Expected: "Your hands are locked, remove one of them.",
			Phase:    game.AwaitingDiscard,
		},
		"remove after resolve": {
			Setup:    []string{"play", "left rock", "right rock", "remove left"},
			Line:     "remove right",
			Expected: `The round is over, type "play" to play again.`,
			Phase:    game.Resolved,
		},
		"reset": {
			Setup:    []string{"play", "left rock"},
			Line:     "reset",
			Expected: "Round cleared.",
			Phase:    game.Idle,
		},
		"unknown side": {
			Setup:    []string{"play"},
			Line:     "pick middle rock",
			Expected: `"middle" is not a side`,
			Phase:    game.AwaitingHands,
		},
		"unknown hand": {
			Setup:    []string{"play"},
			Line:     "pick left lizard",
			Expected: `"lizard" is not a hand`,
			Phase:    game.AwaitingHands,
		},
		"pick usage": {
			Setup:    []string{"play"},
			Line:     "pick left",
			Expected: "Usage: pick",
			Phase:    game.AwaitingHands,
		},
		"unknown command": {
			Line:     "dance",
			Expected: `Unknown command "dance"`,
			Phase:    game.Idle,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			m, buffer := testSetupManager(t, 1)
			for _, line := range test.Setup {
				run(t, m, buffer, line)
			}

			expectContains(t, run(t, m, buffer, test.Line), test.Expected)

			if phase := m.Game().Phase(); phase != test.Phase {
				t.Errorf("expected phase %v, got %v", test.Phase, phase)
			}
		})
	}
}

func TestManager_HelpAndQuit(t *testing.T) {
	settings.ImportData()
	m, buffer := testSetupManager(t, 0)

	expectContains(t, run(t, m, buffer, "help"), settings.Title, "remove <side>")

	buffer.Reset()
	if m.CommandHandler("quit") {
		t.Error("expected quit to stop the loop")
	}
	expectContains(t, buffer.String(), "Thanks for playing!")

	if !m.CommandHandler("   ") {
		t.Error("blank lines should be ignored")
	}
}

func TestManager_Welcome(t *testing.T) {
	m, buffer := testSetupManager(t, 0)
	m.Welcome()
	expectContains(t, buffer.String(), ToDoubleStruck("MINUS ONE"), settings.DefaultSeparator)
}
