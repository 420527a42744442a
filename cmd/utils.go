package cmd

import (
	"strings"

	"github.com/deadloct/minus-one/game"
	"github.com/deadloct/minus-one/settings"
)

// Letters that already existed in the Letterlike Symbols block and are missing
// from the Mathematical Alphanumeric Symbols range.
var doubleStruckExceptions = map[rune]rune{
	'C': 'ℂ',
	'H': 'ℍ',
	'N': 'ℕ',
	'P': 'ℙ',
	'Q': 'ℚ',
	'R': 'ℝ',
	'Z': 'ℤ',
}

func ToDoubleStruck(str string) string {
	toDS := func(r rune) rune {
		if v, ok := doubleStruckExceptions[r]; ok {
			return v
		}

		switch {
		case r >= 'A' && r <= 'Z':
			return 0x1D538 + (r - 'A')
		case r >= 'a' && r <= 'z':
			return 0x1D552 + (r - 'a')
		case r >= '0' && r <= '9':
			return 0x1D7D8 + (r - '0')
		}

		return r
	}

	return strings.Map(toDS, str)
}

func handEmoji(h game.Hand) string {
	switch h {
	case game.Rock:
		return settings.GetEmoji(settings.EmojiRock)
	case game.Paper:
		return settings.GetEmoji(settings.EmojiPaper)
	case game.Scissors:
		return settings.GetEmoji(settings.EmojiScissors)
	default:
		return settings.GetEmoji(settings.EmojiHidden)
	}
}

// handLabel renders a hand as "✊ rock", or the hidden marker when unset.
func handLabel(h game.Hand) string {
	if h == game.NoHand {
		return handEmoji(h)
	}

	return handEmoji(h) + " " + h.String()
}
