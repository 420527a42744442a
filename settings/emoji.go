package settings

type EmojiKey string

var (
	EmojiRock     EmojiKey = "ROCK_EMOJI"
	EmojiPaper    EmojiKey = "PAPER_EMOJI"
	EmojiScissors EmojiKey = "SCISSORS_EMOJI"
	EmojiHidden   EmojiKey = "HIDDEN_EMOJI"

	defaultEmojis = map[EmojiKey]string{
		EmojiRock:     "✊",
		EmojiPaper:    "✋",
		EmojiScissors: "✌️",
		EmojiHidden:   "---",
	}
)

// GetEmoji returns the glyph for key, preferring the MINUS_ONE_<key>
// environment override. Read on every call so .env files loaded after
// package init still apply.
func GetEmoji(key EmojiKey) string {
	if v := GetenvStr(string(key)); v != "" {
		return v
	}

	return defaultEmojis[key]
}
