package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/deadloct/minus-one/settings"
	log "github.com/sirupsen/logrus"
)

type Sender interface {
	Send(str string) error
	SendQuoted(str string) error
}

// WriterSender writes messages to a terminal or any other writer, wrapping
// lines that are longer than MaxLineLength on word boundaries.
type WriterSender struct {
	MaxLineLength int
	Quoted        bool

	w io.Writer
	sync.Mutex
}

func NewWriterSender(w io.Writer, quoted bool) *WriterSender {
	return &WriterSender{
		MaxLineLength: settings.TerminalMaxLineLength,
		Quoted:        quoted,
		w:             w,
	}
}

func (s *WriterSender) Send(str string) error {
	return s.sendBlock(str, false)
}

// SendQuoted block quotes str when the sender is configured to.
func (s *WriterSender) SendQuoted(str string) error {
	return s.sendBlock(str, s.Quoted)
}

func (s *WriterSender) sendBlock(str string, quoted bool) error {
	s.Lock()
	defer s.Unlock()

	var errs []error
	for _, line := range strings.Split(str, "\n") {
		for _, wrapped := range s.wrapLine(line) {
			if quoted {
				wrapped = "> " + wrapped
			}

			if _, err := fmt.Fprintln(s.w, wrapped); err != nil {
				log.Errorf("error writing line of length %v: %v", len(wrapped), err)
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// wrapLine splits str on word boundaries so no line runs past MaxLineLength
// runes. Spacing between words that stay on the same line is kept as is.
func (s *WriterSender) wrapLine(str string) []string {
	if s.MaxLineLength <= 0 || utf8.RuneCountInString(str) <= s.MaxLineLength {
		return []string{str}
	}

	var (
		lines  []string
		line   string
		length int
	)

	for _, chunk := range splitWords(str) {
		n := utf8.RuneCountInString(chunk)
		if line != "" && length+n > s.MaxLineLength {
			lines = append(lines, line)
			chunk = strings.TrimLeftFunc(chunk, unicode.IsSpace)
			line, n = "", utf8.RuneCountInString(chunk)
			length = 0
		}

		line += chunk
		length += n
	}

	if strings.TrimSpace(line) != "" {
		lines = append(lines, line)
	}

	return lines
}

// splitWords cuts str before each run of whitespace that follows a word, so
// every piece carries the spacing that precedes it.
func splitWords(str string) []string {
	var (
		words []string
		start int
		prev  rune
	)

	for i, r := range str {
		if i > 0 && unicode.IsSpace(r) && !unicode.IsSpace(prev) {
			words = append(words, str[start:i])
			start = i
		}
		prev = r
	}

	return append(words, str[start:])
}
