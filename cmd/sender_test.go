package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWriterSender_SendQuoted(t *testing.T) {
	tests := map[string]struct {
		Quoted   bool
		Input    string
		Expected string
	}{
		"plain": {
			Input:    "one\ntwo",
			Expected: "one\ntwo\n",
		},
		"quoted": {
			Quoted:   true,
			Input:    "one\ntwo",
			Expected: "> one\n> two\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buffer bytes.Buffer
			s := NewWriterSender(&buffer, test.Quoted)
			if err := s.SendQuoted(test.Input); err != nil {
				t.Fatal(err)
			}

			if buffer.String() != test.Expected {
				t.Errorf("expected %q, got %q", test.Expected, buffer.String())
			}
		})
	}
}

func TestWriterSender_Send_NeverQuotes(t *testing.T) {
	var buffer bytes.Buffer
	s := NewWriterSender(&buffer, true)
	if err := s.Send("hello"); err != nil {
		t.Fatal(err)
	}

	if buffer.String() != "hello\n" {
		t.Errorf("expected unquoted output, got %q", buffer.String())
	}
}

func TestWriterSender_WrapsLongLines(t *testing.T) {
	tests := map[string]struct {
		Max      int
		Input    string
		Expected string
	}{
		"ascii words": {
			Max:      10,
			Input:    "aaaa bbbb cccc dddd",
			Expected: "aaaa bbbb\ncccc dddd\n",
		},
		"keeps padding": {
			Max:      20,
			Input:    "You:      ✊ rock | ✌️ scissors",
			Expected: "You:      ✊ rock |\n✌️ scissors\n",
		},
		"counts runes not bytes": {
			Max:      10,
			Input:    "✊✊✊✊✊✊✊✊",
			Expected: "✊✊✊✊✊✊✊✊\n",
		},
		"multibyte line that fits": {
			Max:      20,
			Input:    "✊ rock | ✌️ scissors",
			Expected: "✊ rock | ✌️ scissors\n",
		},
		"no limit": {
			Input:    "You:      ✊ rock | ✌️ scissors",
			Expected: "You:      ✊ rock | ✌️ scissors\n",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var buffer bytes.Buffer
			s := NewWriterSender(&buffer, false)
			s.MaxLineLength = test.Max

			if err := s.Send(test.Input); err != nil {
				t.Fatal(err)
			}

			if buffer.String() != test.Expected {
				t.Errorf("expected %q, got %q", test.Expected, buffer.String())
			}

			if test.Max <= 0 {
				return
			}

			for _, line := range strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n") {
				// a single word longer than the limit is left whole
				if n := utf8.RuneCountInString(line); n > test.Max && strings.ContainsAny(line, " ") {
					t.Errorf("line %q has %v runes, more than %v", line, n, test.Max)
				}
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriterSender_JoinsErrors(t *testing.T) {
	s := NewWriterSender(failingWriter{}, false)
	if err := s.Send("one\ntwo"); err == nil {
		t.Error("expected write errors to be returned")
	}
}
