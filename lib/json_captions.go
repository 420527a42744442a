package lib

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	CaptionTie     = "tie"
	CaptionWin     = "win"
	CaptionLose    = "lose"
	CaptionDiscard = "discard"
)

type CaptionValues struct {
	Winner string
	Loser  string
}

// JSONCaptions hands out caption templates per kind without repeating one
// until every template of that kind has been used.
type JSONCaptions struct {
	kinds map[string]*captionBag
}

type captionBag struct {
	templateIndexes []int
	templates       []*template.Template
}

func NewJSONCaptions(data []byte) (*JSONCaptions, error) {
	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not parse captions data: %w", err)
	}

	jc := &JSONCaptions{kinds: make(map[string]*captionBag, len(raw))}
	for kind, phrases := range raw {
		bag := &captionBag{}
		for i, phrase := range phrases {
			tmpl, err := template.New(fmt.Sprintf("%v-%v", kind, i)).Parse(phrase)
			if err != nil {
				return nil, fmt.Errorf("unable to parse %v caption '%v': %w", kind, phrase, err)
			}

			bag.templates = append(bag.templates, tmpl)
		}

		if len(bag.templates) == 0 {
			return nil, fmt.Errorf("there are no %v captions in the captions data", kind)
		}

		bag.generateTemplateIndexes()
		jc.kinds[kind] = bag
	}

	log.Debugf("created new captions generator with %v kinds", len(jc.kinds))
	return jc, nil
}

// GetCaption renders a random caption of the given kind. Hand names in vals
// should be lower case; the winner is capitalised here.
func (jc *JSONCaptions) GetCaption(kind string, vals CaptionValues) string {
	fallback := defaultCaption(kind, vals)

	bag, ok := jc.kinds[kind]
	if !ok {
		log.Warnf("no captions of kind %v, using default", kind)
		return fallback
	}

	i, err := GetRandomInt(0, len(bag.templateIndexes))
	if err != nil {
		log.Errorf("could not retrieve random int for picking a caption: %v", err)
		return fallback
	}

	vals.Winner = Capitalize(vals.Winner)

	var result bytes.Buffer
	tmpl := bag.templates[bag.templateIndexes[i]]
	if err := tmpl.Execute(&result, vals); err != nil {
		log.Errorf("error executing template with vals: %v", err)
		return fallback
	}

	if len(bag.templateIndexes) == 1 {
		bag.generateTemplateIndexes()
	} else {
		bag.templateIndexes = append(bag.templateIndexes[:i], bag.templateIndexes[i+1:]...)
	}

	return result.String()
}

func (jc *JSONCaptions) CaptionCount(kind string) int {
	bag, ok := jc.kinds[kind]
	if !ok {
		return 0
	}

	return len(bag.templates)
}

func (b *captionBag) generateTemplateIndexes() {
	n := len(b.templates)
	b.templateIndexes = make([]int, n)
	for i := 0; i < n; i++ {
		b.templateIndexes[i] = i
	}
}

// Capitalize title-cases a word. A Caser is stateful so one is built per call.
func Capitalize(str string) string {
	return cases.Title(language.English).String(str)
}

func defaultCaption(kind string, vals CaptionValues) string {
	switch kind {
	case CaptionTie:
		return "It's a tie!"
	case CaptionWin:
		return fmt.Sprintf("%v beats %v, you win!", Capitalize(vals.Winner), vals.Loser)
	case CaptionLose:
		return fmt.Sprintf("%v beats %v, computer wins!", Capitalize(vals.Winner), vals.Loser)
	case CaptionDiscard:
		return "Minus one! (pick one hand to remove)"
	default:
		return ""
	}
}
