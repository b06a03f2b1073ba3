// Package sentiment scores English text for polarity and subjectivity using
// a small adjective lexicon.
//
// Polarity lies in [-1, 1] and subjectivity in [0, 1]. Both are the mean of
// the lexicon entries found in the text, after intensifier and negation
// adjustments. Text with no lexicon hits scores (0, 0).
package sentiment

import (
	"strings"
	"unicode"
)

// negationFlip scales the polarity of a negated word. "not good" is mildly
// negative rather than the full opposite of "good".
const negationFlip = -0.5

type Score struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type entry struct {
	polarity     float64
	subjectivity float64
}

type Analyzer struct {
	lexicon      map[string]entry
	intensifiers map[string]float64
}

// New returns an Analyzer backed by the built-in lexicon.
func New() *Analyzer {
	return &Analyzer{
		lexicon:      defaultLexicon,
		intensifiers: defaultIntensifiers,
	}
}

func (a *Analyzer) Analyze(text string) Score {
	tokens := tokenize(text)

	var polarity, subjectivity float64
	hits := 0
	for i, tok := range tokens {
		e, ok := a.lexicon[tok]
		if !ok {
			continue
		}
		p, s := e.polarity, e.subjectivity

		negateAt := i - 1
		if i > 0 {
			if factor, ok := a.intensifiers[tokens[i-1]]; ok {
				p *= factor
				s *= factor
				negateAt = i - 2
			}
		}
		if negateAt >= 0 && isNegation(tokens[negateAt]) {
			p *= negationFlip
		}

		polarity += clamp(p, -1, 1)
		subjectivity += clamp(s, 0, 1)
		hits++
	}

	if hits == 0 {
		return Score{}
	}
	return Score{
		Polarity:     clamp(polarity/float64(hits), -1, 1),
		Subjectivity: clamp(subjectivity/float64(hits), 0, 1),
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '’'
	})
}

func isNegation(tok string) bool {
	switch tok {
	case "not", "no", "never", "cannot", "without", "hardly":
		return true
	}
	return strings.HasSuffix(tok, "n't") || strings.HasSuffix(tok, "n’t")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
