// Package intent maps chat input to attendance events without any
// knowledge of the transport it came from.
package intent

import "strings"

// Kind is the intent of a free-text message.
type Kind string

const (
	CheckIn      Kind = "check_in"
	CheckOut     Kind = "check_out"
	Unrecognized Kind = "unrecognized"
)

// Vocabulary lists the phrases that mark a message as a check-in or a
// check-out. Matching is case-insensitive substring membership.
type Vocabulary struct {
	CheckIn  []string `yaml:"check_in"`
	CheckOut []string `yaml:"check_out"`
}

// DefaultVocabulary covers Ukrainian and Russian phrasing in both genders
// plus a few English phrases.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		CheckIn: []string{
			"прийшов", "прийшла", "пришел", "пришла",
			"прибув", "прибула", "на роботі", "на работе",
			"checking in", "checked in", "arrived",
		},
		CheckOut: []string{
			"пішов", "пішла", "ушел", "ушла", "йду", "іду",
			"вийшов", "вийшла", "вышел", "вышла",
			"checking out", "checked out", "heading home",
		},
	}
}

// Classify returns the intent of text. Check-in phrases take precedence
// when a message contains both.
func Classify(text string, v Vocabulary) Kind {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return Unrecognized
	}
	if containsAny(t, v.CheckIn) {
		return CheckIn
	}
	if containsAny(t, v.CheckOut) {
		return CheckOut
	}
	return Unrecognized
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" && strings.Contains(text, p) {
			return true
		}
	}
	return false
}
