package router

import (
	"regexp"
	"strconv"
)

var (
	// "1h", "1 h 20", "1h20", "2h30"
	reHours = regexp.MustCompile(`(\d+)\s*h(?:\s*(\d{1,2}))?`)
	// "30 min", "45m", "15 minutes"
	reMinutes = regexp.MustCompile(`(\d+)\s*(?:min|m|minutes?)`)
)

// ParseDuration normalizes duration phrases to minutes: "30 min" → "30min",
// "1h" → "60min", "2h30" → "150min". The hour pattern is tried first —
// "1h20" must never be read by the bare minute pattern. Nil when absent.
func ParseDuration(text string) *string {
	t := foldKey(text)

	if m := reHours.FindStringSubmatch(t); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins := 0
		if m[2] != "" {
			mins, _ = strconv.Atoi(m[2])
		}
		return strPtr(strconv.Itoa(h*60+mins) + "min")
	}
	if m := reMinutes.FindStringSubmatch(t); m != nil {
		n, _ := strconv.Atoi(m[1])
		return strPtr(strconv.Itoa(n) + "min")
	}
	return nil
}

// Difficulty lookup order. Declared explicitly: first match wins.
var difficultyOrder = [...]string{"facile", "moyen", "difficile"}

// ExtractConstraints pulls difficulty, hint preference and duration out of
// the text. Defaults: difficulte=auto, indices=oui, duree=nil. A negative
// hint cue always beats a positive one.
func ExtractConstraints(input string) Constraints {
	lx := loadLexicons()
	text := foldKey(input)
	padded := " " + text + " "

	c := defaultConstraints()
	for _, d := range difficultyOrder {
		if anyWord(padded, lx.difficulty[d]) {
			c.Difficulte = d
			break
		}
	}

	switch {
	case anyWord(padded, lx.indices["non"]):
		c.Indices = "non"
	case anyWord(padded, lx.indices["oui"]):
		c.Indices = "oui"
	}

	c.Duree = ParseDuration(text)
	return c
}
