package router

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	wsRun = regexp.MustCompile(`\s+`)
	// nbsp, figure space, narrow nbsp
	oddSpaces  = strings.NewReplacer(" ", " ", " ", " ", " ", " ")
	accentedFR = regexp.MustCompile(`[àâäçéèêëîïôöùûüÿœ]`)
)

// NormalizePrompt canonicalizes a user prompt: NFC unicode, odd spaces
// unified, whitespace collapsed, trimmed, Arabic-Indic digits folded to
// ASCII 0-9. Accents are kept — they matter in French. Idempotent.
func NormalizePrompt(raw string) string {
	if raw == "" {
		return ""
	}
	s := norm.NFC.String(raw)
	s = oddSpaces.Replace(s)
	s = strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
	s = strings.Map(foldDigit, s)
	return strings.TrimSpace(wsRun.ReplaceAllString(s, " "))
}

// foldDigit maps Arabic-Indic (U+0660-0669) and Eastern Arabic-Indic
// (U+06F0-06F9) digits to ASCII.
func foldDigit(r rune) rune {
	switch {
	case r >= 0x0660 && r <= 0x0669:
		return '0' + (r - 0x0660)
	case r >= 0x06F0 && r <= 0x06F9:
		return '0' + (r - 0x06F0)
	}
	return r
}

// Common FR function words / domain artifacts, matched with surrounding
// boundaries on the padded text. Domain cues at the end are prefix-matched.
var frCues = []string{
	" le ", " la ", " les ", " des ", " un ", " une ", " du ",
	" je ", " tu ", " il ", " elle ", " nous ", " vous ", " ils ", " elles ",
	" que ", " qui ", " quoi ", " dont ", " où ",
	" dans ", " sur ", " sous ", " avec ", " sans ", " entre ",
	" est ", " et ", " ou ", " mais ", " donc ", " or ", " ni ", " car ",
	" pourquoi ", " parce que ", " comment ",
	" ma ", " mon ", " mes ", " ta ", " ton ", " tes ", " sa ", " son ", " ses ",
	" ce ", " cette ", " ces ",
	" voici ", " voilà ",
	" équation", " dérivée", " inéquation", " géométrie", " fonction", " racine", " fraction",
}

// IsLikelyFrench is a lightweight French detector. Very short strings are
// accepted: they cannot be decided here and are left to clarification
// instead of being blocked.
func IsLikelyFrench(s string) bool {
	text := strings.ToLower(s)
	if utf8.RuneCountInString(text) < 4 {
		return true
	}

	padded := " " + text + " "
	hits := 0
	for _, cue := range frCues {
		if strings.Contains(padded, cue) {
			hits++
		}
		if hits >= 2 {
			return true
		}
	}

	// FR-looking diacritics count as one extra cue.
	if accentedFR.MatchString(text) {
		hits++
	}
	return hits >= 2
}
