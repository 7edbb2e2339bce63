package router

import "regexp"

// Quick pre-checks that catch fragile phrasing the generic rule patterns
// miss. They take precedence over the rule table.
var (
	reSolutionWord = regexp.MustCompile(`(?i)\b(solution|r[ée]ponse)\b`)
	reCheckVerb    = regexp.MustCompile(`(?i)\b(corrig(er|e)|v[ée]rif(ier|ie))\b`)
	reEstCe        = regexp.MustCompile(`(?i)\best[-\s]?ce\b`)
	reCorrectWord  = regexp.MustCompile(`(?i)\b(correct|juste|bon)\b`)
	rePracticeNoun = regexp.MustCompile(`(?i)\b(exercice|exercices|entrainement|entraînement|qcm)\b`)
)

func quickHeuristics(s string) Intent {
	// CHECK_SOLUTION: a solution/answer word plus a verify/is-this-correct
	// word, in any order.
	hasSolution := reSolutionWord.MatchString(s)
	hasCheck := reCheckVerb.MatchString(s) ||
		reEstCe.MatchString(s) ||
		reCorrectWord.MatchString(s)
	if hasSolution && hasCheck {
		return IntentCheckSolution
	}

	// PRACTICE_TOPIC: a bare practice noun, no explicit topic marker needed.
	if rePracticeNoun.MatchString(s) {
		return IntentPracticeTopic
	}
	return ""
}

// DetectIntent maps normalized text to an intent tag. Fast heuristics run
// first; otherwise the externally authored rule table is evaluated in its
// declared order and the first intent with any matching pattern wins.
// An empty result means undetermined, which is not an error.
func DetectIntent(normalized string) Intent {
	if fast := quickHeuristics(normalized); fast != "" {
		return fast
	}

	lx := loadLexicons()
	for _, it := range lx.intentOrder {
		for _, re := range lx.intentRx[it] {
			if re.MatchString(normalized) {
				return it
			}
		}
	}
	return ""
}
