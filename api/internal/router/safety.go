package router

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// SafetyVerdict is the result of the safety gate.
type SafetyVerdict struct {
	OK         bool
	ReasonCode string // "inappropriate_content" when !OK
}

// Ordered categories: explicit sexual content, violence/self-harm,
// hate/insults. First match wins.
var badPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(porn|porno|pornographique)\b`),
	regexp.MustCompile(`(?i)\b(sexe|sexuel|sexuelle|nue?s?)\b`),
	regexp.MustCompile(`(?i)\b(viol|violence|tuer|meurtre|suicide)\b`),
	regexp.MustCompile(`(?i)\b(haine|insulte?s?)\b`),
}

// CheckSafety flags disallowed content categories. Pure and total.
func CheckSafety(text string) SafetyVerdict {
	t := norm.NFC.String(text)
	for _, re := range badPatterns {
		if re.MatchString(t) {
			return SafetyVerdict{ReasonCode: ReasonInappropriateContent}
		}
	}
	return SafetyVerdict{OK: true}
}
