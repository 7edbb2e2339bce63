// Package router turns a free-text French tutoring request into a routing
// decision: either ROUTE with extracted parameters, or CLARIFY with a
// question, with safety and language gating in front. The pipeline is pure
// and deterministic; rule documents are loaded once and shared read-only.
package router

import (
	"regexp"

	"prof-bot/api/internal/validate"
)

// Second-chance pass for CHECK_SOLUTION phrasing variants: hyphen/space
// forms of "est-ce" and synonyms for "correct". Applied by the orchestrator
// only when both classification phases returned nothing — a deliberate
// fallback, not a third classifier.
var reCheckFallback = regexp.MustCompile(
	`(?i)\b(est[-\s]?ce\s+(que\s+)?(c['’]est\s+)?(correct|juste|bon|vrai)|c['’]est\s+(correct|juste|bon))\b`)

// RoutePrompt is the entry point. It always returns a fully populated
// RouterOutput; the error is non-nil only when the assembled record fails
// the structural contract, which is a pipeline defect rather than a user
// condition.
func RoutePrompt(in RouterInput) (RouterOutput, error) {
	normalized := NormalizePrompt(in.Message)

	out := RouterOutput{
		Action:      ActionClarify,
		Language:    strPtr("fr"),
		Constraints: defaultConstraints(),
	}

	if normalized == "" {
		out.Format = strPtr("cours")
		out.Clarify = &Clarify{Question: "Peux-tu préciser ta demande ?"}
		return finish(out)
	}

	if v := CheckSafety(normalized); !v.OK {
		out.Action = ActionBlocked
		out.ReasonCode = v.ReasonCode
		return finish(out)
	}

	if !IsLikelyFrench(normalized) {
		out.Action = ActionUnsupportedLanguage
		out.Language = strPtr("non_fr")
		out.ReasonCode = ReasonUnsupportedLanguage
		return finish(out)
	}

	intent := DetectIntent(normalized)
	if intent == "" && reCheckFallback.MatchString(normalized) {
		intent = IntentCheckSolution
	}

	slots := ExtractSlots(normalized)

	// slot-extracted level wins; otherwise fall back to the profile
	level := slots.Level
	if level == nil && in.UserProfile != nil && in.UserProfile.Level != nil && *in.UserProfile.Level != "" {
		level = in.UserProfile.Level
	}

	dec := DecidePolicy(intent, level, slots.Topic, slots.Subtopic, slots.Format)

	out.Action = dec.Action
	if intent != "" {
		out.Intent = &intent
	}
	out.Level = level
	out.Topic = slots.Topic
	out.Subtopic = slots.Subtopic
	out.Format = slots.Format
	out.Constraints = ExtractConstraints(normalized)
	out.Clarify = dec.Clarify
	out.ReasonCode = dec.ReasonCode

	if out.Format == nil {
		if intent == IntentPracticeTopic {
			out.Format = strPtr("exercice")
		} else {
			out.Format = strPtr("cours")
		}
	}
	return finish(out)
}

func finish(out RouterOutput) (RouterOutput, error) {
	if err := validate.RouterOutput(out); err != nil {
		return out, err
	}
	return out, nil
}
