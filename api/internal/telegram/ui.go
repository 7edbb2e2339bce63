package telegram

import (
	"strings"

	"prof-bot/api/internal/router"
)

var formatLabels = map[string]string{
	"cours":         "un cours",
	"exercice":      "des exercices",
	"qcm":           "un QCM",
	"demonstration": "une démonstration",
}

// routeRecap builds the confirmation message for a ROUTE decision.
func routeRecap(out router.RouterOutput) string {
	var b strings.Builder
	b.WriteString("C'est parti ! Je te prépare ")

	label := "un cours"
	if out.Format != nil {
		if l, ok := formatLabels[*out.Format]; ok {
			label = l
		}
	}
	b.WriteString(label)

	if out.Intent != nil && *out.Intent == router.IntentStartDiagnostic {
		b.Reset()
		b.WriteString("C'est parti ! Je te prépare un test de niveau")
	}

	if out.Topic != nil {
		b.WriteString(" sur « " + *out.Topic + " »")
	}
	if out.Subtopic != nil {
		b.WriteString(" (chapitre : " + *out.Subtopic + ")")
	}
	if out.Level != nil {
		b.WriteString(", niveau " + *out.Level)
	}
	b.WriteString(".")

	var extras []string
	if out.Constraints.Difficulte != "auto" {
		extras = append(extras, "difficulté "+out.Constraints.Difficulte)
	}
	if out.Constraints.Duree != nil {
		extras = append(extras, "durée "+*out.Constraints.Duree)
	}
	if out.Constraints.Indices == "non" {
		extras = append(extras, "sans indices")
	}
	if len(extras) > 0 {
		b.WriteString(" (" + strings.Join(extras, ", ") + ")")
	}
	return b.String()
}
