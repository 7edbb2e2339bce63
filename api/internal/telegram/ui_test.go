package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prof-bot/api/internal/router"
)

func strPtr(s string) *string { return &s }

func TestRouteRecap(t *testing.T) {
	intent := router.IntentPracticeTopic
	out := router.RouterOutput{
		Action:   router.ActionRoute,
		Intent:   &intent,
		Topic:    strPtr("derivees"),
		Subtopic: strPtr("tangente"),
		Level:    strPtr("1ere"),
		Format:   strPtr("exercice"),
		Constraints: router.Constraints{
			Difficulte: "difficile",
			Duree:      strPtr("30min"),
			Indices:    "non",
		},
	}
	msg := routeRecap(out)
	assert.Contains(t, msg, "des exercices")
	assert.Contains(t, msg, "derivees")
	assert.Contains(t, msg, "tangente")
	assert.Contains(t, msg, "niveau 1ere")
	assert.Contains(t, msg, "difficulté difficile")
	assert.Contains(t, msg, "durée 30min")
	assert.Contains(t, msg, "sans indices")
}

func TestRouteRecapDefaults(t *testing.T) {
	intent := router.IntentAskExplanation
	out := router.RouterOutput{
		Action:      router.ActionRoute,
		Intent:      &intent,
		Topic:       strPtr("fractions"),
		Format:      strPtr("cours"),
		Constraints: router.Constraints{Difficulte: "auto", Indices: "oui"},
	}
	msg := routeRecap(out)
	assert.Contains(t, msg, "un cours")
	assert.Contains(t, msg, "fractions")
	assert.NotContains(t, msg, "difficulté")
	assert.NotContains(t, msg, "durée")
}

func TestPendingPromptTTL(t *testing.T) {
	setPending(42, "je veux des exercices")
	got, ok := pendingPrompt(42)
	assert.True(t, ok)
	assert.Equal(t, "je veux des exercices", got)

	clearPending(42)
	_, ok = pendingPrompt(42)
	assert.False(t, ok)
}
