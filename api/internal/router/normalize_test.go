package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePrompt(t *testing.T) {
	t.Run("collapses spaces and normalizes digits", func(t *testing.T) {
		assert.Equal(t, "Bonjour 123", NormalizePrompt("  Bonjour   ١٢٣  "))
	})

	t.Run("both arabic digit ranges", func(t *testing.T) {
		assert.Equal(t, "0123456789",
			NormalizePrompt("٠١٢٣٤٥٦٧٨٩"))
		assert.Equal(t, "0123456789",
			NormalizePrompt("۰۱۲۳۴۵۶۷۸۹"))
	})

	t.Run("mixed scripts in one pass", func(t *testing.T) {
		assert.Equal(t, "45 min et 12", NormalizePrompt("٤٥ min et ۱۲"))
	})

	t.Run("odd spaces unified", func(t *testing.T) {
		assert.Equal(t, "a b c", NormalizePrompt("a b c"))
	})

	t.Run("empty and whitespace-only", func(t *testing.T) {
		assert.Equal(t, "", NormalizePrompt(""))
		assert.Equal(t, "", NormalizePrompt("     \t "))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"  Bonjour   ١٢٣  ",
			"Je veux des exercices sur les dérivées",
			"un exercice difficile sans indices en 30 min",
			"",
			"٠١٢٣٤٥٦٧٨٩ et ۰۹",
		}
		for _, in := range inputs {
			once := NormalizePrompt(in)
			assert.Equal(t, once, NormalizePrompt(once), "input %q", in)
		}
	})
}

func TestIsLikelyFrench(t *testing.T) {
	t.Run("accepts obvious French", func(t *testing.T) {
		assert.True(t, IsLikelyFrench("Explique-moi les équations du 2nd degré"))
	})

	t.Run("passes very short strings", func(t *testing.T) {
		assert.True(t, IsLikelyFrench("ok"))
	})

	t.Run("rejects clear English text", func(t *testing.T) {
		assert.False(t, IsLikelyFrench("please explain quadratic equations"))
		assert.False(t, IsLikelyFrench("I want exercises on derivatives"))
	})
}
