package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The four published contract examples must validate.
func TestContractExamples(t *testing.T) {
	examples := map[string]map[string]any{
		"ROUTE": {
			"action":   "ROUTE",
			"language": "fr",
			"intent":   "PRACTICE_TOPIC",
			"level":    "3e_college",
			"topic":    "derivees",
			"subtopic": nil,
			"format":   "exercice",
			"constraints": map[string]any{
				"difficulte": "moyen", "duree": nil, "indices": "oui",
			},
		},
		"CLARIFY": {
			"action":   "CLARIFY",
			"language": "fr",
			"intent":   nil,
			"level":    nil,
			"topic":    nil,
			"subtopic": nil,
			"format":   "cours",
			"constraints": map[string]any{
				"difficulte": "auto", "duree": nil, "indices": "oui",
			},
			"clarify": map[string]any{"question": "Sur quel chapitre veux-tu travailler ?"},
		},
		"UNSUPPORTED_LANGUAGE": {
			"action":   "UNSUPPORTED_LANGUAGE",
			"language": "non_fr",
			"intent":   nil,
			"level":    nil,
			"topic":    nil,
			"subtopic": nil,
			"format":   nil,
			"constraints": map[string]any{
				"difficulte": "auto", "duree": nil, "indices": "oui",
			},
			"reasonCode": "unsupported_language",
		},
		"BLOCKED": {
			"action":   "BLOCKED",
			"language": "fr",
			"intent":   nil,
			"level":    nil,
			"topic":    nil,
			"subtopic": nil,
			"format":   nil,
			"constraints": map[string]any{
				"difficulte": "auto", "duree": nil, "indices": "oui",
			},
			"reasonCode": "inappropriate_content",
		},
	}

	for name, ex := range examples {
		assert.NoError(t, RouterOutput(ex), "example %s", name)
	}
}

func TestContractViolations(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{
			"action":   "ROUTE",
			"language": "fr",
			"intent":   "PRACTICE_TOPIC",
			"level":    nil,
			"topic":    "derivees",
			"subtopic": nil,
			"format":   "exercice",
			"constraints": map[string]any{
				"difficulte": "auto", "duree": nil, "indices": "oui",
			},
		}
	}

	t.Run("bad action enum", func(t *testing.T) {
		ex := base()
		ex["action"] = "MAYBE"
		err := RouterOutput(ex)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrContract)
	})

	t.Run("missing constraints", func(t *testing.T) {
		ex := base()
		delete(ex, "constraints")
		assert.ErrorIs(t, RouterOutput(ex), ErrContract)
	})

	t.Run("bad duration shape", func(t *testing.T) {
		ex := base()
		ex["constraints"] = map[string]any{
			"difficulte": "auto", "duree": "1h20", "indices": "oui",
		}
		assert.ErrorIs(t, RouterOutput(ex), ErrContract)
	})

	t.Run("unknown extra field", func(t *testing.T) {
		ex := base()
		ex["extra"] = true
		assert.ErrorIs(t, RouterOutput(ex), ErrContract)
	})

	t.Run("empty clarify question", func(t *testing.T) {
		ex := base()
		ex["action"] = "CLARIFY"
		ex["clarify"] = map[string]any{"question": ""}
		assert.ErrorIs(t, RouterOutput(ex), ErrContract)
	})
}
