package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strOf(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestExtractSlots(t *testing.T) {
	t.Run("format, topic and subtopic for 2nd degree", func(t *testing.T) {
		s := ExtractSlots("Je veux des exercices sur les équations du 2nd degré, surtout le discriminant.")
		assert.Equal(t, "exercice", strOf(s.Format))
		assert.Equal(t, "equations_second_degre", strOf(s.Topic))
		assert.Equal(t, "discriminant", strOf(s.Subtopic))
	})

	t.Run("level alias", func(t *testing.T) {
		s := ExtractSlots("Exercices 3e collège sur les dérivées.")
		assert.Equal(t, "3e_college", strOf(s.Level))
		assert.Equal(t, "derivees", strOf(s.Topic))
		assert.Equal(t, "exercice", strOf(s.Format))
	})

	t.Run("qcm request", func(t *testing.T) {
		s := ExtractSlots("Donne-moi un QCM sur la géométrie analytique")
		assert.Equal(t, "qcm", strOf(s.Format))
		assert.Equal(t, "geometrie_analytique", strOf(s.Topic))
	})

	t.Run("subtopic backfills its parent topic", func(t *testing.T) {
		s := ExtractSlots("un exercice sur le discriminant")
		require.NotNil(t, s.Subtopic)
		assert.Equal(t, "discriminant", *s.Subtopic)
		require.NotNil(t, s.Topic)
		assert.Equal(t, "equations_second_degre", *s.Topic)
	})

	t.Run("explicit topic is never overridden by a subtopic parent", func(t *testing.T) {
		s := ExtractSlots("des exercices sur les dérivées, surtout le discriminant")
		assert.Equal(t, "derivees", strOf(s.Topic))
		assert.Equal(t, "discriminant", strOf(s.Subtopic))
	})

	t.Run("no match stays nil", func(t *testing.T) {
		s := ExtractSlots("bonjour")
		assert.Nil(t, s.Level)
		assert.Nil(t, s.Topic)
		assert.Nil(t, s.Subtopic)
		assert.Nil(t, s.Format)
	})

	t.Run("format priority qcm over exercice", func(t *testing.T) {
		s := ExtractSlots("un qcm avec des exercices sur les fractions")
		assert.Equal(t, "qcm", strOf(s.Format))
	})
}

func TestResolveLevel(t *testing.T) {
	for in, want := range map[string]string{
		"3e collège": "3e_college",
		"3eme":       "3e_college",
		"2nde":       "2nde",
		"Terminale":  "terminale",
		"1ère":       "1ere",
	} {
		got, ok := ResolveLevel(in)
		assert.True(t, ok, "alias %q", in)
		assert.Equal(t, want, got)
	}

	_, ok := ResolveLevel("cm2")
	assert.False(t, ok)
}
