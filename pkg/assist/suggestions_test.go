package assist

import (
	"strings"
	"testing"

	"github.com/lecternhq/lectern/pkg/models"
	"github.com/stretchr/testify/assert"
)

var longResponse = strings.Repeat("Here is a detailed curriculum outline. ", 10)

func TestExtractSuggestions(t *testing.T) {
	t.Run("short response yields nothing", func(t *testing.T) {
		got := ExtractSuggestions("Sure!", models.CurriculumContext{})
		assert.Empty(t, got)
	})

	t.Run("complete context falls back to defaults", func(t *testing.T) {
		c := models.CurriculumContext{
			TargetAudience: "designers",
			Duration:       "4 weeks",
			Type:           models.TypeOffline,
		}
		got := ExtractSuggestions(longResponse, c)
		assert.Equal(t, defaultSuggestions, got)
	})

	t.Run("missing fields produce contextual suggestions first", func(t *testing.T) {
		got := ExtractSuggestions(longResponse, models.CurriculumContext{Type: models.TypeOnline})
		assert.Len(t, got, 3)
		assert.Equal(t, "Define the target learners more specifically", got[0])
		assert.Equal(t, "Suggest an appropriate course duration", got[1])
		assert.Equal(t, "Suggest interaction formats that work online", got[2])
	})

	t.Run("never more than three", func(t *testing.T) {
		got := ExtractSuggestions(longResponse, models.CurriculumContext{})
		assert.Len(t, got, 3)
	})
}

func TestAnalyzeImprovements(t *testing.T) {
	t.Run("longer content", func(t *testing.T) {
		got := AnalyzeImprovements("short", "a much much longer enhanced version of it")
		assert.Contains(t, got, "Expanded detail and specificity")
	})

	t.Run("added headers and lists", func(t *testing.T) {
		original := "plain paragraph"
		enhanced := "# Week 1\n- intro\n- tools\n## Week 2\n* practice\n"
		got := AnalyzeImprovements(original, enhanced)
		assert.Contains(t, got, "Improved structure and readability")
		assert.Contains(t, got, "Reorganized items into clearer lists")
	})

	t.Run("no measurable change falls back", func(t *testing.T) {
		same := "# Plan\n- item\n"
		got := AnalyzeImprovements(same, same)
		assert.Equal(t, []string{"Improved content quality", "Learner-centered framing"}, got)
	})
}
