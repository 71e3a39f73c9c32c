package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberedQuestions(t *testing.T) {
	response := `Here are some questions to sharpen the plan:

1. What prior coding background do the learners have?
2.   Which devices will participants use during practice?
3. How will you measure learning outcomes?

Let me know if you want more.`

	got := parseNumberedQuestions(response)
	require.Len(t, got, 3)
	assert.Equal(t, "What prior coding background do the learners have?", got[0])
	assert.Equal(t, "Which devices will participants use during practice?", got[1])
	assert.Equal(t, "How will you measure learning outcomes?", got[2])
}

func TestParseNumberedQuestions_NoList(t *testing.T) {
	got := parseNumberedQuestions("I could not come up with questions.")
	assert.Empty(t, got)
}

func TestCategorizeQuestions(t *testing.T) {
	questions := []string{
		"What background do the learners have?",
		"Which platform will host the course?",
		"How will you give feedback on assignments?",
		"Why is the sky blue?",
	}

	got := CategorizeQuestions(questions)

	byName := map[string][]string{}
	for _, c := range got {
		byName[c.Name] = c.Questions
	}

	assert.Contains(t, byName["Audience"], questions[0])
	assert.Contains(t, byName["Environment"], questions[1])
	assert.Contains(t, byName["Assessment"], questions[2])
	assert.Contains(t, byName["Other"], questions[3])
}

func TestCategorizeQuestions_OmitsEmptyCategories(t *testing.T) {
	got := CategorizeQuestions([]string{"What level are the learners at?"})
	require.Len(t, got, 1)
	assert.Equal(t, "Audience", got[0].Name)
}

func TestCategorizeQuestions_Empty(t *testing.T) {
	assert.Empty(t, CategorizeQuestions(nil))
}
