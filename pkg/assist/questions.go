package assist

import (
	"regexp"
	"strings"

	"github.com/lecternhq/lectern/pkg/models"
)

var numberedLine = regexp.MustCompile(`^\d+\.\s*`)

// parseNumberedQuestions extracts the numbered lines from a model response.
// Non-numbered prose around the list is ignored.
func parseNumberedQuestions(response string) []string {
	questions := []string{}
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if !numberedLine.MatchString(line) {
			continue
		}
		q := strings.TrimSpace(numberedLine.ReplaceAllString(line, ""))
		if q != "" {
			questions = append(questions, q)
		}
	}
	return questions
}

var questionCategories = []struct {
	name     string
	keywords []string
}{
	{name: "Audience", keywords: []string{"audience", "learner", "level", "background"}},
	{name: "Environment", keywords: []string{"environment", "tool", "device", "platform"}},
	{name: "Content", keywords: []string{"content", "structure", "order", "step"}},
	{name: "Assessment", keywords: []string{"assess", "evaluat", "assignment", "feedback"}},
}

// CategorizeQuestions groups questions by keyword match. A question can land
// in multiple categories; anything unmatched goes under "Other". Empty
// categories are omitted.
func CategorizeQuestions(questions []string) []models.QuestionCategory {
	matched := make(map[string]bool, len(questions))
	var result []models.QuestionCategory

	for _, category := range questionCategories {
		var hits []string
		for _, q := range questions {
			lower := strings.ToLower(q)
			for _, kw := range category.keywords {
				if strings.Contains(lower, kw) {
					hits = append(hits, q)
					matched[q] = true
					break
				}
			}
		}
		if len(hits) > 0 {
			result = append(result, models.QuestionCategory{Name: category.name, Questions: hits})
		}
	}

	var other []string
	for _, q := range questions {
		if !matched[q] {
			other = append(other, q)
		}
	}
	if len(other) > 0 {
		result = append(result, models.QuestionCategory{Name: "Other", Questions: other})
	}

	return result
}
