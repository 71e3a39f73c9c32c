package assist

import (
	"regexp"

	"github.com/lecternhq/lectern/pkg/models"
)

// Responses shorter than this get no follow-up suggestions.
const minResponseForSuggestions = 100

const maxSuggestions = 3

var defaultSuggestions = []string{
	"Show me more concrete hands-on examples",
	"Help me adjust the difficulty level",
	"Add assessment methods to this plan",
}

// ExtractSuggestions derives follow-up prompts to show alongside an assistant
// response. Context-specific suggestions come first, padded with defaults up
// to three total.
func ExtractSuggestions(response string, c models.CurriculumContext) []string {
	if len(response) < minResponseForSuggestions {
		return []string{}
	}

	suggestions := []string{}
	if c.TargetAudience == "" {
		suggestions = append(suggestions, "Define the target learners more specifically")
	}
	if c.Duration == "" {
		suggestions = append(suggestions, "Suggest an appropriate course duration")
	}
	if c.Type == models.TypeOnline {
		suggestions = append(suggestions, "Suggest interaction formats that work online")
	}

	suggestions = append(suggestions, defaultSuggestions...)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

var (
	headerPattern = regexp.MustCompile(`(?m)^#+\s`)
	listPattern   = regexp.MustCompile(`(?m)^[-*]\s`)
)

// AnalyzeImprovements summarizes what changed between the original and
// enhanced content, based on length and Markdown structure.
func AnalyzeImprovements(original, enhanced string) []string {
	var improvements []string

	if float64(len(enhanced)) > float64(len(original))*1.2 {
		improvements = append(improvements, "Expanded detail and specificity")
	}
	if len(headerPattern.FindAllString(enhanced, -1)) > len(headerPattern.FindAllString(original, -1)) {
		improvements = append(improvements, "Improved structure and readability")
	}
	if len(listPattern.FindAllString(enhanced, -1)) > len(listPattern.FindAllString(original, -1)) {
		improvements = append(improvements, "Reorganized items into clearer lists")
	}

	if len(improvements) == 0 {
		improvements = append(improvements, "Improved content quality", "Learner-centered framing")
	}
	return improvements
}
