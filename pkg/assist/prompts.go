// Package assist implements the AI curriculum assistant: prompt construction,
// completion orchestration, and the post-processing applied to model output.
package assist

import (
	"fmt"
	"strings"

	"github.com/lecternhq/lectern/pkg/models"
)

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// buildSystemPrompt renders the assistant persona plus the current curriculum
// context. The same prompt is used for chat, enhancement and question
// generation so the assistant stays consistent across operations.
func buildSystemPrompt(c models.CurriculumContext) string {
	var b strings.Builder
	b.WriteString(`You are an AI education expert and curriculum design specialist.

Help freelance instructors build AI training curricula for a wide range of audiences.

### Role and goals:
1. Design practical AI curricula matched to the audience's characteristics
2. Provide hands-on content reflecting current AI tools and techniques
3. Propose a stepwise, well-structured learning progression

### Current context:
`)
	fmt.Fprintf(&b, "- Audience: %s\n", orDefault(c.TargetAudience, "not decided"))
	fmt.Fprintf(&b, "- Duration: %s\n", orDefault(c.Duration, "not decided"))
	fmt.Fprintf(&b, "- Format: %s\n", orDefault(c.Type, "not decided"))
	b.WriteString(`
### Response guidelines:
1. Give concrete, actionable content
2. Include per-session learning objectives and exercises
3. Use terminology and examples suited to the audience's level
4. Reflect current AI tools and trends
5. Suggest assessment methods and assignments

Structure your responses in Markdown.`)
	return b.String()
}

// buildEnhancePrompt wraps content to be improved in enhancement instructions.
func buildEnhancePrompt(content string, c models.CurriculumContext) string {
	var b strings.Builder
	b.WriteString("Improve the following curriculum content:\n\n")
	b.WriteString(content)
	b.WriteString(`

Improvement goals:
1. Make the content more concrete and practical
2. Add elements that increase learner engagement
3. Reflect current AI tools and trends
4. Strengthen assessment and feedback methods

`)
	fmt.Fprintf(&b, "Audience: %s\n", orDefault(c.TargetAudience, "general"))
	fmt.Fprintf(&b, "Format: %s\n", orDefault(c.Type, "online"))
	b.WriteString("\nProvide the improved version in Markdown.")
	return b.String()
}

// buildQuestionsPrompt asks the model for three clarifying questions as a
// numbered list, which parseNumberedQuestions then extracts.
func buildQuestionsPrompt(c models.CurriculumContext) string {
	contentState := "not started"
	if c.CurrentContent != "" {
		contentState = "in progress"
	}

	var b strings.Builder
	b.WriteString("Analyze the current state of this curriculum draft and generate 3 questions that would make it more specific and effective.\n\nCurrent state:\n")
	fmt.Fprintf(&b, "- Audience: %s\n", orDefault(c.TargetAudience, "not decided"))
	fmt.Fprintf(&b, "- Duration: %s\n", orDefault(c.Duration, "not decided"))
	fmt.Fprintf(&b, "- Format: %s\n", orDefault(c.Type, "not decided"))
	fmt.Fprintf(&b, "- Content: %s\n", contentState)
	b.WriteString(`
Generate the questions from these angles:
1. The learners' specific characteristics and needs
2. The practice environment and tool accessibility
3. Assessment methods and outcome measurement

Write each question on one line, numbered.`)
	return b.String()
}
