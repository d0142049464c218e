package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "abcdef", Truncate("abcdef", 0))
}

func TestResumePromptBoundsInput(t *testing.T) {
	long := strings.Repeat("x", MaxPromptChars*2)
	prompt := ResumePrompt(long)
	assert.Less(t, len(prompt), MaxPromptChars+2000)
	assert.Contains(t, prompt, "STRICT OUTPUT FORMAT")
}

func TestAnswerPromptOmitsEmptySections(t *testing.T) {
	prompt := AnswerPrompt("Why me?", `{"summary":"dev"}`, "", "")

	assert.Contains(t, prompt, "Resume Profile:")
	assert.NotContains(t, prompt, "Job Profile:")
	assert.NotContains(t, prompt, "Skill Match Analysis:")
	assert.Contains(t, prompt, "Question: Why me?")
}

func TestDefaultQuestions(t *testing.T) {
	questions := DefaultQuestions("Go Developer", "Acme")
	assert.Len(t, questions, 5)
	assert.Contains(t, questions[0], "Go Developer")
	assert.Contains(t, questions[1], "Acme")
}

func TestDefaultQuestionsFallbackNames(t *testing.T) {
	questions := DefaultQuestions("", "  ")
	assert.Contains(t, questions[0], "this role")
	assert.Contains(t, questions[1], "this company")
}
