package report

import (
	"context"
	"strings"
	"testing"

	"resonate/internal/llm"
	"resonate/internal/questionnaire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoClient returns a recognizable section body derived from the prompt.
func echoClient(t *testing.T) llm.Client {
	t.Helper()
	return llm.ClientFunc(func(ctx context.Context, prompt string) (string, error) {
		for _, slot := range questionnaire.Slots() {
			if strings.Contains(prompt, slot.Question) {
				return "section for " + slot.Key, nil
			}
		}
		t.Fatalf("prompt matched no slot: %s", prompt)
		return "", nil
	})
}

func TestGenerate_NoAnswers(t *testing.T) {
	gen := NewGenerator(echoClient(t))

	_, err := gen.Generate(context.Background(), questionnaire.AnswerMap{}, "GRI", nil)
	assert.ErrorIs(t, err, ErrNoAnswers)

	// Whitespace-only answers count as unanswered.
	_, err = gen.Generate(context.Background(), questionnaire.AnswerMap{"industry": "   "}, "GRI", nil)
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestGenerate_SingleAnswer(t *testing.T) {
	gen := NewGenerator(echoClient(t))

	var calls []int
	doc, err := gen.Generate(context.Background(), questionnaire.AnswerMap{
		"industry": "Retail",
	}, "GRI", func(p int) { calls = append(calls, p) })
	require.NoError(t, err)

	assert.Equal(t, []int{100}, calls)
	assert.Equal(t, "# section for industry\n\n", doc)
	assert.Equal(t, 1, strings.Count(doc, "# "))
}

func TestGenerate_SectionsFollowQuestionnaireOrder(t *testing.T) {
	gen := NewGenerator(echoClient(t))

	// Map iteration order must not leak into the document.
	answers := questionnaire.AnswerMap{
		"risk_management": "c",
		"company_name":    "a",
		"materiality":     "b",
	}
	doc, err := gen.Generate(context.Background(), answers, "GRI", nil)
	require.NoError(t, err)

	first := strings.Index(doc, "section for company_name")
	second := strings.Index(doc, "section for materiality")
	third := strings.Index(doc, "section for risk_management")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestGenerate_ProgressIsMonotonicAndEndsAt100(t *testing.T) {
	gen := NewGenerator(echoClient(t))

	answers := questionnaire.AnswerMap{}
	for _, slot := range questionnaire.Slots() {
		answers[slot.Key] = "answered"
	}

	var calls []int
	_, err := gen.Generate(context.Background(), answers, "GRI", func(p int) { calls = append(calls, p) })
	require.NoError(t, err)
	require.Len(t, calls, 24)

	prev := 0
	for _, p := range calls {
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
	assert.Equal(t, 100, calls[len(calls)-1])
}

func TestGenerate_FailedSectionIsSkipped(t *testing.T) {
	failing := llm.ClientFunc(func(ctx context.Context, prompt string) (string, error) {
		if strings.Contains(prompt, "materiality assessment") {
			return "", &llm.ServiceError{Provider: "openai", Status: 429, Message: "quota"}
		}
		return "ok", nil
	})

	gen := NewGenerator(failing)
	var failed []string
	gen.OnSectionError = func(slot questionnaire.Slot, err error) {
		failed = append(failed, slot.Key)
	}

	answers := questionnaire.AnswerMap{
		"company_name": "Acme",
		"materiality":  "process",
		"innovation":   "pilots",
	}
	doc, err := gen.Generate(context.Background(), answers, "GRI", nil)
	require.NoError(t, err, "one failed section must not abort the run")

	assert.Equal(t, []string{"materiality"}, failed)
	assert.Equal(t, 2, strings.Count(doc, "# ok\n\n"))
}

func TestGenerate_StandardReachesPrompt(t *testing.T) {
	var seen string
	client := llm.ClientFunc(func(ctx context.Context, prompt string) (string, error) {
		seen = prompt
		return "ok", nil
	})

	gen := NewGenerator(client)
	_, err := gen.Generate(context.Background(), questionnaire.AnswerMap{"industry": "Retail"}, "TCFD", nil)
	require.NoError(t, err)
	assert.Contains(t, seen, "TCFD-aligned")
	assert.Contains(t, seen, "Provided Answer: Retail")
}
