package report

import (
	"context"
	"errors"
	"strings"

	"resonate/internal/llm"
	"resonate/internal/questionnaire"
)

// ErrNoAnswers is returned when a generation run starts with no answered
// slots. It is fatal to the run; no document is produced.
var ErrNoAnswers = errors.New("no responses provided")

// Generator assembles a report by completing one section per answered slot.
type Generator struct {
	client llm.Client

	// OnSectionError is invoked when a single section's completion fails.
	// The failure is section-scoped: the run continues and that slot
	// contributes no text. Optional.
	OnSectionError func(slot questionnaire.Slot, err error)
}

func NewGenerator(client llm.Client) *Generator {
	return &Generator{client: client}
}

// Generate walks the fixed questionnaire order, completes every answered
// slot and concatenates the results as heading-prefixed markup. Calls are
// strictly sequential so section order and progress stay deterministic.
// progress receives 0-100 values that never regress; it is optional.
func (g *Generator) Generate(ctx context.Context, answers questionnaire.AnswerMap, standard string, progress func(percent int)) (string, error) {
	var answered []questionnaire.Slot
	for _, slot := range questionnaire.Slots() {
		if strings.TrimSpace(answers[slot.Key]) != "" {
			answered = append(answered, slot)
		}
	}
	if len(answered) == 0 {
		return "", ErrNoAnswers
	}

	var doc strings.Builder
	completed := 0
	for _, slot := range answered {
		prompt := SectionPrompt(slot, answers[slot.Key], standard)
		section, err := g.client.Complete(ctx, prompt)
		if err != nil {
			if g.OnSectionError != nil {
				g.OnSectionError(slot, err)
			}
			continue
		}
		doc.WriteString("# ")
		doc.WriteString(section)
		doc.WriteString("\n\n")
		completed++
		if progress != nil {
			progress(completed * 100 / len(answered))
		}
	}
	return doc.String(), nil
}
