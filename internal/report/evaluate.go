package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resonate/internal/llm"
)

// Insight holds one evaluation field. The generation service may return it
// as a plain string or as a list of bullet points; both shapes are kept.
type Insight struct {
	Text  string
	Items []string
}

func (i *Insight) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		i.Text = s
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		i.Items = items
		return nil
	}
	return fmt.Errorf("insight is neither string nor string list: %s", data)
}

func (i Insight) IsEmpty() bool {
	return i.Text == "" && len(i.Items) == 0
}

// String renders the insight for display: the text as-is, or the items as
// one bullet per line.
func (i Insight) String() string {
	if len(i.Items) == 0 {
		return i.Text
	}
	var b strings.Builder
	for _, item := range i.Items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ComplianceResult is the typed outcome of an evaluation run. Score is nil
// when the service did not return one.
type ComplianceResult struct {
	Score           *int    `json:"score"`
	Strengths       Insight `json:"strengths"`
	Weaknesses      Insight `json:"weaknesses"`
	Recommendations Insight `json:"recommendations"`
}

// Evaluate asks the generation service to score the assembled report
// against the given standard. A failed service call propagates; a response
// that is not the requested JSON object degrades to a result carrying the
// whole raw text in Strengths, so the output is never dropped. Callers are
// expected to truncate document beforehand (see Shorten).
func Evaluate(ctx context.Context, client llm.Client, document, standard string) (ComplianceResult, error) {
	raw, err := client.Complete(ctx, CompliancePrompt(document, standard))
	if err != nil {
		return ComplianceResult{}, err
	}
	raw = strings.TrimSpace(raw)

	fallback := ComplianceResult{Strengths: Insight{Text: raw}}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil || probe == nil {
		return fallback, nil
	}
	var result ComplianceResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return fallback, nil
	}
	return result, nil
}

// Shorten truncates text to at most max characters so the evaluation
// prompt stays within the service's input limits. Non-positive max leaves
// the text untouched.
func Shorten(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
