package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"resonate/internal/llm"
	"resonate/internal/questionnaire"
	"resonate/internal/report"
	"resonate/internal/store"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
)

// session is the externally-owned state of one interactive run. The core
// packages stay stateless; only the wizard mutates this.
type session struct {
	answers  questionnaire.AnswerMap
	standard string
	markup   string
}

var wizardDraft string

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Fill the questionnaire interactively and generate the report",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWizard(context.Background()); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				fmt.Println("\nAborted.")
				return
			}
			log.Fatalf("Wizard failed: %v", err)
		}
	},
}

func init() {
	wizardCmd.Flags().StringVarP(&wizardDraft, "draft", "d", "", "Resume from a saved draft")
}

func runWizard(ctx context.Context) error {
	cfg, client, err := initClient(ctx)
	if err != nil {
		return err
	}

	drafts, err := store.NewDraftStore(cfg.Report.Database)
	if err != nil {
		return fmt.Errorf("failed to open draft store: %w", err)
	}
	defer drafts.Close()

	sess := &session{
		answers:  questionnaire.AnswerMap{},
		standard: cfg.Report.Standard,
	}
	if wizardDraft != "" {
		d, err := drafts.Load(ctx, wizardDraft)
		if err != nil {
			return err
		}
		sess.answers = d.Answers
		if d.Standard != "" {
			sess.standard = d.Standard
		}
		fmt.Printf("📂 Resumed draft %q (%d answers).\n", d.Name, len(d.Answers))
	}

	if err := askQuestions(sess); err != nil {
		return err
	}
	if err := reviewAnswers(sess); err != nil {
		return err
	}
	if err := chooseStandard(sess); err != nil {
		return err
	}
	if err := offerDraftSave(ctx, drafts, sess); err != nil {
		return err
	}

	generate := true
	if err := survey.AskOne(&survey.Confirm{Message: "Generate the report now?", Default: true}, &generate); err != nil {
		return err
	}
	if !generate {
		return nil
	}

	markup, err := runGeneration(ctx, cfg, client, sess.answers, sess.standard)
	if err != nil {
		return err
	}
	sess.markup = markup

	return offerEvaluation(ctx, client, cfg.AI.MaxEvalChars, sess)
}

func askQuestions(sess *session) error {
	total := len(questionnaire.Slots())
	for i, slot := range questionnaire.Slots() {
		var answer string
		prompt := &survey.Multiline{
			Message: fmt.Sprintf("Question %d of %d: %s", i+1, total, slot.Question),
			Default: sess.answers[slot.Key],
		}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return err
		}
		if strings.TrimSpace(answer) != "" {
			sess.answers[slot.Key] = strings.TrimSpace(answer)
		}
	}
	return nil
}

// reviewAnswers lets the user re-edit individual answers until satisfied.
func reviewAnswers(sess *session) error {
	const done = "Done reviewing"
	for {
		review := false
		if err := survey.AskOne(&survey.Confirm{Message: "Review and edit your responses?"}, &review); err != nil {
			return err
		}
		if !review {
			return nil
		}

		options := make([]string, 0, len(questionnaire.Slots())+1)
		byLabel := map[string]questionnaire.Slot{}
		for _, slot := range questionnaire.Slots() {
			marker := " "
			if strings.TrimSpace(sess.answers[slot.Key]) != "" {
				marker = "✔"
			}
			label := fmt.Sprintf("[%s] %s", marker, slot.Label)
			options = append(options, label)
			byLabel[label] = slot
		}
		options = append(options, done)

		var picked string
		if err := survey.AskOne(&survey.Select{Message: "Edit which answer?", Options: options, PageSize: 12}, &picked); err != nil {
			return err
		}
		if picked == done {
			return nil
		}

		slot := byLabel[picked]
		var answer string
		prompt := &survey.Multiline{Message: slot.Question, Default: sess.answers[slot.Key]}
		if err := survey.AskOne(prompt, &answer); err != nil {
			return err
		}
		sess.answers[slot.Key] = strings.TrimSpace(answer)
	}
}

func chooseStandard(sess *session) error {
	prompt := &survey.Select{
		Message: "Reporting standard:",
		Options: report.Standards(),
		Default: sess.standard,
	}
	return survey.AskOne(prompt, &sess.standard)
}

func offerDraftSave(ctx context.Context, drafts *store.DraftStore, sess *session) error {
	save := false
	if err := survey.AskOne(&survey.Confirm{Message: "Save your answers as a draft?"}, &save); err != nil {
		return err
	}
	if !save {
		return nil
	}

	name := wizardDraft
	if name == "" {
		name = strings.TrimSpace(sess.answers["company_name"])
	}
	if err := survey.AskOne(&survey.Input{Message: "Draft name:", Default: name}, &name); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		fmt.Println("⚠️  Empty draft name, skipping save.")
		return nil
	}

	err := drafts.Save(ctx, &store.Draft{
		Name:     name,
		Standard: sess.standard,
		Answers:  sess.answers,
	})
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	fmt.Printf("💾 Draft %q saved.\n", name)
	return nil
}

func offerEvaluation(ctx context.Context, client llm.Client, maxChars int, sess *session) error {
	evaluate := false
	if err := survey.AskOne(&survey.Confirm{Message: "Evaluate the report with AI?"}, &evaluate); err != nil {
		return err
	}
	if !evaluate {
		return nil
	}

	fmt.Printf("🤖 Evaluating report against %s...\n", sess.standard)
	short := report.Shorten(sess.markup, maxChars)
	result, err := report.Evaluate(ctx, client, short, sess.standard)
	if err != nil {
		fmt.Printf("⚠️  Evaluation failed: %v\n", err)
		return nil
	}
	printComplianceResult(result)
	return nil
}
