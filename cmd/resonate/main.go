package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resonate/internal/config"
	"resonate/internal/ingest"
	"resonate/internal/llm"
	"resonate/internal/pdf"
	"resonate/internal/questionnaire"
	"resonate/internal/report"
	"resonate/internal/store"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "resonate",
		Short: "AI-powered sustainability report builder",
	}
	cfgPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(draftsCmd)
}

// initClient loads the config and builds the generation service client.
func initClient(ctx context.Context) (*config.Config, llm.Client, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.AI.APIKey == "" {
		return nil, nil, fmt.Errorf("AI API key not configured (set RESONATE_API_KEY or ai.api_key)")
	}

	client, err := llm.New(ctx, llm.Options{
		Provider: cfg.AI.Provider,
		APIKey:   cfg.AI.APIKey,
		Model:    cfg.AI.Model,
		BaseURL:  cfg.AI.BaseURL,
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, client, nil
}

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Write the blank questionnaire template workbook",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "sustainability_report_template.xlsx"
		if len(args) > 0 {
			path = args[0]
		}

		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("Failed to create template: %v", err)
		}
		defer f.Close()

		if err := ingest.WriteTemplate(f); err != nil {
			log.Fatalf("Failed to write template: %v", err)
		}
		fmt.Printf("✅ Template written to %s\n", path)
	},
}

var generateStandard string

var generateCmd = &cobra.Command{
	Use:   "generate <workbook.xlsx>",
	Short: "Generate a sustainability report from a filled questionnaire workbook",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, client, err := initClient(ctx)
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		standard := cfg.Report.Standard
		if generateStandard != "" {
			standard = generateStandard
		}

		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("Failed to open workbook: %v", err)
		}
		answers, err := ingest.ReadWorkbook(f)
		f.Close()
		if err != nil {
			fmt.Printf("⚠️  Error processing workbook: %v\n", err)
		}
		fmt.Printf("📋 %d of %d questions answered.\n", len(answers), len(questionnaire.Slots()))

		if _, err := runGeneration(ctx, cfg, client, answers, standard); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
	},
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <report.md>",
	Short: "Evaluate a generated report against a reporting standard",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		cfg, client, err := initClient(ctx)
		if err != nil {
			log.Fatalf("Setup failed: %v", err)
		}
		standard := cfg.Report.Standard
		if generateStandard != "" {
			standard = generateStandard
		}

		text, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatalf("Failed to read report: %v", err)
		}

		fmt.Printf("🤖 Evaluating report against %s...\n", standard)
		short := report.Shorten(string(text), cfg.AI.MaxEvalChars)
		result, err := report.Evaluate(ctx, client, short, standard)
		if err != nil {
			log.Fatalf("Evaluation failed: %v", err)
		}
		printComplianceResult(result)
	},
}

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List saved questionnaire drafts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		s, err := store.NewDraftStore(cfg.Report.Database)
		if err != nil {
			log.Fatalf("Failed to open draft store: %v", err)
		}
		defer s.Close()

		drafts, err := s.List(context.Background())
		if err != nil {
			log.Fatalf("Failed to list drafts: %v", err)
		}
		if len(drafts) == 0 {
			fmt.Println("No drafts saved.")
			return
		}
		for _, d := range drafts {
			fmt.Printf("  %-30s %-10s %s\n", d.Name, d.Standard, d.UpdatedAt.Local().Format(time.DateTime))
		}
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateStandard, "standard", "s", "", "Reporting standard (defaults to report.standard from config)")
	evaluateCmd.Flags().StringVarP(&generateStandard, "standard", "s", "", "Reporting standard (defaults to report.standard from config)")
}

// runGeneration drives the section orchestrator, writes the report text
// and PDF into the configured output directory, and returns the assembled
// markup.
func runGeneration(ctx context.Context, cfg *config.Config, client llm.Client, answers questionnaire.AnswerMap, standard string) (string, error) {
	gen := report.NewGenerator(client)
	gen.OnSectionError = func(slot questionnaire.Slot, err error) {
		fmt.Printf("\n⚠️  Section %q failed: %v\n", slot.Key, err)
	}

	fmt.Printf("🚀 Generating %s report...\n", standard)
	markup, err := gen.Generate(ctx, answers, standard, func(percent int) {
		fmt.Printf("\r📊 Progress: %3d%%", percent)
	})
	fmt.Println()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(markup) == "" {
		return "", fmt.Errorf("every section failed; no report produced")
	}

	company := answers["company_name"]
	if strings.TrimSpace(company) == "" {
		company = "company"
	}

	if err := os.MkdirAll(cfg.Report.OutputDir, 0755); err != nil {
		return "", err
	}

	pdfName := pdf.Filename(company, standard)
	textName := strings.TrimSuffix(pdfName, ".pdf") + ".md"
	textPath := filepath.Join(cfg.Report.OutputDir, textName)
	if err := os.WriteFile(textPath, []byte(markup), 0644); err != nil {
		return "", fmt.Errorf("write report text: %w", err)
	}

	out, err := pdf.Render(markup, company, standard)
	if err != nil {
		return "", err
	}
	pdfPath := filepath.Join(cfg.Report.OutputDir, pdfName)
	if err := os.WriteFile(pdfPath, out, 0644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	fmt.Printf("✅ Report generated: %s\n", pdfPath)
	fmt.Printf("   Report text:      %s\n", textPath)
	return markup, nil
}

func printComplianceResult(result report.ComplianceResult) {
	if result.Score != nil {
		fmt.Printf("\n⭐ AI Score: %d / 100\n", *result.Score)
	} else {
		fmt.Println("\n⭐ AI Score: Not Available")
	}
	printInsight("Strengths", result.Strengths)
	printInsight("Weaknesses", result.Weaknesses)
	printInsight("Recommendations", result.Recommendations)
}

func printInsight(title string, insight report.Insight) {
	fmt.Printf("\n%s:\n", title)
	if insight.IsEmpty() {
		fmt.Println("  (none)")
		return
	}
	for _, line := range strings.Split(insight.String(), "\n") {
		fmt.Printf("  %s\n", line)
	}
}
