package report

import (
	"fmt"

	"resonate/internal/questionnaire"
)

// standards lists the supported reporting frameworks in presentation order.
var standards = []string{
	"CSRD",
	"GRI",
	"TCFD",
	"SASB",
	"Integrated Reporting (<IR>)",
	"CDP",
	"AA1000",
	"ISO 26000",
	"ISSB",
	"ESRS",
}

// Standards returns the supported reporting standard names. Any other name
// still works; prompt building falls back to a generic framing.
func Standards() []string {
	return standards
}

// sectionIntros keys the per-standard instruction that opens every section
// prompt. Unrecognized standards use genericSectionIntro; an unknown
// standard is never an error.
var sectionIntros = map[string]string{
	"CSRD": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed CSRD-compliant report section.",
	"GRI": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed GRI-compliant report section.",
	"TCFD": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed TCFD-aligned report section.",
	"SASB": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed SASB-compliant report section.",
	"Integrated Reporting (<IR>)": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed Integrated Reporting (<IR>)-compliant report section.",
	"CDP": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed CDP-compliant report section focused on environmental transparency.",
	"AA1000": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed AA1000-compliant report section emphasizing stakeholder engagement and accountability.",
	"ISO 26000": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed report section aligned with ISO 26000 guidance on social responsibility.",
	"ISSB": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed ISSB-compliant report section addressing both climate-related and general sustainability disclosures.",
	"ESRS": "You are a professional sustainability consultant. " +
		"Based on the provided answer, generate a detailed ESRS-compliant report section covering environmental, social, and governance disclosures.",
}

const genericSectionIntro = "You are a professional sustainability consultant. " +
	"Based on the provided answer, generate a detailed report section."

// complianceFraming holds the per-standard phrasing of the evaluation
// prompt: the body of knowledge the evaluator claims, and the target the
// report is measured against.
type complianceFraming struct {
	knowledge string
	target    string
}

var complianceFramings = map[string]complianceFraming{
	"CSRD":                        {"the CSRD standard", "the CSRD standard"},
	"GRI":                         {"the GRI standards", "the GRI standards"},
	"TCFD":                        {"the TCFD recommendations", "the TCFD recommendations"},
	"SASB":                        {"SASB standards", "SASB standards"},
	"Integrated Reporting (<IR>)": {"Integrated Reporting (<IR>) guidelines", "Integrated Reporting guidelines"},
	"CDP":                         {"CDP requirements", "CDP guidelines"},
	"AA1000":                      {"AA1000 standards", "AA1000 principles"},
	"ISO 26000":                   {"ISO 26000 guidance", "ISO 26000 principles on social responsibility"},
	"ISSB":                        {"ISSB guidelines", "ISSB standards"},
	"ESRS":                        {"the European Sustainability Reporting Standards (ESRS)", "ESRS"},
}

// SectionPrompt builds the instruction sent to the generation service for a
// single answered slot. Pure and deterministic; no I/O.
func SectionPrompt(slot questionnaire.Slot, answer, standard string) string {
	intro, ok := sectionIntros[standard]
	if !ok {
		intro = genericSectionIntro
	}
	return fmt.Sprintf(
		"%s\n\nSection: %s\nProvided Answer: %s\n\nPlease write a comprehensive section on this topic.",
		intro, slot.Question, answer,
	)
}

// CompliancePrompt builds the evaluation instruction for an assembled
// report. The generation service is asked for a JSON object with score,
// strengths, weaknesses and recommendations.
func CompliancePrompt(document, standard string) string {
	framing, ok := complianceFramings[standard]
	if !ok {
		return "You are an expert in sustainability reporting. " +
			"Evaluate the compliance of the following report with the relevant sustainability reporting standards " +
			"and provide your evaluation in a JSON format with the following keys: 'score' (a number between 1 and 100), " +
			"'strengths', 'weaknesses', and 'recommendations'. Here is the report:\n\n" + document
	}
	return fmt.Sprintf(
		"You are an expert in sustainability reporting with extensive knowledge of %s. "+
			"Evaluate the compliance of the following report with %s and provide your evaluation "+
			"in a JSON format with the following keys: 'score' (a number between 1 and 100), 'strengths', "+
			"'weaknesses', and 'recommendations'. Here is the report:\n\n%s",
		framing.knowledge, framing.target, document,
	)
}
