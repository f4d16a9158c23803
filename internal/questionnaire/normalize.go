package questionnaire

import (
	"strings"
	"unicode"
)

// ruleTable maps normalized spreadsheet labels to slot keys. It is the
// only legal set of label spellings accepted from tabular input; it is
// read-only after initialization.
var ruleTable = map[string]string{
	"companyname":              "company_name",
	"industry":                 "industry",
	"overview":                 "overview",
	"governance":               "governance",
	"ethics":                   "ethics",
	"businessmodel":            "business_model",
	"strategy":                 "strategy",
	"stakeholderengagement":    "stakeholder_engagement",
	"materiality":              "materiality",
	"environmentalperformance": "environmental_performance",
	"environmentaltargets":     "environmental_targets",
	"socialperformance":        "social_performance",
	"communityengagement":      "community_engagement",
	"laborpractices":           "labor_practices",
	"humanrights":              "human_rights",
	"supplychain":              "supply_chain",
	"supplierevaluation":       "supplier_evaluation",
	"financialsustainability":  "financial_sustainability",
	"reportingframeworks":      "reporting_frameworks",
	"dataassurance":            "data_assurance",
	"kpi":                      "kpi",
	"futuregoals":              "future_goals",
	"innovation":               "innovation",
	"riskmanagement":           "risk_management",
}

// NormalizeKey lowercases a label and strips every character that is not a
// letter or digit, so "Company Name", "company-name" and "COMPANYNAME" all
// collide to the same normalized key. Pure and total.
func NormalizeKey(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LookupSlot resolves a normalized label to its slot key.
func LookupSlot(normalized string) (string, bool) {
	key, ok := ruleTable[normalized]
	return key, ok
}
