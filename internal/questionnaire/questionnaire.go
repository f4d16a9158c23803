package questionnaire

// Slot is one canonical question/answer unit in the fixed questionnaire.
// Label is the human spelling used in the spreadsheet template.
type Slot struct {
	Key      string
	Label    string
	Question string
}

// AnswerMap holds free-text answers keyed by slot key. Keys not present in
// the fixed slot sequence never appear here; ingestion drops them.
type AnswerMap map[string]string

// slots is the fixed questionnaire. Order is significant: it drives the
// section order of the generated report and the progress fractions.
var slots = []Slot{
	{"company_name", "Company Name", "What is the name of your company?"},
	{"industry", "Industry", "What industry does your company operate in?"},
	{"overview", "Overview", "Briefly describe your company's main products or services and the regions/countries where you operate."},
	{"governance", "Governance", "Describe your company's governance structure, including board composition and sustainability oversight."},
	{"ethics", "Ethics", "What policies and practices are in place to ensure ethical behavior and prevent corruption?"},
	{"business_model", "Business Model", "Describe your business model and how it integrates sustainability considerations."},
	{"strategy", "Strategy", "What is your company's overall sustainability strategy and long-term vision? How does sustainability factor into strategic decision-making?"},
	{"stakeholder_engagement", "Stakeholder Engagement", "Who are the key stakeholders your company engages with (e.g., employees, customers, suppliers, community), and how are they involved in your sustainability initiatives?"},
	{"materiality", "Materiality", "Describe the materiality assessment process used to identify key sustainability issues for your company."},
	{"environmental_performance", "Environmental Performance", "Detail your company's environmental performance, including greenhouse gas emissions, energy consumption, water usage, waste management, and resource efficiency."},
	{"environmental_targets", "Environmental Targets", "What environmental targets or goals has your company set, and how are these measured?"},
	{"social_performance", "Social Performance", "Describe your company's social policies and practices, including employee well-being, diversity, and inclusion."},
	{"community_engagement", "Community Engagement", "How does your company contribute to and engage with the local communities in which it operates?"},
	{"labor_practices", "Labor Practices", "Outline your company's approach to labor practices, including workplace safety, training, and development."},
	{"human_rights", "Human Rights", "How does your company ensure compliance with human rights standards and prevent human rights abuses in your operations and supply chain?"},
	{"supply_chain", "Supply Chain", "Describe how your company assesses and manages sustainability risks in its supply chain."},
	{"supplier_evaluation", "Supplier Evaluation", "What criteria do you use to evaluate the sustainability performance of your suppliers?"},
	{"financial_sustainability", "Financial Sustainability", "What financial risks and opportunities related to sustainability does your company face, and how are these integrated into your financial planning?"},
	{"reporting_frameworks", "Reporting Frameworks", "Which sustainability reporting frameworks or standards does your company currently use or intend to use?"},
	{"data_assurance", "Data Assurance", "How is the sustainability data collected, verified, and assured (e.g., through internal audits or external assurance)?"},
	{"kpi", "KPI", "What key performance indicators (KPIs) do you monitor to track your sustainability performance?"},
	{"future_goals", "Future Goals", "What are your company's sustainability goals for the next 5-10 years, and what strategies are in place to achieve them?"},
	{"innovation", "Innovation", "Describe any innovative initiatives or technologies your company is implementing to improve sustainability performance."},
	{"risk_management", "Risk Management", "How does your company manage and mitigate sustainability-related risks, including those associated with climate change?"},
}

// Slots returns the fixed ordered questionnaire. Callers must not modify
// the returned slice.
func Slots() []Slot {
	return slots
}

// Labels returns the template spellings in questionnaire order, so a
// template built from them round-trips through ingestion back to all slots.
func Labels() []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Label
	}
	return out
}
