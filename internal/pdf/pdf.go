package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// typographic maps the Unicode punctuation the generation service likes to
// emit onto plain ASCII, because the document encoding is single-byte.
var typographic = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"’", "'", // right single quotation mark
)

func sanitize(s string) string {
	return typographic.Replace(s)
}

// Render lays the assembled report markup out as a paginated A4 PDF with a
// running header and footer and a first-page title block. Heading markers
// (#, ##, ###+) become bold headings, blank lines become small gaps and
// everything else is drawn as a wrapped paragraph with inline ** markers
// stripped. Characters outside the output encoding are substituted, never
// an error.
func Render(markup, company, standard string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	now := time.Now()
	doc.SetHeaderFunc(func() {
		doc.SetFont("Times", "B", 12)
		doc.SetTextColor(50, 50, 50)
		doc.CellFormat(0, 10, tr(fmt.Sprintf("%d Sustainability Report", now.Year())), "", 1, "C", false, 0, "")
		doc.Ln(5)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Times", "I", 8)
		doc.SetTextColor(100, 100, 100)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	// Title block on the first page only.
	doc.SetFont("Times", "B", 16)
	doc.SetTextColor(0, 0, 128)
	title := fmt.Sprintf("%d - %s - %s Report", now.Year(), company, standard)
	doc.CellFormat(0, 10, tr(sanitize(title)), "", 1, "C", false, 0, "")
	doc.Ln(5)
	doc.SetFont("Times", "", 12)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 10, "Date: "+now.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	doc.Ln(10)
	doc.SetLineWidth(0.5)
	doc.Line(20, doc.GetY(), 190, doc.GetY())
	doc.Ln(10)

	doc.SetFont("Times", "", 12)
	for _, line := range strings.Split(markup, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			doc.Ln(2)
			continue
		}
		if strings.HasPrefix(line, "#") {
			text := strings.TrimLeft(line, "#")
			level := len(line) - len(text)
			switch level {
			case 1:
				doc.SetFont("Times", "B", 16)
			case 2:
				doc.SetFont("Times", "B", 14)
			default:
				doc.SetFont("Times", "B", 12)
			}
			doc.CellFormat(0, 10, tr(sanitize(strings.TrimSpace(text))), "", 1, "", false, 0, "")
			doc.Ln(2)
			doc.SetFont("Times", "", 12)
			continue
		}
		// Inline emphasis is flattened to plain text.
		clean := strings.ReplaceAll(line, "**", "")
		doc.MultiCell(0, 10, tr(sanitize(clean)), "", "", false)
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename builds the download name consumers save the document under.
func Filename(company, standard string) string {
	return fmt.Sprintf("%d %s - %s Report.pdf", time.Now().Year(), company, standard)
}
