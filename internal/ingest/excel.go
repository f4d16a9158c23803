package ingest

import (
	"fmt"
	"io"
	"strings"

	"resonate/internal/questionnaire"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook extracts answers from an XLSX workbook whose rows are
// (label, value) pairs. If the header row names columns "Key" and "Value",
// those columns are used; otherwise the first two cells of every row are
// read positionally. Labels that do not resolve through the rule table are
// skipped, duplicates overwrite earlier rows, and rows with no value are
// ignored. An unreadable workbook yields an empty map plus the error so the
// caller can decide whether to continue.
func ReadWorkbook(r io.Reader) (questionnaire.AnswerMap, error) {
	answers := questionnaire.AnswerMap{}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return answers, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return answers, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return answers, nil
	}

	keyCol, valCol := 0, 1
	start := 0
	if kc, vc, ok := namedColumns(rows[0]); ok {
		keyCol, valCol = kc, vc
		start = 1
	}

	for _, row := range rows[start:] {
		if len(row) <= keyCol {
			continue
		}
		label := row[keyCol]
		value := ""
		if len(row) > valCol {
			value = row[valCol]
		}
		if strings.TrimSpace(value) == "" {
			continue
		}
		norm := questionnaire.NormalizeKey(label)
		if key, ok := questionnaire.LookupSlot(norm); ok {
			answers[key] = value
		}
	}
	return answers, nil
}

// namedColumns reports the indices of columns literally named "Key" and
// "Value" in the header row.
func namedColumns(header []string) (int, int, bool) {
	keyCol, valCol := -1, -1
	for i, cell := range header {
		switch strings.TrimSpace(cell) {
		case "Key":
			if keyCol < 0 {
				keyCol = i
			}
		case "Value":
			if valCol < 0 {
				valCol = i
			}
		}
	}
	if keyCol >= 0 && valCol >= 0 {
		return keyCol, valCol, true
	}
	return 0, 0, false
}

// WriteTemplate writes the blank questionnaire template: a "Key"/"Value"
// header followed by the 24 canonical labels with empty values. Ingesting a
// filled copy recovers every slot.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetCellValue(sheet, "A1", "Key"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "Value"); err != nil {
		return err
	}
	for i, label := range questionnaire.Labels() {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}
