package main

import (
	"path/filepath"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
)

var errUnsupportedWorkbook = errors.New("unsupported workbook format")

// Fixed sheet layout: name in C1, data from row 4, ch in column C and
// text in column D.
const (
	nameCell     = "C1"
	firstDataRow = 3
	charColumn   = 2
	textColumn   = 3
)

// SheetParser turns one workbook into a table.
type SheetParser interface {
	Parse(path string) (*GlossaryTable, error)
}

// cellCleaner rewrites the (ch, text) cells of a data row before the row
// transform. nil keeps cells as they are in the workbook.
type cellCleaner func(ch, text string) (string, string)

type xlsxParser struct {
	clean cellCleaner
}

func (p xlsxParser) Parse(path string) (*GlossaryTable, error) {
	return parseWorkbook(path, p.clean)
}

// ParseSheet reads the first tab of an .xlsx workbook, keeping cell text as is.
func ParseSheet(path string) (*GlossaryTable, error) {
	return parseWorkbook(path, nil)
}

func parseWorkbook(path string, clean cellCleaner) (*GlossaryTable, error) {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return nil, errors.Wrap(errUnsupportedWorkbook, filepath.Base(path))
	}
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	sheet := firstSheetName(wb)
	if sheet == "" {
		return nil, errors.Errorf("workbook %s has no sheets", filepath.Base(path))
	}
	return parseRows(wb.GetCellValue(sheet, nameCell), wb.GetRows(sheet), clean), nil
}

// firstSheetName returns the leftmost tab. GetSheetMap is keyed by worksheet
// part number, which no longer matches tab order once tabs are moved.
func firstSheetName(wb *excelize.File) string {
	wb.GetSheetMap()
	if wb.WorkBook == nil || len(wb.WorkBook.Sheets.Sheet) == 0 {
		return ""
	}
	return wb.WorkBook.Sheets.Sheet[0].Name
}

func parseRows(name string, rows [][]string, clean cellCleaner) *GlossaryTable {
	table := &GlossaryTable{Name: name, Entries: []GlossaryEntry{}}
	for rowIdx := firstDataRow; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		ch, text := cellAt(row, charColumn), cellAt(row, textColumn)
		if clean != nil {
			ch, text = clean(ch, text)
		}
		table.Entries = append(table.Entries, rowToEntries(ch, text)...)
	}
	table.Sort()
	return table
}

func cellAt(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}
