// Package report serializes ledger summary totals into a spreadsheet.
// The summary is streamed straight to the caller's writer; no temporary
// file is ever created, so there is nothing to leak when sending fails.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/avangala-19/finance-tracker/internal/core"
	"github.com/avangala-19/finance-tracker/internal/query"
)

const (
	// FileName is the fixed attachment name for summary downloads.
	FileName = "finance_summary.xlsx"

	// ContentType is the xlsx MIME type.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Summary Report"
)

// Row is one labeled amount in the summary report.
type Row struct {
	Label  string
	Amount core.Money
}

// Rows computes the report body for the given transaction set: total
// income, total expense and net balance, in that order.
func Rows(items []core.Transaction) []Row {
	s := query.Summarize(items)
	return []Row{
		{Label: "Total Income", Amount: s.TotalIncome},
		{Label: "Total Expense", Amount: s.TotalExpense},
		{Label: "Net Balance", Amount: s.NetBalance},
	}
}

// WriteXLSX renders the summary workbook for the given transactions and
// writes it to w.
func WriteXLSX(w io.Writer, items []core.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	if err := f.SetCellValue(sheetName, "A1", "Category"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellValue(sheetName, "B1", "Amount"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range Rows(items) {
		line := i + 2
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", line), row.Label); err != nil {
			return fmt.Errorf("write row %d: %w", line, err)
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", line), row.Amount.Dollars()); err != nil {
			return fmt.Errorf("write row %d: %w", line, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
