package export

import (
	"fmt"

	"github.com/example/rv-stats/internal/metrics"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var sheetNames = map[Table]string{
	TablePurchases: "Purchases",
	TableDeposits:  "Deposits",
	TableBalance:   "Balance",
}

// WriteXLSX saves all tables to an Excel workbook, one sheet per table.
func WriteXLSX(filename, title string, tables metrics.Tables) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title, Creator: "rv-stats"}); err != nil {
			return fmt.Errorf("failed to set document properties: %w", err)
		}
	}

	// Create sheets
	if err := f.SetSheetName("Sheet1", sheetNames[TablePurchases]); err != nil {
		return err
	}
	for _, t := range Tables[1:] {
		if _, err := f.NewSheet(sheetNames[t]); err != nil {
			return err
		}
	}

	for _, t := range Tables {
		if err := writeSheet(f, sheetNames[t], xlsxRows(tables, t)); err != nil {
			return fmt.Errorf("failed to write %s sheet: %w", t, err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// major converts minor units to a numeric major-unit cell value.
func major(minorUnits int64) float64 {
	return decimal.New(minorUnits, -2).InexactFloat64()
}

// xlsxRows mirrors Records but keeps numbers numeric so the sheet can
// be charted directly.
func xlsxRows(tables metrics.Tables, t Table) [][]interface{} {
	header, _ := Header(t)
	h := make([]interface{}, len(header))
	for i, c := range header {
		h[i] = c
	}
	rows := [][]interface{}{h}

	switch t {
	case TablePurchases:
		for _, r := range tables.Purchases {
			rows = append(rows, []interface{}{
				formatTime(r.Timestamp), r.Actor, r.Item,
				r.PriceMinorUnits, major(r.PriceMinorUnits),
				r.Year, r.Month, r.Weekday, r.Hour,
				r.CumulativeBuys,
			})
		}
	case TableDeposits:
		for _, r := range tables.Deposits {
			rows = append(rows, []interface{}{
				formatTime(r.Timestamp), r.Actor,
				r.AmountMinorUnits, major(r.AmountMinorUnits),
				r.Year, r.Month, r.Weekday, r.Hour,
				r.CumulativeDeposits,
			})
		}
	case TableBalance:
		for _, r := range tables.Balance {
			rows = append(rows, []interface{}{
				formatTime(r.Timestamp),
				r.SignedAmount, major(r.SignedAmount),
				r.Balance, r.IsNegative(),
			})
		}
	}
	return rows
}
