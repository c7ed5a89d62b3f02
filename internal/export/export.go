package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/example/rv-stats/internal/metrics"
	"github.com/shopspring/decimal"
)

// TimestampLayout is how timestamps are written in every format.
const TimestampLayout = "2006-01-02 15:04:05"

// Table names a metrics table.
type Table string

const (
	TablePurchases Table = "purchases"
	TableDeposits  Table = "deposits"
	TableBalance   Table = "balance"
)

// Tables lists every table in export order.
var Tables = []Table{TablePurchases, TableDeposits, TableBalance}

// Money renders minor units as a fixed two-place major-unit amount.
func Money(minorUnits int64) string {
	return decimal.New(minorUnits, -2).StringFixed(2)
}

// Header returns the column names of a table.
func Header(t Table) ([]string, error) {
	switch t {
	case TablePurchases:
		return []string{"timestamp", "actor", "item", "price_minor_units", "price", "year", "month", "weekday", "hour", "cumulative_buys"}, nil
	case TableDeposits:
		return []string{"timestamp", "actor", "amount_minor_units", "amount", "year", "month", "weekday", "hour", "cumulative_deposits"}, nil
	case TableBalance:
		return []string{"timestamp", "amount_minor_units", "amount", "balance", "is_negative"}, nil
	}
	return nil, fmt.Errorf("unknown table %q", t)
}

// Records returns the rows of a table as strings, header first.
func Records(tables metrics.Tables, t Table) ([][]string, error) {
	header, err := Header(t)
	if err != nil {
		return nil, err
	}
	records := [][]string{header}

	switch t {
	case TablePurchases:
		for _, r := range tables.Purchases {
			records = append(records, []string{
				formatTime(r.Timestamp), r.Actor, r.Item,
				itoa(r.PriceMinorUnits), Money(r.PriceMinorUnits),
				strconv.Itoa(r.Year), strconv.Itoa(r.Month), strconv.Itoa(r.Weekday), strconv.Itoa(r.Hour),
				itoa(r.CumulativeBuys),
			})
		}
	case TableDeposits:
		for _, r := range tables.Deposits {
			records = append(records, []string{
				formatTime(r.Timestamp), r.Actor,
				itoa(r.AmountMinorUnits), Money(r.AmountMinorUnits),
				strconv.Itoa(r.Year), strconv.Itoa(r.Month), strconv.Itoa(r.Weekday), strconv.Itoa(r.Hour),
				itoa(r.CumulativeDeposits),
			})
		}
	case TableBalance:
		for _, r := range tables.Balance {
			records = append(records, []string{
				formatTime(r.Timestamp),
				itoa(r.SignedAmount), Money(r.SignedAmount),
				itoa(r.Balance), strconv.FormatBool(r.IsNegative()),
			})
		}
	}
	return records, nil
}

// WriteCSV writes one table as CSV with a header row.
func WriteCSV(w io.Writer, tables metrics.Tables, t Table) error {
	records, err := Records(tables, t)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s csv: %w", t, err)
	}
	return nil
}

// WriteJSON writes all tables as one indented JSON object.
func WriteJSON(w io.Writer, tables metrics.Tables) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tables); err != nil {
		return fmt.Errorf("failed to encode tables: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string { return t.Format(TimestampLayout) }

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
