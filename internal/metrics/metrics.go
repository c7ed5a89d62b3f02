// Package metrics derives sorted, time-indexed tables from parsed events.
package metrics

import (
	"slices"
	"time"

	"github.com/example/rv-stats/pkg/transaction"
)

// Calendar holds the calendar fields of a timestamp in its own zone.
type Calendar struct {
	Year    int `json:"year"`
	Month   int `json:"month"`
	Weekday int `json:"weekday"` // 0=Monday..6=Sunday
	Hour    int `json:"hour"`
}

// CalendarOf annotates t without converting its zone.
func CalendarOf(t time.Time) Calendar {
	return Calendar{
		Year:    t.Year(),
		Month:   int(t.Month()),
		Weekday: (int(t.Weekday()) + 6) % 7,
		Hour:    t.Hour(),
	}
}

// PurchaseRow is one row of the purchase table.
type PurchaseRow struct {
	transaction.Purchase
	Calendar
	CumulativeBuys int64 `json:"cumulative_buys"`
}

// DepositRow is one row of the deposit table.
type DepositRow struct {
	transaction.Deposit
	Calendar
	CumulativeDeposits int64 `json:"cumulative_deposits"`
}

// BalanceRow is one row of the merged balance table.
type BalanceRow struct {
	Timestamp    time.Time `json:"timestamp"`
	SignedAmount int64     `json:"amount_minor_units"`
	Balance      int64     `json:"balance"`
}

// IsNegative reports whether the account was overdrawn after this row.
func (r BalanceRow) IsNegative() bool { return r.Balance < 0 }

// Tables are the three outputs of one Compute call.
type Tables struct {
	Purchases []PurchaseRow `json:"purchases"`
	Deposits  []DepositRow  `json:"deposits"`
	Balance   []BalanceRow  `json:"balance"`
}

// Compute sorts both inputs, annotates them and merges them into a running
// balance. Inputs are not modified and the result shares no memory with them.
func Compute(purchases []transaction.Purchase, deposits []transaction.Deposit) Tables {
	sortedBuys := slices.Clone(purchases)
	slices.SortStableFunc(sortedBuys, func(a, b transaction.Purchase) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	sortedDeposits := slices.Clone(deposits)
	slices.SortStableFunc(sortedDeposits, func(a, b transaction.Deposit) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	tables := Tables{
		Purchases: make([]PurchaseRow, len(sortedBuys)),
		Deposits:  make([]DepositRow, len(sortedDeposits)),
	}

	var sum int64
	for i, p := range sortedBuys {
		sum += p.PriceMinorUnits
		tables.Purchases[i] = PurchaseRow{Purchase: p, Calendar: CalendarOf(p.Timestamp), CumulativeBuys: sum}
	}
	sum = 0
	for i, d := range sortedDeposits {
		sum += d.AmountMinorUnits
		tables.Deposits[i] = DepositRow{Deposit: d, Calendar: CalendarOf(d.Timestamp), CumulativeDeposits: sum}
	}

	tables.Balance = balance(sortedBuys, sortedDeposits)
	return tables
}

// balance concatenates purchases before deposits so that timestamp ties
// keep that order under the stable sort.
func balance(purchases []transaction.Purchase, deposits []transaction.Deposit) []BalanceRow {
	rows := make([]BalanceRow, 0, len(purchases)+len(deposits))
	for _, p := range purchases {
		rows = append(rows, BalanceRow{Timestamp: p.Timestamp, SignedAmount: p.SignedAmount()})
	}
	for _, d := range deposits {
		rows = append(rows, BalanceRow{Timestamp: d.Timestamp, SignedAmount: d.SignedAmount()})
	}
	slices.SortStableFunc(rows, func(a, b BalanceRow) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	var running int64
	for i := range rows {
		running += rows[i].SignedAmount
		rows[i].Balance = running
	}
	return rows
}

// ComputeLog is Compute over the events of a parsed log.
func ComputeLog(log *transaction.Log) Tables {
	return Compute(log.Purchases(), log.Deposits())
}

// FilterYears recomputes the tables from the events whose year lies in
// [from, to]. Cumulative columns restart at the first included row.
func (t Tables) FilterYears(from, to int) Tables {
	var purchases []transaction.Purchase
	for _, r := range t.Purchases {
		if r.Year >= from && r.Year <= to {
			purchases = append(purchases, r.Purchase)
		}
	}
	var deposits []transaction.Deposit
	for _, r := range t.Deposits {
		if r.Year >= from && r.Year <= to {
			deposits = append(deposits, r.Deposit)
		}
	}
	return Compute(purchases, deposits)
}

// YearRange returns the first and last year present in any table.
// ok is false when all tables are empty.
func (t Tables) YearRange() (first, last int, ok bool) {
	for _, r := range t.Balance {
		y := r.Timestamp.Year()
		if !ok || y < first {
			first = y
		}
		if !ok || y > last {
			last = y
		}
		ok = true
	}
	return first, last, ok
}
