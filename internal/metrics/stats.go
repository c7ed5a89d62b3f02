package metrics

import (
	"slices"
	"strings"
)

// HourBucket aggregates purchases within one hour of the day.
type HourBucket struct {
	Hour  int   `json:"hour"`
	Sum   int64 `json:"sum_minor_units"`
	Count int   `json:"count"`
}

// HourlySpend sums prices and counts purchases per hour of day.
func HourlySpend(rows []PurchaseRow) [24]HourBucket {
	var buckets [24]HourBucket
	for h := range buckets {
		buckets[h].Hour = h
	}
	for _, r := range rows {
		buckets[r.Hour].Sum += r.PriceMinorUnits
		buckets[r.Hour].Count++
	}
	return buckets
}

// WeekdayHourCounts counts purchases per hour (rows) and weekday (columns).
func WeekdayHourCounts(rows []PurchaseRow) [24][7]int {
	var m [24][7]int
	for _, r := range rows {
		m[r.Hour][r.Weekday]++
	}
	return m
}

// ItemCount is the number of purchases of one item.
type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
	Spent int64  `json:"spent_minor_units"`
}

// TopItems returns up to n items ordered by purchase count, most bought
// first. Equal counts are ordered by name. n <= 0 returns every item.
func TopItems(rows []PurchaseRow, n int) []ItemCount {
	index := make(map[string]int)
	var items []ItemCount
	for _, r := range rows {
		i, ok := index[r.Item]
		if !ok {
			i = len(items)
			index[r.Item] = i
			items = append(items, ItemCount{Item: r.Item})
		}
		items[i].Count++
		items[i].Spent += r.PriceMinorUnits
	}

	slices.SortFunc(items, func(a, b ItemCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Item, b.Item)
	})
	if n > 0 && len(items) > n {
		items = items[:n]
	}
	return items
}

// UniqueItems counts distinct item names.
func UniqueItems(rows []PurchaseRow) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[r.Item] = struct{}{}
	}
	return len(seen)
}

// Stats describes a column of minor-unit amounts.
type Stats struct {
	Count int     `json:"count"`
	Sum   int64   `json:"sum"`
	Mean  float64 `json:"mean"`
	Min   int64   `json:"min"`
	Max   int64   `json:"max"`
}

// Describe summarises values. The zero Stats is returned for no values.
func Describe(values []int64) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	s := Stats{Count: len(values), Min: values[0], Max: values[0]}
	for _, v := range values {
		s.Sum += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Mean = float64(s.Sum) / float64(s.Count)
	return s
}

// Prices returns the price column of the purchase table.
func Prices(rows []PurchaseRow) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.PriceMinorUnits
	}
	return out
}

// Amounts returns the amount column of the deposit table.
func Amounts(rows []DepositRow) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.AmountMinorUnits
	}
	return out
}

// Summary is the headline numbers of a set of tables.
type Summary struct {
	Purchases      Stats `json:"purchases"`
	Deposits       Stats `json:"deposits"`
	UniqueItems    int   `json:"unique_items"`
	FinalBalance   int64 `json:"final_balance"`
	LowestBalance  int64 `json:"lowest_balance"`
	NegativeEvents int   `json:"negative_events"`
}

// Summary computes the headline numbers.
func (t Tables) Summary() Summary {
	s := Summary{
		Purchases:   Describe(Prices(t.Purchases)),
		Deposits:    Describe(Amounts(t.Deposits)),
		UniqueItems: UniqueItems(t.Purchases),
	}
	for i, r := range t.Balance {
		if i == 0 || r.Balance < s.LowestBalance {
			s.LowestBalance = r.Balance
		}
		if r.IsNegative() {
			s.NegativeEvents++
		}
	}
	if n := len(t.Balance); n > 0 {
		s.FinalBalance = t.Balance[n-1].Balance
	}
	return s
}
