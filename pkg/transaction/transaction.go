package transaction

import (
	"time"
)

// Kind distinguishes deposits from purchases
type Kind string

const (
	KindDeposit  Kind = "deposit"
	KindPurchase Kind = "purchase"
)

// Event is a single parsed log entry
type Event interface {
	Kind() Kind
	EventTime() time.Time
	// SignedAmount is positive for money in and negative for money out.
	SignedAmount() int64
}

// Deposit represents money loaded onto the account
type Deposit struct {
	Timestamp        time.Time `json:"timestamp"`
	AmountMinorUnits int64     `json:"amount_minor_units"`
	Actor            string    `json:"actor,omitempty"`
}

func (d Deposit) Kind() Kind           { return KindDeposit }
func (d Deposit) EventTime() time.Time { return d.Timestamp }
func (d Deposit) SignedAmount() int64  { return d.AmountMinorUnits }

// Purchase represents a single item bought from the machine
type Purchase struct {
	Timestamp       time.Time `json:"timestamp"`
	PriceMinorUnits int64     `json:"price_minor_units"`
	Item            string    `json:"item"`
	Actor           string    `json:"actor,omitempty"`
}

func (p Purchase) Kind() Kind           { return KindPurchase }
func (p Purchase) EventTime() time.Time { return p.Timestamp }
func (p Purchase) SignedAmount() int64  { return -p.PriceMinorUnits }

// Log holds events in document order
type Log struct {
	Events []Event `json:"-"`
	Total  int     `json:"total"`
	Source string  `json:"source"`
}

// AddEvent appends an event to the log
func (l *Log) AddEvent(e Event) {
	l.Events = append(l.Events, e)
	l.Total = len(l.Events)
}

// Purchases returns all purchases in document order
func (l *Log) Purchases() []Purchase {
	purchases := make([]Purchase, 0, len(l.Events))
	for _, e := range l.Events {
		if p, ok := e.(Purchase); ok {
			purchases = append(purchases, p)
		}
	}
	return purchases
}

// Deposits returns all deposits in document order
func (l *Log) Deposits() []Deposit {
	deposits := make([]Deposit, 0, len(l.Events))
	for _, e := range l.Events {
		if d, ok := e.(Deposit); ok {
			deposits = append(deposits, d)
		}
	}
	return deposits
}

// GetByItem returns all purchases of the given item
func (l *Log) GetByItem(item string) []Purchase {
	var filtered []Purchase
	for _, p := range l.Purchases() {
		if p.Item == item {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
