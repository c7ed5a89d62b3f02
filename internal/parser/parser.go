package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/rv-stats/internal/normalize"
	"github.com/example/rv-stats/pkg/transaction"
)

// TimestampLayout is the layout of the first two tokens of every line.
const TimestampLayout = "2006-01-02 15:04:05"

// DepositVerb is the literal event-type token of deposit lines.
const DepositVerb = "deposited"

// Line grammar. A line is a fixed envelope of leading tokens
// (date, time, actor, verb), a variable middle and, for purchases,
// a trailing envelope ("for", price, currency).
const (
	leadingTokens  = 4
	trailingTokens = 3
	priceFromEnd   = 2

	// MinTokens is the shortest line any event can be parsed from.
	MinTokens = leadingTokens + 1
	// MinPurchaseTokens is the bare envelope. The item name may be empty.
	MinPurchaseTokens = leadingTokens + trailingTokens
)

// Tokenize splits a line on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// ParseEvent parses one log line into a Deposit or a Purchase.
func ParseEvent(line string) (transaction.Event, error) {
	tokens := Tokenize(line)
	if len(tokens) < MinTokens {
		return nil, &MalformedLineError{
			Line:   line,
			Reason: fmt.Sprintf("got %d tokens, need at least %d", len(tokens), MinTokens),
		}
	}

	ts, err := time.Parse(TimestampLayout, tokens[0]+" "+tokens[1])
	if err != nil {
		return nil, &MalformedLineError{Line: line, Reason: "bad timestamp", Err: err}
	}
	actor := tokens[2]

	if tokens[3] == DepositVerb {
		amount, err := ParseAmount(tokens[4])
		if err != nil {
			return nil, fmt.Errorf("deposit at %s: %w", tokens[0]+" "+tokens[1], err)
		}
		return transaction.Deposit{
			Timestamp:        ts,
			AmountMinorUnits: amount,
			Actor:            actor,
		}, nil
	}

	if len(tokens) < MinPurchaseTokens {
		return nil, &MalformedLineError{
			Line:   line,
			Reason: fmt.Sprintf("purchase has %d tokens, need at least %d", len(tokens), MinPurchaseTokens),
		}
	}

	price, err := ParseAmount(tokens[len(tokens)-priceFromEnd])
	if err != nil {
		return nil, fmt.Errorf("purchase at %s: %w", tokens[0]+" "+tokens[1], err)
	}

	rawName := strings.Join(tokens[leadingTokens:len(tokens)-trailingTokens], " ")
	item, err := normalize.Normalize(rawName)
	if err != nil {
		return nil, fmt.Errorf("purchase at %s: %w", tokens[0]+" "+tokens[1], err)
	}

	return transaction.Purchase{
		Timestamp:       ts,
		PriceMinorUnits: price,
		Item:            item,
		Actor:           actor,
	}, nil
}

// ParseAmount strips every "." from token and reads the digits as minor units.
func ParseAmount(token string) (int64, error) {
	digits := strings.ReplaceAll(token, ".", "")
	if digits == "" {
		return 0, &AmountFormatError{Token: token}
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, &AmountFormatError{Token: token}
		}
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, &AmountFormatError{Token: token, Err: err}
	}
	return n, nil
}

// ParseLines parses lines in document order. The first failure aborts
// the whole parse and no log is returned.
func ParseLines(lines []string) (*transaction.Log, error) {
	log := &transaction.Log{Events: make([]transaction.Event, 0, len(lines))}
	for i, line := range lines {
		ev, err := ParseEvent(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		log.AddEvent(ev)
	}
	return log, nil
}
