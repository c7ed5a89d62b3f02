package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine matches every *MalformedLineError.
	ErrMalformedLine = errors.New("malformed log line")
	// ErrAmountFormat matches every *AmountFormatError.
	ErrAmountFormat = errors.New("malformed amount")
)

// MalformedLineError reports a line that does not fit the log grammar.
type MalformedLineError struct {
	Line   string
	Reason string
	Err    error
}

func (e *MalformedLineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed line %q: %s: %v", e.Line, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed line %q: %s", e.Line, e.Reason)
}

func (e *MalformedLineError) Unwrap() error { return e.Err }

func (e *MalformedLineError) Is(target error) bool { return target == ErrMalformedLine }

// AmountFormatError reports a currency token with non-digit residue.
type AmountFormatError struct {
	Token string
	Err   error
}

func (e *AmountFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid amount %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid amount %q", e.Token)
}

func (e *AmountFormatError) Unwrap() error { return e.Err }

func (e *AmountFormatError) Is(target error) bool { return target == ErrAmountFormat }
