package money

import "fmt"

// ParseErrorKind classifies why amount text was rejected.
type ParseErrorKind int

const (
	KindEmptyInput ParseErrorKind = iota + 1
	KindInvalidFormat
	KindNonPositive
	KindTooManyDecimalPlaces
	KindTooLarge
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty input"
	case KindInvalidFormat:
		return "invalid format"
	case KindNonPositive:
		return "amount must be positive"
	case KindTooManyDecimalPlaces:
		return "too many decimal places"
	case KindTooLarge:
		return "amount too large"
	default:
		return "unknown"
	}
}

// ParseError reports a rejected amount string. All parse errors are
// recoverable input-validation failures.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse amount %q: %s", e.Input, e.Kind)
}

func newParseError(kind ParseErrorKind, input string) *ParseError {
	return &ParseError{Kind: kind, Input: input}
}
