// Package money converts between player-entered amount text and the
// ledger's fixed-point integer representation. All scaling arithmetic is
// exact decimal; binary floating point is never used for amounts.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// ScaleFactor is the number of fixed-point units per currency unit.
	ScaleFactor = 10_000
	// DecimalPlaces is the precision implied by ScaleFactor.
	DecimalPlaces = 4

	// minFractionDigits is the minimum number of fraction digits rendered
	// by Format; trailing zeros beyond this are trimmed.
	minFractionDigits = 2
)

var (
	scaleDec = decimal.New(1, DecimalPlaces)
	maxUnits = decimal.NewFromInt(math.MaxInt64)

	// Glyphs stripped from player input in addition to the configured symbol.
	currencyGlyphs = []string{"$", "€", "£", "¥"}
)

// Codec converts between amount text and fixed-point units for one
// locale/currency-symbol configuration. It is immutable and safe for
// concurrent use.
type Codec struct {
	symbol      string
	fallback    string
	printer     *message.Printer
	decimalMark string
	groupMark   string
}

// NewCodec builds a Codec for the given BCP 47 locale tag, currency symbol
// and fallback placeholder (rendered when a value cannot be formatted).
func NewCodec(locale, symbol, fallback string) (*Codec, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	p := message.NewPrinter(tag)

	// Derive the locale's separators once; x/text localizes whole verbs
	// but does not expose the separators themselves.
	mark := "."
	if sample := []rune(p.Sprintf("%.1f", 1.1)); len(sample) == 3 {
		mark = string(sample[1])
	}
	group := ""
	for _, r := range p.Sprintf("%d", 1_000_000) {
		if r < '0' || r > '9' {
			group = string(r)
			break
		}
	}

	return &Codec{
		symbol:      symbol,
		fallback:    fallback,
		printer:     p,
		decimalMark: mark,
		groupMark:   group,
	}, nil
}

// Parse converts player-entered amount text to fixed-point units.
// The amount must be strictly positive, carry at most four decimal places,
// and fit the representable range once scaled. Exponent notation is
// accepted. Failures are *ParseError values.
func (c *Codec) Parse(text string) (int64, error) {
	return c.parse(text, false)
}

// ParseNonNegative is Parse with zero admitted. Administrative balance
// overwrites use it; player-facing amounts stay strictly positive.
func (c *Codec) ParseNonNegative(text string) (int64, error) {
	return c.parse(text, true)
}

func (c *Codec) parse(text string, allowZero bool) (int64, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0, newParseError(KindEmptyInput, text)
	}

	t = strings.TrimSpace(c.stripSymbols(t))
	if t == "" {
		return 0, newParseError(KindInvalidFormat, text)
	}
	t = c.normalizeSeparators(t)

	d, err := decimal.NewFromString(t)
	if err != nil {
		return 0, newParseError(KindInvalidFormat, text)
	}
	if d.Sign() < 0 || (d.Sign() == 0 && !allowZero) {
		return 0, newParseError(KindNonPositive, text)
	}

	scaled := d.Mul(scaleDec)
	if !scaled.IsInteger() {
		return 0, newParseError(KindTooManyDecimalPlaces, text)
	}
	if scaled.Cmp(maxUnits) > 0 {
		return 0, newParseError(KindTooLarge, text)
	}

	return scaled.Round(0).IntPart(), nil
}

// ParseSilent is Parse without error detail, for callers that only need
// to know whether the input is a usable amount.
func (c *Codec) ParseSilent(text string) (int64, bool) {
	units, err := c.Parse(text)
	return units, err == nil
}

// Format renders fixed-point units as locale-formatted currency text,
// e.g. Format(1005000) -> "$100.50" for "$"/en-US. Between two and four
// fraction digits are shown. On any internal failure the configured
// fallback placeholder is returned instead; Format never panics.
func (c *Codec) Format(units int64) string {
	s, err := c.format(units)
	if err != nil {
		return c.symbol + c.fallback
	}
	return s
}

func (c *Codec) format(units int64) (string, error) {
	fixed := decimal.New(units, -DecimalPlaces).StringFixed(DecimalPlaces)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	whole, frac, ok := strings.Cut(fixed, ".")
	if !ok || len(frac) != DecimalPlaces {
		return "", fmt.Errorf("unexpected decimal rendering %q", fixed)
	}
	wholeVal, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "", fmt.Errorf("parsing whole part %q: %w", whole, err)
	}

	for len(frac) > minFractionDigits && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(c.symbol)
	b.WriteString(c.printer.Sprintf("%d", wholeVal))
	b.WriteString(c.decimalMark)
	b.WriteString(frac)
	return b.String(), nil
}

// normalizeSeparators rewrites locale-formatted input ("1.234,56" under
// de-DE) to the canonical decimal form the parser expects.
func (c *Codec) normalizeSeparators(s string) string {
	if c.groupMark != "" {
		s = strings.ReplaceAll(s, c.groupMark, "")
	}
	if c.decimalMark != "." {
		s = strings.Replace(s, c.decimalMark, ".", 1)
	}
	return s
}

func (c *Codec) stripSymbols(s string) string {
	if c.symbol != "" {
		s = strings.ReplaceAll(s, c.symbol, "")
	}
	for _, g := range currencyGlyphs {
		s = strings.ReplaceAll(s, g, "")
	}
	return s
}
