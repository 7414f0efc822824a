package repository

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"contract_monthly_claim/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ErrCorruptRecord reports a stored value that cannot be decoded.
var ErrCorruptRecord = errors.New("corrupt stored record")

// Hours and rate are stored with exactly two fractional digits; amount is
// stored exactly as computed.
const storedScale = 2

func fixed(d decimal.Decimal) string {
	return d.StringFixed(storedScale)
}

// parseDecimal maps only an absent value to zero; anything unparseable is a
// corrupt row and must not turn into a silent zero rate or amount.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s=%q", ErrCorruptRecord, field, s)
	}
	return d, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%q", ErrCorruptRecord, field, s)
	}
	return t, nil
}

func sortByIDAsc(claims []entities.Claim) {
	sort.Slice(claims, func(i, j int) bool { return claims[i].ID < claims[j].ID })
}

func sortByIDDesc(claims []entities.Claim) {
	sort.Slice(claims, func(i, j int) bool { return claims[i].ID > claims[j].ID })
}
