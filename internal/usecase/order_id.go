package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	orderSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderSuffixLength   = 6
)

// OrderIDGenerator produces gateway order ids.
type OrderIDGenerator interface {
	Generate(bookingID int64) (string, error)
}

type orderIDGenerator struct {
	prefix string
	now    func() time.Time
}

// NewOrderIDGenerator returns a generator producing
// {prefix}-{bookingID}-{unixMillis}-{random suffix}. The suffix keeps two
// attempts in the same millisecond apart.
func NewOrderIDGenerator(prefix string) OrderIDGenerator {
	return &orderIDGenerator{prefix: prefix, now: time.Now}
}

func (g *orderIDGenerator) Generate(bookingID int64) (string, error) {
	suffix, err := gonanoid.Generate(orderSuffixAlphabet, orderSuffixLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate order id suffix: %w", err)
	}
	return fmt.Sprintf("%s-%d-%d-%s", g.prefix, bookingID, g.now().UnixMilli(), suffix), nil
}

// ParseOrderBookingID extracts the booking id from an order id produced by
// the generator, or from the older {prefix}-{bookingID}-{unixMillis} form.
// Fields are read from the right so the prefix may contain dashes. It is only
// used for log correlation; stored payments remain the source of truth.
func ParseOrderBookingID(orderID string) (int64, bool) {
	parts := strings.Split(orderID, "-")
	n := len(parts)

	if n >= 4 && isDigits(parts[n-2]) {
		if id, ok := parseBookingID(parts[n-3]); ok {
			return id, true
		}
	}
	if n >= 3 && isDigits(parts[n-1]) {
		return parseBookingID(parts[n-2])
	}
	return 0, false
}

func parseBookingID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
