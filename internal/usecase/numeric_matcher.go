package usecase

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/whispercart/backend/internal/domain"
)

const (
	// minBudget is exclusive: values at or below it read as quantities or noise
	minBudget = 10
	// maxQuantity is inclusive
	maxQuantity = 100
)

// ParseBudget strips leading currency signs and thousands separators and
// parses the rest as an integer. It succeeds only for values above 10.
// Digits may come from any script ("५०००") and may be grouped with single
// underscores ("5_000").
func ParseBudget(token string) (int, bool) {
	s := strings.TrimLeft(token, "₹$")
	s = strings.ReplaceAll(s, ",", "")
	s, ok := foldInteger(s, true)
	if !ok {
		return 0, false
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	if val <= minBudget {
		return 0, false
	}
	return val, true
}

// ParseQuantity accepts a token made only of decimal digits, in any
// script, with value up to 100
func ParseQuantity(token string) (int, bool) {
	if token == "" || strings.ContainsAny(token, "+-") {
		return 0, false
	}
	s, ok := foldInteger(token, false)
	if !ok {
		return 0, false
	}
	val, err := strconv.Atoi(s)
	if err != nil || val > maxQuantity {
		return 0, false
	}
	return val, true
}

// foldInteger rewrites an optionally signed integer literal with ASCII
// digits. With underscores allowed, each one must sit between two digits.
func foldInteger(s string, underscores bool) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case (r == '+' || r == '-') && i == 0:
			b.WriteRune(r)
		case unicode.Is(unicode.Nd, r):
			b.WriteByte(byte('0' + digitValue(r)))
		case r == '_' && underscores:
			if i == 0 || i == len(runes)-1 ||
				!unicode.Is(unicode.Nd, runes[i-1]) || !unicode.Is(unicode.Nd, runes[i+1]) {
				return "", false
			}
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}

// digitValue maps a decimal digit rune to 0-9. Unicode lays out each
// script's digits as contiguous runs of ten starting at zero.
func digitValue(r rune) int {
	start := r
	for unicode.Is(unicode.Nd, start-1) {
		start--
	}
	return int(r-start) % 10
}

// FindNumericMatches returns budget and quantity matches. A token yields a
// budget when it parses as one, otherwise a quantity when it can, never both.
func FindNumericMatches(tokens []domain.Token) (budgets, quantities []domain.Match) {
	for i, tok := range tokens {
		if _, ok := ParseBudget(tok.Text); ok {
			budgets = append(budgets, numericMatch(tok.Text, i, domain.ClassBudget))
			continue
		}
		if _, ok := ParseQuantity(tok.Text); ok {
			quantities = append(quantities, numericMatch(tok.Text, i, domain.ClassQuantity))
		}
	}
	return budgets, quantities
}

func numericMatch(text string, pos int, class domain.MatchClass) domain.Match {
	return domain.Match{
		Term:        text,
		MatchedWith: text,
		StartPos:    pos,
		EndPos:      pos,
		Score:       100,
		Class:       class,
	}
}
