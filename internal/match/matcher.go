// Package match implements the bank format matcher cascade. Each matcher
// owns one bank/rail's text grammar: a cheap gate deciding whether the
// grammar plausibly applies, and ordered regexp alternatives extracting
// amount, counterparty and running balance. Matchers are pure, stateless
// and never panic; malformed input yields nil.
package match

import (
	"regexp"
	"strings"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// Matcher is one (gate, extract) pair in the cascade.
type Matcher struct {
	// Name identifies the matcher in logs and tests.
	Name string

	// Bank is the bank key this grammar belongs to, empty for the
	// generic fallback.
	Bank string

	// Gate is a cheap substring test. If it fails, extraction must not
	// be attempted: this is what prevents cross-bank false positives.
	Gate func(text string) bool

	// Extract runs the grammar's regexp alternatives over gated text.
	Extract func(text string) *domain.ParsedTransaction
}

// Match applies the gate, then extraction.
func (m *Matcher) Match(text string) *domain.ParsedTransaction {
	if text == "" || !m.Gate(text) {
		return nil
	}
	return m.Extract(text)
}

// Matchers returns the cascade in priority order: most specific gates
// first, the generic UPI matchers last among specifics, the keyword
// fallback absolute last.
func Matchers() []*Matcher {
	return []*Matcher{
		hdfcDebit, hdfcCredit,
		iciciDebit, iciciCredit,
		sbiDebit, sbiCredit,
		axisDebit, axisCredit,
		kotakDebit, kotakCredit,
		barodaDebit, barodaCredit,
		federalDebit, federalCredit,
		upiDebit, upiCredit,
		fallback,
	}
}

// Run tries every matcher in priority order; the first hit wins.
func Run(text string) *domain.ParsedTransaction {
	for _, m := range Matchers() {
		if tx := m.Match(text); tx != nil {
			return tx
		}
	}
	return nil
}

// directional builds an Extract func for a single-direction grammar.
// Alternatives are tried in declared order; the first that matches wins.
// Each regexp names an "amount" group and optionally "to" and "balance".
func directional(bank string, dir domain.TxType, alts ...*regexp.Regexp) func(string) *domain.ParsedTransaction {
	return func(text string) *domain.ParsedTransaction {
		for _, re := range alts {
			groups := findNamed(re, text)
			if groups == nil {
				continue
			}
			amount, err := ParseAmount(groups["amount"])
			if err != nil || amount <= 0 {
				continue
			}

			tx := &domain.ParsedTransaction{
				Type:     dir,
				Bank:     bank,
				Amount:   signAmount(amount, dir),
				Merchant: TrimRecipient(groups["to"]),
			}
			tx.Description = describe(dir, tx.Merchant)
			if raw := groups["balance"]; raw != "" {
				if bal, err := ParseAmount(raw); err == nil {
					tx.Balance = &bal
				}
			}
			return tx
		}
		return nil
	}
}

func findNamed(re *regexp.Regexp, text string) map[string]string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	groups := make(map[string]string, 3)
	for i, name := range re.SubexpNames() {
		if name != "" && i < len(m) {
			groups[name] = m[i]
		}
	}
	return groups
}

func signAmount(abs float64, dir domain.TxType) float64 {
	if dir == domain.TxIncome {
		return abs
	}
	return -abs
}

func describe(dir domain.TxType, merchant string) string {
	switch {
	case merchant != "" && dir == domain.TxIncome:
		return "Received from " + merchant
	case merchant != "":
		return "Paid to " + merchant
	case dir == domain.TxIncome:
		return "Bank credit"
	default:
		return "Bank debit"
	}
}

func containsAny(text string, frags ...string) bool {
	lower := strings.ToLower(text)
	for _, f := range frags {
		if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// bankTokens are the phrase fragments that identify a specific bank's
// template. The generic UPI matchers refuse text carrying any of these,
// so a bank-specific message can never leak into the generic grammar.
var bankTokens = []string{
	"hdfc", "icici", "sbi", "state bank", "axis", "kotak", "baroda", "-bob", "federal",
}

func mentionsKnownBank(text string) bool {
	return containsAny(text, bankTokens...)
}
