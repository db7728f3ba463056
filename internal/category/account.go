package category

import (
	"strings"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// bankFragments are phrase fragments unique to each bank's SMS template,
// keyed by the bank key stored on accounts. This vocabulary deliberately
// stays separate from the category tables even where it overlaps them.
var bankFragments = map[string][]string{
	"hdfc":    {"hdfc"},
	"icici":   {"icici"},
	"sbi":     {"sbi", "state bank"},
	"axis":    {"axis"},
	"kotak":   {"kotak"},
	"bob":     {"bank of baroda", "baroda", "-bob"},
	"federal": {"federal"},
}

// DetectBankAccount scans raw message text for bank-name mentions and
// returns the id of the matching account, or "" when no account can be
// inferred. It is independent of category mapping and safe to run on
// any text, including empty strings.
func DetectBankAccount(text string, accounts []*domain.BankAccount) string {
	if text == "" || len(accounts) == 0 {
		return ""
	}
	lower := strings.ToLower(text)

	for _, acc := range accounts {
		key := strings.ToLower(acc.Bank)
		fragments, ok := bankFragments[key]
		if !ok {
			// Unknown bank key: fall back to the account's own name.
			fragments = []string{key}
		}
		for _, f := range fragments {
			if f != "" && strings.Contains(lower, f) {
				return acc.ID
			}
		}
	}

	return ""
}
