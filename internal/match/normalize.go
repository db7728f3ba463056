package match

import (
	"fmt"
	"strconv"
	"strings"
)

// recipientTerminators mark the start of reference-number or balance
// suffixes that bank templates glue onto the counterparty field.
var recipientTerminators = []string{
	"avlbal:", "avl bal", "avl lmt",
	"total bal", "bal:",
	"ref no", "refno", "ref:", "ref ",
	"upi ref", "upi:",
	"not you", "if not",
	"call ",
}

// ParseAmount parses a captured amount string, stripping thousands
// separators and currency marks.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, fmt.Errorf("ParseAmount: empty amount")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("ParseAmount: parsing %q: %w", s, err)
	}
	return v, nil
}

// TrimRecipient cleans a captured counterparty substring: cuts at the
// first known terminator token and strips stray punctuation.
func TrimRecipient(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	cut := len(s)
	for _, term := range recipientTerminators {
		if idx := strings.Index(lower, term); idx >= 0 && idx < cut {
			cut = idx
		}
	}

	s = strings.TrimSpace(s[:cut])
	s = strings.Trim(s, ".,-:;()")
	return strings.TrimSpace(s)
}
