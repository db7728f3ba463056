package match

import (
	"regexp"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// The generic fallback runs only after every specific matcher has
// declined. Direction comes from keyword families; when neither family
// is present the transaction is treated as an expense. That bias is
// deliberate: a false debit understates the balance, a false credit
// silently inflates it.

var (
	expenseKeywords = []string{"spent", "debited", "paid", "purchase"}
	incomeKeywords  = []string{"received", "credited", "deposit"}

	fallbackAmountRe  = regexp.MustCompile(`(?i)(?:INR|Rs\.?|₹)\s*([\d,]+(?:\.\d+)?)`)
	fallbackBalanceRe = regexp.MustCompile(`(?i)balance\s+(?:is\s+)?(?:now\s+)?(?:INR|Rs\.?|₹)\s*([\d,]+(?:\.\d+)?)`)

	fallbackExpenseToRe = regexp.MustCompile(
		`(?i)(?:spent|debited|paid|purchased?)\s+(?:(?:INR|Rs\.?|₹)\s*[\d,]+(?:\.\d+)?\s+)?(?:on|at|to|with|for)\s+(?P<to>[A-Za-z0-9@&._' -]+?)(?:\s+on\s+\d|[.,]|$)`)
	fallbackIncomeFromRe = regexp.MustCompile(
		`(?i)(?:received|credited)\s+(?:(?:INR|Rs\.?|₹)\s*[\d,]+(?:\.\d+)?\s+)?(?:from|by)\s+(?P<to>[A-Za-z0-9@&._' -]+?)(?:\s+on\s+\d|[.,]|$)`)
)

var fallback = &Matcher{
	Name: "generic-fallback",
	Bank: "",
	Gate: func(t string) bool {
		return fallbackAmountRe.MatchString(t)
	},
	Extract: matchFallback,
}

func matchFallback(text string) *domain.ParsedTransaction {
	dir := domain.TxExpense
	if !containsAny(text, expenseKeywords...) && containsAny(text, incomeKeywords...) {
		dir = domain.TxIncome
	}

	// Locate the running-balance mention first so its amount is not
	// mistaken for the transaction amount.
	var balance *float64
	balStart, balEnd := -1, -1
	if loc := fallbackBalanceRe.FindStringSubmatchIndex(text); loc != nil {
		balStart, balEnd = loc[0], loc[1]
		if v, err := ParseAmount(text[loc[2]:loc[3]]); err == nil {
			balance = &v
		}
	}

	var amount float64
	found := false
	for _, loc := range fallbackAmountRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] >= balStart && loc[1] <= balEnd {
			continue
		}
		v, err := ParseAmount(text[loc[2]:loc[3]])
		if err != nil || v <= 0 {
			continue
		}
		amount = v
		found = true
		break
	}
	if !found {
		return nil
	}

	var merchant string
	re := fallbackExpenseToRe
	if dir == domain.TxIncome {
		re = fallbackIncomeFromRe
	}
	if groups := findNamed(re, text); groups != nil {
		merchant = TrimRecipient(groups["to"])
	}

	tx := &domain.ParsedTransaction{
		Amount:      signAmount(amount, dir),
		Type:        dir,
		Merchant:    merchant,
		Balance:     balance,
		Description: describe(dir, merchant),
	}
	return tx
}
