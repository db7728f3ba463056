// Package category maps extracted transactions onto the spending/income
// taxonomy and infers which bank account a raw message refers to. Both
// are ordered keyword cascades over immutable tables; MapTransaction is
// total and never fails.
package category

import (
	"strings"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// MapTransaction classifies one transaction. The scan runs over the
// lower-cased concatenation of description and merchant; the first
// matching branch wins and rewrites the description to
// "Category - Detail". The defaults ("Shopping" for expenses, "Other
// income" for income) make the cascade total.
func MapTransaction(description, merchant string, amount float64, txType domain.TxType) domain.CategoryMapping {
	haystack := strings.ToLower(description + " " + merchant)

	if txType == domain.TxIncome {
		return mapIncome(haystack, description)
	}
	return mapExpense(haystack, description)
}

func mapIncome(haystack, original string) domain.CategoryMapping {
	for fragment, person := range knownCounterparties {
		if strings.Contains(haystack, fragment) {
			return domain.CategoryMapping{
				CategoryID:  CatFamilySupport,
				Description: "Family - Support",
				PersonType:  person,
			}
		}
	}

	if containsFragment(haystack, employerFragments) {
		return domain.CategoryMapping{
			CategoryID:  CatSalary,
			Description: "Income - Salary",
		}
	}

	if containsFragment(haystack, businessIncomeFragments) {
		return domain.CategoryMapping{
			CategoryID:  CatBusinessIncome,
			Description: "Income - Business",
		}
	}

	return domain.CategoryMapping{
		CategoryID:  CatOtherIncome,
		Description: original,
	}
}

func mapExpense(haystack, original string) domain.CategoryMapping {
	for _, branch := range expenseCascade {
		keyword, ok := firstKeyword(haystack, branch.keywords)
		if !ok {
			continue
		}

		detail := branch.labels[keyword]
		if detail == "" {
			detail = branch.defaultDetail
		}
		return domain.CategoryMapping{
			CategoryID:  branch.categoryID,
			Description: branch.name + " - " + detail,
		}
	}

	// Default branch: generic shopping, description left unmodified.
	return domain.CategoryMapping{
		CategoryID:  CatShopping,
		Description: original,
	}
}

func firstKeyword(haystack string, keywords []string) (string, bool) {
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			return k, true
		}
	}
	return "", false
}

func containsFragment(haystack string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(haystack, f) {
			return true
		}
	}
	return false
}
