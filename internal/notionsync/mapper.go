package notionsync

import (
	"time"

	"github.com/jomei/notionapi"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// TransactionToNotionProperties converts a canonical transaction to the
// property set of the Transactions database.
func TransactionToNotionProperties(tx *domain.CanonicalTransaction) notionapi.Properties {
	props := notionapi.Properties{
		"Transaction ID": notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{
					Type: notionapi.ObjectTypeText,
					Text: &notionapi.Text{
						Content: tx.TransactionID,
					},
				},
			},
		},
		"Description": notionapi.RichTextProperty{
			RichText: []notionapi.RichText{
				{
					Type: notionapi.ObjectTypeText,
					Text: &notionapi.Text{
						Content: tx.Description,
					},
				},
			},
		},
		"Amount": notionapi.NumberProperty{
			Number: tx.Amount,
		},
		"Type": notionapi.SelectProperty{
			Select: notionapi.Option{
				Name: string(tx.Type),
			},
		},
		"Category": notionapi.SelectProperty{
			Select: notionapi.Option{
				Name: tx.CategoryID,
			},
		},
		"Account": notionapi.SelectProperty{
			Select: notionapi.Option{
				Name: tx.BankAccountID,
			},
		},
	}

	if tx.Merchant != "" {
		props["Merchant"] = notionapi.RichTextProperty{
			RichText: []notionapi.RichText{
				{
					Type: notionapi.ObjectTypeText,
					Text: &notionapi.Text{
						Content: tx.Merchant,
					},
				},
			},
		}
	}

	if tx.TransactionDate.IsValid() {
		date := notionapi.Date(tx.TransactionDate.In(time.UTC))
		props["Date"] = notionapi.DateProperty{
			Date: &notionapi.DateObject{
				Start: &date,
			},
		}
	}

	return props
}
