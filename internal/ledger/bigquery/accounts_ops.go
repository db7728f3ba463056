package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// ListBankAccountsWithClient lists all bank accounts using the provided client.
func ListBankAccountsWithClient(ctx context.Context, client *bigquery.Client, datasetID string) ([]*domain.BankAccount, error) {
	q := client.Query(fmt.Sprintf(`
		SELECT
			account_id,
			account_name,
			bank,
			account_number,
			currency,
			is_primary
		FROM %s.%s
		ORDER BY account_name
	`, datasetID, accountsTable))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListBankAccounts: running query: %w", err)
	}

	var result []*domain.BankAccount
	for {
		var row AccountRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListBankAccounts: reading row: %w", err)
		}
		result = append(result, row.toDomain())
	}

	return result, nil
}
