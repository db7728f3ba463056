package bigquery

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// InsertTransactionWithClient inserts one canonical transaction into the
// transactions table using the provided client.
func InsertTransactionWithClient(ctx context.Context, client *bigquery.Client, datasetID string, tx *domain.CanonicalTransaction) error {
	if tx == nil {
		return fmt.Errorf("InsertTransaction: nil transaction")
	}

	inserter := client.Dataset(datasetID).Table(transactionsTable).Inserter()
	if err := inserter.Put(ctx, rowFromTransaction(tx)); err != nil {
		return fmt.Errorf("InsertTransaction: inserting row: %w", err)
	}
	return nil
}

// QueryTransactionsByDateRangeWithClient queries transactions within the
// specified date range using the provided client.
func QueryTransactionsByDateRangeWithClient(ctx context.Context, client *bigquery.Client, datasetID string, startDate, endDate time.Time) ([]*domain.CanonicalTransaction, error) {
	q := client.Query(fmt.Sprintf(`
		SELECT
			transaction_id,
			bank_account_id,
			category_id,
			person_id,
			transaction_date,
			amount,
			type,
			description,
			merchant,
			is_recurring,
			is_investment,
			is_verified,
			created_ts
		FROM %s.%s
		WHERE transaction_date BETWEEN @start_date AND @end_date
		ORDER BY transaction_date
	`, datasetID, transactionsTable))

	q.Parameters = []bigquery.QueryParameter{
		{Name: "start_date", Value: startDate.Format("2006-01-02")},
		{Name: "end_date", Value: endDate.Format("2006-01-02")},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("QueryTransactionsByDateRange: running query: %w", err)
	}

	var result []*domain.CanonicalTransaction
	for {
		var row TransactionRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("QueryTransactionsByDateRange: reading row: %w", err)
		}
		result = append(result, row.toDomain())
	}

	return result, nil
}
