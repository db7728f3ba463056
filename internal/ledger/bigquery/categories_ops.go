package bigquery

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"github.com/dvloznov/sms-ledger/internal/domain"
)

// ListCategoriesWithClient lists all categories using the provided client.
func ListCategoriesWithClient(ctx context.Context, client *bigquery.Client, datasetID string) ([]*domain.Category, error) {
	q := client.Query(fmt.Sprintf(`
		SELECT
			category_id,
			name,
			type,
			is_active
		FROM %s.%s
		ORDER BY name
	`, datasetID, categoriesTable))

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: running query: %w", err)
	}

	var result []*domain.Category
	for {
		var row CategoryRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ListCategories: reading row: %w", err)
		}
		result = append(result, row.toDomain())
	}

	return result, nil
}
