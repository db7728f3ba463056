package notionsync

import (
	"context"
	"fmt"
	"time"

	"github.com/jomei/notionapi"

	"github.com/dvloznov/sms-ledger/internal/ledger"
	"github.com/dvloznov/sms-ledger/internal/logger"
)

// SyncTransactions exports ledger transactions within the date range to
// the Notion database. Transactions whose ID already exists in Notion
// are skipped, so repeated runs over the same range are idempotent.
func SyncTransactions(ctx context.Context, store ledger.Ledger, notionClient NotionService, notionDBID string, startDate, endDate time.Time, dryRun bool) error {
	log := logger.FromContext(ctx)

	log.Info().
		Time("start_date", startDate).
		Time("end_date", endDate).
		Bool("dry_run", dryRun).
		Msg("Starting transaction sync to Notion")

	transactions, err := store.QueryTransactionsByDateRange(ctx, startDate, endDate)
	if err != nil {
		return fmt.Errorf("SyncTransactions: querying transactions: %w", err)
	}

	log.Info().Int("transaction_count", len(transactions)).Msg("Retrieved transactions from ledger")

	pages, err := queryAllNotionPages(ctx, notionClient, notionDBID)
	if err != nil {
		return fmt.Errorf("SyncTransactions: querying Notion pages: %w", err)
	}

	existing := make(map[string]bool)
	for _, page := range pages {
		if txID := extractTransactionID(page); txID != "" {
			existing[txID] = true
		}
	}

	var created, skipped int
	for _, tx := range transactions {
		if existing[tx.TransactionID] {
			skipped++
			continue
		}

		if dryRun {
			log.Info().
				Str("transaction_id", tx.TransactionID).
				Msg("[DRY RUN] Would create Notion page")
			created++
			continue
		}

		if _, err := notionClient.CreatePage(ctx, notionDBID, TransactionToNotionProperties(tx)); err != nil {
			return fmt.Errorf("SyncTransactions: creating page for %s: %w", tx.TransactionID, err)
		}
		created++
	}

	log.Info().
		Int("created", created).
		Int("skipped", skipped).
		Msg("Transaction sync complete")

	return nil
}

// queryAllNotionPages pages through the database until the cursor is
// exhausted.
func queryAllNotionPages(ctx context.Context, notionClient NotionService, notionDBID string) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor

	for {
		req := &notionapi.DatabaseQueryRequest{
			StartCursor: cursor,
			PageSize:    100,
		}

		resp, err := notionClient.QueryDatabase(ctx, notionDBID, req)
		if err != nil {
			return nil, err
		}

		pages = append(pages, resp.Results...)

		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}

	return pages, nil
}

// extractTransactionID reads the Transaction ID title property off a
// Notion page, returning "" when the property is missing or empty.
func extractTransactionID(page notionapi.Page) string {
	prop, ok := page.Properties["Transaction ID"]
	if !ok {
		return ""
	}

	title, ok := prop.(*notionapi.TitleProperty)
	if !ok || len(title.Title) == 0 {
		return ""
	}

	return title.Title[0].PlainText
}
