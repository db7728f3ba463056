package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dvloznov/sms-ledger/internal/config"
	"github.com/dvloznov/sms-ledger/internal/domain"
	"github.com/dvloznov/sms-ledger/internal/ingress"
	"github.com/dvloznov/sms-ledger/internal/ledger"
	bqledger "github.com/dvloznov/sms-ledger/internal/ledger/bigquery"
	"github.com/dvloznov/sms-ledger/internal/ledger/inmemory"
	"github.com/dvloznov/sms-ledger/internal/logger"
	"github.com/dvloznov/sms-ledger/internal/pipeline"
)

func main() {
	log := logger.New()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "process":
		runProcess(log)
	case "feed":
		runFeed(log)
	case "accounts":
		runAccounts(log)
	case "categories":
		runCategories(log)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("SMS Ledger CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  cli <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  process     Run one message through the ingestion pipeline")
	fmt.Println("  feed        Read messages from stdin, one per line, and process each")
	fmt.Println("  accounts    List bank accounts")
	fmt.Println("  categories  List categories")
	fmt.Println("  help        Show this help message")
	fmt.Println("\nRun 'cli <command> -h' for more information on a command.")
}

func openLedger(ctx context.Context, log zerolog.Logger) (ledger.Ledger, func()) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.InMemoryLedger || cfg.ProjectID == "" {
		log.Warn().Msg("Using in-memory ledger - data is lost on exit")
		return inmemory.NewSeededStore(), func() {}
	}

	store, err := bqledger.NewStore(ctx, cfg.ProjectID, cfg.DatasetID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create BigQuery ledger")
	}
	return store, func() { _ = store.Close() }
}

func runProcess(log zerolog.Logger) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	message := fs.String("message", "", "Raw message text to process")
	fs.Parse(os.Args[2:])

	if *message == "" {
		log.Fatal().Msg("Error: --message is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	store, closeStore := openLedger(ctx, log)
	defer closeStore()

	cfg, _ := config.Load()
	p := pipeline.New(store, pipeline.NewLogNotifier(log), log, cfg.UserID)

	ev := &domain.RawEvent{Message: &domain.TextMessage{Body: *message}}
	if p.Process(ctx, ev) {
		fmt.Println("Transaction persisted.")
		return
	}
	fmt.Println("No transaction persisted.")
	os.Exit(1)
}

func runFeed(log zerolog.Logger) {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	buffer := fs.Int("buffer", 16, "Listener buffer size")
	fs.Parse(os.Args[2:])

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = logger.WithContext(ctx, log)

	store, closeStore := openLedger(ctx, log)
	defer closeStore()

	cfg, _ := config.Load()
	p := pipeline.New(store, pipeline.NewLogNotifier(log), log, cfg.UserID)

	listener := ingress.NewSMSListener(*buffer, log)
	if err := listener.Start(ctx, p.Process); err != nil {
		log.Fatal().Err(err).Msg("Failed to start listener")
	}

	scanner := bufio.NewScanner(os.Stdin)
	var submitted int
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if err := listener.Submit(ctx, line); err != nil {
			log.Error().Err(err).Msg("Failed to submit message")
			break
		}
		submitted++
	}
	if err := scanner.Err(); err != nil {
		log.Error().Err(err).Msg("Reading stdin failed")
	}

	if err := listener.Stop(ctx); err != nil {
		log.Error().Err(err).Msg("Listener shutdown failed")
	}

	fmt.Printf("Submitted %d messages.\n", submitted)
}

func runAccounts(log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, closeStore := openLedger(ctx, log)
	defer closeStore()

	accounts, err := store.ListBankAccounts(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list bank accounts")
	}

	if len(accounts) == 0 {
		fmt.Println("No bank accounts found.")
		return
	}
	for _, acct := range accounts {
		fmt.Printf("%-16s %-24s %-10s %s\n", acct.ID, acct.Name, acct.Bank, acct.AccountNumber)
	}
}

func runCategories(log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, closeStore := openLedger(ctx, log)
	defer closeStore()

	categories, err := store.ListCategories(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list categories")
	}

	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return
	}
	for _, cat := range categories {
		fmt.Printf("%-20s %-24s %s\n", cat.ID, cat.Name, cat.Type)
	}
}
