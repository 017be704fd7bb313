package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/models/m_outbox"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
)

// Config for the outbox retention job.
type Config struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	DryRun                 bool
}

// retentionRule deletes events in one terminal status processed before a cutoff.
type retentionRule struct {
	status string
	cutoff time.Time
}

func (r retentionRule) filter() *query.Builder {
	return query.From(m_outbox.TableName).
		Where(query.Eq(m_outbox.Status, r.status)).
		Where(query.IsNotNull(m_outbox.ProcessedAt)).
		Where(query.Lt(m_outbox.ProcessedAt, r.cutoff))
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", os.Getenv("SPANNER_DATABASE"), "Spanner database (format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&config.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag or SPANNER_DATABASE is required")
	}

	if err := cleanupOutbox(context.Background(), config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanupOutbox(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	now := time.Now().UTC()
	rules := []retentionRule{
		{status: m_outbox.StatusCompleted, cutoff: now.AddDate(0, 0, -config.CompletedRetentionDays)},
		{status: m_outbox.StatusFailed, cutoff: now.AddDate(0, 0, -config.FailedRetentionDays)},
	}

	log.Printf("Starting outbox cleanup (dry run: %v)...", config.DryRun)

	var total int64
	for _, rule := range rules {
		log.Printf("  %s events cutoff: %s", rule.status, rule.cutoff.Format(time.RFC3339))

		var n int64
		if config.DryRun {
			n, err = countMatching(ctx, client, rule)
		} else {
			n, err = deleteMatching(ctx, client, rule)
		}
		if err != nil {
			return fmt.Errorf("%s events: %w", rule.status, err)
		}
		total += n
	}

	if config.DryRun {
		log.Printf("DRY RUN: Would delete %d total events", total)
		log.Println("Run without -dry-run to actually delete events")
		return nil
	}
	log.Printf("Deleted %d total events", total)
	return nil
}

func countMatching(ctx context.Context, client *spanner.Client, rule retentionRule) (int64, error) {
	iter := client.Single().Query(ctx, rule.filter().Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse count: %w", err)
	}

	log.Printf("  Would delete %d %s events", count, rule.status)
	return count, nil
}

func deleteMatching(ctx context.Context, client *spanner.Client, rule retentionRule) (int64, error) {
	var deleted int64
	_, err := client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, rule.filter().BuildDelete())
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("cleanup transaction failed: %w", err)
	}

	log.Printf("  Deleted %d %s events", deleted, rule.status)
	return deleted, nil
}
