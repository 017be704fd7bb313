package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/storefront-service/internal/app/outbox"
	"github.com/light-bringer/storefront-service/internal/app/outbox/queries/list_events"
)

func main() {
	spannerDB := flag.String("database", os.Getenv("SPANNER_DATABASE"), "Spanner database path")
	eventType := flag.String("type", "", "only events of this type, e.g. team_member.permission_changed")
	aggregateID := flag.String("aggregate", "", "only events of this product or team member id")
	limit := flag.Int("limit", 10, "maximum number of events")
	flag.Parse()

	if *spannerDB == "" {
		log.Fatal("Error: -database flag or SPANNER_DATABASE is required")
	}

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	req := &list_events.Request{Limit: *limit}
	if *eventType != "" {
		req.EventType = eventType
	}
	if *aggregateID != "" {
		req.AggregateID = aggregateID
	}

	events, err := list_events.NewQuery(outbox.NewEventsReadModel(client)).Execute(ctx, req)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	fmt.Printf("Events in outbox_events table (%d):\n", len(events))
	for i, e := range events {
		fmt.Printf("%d. %s  %s\n", i+1, e.EventType, e.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("   Event ID: %s\n", e.EventID)
		fmt.Printf("   Aggregate ID: %s\n", e.AggregateID)
		fmt.Printf("   Status: %s\n", e.Status)
		if e.Payload.Valid {
			fmt.Printf("   Payload: %s\n", e.Payload.String())
		}
	}
}
