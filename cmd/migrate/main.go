package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"
	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/storefront-service/internal/models/m_product"
	"github.com/light-bringer/storefront-service/internal/models/m_team_member"
	"github.com/light-bringer/storefront-service/internal/pkg/clock"
	"github.com/light-bringer/storefront-service/internal/pkg/committer"
	"github.com/light-bringer/storefront-service/internal/pkg/query"
	"github.com/light-bringer/storefront-service/internal/services"
	"github.com/light-bringer/storefront-service/migrations"
)

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "storefront-db"), "Spanner database ID")
	seedData   = flag.Bool("seed", false, "Load the embedded demo catalog and team into empty tables")
)

func main() {
	flag.Parse()

	if err := run(context.Background()); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully!")
}

func run(ctx context.Context) error {
	if host := os.Getenv("SPANNER_EMULATOR_HOST"); host != "" {
		log.Printf("Using Spanner emulator at %s", host)
		if err := ensureEmulatorInstance(ctx); err != nil {
			return err
		}
	}

	schema, err := migrations.Load()
	if err != nil {
		return err
	}
	if err := migrateSchema(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", databasePath(), err)
	}

	if *seedData {
		if err := seedTables(ctx); err != nil {
			return fmt.Errorf("failed to seed tables: %w", err)
		}
	}
	return nil
}

func databasePath() string {
	return fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)
}

// seedTables writes the demo catalog and team unless either table already
// has rows.
func seedTables(ctx context.Context) error {
	client, err := spanner.NewClient(ctx, databasePath())
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	for _, table := range []string{m_product.TableName, m_team_member.TableName} {
		count, err := countRows(ctx, client, table)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Table %s already has %d rows, skipping seed", table, count)
			return nil
		}
	}

	products, members, err := services.SeedData(clock.NewRealClock())
	if err != nil {
		return err
	}
	plan, err := services.SeedPlan(products, members)
	if err != nil {
		return err
	}
	if err := committer.NewCommitter(client).Apply(ctx, plan); err != nil {
		return err
	}

	log.Printf("Seeded %d products and %d team members", len(products), len(members))
	return nil
}

func countRows(ctx context.Context, client *spanner.Client, table string) (int64, error) {
	iter := client.Single().Query(ctx, query.From(table).Count().Build())
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to parse %s count: %w", table, err)
	}
	return count, nil
}

// ensureEmulatorInstance creates the local instance the emulator starts
// without. Real instances are provisioned outside this tool.
func ensureEmulatorInstance(ctx context.Context) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     "projects/" + *projectID,
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
			DisplayName: "Storefront (emulator)",
			NodeCount:   1,
		},
	})
	if status.Code(err) == codes.AlreadyExists {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil && status.Code(err) != codes.AlreadyExists {
		return fmt.Errorf("failed to wait for instance: %w", err)
	}
	log.Printf("Created emulator instance %s", *instanceID)
	return nil
}

// migrateSchema creates the database with the full schema when it is
// missing. An existing database only gets the migrations whose tables and
// indexes it does not declare yet.
func migrateSchema(ctx context.Context, schema []migrations.Migration) error {
	adminClient, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create admin client: %w", err)
	}
	defer adminClient.Close()

	_, err = adminClient.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: databasePath()})
	if status.Code(err) == codes.NotFound {
		return createDatabase(ctx, adminClient, schema)
	}
	if err != nil {
		return fmt.Errorf("failed to check database: %w", err)
	}

	ddl, err := adminClient.GetDatabaseDdl(ctx, &databasepb.GetDatabaseDdlRequest{Database: databasePath()})
	if err != nil {
		return fmt.Errorf("failed to read schema: %w", err)
	}

	for _, m := range schema {
		if m.AppliedTo(ddl.GetStatements()) {
			log.Printf("Skipping %s (already applied)", m.Name)
			continue
		}

		log.Printf("Applying %s...", m.Name)
		op, err := adminClient.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
			Database:   databasePath(),
			Statements: m.Statements,
		})
		if err != nil {
			return fmt.Errorf("failed to start DDL update for %s: %w", m.Name, err)
		}
		if err := op.Wait(ctx); err != nil {
			return fmt.Errorf("failed to apply DDL for %s: %w", m.Name, err)
		}
	}
	return nil
}

func createDatabase(ctx context.Context, adminClient *database.DatabaseAdminClient, schema []migrations.Migration) error {
	var stmts []string
	for _, m := range schema {
		stmts = append(stmts, m.Statements...)
	}

	log.Printf("Creating database %s with %d statements...", *databaseID, len(stmts))
	op, err := adminClient.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
		ExtraStatements: stmts,
	})
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("failed to wait for database creation: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
