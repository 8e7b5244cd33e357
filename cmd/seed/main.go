package main

import (
	"encoding/json"
	"flag"
	"log"

	"backend_chiccit/pkg/config"
	"backend_chiccit/pkg/database"
	"backend_chiccit/pkg/seeder"
	"backend_chiccit/pkg/store"
)

// Runs one seed action directly against the database, bypassing the HTTP
// guard. Meant for local development and CI fixtures.
//
//	go run ./cmd/seed -action seed_chiccit_full -org <uuid>
//	go run ./cmd/seed -action seed_chiccit_revenue -org <uuid> -seed 42
func main() {
	action := flag.String("action", "", "seed action to run (required)")
	org := flag.String("org", "", "organization UUID for tenant-scoped actions")
	seed := flag.Int64("seed", 0, "RNG seed for a reproducible run (0 = unseeded)")
	count := flag.Int("count", 0, "row/org count for actions that take one")
	withSeeds := flag.Bool("with-seeds", false, "run per-org generators in seed_200_test_plan")
	flag.Parse()

	if *action == "" {
		log.Fatal("❌ -action is required")
	}

	config.LoadConfig()
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	params := seeder.Params{OrgID: *org, Count: *count, WithSeeds: *withSeeds}
	if *seed != 0 {
		params.Seed = seed
	}
	raw, err := json.Marshal(params)
	if err != nil {
		log.Fatalf("❌ Failed to encode params: %v", err)
	}

	s := seeder.New(store.NewGorm(database.DB), config.GetLogger())
	result, err := s.Dispatch(*action, raw)
	if err != nil {
		log.Fatalf("❌ %s failed: %v", *action, err)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	log.Printf("✅ %s completed:\n%s", *action, out)
}
