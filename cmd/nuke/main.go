package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"backend_chiccit/pkg/config"
	"backend_chiccit/pkg/database"
	"backend_chiccit/pkg/seeder"
	"backend_chiccit/pkg/store"
)

// Wipes seeded data, either one tenant or everything. Prompts for
// confirmation unless -yes is passed.
//
//	go run ./cmd/nuke -org <uuid>
//	go run ./cmd/nuke -yes
func main() {
	org := flag.String("org", "", "organization UUID to scope the wipe (empty = all tenants)")
	yes := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	config.LoadConfig()
	if config.IsProduction() {
		log.Fatal("❌ Refusing to nuke a production environment")
	}

	if !*yes {
		scope := "ALL tenants"
		if *org != "" {
			scope = "org " + *org
		}
		fmt.Printf("⚠️  This will delete all seeded data for %s. Type 'nuke' to continue: ", scope)
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "nuke" {
			log.Fatal("Aborted")
		}
	}

	if err := database.InitDatabase(); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	raw, err := json.Marshal(seeder.Params{OrgID: *org})
	if err != nil {
		log.Fatalf("❌ Failed to encode params: %v", err)
	}

	s := seeder.New(store.NewGorm(database.DB), config.GetLogger())
	result, err := s.Dispatch("nuke_all", raw)
	if err != nil {
		log.Fatalf("❌ nuke_all failed: %v", err)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	log.Printf("✅ nuke_all completed:\n%s", out)
}
