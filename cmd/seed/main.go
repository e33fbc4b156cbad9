package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"stoper/internal/config"
	"stoper/internal/domain"
	"stoper/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded, relying on environment")
	}

	demo := flag.Bool("demo", false, "Also insert sample withdrawals for dashboard development")
	flag.Parse()

	cfg := config.Load()
	db, err := repository.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Starting seed process...")

	if err := truncateTables(db.DB()); err != nil {
		log.Fatalf("Failed to truncate tables: %v", err)
	}

	if err := seedCatalog(db.DB()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	if *demo {
		if err := seedDemoWithdrawals(db.DB()); err != nil {
			log.Printf("Failed to seed demo withdrawals: %v", err)
		}
	}

	log.Println("Seed process completed!")
}

func truncateTables(db *sqlx.DB) error {
	log.Println("Truncating all seed tables...")

	tables := []string{
		"withdrawals",
		"tools",
	}

	for _, table := range tables {
		query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
		log.Printf("Truncated table: %s", table)
	}

	return nil
}

func seedCatalog(db *sqlx.DB) error {
	repo := repository.NewToolRepository(db)
	if err := repo.Seed(domain.InitialInventory); err != nil {
		return err
	}
	log.Printf("Seeded %d catalog tools", len(domain.InitialInventory))
	return nil
}

// seedDemoWithdrawals spreads a handful of ledger entries over the last
// weeks so evolution charts have something to draw.
func seedDemoWithdrawals(db *sqlx.DB) error {
	toolRepo := repository.NewToolRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)

	tools, err := toolRepo.List()
	if err != nil {
		return err
	}
	if len(tools) == 0 {
		return fmt.Errorf("catalog is empty, seed it first")
	}

	remaining := make(map[string]int, len(tools))
	for _, t := range tools {
		remaining[t.ID] = t.Quantity
	}

	now := time.Now()
	count := 0

	for i := 0; i < 24; i++ {
		tool := tools[i%len(tools)]
		quantity := 1 + i%3

		w := &domain.Withdrawal{
			ID:         uuid.New(),
			Date:       now.AddDate(0, 0, -(i * 2)),
			ToolID:     tool.ID,
			ToolName:   tool.DisplayName(),
			Quantity:   quantity,
			Reason:     domain.Reasons[i%len(domain.Reasons)],
			Supervisor: domain.Supervisors[i%len(domain.Supervisors)],
			Operator:   fmt.Sprintf("Operador %d", i%5+1),
			RigTag:     domain.RigTags[i%len(domain.RigTags)],
			Team:       domain.Teams[i%len(domain.Teams)],
		}

		if err := withdrawalRepo.Insert(w); err != nil {
			return err
		}

		left := remaining[tool.ID] - quantity
		if left < 0 {
			left = 0
		}
		remaining[tool.ID] = left
		if _, err := toolRepo.UpdateQuantity(tool.ID, left); err != nil {
			return err
		}
		count++
	}

	log.Printf("Seeded %d demo withdrawals", count)
	return nil
}
