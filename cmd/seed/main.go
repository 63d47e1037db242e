package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/foodisbae/foodisbae-backend/internal/menu"
	"github.com/foodisbae/foodisbae-backend/pkg/config"
	"github.com/foodisbae/foodisbae-backend/pkg/db"
	"github.com/foodisbae/foodisbae-backend/pkg/logger"
)

// Seeds the sample menu into an empty catalog. Safe to run repeatedly; it
// refuses to touch a catalog that already has items.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	seeded, err := menu.SeedSample(context.Background(), menu.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to seed menu", err)
		os.Exit(1)
	}

	if seeded == 0 {
		fmt.Println("catalog not empty, nothing seeded")
		return
	}
	fmt.Printf("seeded %d menu items\n", seeded)
}
