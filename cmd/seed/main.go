package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/fitstack/fittrack/internal/config"
	"github.com/fitstack/fittrack/internal/database"
	"github.com/fitstack/fittrack/internal/env"
	"github.com/fitstack/fittrack/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Populate the configured tier with the synthetic working fixture.

Usage:

seed [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  seed -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Seed data in prod fails verification; refuse outright.
	if cfg.Tier == env.TierProd {
		log.Fatalf("Refusing to seed the %s tier", env.TierProd)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	store := services.NewStore(db, cfg.Tier, nil)
	if err := store.Seed(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Printf("Seed complete for tier %s", cfg.Tier)
}
