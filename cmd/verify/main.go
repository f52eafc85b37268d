package main

import (
	"flag"
	"fmt"
	"log"
	"os"

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
	var tierName string
	flag.StringVar(&tierName, "e", "", "target tier (dev, stage, prod); defaults to APP_ENV")
	flag.Parse()

	usage := `
Run the data consistency checks against a target tier.

Usage:

verify [-h] [-f ENV_FILE_PATH] [-e TIER]

ENV_FILE_PATH: path to the .env file
TIER: dev, stage, or prod; defaults to the APP_ENV tier

example
  verify -f /path/to/something/.env -e prod
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

	tier := cfg.Tier
	if tierName != "" {
		tier, err = env.Parse(tierName)
		if err != nil {
			log.Fatalf("Invalid tier: %v", err)
		}
	}

	// The checks scan whole tables, so they run on the admin pool.
	db, err := database.ConnectAdmin(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	report := services.Verify(db, tier)

	fmt.Printf("Verification report for tier %q\n\n", tier)
	for _, check := range report.Checks {
		status := "PASS"
		detail := ""
		if !check.Passed() {
			status = "FAIL"
			if check.Err != nil {
				detail = fmt.Sprintf("  (%v)", check.Err)
			} else {
				detail = fmt.Sprintf("  (%d offending rows)", check.Failures)
			}
		}
		fmt.Printf("  %-4s  %s%s\n", status, check.Name, detail)
	}

	fmt.Println()
	if report.Passed() {
		fmt.Println("ALL CHECKS PASSED")
		os.Exit(0)
	}
	fmt.Println("SOME CHECKS FAILED")
	os.Exit(1)
}
