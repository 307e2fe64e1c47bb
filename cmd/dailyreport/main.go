package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"crm-reporting/internal/app"
	"crm-reporting/internal/shared/configs"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		os.Exit(1)
	}

	// One report run per invocation; scheduling is cron's job.
	if err := application.RunDailyReport(context.Background()); err != nil {
		os.Exit(1)
	}
}
