package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	dbfs "github.com/bcortri1/jobly/db"
	"github.com/bcortri1/jobly/internal/config"
	"github.com/bcortri1/jobly/internal/db"
)

func main() {
	seed := flag.Bool("seed", false, "Load the sample companies and jobs after migrating")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "DB init error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		fmt.Fprintf(os.Stderr, "Migration runner error: %v\n", err)
		os.Exit(1)
	}
	if *seed {
		if err := db.Seed(ctx, database, dbfs.SeedFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Seed error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Database initialized successfully.")
}
