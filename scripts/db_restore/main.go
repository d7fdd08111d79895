package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bcortri1/jobly/internal/config"
	"github.com/bcortri1/jobly/internal/db"
)

func main() {
	dir := flag.String("dir", "jobly-backup", "Directory holding the CSV files written by db_backup")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := database.Restore(ctx, *dir); err != nil {
		fmt.Fprintf(os.Stderr, "Restore error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Database restore completed.")
}
