// Command token prints a signed Jobly token for local testing.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bcortri1/jobly/api"
	"github.com/bcortri1/jobly/internal/config"
)

func main() {
	configPath := flag.String("config", "", "Path to config YAML file")
	username := flag.String("user", "admin", "Username claim")
	admin := flag.Bool("admin", true, "Set the isAdmin claim")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	tok, err := api.CreateToken(cfg.JWTSecret, *username, *admin, cfg.TokenDuration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Token error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(tok)
}
