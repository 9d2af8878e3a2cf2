// Command server runs the questline backend HTTP API.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// a .env file in the working directory is loaded first when present.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/questlinehq/questline-backend/internal/app"
)

func main() {
	// Absence of a .env file is the normal production case.
	_ = godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
