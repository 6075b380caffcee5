// Package main is the entry point for connectn.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/connectn/internal/game"
	"github.com/samdwyer/connectn/internal/telemetry"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	cfg, err := game.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	mode := string(cfg.Mode)
	flag.IntVar(&cfg.Width, "width", cfg.Width, "number of columns")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "number of rows")
	flag.IntVar(&cfg.RunLength, "run", cfg.RunLength, "number of aligned pieces needed to win")
	flag.StringVar(&mode, "mode", mode, "front end: text or terminal")
	flag.BoolVar(&cfg.Setup, "setup", cfg.Setup, "ask for width, height and run length at start (text mode)")
	flag.Parse()
	cfg.Mode = game.Mode(mode)

	ctx := context.Background()

	if telemetry.Enabled(os.LookupEnv) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx, os.Stdin, os.Stdout); err != nil {
		log.Printf("Game error: %v", err)
		os.Exit(1)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// present and no endpoint has been configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_CONNECTN_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_CONNECTN_DATASET")
	if dataset == "" {
		dataset = "connectn"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
