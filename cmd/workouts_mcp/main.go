// Package main runs the workouts MCP server over stdio (for local agent use).
// The same tools are also reachable on the main backend under /mcp over HTTP,
// so you can use either: stdio (this cmd) or the backend URL (no extra deploy).
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/vranjes/workoutsink/internal/config"
	"github.com/vranjes/workoutsink/internal/workouts"
	workoutsmcp "github.com/vranjes/workoutsink/internal/workouts/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("load timezone %s: %v", cfg.Timezone, err)
	}

	store := workouts.NewStore(workouts.NewStoreParams{
		FilePath: cfg.WorkoutsStoragePath,
		Location: location,
	})
	server := workoutsmcp.NewServer(store, workouts.NewAnalyzer(store))

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
