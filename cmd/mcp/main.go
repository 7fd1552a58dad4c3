package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/xavierca1/ligue-leads/internal/app"
	"github.com/xavierca1/ligue-leads/internal/config"
	"github.com/xavierca1/ligue-leads/internal/infra/mcpserver"
)

func main() {
	// stdout carries the protocol; everything else goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetPrefix("instantly-leads: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("❌ Startup: %v", err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcpserver.NewServer(a.Toolbox)
	log.Printf("starting %s %s on stdio", mcpserver.ServerName, mcpserver.ServerVersion)
	if err := mcpserver.Run(ctx, server); err != nil && ctx.Err() == nil {
		log.Printf("❌ MCP server stopped: %v", err)
		os.Exit(1)
	}
}
