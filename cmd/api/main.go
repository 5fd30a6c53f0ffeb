package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"orcamentos_arq/internal/adapter/http/routes"
	"orcamentos_arq/internal/config"
	"orcamentos_arq/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Orçamentos API
// @version         1.0
// @description     Quote (orçamento) pricing, estimates and payments for architecture and interior-design projects.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
