package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"kb-app/internal/config"
	"kb-app/internal/kb/sqlite"
	"kb-app/internal/webui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	views, err := webui.LoadViews(cfg.TemplateDir)
	if err != nil {
		logger.Fatal("load templates", zap.Error(err))
	}

	// Schema init gets its own short-lived store. Failure is logged and the
	// server still comes up; requests against a broken database answer 500.
	if store, err := sqlite.Open(cfg.DatabasePath); err != nil {
		logger.Error("open database for schema init", zap.Error(err))
	} else {
		if err := store.InitSchema(context.Background()); err != nil {
			logger.Error("create tables", zap.Error(err))
		}
		_ = store.Close()
	}

	server := &http.Server{
		Addr:              *addr,
		Handler:           webui.NewRouter(sqlite.Opener(cfg.DatabasePath), views, cfg.StaticDir, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("kb-service listening", zap.String("addr", *addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server failed", zap.Error(err))
	}
}
