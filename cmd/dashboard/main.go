package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockScope/internal/api"
	"StockScope/internal/config"
	"StockScope/internal/corpus"
	"StockScope/internal/gateway"
	"StockScope/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockScope starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init gateway
	gw := gateway.NewGateway(cfg.Provider.BaseURL, cfg.Provider.MembershipURL, cfg.Proxy)
	gw.PriceTTL = cfg.PriceTTL()
	gw.FundamentalsTTL = cfg.FundamentalsTTL()

	// Init corpus snapshot store
	var store corpus.SnapshotStore
	if cfg.Corpus.SnapshotPath != "" {
		ss, err := corpus.NewSQLiteStore(cfg.Corpus.SnapshotPath)
		if err != nil {
			log.Printf("[WARN] init snapshot store failed, using noop: %v", err)
			store = corpus.NewNoopStore()
		} else {
			store = ss
			defer ss.Close()
		}
	} else {
		store = corpus.NewNoopStore()
	}

	builder := corpus.NewBuilder(gw)

	// Init scheduler
	sched := scheduler.NewScheduler(gw)
	if err := sched.RegisterAll(cfg.Schedule.CacheSweepCron, cfg.Schedule.MembershipRefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init API server
	handlers := api.NewHandlers(gw, builder, store, cfg.Corpus.FastPrefixSize)
	server := api.NewServer(cfg.Server.Port, handlers)
	if err := server.Start(); err != nil {
		log.Fatalf("[FATAL] start server: %v", err)
	}
	log.Printf("[INFO] StockScope listening on :%s", cfg.Server.Port)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[WARN] server shutdown: %v", err)
	}
	log.Println("[INFO] StockScope stopped")
}
