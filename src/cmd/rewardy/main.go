package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jackyeh168/rewardy/src/internal/catalog"
	"github.com/jackyeh168/rewardy/src/internal/cli"
	"github.com/jackyeh168/rewardy/src/internal/config"
	"github.com/jackyeh168/rewardy/src/internal/domain/ledger"
	"github.com/jackyeh168/rewardy/src/internal/domain/reward"
	"github.com/jackyeh168/rewardy/src/internal/infrastructure/persistence/kvsqlite"
	"github.com/jackyeh168/rewardy/src/internal/logger"
)

func main() {
	// .env 檔是選配，沒有就直接用環境變數
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, os.Stderr)

	store, err := kvsqlite.Open(cfg.DBPath)
	if err != nil {
		log.Error().Err(err).Str("db_path", cfg.DBPath).Msg("failed to open database")
		os.Exit(1)
	}

	l := ledger.New(store)

	// 首次啟動時寫入預設目錄
	if err := catalog.SeedIfEmpty(l); err != nil {
		log.Error().Err(err).Msg("failed to seed catalog")
		os.Exit(1)
	}

	app := cli.NewApp(
		os.Stdin,
		os.Stdout,
		log,
		l,
		reward.NewSampler(),
		catalog.DefaultPayoutTickets(),
	)
	if err := app.MainDialog(); err != nil {
		log.Error().Err(err).Msg("dialog failed")
		os.Exit(1)
	}
}
