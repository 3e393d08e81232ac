package main

import (
	"flag"

	"clinica-api/cmd/bootstrap"
	"clinica-api/config"
	"clinica-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

func main() {
	down := flag.Int("down", 0, "roll back this many migrations instead of applying")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetupLogger(cfg.App.LogLevel)

	if *down > 0 {
		if err := database.MigrateDown(cfg.DB, *down); err != nil {
			logrus.Fatalf("Migration failed: %v", err)
		}
		return
	}

	if err := database.MigrateUp(cfg.DB); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}
}
