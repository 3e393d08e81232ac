package main

import (
	"flag"

	"clinica-api/cmd/bootstrap"
	"clinica-api/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

func main() {
	migrateFirst := flag.Bool("migrate", false, "apply pending migrations before serving")
	flag.Parse()

	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateFirst {
		if err := database.MigrateUp(app.Config.DB); err != nil {
			app.Close()
			logrus.Fatalf("Migration failed: %v", err)
		}
	}

	app.Run()
}
