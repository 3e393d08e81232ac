package main

import (
	"context"
	"flag"

	"clinica-api/cmd/bootstrap"
	"clinica-api/config"
	"clinica-api/internal/infrastructure/database"
	"clinica-api/internal/repository"
	"clinica-api/internal/seeder"

	"github.com/sirupsen/logrus"
)

func main() {
	name := flag.String("name", "Christian Ramires", "default user name")
	email := flag.String("email", "christian.ramires@example.com", "default user email")
	password := flag.String("password", "password", "default user password")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetupLogger(cfg.App.LogLevel)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	s := seeder.New(db, logrus.StandardLogger(), repository.NewUserRepository(), repository.NewCidadeRepository())
	if err := s.Run(context.Background(), seeder.DefaultUser{
		Name:     *name,
		Email:    *email,
		Password: *password,
	}); err != nil {
		logrus.Fatalf("Seeding failed: %v", err)
	}
}
