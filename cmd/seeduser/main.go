// cmd/seeduser/main.go creates or resets a superuser account.
// Usage: go run ./cmd/seeduser -email admin@example.com -password secret123
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"jhris/internal/config"
	"jhris/internal/infra"
	"jhris/internal/repository"
	"jhris/internal/security"
	"jhris/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	email := flag.String("email", os.Getenv("FIRST_SUPERUSER_EMAIL"), "superuser email")
	password := flag.String("password", os.Getenv("FIRST_SUPERUSER_PASSWORD"), "superuser password (min 8 characters)")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		flag.Usage()
		log.Fatal().Msg("email and a password of at least 8 characters are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	users := service.NewUserService(repository.NewUserRepository(db), security.NewCredentialStore(cfg.BcryptCost))
	user, created, err := users.EnsureSuperuser(context.Background(), *email, *password)
	if err != nil {
		log.Fatal().Err(err).Msg("seed superuser")
	}

	action := "updated"
	if created {
		action = "created"
	}
	log.Info().Uint("id", user.ID).Str("email", user.Email).Msgf("superuser %s", action)
}
