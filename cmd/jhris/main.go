// Command jhris is the command line prototype. It talks to the same database
// as the server; without DB_DRIVER it uses a local sqlite file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"jhris/internal/cli"
	"jhris/internal/config"
	"jhris/internal/infra"
	"jhris/internal/repository"
	"jhris/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(zerolog.WarnLevel)

	if os.Getenv("DB_DRIVER") == "" {
		os.Setenv("DB_DRIVER", "sqlite")
		if os.Getenv("DATABASE_URL") == "" {
			os.Setenv("DATABASE_URL", "jhris.db")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	app := cli.App{
		Employees: service.NewEmployeeService(service.EmployeeRepos{
			Employees:   employeeRepo,
			Departments: departmentRepo,
			Positions:   positionRepo,
			Users:       userRepo,
		}),
		// The prototype never removes a department that still has active staff.
		Departments: service.NewDepartmentService(departmentRepo, employeeRepo, service.DepartmentOptions{DeleteGuard: true}),
		Reports:     service.NewReportService(employeeRepo, departmentRepo, positionRepo),
		Migrate:     func() error { return infra.RunMigrations(db) },
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
	}

	if err := cli.Run(context.Background(), app, os.Args[1:]); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
