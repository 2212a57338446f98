package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campneus/auditoria-campneus/internal/config"
	"github.com/campneus/auditoria-campneus/internal/infra"
	"github.com/campneus/auditoria-campneus/internal/model"
	"github.com/campneus/auditoria-campneus/internal/repository"
	"github.com/campneus/auditoria-campneus/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	if err := seedAdmin(cfg, repository.NewUserRepository(db)); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	r := router.New(cfg, db)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("auditoria backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// seedAdmin creates the bootstrap administrator when the users table is empty
// and ADMIN_USERNAME/ADMIN_PASSWORD are configured. Without it a fresh
// deployment has no way to log in.
func seedAdmin(cfg *config.Config, users repository.UserRepository) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	n, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), 12)
	if err != nil {
		return err
	}
	admin := &model.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleAdministrator,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	log.Info().Str("username", admin.Username).Msg("bootstrap admin user created")
	return nil
}
