// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/pollmap/cbnugeumeundong/internal/config"
	"github.com/pollmap/cbnugeumeundong/internal/database"
	"github.com/pollmap/cbnugeumeundong/internal/mailer"
	"github.com/pollmap/cbnugeumeundong/internal/storage"
)

// Server holds the configuration and the external clients, constructed once
// at startup and injected into the handlers. A nil client means that
// backend is not configured for this deployment.
type Server struct {
	cfg *config.Config

	db      *database.Service
	storage *storage.Client
	mailer  *mailer.Mailer
}

// New wires configuration and external clients into an http.Server. The
// process starts even when backends are missing: submissions then answer
// with a configuration error, storage and email degrade silently.
func New() *http.Server {
	cfg := config.Load()

	db, err := database.FromEnv()
	if err != nil {
		log.Printf("server: running without database: %v", err)
	}

	var store *storage.Client
	if cfg.StorageBucket != "" {
		store, err = storage.New(context.Background(), cfg.StorageBucket)
		if err != nil {
			log.Printf("server: running without cloud storage: %v", err)
			store = nil
		}
	} else {
		log.Printf("server: CLOUD_STORAGE_BUCKET not set, attachments will not be uploaded")
	}

	mail := mailer.New(cfg.ResendAPIKey, cfg.SenderEmail, cfg.AdminEmails)
	if mail == nil {
		log.Printf("server: RESEND_API_KEY not set, notification emails disabled")
	}

	s := &Server{
		cfg:     cfg,
		db:      db,
		storage: store,
		mailer:  mail,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
