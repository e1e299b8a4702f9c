package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"N8NAdmin/internal/auth"
	"N8NAdmin/internal/config"
	"N8NAdmin/internal/db"
	"N8NAdmin/internal/handlers"
	"N8NAdmin/internal/logger"
	"N8NAdmin/internal/n8n"
	"N8NAdmin/internal/sessions"

	gsessions "github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}
	if cfg.UsesDevSecret() {
		log.Warn("SESSION_SECRET is not set, using insecure dev secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Infof("db: connected (%s)", cfg.SafeDSN())

	verifier, err := auth.NewVerifier(bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		log.Fatalf("sessions: %v", err)
	}
	sm := sessions.NewManager(store, cfg.SessionName)

	h := handlers.New(
		db.NewAdminStore(pool),
		verifier,
		sm,
		n8n.NewClient(cfg.N8NWebhookBaseURL, cfg.N8NAPIKey, nil),
		cfg.WebDir,
		log,
	)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: handlers.NewRouter(h, sm, log),
	}

	go func() {
		log.Infof("listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}

func newSessionStore(cfg *config.Config) (gsessions.Store, error) {
	opts := sessions.Options(cfg.SessionMaxAge, cfg.SecureCookie())
	if cfg.SessionStore == "cookie" {
		return sessions.NewCookieStore(cfg.SessionSecret, opts), nil
	}
	return sessions.NewFilesystemStore(cfg.SessionDir, cfg.SessionSecret, opts)
}
