package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crisisconnect/backend/internal/auth"
	"github.com/crisisconnect/backend/internal/config"
	"github.com/crisisconnect/backend/internal/handler"
	"github.com/crisisconnect/backend/internal/model/crisis"
	"github.com/crisisconnect/backend/internal/model/event"
	"github.com/crisisconnect/backend/internal/model/user"
	"github.com/crisisconnect/backend/internal/service/ai"
	chatservice "github.com/crisisconnect/backend/internal/service/chat"
	"github.com/crisisconnect/backend/internal/service/news"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	deps := handler.Deps{
		Users:   user.NewMemoryStore(),
		Events:  event.NewMemoryStore(),
		Crises:  crisis.NewMemoryStore(),
		Tokens:  auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		PINCost: cfg.Auth.PINCost,
		Hub:     chatservice.NewHub(),
	}

	if cfg.News.Enabled() {
		deps.Feed = news.NewService(cfg.News.APIKey, cfg.News.BaseURL)
		log.Println("news feed proxy enabled")
	} else {
		log.Println("NEWSAPI key not configured, news endpoint disabled")
	}

	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without chatbot functionality")
		} else {
			deps.Replier = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("ARK credentials not configured, skipping chatbot initialization")
	}

	router := handler.NewRouter(deps)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("CrisisConnect backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
