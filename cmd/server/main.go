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
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/incorpora/onboarding-api/internal/clients/hubspot"
	"github.com/incorpora/onboarding-api/internal/config"
	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	"github.com/incorpora/onboarding-api/internal/handlers/web"
	"github.com/incorpora/onboarding-api/internal/repositories/applications"
	"github.com/incorpora/onboarding-api/internal/repositories/drafts"
	"github.com/incorpora/onboarding-api/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("HTTP listen address: %s", cfg.HTTP.Addr)
	log.Printf("Flow policy: auto_resolve_membership=%v force_llc=%v",
		cfg.Flow.AutoResolveMembership, cfg.Flow.ForceLLC)

	// Create the HubSpot client
	crmClient, err := hubspot.New(&hubspot.Config{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		BaseURL: cfg.HubSpot.BaseURL,
		Token:   cfg.HubSpot.Token,
	})
	if err != nil {
		log.Fatalf("Failed to create HubSpot client: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		CRMClient: crmClient,
		FlowPolicy: onboarding.FlowPolicy{
			AutoResolveMembership: cfg.Flow.AutoResolveMembership,
			ForceLLC:              cfg.Flow.ForceLLC,
		},
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis; fall back to in-memory repositories
	if client, connectErr := connectRedis(cfg.Redis); connectErr != nil {
		log.Printf("Redis unavailable: %v", connectErr)
		log.Println("Falling back to in-memory repositories")
	} else {
		redisClient = client
		log.Println("Successfully connected to Redis")
		providerConfig.DraftRepository = drafts.NewRedisRepository(&drafts.RedisRepoConfig{
			Client: redisClient,
		})
		providerConfig.ApplicationRepository = applications.NewRedisRepository(&applications.RedisRepoConfig{
			Client: redisClient,
		})
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	handler, err := web.New(&web.Config{Service: provider.OnboardingService})
	if err != nil {
		log.Fatalf("Failed to create handler: %v", err)
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Listening on %s", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if redisClient != nil {
			return redisClient.Close()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Shutdown complete")
}

func connectRedis(cfg config.RedisConfig) (*redis.Client, error) {
	var client *redis.Client

	if cfg.URL != "" {
		opts, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opts)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
