package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glitchowt/backoffice/internal/api"
	"github.com/glitchowt/backoffice/internal/config"
	"github.com/glitchowt/backoffice/internal/dispatch"
	"github.com/glitchowt/backoffice/internal/mail"
	"github.com/glitchowt/backoffice/internal/metrics"
	"github.com/glitchowt/backoffice/internal/ratelimit"
	"github.com/glitchowt/backoffice/internal/repository/postgres"
	"github.com/glitchowt/backoffice/internal/service/post"
	"github.com/glitchowt/backoffice/internal/service/reel"
	"github.com/glitchowt/backoffice/internal/service/roadmap"
	"github.com/glitchowt/backoffice/internal/service/subscriber"

	"github.com/redis/go-redis/v9"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

func main() {
	log.Println("glitchowt back office (cmd/server/main.go)")

	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.Host
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	// API database handle (row-level restricted role in production)
	db, err := postgres.Open(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Database connected")

	// Dispatch database handle. A separate privileged role so the newsletter
	// function can read the full subscriber table.
	dispatchDB := db
	if cfg.Database.DispatchURL != cfg.Database.URL {
		dispatchDB, err = postgres.Open(cfg.Database.DispatchURL)
		if err != nil {
			log.Fatalf("Failed to connect to dispatch database: %v", err)
		}
		defer dispatchDB.Close()
		log.Println("Dispatch database connected (privileged role)")
	}

	collector := metrics.NewCollector()

	subscriberSvc := subscriber.NewService(postgres.NewSubscriberRepo(db))
	postSvc := post.NewService(postgres.NewPostRepo(db))
	roadmapSvc := roadmap.NewService(postgres.NewRoadmapRepo(db))
	reelSvc := reel.NewService(postgres.NewReelRepo(db))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Rate limiter for the public subscribe endpoint. Redis-backed when
	// configured so the window is shared across replicas, otherwise local.
	var limiter ratelimit.Limiter
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		var redisClient *redis.Client
		if err != nil {
			redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})
		} else {
			redisClient = redis.NewClient(opts)
		}
		pingCtx, pingCancel := context.WithTimeout(ctx, 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed (%s): %v — falling back to in-process rate limiting", cfg.Redis.URL, err)
			redisClient.Close()
			limiter = ratelimit.NewLocalLimiter(10, time.Minute)
		} else {
			limiter = ratelimit.NewRedisLimiter(redisClient, 10, time.Minute)
			defer redisClient.Close()
			log.Printf("Redis connected: %s (shared rate limiting enabled)", cfg.Redis.URL)
		}
		pingCancel()
	} else {
		log.Println("Redis not configured (REDIS_URL not set) — using in-process rate limiting")
		limiter = ratelimit.NewLocalLimiter(10, time.Minute)
	}

	// Newsletter dispatch function, reading through the privileged handle.
	dialer := mail.NewSMTPDialer(cfg.SMTP)
	fn := dispatch.NewFunction(
		postgres.NewPostRepo(dispatchDB),
		postgres.NewSubscriberRepo(dispatchDB),
		dialer,
		collector,
	)
	dispatchHandler := dispatch.NewHandler(fn)
	log.Printf("Newsletter dispatch configured (relay %s:%d, from %s)", cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.FromEmail)

	handlers := api.NewHandlers(subscriberSvc, postSvc, roadmapSvc, reelSvc, limiter, collector)
	router := api.SetupRoutes(handlers, dispatchHandler)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Println("All services initialized — server is ready")

	<-done
	log.Println("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
