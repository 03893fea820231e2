package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/ovenledger/backend/config"
	"github.com/ovenledger/backend/internal/database"
	"github.com/ovenledger/backend/internal/router"
)

// Server owns the HTTP listener and the backing connections.
type Server struct {
	http *http.Server
}

// New connects to the database and Redis, runs migrations and builds the
// HTTP stack. Redis and S3 are optional: failures there are logged and the
// server runs without them.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache and rate limiting: %v", err)
		redisClient = nil
	}

	s3cfg, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 unavailable, continuing without image upload: %v", err)
		s3cfg = nil
	}

	engine := router.SetupRouter(db, redisClient, s3cfg, cfg.JWTSecret)

	return &Server{
		http: &http.Server{
			Addr:         ":" + cfg.ServerPort,
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}, nil
}

// Start blocks serving HTTP until the listener stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
