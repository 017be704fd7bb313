package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/storefront-service/internal/services"
	"github.com/light-bringer/storefront-service/internal/transport/grpc/storefront"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration from environment variables
	config, err := loadConfig()
	if err != nil {
		return err
	}

	log.Printf("Starting Storefront Service...")
	if config.SpannerDB == "" {
		log.Printf("Spanner Database: none (memory only, restarts revert to seed data)")
	} else {
		log.Printf("Spanner Database: %s", config.SpannerDB)
	}
	log.Printf("gRPC Port: %s", config.GRPCPort)
	log.Printf("HTTP Port: %s", config.HTTPPort)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, services.Config{
		SpannerDB: config.SpannerDB,
		JWTSecret: config.JWTSecret,
		TokenTTL:  config.TokenTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC server and register services
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	storefront.RegisterStorefrontServer(grpcServer, serviceOpts.StorefrontHandler)

	// Enable reflection (for grpcurl and debugging)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+config.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	// 4. Create HTTP server
	httpServer := &http.Server{
		Addr:              ":" + config.HTTPPort,
		Handler:           serviceOpts.HTTPHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 5. Run both servers until a signal arrives or one of them fails
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("gRPC server listening on :%s", config.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		log.Printf("HTTP server listening on :%s", config.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// 6. Graceful shutdown handling
	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
		grpcServer.GracefulStop()
		return nil
	})

	return g.Wait()
}

// Config holds application configuration.
type Config struct {
	SpannerDB string
	GRPCPort  string
	HTTPPort  string
	JWTSecret string
	TokenTTL  time.Duration
}

// loadConfig loads configuration from environment variables with defaults.
// A .env file in the working directory is read first when present.
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}

	ttlMinutes, err := strconv.Atoi(getEnvOrDefault("TOKEN_TTL", "60"))
	if err != nil || ttlMinutes <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be a positive number of minutes")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Printf("JWT_SECRET not set, using the development secret")
		jwtSecret = "storefront-dev-secret"
	}

	return Config{
		SpannerDB: os.Getenv("SPANNER_DATABASE"),
		GRPCPort:  getEnvOrDefault("GRPC_PORT", "9090"),
		HTTPPort:  getEnvOrDefault("HTTP_PORT", "8080"),
		JWTSecret: jwtSecret,
		TokenTTL:  time.Duration(ttlMinutes) * time.Minute,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
