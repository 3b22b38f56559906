package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rl1809/sku-pricing/internal/adapter/handler"
	"github.com/rl1809/sku-pricing/internal/adapter/handler/pb"
	"github.com/rl1809/sku-pricing/internal/adapter/notifier"
	"github.com/rl1809/sku-pricing/internal/adapter/storage"
	"github.com/rl1809/sku-pricing/internal/config"
	"github.com/rl1809/sku-pricing/internal/core/service"
	"github.com/rl1809/sku-pricing/internal/core/store"
	"github.com/rl1809/sku-pricing/internal/logger"
	"github.com/rl1809/sku-pricing/internal/port"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize storage
	collection, err := openCollection(ctx, cfg.Storage)
	if err != nil {
		log.Fatalw("failed to open price collection", "driver", cfg.Storage.Driver, "error", err)
	}
	log.Infow("price collection ready", "driver", cfg.Storage.Driver)

	// Initialize notifier
	priceNotifier, notifierCloser, err := newNotifier(ctx, cfg.Notifier, log)
	if err != nil {
		log.Fatalw("failed to build notifier", "driver", cfg.Notifier.Driver, "error", err)
	}
	log.Infow("notifier ready", "driver", cfg.Notifier.Driver)

	// Initialize service
	pricingStore := store.NewPricingStore(collection)
	pricingService := service.NewPricingService(pricingStore, priceNotifier, log)

	// Initialize gRPC server
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor(log)),
		grpc.ChainStreamInterceptor(handler.StreamLoggingInterceptor(log)),
	)
	pb.RegisterPricingServiceServer(grpcServer, handler.NewGRPCHandler(pricingService))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddress)
	if err != nil {
		log.Fatalw("failed to listen", "address", cfg.Server.GRPCAddress, "error", err)
	}

	// Initialize HTTP server
	gin.SetMode(gin.ReleaseMode)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddress,
		Handler: handler.NewHTTPHandler(pricingService, log).Router(),
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		log.Infow("gRPC server listening", "address", cfg.Server.GRPCAddress)
		if err := grpcServer.Serve(lis); err != nil {
			log.Errorw("gRPC server error", "error", err)
		}
	})
	wg.Go(func() {
		log.Infow("HTTP server listening", "address", cfg.Server.HTTPAddress)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("HTTP server error", "error", err)
		}
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnw("HTTP server shutdown", "error", err)
	}
	log.Info("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Info("gRPC server stopped")

	wg.Wait()

	// Close connections
	if err := notifierCloser.Close(); err != nil {
		log.Warnw("failed to close notifier", "error", err)
	}
	if err := collection.Close(); err != nil {
		log.Warnw("failed to close price collection", "error", err)
	}
	log.Info("connections closed")
}

func openCollection(ctx context.Context, cfg config.StorageConfig) (port.PriceCollection, error) {
	switch cfg.Driver {
	case config.StorageDriverMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(50)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		collection, err := storage.OpenMySQLCollection(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return collection, nil
	default:
		return storage.OpenFileCollection(cfg.Path)
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newNotifier(ctx context.Context, cfg config.NotifierConfig, log *logger.Logger) (port.PriceNotifier, io.Closer, error) {
	switch cfg.Driver {
	case config.NotifierDriverGRPC:
		conn, err := grpc.NewClient(cfg.InventoryAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, err
		}
		client := pb.NewInventoryServiceClient(conn)
		return notifier.NewGRPCNotifier(client, cfg.MaxRetries, cfg.Timeout, log), conn, nil

	case config.NotifierDriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddress,
			PoolSize: 100,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, err
		}
		return notifier.NewRedisNotifier(rdb, cfg.Stream), rdb, nil

	default:
		return notifier.NewLogNotifier(log), closerFunc(func() error { return nil }), nil
	}
}
