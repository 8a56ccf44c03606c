// roster/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	rosterapi "github.com/tabajaradev/static-roster/roster/api"
	"github.com/tabajaradev/static-roster/roster/service"
	"github.com/tabajaradev/static-roster/roster/store"
	"github.com/tabajaradev/static-roster/shared/api"
	"github.com/tabajaradev/static-roster/shared/config"
	mongodbu "github.com/tabajaradev/static-roster/shared/mongodb"
	redisu "github.com/tabajaradev/static-roster/shared/redis"
)

func main() {
	// --- 1. Load Configuration ---
	cfg, err := config.LoadStaticServiceConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- 2. Connect to MongoDB ---
	mongoClient, err := mongodbu.NewClient(cfg.MongoDBConnStr, cfg.MongoDBDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err = mongoClient.Disconnect(context.Background()); err != nil {
			log.Fatalf("Failed to disconnect from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB.")
	}()

	// --- 3. Initialize Data Stores ---
	staticStore := store.NewStaticStore(mongoClient.Collection(cfg.MongoDBStaticsCollection))
	teammateStore := store.NewTeammateStore(mongoClient.Collection(cfg.MongoDBTeammatesCollection))

	// --- 4. Optional Upsert Lock (Redis) ---
	// Without Redis the upsert read-then-write keeps its historical race;
	// with it, upserts serialize per (name, staticGuid).
	var locker service.UpsertLocker
	if len(cfg.RedisAddrs) > 0 {
		redisClient, err := redisu.NewRedisClient(cfg.RedisAddrs, cfg.RedisPassword)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Printf("Error closing Redis client: %v", err)
			}
		}()
		locker = store.NewUpsertLockStore(redisClient, cfg.UpsertLockTTL)
	} else {
		log.Println("INFO: REDIS_ADDRS not set; teammate upserts are not serialized.")
	}

	// --- 5. Initialize Business Logic Services ---
	staticService := service.NewStaticService(staticStore)
	teammateService := service.NewTeammateService(teammateStore, staticStore, locker, cfg.EnforceStaticExists)

	// --- 6. Initialize API Handlers ---
	rosterAPIHandlers := rosterapi.NewRosterAPIHandlers(staticService, teammateService, cfg.RequestTimeout, cfg.NotFoundOnEmptyList)

	// --- 7. Setup HTTP Server and Register Routes ---
	// The path normalizer and secret gate wrap the router itself so they
	// also cover requests that match no route.
	baseServer := api.NewBaseServer(cfg.ListenAddr, log.Default(),
		api.PathLowercaseMiddleware,
		api.SecretKeyMiddleware(cfg.SecretKey, cfg.EnforceSecret),
	)
	rosterAPIHandlers.RegisterRoutes(baseServer.Router)

	// --- 8. Start HTTP Server ---
	go func() {
		if err := baseServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server failed to start: %v", err)
		}
	}()

	// --- 9. Graceful Shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := baseServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("HTTP server graceful shutdown failed: %v", err)
	}
	log.Println("Server gracefully stopped.")
}
