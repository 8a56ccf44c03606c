// shared/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// StaticServiceConfig holds all configuration for the static-roster service.
type StaticServiceConfig struct {
	ListenAddr                 string        // Address for the HTTP server to listen on (e.g., ":8080")
	MongoDBConnStr             string        // MongoDB connection string
	MongoDBDatabase            string        // MongoDB database name
	MongoDBStaticsCollection   string        // Collection holding Static group records
	MongoDBTeammatesCollection string        // Collection holding StaticTeammate records
	SecretKey                  string        // Shared secret expected in the 'secretkey' request header
	EnforceSecret              bool          // Reject requests without a matching secret header
	EnforceStaticExists        bool          // Verify the referenced Static exists before a teammate upsert
	NotFoundOnEmptyList        bool          // Respond 404 instead of an empty array when a static has no teammates
	RedisAddrs                 []string      // Redis addresses for the upsert lock; empty disables locking
	RedisPassword              string        // Redis password for authentication
	UpsertLockTTL              time.Duration // TTL for upsert lock keys (upper bound on lock hold time)
	RequestTimeout             time.Duration // Per-request timeout applied in the handlers
}

// LoadStaticServiceConfig loads the service configuration from environment variables.
func LoadStaticServiceConfig() (*StaticServiceConfig, error) {
	cfg := &StaticServiceConfig{
		ListenAddr:                 os.Getenv("STATIC_SERVICE_LISTEN_ADDR"),
		MongoDBConnStr:             os.Getenv("MONGODB_CONN_STR"),
		MongoDBDatabase:            os.Getenv("MONGODB_DATABASE"),
		MongoDBStaticsCollection:   os.Getenv("MONGODB_STATICS_COLLECTION"),
		MongoDBTeammatesCollection: os.Getenv("MONGODB_TEAMMATES_COLLECTION"),
		SecretKey:                  os.Getenv("SECRET_KEY"),
		RedisPassword:              os.Getenv("REDIS_PASSWORD"),
	}

	// Apply defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MongoDBConnStr == "" {
		cfg.MongoDBConnStr = "mongodb://mongodb-service:27017" // Default for K8s internal DNS
	}
	if cfg.MongoDBDatabase == "" {
		cfg.MongoDBDatabase = "staticroster"
	}
	if cfg.MongoDBStaticsCollection == "" {
		cfg.MongoDBStaticsCollection = "statics"
	}
	if cfg.MongoDBTeammatesCollection == "" {
		cfg.MongoDBTeammatesCollection = "teammates"
	}

	// Redis addresses; leaving REDIS_ADDRS unset disables the upsert lock entirely.
	redisAddrsStr := os.Getenv("REDIS_ADDRS")
	if redisAddrsStr != "" {
		for _, addr := range strings.Split(redisAddrsStr, ",") {
			cfg.RedisAddrs = append(cfg.RedisAddrs, strings.TrimSpace(addr))
		}
	}

	var err error
	cfg.EnforceSecret, err = getBool("ENFORCE_SECRET", true)
	if err != nil {
		return nil, err
	}
	cfg.EnforceStaticExists, err = getBool("ENFORCE_STATIC_EXISTS", true)
	if err != nil {
		return nil, err
	}
	cfg.NotFoundOnEmptyList, err = getBool("NOT_FOUND_ON_EMPTY_LIST", true)
	if err != nil {
		return nil, err
	}
	cfg.UpsertLockTTL, err = getDuration("UPSERT_LOCK_TTL", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	if cfg.EnforceSecret && cfg.SecretKey == "" {
		log.Printf("WARN: ENFORCE_SECRET is enabled but SECRET_KEY is not set; all requests will be rejected")
	}

	return cfg, nil
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}

// Helper function to parse bool from environment variable
func getBool(envKey string, defaultVal bool) (bool, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, fmt.Errorf("invalid boolean format for %s: %w", envKey, err)
	}
	return b, nil
}
