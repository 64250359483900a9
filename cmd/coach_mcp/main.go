// Package main runs the gymcoach MCP server over stdio, for local AI clients.
// The main service mounts the same tools at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/exercises"
	coachmcp "github.com/2beens/gymcoach/internal/mcp"
	"github.com/2beens/gymcoach/pkg/recommend"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	useRedis := flag.Bool("redis", false, "share the facets cache with the main service via redis")
	flag.Parse()

	// stdout belongs to the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("GYMCOACH_POSTGRES_USER"),
		DBPassword: os.Getenv("GYMCOACH_POSTGRES_PASS"),
		MaxConns:   4,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	var rdb *redis.Client
	if *useRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
			Password: os.Getenv("GYMCOACH_REDIS_PASS"),
		})
		defer rdb.Close()
	}

	exercisesRepo := exercises.NewRepo(dbPool)
	facetsCache := exercises.NewFacetsCache(
		exercisesRepo,
		rdb,
		time.Duration(cfg.FacetsCacheTTLSeconds)*time.Second,
		cfg.FacetsLocalCacheSizeMB,
		nil,
	)
	engine := recommend.NewEngine(
		exercises.NewCatalog(exercisesRepo, facetsCache, nil),
		recommend.DefaultConfig(),
	)

	server := coachmcp.NewServer(dbPool, exercisesRepo, engine)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
