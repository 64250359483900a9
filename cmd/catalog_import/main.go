package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/gymcoach/internal/config"
	"github.com/2beens/gymcoach/internal/db"
	"github.com/2beens/gymcoach/internal/exercises"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	catalogPath := flag.String("file", "./catalog/exercises.toml", "path to the TOML exercise catalog")
	dryRun := flag.Bool("dry-run", false, "only validate the catalog file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	f, err := os.Open(*catalogPath)
	if err != nil {
		log.Fatalf("open catalog file: %v", err)
	}
	defer f.Close()

	catalog, err := exercises.DecodeCatalogFile(f)
	if err != nil {
		log.Fatalf("read catalog file: %v", err)
	}
	log.Printf("catalog file [%s] contains %d exercises", *catalogPath, len(catalog))

	if *dryRun {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     os.Getenv("GYMCOACH_POSTGRES_USER"),
		DBPassword: os.Getenv("GYMCOACH_POSTGRES_PASS"),
		MaxConns:   2,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	repo := exercises.NewRepo(dbPool)
	imported := 0
	for _, ex := range catalog {
		if err := repo.Upsert(ctx, ex); err != nil {
			log.Errorf("upsert exercise [%s]: %v", ex.ID, err)
			continue
		}
		imported++
	}

	total, err := repo.Count(ctx)
	if err != nil {
		log.Errorf("count exercises: %v", err)
	}
	log.Printf("imported %d/%d exercises, catalog now has %d", imported, len(catalog), total)
}
