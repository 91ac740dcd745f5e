package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"profile-service/internal/config"
	"profile-service/internal/database/migration"
	dbpostgres "profile-service/internal/database/postgres"
	"profile-service/internal/database/seeder"
	"profile-service/internal/pkg/logger"
)

func main() {
	password := flag.String("password", seeder.DefaultDemoPassword, "password shared by every demo account")
	migrate := flag.Bool("migrate", true, "apply migrations before seeding")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Database.Driver != config.StoreDriverPostgres {
		fmt.Fprintln(os.Stderr, "seeder needs STORE_DRIVER=postgres; the memory driver seeds itself with SEED_DEMO=true")
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("connect failed", "error", err)
	}
	defer db.Close()

	if *migrate {
		r := migration.Runner{FS: migration.Embedded(), Logger: log}
		if err := r.Run(ctx, db.SQLDB()); err != nil {
			log.Fatal("migrations failed", "error", err)
		}
	}

	r := seeder.Runner{Seeders: seeder.Defaults(*password), Logger: log}
	if err := r.Run(ctx, db); err != nil {
		log.Fatal("seeding failed", "error", err)
	}
	log.Info("demo data seeded", "users", len(seeder.DemoUsers()), "ratings", len(seeder.DemoRatings()))
}
