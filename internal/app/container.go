package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"profile-service/internal/config"
	"profile-service/internal/database"
	"profile-service/internal/database/migration"
	dbpostgres "profile-service/internal/database/postgres"
	"profile-service/internal/database/seeder"
	"profile-service/internal/domain/profile"
	"profile-service/internal/domain/user"
	"profile-service/internal/infrastructure/cache"
	"profile-service/internal/infrastructure/persistence/memory"
	pgstore "profile-service/internal/infrastructure/persistence/postgres"
	"profile-service/internal/infrastructure/picture"
	"profile-service/internal/pkg/jwt"
	"profile-service/internal/pkg/logger"
	"profile-service/internal/usecase"
	"profile-service/internal/ws"
)

// Container owns every long-lived dependency of the server.
type Container struct {
	Config config.Config
	Logger *logger.Logger

	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	JWT      jwt.Service
	Users    user.Directory
	Profiles profile.Store
	Pictures profile.PictureStore
	Profile  usecase.ProfileUsecase

	ratings profile.RatingReader

	closers []func() error
}

func NewContainer(ctx context.Context, cfg config.Config, log *logger.Logger) (*Container, error) {
	log = logger.OrNop(log)
	c := &Container{Config: cfg, Logger: log}

	if err := c.initStore(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.initPictures(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, log)
	c.closers = append(c.closers, c.Cache.Close)
	c.Profiles = cache.NewCachedProfileStore(c.Profiles, c.ratings, c.Cache, log)

	c.Hub = ws.NewHub(log)
	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn, cfg.JWT.Issuer)
	c.Profile = usecase.NewProfileUsecase(c.Users, c.Profiles, c.Pictures, c.Hub, log)

	return c, nil
}

func (c *Container) initStore(ctx context.Context) error {
	switch c.Config.Database.Driver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		if c.Config.App.SeedDemo {
			if err := seeder.SeedMemory(ctx, store); err != nil {
				return fmt.Errorf("seed memory store: %w", err)
			}
		}
		c.Users = store
		c.Profiles = store
		c.ratings = store
		c.Logger.Warn("using in-memory store, data is lost on restart", "seeded", c.Config.App.SeedDemo)
		return nil

	case config.StoreDriverPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, c.Config.Database, c.Logger)
		if err != nil {
			return err
		}
		c.DB = db
		c.closers = append(c.closers, db.Close)

		if c.Config.Database.RunMigrations {
			r := migration.Runner{FS: migration.Embedded(), Logger: c.Logger}
			if err := r.Run(ctx, db.SQLDB()); err != nil {
				return fmt.Errorf("run migrations: %w", err)
			}
		}

		c.Users = pgstore.NewUserDirectory(db)
		profiles := pgstore.NewProfileStore(db)
		c.Profiles = profiles
		c.ratings = profiles
		return nil

	default:
		return fmt.Errorf("unknown store driver %q", c.Config.Database.Driver)
	}
}

func (c *Container) initPictures(ctx context.Context) error {
	switch c.Config.Storage.PictureStore {
	case config.PictureStoreGCS:
		s, err := picture.NewGCSStore(ctx, c.Config.Storage.GCSBucket, c.Config.Storage.GCSCredsFile, c.Logger)
		if err != nil {
			return err
		}
		c.Pictures = s
		c.closers = append(c.closers, s.Close)
		return nil
	default:
		s, err := picture.NewLocalStore(c.Config.Storage.PictureDir, c.Logger)
		if err != nil {
			return err
		}
		c.Pictures = s
		return nil
	}
}

// Close releases resources in reverse order of acquisition.
func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
