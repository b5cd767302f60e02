package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/placement/internal/app/controllers"
	appMigrations "github.com/yigit/placement/internal/app/migrations"
	appRepos "github.com/yigit/placement/internal/app/repositories"
	appRoutes "github.com/yigit/placement/internal/app/routes"
	appServices "github.com/yigit/placement/internal/app/services"
	"github.com/yigit/placement/internal/config"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/domain/placement"
	appMiddleware "github.com/yigit/placement/internal/middleware"
	"github.com/yigit/placement/internal/pkg/events"
	"github.com/yigit/placement/internal/pkg/letter"
	"github.com/yigit/placement/internal/pkg/logger"
	"github.com/yigit/placement/internal/pkg/websocket"
	"github.com/yigit/placement/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store       *placement.Store
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Publisher   events.Publisher
	Hub         *websocket.Hub
	Database    *db.PostgresDB // nil with the memory driver
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.FromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	migrator := appMigrations.NewMigrator(database.Pool)
	if dir := cfg.Database.MigrationsDir; dir != "" {
		err = migrator.MigrateFromDirectory(ctx, dir)
	} else {
		err = migrator.Migrate(ctx, appMigrations.Embedded())
	}
	if err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// NewLetterRenderer builds the offer letter renderer, reading the template
// file when one is configured
func NewLetterRenderer(cfg *config.Config) (*letter.Renderer, error) {
	lc := letter.Config{
		Locale:         cfg.Letter.Locale,
		CurrencySymbol: cfg.Letter.CurrencySymbol,
	}
	if path := cfg.Letter.TemplatePath; path != "" {
		tmpl, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read letter template: %w", err)
		}
		lc.Template = string(tmpl)
	}
	return letter.NewRenderer(lc)
}

// SetupPublisher connects the Redis event publisher. An unreachable Redis
// falls back to a no-op publisher so the API still serves requests.
func SetupPublisher(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) events.Publisher {
	if !cfg.Redis.Enabled {
		return events.Nop{}
	}

	pub := events.NewRedisPublisher(events.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pub.Ping(pingCtx); err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, events disabled")
		_ = pub.Close()
		return events.Nop{}
	}
	lgr.Info().Str("channel", events.Channel(cfg.Redis.Prefix)).Msg("Publishing events to Redis")
	return pub
}

// StoreOptions translates configuration into store options
func StoreOptions(cfg *config.Config, renderer placement.LetterRenderer) []placement.Option {
	return []placement.Option{
		placement.WithStrictBacklogStatus(cfg.Placement.StrictBacklogStatus),
		placement.WithLetterRenderer(renderer),
	}
}

// RestoreStore builds a store holding the persisted state of database and
// writing every later change through to it
func RestoreStore(ctx context.Context, database *db.PostgresDB, opts ...placement.Option) (*placement.Store, error) {
	snap, err := appRepos.NewRepositories(database.Pool).LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted state: %w", err)
	}

	// Restore never calls the persister, so nothing is written back.
	opts = append(opts, placement.WithPersister(appRepos.NewPersister(database)))
	store := placement.NewStore(opts...)
	if err := store.Restore(snap); err != nil {
		return nil, fmt.Errorf("failed to restore persisted state: %w", err)
	}
	return store, nil
}

// BuildDependencies initializes storage, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	renderer, err := NewLetterRenderer(cfg)
	if err != nil {
		return nil, err
	}
	opts := StoreOptions(cfg, renderer)

	if cfg.UsesPostgres() {
		deps.Database, err = SetupDatabase(ctx, cfg, lgr)
		if err != nil {
			return nil, err
		}
		deps.Store, err = RestoreStore(ctx, deps.Database, opts...)
		if err != nil {
			deps.Database.Close()
			return nil, err
		}
		stats := deps.Store.DashboardStats()
		lgr.Info().Int("students", stats.TotalStudents).Int("drives", stats.TotalDrives).Msg("Persisted state restored")
	} else {
		deps.Store = placement.NewStore(opts...)
		lgr.Info().Msg("Using in-memory storage")
	}

	if cfg.Placement.SeedDemoData {
		if err := seed.CreateDemoData(ctx, deps.Store, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "event-feed").Logger())
	go deps.Hub.Run()
	deps.Publisher = events.Multi{SetupPublisher(ctx, cfg, lgr), deps.Hub}
	deps.Services = appServices.NewServices(deps.Store, deps.Publisher, lgr)
	deps.Controllers = appControllers.NewControllers(deps.Services)
	return deps, nil
}

// Close releases the publishers, which includes the event feed hub, and the database pool
func (d *Dependencies) Close() {
	if d.Publisher != nil {
		if err := d.Publisher.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close event publisher")
		}
	}
	if d.Database != nil {
		d.Database.Close()
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger())
	appRoutes.SetupRouter(router, deps.Controllers)
	if deps.Hub != nil {
		appRoutes.SetupEventFeed(router, websocket.NewHandler(deps.Hub, lgr.With().Str("component", "event-feed").Logger()))
	}
	return router
}
