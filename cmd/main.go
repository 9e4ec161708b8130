package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"autoblog/config"
	"autoblog/database"
	_ "autoblog/docs"
	"autoblog/internal/controller"
	"autoblog/internal/elasticsearch"
	"autoblog/internal/filestate"
	"autoblog/internal/kafka"
	"autoblog/internal/logfile"
	"autoblog/internal/logging"
	"autoblog/internal/metrics"
	"autoblog/internal/parser"
	"autoblog/internal/repository"
	"autoblog/internal/scheduler"
	"autoblog/internal/service"
	"autoblog/internal/store"
)

// @title           Autoblog API
// @version         1.0
// @description     Settings, registries and log tail for the autoblog console.

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         logs
// @tag.description  Application log tail

// @tag.name         settings
// @tag.description  LLM mode and proxy settings

// @tag.name         health
// @tag.description  API health check operations

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open log file")
	}
	defer logFile.Close()

	var wg sync.WaitGroup

	options := []fx.Option{
		fx.Supply(cfg),
		fx.NopLogger,
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			NewRepositories,
			NewLogRepository,
		),
		fx.Provide(
			service.NewLogQueryService,
			service.NewSettingsService,
			service.NewFeedService,
			service.NewLLMConfigService,
			service.NewAutomationService,
			controller.NewLogController,
			controller.NewSettingsController,
			controller.NewFeedController,
			controller.NewLLMConfigController,
			controller.NewAutomationController,
		),
		fx.Invoke(RegisterAPIRoutes),
	}
	if cfg.Shipping.Enabled {
		options = append(options, shippingModule(&wg))
	} else {
		log.Info().Msg("Log shipping disabled")
	}

	app := fx.New(options...)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}

	log.Info().Msg("Waiting for background goroutines to finish...")
	wg.Wait()
	log.Info().Msg("All background processes finished. Exiting.")
}

func shippingModule(wg *sync.WaitGroup) fx.Option {
	return fx.Module("shipping",
		fx.Provide(
			NewFileStateManager,
			parser.NewLogParser,
			kafka.NewKafkaLogProducer,
			kafka.NewKafkaLogConsumer,
			elasticsearch.NewElasticLogStore,
			service.NewLogShipperService,
			service.NewLogIndexerService,
		),
		fx.Invoke(
			RegisterScheduler,
			func(lc fx.Lifecycle, indexer service.LogIndexerService) {
				startLogIndexer(lc, wg, indexer)
			},
		),
	)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	metrics.Global()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	controller.RegisterHealthRoutes(r)

	return r
}

// Repositories hands the registry repositories to fx as separate values.
type Repositories struct {
	fx.Out

	Settings    repository.SettingsRepository
	Feeds       repository.FeedRepository
	LLMConfigs  repository.LLMConfigRepository
	Automations repository.AutomationRepository
}

func NewRepositories(lc fx.Lifecycle, cfg *config.Config) (Repositories, error) {
	switch cfg.Database.Driver {
	case config.DatabaseDriverMemory, "":
		log.Warn().Msg("Using in-memory store, settings and registries are lost on restart")
		mem := store.NewMemoryStore()
		return Repositories{
			Settings:    mem.Settings(),
			Feeds:       mem.Feeds(),
			LLMConfigs:  mem.LLMConfigs(),
			Automations: mem.Automations(),
		}, nil
	case config.DatabaseDriverMySQL, config.DatabaseDriverPostgres:
		db, err := database.NewDB(lc, cfg)
		if err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Settings:    repository.NewGormSettingsRepository(db),
			Feeds:       repository.NewGormFeedRepository(db),
			LLMConfigs:  repository.NewGormLLMConfigRepository(db),
			Automations: repository.NewGormAutomationRepository(db),
		}, nil
	default:
		return Repositories{}, fmt.Errorf("unknown DATABASE_DRIVER %q", cfg.Database.Driver)
	}
}

func NewLogRepository(cfg *config.Config) (repository.LogRepository, error) {
	switch cfg.Log.Source {
	case config.LogSourceFile, "":
		return logfile.NewTailRepository(cfg.Log.FilePath), nil
	case config.LogSourceElasticsearch:
		return elasticsearch.NewElasticsearchLogRepository(cfg)
	default:
		return nil, fmt.Errorf("unknown LOG_SOURCE %q", cfg.Log.Source)
	}
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	logController *controller.LogController,
	settingsController *controller.SettingsController,
	feedController *controller.FeedController,
	llmConfigController *controller.LLMConfigController,
	automationController *controller.AutomationController,
) {
	controller.RegisterLogRoutes(router, logController)
	controller.RegisterSettingsRoutes(router, settingsController)
	controller.RegisterFeedRoutes(router, feedController)
	controller.RegisterLLMConfigRoutes(router, llmConfigController)
	controller.RegisterAutomationRoutes(router, automationController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}

func NewFileStateManager(cfg *config.Config) filestate.Manager {
	return filestate.NewManager(cfg.Shipping.StatePath)
}

func RegisterScheduler(lc fx.Lifecycle, cfg *config.Config, shipper service.LogShipperService) error {
	_, err := scheduler.NewScheduler(lc, cfg, shipper)
	return err
}

// startLogIndexer runs the indexer loop for the lifetime of the app.
func startLogIndexer(lc fx.Lifecycle, wg *sync.WaitGroup, indexer service.LogIndexerService) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info().Msg("Starting log indexer goroutine")
			wg.Add(1)
			go indexer.Run(ctx, wg)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			log.Info().Msg("Signaling log indexer goroutine to stop...")
			cancel()
			return nil
		},
	})
}
