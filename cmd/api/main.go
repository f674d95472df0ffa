package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/voice-transcriber/docs"
	pkgvalidator "github.com/johnquangdev/voice-transcriber/pkg/validator"

	"github.com/johnquangdev/voice-transcriber/internal/adapter/handler"
	"github.com/johnquangdev/voice-transcriber/internal/domain/repositories"
	"github.com/johnquangdev/voice-transcriber/internal/infrastructure/cache"
	"github.com/johnquangdev/voice-transcriber/internal/infrastructure/catalog"
	"github.com/johnquangdev/voice-transcriber/internal/infrastructure/events"
	httpmw "github.com/johnquangdev/voice-transcriber/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/voice-transcriber/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/voice-transcriber/internal/usecase/ai"
	chatuse "github.com/johnquangdev/voice-transcriber/internal/usecase/chat"
	templateuse "github.com/johnquangdev/voice-transcriber/internal/usecase/template"
	pkgai "github.com/johnquangdev/voice-transcriber/pkg/ai"
	"github.com/johnquangdev/voice-transcriber/pkg/config"
)

// @title           Voice Transcriber API
// @version         1.0
// @description     Transcribes audio, summarizes it, extracts action items and answers questions about the transcript.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Runs and watchers stop with this context
	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())
	e.Use(httpmw.ZapLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxUploadMB)))

	// CORS middleware
	e.Use(httpmw.CORS(cfg.Server.AllowedOrigins))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize event bus, mirrored to Redis when enabled
	var mirrors []repositories.EventPublisher
	if cfg.Redis.Enabled {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(appCtx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		mirrors = append(mirrors, events.NewRedisPublisher(redisClient, cfg.Redis.Channel))
		log.Printf("✅ Mirroring pipeline events to Redis channel %s", cfg.Redis.Channel)
	}
	bus := events.NewBus(cfg.Events.BufferSize, mirrors...)

	// Initialize audio storage
	var audioStore repositories.AudioStore
	if cfg.Storage.Enabled {
		log.Println("🪣 Connecting to MinIO...")
		minioClient, err := storage.NewMinIOClient(appCtx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO: %v", err)
		}
		audioStore = minioClient
	} else {
		dir := filepath.Join(os.TempDir(), "voice-transcriber")
		localStore, err := storage.NewLocalStore(dir)
		if err != nil {
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		audioStore = localStore
		log.Printf("⚠️  Object storage disabled, keeping uploads in %s", dir)
	}

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	transcriber := pkgai.NewAssemblyAIClient(&cfg.Assembly, audioStore, logger)
	analyzer, analyzerCloser, err := pkgai.NewAnalysisClient(appCtx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize analysis client: %v", err)
	}
	defer analyzerCloser.Close()
	log.Printf("✅ Analysis provider: %s", cfg.Analysis.Provider)

	// Initialize template catalog
	log.Println("📄 Loading template catalog...")
	templates, err := loadCatalog(appCtx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to load template catalog: %v", err)
	}

	// Initialize use cases
	activity := aiuse.NewActivity()
	orchestrator := aiuse.NewOrchestrator(
		appCtx,
		cache.NewContextStore(),
		transcriber,
		analyzer,
		bus,
		activity,
		aiuse.Options{
			TranscriptionTimeout: cfg.Assembly.Timeout,
			AnalysisTimeout:      cfg.Analysis.Timeout,
		},
		logger,
	)
	chatRegistry := chatuse.NewRegistry(analyzer, activity, cfg.Analysis.Timeout, logger)
	converter := templateuse.NewConverter(templates, analyzer, activity, cfg.Analysis.Timeout, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		handler.NewRunHandler(orchestrator, bus, logger),
		handler.NewUploadHandler(audioStore, cfg.Server.MaxUploadMB, logger),
		handler.NewChatHandler(chatRegistry, orchestrator, logger),
		handler.NewTemplateHandler(converter, orchestrator, logger),
		orchestrator.Processing,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Printf("❌ Server forced to shutdown: %v", err)
	}

	// Cancel in-flight runs and wait for them to unwind
	if snap := orchestrator.Snapshot(); snap.Status.IsActive() {
		logger.Info("⏳ Cancelling in-flight run",
			zap.Int64("generation", snap.Generation),
			zap.String("status", string(snap.Status)),
		)
	}
	stopApp()
	done := make(chan struct{})
	go func() {
		orchestrator.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		log.Println("⚠️  Runs still in flight at shutdown deadline")
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadCatalog returns the built-in catalog, or the file at
// TEMPLATE_CATALOG_PATH reloaded on every change.
func loadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, error) {
	path := cfg.Templates.CatalogPath
	if path == "" {
		return catalog.NewBuiltin()
	}

	templates, err := catalog.NewFromFile(path)
	if err != nil {
		return nil, err
	}

	watcher, err := catalog.NewWatcher(templates, path, logger)
	if err != nil {
		return nil, err
	}
	go func() {
		defer watcher.Stop()
		if err := watcher.Start(ctx); err != nil && ctx.Err() == nil {
			logger.Error("❌ Template catalog watcher stopped", zap.Error(err))
		}
	}()

	log.Printf("✅ Template catalog loaded from %s", path)
	return templates, nil
}
