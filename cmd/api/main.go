package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/kondate-api/internal/application/history"
	"github.com/jhoicas/kondate-api/internal/application/inventory"
	"github.com/jhoicas/kondate-api/internal/application/menu"
	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/application/usecase"
	infraai "github.com/jhoicas/kondate-api/internal/infrastructure/ai"
	"github.com/jhoicas/kondate-api/internal/infrastructure/document"
	"github.com/jhoicas/kondate-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/kondate-api/internal/infrastructure/pdf"
	"github.com/jhoicas/kondate-api/internal/infrastructure/storage"
	infraxlsx "github.com/jhoicas/kondate-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/kondate-api/internal/interfaces/http"
	"github.com/jhoicas/kondate-api/pkg/config"
	"github.com/jhoicas/kondate-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("ai", cfg.AI.Provider).
		Msg("iniciando aplicación")

	ctx := context.Background()
	zl := log.Zerolog()

	store, closeStore, err := storage.Open(ctx, cfg, zl)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	ledgerRepo := document.NewLedgerRepository(store, zl)
	configRepo := document.NewConfigRepository(store, zl)
	historyRepo := document.NewHistoryRepository(store, zl)

	llm, err := newLLM(ctx, cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servicio generativo")
	}

	prom := metrics.New()

	ledgerUC := inventory.NewLedgerUseCase(ledgerRepo, prom, zl)
	servingsUC := usecase.NewServingsUseCase(configRepo, zl)
	menuUC := menu.NewGenerateUseCase(ledgerRepo, configRepo, llm, prom, zl, menu.Options{
		Candidates: cfg.Menu.Candidates,
		Timeout:    cfg.AI.Timeout(),
	})
	historyUC := history.NewUseCase(historyRepo, ledgerRepo, map[string]history.ReportRenderer{
		"pdf":  infrapdf.NewHistoryReportGenerator(cfg.Report.FontPath),
		"xlsx": infraxlsx.NewHistoryReportGenerator(),
	}, prom, zl)

	app := fiber.New(fiber.Config{
		AppName:     cfg.App.Name,
		ReadTimeout: time.Second * 10,
		// La generación de menús espera al modelo: el write timeout debe cubrir AI_TIMEOUT_SECONDS.
		WriteTimeout: cfg.AI.Timeout() + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete}, ","),
	}))
	app.Use(httpRouter.RequestLogger(zl, prom))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Kondate API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:   ledgerUC,
		ServingsUC: servingsUC,
		MenuUC:     menuUC,
		HistoryUC:  historyUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newLLM elige el adaptador según AI_PROVIDER.
func newLLM(ctx context.Context, cfg config.AIConfig) (ports.LLMService, error) {
	if cfg.Provider == config.ProviderAnthropic {
		return infraai.NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	}
	return infraai.NewGeminiService(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
}
