package app

import (
	_ "github.com/DIMO-Network/messenger-bot-api/docs" // Import Swagger docs
	"github.com/DIMO-Network/messenger-bot-api/internal/auth"
	"github.com/DIMO-Network/messenger-bot-api/internal/config"
	"github.com/DIMO-Network/messenger-bot-api/internal/controllers/eventlistener"
	"github.com/DIMO-Network/messenger-bot-api/internal/controllers/webhook"
	"github.com/DIMO-Network/messenger-bot-api/internal/services/eventcache"
	"github.com/DIMO-Network/messenger-bot-api/internal/services/scheduler"
	"github.com/DIMO-Network/messenger-bot-api/internal/services/sendapi"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// Servers holds the web app and the timers of delayed replies, which must be
// stopped on shutdown.
type Servers struct {
	App       *fiber.App
	Scheduler *scheduler.Scheduler
}

// CreateServers builds the bot and its HTTP surface from settings.
func CreateServers(settings *config.Settings, logger zerolog.Logger) *Servers {
	sendClient := sendapi.NewClient(settings, nil)
	sched := scheduler.New()
	linker := auth.NewAccountLinker(settings)
	bot := eventlistener.NewBot(sendClient, sched, eventcache.NewEventCache(settings.EventDedupTTL), linker)
	dispatcher := eventlistener.NewDispatcher(bot)

	app := CreateFiberApp(logger, dispatcher, linker, settings)
	return &Servers{App: app, Scheduler: sched}
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, processor webhook.EntryProcessor, issuer webhook.CodeIssuer, settings *config.Settings) *fiber.App {
	logger.Info().Msg("Starting Messenger Bot API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	webhookController := webhook.NewWebhookController(processor, issuer, settings.ValidationToken, settings.ServerURL)
	logger.Info().Msg("Registering routes...")

	app.Get("/webhook", webhookController.Verify)
	app.Post("/webhook", webhook.SignatureMiddleware(settings.AppSecret), webhookController.Receive)
	app.Get("/authorize", webhookController.Authorize)

	return app
}
