package cli

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/luna/internal/api"
	"github.com/terraincognita07/luna/internal/config"
	"github.com/terraincognita07/luna/internal/logger"
	"github.com/terraincognita07/luna/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the reminder scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg)
		},
	}
}

func runServe(parent context.Context, cfg *config.Config) error {
	set, err := openServiceSet(cfg)
	if err != nil {
		return err
	}
	defer set.Close()

	app, accessLog := newServerApp(api.NewHandler(set.database, cfg.Location))
	defer accessLog.Close()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reminders := services.NewReminderService(set.repos.Periods, set.dayLog, set.settings, newNotifier(cfg), cfg.Location, cfg.ReminderLeadDays)
	if err := reminders.Start(ctx, cfg.ReminderSchedule); err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("server shutdown failed")
		}
	}()

	logger.Log.WithFields(logrus.Fields{
		"port": cfg.Port,
		"db":   cfg.DBPath,
		"tz":   cfg.Location.String(),
	}).Info("luna listening")
	return app.Listen(":" + cfg.Port)
}

// newServerApp builds the fiber app. The returned writer feeds access logs
// into logrus and must be closed once the server stops.
func newServerApp(handler *api.Handler) (*fiber.App, *io.PipeWriter) {
	accessLog := logger.Log.Writer()

	app := fiber.New(fiber.Config{
		AppName:               "Luna",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{Output: accessLog}))
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, accessLog
}

func newNotifier(cfg *config.Config) services.Notifier {
	if cfg.TelegramEnabled() {
		logger.Log.Info("reminders: delivering through telegram")
		return services.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
	}
	logger.Log.Info("reminders: telegram not configured, logging reminders instead")
	return services.NewLogNotifier(logger.Log)
}
