package cmd

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jjenkins/volume/internal/handlers"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Volume of the Book web server",
	Long:  `Start the web server serving the daily devotional, reader, search and study API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Use PORT env var if set, otherwise use flag value
		if !cmd.Flags().Changed("port") && cfg.Port != "" {
			port = cfg.Port
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc, err := newServices(ctx)
		if err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			AppName:      "Volume of the Book",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 2 * time.Minute,
		})

		app.Use(fiberlogger.New())

		handlers.Register(app, handlers.Services{
			Scripture: svc.scripture,
			Daily:     svc.daily,
			Search:    svc.search,
			Insights:  svc.insights,
			Assistant: svc.assistant,
			Logger:    logger.Named("http"),
		})

		go func() {
			<-ctx.Done()
			logger.Info("Received interrupt signal, shutting down...")
			_ = app.ShutdownWithTimeout(10 * time.Second)
		}()

		logger.Info("Starting server", zap.String("port", port))
		return app.Listen(":" + port)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to run the server on")
}
