package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/samber/do/v2"
	"github.com/solotto/draw-engine/internal/config"
	"github.com/solotto/draw-engine/modules/lottery"
	"github.com/solotto/draw-engine/pkg/automaxprocs"
	"github.com/solotto/draw-engine/pkg/errorhandler"
	"github.com/solotto/draw-engine/pkg/logger"
	"github.com/solotto/draw-engine/pkg/logger/slogx"
	"github.com/solotto/draw-engine/pkg/middleware/requestcontext"
	"github.com/solotto/draw-engine/pkg/middleware/requestlogger"
	"github.com/spf13/cobra"
)

func NewRunCommand() *cobra.Command {
	// Create command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the lottery draw engine service",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return runHandler(cmd, args)
		},
	}

	// Add local flags
	flags := runCmd.Flags()
	flags.Bool("api-only", false, "Run only the API server, without the draw scheduler")
	flags.Bool("ephemeral", false, "Keep the ticket ledger in memory, without persistence")

	// Bind flags to configuration
	config.BindPFlag("api_only", flags.Lookup("api-only"))
	config.BindPFlag("ephemeral", flags.Lookup("ephemeral"))

	return runCmd
}

const (
	shutdownTimeout = 60 * time.Second
)

func bitcoinRPCClientProvider(i do.Injector) (*rpcclient.Client, error) {
	ctx := do.MustInvoke[context.Context](i)
	conf := do.MustInvoke[config.Config](i)

	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         conf.BitcoinNode.Host,
		User:         conf.BitcoinNode.User,
		Pass:         conf.BitcoinNode.Pass,
		DisableTLS:   conf.BitcoinNode.DisableTLS,
		HTTPPostMode: true,
	}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Bitcoin node configuration")
	}

	// Check Bitcoin RPC connection
	{
		start := time.Now()
		logger.InfoContext(ctx, "Connecting to Bitcoin Core RPC Server...", slogx.String("host", conf.BitcoinNode.Host))
		if err := client.Ping(); err != nil {
			return nil, errors.Wrapf(err, "can't connect to Bitcoin Core RPC Server %q", conf.BitcoinNode.Host)
		}
		logger.InfoContext(ctx, "Connected to Bitcoin Core RPC Server", slog.Duration("latency", time.Since(start)))
	}

	return client, nil
}

func httpServerProvider(i do.Injector) (*fiber.App, error) {
	conf := do.MustInvoke[config.Config](i)

	app := fiber.New(fiber.Config{
		AppName:      "Solotto Draw Engine",
		ErrorHandler: errorhandler.NewHTTPErrorHandler(),
	})
	app.
		Use(favicon.New()).
		Use(cors.New()).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			requestcontext.WithClientIP(conf.HTTPServer.RequestIP),
		)).
		Use(requestlogger.New(conf.HTTPServer.Logger)).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
				buf := make([]byte, 1024) // bufLen = 1024
				buf = buf[:runtime.Stack(buf, false)]
				logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", slogx.Any("panic", e), slog.String("stacktrace", string(buf)))
			},
		})).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.SendStatus(http.StatusOK))
	})

	return app, nil
}

func runHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	// Initialize application process context
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New()
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)
	do.Provide(injector, bitcoinRPCClientProvider)
	do.Provide(injector, httpServerProvider)

	// Initialize worker context to separate worker's lifecycle from main process
	ctxWorker, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	ctxWorker = logger.WithContext(ctxWorker, slogx.String("module", "lottery"))

	module, err := lottery.New(injector)
	if err != nil {
		return errors.Wrap(err, "can't init lottery module")
	}
	defer func() {
		if err := module.Close(context.Background()); err != nil {
			logger.Error("Failed to close lottery module", slogx.Error(err))
		}
	}()

	// Run draw scheduler
	if module.Scheduler != nil && !conf.APIOnly {
		go func() {
			// stop main process if scheduler stopped
			defer stop()

			logger.InfoContext(ctxWorker, "Starting draw scheduler")
			if err := module.Scheduler.Run(ctxWorker); err != nil {
				logger.PanicContext(ctxWorker, "Something went wrong, error during running draw scheduler", slogx.Error(err))
			}
		}()
	}

	// Run API server
	httpServer := do.MustInvoke[*fiber.App](injector)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", conf.HTTPServer.Port))
		if err := httpServer.Listen(fmt.Sprintf(":%d", conf.HTTPServer.Port)); err != nil {
			logger.PanicContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	logger.InfoContext(ctx, "Solotto draw engine started")

	// Wait for interrupt signal to gracefully stop the server
	<-ctx.Done()
	stopWorker()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	if err := injector.Shutdown(); err != nil {
		logger.PanicContext(ctx, "Failed while gracefully shutting down", slogx.Error(err))
	}

	return nil
}
