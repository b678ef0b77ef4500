package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/msgserver-go/internal/infra/buildinfo"
	"github.com/yndnr/msgserver-go/internal/infra/confloader"
	"github.com/yndnr/msgserver-go/internal/infra/shutdown"
	"github.com/yndnr/msgserver-go/internal/server/adminserver"
	"github.com/yndnr/msgserver-go/internal/server/config"
	"github.com/yndnr/msgserver-go/internal/server/lineserver"
	"github.com/yndnr/msgserver-go/internal/storage/memory"
	"github.com/yndnr/msgserver-go/internal/telemetry/logger"
	"github.com/yndnr/msgserver-go/internal/telemetry/metric"
)

// ExitConfig is the exit status for an unusable configuration.
const ExitConfig = 1

// ServerApp creates the msgserver application.
func ServerApp() *cli.App {
	return &cli.App{
		Name:            "msgserver",
		Usage:           "Single-shot line protocol message server",
		UsageText:       "msgserver [--config FILE] <port>",
		ArgsUsage:       "<port>",
		Version:         buildinfo.String(),
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
				EnvVars: []string{"MSGSERVER_CONFIG"},
			},
		},
		Action: serverAction,
	}
}

func serverAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("Need <port>", lineserver.ExitUsage)
	}
	port, err := lineserver.ParsePort(c.Args().First())
	if err != nil {
		return exitError(err)
	}

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("load config: %v", err), ExitConfig)
	}

	log, err := initLogger(cfg, c.App.ErrWriter)
	if err != nil {
		return cli.Exit(fmt.Sprintf("init logger: %v", err), ExitConfig)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return exitError(runServer(ctx, cfg, c.String("config"), port, log))
}

// runServer serves until a signal arrives, ctx is cancelled or the line
// server fails fatally.
func runServer(ctx context.Context, cfg *config.ServerConfig, configFile string, port int, log logger.Logger) error {
	policy, err := memory.ParsePutPolicy(cfg.Store.PutPolicy)
	if err != nil {
		return err
	}
	store := memory.New(memory.WithPutPolicy(policy))

	metrics := metric.NewRegistry()
	metrics.RegisterStoreSize(store.Len)

	srv := lineserver.New(&lineserver.Config{
		Network:      cfg.Server.Network,
		Address:      net.JoinHostPort(cfg.Server.Host, strconv.Itoa(port)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		FailFast:     cfg.Server.FailFast,
	}, store, metrics, log)
	if err := srv.Listen(); err != nil {
		return err
	}

	log.Info("starting msgserver",
		"version", buildinfo.Get().Version,
		"address", srv.Addr().String(),
		"put_policy", string(store.Policy()),
		"fail_fast", cfg.Server.FailFast,
		"config", configFile)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownHandler := shutdown.NewHandler(cfg.Server.ShutdownTimeout)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down line server")
		return srv.Shutdown(ctx)
	})

	if cfg.Admin.Addr != "" {
		admin := adminserver.New(cfg.Admin.Addr, adminserver.NewRouter(&adminserver.RouterConfig{
			Store:   store,
			Metrics: metrics,
			Logger:  log.Slog(),
		}))
		if err := admin.Listen(); err != nil {
			return errors.Join(
				lineserver.ClassifyListenError(fmt.Errorf("admin: %w", err)),
				shutdownHandler.Trigger(),
			)
		}
		go func() {
			if err := admin.Serve(); err != nil {
				log.Error("admin server error", "error", err)
			}
		}()
		log.Info("admin server listening", "address", admin.Addr().String())

		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down admin server")
			return admin.Shutdown(ctx)
		})
	}

	if configFile != "" {
		watcher, err := watchLogLevel(configFile, log)
		if err != nil {
			log.Warn("config watch disabled", "file", configFile, "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		err := srv.Serve(ctx)
		if err != nil {
			// A fatal failure ends the process without draining the
			// connections still in flight.
			if herr := shutdownHandler.Abort(); herr != nil {
				log.Error("abort error", "error", herr)
			}
		}
		serveErr <- err
		cancel()
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(ctx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	if sig := shutdownHandler.Signal; sig != nil {
		log.Info("received signal", "signal", sig.String())
	}

	if err := <-serveErr; err != nil {
		log.Error("server stopped", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from defaults, file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	if err := confloader.NewLoader(opts...).Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger creates the process logger and installs it as the default.
func initLogger(cfg *config.ServerConfig, w io.Writer) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: w,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}

// watchLogLevel applies log.level changes from configFile at runtime.
// Other settings only take effect on restart.
func watchLogLevel(configFile string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log.Slog()))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(path)
		if err != nil {
			log.Warn("config reload failed", "file", path, "error", err)
			return
		}
		if cfg.Log.Level == logger.Level() {
			return
		}
		if err := logger.SetLevel(cfg.Log.Level); err != nil {
			log.Warn("log level not changed", "error", err)
			return
		}
		log.Info("log level changed", "level", cfg.Log.Level)
	})
	watcher.StartAsync()

	return watcher, nil
}

// exitError converts a server failure into a cli.ExitCoder carrying the
// matching process status.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var fe *lineserver.FatalError
	if errors.As(err, &fe) {
		return cli.Exit(err.Error(), fe.ExitCode())
	}
	return cli.Exit(err.Error(), ExitConfig)
}
