package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yndnr/msgserver-go/internal/storage/memory"
	"github.com/yndnr/msgserver-go/internal/telemetry/logger"
)

// Verify validates the configuration.
//
// server.network is deliberately not checked here: an unsupported network
// is reported by the listener as a transport mode failure.
func Verify(cfg *ServerConfig) error {
	var errs []error
	if err := verifyServer(&cfg.Server); err != nil {
		errs = append(errs, err)
	}
	if _, err := memory.ParsePutPolicy(cfg.Store.PutPolicy); err != nil {
		errs = append(errs, fmt.Errorf("store.put_policy: %w", err))
	}
	if err := verifyLog(&cfg.Log); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func verifyServer(cfg *ServerSection) error {
	if cfg.ReadTimeout < 0 {
		return errors.New("server.read_timeout must not be negative")
	}
	if cfg.WriteTimeout < 0 {
		return errors.New("server.write_timeout must not be negative")
	}
	if cfg.ShutdownTimeout <= 0 {
		return errors.New("server.shutdown_timeout must be positive")
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if _, err := logger.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(cfg.Format) {
	case "", "text", "console", "json":
		return nil
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
}
