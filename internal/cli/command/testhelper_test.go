package command

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/msgserver-go/internal/server/lineserver"
	"github.com/yndnr/msgserver-go/internal/storage/memory"
	"github.com/yndnr/msgserver-go/internal/telemetry/logger"
)

// runApp runs app with args and captures stdout. Exit coders are returned
// instead of terminating the test binary.
func runApp(ctx context.Context, app *cli.App, args ...string) (string, error) {
	var stdout bytes.Buffer
	app.Writer = &stdout
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.RunContext(ctx, append([]string{app.Name}, args...))
	return stdout.String(), err
}

// exitCode returns the status carried by err, or -1 when err is not an
// exit coder.
func exitCode(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return -1
}

// startLineServer runs a real line server on a loopback port.
func startLineServer(t *testing.T, store *memory.Store) string {
	t.Helper()

	l, err := logger.New(logger.Config{Output: io.Discard})
	if err != nil {
		t.Fatalf("logger.New() error = %v", err)
	}

	cfg := lineserver.DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	srv := lineserver.New(cfg, store, nil, l)
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go srv.Serve(ctx)
	t.Cleanup(func() {
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 2*time.Second)
		defer done()
		srv.Shutdown(shutdownCtx)
	})

	return srv.Addr().String()
}

// freePort returns a loopback port that was free a moment ago.
func freePort(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() error = %v", err)
	}
	defer ln.Close()
	return strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}
