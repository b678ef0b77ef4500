package lineserver

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/msgserver-go/internal/storage/memory"
	"github.com/yndnr/msgserver-go/internal/telemetry/logger"
	"github.com/yndnr/msgserver-go/internal/telemetry/metric"
)

// Config holds the line server configuration.
type Config struct {
	// Network is the listener network: tcp, tcp4 or tcp6.
	Network string
	// Address is the listen address, e.g. ":7000".
	Address string
	// ReadTimeout bounds reading the request line (0 = no timeout).
	ReadTimeout time.Duration
	// WriteTimeout bounds writing the response line (0 = no timeout).
	WriteTimeout time.Duration
	// FailFast makes any connection I/O failure stop the server.
	FailFast bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Network:  "tcp",
		Address:  ":0",
		FailFast: true,
	}
}

// Server accepts connections and answers one request on each.
type Server struct {
	cfg     *Config
	handler *CommandHandler
	logger  logger.Logger
	metrics *metric.Registry

	mu sync.Mutex
	ln net.Listener

	running atomic.Bool
	wg      sync.WaitGroup

	fatalOnce sync.Once
	fatal     chan *FatalError
}

// New creates a server over store. metrics and log may be nil.
func New(cfg *Config, store *memory.Store, metrics *metric.Registry, log logger.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.Default()
	}

	return &Server{
		cfg:     cfg,
		handler: NewCommandHandler(store, metrics),
		logger:  log,
		metrics: metrics,
		fatal:   make(chan *FatalError, 1),
	}
}

// Listen binds the listener. Failures are returned as *FatalError.
// Calling Listen is optional; Serve binds on demand.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return nil
	}
	if err := CheckNetwork(s.cfg.Network); err != nil {
		return err
	}

	ln, err := net.Listen(s.cfg.Network, s.cfg.Address)
	if err != nil {
		return ClassifyListenError(err)
	}
	s.ln = ln
	s.logger.Info("line server listening", "network", s.cfg.Network, "address", ln.Addr().String())
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Serve accepts connections until ctx is done, Shutdown is called or a
// fatal error occurs. It returns nil on orderly stop and a *FatalError
// otherwise.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	s.mu.Lock()
	ln := s.ln
	s.running.Store(true)
	s.mu.Unlock()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(ctx, ln)
	}()

	select {
	case err := <-acceptErr:
		if err != nil {
			s.stopAccepting()
			return &FatalError{Code: ExitListen, Op: "accept", Err: err}
		}
		select {
		case fe := <-s.fatal:
			return fe
		default:
			return nil
		}
	case fe := <-s.fatal:
		s.stopAccepting()
		<-acceptErr
		return fe
	case <-ctx.Done():
		s.stopAccepting()
		<-acceptErr
		return nil
	}
}

// Shutdown stops accepting and waits for in-flight connections.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.stopAccepting()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return err
}

func (s *Server) stopAccepting() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running.Store(false)
	if s.ln == nil {
		return nil
	}
	if err := s.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) error {
	for {
		c, err := ln.Accept()
		if err != nil {
			if !s.running.Load() {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			return err
		}

		// Registering under mu orders every Add before the Wait in
		// Shutdown, which only starts once stopAccepting has run.
		s.mu.Lock()
		if !s.running.Load() {
			s.mu.Unlock()
			c.Close()
			return nil
		}
		s.wg.Add(1)
		s.mu.Unlock()

		go func() {
			defer s.wg.Done()
			s.serveConn(ctx, c)
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, c net.Conn) {
	defer c.Close()

	ctx = logger.WithLogger(ctx, s.logger)
	ctx = logger.WithConnID(ctx, ulid.Make().String())

	if s.metrics != nil {
		s.metrics.ConnectionsTotal.Inc()
		s.metrics.ConnectionsActive.Inc()
		defer s.metrics.ConnectionsActive.Dec()
	}

	logger.L(ctx).Debug("connection accepted", "remote", c.RemoteAddr().String())

	if err := s.handleConn(ctx, c); err != nil {
		s.connFailed(ctx, err)
	}
}

// handleConn reads one line, writes one response and returns. A client
// that closes before sending anything gets no response.
func (s *Server) handleConn(ctx context.Context, c net.Conn) error {
	if s.cfg.ReadTimeout > 0 {
		if err := c.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			return &FatalError{Code: ExitConnectionIO, Op: "read", Err: err}
		}
	}

	raw, err := bufio.NewReader(c).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return &FatalError{Code: ExitConnectionIO, Op: "read", Err: err}
		}
		if raw == "" {
			logger.L(ctx).Debug("connection closed without request")
			return nil
		}
	}

	resp := s.handler.Handle(ctx, TrimLine(raw))

	if s.cfg.WriteTimeout > 0 {
		if err := c.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
			return &FatalError{Code: ExitConnectionIO, Op: "write", Err: err}
		}
	}

	bw := bufio.NewWriter(c)
	if _, err := bw.WriteString(resp + "\n"); err != nil {
		return &FatalError{Code: ExitConnectionIO, Op: "write", Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &FatalError{Code: ExitConnectionIO, Op: "write", Err: err}
	}
	return nil
}

func (s *Server) connFailed(ctx context.Context, err error) {
	if s.metrics != nil {
		s.metrics.ConnectionErrors.Inc()
	}

	var fe *FatalError
	if !errors.As(err, &fe) {
		fe = &FatalError{Code: ExitConnectionIO, Op: "connection", Err: err}
	}

	if !s.cfg.FailFast {
		logger.L(ctx).Warn("connection failed", "error", err)
		return
	}

	logger.L(ctx).Error("connection failed, stopping server", "error", err)
	s.fatalOnce.Do(func() {
		s.fatal <- fe
	})
}
