package connection

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/yndnr/msgserver-go/internal/core/domain"
)

// DefaultTimeout bounds one request when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// ErrNoResponse is returned when the server closes without answering.
var ErrNoResponse = errors.New("connection: server closed without response")

// ErrMultiline is returned for a request that would span several lines.
var ErrMultiline = errors.New("connection: request must be a single line")

// LineClient sends single-line requests to a msgserver.
type LineClient struct {
	network string
	addr    string
	timeout time.Duration
	dialer  net.Dialer
}

// NewLineClient creates a client for the server at addr.
func NewLineClient(addr string, timeout time.Duration) *LineClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &LineClient{
		network: "tcp",
		addr:    addr,
		timeout: timeout,
	}
}

// Addr returns the server address.
func (c *LineClient) Addr() string {
	return c.addr
}

// Execute sends line and returns the response without its terminator.
func (c *LineClient) Execute(ctx context.Context, line string) (string, error) {
	if strings.ContainsAny(line, "\r\n") {
		return "", ErrMultiline
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, c.network, c.addr)
	if err != nil {
		return "", fmt.Errorf("dial %s: %w", c.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return "", err
		}
	}

	if _, err := conn.Write([]byte(line + "\n")); err != nil {
		return "", fmt.Errorf("write request: %w", err)
	}

	response, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && response == "" {
			return "", ErrNoResponse
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read response: %w", err)
		}
	}

	return strings.TrimSuffix(strings.TrimSuffix(response, "\n"), "\r"), nil
}

// Put stores msg under key. It returns the raw server response.
func (c *LineClient) Put(ctx context.Context, key, msg string) (string, error) {
	if err := domain.ValidateKey(key); err != nil {
		return "", err
	}
	if err := domain.ValidateMessage(msg); err != nil {
		return "", err
	}
	return c.Execute(ctx, "PUT"+key+msg)
}

// Get fetches the message stored under key. An empty result means the key
// is absent or holds an empty message.
func (c *LineClient) Get(ctx context.Context, key string) (string, error) {
	if err := domain.ValidateKey(key); err != nil {
		return "", err
	}
	return c.Execute(ctx, "GET"+key)
}
