package lineserver

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/yndnr/msgserver-go/internal/core/domain"
)

// Process exit codes, one per failure category.
const (
	ExitConnectionIO  = 255 // read or write failure on an accepted connection
	ExitListen        = 254 // bind or accept failure
	ExitPermission    = 253 // not allowed to bind the port
	ExitInvalidPort   = 252 // port is not an integer in 0..65535
	ExitTransportMode = 250 // unsupported listener network
	ExitUsage         = 157 // wrong command line
)

// FatalError is a failure that ends the server. Code is the exit status
// the process should terminate with.
type FatalError struct {
	Code int
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *FatalError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit status for this failure.
func (e *FatalError) ExitCode() int {
	return e.Code
}

// ErrUnsupportedNetwork is wrapped by the error returned for a listener
// network other than tcp, tcp4 or tcp6.
var ErrUnsupportedNetwork = errors.New("unsupported network")

// supportedNetworks lists the listener networks the server accepts.
var supportedNetworks = map[string]bool{
	"tcp":  true,
	"tcp4": true,
	"tcp6": true,
}

// CheckNetwork returns a transport mode FatalError unless network is supported.
func CheckNetwork(network string) error {
	if supportedNetworks[network] {
		return nil
	}
	return &FatalError{
		Code: ExitTransportMode,
		Op:   "listen",
		Err:  fmt.Errorf("%w %q", ErrUnsupportedNetwork, network),
	}
}

// ParsePort parses a decimal port number in 0..65535.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FatalError{
			Code: ExitInvalidPort,
			Op:   "parse port",
			Err:  domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("port %q is not a number", s)).WithCause(err),
		}
	}
	if port < 0 || port > 65535 {
		return 0, &FatalError{
			Code: ExitInvalidPort,
			Op:   "parse port",
			Err:  domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("port %d out of range", port)),
		}
	}
	return port, nil
}

// ClassifyListenError wraps a bind failure into a FatalError with the
// matching exit code. A nil err yields nil.
func ClassifyListenError(err error) *FatalError {
	if err == nil {
		return nil
	}
	var fe *FatalError
	if errors.As(err, &fe) {
		return fe
	}
	if errors.Is(err, os.ErrPermission) {
		return &FatalError{Code: ExitPermission, Op: "listen", Err: err}
	}
	return &FatalError{Code: ExitListen, Op: "listen", Err: err}
}
