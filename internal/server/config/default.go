package config

import "time"

// Default configuration values.
const (
	DefaultNetwork         = "tcp"
	DefaultShutdownTimeout = 5 * time.Second
	DefaultPutPolicy       = "overwrite"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Default returns the default server configuration.
//
// The defaults reproduce the plain message server: all interfaces, no
// timeouts, fail-fast on connection errors, last write wins, no admin port.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			Network:         DefaultNetwork,
			FailFast:        true,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Store: StoreSection{
			PutPolicy: DefaultPutPolicy,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
