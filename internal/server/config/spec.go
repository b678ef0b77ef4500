package config

import "time"

// ServerConfig is the root configuration for msgserver.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Store  StoreSection  `koanf:"store"`
	Admin  AdminSection  `koanf:"admin"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures the line protocol listener.
type ServerSection struct {
	// Network is the listener network: tcp, tcp4 or tcp6.
	// Any other value is a transport mode error at startup.
	Network string `koanf:"network"`

	// Host is the bind host. Empty binds every local interface.
	Host string `koanf:"host"`

	// ReadTimeout bounds reading the request line (0 = no timeout).
	ReadTimeout time.Duration `koanf:"read_timeout"`

	// WriteTimeout bounds writing the response line (0 = no timeout).
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// FailFast stops the whole server on the first connection I/O error.
	// When false the error only ends that connection.
	FailFast bool `koanf:"fail_fast"`

	// ShutdownTimeout bounds graceful shutdown after a signal.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StoreSection configures the message store.
type StoreSection struct {
	// PutPolicy is "overwrite" (last write wins) or "reject" (first write wins).
	PutPolicy string `koanf:"put_policy"`
}

// AdminSection configures the HTTP admin endpoint.
type AdminSection struct {
	// Addr is the admin listen address; empty disables the endpoint.
	Addr string `koanf:"addr"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
