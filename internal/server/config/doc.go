// Package config provides server configuration for msgserver.
//
//   - spec.go: ServerConfig struct definition
//   - default.go: Default configuration values
//   - verify.go: Validation of loaded values
//
// Configuration is loaded via internal/infra/confloader from an optional
// YAML file and MSGSERVER_ environment variables. The listening port is not
// part of it: it is the single positional argument of the server command.
package config
