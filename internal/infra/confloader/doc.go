// Package confloader loads configuration for msgserver.
//
// It uses koanf to merge sources with priority Env > File > Default:
// the target struct carries the defaults, an optional YAML file overrides
// them, and MSGSERVER_ environment variables override both.
//
// Watcher reports writes to the configuration file through fsnotify so
// reloadable settings (the log level) can be applied without a restart.
package confloader
