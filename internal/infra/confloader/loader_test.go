package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Server struct {
		Host        string        `koanf:"host"`
		ReadTimeout time.Duration `koanf:"read_timeout"`
		FailFast    bool          `koanf:"fail_fast"`
	} `koanf:"server"`
	Store struct {
		PutPolicy string `koanf:"put_policy"`
	} `koanf:"store"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "msgserver.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if NewLoader().envPrefix != DefaultEnvPrefix {
		t.Errorf("default envPrefix = %q, want %q", NewLoader().envPrefix, DefaultEnvPrefix)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "127.0.0.1"
  read_timeout: 2s
store:
  put_policy: reject
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got := l.GetString("store.put_policy"); got != "reject" {
		t.Errorf("store.put_policy = %q, want %q", got, "reject")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	if err := NewLoader().LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	if err := NewLoader().LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv_KeepsMultiWordKeys(t *testing.T) {
	t.Setenv("MSGSERVER_SERVER_READ_TIMEOUT", "3s")
	t.Setenv("MSGSERVER_STORE_PUT_POLICY", "reject")

	l := NewLoader()
	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("ReadTimeout = %v, want 3s", cfg.Server.ReadTimeout)
	}
	if cfg.Store.PutPolicy != "reject" {
		t.Errorf("PutPolicy = %q, want %q", cfg.Store.PutPolicy, "reject")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "from-file"
`)
	t.Setenv("MSGSERVER_SERVER_HOST", "from-env")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "from-env" {
		t.Errorf("Host = %q, want %q (env should override file)", cfg.Server.Host, "from-env")
	}
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
store:
  put_policy: reject
`)

	var cfg testConfig
	cfg.Server.FailFast = true
	cfg.Server.Host = "default-host"

	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Server.FailFast || cfg.Server.Host != "default-host" {
		t.Errorf("defaults overwritten: %+v", cfg.Server)
	}
	if cfg.Store.PutPolicy != "reject" {
		t.Errorf("PutPolicy = %q, want %q", cfg.Store.PutPolicy, "reject")
	}
}

func TestLoader_Load_BadFile(t *testing.T) {
	path := writeConfig(t, "server: [unclosed")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestLoader_IsLoaded(t *testing.T) {
	l := NewLoader()
	if l.IsLoaded() {
		t.Error("IsLoaded() should be false before Load()")
	}

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load()")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"server.host":      "localhost",
		"server.fail_fast": true,
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if got := l.GetString("server.host"); got != "localhost" {
		t.Errorf("server.host = %q, want %q", got, "localhost")
	}
	if !l.GetBool("server.fail_fast") {
		t.Error("server.fail_fast should be true")
	}
	if len(l.Keys()) < 2 {
		t.Errorf("Keys() returned %d keys, want at least 2", len(l.Keys()))
	}
}
