package command

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/msgserver-go/internal/cli/output"
	"github.com/yndnr/msgserver-go/internal/storage/memory"
)

func TestPutGet(t *testing.T) {
	store := memory.New()
	addr := startLineServer(t, store)
	ctx := context.Background()

	out, err := runApp(ctx, App(), "--server", addr, "put", "00000001", "hello", "world")
	if err != nil {
		t.Fatalf("put error = %v", err)
	}
	if out != "OK\n" {
		t.Errorf("put output = %q, want %q", out, "OK\n")
	}

	if msg, ok := store.Get("00000001"); !ok || msg != "hello world" {
		t.Errorf("stored = %q, %v, want %q", msg, ok, "hello world")
	}

	out, err = runApp(ctx, App(), "--server", addr, "get", "00000001")
	if err != nil {
		t.Fatalf("get error = %v", err)
	}
	if out != "hello world\n" {
		t.Errorf("get output = %q, want %q", out, "hello world\n")
	}
}

func TestGet_Missing(t *testing.T) {
	addr := startLineServer(t, memory.New())

	out, err := runApp(context.Background(), App(), "-s", addr, "get", "00000009")
	if err != nil {
		t.Fatalf("get error = %v", err)
	}
	if out != "\n" {
		t.Errorf("get output = %q, want an empty line", out)
	}
}

func TestPut_Rejected(t *testing.T) {
	addr := startLineServer(t, memory.New(memory.WithPutPolicy(memory.PolicyReject)))
	ctx := context.Background()

	if _, err := runApp(ctx, App(), "-s", addr, "put", "00000001", "first"); err != nil {
		t.Fatalf("first put error = %v", err)
	}

	out, err := runApp(ctx, App(), "-s", addr, "put", "00000001", "second")
	if got := exitCode(err); got != ExitRejected {
		t.Errorf("exit code = %d, want %d", got, ExitRejected)
	}
	if out != "NOfirst\n" {
		t.Errorf("output = %q, want %q", out, "NOfirst\n")
	}
}

func TestPut_BadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no key", []string{"put"}},
		{"short key", []string{"put", "0001", "hello"}},
		{"long message", []string{"put", "00000001", strings.Repeat("x", 161)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(context.Background(), App(), append([]string{"-s", "127.0.0.1:1"}, tt.args...)...)
			if got := exitCode(err); got != ExitBadInput {
				t.Errorf("exit code = %d, want %d (err = %v)", got, ExitBadInput, err)
			}
		})
	}
}

func TestRaw(t *testing.T) {
	addr := startLineServer(t, memory.New())

	out, err := runApp(context.Background(), App(), "-s", addr, "raw", "XYZ00000001")
	if err != nil {
		t.Fatalf("raw error = %v", err)
	}
	if out != "NO\n" {
		t.Errorf("raw output = %q, want %q", out, "NO\n")
	}
}

func TestRaw_JSONOutput(t *testing.T) {
	addr := startLineServer(t, memory.New())

	out, err := runApp(context.Background(), App(), "-s", addr, "-o", "json", "raw", "PUT00000001hi")
	if err != nil {
		t.Fatalf("raw error = %v", err)
	}

	var r output.Result
	if err := json.Unmarshal([]byte(out), &r); err != nil {
		t.Fatalf("output %q is not JSON: %v", out, err)
	}
	if r.Command != "raw" || r.Response != "OK" {
		t.Errorf("result = %+v, want raw/OK", r)
	}
}

func TestGet_ConnectionError(t *testing.T) {
	_, err := runApp(context.Background(), App(), "-s", "127.0.0.1:"+freePort(t), "-t", "500ms", "get", "00000001")
	if got := exitCode(err); got != ExitConnection {
		t.Errorf("exit code = %d, want %d (err = %v)", got, ExitConnection, err)
	}
}

func TestShell(t *testing.T) {
	store := memory.New()
	addr := startLineServer(t, store)

	app := App()
	app.Reader = strings.NewReader("PUT00000001hello\nGET00000001\nexit\n")
	out, err := runApp(context.Background(), app, "-s", addr, "shell", "--no-history")
	if err != nil {
		t.Fatalf("shell error = %v", err)
	}
	if !strings.Contains(out, "OK\n") || !strings.Contains(out, "hello\n") {
		t.Errorf("shell output = %q", out)
	}
	if store.Len() != 1 {
		t.Errorf("store.Len() = %d, want 1", store.Len())
	}
}
