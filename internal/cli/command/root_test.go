package command

import (
	"context"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "msgserver-cli" {
		t.Errorf("Name = %q, want %q", app.Name, "msgserver-cli")
	}
	if app.Usage == "" {
		t.Error("Usage should not be empty")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"put", "get", "raw", "shell"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, flag := range App().Flags {
		flagNames[flag.Names()[0]] = true
	}

	for _, name := range []string{"server", "timeout", "output"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestApp_BadOutputFormat(t *testing.T) {
	_, err := runApp(context.Background(), App(), "--output", "xml", "get", "00000001")
	if got := exitCode(err); got != ExitBadInput {
		t.Errorf("exit code = %d, want %d (err = %v)", got, ExitBadInput, err)
	}
}

func TestApp_ServerFromEnv(t *testing.T) {
	t.Setenv("MSGSERVER_ADDR", "example.invalid:1")

	var got string
	app := App()
	app.Commands[0].Action = func(c *cli.Context) error {
		got = ParseGlobalFlags(c).Server
		return nil
	}
	if _, err := runApp(context.Background(), app, "put", "00000001"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "example.invalid:1" {
		t.Errorf("server = %q, want %q", got, "example.invalid:1")
	}
}
