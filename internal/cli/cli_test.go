package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"setupgen/internal/config"
	e "setupgen/pkg/errors"
	"setupgen/pkg/version"
)

// mockCommand is a test command implementation
type mockCommand struct {
	name        string
	description string
	runFunc     func(args []string) error
	runArgs     []string
}

func (m *mockCommand) Name() string        { return m.name }
func (m *mockCommand) Description() string { return m.description }
func (m *mockCommand) Run(args []string) error {
	m.runArgs = args
	if m.runFunc != nil {
		return m.runFunc(args)
	}
	return nil
}

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old
	return <-done
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config *config.Config
	}{
		{name: "with nil config", config: nil},
		{name: "with custom config", config: &config.Config{SourcePattern: "*.pyx", Symlink: true}},
		{name: "with empty config", config: &config.Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := New(tt.config)
			if cli == nil {
				t.Fatal("New() returned nil")
			}
			if tt.config != nil && cli.config != tt.config {
				t.Errorf("New() config = %v, want %v", cli.config, tt.config)
			}
			if tt.config == nil && cli.config == nil {
				t.Error("New(nil) should fall back to the default config")
			}
			for _, name := range []string{"glob", "mirror", "copy", "init", "mkdir", "run", "option", "info", "watch"} {
				if _, exists := cli.commands[name]; !exists {
					t.Errorf("Expected command %q not registered", name)
				}
			}
		})
	}
}

func TestCLI_register(t *testing.T) {
	cli := &CLI{config: config.Default(), commands: make(map[string]Command)}
	cmd := &mockCommand{name: "test", description: "Test command"}

	cli.register(cmd)

	registered, exists := cli.commands["test"]
	if !exists {
		t.Fatal("Command was not registered")
	}
	if registered != cmd {
		t.Error("Registered command is not the same instance")
	}
}

func TestCLI_registerCommands_Descriptions(t *testing.T) {
	cli := New(nil)
	for name, cmd := range cli.commands {
		if cmd.Name() != name {
			t.Errorf("command registered as %q reports name %q", name, cmd.Name())
		}
		if cmd.Description() == "" {
			t.Errorf("command %q has no description", name)
		}
	}
}

func TestCLI_Run(t *testing.T) {
	originalVersion := version.Version
	defer func() { version.Version = originalVersion }()

	tests := []struct {
		name           string
		args           []string
		expectError    bool
		errorCode      e.ErrorCode
		errorContains  string
		outputContains []string
		setupFunc      func() *CLI
	}{
		{
			name: "no arguments",
			args: []string{"setupgen"},
			outputContains: []string{
				"Usage: setupgen <command> [args]",
				"Commands:",
				"copy ",
				"version  Show version",
				"help     Show this help",
			},
		},
		{
			name:           "help",
			args:           []string{"setupgen", "help"},
			outputContains: []string{"Usage: setupgen <command> [args]"},
		},
		{
			name:           "help flag -h",
			args:           []string{"setupgen", "-h"},
			outputContains: []string{"Usage: setupgen <command> [args]"},
		},
		{
			name:           "version command",
			args:           []string{"setupgen", "version"},
			outputContains: []string{"setupgen test-version"},
			setupFunc: func() *CLI {
				version.Version = "test-version"
				return New(nil)
			},
		},
		{
			name:           "version flag --version",
			args:           []string{"setupgen", "--version"},
			outputContains: []string{"setupgen 1.0.0"},
			setupFunc: func() *CLI {
				version.Version = "1.0.0"
				return New(nil)
			},
		},
		{
			name:           "unknown command",
			args:           []string{"setupgen", "unknown"},
			expectError:    true,
			errorCode:      e.ErrUsage,
			errorContains:  "unknown command: unknown",
			outputContains: []string{"Usage: setupgen <command> [args]"},
		},
		{
			name:          "command with error",
			args:          []string{"setupgen", "error"},
			expectError:   true,
			errorContains: "command failed",
			setupFunc: func() *CLI {
				cli := New(nil)
				cli.register(&mockCommand{name: "error", runFunc: func(args []string) error {
					return fmt.Errorf("command failed")
				}})
				return cli
			},
		},
		{
			name:           "empty args slice",
			args:           []string{},
			outputContains: []string{"Usage: setupgen <command> [args]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := New(nil)
			if tt.setupFunc != nil {
				cli = tt.setupFunc()
			}

			var err error
			output := captureOutput(func() {
				err = cli.Run(tt.args)
			})

			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if tt.errorCode != "" && !e.HasCode(err, tt.errorCode) {
				t.Errorf("Expected error code %s, got %v", tt.errorCode, err)
			}
			if tt.errorContains != "" && (err == nil || !strings.Contains(err.Error(), tt.errorContains)) {
				t.Errorf("Expected error containing %q, got %v", tt.errorContains, err)
			}
			for _, expected := range tt.outputContains {
				if !strings.Contains(output, expected) {
					t.Errorf("Expected output to contain %q, got:\n%s", expected, output)
				}
			}
		})
	}
}

func TestCLI_Run_PassesArguments(t *testing.T) {
	cli := New(nil)
	mock := &mockCommand{name: "test"}
	cli.register(mock)

	if err := cli.Run([]string{"setupgen", "test", "arg1", "--flag"}); err != nil {
		t.Fatal(err)
	}
	if len(mock.runArgs) != 2 || mock.runArgs[0] != "arg1" || mock.runArgs[1] != "--flag" {
		t.Fatalf("command received %v", mock.runArgs)
	}
}

func TestCLI_Run_RealCommand(t *testing.T) {
	dir := t.TempDir()
	cli := New(nil)
	output := captureOutput(func() {
		if err := cli.Run([]string{"setupgen", "mkdir", dir + "/made"}); err != nil {
			t.Errorf("mkdir: %v", err)
		}
	})
	if !strings.Contains(output, "made") {
		t.Fatalf("unexpected output %q", output)
	}
	if fi, err := os.Stat(dir + "/made"); err != nil || !fi.IsDir() {
		t.Fatalf("directory not created: %v", err)
	}
}
