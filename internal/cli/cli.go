// Package cli provides the command-line interface for setupgen.
// It routes the first argument to a registered Command; the commands
// themselves live in the commands subpackage.
package cli

import (
	"fmt"
	"sort"

	"setupgen/internal/config"
	e "setupgen/pkg/errors"
	"setupgen/pkg/version"
)

// Command represents a CLI command
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// CLI represents the command-line interface
type CLI struct {
	config   *config.Config
	commands map[string]Command
}

// New creates a new CLI instance. A nil config means built-in defaults.
func New(cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	c := &CLI{config: cfg, commands: make(map[string]Command)}
	c.registerCommands()
	return c
}

func (c *CLI) register(cmd Command) {
	c.commands[cmd.Name()] = cmd
}

// registerCommands registers all available commands
func (c *CLI) registerCommands() {
	c.register(NewGlobCommand(c.config))
	c.register(NewMirrorCommand())
	c.register(NewCopyCommand(c.config))
	c.register(NewInitCommand(c.config))
	c.register(NewMkdirCommand())
	c.register(NewRunCommand(c.config))
	c.register(NewOptionCommand())
	c.register(NewInfoCommand())
	c.register(NewWatchCommand(c.config))
}

// Run executes the CLI with given arguments; args[0] is the program name.
func (c *CLI) Run(args []string) error {
	if len(args) < 2 {
		c.printUsage()
		return nil
	}
	switch args[1] {
	case "help", "--help", "-h":
		c.printUsage()
		return nil
	case "version", "--version":
		fmt.Printf("setupgen %s\n", version.Version)
		return nil
	default:
		if cmd, ok := c.commands[args[1]]; ok {
			return cmd.Run(args[2:])
		}
		c.printUsage()
		return e.New(e.ErrUsage, "unknown command: "+args[1])
	}
}

func (c *CLI) printUsage() {
	fmt.Println("Usage: setupgen <command> [args]")
	fmt.Println("Commands:")
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-8s %s\n", name, c.commands[name].Description())
	}
	fmt.Println("  version  Show version")
	fmt.Println("  help     Show this help")
	fmt.Println("Global flags: --verbose, --debug")
}
