package cli

import (
	"setupgen/internal/cli/commands"
	"setupgen/internal/config"
)

type globCmd struct{ cfg *config.Config }

func (globCmd) Name() string        { return "glob" }
func (globCmd) Description() string { return "List files or directories matching a pattern" }
func (c globCmd) Run(args []string) error {
	return commands.Glob(c.cfg, args)
}

type mirrorCmd struct{}

func (mirrorCmd) Name() string        { return "mirror" }
func (mirrorCmd) Description() string { return "Recreate a directory layout elsewhere" }
func (mirrorCmd) Run(args []string) error {
	return commands.Mirror(args)
}

type copyCmd struct{ cfg *config.Config }

func (copyCmd) Name() string        { return "copy" }
func (copyCmd) Description() string { return "Link or copy source files into a build tree" }
func (c copyCmd) Run(args []string) error {
	return commands.Copy(c.cfg, args)
}

type initCmd struct{ cfg *config.Config }

func (initCmd) Name() string        { return "init" }
func (initCmd) Description() string { return "Write package marker files" }
func (c initCmd) Run(args []string) error {
	return commands.Init(c.cfg, args)
}

type mkdirCmd struct{}

func (mkdirCmd) Name() string        { return "mkdir" }
func (mkdirCmd) Description() string { return "Create directories, tolerating existing ones" }
func (mkdirCmd) Run(args []string) error {
	return commands.Mkdir(args)
}

type runCmd struct{ cfg *config.Config }

func (runCmd) Name() string        { return "run" }
func (runCmd) Description() string { return "Run a command and log its output" }
func (c runCmd) Run(args []string) error {
	return commands.Run(c.cfg, args)
}

type optionCmd struct{}

func (optionCmd) Name() string        { return "option" }
func (optionCmd) Description() string { return "Extract a --name value option from arguments" }
func (optionCmd) Run(args []string) error {
	return commands.Option(args)
}

type infoCmd struct{}

func (infoCmd) Name() string        { return "info" }
func (infoCmd) Description() string { return "Show build host information" }
func (infoCmd) Run(args []string) error {
	return commands.Info(args)
}

type watchCmd struct{ cfg *config.Config }

func (watchCmd) Name() string        { return "watch" }
func (watchCmd) Description() string { return "Keep a build tree in sync with its sources" }
func (c watchCmd) Run(args []string) error {
	return commands.Watch(c.cfg, args)
}

// Factory functions to create command instances
func NewGlobCommand(cfg *config.Config) Command  { return globCmd{cfg: cfg} }
func NewMirrorCommand() Command                  { return mirrorCmd{} }
func NewCopyCommand(cfg *config.Config) Command  { return copyCmd{cfg: cfg} }
func NewInitCommand(cfg *config.Config) Command  { return initCmd{cfg: cfg} }
func NewMkdirCommand() Command                   { return mkdirCmd{} }
func NewRunCommand(cfg *config.Config) Command   { return runCmd{cfg: cfg} }
func NewOptionCommand() Command                  { return optionCmd{} }
func NewInfoCommand() Command                    { return infoCmd{} }
func NewWatchCommand(cfg *config.Config) Command { return watchCmd{cfg: cfg} }
