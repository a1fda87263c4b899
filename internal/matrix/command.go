package matrix

import (
	"fmt"
	"strings"
)

// Command is one verification stage of the sweep.
type Command int

const (
	Check Command = iota
	Lint
	Build
	Test
)

var commandNames = [...]string{"check", "lint", "build", "test"}

// Commands returns the full verification sequence in canonical order.
func Commands() []Command {
	return []Command{Check, Lint, Build, Test}
}

// String returns the stable lowercase name used by the -commands flag.
func (c Command) String() string {
	return commandNames[c]
}

// Verb returns the subcommand passed to the external tool. Lint maps to
// clippy, cargo's lint front end; the others match their names.
func (c Command) Verb() string {
	if c == Lint {
		return "clippy"
	}
	return c.String()
}

// AllTargets reports whether the invocation should carry --all-targets.
// Test omits it: --all-targets would skip doctests.
func (c Command) AllTargets() bool {
	return c != Test
}

// Args renders the full tool argument list for this command under cfg.
func (c Command) Args(cfg Config) []string {
	args := []string{c.Verb()}
	if c.AllTargets() {
		args = append(args, "--all-targets")
	}
	return append(args, cfg.Flags()...)
}

// ParseCommands parses a comma-separated command subset. The result keeps
// the canonical check,lint,build,test order regardless of how the subset is
// written, and duplicates collapse. An empty input selects every command.
func ParseCommands(s string) ([]Command, error) {
	if strings.TrimSpace(s) == "" {
		return Commands(), nil
	}
	selected := make(map[Command]bool)
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		found := false
		for cmd, cmdName := range commandNames {
			if name == cmdName {
				selected[Command(cmd)] = true
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown command %q: must be one of %s", name, strings.Join(commandNames[:], ", "))
		}
	}
	var commands []Command
	for _, cmd := range Commands() {
		if selected[cmd] {
			commands = append(commands, cmd)
		}
	}
	return commands, nil
}
