package console

import (
	"context"
	"strings"
)

// CommandHandler processes a matched command.
type CommandHandler func(ctx context.Context, params []string) (*Response, error)

// CommandDefinition defines a console command with its variations.
type CommandDefinition struct {
	Canonical   string
	Variations  []string
	ShortForms  []string
	Handler     CommandHandler
	Usage       string
	Description string
}

// CommandRegistry holds all available console commands.
type CommandRegistry struct {
	commands map[string]*CommandDefinition
	order    []string
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{commands: make(map[string]*CommandDefinition)}
}

// Register adds a command under its canonical name.
func (r *CommandRegistry) Register(cmd *CommandDefinition) {
	r.commands[cmd.Canonical] = cmd
	r.order = append(r.order, cmd.Canonical)
}

// All returns the commands in registration order, for help output.
func (r *CommandRegistry) All() []*CommandDefinition {
	out := make([]*CommandDefinition, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

// FindCommand matches input against canonical names, variations and short
// forms. The remaining tokens become the command parameters.
func (r *CommandRegistry) FindCommand(input string) (*CommandDefinition, []string, bool) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(input)))
	if len(tokens) == 0 {
		return nil, nil, false
	}

	head, params := tokens[0], tokens[1:]

	if cmd, ok := r.commands[head]; ok {
		return cmd, params, true
	}

	for _, name := range r.order {
		cmd := r.commands[name]
		for _, v := range cmd.Variations {
			if head == v {
				return cmd, params, true
			}
		}
		for _, s := range cmd.ShortForms {
			if head == s {
				return cmd, params, true
			}
		}
	}

	return nil, nil, false
}
