// ABOUTME: Slash command registry and dispatch for the chat editor
// ABOUTME: Provides clear/cls, exit/quit, plugin and help; unknown names get a fuzzy hint

package commands

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mauromedda/pichat/pkg/tui/fuzzy"
)

// Prefix marks editor text as a command instead of a prompt.
const Prefix = "/"

// ErrExit is returned by /exit. It is a request, not a failure.
var ErrExit = errors.New("exit requested")

// Command represents a slash command.
type Command struct {
	Name        string
	Aliases     []string
	Usage       string
	Description string
	Execute     func(ctx *Context, args []string) (string, error)
}

// Context gives commands access to app state. All callbacks are nilable;
// a command whose callback is nil reports that it is not available.
type Context struct {
	ClearTranscript func()
	LoadPlugin      func(path string) error
	ActivePlugin    func() string
}

// Registry holds all registered slash commands.
type Registry struct {
	commands map[string]*Command
	aliases  map[string]string
}

// NewRegistry creates a registry with all core commands registered.
func NewRegistry() *Registry {
	r := &Registry{
		commands: make(map[string]*Command),
		aliases:  make(map[string]string),
	}
	r.registerCoreCommands()
	return r
}

// Register adds cmd, replacing any command or alias with the same name.
func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	for _, a := range cmd.Aliases {
		r.aliases[a] = cmd.Name
	}
}

// Get returns a command by name or alias.
func (r *Registry) Get(name string) (*Command, bool) {
	if canonical, ok := r.aliases[name]; ok {
		name = canonical
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns all commands sorted by name for deterministic output.
func (r *Registry) List() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// names returns every name and alias.
func (r *Registry) names() []string {
	out := make([]string, 0, len(r.commands)+len(r.aliases))
	for name := range r.commands {
		out = append(out, name)
	}
	for alias := range r.aliases {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}

// IsCommand reports whether input starts with the command prefix.
func IsCommand(input string) bool {
	return strings.HasPrefix(input, Prefix)
}

// Parse strips the prefix and splits the rest on whitespace into a name
// and its arguments.
func Parse(input string) (name string, args []string) {
	fields := strings.Fields(strings.TrimPrefix(input, Prefix))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

// Dispatch parses a "/command args" input, looks up the command and runs it.
func (r *Registry) Dispatch(ctx *Context, input string) (string, error) {
	if !IsCommand(input) {
		return "", fmt.Errorf("not a command: %q", input)
	}
	name, args := Parse(input)
	if name == "" {
		return "", fmt.Errorf("empty command; try %shelp", Prefix)
	}

	cmd, ok := r.Get(name)
	if !ok {
		if guess, ok := fuzzy.Best(name, r.names()); ok {
			return "", fmt.Errorf("unknown command %q (did you mean %s%s?)", name, Prefix, guess)
		}
		return "", fmt.Errorf("unknown command %q", name)
	}
	return cmd.Execute(ctx, args)
}

// registerCoreCommands adds all built-in slash commands to the registry.
func (r *Registry) registerCoreCommands() {
	core := []*Command{
		{
			Name:        "clear",
			Aliases:     []string{"cls"},
			Description: "Clear the transcript",
			Execute: func(ctx *Context, _ []string) (string, error) {
				if ctx.ClearTranscript == nil {
					return "Clear not available.", nil
				}
				ctx.ClearTranscript()
				return "", nil
			},
		},
		{
			Name:        "exit",
			Aliases:     []string{"quit"},
			Description: "Exit the application",
			Execute: func(_ *Context, _ []string) (string, error) {
				return "", ErrExit
			},
		},
		{
			Name:        "plugin",
			Usage:       "[path]",
			Description: "Show the active plugin or load another",
			Execute: func(ctx *Context, args []string) (string, error) {
				switch len(args) {
				case 0:
					if ctx.ActivePlugin == nil {
						return "Plugin info not available.", nil
					}
					if p := ctx.ActivePlugin(); p != "" {
						return "Active plugin: " + p, nil
					}
					return "No plugin loaded.", nil
				case 1:
					if ctx.LoadPlugin == nil {
						return "Plugin loading not available.", nil
					}
					if err := ctx.LoadPlugin(args[0]); err != nil {
						return "", err
					}
					return "Loaded plugin " + args[0] + ".", nil
				}
				return "", fmt.Errorf("usage: %splugin [path]", Prefix)
			},
		},
		{
			Name:        "help",
			Description: "Show available commands",
			Execute: func(_ *Context, _ []string) (string, error) {
				var b strings.Builder
				b.WriteString("Available commands:\n")
				for _, cmd := range r.List() {
					names := Prefix + cmd.Name
					for _, a := range cmd.Aliases {
						names += ", " + Prefix + a
					}
					if cmd.Usage != "" {
						names += " " + cmd.Usage
					}
					fmt.Fprintf(&b, "  %-18s %s\n", names, cmd.Description)
				}
				b.WriteString("\nCtrl+R runs the editor text, Tab switches focus, Ctrl+C quits.")
				return b.String(), nil
			},
		},
	}
	for _, cmd := range core {
		r.Register(cmd)
	}
}
