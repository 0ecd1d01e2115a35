package plugins

import (
	"context"
	"slices"
	"sync"

	"github.com/shvbsle/termrex/internal/log"
)

// Plugin is a mode the launcher can start, such as a run or the sprite
// gallery. A plugin owns the terminal until Launch returns; the launcher
// comes back afterwards.
type Plugin interface {
	// Name returns the unique identifier (kebab-case recommended).
	Name() string

	// Description is shown next to the name in the launcher.
	Description() string

	// Commands returns aliases that pick this plugin (e.g., ["run", "play"]).
	Commands() []string

	// Launch runs the mode until the player leaves it or ctx is done.
	Launch(ctx context.Context) error
}

// Func adapts a function to a Plugin.
type Func struct {
	ID      string
	About   string
	Aliases []string
	Run     func(ctx context.Context) error
}

func (f *Func) Name() string {
	return f.ID
}

func (f *Func) Description() string {
	return f.About
}

func (f *Func) Commands() []string {
	return f.Aliases
}

func (f *Func) Launch(ctx context.Context) error {
	return f.Run(ctx)
}

type Registry struct {
	mu             sync.RWMutex
	plugins        map[string]Plugin
	commandMap     map[string]Plugin
	orderedPlugins []Plugin
}

func NewRegistry() *Registry {
	return &Registry{
		plugins:    make(map[string]Plugin),
		commandMap: make(map[string]Plugin),
	}
}

// Register adds p. A plugin registered under an existing name replaces the
// old one in place, keeping the launcher order stable.
func (r *Registry) Register(p Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, exists := r.plugins[p.Name()]; exists {
		log.G().Warn("plugin already registered", "plugin", p.Name())
		i := slices.Index(r.orderedPlugins, old)
		r.orderedPlugins[i] = p
		for cmd, owner := range r.commandMap {
			if owner == old {
				delete(r.commandMap, cmd)
			}
		}
	} else {
		r.orderedPlugins = append(r.orderedPlugins, p)
	}
	r.plugins[p.Name()] = p

	for _, cmd := range append([]string{p.Name()}, p.Commands()...) {
		if existing, exists := r.commandMap[cmd]; exists && existing.Name() != p.Name() {
			log.G().Warn("command collision",
				"command", cmd,
				"existing_plugin", existing.Name(),
				"new_plugin", p.Name())
		}
		r.commandMap[cmd] = p
	}
}

func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	return p, ok
}

// GetByCommand finds a plugin by its name or one of its aliases.
func (r *Registry) GetByCommand(cmd string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.commandMap[cmd]
	return p, ok
}

// List returns the plugins in registration order.
func (r *Registry) List() []Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.orderedPlugins)
}

// CommandSuggestions returns every name and alias, sorted.
func (r *Registry) CommandSuggestions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	suggestions := make([]string, 0, len(r.commandMap))
	for cmd := range r.commandMap {
		suggestions = append(suggestions, cmd)
	}
	slices.Sort(suggestions)
	return suggestions
}
