// Package registry provides a global registry for renderer factories.
// Renderers register themselves in init() functions, allowing the CLI
// to pick one by name (--renderer) without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/audio"
	"github.com/vovakirdan/t2048/internal/core"
	"github.com/vovakirdan/t2048/internal/games/t2048"
)

// Session is one local game handed to a renderer.
type Session struct {
	Game    *t2048.Game
	Runtime core.RuntimeConfig // screen size, frame rate and seed
	Logger  *log.Logger
	Chime   *audio.Chime // may be nil
}

// Renderer drives a game on a terminal until the player quits.
// Renderers own input mapping, timing and drawing; the game stays pure.
type Renderer interface {
	// Name returns the identifier used with --renderer (e.g., "bubbletea").
	Name() string

	// Description returns a one-line summary for help output.
	Description() string

	// Run plays the session and returns when the player quits or ctx ends.
	Run(ctx context.Context, s Session) error
}

// RendererInfo contains metadata about a registered renderer.
type RendererInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a renderer.
type Factory func() Renderer

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a renderer factory to the registry.
// Typically called from a renderer's init() function.
// Panics if a renderer with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: renderer %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered renderers, sorted by name.
func List() []RendererInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]RendererInfo, 0, len(factories))
	for name := range factories {
		result = append(result, RendererInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a renderer by its name.
// Returns an error if the name is not registered.
func Create(name string) (Renderer, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown renderer %q", name)
	}

	return f(), nil
}

// Exists checks if a renderer with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
