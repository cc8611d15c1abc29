// Package registry provides a global registry for scene factories.
// Games register their scenes in init() functions, allowing the
// platform to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/scene"
)

// Factory builds a fresh scene for the given runtime configuration.
// A factory is called once per run; restarting a game means building
// a new scene.
type Factory func(cfg core.RuntimeConfig) (*scene.Scene, error)

// Info contains metadata about a registered scene.
type Info struct {
	ID    string
	Title string
}

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a game's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered scenes, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Title returns the display title for a registered scene ID.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()
	return titles[id]
}

// Create instantiates a new scene by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg core.RuntimeConfig) (*scene.Scene, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(cfg)
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
