// Package registry provides a global registry for level factories.
// Levels register themselves in init() functions, allowing the CLI to
// discover and build them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/breakout-sim/internal/core"
	"github.com/vovakirdan/breakout-sim/internal/games/breakout"
)

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID     string
	Title  string
	Blocks int
}

// Factory creates a fresh level. The runtime config carries the seed for
// levels with a randomized serve.
type Factory func(cfg core.RuntimeConfig) breakout.Level

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]LevelInfo)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if a level with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	l := f(core.DefaultConfig())
	infos[id] = LevelInfo{
		ID:     id,
		Title:  l.Name,
		Blocks: len(l.Blocks),
	}
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a level by its ID.
// Returns an error if the level ID is not registered.
func Create(id string, cfg core.RuntimeConfig) (breakout.Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return breakout.Level{}, fmt.Errorf("registry: unknown level %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
