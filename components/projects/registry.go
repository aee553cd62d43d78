package projects

import (
	"context"
	"fmt"
	"sync"
)

// CardData is the payload a card provider produces for rendering.
type CardData map[string]any

// CardContext carries the definition, config, and locale for a fetch.
type CardContext struct {
	Definition CardDefinition
	Config     map[string]any
	Locale     string
}

// CardProvider resolves the data behind a dashboard card.
type CardProvider interface {
	Fetch(ctx context.Context, meta CardContext) (CardData, error)
}

// CardProviderFunc adapts a function to the CardProvider interface.
type CardProviderFunc func(ctx context.Context, meta CardContext) (CardData, error)

// Fetch invokes the wrapped function.
func (f CardProviderFunc) Fetch(ctx context.Context, meta CardContext) (CardData, error) {
	return f(ctx, meta)
}

// CardHook lets packages register cards/providers during init().
type CardHook func(reg *Registry) error

var (
	globalHookMu sync.Mutex
	globalHooks  []CardHook
)

// RegisterCardHook registers a hook executed against new registries.
func RegisterCardHook(h CardHook) {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	globalHooks = append(globalHooks, h)
}

// Registry stores card definitions and providers discoverable via hooks or
// manifests.
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]CardDefinition
	providers   map[string]CardProvider
	configs     map[string]map[string]any
}

// NewRegistry builds an empty registry and applies global hooks.
func NewRegistry() *Registry {
	reg := &Registry{
		definitions: map[string]CardDefinition{},
		providers:   map[string]CardProvider{},
		configs:     map[string]map[string]any{},
	}
	reg.registerDefaults()
	_ = reg.ApplyHooks()
	return reg
}

func (r *Registry) registerDefaults() {
	for _, def := range DefaultCardDefinitions() {
		_ = r.RegisterDefinition(def)
	}
}

// ApplyHooks executes registered card hooks.
func (r *Registry) ApplyHooks() error {
	globalHookMu.Lock()
	defer globalHookMu.Unlock()
	for _, hook := range globalHooks {
		if err := hook(r); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDefinition stores card metadata.
func (r *Registry) RegisterDefinition(def CardDefinition) error {
	if def.Code == "" {
		return fmt.Errorf("card definition code is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.definitions[def.Code] = def
	return nil
}

// RegisterProvider associates a provider implementation with a definition.
func (r *Registry) RegisterProvider(code string, provider CardProvider) error {
	if code == "" {
		return fmt.Errorf("card definition code is required to register provider")
	}
	if provider == nil {
		return fmt.Errorf("provider cannot be nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.definitions[code]; !ok {
		return fmt.Errorf("card definition %s not found", code)
	}
	r.providers[code] = provider
	return nil
}

// SetCardConfig stores the configuration payload for a registered card.
func (r *Registry) SetCardConfig(code string, config map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.definitions[code]; !ok {
		return fmt.Errorf("card definition %s not found", code)
	}
	if config == nil {
		delete(r.configs, code)
		return nil
	}
	r.configs[code] = config
	return nil
}

// CardConfig fetches the stored configuration for a card, nil when unset.
func (r *Registry) CardConfig(code string) map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	config, ok := r.configs[code]
	if !ok {
		return nil
	}
	out := make(map[string]any, len(config))
	for k, v := range config {
		out[k] = v
	}
	return out
}

// Definition fetches a card definition by code.
func (r *Registry) Definition(code string) (CardDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[code]
	return def, ok
}

// Provider fetches a card provider by code.
func (r *Registry) Provider(code string) (CardProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	provider, ok := r.providers[code]
	return provider, ok
}

// Definitions returns all registered definitions.
func (r *Registry) Definitions() []CardDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]CardDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	return defs
}
