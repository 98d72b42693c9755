package provider

import "github.com/jukeyman/jams-api/pkg/models"

// Registry holds the configured adapters keyed by provider tag.
type Registry struct {
	adapters map[models.LLMProvider]Adapter
}

// NewRegistry builds a registry from the given adapters.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[models.LLMProvider]Adapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Name()] = a
	}
	return r
}

// For returns the adapter for a provider tag. Unknown tags fall back to
// OpenRouter, matching the classifier's default.
func (r *Registry) For(tag models.LLMProvider) Adapter {
	if a, ok := r.adapters[tag]; ok {
		return a
	}
	return r.adapters[models.ProviderOpenRouter]
}
