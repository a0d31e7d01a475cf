// Package pipeline builds blueprints from building specs with caching.
//
// Both the CLI and the HTTP server go through a [Runner] so that caching,
// logging and observability hooks behave the same everywhere:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Build(ctx, pipeline.Options{Spec: spec})
//	if err != nil {
//	    return err
//	}
//	front, _ := result.Blueprint.Side(grammar.Front)
//
// A build normalizes the spec, hashes the normalized form together with
// the sizing inputs, and either returns the cached blueprint for that key
// or resolves it and stores it.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/facadegen/pkg/catalog"
	"github.com/matzehuels/facadegen/pkg/director"
)

// DefaultModuleWidth applies when neither the spec nor a catalog sizes
// modules.
const DefaultModuleWidth = 100

// Options configures one build.
type Options struct {
	Spec director.BuildingSpec `json:"spec"`

	// Catalog, when set, sizes modules per name instead of Spec.ModuleWidth.
	Catalog *catalog.Catalog `json:"-"`

	// Refresh skips the cache lookup; the result is still stored.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// SetDefaults fills in the module width when nothing else sizes modules.
func (o *Options) SetDefaults() {
	if o.Catalog == nil && o.Spec.ModuleWidth == 0 {
		o.Spec.ModuleWidth = DefaultModuleWidth
	}
}

// Result is the outcome of a build.
type Result struct {
	Blueprint *director.Blueprint

	// Spec is the normalized spec that was resolved.
	Spec director.BuildingSpec

	// SpecHash identifies the normalized spec and sizing inputs.
	SpecHash string

	CacheHit bool
	Duration time.Duration
}
