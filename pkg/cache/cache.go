// Package cache stores resolved blueprints between runs.
//
// Three backends share the [Cache] interface:
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: a shared Redis instance, for the HTTP server
//
// Keys are built by a [Keyer] from a hash of the normalized building spec
// and the sizing inputs, so two requests that would resolve identically
// share one entry.
package cache

import (
	"context"
	"time"
)

// TTLBlueprint is how long a resolved blueprint stays cached.
const TTLBlueprint = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the data stored under key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// BlueprintKeyOpts are the sizing inputs that change a blueprint.
type BlueprintKeyOpts struct {
	ModuleWidth int    `json:"module_width,omitempty"`
	CatalogHash string `json:"catalog_hash,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// BlueprintKey returns the key for a blueprint of the spec whose
	// canonical encoding hashes to specHash.
	BlueprintKey(specHash string, opts BlueprintKeyOpts) string
}

// DefaultKeyer hashes key components under a fixed prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// BlueprintKey implements Keyer.
func (DefaultKeyer) BlueprintKey(specHash string, opts BlueprintKeyOpts) string {
	return hashKey("blueprint", specHash, opts)
}
