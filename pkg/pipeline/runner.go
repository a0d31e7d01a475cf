package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/facadegen/pkg/cache"
	"github.com/matzehuels/facadegen/pkg/director"
	"github.com/matzehuels/facadegen/pkg/grammar"
	"github.com/matzehuels/facadegen/pkg/observability"
	"github.com/matzehuels/facadegen/pkg/resolve"
)

const keyTypeBlueprint = "blueprint"

// Runner executes builds with caching. It holds no per-build state, so one
// Runner can serve concurrent requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long built blueprints stay cached.
	TTL time.Duration

	// MaxModules caps the modules or floors one facade or stacking
	// expression may place. Zero keeps the resolver default.
	MaxModules int
}

// NewRunner creates a runner. A nil keyer means DefaultKeyer and a nil
// cache disables caching.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		TTL:    cache.TTLBlueprint,
	}
}

// Build normalizes opts.Spec and returns its blueprint, from the cache when
// possible.
func (r *Runner) Build(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}
	start := time.Now()

	dopts := []director.Option{director.WithLogger(logger), director.WithMaxModules(r.MaxModules)}
	keyOpts := cache.BlueprintKeyOpts{ModuleWidth: opts.Spec.ModuleWidth}
	if opts.Catalog != nil {
		dopts = append(dopts, director.WithSizer(opts.Catalog.Widths()))
		if data, err := json.Marshal(opts.Catalog); err == nil {
			keyOpts.CatalogHash = cache.Hash(data)
		}
	}

	d, err := director.New(opts.Spec, dopts...)
	if err != nil {
		return nil, err
	}
	norm := d.Normalized()

	specData, err := json.Marshal(norm)
	if err != nil {
		return nil, err
	}
	result := &Result{Spec: norm, SpecHash: cache.Hash(specData)}
	key := r.Keyer.BlueprintKey(result.SpecHash, keyOpts)

	if !opts.Refresh {
		if bp, ok := r.cached(ctx, key); ok {
			result.Blueprint = bp
			result.CacheHit = true
			result.Duration = time.Since(start)
			logger.Debug("blueprint from cache", "hash", result.SpecHash[:12])
			return result, nil
		}
	}

	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, norm.Floors)
	bp, err := d.Blueprint()
	hooks.OnBuildComplete(ctx, norm.Floors, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	result.Blueprint = bp
	result.Duration = time.Since(start)

	if data, err := json.Marshal(bp.Map()); err == nil {
		if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
			logger.Warn("cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, keyTypeBlueprint, len(data))
		}
	}

	logger.Info("resolved blueprint",
		"floors", norm.Floors,
		"duration", result.Duration)
	return result, nil
}

func (r *Runner) cached(ctx context.Context, key string) (*director.Blueprint, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
	}
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, keyTypeBlueprint)
		return nil, false
	}
	var sides map[grammar.Side][][]string
	if err := json.Unmarshal(data, &sides); err != nil {
		_ = r.Cache.Delete(ctx, key)
		observability.Cache().OnCacheMiss(ctx, keyTypeBlueprint)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyTypeBlueprint)
	return director.NewBlueprint(sides), true
}

// Stack resolves a stacking expression and reports it to the pipeline
// hooks. Stacking is cheap, so results are not cached.
func (r *Runner) Stack(ctx context.Context, expr string, height int, heights resolve.Sizer) ([]string, error) {
	start := time.Now()
	floors, err := resolve.Stack(expr, height, heights,
		resolve.MaxPlacements(r.MaxModules), resolve.WithContext(ctx))
	observability.Pipeline().OnStackComplete(ctx, len(floors), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("stacked floors", "expression", expr, "height", height, "floors", len(floors))
	return floors, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
