// Package pkg provides the core libraries for facadegen, which turns a
// compact facade grammar into concrete per-side module sequences for
// procedurally generated buildings.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [grammar] - Parsing, serialization and the building JSON codec
//  2. [validate] - Semantic checks that report issues instead of failing
//  3. [resolve] - Width and stacking resolvers over one shared allocator
//  4. [director] - Building specs, normalization and blueprints
//  5. [catalog], [io] - Size catalogs and spec/blueprint file formats
//  6. [pipeline], [cache], [observability] - Cached builds and hooks
//
// # Architecture
//
// The typical data flow:
//
//	Building spec (TOML/JSON)
//	         ↓
//	    [director] normalize (fill floors, synthesize sides)
//	         ↓
//	    [grammar] parse each side
//	         ↓
//	    [resolve] fit every floor's facade to its side width
//	         ↓
//	    Blueprint (side → floor → modules)
//
// # Quick Start
//
// Resolve a single facade line:
//
//	import (
//	    "github.com/matzehuels/facadegen/pkg/grammar"
//	    "github.com/matzehuels/facadegen/pkg/resolve"
//	)
//
//	f, _ := grammar.ParseFacade("[Door]<Wall-Window>")
//	modules, _ := resolve.Facade(f, 700, resolve.Uniform(100))
//	// [Door Wall Window Wall Window Wall Window]
//
// Build a whole building:
//
//	d, _ := director.New(director.BuildingSpec{
//	    Floors:      3,
//	    ModuleWidth: 100,
//	    Sides: map[grammar.Side]director.SideSpec{
//	        grammar.Front: {Grammar: "<Window>\n[Door]<Wall>", Width: 500},
//	        grammar.Left:  {Width: 300},
//	    },
//	})
//	bp, _ := d.Blueprint()
//
// # Caching
//
// [pipeline.Runner] keys blueprints by a hash of the normalized spec and
// sizing inputs and stores them in a [cache.Cache]: a file cache for the
// CLI, Redis for shared deployments, or a null cache.
//
// [grammar]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/grammar
// [validate]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/validate
// [resolve]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/resolve
// [director]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/director
// [catalog]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/catalog
// [io]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/observability
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/pipeline#Runner
// [cache.Cache]: https://pkg.go.dev/github.com/matzehuels/facadegen/pkg/cache#Cache
package pkg
