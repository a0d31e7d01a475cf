// Package resolve fits parsed grammar groups into a linear budget.
//
// The same allocation runs in two settings:
//
//   - Width resolution: facade modules against the pixel width of a wall.
//   - Stacking resolution: floor names against the total height of a
//     building, producing floors bottom-to-top.
//
// # Algorithm
//
// [Allocate] places every rigid group in full first; if rigid content does
// not fit the budget, resolution fails instead of truncating. The remainder
// is shared among fill groups by repeated sweeps in authored order: each
// fill group places its next module when it fits and keeps its cursor when
// it does not. Sweeps stop once a full sweep places nothing, so leftover
// budget is always smaller than every fill group's next module. The output
// lists each group's placements in authored group order.
//
// Every allocation is capped at [DefaultMaxPlacements] names unless a
// [MaxPlacements] option says otherwise; going over is a resolution error.
//
// # Sizes
//
// Sizes come from an injected [Sizer]. [Uniform] gives every module the
// same width; [Table] is a strict lookup used for floor heights, where an
// unknown floor name is an [errors.ErrCodeUnknownFloor] error.
//
// [errors.ErrCodeUnknownFloor]: github.com/matzehuels/facadegen/pkg/errors
package resolve
