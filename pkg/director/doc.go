// Package director turns a building specification into a resolved
// blueprint.
//
// A [BuildingSpec] carries one grammar text and one wall width per side.
// Before resolution the director normalizes it:
//
//   - A grammar with fewer lines than declared floors is padded with
//     single-module default lines ("<wall>"). More lines than floors is an
//     error.
//   - A missing side is copied from its opposite side's width and gets an
//     all-default grammar. A side whose opposite is also missing is an
//     error.
//
// The normalized spec is resolved facade by facade through package
// resolve. The resulting [Blueprint] is computed on first access and then
// kept; build a new [Director] to recompute.
//
//	d, err := director.New(spec, director.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	bp, err := d.Blueprint()
package director
