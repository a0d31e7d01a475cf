// Package grammar parses facade pattern text into a structured module model.
//
// A facade line is a concatenation of groups. Two group shapes exist:
//
//	<m1-m2-...>     fill group: cycles its modules to absorb leftover budget
//	[m1-m2-...]N    rigid group: placed exactly N times (N defaults to 1)
//
// A multi-line text describes one facade per floor. The [Order] parameter
// states which end of the text is the ground floor: grammar text is written
// top-down (last line is the ground) while building JSON lists floors
// bottom-up. A parsed [Pattern] always stores its floors ground-first.
//
// # Parsing
//
//	facade, err := grammar.ParseFacade("<Wall-Window>[Door]2")
//	pattern, err := grammar.Parse("<A-B>[C]2\n<D>")
//
// Parsing is strict: any character that does not belong to a recognized
// token is reported as an [errors.ErrCodeSyntax] error. Free-form or
// generated text should first go through package sanitize.
//
// # Canonical Form
//
// [Serialize] writes modules joined by "-", groups concatenated, and omits a
// rigid repeat of exactly 1. Parsing canonical text and serializing it again
// reproduces the input byte for byte.
//
// [errors.ErrCodeSyntax]: github.com/matzehuels/facadegen/pkg/errors
package grammar
