// Package io reads building specification files and writes resolved
// blueprints for external renderers.
//
// # Specification Files
//
// A building spec is TOML or JSON. TOML example:
//
//	floors = 3
//	module_width = 100
//	default_module = "wall"
//	order = "top-down"
//
//	[sides.front]
//	grammar = """
//	<Window>
//	<Window>[Balcony]<Window>
//	<Wall>[Door]<Wall>
//	"""
//	width = 1200
//
//	[sides.left]
//	grammar = "<Window>"
//	width = 800
//
// Unknown keys are rejected so that typos do not silently fall back to
// defaults. Use [LoadSpec] to pick the decoder from the file extension.
//
// # Blueprint Documents
//
// [WriteBlueprintJSON] writes a resolved blueprint as:
//
//	{
//	  "id": "6f1c...",
//	  "floors": 3,
//	  "sides": {
//	    "front": [["Wall", "Door", "Wall"], ...],
//	    ...
//	  }
//	}
//
// Floors are listed ground first. The id is a fresh random UUID that
// renderers use to correlate assets with one build.
package io
