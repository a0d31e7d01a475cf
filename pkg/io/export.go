package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/matzehuels/facadegen/pkg/director"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

// Document is the serialized form of a blueprint.
type Document struct {
	ID     string                      `json:"id"`
	Floors int                         `json:"floors"`
	Sides  map[grammar.Side][][]string `json:"sides"`
}

// NewDocument wraps bp with a fresh document ID.
func NewDocument(bp *director.Blueprint) Document {
	return Document{
		ID:     uuid.NewString(),
		Floors: bp.Floors(),
		Sides:  bp.Map(),
	}
}

// Blueprint converts the document back into a blueprint.
func (d Document) Blueprint() *director.Blueprint {
	return director.NewBlueprint(d.Sides)
}

// WriteDocument encodes doc as indented JSON.
func WriteDocument(doc Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteBlueprintJSON writes bp as a new document.
func WriteBlueprintJSON(bp *director.Blueprint, w io.Writer) error {
	return WriteDocument(NewDocument(bp), w)
}

// ExportBlueprintJSON writes bp to a JSON file at path.
func ExportBlueprintJSON(bp *director.Blueprint, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteBlueprintJSON(bp, f)
}
