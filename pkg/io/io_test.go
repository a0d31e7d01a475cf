package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/matzehuels/facadegen/pkg/director"
	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

const specTOML = `
floors = 2
module_width = 100
order = "bottom-up"

[sides.front]
grammar = """
[Door]<Wall>
<Window>
"""
width = 500

[sides.left]
grammar = "<Window>"
width = 300
`

func wantSpec() director.BuildingSpec {
	return director.BuildingSpec{
		Floors:      2,
		ModuleWidth: 100,
		Order:       grammar.OrderBottomUp,
		Sides: map[grammar.Side]director.SideSpec{
			grammar.Front: {Grammar: "[Door]<Wall>\n<Window>\n", Width: 500},
			grammar.Left:  {Grammar: "<Window>", Width: 300},
		},
	}
}

func TestReadSpecTOML(t *testing.T) {
	spec, err := ReadSpecTOML(strings.NewReader(specTOML))
	if err != nil {
		t.Fatalf("ReadSpecTOML: %v", err)
	}
	if diff := cmp.Diff(wantSpec(), spec); diff != "" {
		t.Errorf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSpecTOMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "floors = "},
		{"unknown key", "floors = 1\nheight = 3"},
		{"bad order", `order = "sideways"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadSpecTOML(strings.NewReader(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidSpec) {
				t.Errorf("err = %v, want INVALID_SPEC", err)
			}
		})
	}
}

func TestReadSpecJSON(t *testing.T) {
	data := `{
	  "floors": 2,
	  "module_width": 100,
	  "order": "bottom-up",
	  "sides": {
	    "front": {"grammar": "[Door]<Wall>\n<Window>\n", "width": 500},
	    "left": {"grammar": "<Window>", "width": 300}
	  }
	}`
	spec, err := ReadSpecJSON(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ReadSpecJSON: %v", err)
	}
	if diff := cmp.Diff(wantSpec(), spec); diff != "" {
		t.Errorf("spec mismatch (-want +got):\n%s", diff)
	}

	if _, err := ReadSpecJSON(strings.NewReader(`{"floors": 1, "storeys": 2}`)); !errors.Is(err, errors.ErrCodeInvalidSpec) {
		t.Errorf("unknown field err = %v, want INVALID_SPEC", err)
	}
}

func TestLoadSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "building.toml")
	if err := os.WriteFile(path, []byte(specTOML), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadSpec(path)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.Floors != 2 {
		t.Errorf("Floors = %d, want 2", spec.Floors)
	}

	if _, err := LoadSpec(filepath.Join(dir, "nope.json")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file err = %v, want NOT_FOUND", err)
	}
	if _, err := LoadSpec(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("empty path err = %v, want INVALID_PATH", err)
	}
}

func TestBlueprintRoundTrip(t *testing.T) {
	bp := director.NewBlueprint(map[grammar.Side][][]string{
		grammar.Front: {{"Wall", "Door", "Wall"}, {"Window"}},
		grammar.Back:  {{"wall"}, {"wall"}},
	})

	var buf bytes.Buffer
	if err := WriteBlueprintJSON(bp, &buf); err != nil {
		t.Fatalf("WriteBlueprintJSON: %v", err)
	}

	doc, err := ReadBlueprintJSON(&buf)
	if err != nil {
		t.Fatalf("ReadBlueprintJSON: %v", err)
	}
	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", doc.ID, err)
	}
	if doc.Floors != 2 {
		t.Errorf("Floors = %d, want 2", doc.Floors)
	}
	if diff := cmp.Diff(bp.Map(), doc.Blueprint().Map()); diff != "" {
		t.Errorf("blueprint mismatch (-want +got):\n%s", diff)
	}
}

func TestNewDocumentIDsDiffer(t *testing.T) {
	bp := director.NewBlueprint(map[grammar.Side][][]string{grammar.Front: {{"A"}}})
	if NewDocument(bp).ID == NewDocument(bp).ID {
		t.Error("two documents share an ID")
	}
}

func TestReadBlueprintJSONErrors(t *testing.T) {
	tests := []string{
		`{"id": "x", "floors": 1, "sides": {"roof": [["A"]]}}`,
		`{"id": "x", "floors": 2, "sides": {"front": [["A"]]}}`,
		`not json`,
	}
	for _, data := range tests {
		if _, err := ReadBlueprintJSON(strings.NewReader(data)); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ReadBlueprintJSON(%s) err = %v, want INVALID_INPUT", data, err)
		}
	}
}

func TestExportBlueprintJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bp.json")
	bp := director.NewBlueprint(map[grammar.Side][][]string{grammar.Front: {{"A"}}})
	if err := ExportBlueprintJSON(bp, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"front"`)) {
		t.Errorf("export missing front side: %s", data)
	}
}
