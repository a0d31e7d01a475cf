package resolve

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

func allSides(w int) map[grammar.Side]int {
	return map[grammar.Side]int{
		grammar.Front: w,
		grammar.Left:  w,
		grammar.Back:  w,
		grammar.Right: w,
	}
}

func TestFacade(t *testing.T) {
	got, err := Facade(mustFacade(t, "<wall>[door]<wall>"), 500, Uniform(100))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"wall", "wall", "door", "wall", "wall"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFacadeFallbackSizer(t *testing.T) {
	sizes := Fallback(Table{"door": 150}, 100)
	got, err := Facade(mustFacade(t, "[door]<window>"), 400, sizes)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"door", "window", "window"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFacadeUnknownModule(t *testing.T) {
	_, err := Facade(mustFacade(t, "<wall>"), 100, Table{})
	if !errors.Is(err, errors.ErrCodeResolution) {
		t.Fatalf("err = %v, want RESOLUTION", err)
	}
	if !strings.Contains(err.Error(), `"wall"`) {
		t.Errorf("error %q should name the module", err)
	}
}

func TestPattern(t *testing.T) {
	p, err := grammar.Parse("<A>\n[B]<A>")
	if err != nil {
		t.Fatal(err)
	}
	widths := []map[grammar.Side]int{allSides(300), allSides(200)}
	widths[0][grammar.Left] = 100

	got, err := Pattern(p, widths, Uniform(100))
	if err != nil {
		t.Fatal(err)
	}
	want := []map[grammar.Side][]string{
		{
			grammar.Front: {"B", "A", "A"},
			grammar.Left:  {"B"},
			grammar.Back:  {"B", "A", "A"},
			grammar.Right: {"B", "A", "A"},
		},
		{
			grammar.Front: {"A", "A"},
			grammar.Left:  {"A", "A"},
			grammar.Back:  {"A", "A"},
			grammar.Right: {"A", "A"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestPatternErrors(t *testing.T) {
	p, err := grammar.Parse("<A>\n[B]2")
	if err != nil {
		t.Fatal(err)
	}

	missingLeft := allSides(300)
	delete(missingLeft, grammar.Left)
	extra := allSides(300)
	extra["roof"] = 10

	tests := []struct {
		name    string
		widths  []map[grammar.Side]int
		wantMsg []string
	}{
		{
			name:    "floor count mismatch",
			widths:  []map[grammar.Side]int{allSides(300)},
			wantMsg: []string{"2 floors", "1 width"},
		},
		{
			name:    "missing side",
			widths:  []map[grammar.Side]int{allSides(300), missingLeft},
			wantMsg: []string{"left", "floor 1"},
		},
		{
			name:    "unknown side",
			widths:  []map[grammar.Side]int{extra, allSides(300)},
			wantMsg: []string{"roof", "floor 0"},
		},
		{
			name:    "capacity",
			widths:  []map[grammar.Side]int{allSides(100), allSides(300)},
			wantMsg: []string{"floor 0 (floor-0) front", "rigid content"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pattern(p, tt.widths, Uniform(100))
			if !errors.Is(err, errors.ErrCodeResolution) {
				t.Fatalf("err = %v, want RESOLUTION", err)
			}
			for _, s := range tt.wantMsg {
				if !strings.Contains(err.Error(), s) {
					t.Errorf("error %q does not contain %q", err, s)
				}
			}
		})
	}
}
