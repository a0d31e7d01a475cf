package resolve

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/facadegen/pkg/errors"
	"github.com/matzehuels/facadegen/pkg/grammar"
)

func mustFacade(t *testing.T, line string) grammar.Facade {
	t.Helper()
	f, err := grammar.ParseFacade(line)
	if err != nil {
		t.Fatalf("ParseFacade(%q): %v", line, err)
	}
	return f
}

func sizeOf(s Sizer) SizeFunc {
	return func(name string) (int, error) {
		n, ok := s.Size(name)
		if !ok {
			return 0, errors.New(errors.ErrCodeResolution, "no size for %q", name)
		}
		return n, nil
	}
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		budget int
		sizes  Sizer
		want   []string
	}{
		{"single fill", "<A>", 300, Uniform(100), []string{"A", "A", "A"}},
		{"leftover is not padded", "<A>", 250, Uniform(100), []string{"A", "A"}},
		{"rigid then fill", "[D]<W>", 350, Uniform(100), []string{"D", "W", "W"}},
		{"fill cycles its modules", "<A-B>", 500, Uniform(100), []string{"A", "B", "A", "B", "A"}},
		{"authored order", "<A-B>[C]2", 500, Uniform(100), []string{"A", "B", "A", "C", "C"}},
		{"round robin", "<A><B>", 200, Uniform(100), []string{"A", "B"}},
		{"round robin odd", "<A><B>", 300, Uniform(100), []string{"A", "B", "A"}},
		{"rigid exact fit", "[A]3-[B]2", 500, Uniform(100), []string{"A", "A", "A", "B", "B"}},
		{"zero budget without rigid", "<A><B>", 0, Uniform(100), nil},
		{
			name:   "per module sizes",
			line:   "<W-D>",
			budget: 400,
			sizes:  Table{"W": 100, "D": 150},
			want:   []string{"W", "D", "W"},
		},
		{
			name:   "blocked group keeps its cursor",
			line:   "<Big><S>",
			budget: 500,
			sizes:  Table{"Big": 300, "S": 100},
			want:   []string{"Big", "S", "S"},
		},
		{
			name:   "blocked cursor is not skipped",
			line:   "<L-S>",
			budget: 250,
			sizes:  Table{"L": 200, "S": 10},
			want:   []string{"L", "S"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(mustFacade(t, tt.line), tt.budget, sizeOf(tt.sizes))
			if err != nil {
				t.Fatalf("Allocate: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Allocate(%q, %d) mismatch (-want +got):\n%s", tt.line, tt.budget, diff)
			}
		})
	}
}

func TestAllocateErrors(t *testing.T) {
	tests := []struct {
		name   string
		groups []grammar.Group
		budget int
		sizes  Sizer
		code   errors.Code
	}{
		{"rigid exceeds budget", mustFacade(t, "[A]3"), 250, Uniform(100), errors.ErrCodeResolution},
		{"rigid with zero budget", mustFacade(t, "<A>[B]"), 0, Uniform(100), errors.ErrCodeResolution},
		{"negative budget", mustFacade(t, "<A>"), -1, Uniform(100), errors.ErrCodeResolution},
		{"zero size", mustFacade(t, "<A>"), 100, Uniform(0), errors.ErrCodeInvalidInput},
		{"negative size", mustFacade(t, "[A]"), 100, Table{"A": -5}, errors.ErrCodeInvalidInput},
		{"missing size", mustFacade(t, "<A-B>"), 100, Table{"A": 5}, errors.ErrCodeResolution},
		{"bad repeat", []grammar.Group{grammar.NewRigid(0, "A")}, 100, Uniform(10), errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(tt.groups, tt.budget, sizeOf(tt.sizes))
			if err == nil {
				t.Fatalf("Allocate() = %v, want error", got)
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestAllocateHugeRepeat(t *testing.T) {
	groups := []grammar.Group{grammar.NewRigid(1<<62, "A", "B")}
	if _, err := Allocate(groups, 1000, sizeOf(Uniform(100))); !errors.Is(err, errors.ErrCodeResolution) {
		t.Fatalf("err = %v, want RESOLUTION", err)
	}
}

func TestAllocateSkipsEmptyFill(t *testing.T) {
	groups := []grammar.Group{
		{Kind: grammar.Fill},
		grammar.NewFill("A"),
	}
	got, err := Allocate(groups, 200, sizeOf(Uniform(100)))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"A", "A"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocateDeterministic(t *testing.T) {
	f := mustFacade(t, "<A-B>[C]2<D>-[E]")
	sizes := Table{"A": 30, "B": 70, "C": 50, "D": 40, "E": 90}
	first, err := Allocate(f, 1234, sizeOf(sizes))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Allocate(f, 1234, sizeOf(sizes))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("run %d differs (-first +again):\n%s", i, diff)
		}
	}
}

// After allocation the leftover budget must be smaller than every fill
// group's next candidate, and placed sizes never exceed the budget.
func TestAllocateConservation(t *testing.T) {
	f := mustFacade(t, "[Door]<A-B-C>[Win]2<D>")
	sizes := Table{"Door": 120, "Win": 80, "A": 35, "B": 60, "C": 25, "D": 45}
	rigid := 120 + 2*80

	for budget := rigid; budget <= 2000; budget += 7 {
		got, err := Allocate(f, budget, sizeOf(sizes))
		if err != nil {
			t.Fatalf("budget %d: %v", budget, err)
		}
		used := 0
		for _, name := range got {
			used += sizes[name]
		}
		if used > budget {
			t.Fatalf("budget %d: placed %d", budget, used)
		}
		leftover := budget - used

		for _, g := range f {
			if g.Kind != grammar.Fill {
				continue
			}
			placed := 0
			for _, name := range got {
				for _, m := range g.Modules {
					if name == string(m) {
						placed++
					}
				}
			}
			next := string(g.Modules[placed%len(g.Modules)])
			if leftover >= sizes[next] {
				t.Fatalf("budget %d: leftover %d still fits %s (%d)", budget, leftover, next, sizes[next])
			}
		}
	}
}

func TestAllocateFairness(t *testing.T) {
	f := mustFacade(t, "[R]<A><B>")
	got, err := Allocate(f, 100+2*40, sizeOf(Table{"R": 100, "A": 40, "B": 40}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"R", "A", "B"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocateMaxPlacements(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		budget int
		max    int
		ok     bool
	}{
		{"fill at limit", "<A>", 3, 3, true},
		{"fill over limit", "<A>", 400, 3, false},
		{"rigid over limit", "[A-B]2", 400, 3, false},
		{"rigid and fill share limit", "[A]2<B>", 400, 3, false},
		{"huge rigid repeat within budget", "[A]999999999", 999999999, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Allocate(mustFacade(t, tt.line), tt.budget, sizeOf(Uniform(1)), MaxPlacements(tt.max))
			if tt.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(got) > tt.max {
					t.Errorf("placed %d names, limit %d", len(got), tt.max)
				}
				return
			}
			if !errors.Is(err, errors.ErrCodeResolution) {
				t.Fatalf("err = %v, want RESOLUTION", err)
			}
		})
	}
}

func TestAllocateDefaultLimit(t *testing.T) {
	_, err := Allocate(mustFacade(t, "<A>"), DefaultMaxPlacements+1, sizeOf(Uniform(1)))
	if !errors.Is(err, errors.ErrCodeResolution) {
		t.Fatalf("err = %v, want RESOLUTION", err)
	}
}

func TestAllocateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Allocate(mustFacade(t, "<A>"), 1000, sizeOf(Uniform(1)), WithContext(ctx))
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
