package filter_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/filter"
)

type criteria struct {
	min  int
	even bool
}

type minFilter struct{}

func (minFilter) IsApplicable(c criteria) bool { return c.min > 0 }

func (minFilter) Apply(items []int, c criteria) []int {
	return filter.Where(items, func(n int) bool { return n >= c.min })
}

type evenFilter struct{}

func (evenFilter) IsApplicable(c criteria) bool { return c.even }

func (evenFilter) Apply(items []int, _ criteria) []int {
	return filter.Where(items, func(n int) bool { return n%2 == 0 })
}

// recordingFilter records the order in which filters were applied.
type recordingFilter struct {
	name  string
	calls *[]string
}

func (f recordingFilter) IsApplicable(criteria) bool { return true }

func (f recordingFilter) Apply(items []int, _ criteria) []int {
	*f.calls = append(*f.calls, f.name)
	return items
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	pipeline := filter.NewPipeline[int, criteria](minFilter{}, evenFilter{})

	tests := []struct {
		name     string
		criteria criteria
		want     []int
	}{
		{
			name:     "no criteria is a no-op",
			criteria: criteria{},
			want:     []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "single applicable filter",
			criteria: criteria{min: 4},
			want:     []int{4, 5, 6},
		},
		{
			name:     "filters compose",
			criteria: criteria{min: 3, even: true},
			want:     []int{4, 6},
		},
		{
			name:     "everything filtered out",
			criteria: criteria{min: 100},
			want:     []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pipeline.Run([]int{1, 2, 3, 4, 5, 6}, tt.criteria)
			if err != nil {
				t.Fatalf("Run() error = %v, want nil", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Run() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Run()[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPipeline_Run_NeverWidens(t *testing.T) {
	t.Parallel()

	pipeline := filter.NewPipeline[int, criteria](minFilter{}, evenFilter{})
	candidates := []int{9, 2, 7, 4, 1, 8}

	for _, c := range []criteria{{}, {min: 1}, {even: true}, {min: 5, even: true}, {min: 50}} {
		got, err := pipeline.Run(candidates, c)
		if err != nil {
			t.Fatalf("Run(%+v) error = %v", c, err)
		}
		if len(got) > len(candidates) {
			t.Errorf("Run(%+v) len = %d, want <= %d", c, len(got), len(candidates))
		}
	}
}

func TestPipeline_Run_DoesNotMutateCandidates(t *testing.T) {
	t.Parallel()

	pipeline := filter.NewPipeline[int, criteria](evenFilter{})
	candidates := []int{1, 2, 3, 4}

	if _, err := pipeline.Run(candidates, criteria{even: true}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []int{1, 2, 3, 4}
	for i := range want {
		if candidates[i] != want[i] {
			t.Errorf("candidates[%d] = %d after Run, want %d", i, candidates[i], want[i])
		}
	}
}

func TestPipeline_Run_NilCandidates(t *testing.T) {
	t.Parallel()

	pipeline := filter.NewPipeline[int, criteria](minFilter{})

	got, err := pipeline.Run(nil, criteria{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Run(nil) error = %v, want ErrValidation", err)
	}
	if got != nil {
		t.Errorf("Run(nil) = %v, want nil", got)
	}
}

func TestPipeline_Run_EmptyCandidates(t *testing.T) {
	t.Parallel()

	pipeline := filter.NewPipeline[int, criteria](minFilter{})

	got, err := pipeline.Run([]int{}, criteria{min: 1})
	if err != nil {
		t.Fatalf("Run([]) error = %v, want nil", err)
	}
	if len(got) != 0 {
		t.Errorf("Run([]) = %v, want empty", got)
	}
}

func TestPipeline_Run_RegistrationOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	pipeline := filter.NewPipeline[int, criteria](
		recordingFilter{name: "first", calls: &calls},
		nil,
		recordingFilter{name: "second", calls: &calls},
		recordingFilter{name: "third", calls: &calls},
	)

	if pipeline.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (nil filters are skipped)", pipeline.Len())
	}

	if _, err := pipeline.Run([]int{1}, criteria{}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestWhere_FreshSlice(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	got := filter.Where(items, func(int) bool { return true })
	got[0] = 42

	if items[0] != 1 {
		t.Errorf("items[0] = %d after writing to Where result, want 1", items[0])
	}
}
