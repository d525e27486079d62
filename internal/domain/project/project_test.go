package project

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain"
)

func validProject() Project {
	return Project{
		ID:             1,
		Name:           "Atlas",
		Description:    "Mapping service",
		OwnerID:        1,
		Status:         StatusCreated,
		Visibility:     VisibilityPublic,
		MaxStorageSize: 2048,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestProject_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Project)
		wantErr   bool
		wantField string
	}{
		{
			name:   "valid project passes",
			modify: func(_ *Project) {},
		},
		{
			name:   "empty description passes",
			modify: func(p *Project) { p.Description = "" },
		},
		{
			name:      "empty name fails",
			modify:    func(p *Project) { p.Name = "" },
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "whitespace-only name fails",
			modify:    func(p *Project) { p.Name = "   " },
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "zero owner fails",
			modify:    func(p *Project) { p.OwnerID = 0 },
			wantErr:   true,
			wantField: "owner_id",
		},
		{
			name:      "unknown status fails",
			modify:    func(p *Project) { p.Status = "ARCHIVED" },
			wantErr:   true,
			wantField: "status",
		},
		{
			name:      "lowercase visibility fails",
			modify:    func(p *Project) { p.Visibility = "public" },
			wantErr:   true,
			wantField: "visibility",
		},
		{
			name:      "negative storage fails",
			modify:    func(p *Project) { p.MaxStorageSize = -1 },
			wantErr:   true,
			wantField: "max_storage_size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := validProject()
			tt.modify(&p)
			err := p.Validate()

			if tt.wantErr {
				requireValidationField(t, err, tt.wantField)
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestProject_IsMember(t *testing.T) {
	t.Parallel()

	p := validProject()
	p.TeamMemberIDs = []int64{7, 9}

	tests := []struct {
		user int64
		want bool
	}{
		{1, true},
		{7, true},
		{9, true},
		{3, false},
	}

	for _, tt := range tests {
		if got := p.IsMember(tt.user); got != tt.want {
			t.Errorf("IsMember(%d) = %v, want %v", tt.user, got, tt.want)
		}
	}
}

func TestPatch_ApplyTo(t *testing.T) {
	t.Parallel()

	desc := "Updated"
	status := StatusInProgress

	t.Run("nil fields leave project unchanged", func(t *testing.T) {
		t.Parallel()
		p := validProject()
		Patch{}.ApplyTo(&p)

		if p.Description != "Mapping service" || p.Status != StatusCreated {
			t.Errorf("ApplyTo(empty) changed project: %+v", p)
		}
	})

	t.Run("description only", func(t *testing.T) {
		t.Parallel()
		p := validProject()
		Patch{Description: &desc}.ApplyTo(&p)

		if p.Description != desc {
			t.Errorf("Description = %q, want %q", p.Description, desc)
		}
		if p.Status != StatusCreated {
			t.Errorf("Status = %q, want unchanged %q", p.Status, StatusCreated)
		}
	})

	t.Run("empty description is written", func(t *testing.T) {
		t.Parallel()
		p := validProject()
		empty := ""
		Patch{Description: &empty}.ApplyTo(&p)

		if p.Description != "" {
			t.Errorf("Description = %q, want empty", p.Description)
		}
	})

	t.Run("status only", func(t *testing.T) {
		t.Parallel()
		p := validProject()
		Patch{Status: &status}.ApplyTo(&p)

		if p.Status != status {
			t.Errorf("Status = %q, want %q", p.Status, status)
		}
		if p.Description != "Mapping service" {
			t.Errorf("Description = %q, want unchanged", p.Description)
		}
	})
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	bad := Status("DONE")
	if err := (Patch{Status: &bad}).Validate(); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Validate(bad status) = %v, want ErrValidation", err)
	}

	good := StatusCompleted
	if err := (Patch{Status: &good}).Validate(); err != nil {
		t.Errorf("Validate(good status) = %v, want nil", err)
	}

	if !(Patch{}).IsEmpty() {
		t.Error("Patch{}.IsEmpty() = false, want true")
	}
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("Status(%q).IsValid() = false, want true", s)
		}
	}
	for _, s := range []Status{"", "created", "DONE"} {
		if s.IsValid() {
			t.Errorf("Status(%q).IsValid() = true, want false", s)
		}
	}
}
