package dto_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
)

func stringPtr(s string) *string { return &s }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
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

func TestCreateProjectRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateProjectRequest
		wantField string
	}{
		{name: "name only passes", req: dto.CreateProjectRequest{Name: "Atlas"}},
		{
			name: "all fields pass",
			req: dto.CreateProjectRequest{
				Name:          "Atlas",
				Description:   "mapping",
				Status:        "IN_PROGRESS",
				Visibility:    "PRIVATE",
				TeamMemberIDs: []int64{2, 3},
			},
		},
		{name: "empty name fails", req: dto.CreateProjectRequest{}, wantField: "name"},
		{
			name:      "long name fails",
			req:       dto.CreateProjectRequest{Name: strings.Repeat("a", dto.MaxProjectNameLength+1)},
			wantField: "name",
		},
		{name: "unknown status fails", req: dto.CreateProjectRequest{Name: "Atlas", Status: "DONE"}, wantField: "status"},
		{name: "lowercase visibility fails", req: dto.CreateProjectRequest{Name: "Atlas", Visibility: "public"}, wantField: "visibility"},
		{name: "non-positive member fails", req: dto.CreateProjectRequest{Name: "Atlas", TeamMemberIDs: []int64{2, 0}}, wantField: "team_member_ids"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateProjectRequest_ToInput(t *testing.T) {
	t.Parallel()

	req := dto.CreateProjectRequest{Name: "Atlas", Status: "ON_HOLD", Visibility: "PRIVATE", TeamMemberIDs: []int64{4}}
	in := req.ToInput()

	if in.Status != project.StatusOnHold || in.Visibility != project.VisibilityPrivate {
		t.Errorf("ToInput() = %+v, want ON_HOLD/PRIVATE", in)
	}
	if len(in.TeamMemberIDs) != 1 || in.TeamMemberIDs[0] != 4 {
		t.Errorf("TeamMemberIDs = %v, want [4]", in.TeamMemberIDs)
	}
}

func TestUpdateProjectRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateProjectRequest
		wantField string
	}{
		{name: "empty patch passes", req: dto.UpdateProjectRequest{}},
		{name: "description only passes", req: dto.UpdateProjectRequest{Description: stringPtr("")}},
		{name: "valid status passes", req: dto.UpdateProjectRequest{Status: stringPtr("COMPLETED")}},
		{name: "empty status fails", req: dto.UpdateProjectRequest{Status: stringPtr("")}, wantField: "status"},
		{name: "unknown status fails", req: dto.UpdateProjectRequest{Status: stringPtr("ARCHIVED")}, wantField: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateProjectRequest_ToPatch(t *testing.T) {
	t.Parallel()

	patch := (&dto.UpdateProjectRequest{Status: stringPtr("CANCELLED")}).ToPatch()
	if patch.Description != nil {
		t.Errorf("Description = %v, want nil", patch.Description)
	}
	if patch.Status == nil || *patch.Status != project.StatusCancelled {
		t.Errorf("Status = %v, want CANCELLED", patch.Status)
	}

	if !(&dto.UpdateProjectRequest{}).ToPatch().IsEmpty() {
		t.Error("ToPatch() of empty request is not empty")
	}
}

func TestProjectFilterRequest(t *testing.T) {
	t.Parallel()

	req := dto.ProjectFilterRequest{Name: "atl", Status: "CREATED"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	c := req.ToCriteria()
	if c.Name != "atl" || c.Status != project.StatusCreated || c.Visibility != "" {
		t.Errorf("ToCriteria() = %+v", c)
	}

	requireValidationField(t, (&dto.ProjectFilterRequest{Visibility: "HIDDEN"}).Validate(), "visibility")
}

func TestMomentProjectsRequest_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.MomentProjectsRequest{ProjectIDs: []int64{1, 2}}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	for _, ids := range [][]int64{nil, {}} {
		if err := (&dto.MomentProjectsRequest{ProjectIDs: ids}).Validate(); err != nil {
			t.Errorf("Validate(%v) = %v, want nil for an empty list", ids, err)
		}
	}
	requireValidationField(t, (&dto.MomentProjectsRequest{ProjectIDs: []int64{-1}}).Validate(), "project_ids")
	requireValidationField(t, (&dto.MomentProjectsRequest{ProjectIDs: make([]int64, dto.MaxBatchSize+1)}).Validate(), "project_ids")
}

func TestVacancyRequests_Validate(t *testing.T) {
	t.Parallel()

	if err := (&dto.CreateVacancyRequest{Name: "Backend"}).Validate(); err != nil {
		t.Errorf("CreateVacancyRequest.Validate() = %v, want nil", err)
	}
	requireValidationField(t, (&dto.CreateVacancyRequest{}).Validate(), "name")
	requireValidationField(t, (&dto.VacancyFilterRequest{ProjectID: -4}).Validate(), "project_id")

	c := (&dto.VacancyFilterRequest{Name: "Backend", ProjectID: 3}).ToCriteria()
	if c.NamePattern != "Backend" || c.ProjectID != 3 {
		t.Errorf("ToCriteria() = %+v", c)
	}
}

func TestSendInvitationRequest(t *testing.T) {
	t.Parallel()

	requireValidationField(t, (&dto.SendInvitationRequest{InvitedID: 2}).Validate(), "stage_id")
	requireValidationField(t, (&dto.SendInvitationRequest{StageID: 5}).Validate(), "invited_id")

	req := dto.SendInvitationRequest{StageID: 5, InvitedID: 2, Description: "join"}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	in := req.ToInput(1)
	if in.InviterID != 1 || in.InvitedID != 2 || in.StageID != 5 {
		t.Errorf("ToInput() = %+v", in)
	}
}

func TestParseInvitationStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    invitation.Status
		wantErr bool
	}{
		{raw: "PENDING", want: invitation.StatusPending},
		{raw: "accepted", want: invitation.StatusAccepted},
		{raw: " Rejected ", want: invitation.StatusRejected},
		{raw: "", wantErr: true},
		{raw: "EXPIRED", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := dto.ParseInvitationStatus(tt.raw)
			if tt.wantErr {
				requireValidationField(t, err, "query.status")
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseInvitationStatus(%q) = %q, %v, want %q", tt.raw, got, err, tt.want)
			}
		})
	}
}
