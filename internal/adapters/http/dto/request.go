package dto

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/domain/vacancy"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

const (
	// MaxProjectNameLength bounds project names.
	MaxProjectNameLength = 128

	// MaxVacancyNameLength bounds vacancy names.
	MaxVacancyNameLength = 128

	// MaxBatchSize bounds the ids accepted by a single batch lookup.
	MaxBatchSize = 500
)

// CreateProjectRequest represents the JSON body for creating a new project.
// Status and Visibility are optional and default to CREATED and PUBLIC.
type CreateProjectRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Status        string  `json:"status,omitempty"`
	Visibility    string  `json:"visibility,omitempty"`
	TeamMemberIDs []int64 `json:"team_member_ids,omitempty"`
}

// Validate checks field shapes. Returns a *domain.ValidationError if any
// checks fail.
func (r *CreateProjectRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, MaxProjectNameLength)),
		validation.Field(&r.Status, validation.In(statusValues()...)),
		validation.Field(&r.Visibility, validation.In(visibilityValues()...)),
		validation.Field(&r.TeamMemberIDs, validation.Each(validation.Required, validation.Min(int64(1)))),
	))
}

// ToInput converts the request into the service input.
func (r *CreateProjectRequest) ToInput() ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Name:          r.Name,
		Description:   r.Description,
		Status:        project.Status(r.Status),
		Visibility:    project.Visibility(r.Visibility),
		TeamMemberIDs: r.TeamMemberIDs,
	}
}

// UpdateProjectRequest represents the JSON body for patching a project.
// All fields are optional; nil means "do not change this field.".
type UpdateProjectRequest struct {
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateProjectRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.NilOrNotEmpty, validation.In(statusValues()...)),
	))
}

// ToPatch converts the request into a domain patch.
func (r *UpdateProjectRequest) ToPatch() project.Patch {
	patch := project.Patch{Description: r.Description}
	if r.Status != nil {
		s := project.Status(*r.Status)
		patch.Status = &s
	}
	return patch
}

// ProjectFilterRequest represents the JSON body for filtering projects.
// Empty fields do not filter.
type ProjectFilterRequest struct {
	Name       string `json:"name,omitempty"`
	Status     string `json:"status,omitempty"`
	Visibility string `json:"visibility,omitempty"`
}

// Validate checks that any provided enum values are known.
func (r *ProjectFilterRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.In(statusValues()...)),
		validation.Field(&r.Visibility, validation.In(visibilityValues()...)),
	))
}

// ToCriteria converts the request into project filter criteria.
func (r *ProjectFilterRequest) ToCriteria() project.Criteria {
	return project.Criteria{
		Name:       r.Name,
		Status:     project.Status(r.Status),
		Visibility: project.Visibility(r.Visibility),
	}
}

// MomentProjectsRequest represents the JSON body of a batch project lookup.
type MomentProjectsRequest struct {
	ProjectIDs []int64 `json:"project_ids"`
}

// Validate bounds the list and requires positive ids. An empty list is
// allowed and yields an empty result.
func (r *MomentProjectsRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.ProjectIDs,
			validation.Length(0, MaxBatchSize),
			validation.Each(validation.Required, validation.Min(int64(1))),
		),
	))
}

// CreateVacancyRequest represents the JSON body for opening a vacancy.
type CreateVacancyRequest struct {
	Name string `json:"name"`
}

// Validate checks that the name is present and bounded.
func (r *CreateVacancyRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, MaxVacancyNameLength)),
	))
}

// VacancyFilterRequest represents the JSON body for filtering vacancies.
type VacancyFilterRequest struct {
	Name      string `json:"name,omitempty"`
	ProjectID int64  `json:"project_id,omitempty"`
}

// Validate rejects negative project ids.
func (r *VacancyFilterRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.ProjectID, validation.Min(int64(0))),
	))
}

// ToCriteria converts the request into vacancy filter criteria.
func (r *VacancyFilterRequest) ToCriteria() vacancy.Criteria {
	return vacancy.Criteria{NamePattern: r.Name, ProjectID: r.ProjectID}
}

// SendInvitationRequest represents the JSON body for inviting a team member
// to a stage. The inviter is always the acting user.
type SendInvitationRequest struct {
	StageID     int64  `json:"stage_id"`
	InvitedID   int64  `json:"invited_id"`
	Description string `json:"description,omitempty"`
}

// Validate requires both ids.
func (r *SendInvitationRequest) Validate() error {
	return toValidationError(validation.ValidateStruct(r,
		validation.Field(&r.StageID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.InvitedID, validation.Required, validation.Min(int64(1))),
	))
}

// ToInput converts the request into the service input.
func (r *SendInvitationRequest) ToInput(inviterID int64) ports.SendInvitationInput {
	return ports.SendInvitationInput{
		StageID:     r.StageID,
		InviterID:   inviterID,
		InvitedID:   r.InvitedID,
		Description: r.Description,
	}
}

// DeclineInvitationRequest represents the JSON body for declining an
// invitation. A blank reason is rejected twice: by InvitationService before
// the invitation is loaded, and again by Invitation.Decline.
type DeclineInvitationRequest struct {
	Reason string `json:"reason"`
}

// ParseInvitationStatus converts a query value into an invitation status.
// The match is case-insensitive.
func ParseInvitationStatus(raw string) (invitation.Status, error) {
	s := invitation.Status(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", domain.NewValidationError("query.status", "must be one of PENDING, ACCEPTED, REJECTED")
	}
	return s, nil
}

// toValidationError converts ozzo-validation errors into the domain error
// type. Field keys follow the json tags of the validated struct.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}

	fields := make(map[string]string, len(errs))
	for field, ferr := range errs {
		fields[field] = ferr.Error()
	}
	return &domain.ValidationError{Fields: fields}
}

func statusValues() []any {
	statuses := project.Statuses()
	values := make([]any, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return values
}

func visibilityValues() []any {
	visibilities := project.Visibilities()
	values := make([]any, len(visibilities))
	for i, v := range visibilities {
		values[i] = string(v)
	}
	return values
}
