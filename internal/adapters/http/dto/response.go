// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/project-service/internal/domain/invitation"
	"github.com/jsamuelsen11/project-service/internal/domain/project"
	"github.com/jsamuelsen11/project-service/internal/domain/vacancy"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// WarningResponse reports a problem that happened after a change committed.
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ProjectResponse represents a single project in HTTP responses.
type ProjectResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	OwnerID        int64             `json:"owner_id"`
	Status         string            `json:"status"`
	Visibility     string            `json:"visibility"`
	MaxStorageSize int64             `json:"max_storage_size"`
	TeamMemberIDs  []int64           `json:"team_member_ids"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
	Warnings       []WarningResponse `json:"warnings,omitempty"`
}

// ProjectListResponse represents a list of projects in HTTP responses.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain Project entity to an HTTP response DTO.
func ToProjectResponse(p *project.Project) ProjectResponse {
	team := p.TeamMemberIDs
	if team == nil {
		team = []int64{}
	}
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		OwnerID:        p.OwnerID,
		Status:         p.Status.String(),
		Visibility:     p.Visibility.String(),
		MaxStorageSize: p.MaxStorageSize,
		TeamMemberIDs:  team,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}

// ToProjectResultResponse converts a committed project and its warnings.
func ToProjectResultResponse(res *ports.ProjectResult) ProjectResponse {
	resp := ToProjectResponse(&res.Project)
	resp.Warnings = toWarnings(res.Warnings)
	return resp
}

// ToProjectListResponse converts a slice of domain Project entities to an
// HTTP list response DTO.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{
		Projects: items,
		Count:    len(items),
	}
}

// InvitationResponse represents a single stage invitation in HTTP responses.
type InvitationResponse struct {
	ID              int64             `json:"id"`
	StageID         int64             `json:"stage_id"`
	InviterID       int64             `json:"inviter_id"`
	InvitedID       int64             `json:"invited_id"`
	Status          string            `json:"status"`
	Description     string            `json:"description,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
	Warnings        []WarningResponse `json:"warnings,omitempty"`
}

// InvitationListResponse represents a list of invitations.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	Count       int                  `json:"count"`
}

// ToInvitationResponse converts a domain Invitation to an HTTP response DTO.
func ToInvitationResponse(inv *invitation.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:              inv.ID,
		StageID:         inv.StageID,
		InviterID:       inv.InviterID,
		InvitedID:       inv.InvitedID,
		Status:          inv.Status.String(),
		Description:     inv.Description,
		RejectionReason: inv.RejectionReason,
		CreatedAt:       inv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       inv.UpdatedAt.Format(time.RFC3339),
	}
}

// ToInvitationResultResponse converts a committed invitation and its warnings.
func ToInvitationResultResponse(res *ports.InvitationResult) InvitationResponse {
	resp := ToInvitationResponse(&res.Invitation)
	resp.Warnings = toWarnings(res.Warnings)
	return resp
}

// ToInvitationListResponse converts invitations to a list response.
func ToInvitationListResponse(invs []invitation.Invitation) InvitationListResponse {
	items := make([]InvitationResponse, len(invs))
	for i := range invs {
		items[i] = ToInvitationResponse(&invs[i])
	}
	return InvitationListResponse{Invitations: items, Count: len(items)}
}

// VacancyResponse represents a single vacancy in HTTP responses.
type VacancyResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ProjectID int64  `json:"project_id"`
	CreatedAt string `json:"created_at"`
}

// VacancyListResponse represents a list of vacancies.
type VacancyListResponse struct {
	Vacancies []VacancyResponse `json:"vacancies"`
	Count     int               `json:"count"`
}

// ToVacancyResponse converts a domain Vacancy to an HTTP response DTO.
func ToVacancyResponse(v *vacancy.Vacancy) VacancyResponse {
	return VacancyResponse{
		ID:        v.ID,
		Name:      v.Name,
		ProjectID: v.ProjectID,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

// ToVacancyListResponse converts vacancies to a list response.
func ToVacancyListResponse(vs []vacancy.Vacancy) VacancyListResponse {
	items := make([]VacancyResponse, len(vs))
	for i := range vs {
		items[i] = ToVacancyResponse(&vs[i])
	}
	return VacancyListResponse{Vacancies: items, Count: len(items)}
}

func toWarnings(ws []ports.Warning) []WarningResponse {
	if len(ws) == 0 {
		return nil
	}
	out := make([]WarningResponse, len(ws))
	for i, w := range ws {
		out[i] = WarningResponse(w)
	}
	return out
}
