package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/project-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// ProjectHandler handles HTTP requests for projects and their vacancies.
type ProjectHandler struct {
	svc       ports.ProjectService
	vacancies ports.VacancyService
}

// NewProjectHandler creates a new ProjectHandler with the given service ports.
func NewProjectHandler(svc ports.ProjectService, vacancies ports.VacancyService) *ProjectHandler {
	return &ProjectHandler{svc: svc, vacancies: vacancies}
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.CreateProject(r.Context(), req.ToInput(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToProjectResultResponse(res))
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	projects, err := h.svc.GetAllProjects(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// FilterProjects handles POST /api/v1/projects/filter.
func (h *ProjectHandler) FilterProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	var req dto.ProjectFilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	projects, err := h.svc.FindAllProjectsByFilters(r.Context(), req.ToCriteria(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// BatchProjects handles POST /api/v1/projects/batch. Either every requested
// project is returned or the call fails.
func (h *ProjectHandler) BatchProjects(w http.ResponseWriter, r *http.Request) {
	var req dto.MomentProjectsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	projects, err := h.svc.GetMomentProjects(r.Context(), req.ProjectIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// GetProject handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProjectByID(r.Context(), id, userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(p))
}

// UpdateProject handles PATCH /api/v1/projects/{id}.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateProject(r.Context(), id, req.ToPatch(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectResponse(updated))
}

// CreateVacancy handles POST /api/v1/projects/{id}/vacancies.
func (h *ProjectHandler) CreateVacancy(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}
	projectID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.CreateVacancyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	v, err := h.vacancies.CreateVacancy(r.Context(), projectID, req.Name, userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToVacancyResponse(v))
}

// FilterVacancies handles POST /api/v1/vacancies/filter.
func (h *ProjectHandler) FilterVacancies(w http.ResponseWriter, r *http.Request) {
	userID, ok := actingUser(w, r)
	if !ok {
		return
	}

	var req dto.VacancyFilterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	vs, err := h.vacancies.FindVacanciesByFilters(r.Context(), req.ToCriteria(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToVacancyListResponse(vs))
}
