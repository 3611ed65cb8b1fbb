package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/service"
)

type ProjectHandlerParams struct {
	fx.In

	ProjectService service.ProjectService
	Logger         *zap.Logger
}

type ProjectHandler struct {
	projectService service.ProjectService
	logger         *zap.Logger
}

func NewProjectHandler(p ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectService: p.ProjectService,
		logger:         p.Logger,
	}
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.List(r.Context())
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProjectInput
	if !decodeBody(w, r, &input) {
		return
	}

	project, err := h.projectService.Create(r.Context(), input)
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}

	h.logger.Info("project created via API", zap.String("project_id", project.ID))
	RespondData(w, http.StatusCreated, project)
}

func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var input service.UpdateProjectInput
	if !decodeBody(w, r, &input) {
		return
	}

	project, err := h.projectService.Update(r.Context(), id, input)
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.projectService.Delete(r.Context(), id); err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}
