package handlers

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/service"
)

type ReferenceHandlerParams struct {
	fx.In

	ReferenceService service.ReferenceService
	Logger           *zap.Logger
}

type ReferenceHandler struct {
	referenceService service.ReferenceService
	logger           *zap.Logger
}

func NewReferenceHandler(p ReferenceHandlerParams) *ReferenceHandler {
	return &ReferenceHandler{
		referenceService: p.ReferenceService,
		logger:           p.Logger,
	}
}

func (h *ReferenceHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.referenceService.Users(r.Context())
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, users)
}

func (h *ReferenceHandler) Provinces(w http.ResponseWriter, r *http.Request) {
	provinces, err := h.referenceService.Provinces(r.Context())
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, provinces)
}

func (h *ReferenceHandler) WorkTypes(w http.ResponseWriter, r *http.Request) {
	workTypes, err := h.referenceService.WorkTypes(r.Context())
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, workTypes)
}

func (h *ReferenceHandler) Contractors(w http.ResponseWriter, r *http.Request) {
	contractors, err := h.referenceService.Contractors(r.Context())
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, contractors)
}
