package handlers

import (
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/doworks-png/road-monitor/internal/service"
)

type FinancialHandlerParams struct {
	fx.In

	FinancialService service.FinancialService
	Logger           *zap.Logger
}

type FinancialHandler struct {
	financialService service.FinancialService
	logger           *zap.Logger
}

func NewFinancialHandler(p FinancialHandlerParams) *FinancialHandler {
	return &FinancialHandler{
		financialService: p.FinancialService,
		logger:           p.Logger,
	}
}

func (h *FinancialHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.financialService.List(r.Context(), r.URL.Query().Get("projectId"))
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusOK, entries)
}

func (h *FinancialHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateFinancialInput
	if !decodeBody(w, r, &input) {
		return
	}

	entry, err := h.financialService.Create(r.Context(), input)
	if err != nil {
		RespondError(w, h.logger, err)
		return
	}
	RespondData(w, http.StatusCreated, entry)
}
