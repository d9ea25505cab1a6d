package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"business-buddy/internal/dto/request"
	"business-buddy/internal/usecase"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

type ToolsHandler struct {
	service usecase.ToolsService
	log     *zap.Logger
}

func NewToolsHandler(service usecase.ToolsService, log *zap.Logger) *ToolsHandler {
	return &ToolsHandler{
		service: service,
		log:     log.With(zap.String("handler", "tools")),
	}
}

// CalculateProfit handles POST /tools/calculator/profit
func (h *ToolsHandler) CalculateProfit(w http.ResponseWriter, r *http.Request) {
	var req request.ProfitCalcRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	utils.ResponseSuccess(w, h.service.CalculateProfit(r.Context(), &req))
}

// CalculateCashFlow handles POST /tools/calculator/cashflow
func (h *ToolsHandler) CalculateCashFlow(w http.ResponseWriter, r *http.Request) {
	var req request.CashFlowCalcRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	utils.ResponseSuccess(w, h.service.CalculateCashFlow(r.Context(), &req))
}

// WhatsAppMessage handles POST /tools/marketing/whatsapp
func (h *ToolsHandler) WhatsAppMessage(w http.ResponseWriter, r *http.Request) {
	var req request.MarketingTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	message, err := h.service.WhatsAppMessage(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "generate WhatsApp message")
		return
	}

	utils.ResponseSuccess(w, message)
}

// SocialCaption handles POST /tools/marketing/caption
func (h *ToolsHandler) SocialCaption(w http.ResponseWriter, r *http.Request) {
	var req request.MarketingTemplateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	caption, err := h.service.SocialCaption(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "generate social caption")
		return
	}

	utils.ResponseSuccess(w, caption)
}

// PosterTemplates handles GET /tools/marketing/templates
func (h *ToolsHandler) PosterTemplates(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.PosterTemplates(r.Context()))
}

func (h *ToolsHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "Missing required fields"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
