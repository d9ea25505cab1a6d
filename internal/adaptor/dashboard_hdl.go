package adaptor

import (
	"net/http"

	"business-buddy/internal/usecase"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		log:     log.With(zap.String("handler", "dashboard")),
	}
}

// Manufacturer handles GET /dashboard/manufacturer
func (h *DashboardHandler) Manufacturer(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.Manufacturer(r.Context()))
}

// Supplier handles GET /dashboard/supplier
func (h *DashboardHandler) Supplier(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.Supplier(r.Context()))
}
