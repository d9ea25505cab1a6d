package wire

import (
	"business-buddy/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDashboard(r chi.Router, dashboardHandler *adaptor.DashboardHandler) {
	r.Get("/dashboard/manufacturer", dashboardHandler.Manufacturer)
	r.Get("/dashboard/supplier", dashboardHandler.Supplier)
}
