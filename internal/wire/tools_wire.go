package wire

import (
	"business-buddy/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTools(r chi.Router, toolsHandler *adaptor.ToolsHandler) {
	r.Post("/tools/calculator/profit", toolsHandler.CalculateProfit)
	r.Post("/tools/calculator/cashflow", toolsHandler.CalculateCashFlow)

	r.Post("/tools/marketing/whatsapp", toolsHandler.WhatsAppMessage)
	r.Post("/tools/marketing/caption", toolsHandler.SocialCaption)
	r.Get("/tools/marketing/templates", toolsHandler.PosterTemplates)
}
