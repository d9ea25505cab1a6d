package adaptor

import (
	"business-buddy/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Booking   *BookingHandler
	Chat      *ChatHandler
	Tools     *ToolsHandler
	Dashboard *DashboardHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Chat:      NewChatHandler(service.Chat, log),
		Tools:     NewToolsHandler(service.Tools, log),
		Dashboard: NewDashboardHandler(service.Dashboard, log),
	}
}
