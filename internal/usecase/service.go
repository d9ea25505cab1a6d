package usecase

import (
	"business-buddy/internal/data/store"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Booking   BookingService
	Chat      ChatService
	Tools     ToolsService
	Dashboard DashboardService
}

func NewService(st *store.Store, completer Completer, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(st, log),
		Booking:   NewBookingService(st, log),
		Chat:      NewChatService(completer, log),
		Tools:     NewToolsService(log),
		Dashboard: NewDashboardService(log),
	}
}
