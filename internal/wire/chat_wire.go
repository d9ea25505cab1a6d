package wire

import (
	"business-buddy/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireChat(r chi.Router, chatHandler *adaptor.ChatHandler) {
	r.Post("/chat", chatHandler.Chat)
}
