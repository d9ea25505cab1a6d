package wire

import (
	"business-buddy/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Debug listings; both paths expose the same unified store
	r.Get("/auth/register", authHandler.ListUsers)
	r.Get("/auth/login", authHandler.ListUsers)
}
