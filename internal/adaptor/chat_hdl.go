package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"business-buddy/internal/dto/request"
	"business-buddy/internal/usecase"
	"business-buddy/pkg/utils"

	"go.uber.org/zap"
)

type ChatHandler struct {
	service usecase.ChatService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With(zap.String("handler", "chat")),
	}
}

// Chat handles POST /chat: the assistant reply is streamed as plain text
// chunks as the model produces them.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	stream, err := h.service.Stream(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}
	defer stream.Close()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)

	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			// Headers are sent; all we can do is log and cut the stream
			h.log.Error("Chat stream interrupted", zap.Error(err))
			return
		}

		if _, err := io.WriteString(w, chunk); err != nil {
			h.log.Warn("Client went away during chat stream", zap.Error(err))
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (h *ChatHandler) handleServiceError(w http.ResponseWriter, err error) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "required"):
		h.log.Warn("Chat validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to start chat stream", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
