package adaptor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"business-buddy/internal/usecase"
	"business-buddy/pkg/llm"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStream struct {
	chunks []string
	pos    int
}

func (s *stubStream) Recv() (string, error) {
	if s.pos >= len(s.chunks) {
		return "", io.EOF
	}
	chunk := s.chunks[s.pos]
	s.pos++
	return chunk, nil
}

func (s *stubStream) Close() error { return nil }

type stubCompleter struct {
	chunks []string
	err    error
}

func (s *stubCompleter) StreamChat(_ context.Context, _ string, _ []llm.Message) (llm.TextStream, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &stubStream{chunks: s.chunks}, nil
}

func newChatRouter(completer usecase.Completer) *chi.Mux {
	log := zap.NewNop()
	handler := NewChatHandler(usecase.NewChatService(completer, log), log)

	r := chi.NewRouter()
	r.Post("/chat", handler.Chat)
	return r
}

func TestChatEndpoint(t *testing.T) {
	t.Run("StreamsPlainText", func(t *testing.T) {
		router := newChatRouter(&stubCompleter{chunks: []string{"Sawubona! ", "How can I help?"}})

		rec := doJSON(t, router, http.MethodPost, "/chat", map[string]any{
			"messages": []map[string]string{{"role": "user", "content": "Hello"}},
			"language": "zu",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		assert.Equal(t, "Sawubona! How can I help?", rec.Body.String())
	})

	t.Run("EmptyMessages", func(t *testing.T) {
		router := newChatRouter(&stubCompleter{})

		rec := doJSON(t, router, http.MethodPost, "/chat", map[string]any{
			"messages": []map[string]string{},
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"Messages are required"}`, rec.Body.String())
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		router := newChatRouter(&stubCompleter{err: fmt.Errorf("connection refused")})

		rec := doJSON(t, router, http.MethodPost, "/chat", map[string]any{
			"messages": []map[string]string{{"role": "user", "content": "Hello"}},
		})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	})
}
