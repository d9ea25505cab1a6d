package usecase

import (
	"context"
	"fmt"

	"business-buddy/internal/dto/request"
	"business-buddy/pkg/llm"
	"business-buddy/pkg/metrics"

	"go.uber.org/zap"
)

// Completer is the hosted-model capability the chat endpoint depends on.
// The core never sees a concrete provider.
type Completer interface {
	StreamChat(ctx context.Context, system string, messages []llm.Message) (llm.TextStream, error)
}

type ChatService interface {
	Stream(ctx context.Context, req *request.ChatRequest) (llm.TextStream, error)
}

type chatService struct {
	completer Completer
	log       *zap.Logger
}

func NewChatService(completer Completer, log *zap.Logger) ChatService {
	return &chatService{
		completer: completer,
		log:       log.With(zap.String("service", "chat")),
	}
}

func (s *chatService) Stream(ctx context.Context, req *request.ChatRequest) (llm.TextStream, error) {
	if len(req.Messages) == 0 {
		metrics.CountChatStream("invalid")
		return nil, fmt.Errorf("Messages are required")
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	stream, err := s.completer.StreamChat(ctx, buildSystemPrompt(language), req.Messages)
	if err != nil {
		s.log.Error("Failed to open chat stream", zap.Error(err), zap.String("language", language))
		metrics.CountChatStream("error")
		return nil, fmt.Errorf("failed to reach assistant")
	}

	metrics.CountChatStream("success")
	return stream, nil
}

// buildSystemPrompt returns the fixed assistant persona, parameterized only by
// the preferred response language.
func buildSystemPrompt(language string) string {
	languageName := "English"
	switch language {
	case "zu":
		languageName = "isiZulu"
	case "xh":
		languageName = "isiXhosa"
	case "af":
		languageName = "Afrikaans"
	}

	return fmt.Sprintf(`You are Mzansi Business Buddy, a smart, multilingual assistant built to help small, micro, and medium enterprises (SMMEs) in South Africa grow and manage their businesses. Provide clear, actionable, and inclusive support across business operations, finance, marketing, compliance, and learning.

Key guidelines:
- Use simple, localized language appropriate for the South African context
- Be culturally and economically sensitive
- Focus on practical, actionable advice
- Support township entrepreneurs, rural shopkeepers, informal traders, and youth-owned businesses
- Point to specific South African resources (SEFA, NYDA, CIPC, SARS, IDC)
- Be encouraging and supportive, especially for new entrepreneurs

Language preference: %s

If asked about business registration, guide them through the CIPC process; for funding, mention SEFA, NYDA, IDC and other SA-specific options; for tax, reference SARS requirements and deadlines; for marketing, suggest local, cost-effective strategies; for compliance, cover B-BBEE, tax obligations, and labor law basics.

Always end responses with encouragement and offer to help with follow-up questions.`, languageName)
}
