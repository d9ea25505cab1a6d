package usecase

import (
	"context"
	"io"
	"testing"

	"business-buddy/internal/dto/request"
	"business-buddy/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStream struct {
	chunks []string
	pos    int
	closed bool
}

func (f *fakeStream) Recv() (string, error) {
	if f.pos >= len(f.chunks) {
		return "", io.EOF
	}
	chunk := f.chunks[f.pos]
	f.pos++
	return chunk, nil
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

type fakeCompleter struct {
	system   string
	messages []llm.Message
	stream   *fakeStream
	err      error
}

func (f *fakeCompleter) StreamChat(_ context.Context, system string, messages []llm.Message) (llm.TextStream, error) {
	f.system = system
	f.messages = messages
	if f.err != nil {
		return nil, f.err
	}
	return f.stream, nil
}

func TestChatStream(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		completer := &fakeCompleter{stream: &fakeStream{chunks: []string{"Hello", " there"}}}
		svc := NewChatService(completer, zap.NewNop())

		stream, err := svc.Stream(ctx, &request.ChatRequest{
			Messages: []llm.Message{{Role: "user", Content: "Hi"}},
		})
		require.NoError(t, err)

		first, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, "Hello", first)

		assert.Len(t, completer.messages, 1)
	})

	t.Run("EmptyMessages", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{}, zap.NewNop())

		_, err := svc.Stream(ctx, &request.ChatRequest{})
		require.Error(t, err)
		assert.Equal(t, "Messages are required", err.Error())
	})

	t.Run("DefaultLanguageIsEnglish", func(t *testing.T) {
		completer := &fakeCompleter{stream: &fakeStream{}}
		svc := NewChatService(completer, zap.NewNop())

		_, err := svc.Stream(ctx, &request.ChatRequest{
			Messages: []llm.Message{{Role: "user", Content: "Hi"}},
		})
		require.NoError(t, err)
		assert.Contains(t, completer.system, "Language preference: English")
	})

	t.Run("LanguageParameterizesPrompt", func(t *testing.T) {
		completer := &fakeCompleter{stream: &fakeStream{}}
		svc := NewChatService(completer, zap.NewNop())

		_, err := svc.Stream(ctx, &request.ChatRequest{
			Messages: []llm.Message{{Role: "user", Content: "Sawubona"}},
			Language: "zu",
		})
		require.NoError(t, err)
		assert.Contains(t, completer.system, "Language preference: isiZulu")
		assert.Contains(t, completer.system, "Mzansi Business Buddy")
	})
}
