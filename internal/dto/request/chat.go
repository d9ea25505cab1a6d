package request

import "business-buddy/pkg/llm"

type ChatRequest struct {
	Messages []llm.Message `json:"messages"`
	Language string        `json:"language"`
}
