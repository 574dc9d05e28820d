package agent

import "context"

// ChatRequest is one structured request against a chat model.
type ChatRequest struct {
	System string
	User   string
	Tools  []Definition // nil = tools forbidden for this call
}

// ChatResponse is the model's reply. ToolCalls are proposals only — the
// caller decides whether and how to execute them.
type ChatResponse struct {
	Content   string
	ToolCalls []ToolCall
	Thinking  string
}

// LLMClient is the port to a chat model. Implementations honor ctx at every
// suspension point and return transport failures as errors (never partial
// panics).
type LLMClient interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkText     ChunkType = "text"
	ChunkThinking ChunkType = "thinking"
	ChunkToolCall ChunkType = "tool_call"
	ChunkDone     ChunkType = "done"
)

// Chunk is one element of a streaming chat response. The stream is finite
// and ends with a ChunkDone entry; errors terminate the stream early and are
// carried in the Done chunk's Err field.
type Chunk struct {
	Type     ChunkType
	Text     string
	ToolCall *ToolCall
	Err      error
}

// StreamingLLMClient is implemented by LLM clients that can stream.
// Optional — callers fall back to Chat when the client does not stream.
type StreamingLLMClient interface {
	LLMClient

	// ChatStream returns a lazy finite sequence of chunks. The channel is
	// closed after the ChunkDone entry.
	ChatStream(ctx context.Context, req *ChatRequest) (<-chan Chunk, error)
}
