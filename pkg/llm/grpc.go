package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/rootline-ai/rootline/pkg/agent"
	pb "github.com/rootline-ai/rootline/proto"
)

// GRPCConfig configures the gateway client.
type GRPCConfig struct {
	Addr        string
	Model       string
	Temperature *float32
	MaxTokens   *int32
	SessionID   string
}

// GRPCClient adapts the LLM gateway protocol to agent.LLMClient and
// agent.StreamingLLMClient.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.LLMServiceClient
	cfg    GRPCConfig
	logger *slog.Logger
}

// NewGRPC connects to the gateway. The connection is lazy; failures
// surface on the first call.
func NewGRPC(cfg GRPCConfig, logger *slog.Logger) (*GRPCClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("gateway address is required")
	}
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM gateway: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("LLM gateway client configured", "addr", cfg.Addr, "model", cfg.Model)
	return &GRPCClient{
		conn:   conn,
		client: pb.NewLLMServiceClient(conn),
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Close releases the gateway connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Chat sends one request over the gateway.
func (c *GRPCClient) Chat(ctx context.Context, req *agent.ChatRequest) (*agent.ChatResponse, error) {
	resp, err := c.client.Chat(ctx, c.protoRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gateway chat failed: %w", err)
	}
	out := &agent.ChatResponse{
		Content:  resp.GetContent(),
		Thinking: resp.GetThinking(),
	}
	for _, tc := range resp.GetToolCalls() {
		out.ToolCalls = append(out.ToolCalls, toolCallFromProto(tc))
	}
	return out, nil
}

// ChatStream streams the reply. The channel is closed after the done
// chunk; gateway errors are carried in the done chunk's Err field.
func (c *GRPCClient) ChatStream(ctx context.Context, req *agent.ChatRequest) (<-chan agent.Chunk, error) {
	stream, err := c.client.ChatStream(ctx, c.protoRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gateway chat stream failed: %w", err)
	}

	chunks := make(chan agent.Chunk, 16)
	go func() {
		defer close(chunks)

		emit := func(chunk agent.Chunk) bool {
			select {
			case chunks <- chunk:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			chunk, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				emit(agent.Chunk{Type: agent.ChunkDone})
				return
			}
			if err != nil {
				emit(agent.Chunk{Type: agent.ChunkDone, Err: fmt.Errorf("gateway stream error: %w", err)})
				return
			}

			switch x := chunk.ChunkType.(type) {
			case *pb.ChatChunk_Thinking:
				if !emit(agent.Chunk{Type: agent.ChunkThinking, Text: x.Thinking.GetContent()}) {
					return
				}
			case *pb.ChatChunk_Text:
				if !emit(agent.Chunk{Type: agent.ChunkText, Text: x.Text.GetContent()}) {
					return
				}
			case *pb.ChatChunk_ToolCall:
				call := toolCallFromProto(x.ToolCall)
				if !emit(agent.Chunk{Type: agent.ChunkToolCall, ToolCall: &call}) {
					return
				}
			case *pb.ChatChunk_Error:
				emit(agent.Chunk{Type: agent.ChunkDone, Err: errors.New(x.Error.GetMessage())})
				return
			case *pb.ChatChunk_Done:
				emit(agent.Chunk{Type: agent.ChunkDone})
				return
			}
		}
	}()
	return chunks, nil
}

func (c *GRPCClient) protoRequest(req *agent.ChatRequest) *pb.ChatRequest {
	out := &pb.ChatRequest{
		SessionId: c.cfg.SessionID,
		Model:     c.cfg.Model,
		Messages: []*pb.Message{
			{Role: pb.Message_ROLE_SYSTEM, Content: req.System},
			{Role: pb.Message_ROLE_USER, Content: req.User},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}
	for _, def := range req.Tools {
		schemaJSON, err := json.Marshal(SchemaToJSONSchema(def.Schema))
		if err != nil {
			c.logger.Warn("failed to encode tool schema", "tool", def.Name, "error", err)
			continue
		}
		out.Tools = append(out.Tools, &pb.ToolDefinition{
			Name:        def.Name,
			Description: def.Description,
			SchemaJson:  string(schemaJSON),
		})
	}
	return out
}

// toolCallFromProto decodes a gateway tool call, preserving malformed
// argument JSON under "input" like the OpenAI path does.
func toolCallFromProto(tc *pb.ToolCall) agent.ToolCall {
	return toolCallFromOpenAI(tc.GetId(), tc.GetName(), tc.GetArgsJson())
}
