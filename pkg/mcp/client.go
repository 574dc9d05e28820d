// Package mcp connects the engine to MCP (Model Context Protocol) servers
// and exposes their tools through the agent.Tool port. Observability and
// cloud tooling live behind MCP servers; this package is the only place
// that knows the protocol.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/version"
)

// connectTimeout bounds a single server handshake.
const connectTimeout = 30 * time.Second

// Client manages sessions to the configured MCP servers. Safe for
// concurrent use; tool calls from the parallel executor share sessions.
type Client struct {
	cfg    config.MCPConfig
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*mcpsdk.ClientSession
	clients  map[string]*mcpsdk.Client
	failed   map[string]string
}

// NewClient creates a client for the configured servers. No connections
// are made until Connect.
func NewClient(cfg config.MCPConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:      cfg,
		logger:   logger.With("component", "mcp"),
		sessions: make(map[string]*mcpsdk.ClientSession),
		clients:  make(map[string]*mcpsdk.Client),
		failed:   make(map[string]string),
	}
}

// Connect establishes sessions to every configured server. Servers that
// fail to connect are recorded, not fatal; FailedServers reports them and
// the caller decides whether a partial tool set is acceptable.
func (c *Client) Connect(ctx context.Context) {
	for _, server := range c.cfg.Servers {
		if err := c.connectServer(ctx, server); err != nil {
			c.mu.Lock()
			c.failed[server.Name] = err.Error()
			c.mu.Unlock()
			c.logger.Warn("MCP server failed to connect",
				"server", server.Name, "error", err)
			continue
		}
		c.logger.Info("MCP server connected", "server", server.Name)
	}
}

func (c *Client) connectServer(ctx context.Context, server config.MCPServerConfig) error {
	transport, err := createTransport(server.Transport)
	if err != nil {
		return fmt.Errorf("create transport for %q: %w", server.Name, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := client.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport if it holds resources (stdio child process).
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("connect to %q: %w", server.Name, err)
	}

	c.mu.Lock()
	c.sessions[server.Name] = session
	c.clients[server.Name] = client
	delete(c.failed, server.Name)
	c.mu.Unlock()
	return nil
}

// FailedServers returns server name to error message for servers that did
// not connect.
func (c *Client) FailedServers() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.failed))
	for k, v := range c.failed {
		out[k] = v
	}
	return out
}

// RegisterTools lists every connected server's tools and registers them
// as agent tools named "<server>.<tool>". Returns how many were added.
func (c *Client) RegisterTools(ctx context.Context, registry *agent.Registry) (int, error) {
	c.mu.RLock()
	names := make([]string, 0, len(c.sessions))
	for name := range c.sessions {
		names = append(names, name)
	}
	c.mu.RUnlock()

	added := 0
	for _, serverName := range names {
		c.mu.RLock()
		session := c.sessions[serverName]
		c.mu.RUnlock()

		result, err := session.ListTools(ctx, nil)
		if err != nil {
			return added, fmt.Errorf("list tools on %q: %w", serverName, err)
		}
		for _, tool := range result.Tools {
			registry.Register(&serverTool{
				client: c,
				server: serverName,
				name:   tool.Name,
				desc:   tool.Description,
				schema: convertSchema(tool.InputSchema),
			})
			added++
		}
	}
	return added, nil
}

// CallTool executes one tool on the named server. Protocol-level tool
// errors come back as Go errors carrying the server's message.
func (c *Client) CallTool(ctx context.Context, serverName, toolName string, args map[string]any) (any, error) {
	c.mu.RLock()
	session, ok := c.sessions[serverName]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("MCP server %q is not connected", serverName)
	}

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		return nil, fmt.Errorf("call %s on %q: %w", toolName, serverName, err)
	}

	text := extractTextContent(result)
	if result.IsError {
		return nil, fmt.Errorf("tool %s failed: %s", toolName, text)
	}

	// Structured payloads come through as JSON text; hand the decoded
	// value to the engine so the scorer can inspect it.
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err == nil {
		return decoded, nil
	}
	return text, nil
}

// Close tears down all sessions. Stdio child processes exit with their
// session.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []string
	for name, session := range c.sessions {
		if err := session.Close(); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
		}
	}
	c.sessions = make(map[string]*mcpsdk.ClientSession)
	c.clients = make(map[string]*mcpsdk.Client)

	if len(errs) > 0 {
		return fmt.Errorf("close MCP sessions: %s", strings.Join(errs, "; "))
	}
	return nil
}

// extractTextContent concatenates the text items of a result. Non-text
// content (images, embedded resources) is skipped.
func extractTextContent(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if tc, ok := content.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
