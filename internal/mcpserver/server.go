// Package mcpserver exposes the calculator as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bft-labs/bigadd/internal/calc"
	"github.com/bft-labs/bigadd/pkg/log"
)

// Server wraps an MCP server with the add, sum and ping tools registered.
type Server struct {
	server *server.MCPServer
	calc   *calc.Calculator
	logger log.Logger
}

// New creates the server. c must not be nil.
func New(version string, c *calc.Calculator, logger log.Logger) *Server {
	s := &Server{
		server: server.NewMCPServer("bigadd", version),
		calc:   c,
		logger: log.OrNoop(logger),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.server
}

// Serve blocks serving MCP over stdin/stdout.
func (s *Server) Serve() error {
	return server.ServeStdio(s.server)
}

// digitsPattern is advertised in tool schemas; handlers still validate.
const digitsPattern = "^[0-9]+$"

func (s *Server) registerTools() {
	s.server.AddTool(mcp.NewTool("ping",
		mcp.WithDescription("Check that the server is reachable"),
	), s.Ping)

	s.server.AddTool(mcp.NewTool("add",
		mcp.WithDescription("Add two non-negative integers given as decimal digit strings of any length"),
		mcp.WithString("a",
			mcp.Required(),
			mcp.Description("First operand, digits 0-9 only"),
			mcp.Pattern(digitsPattern),
		),
		mcp.WithString("b",
			mcp.Required(),
			mcp.Description("Second operand, digits 0-9 only"),
			mcp.Pattern(digitsPattern),
		),
	), s.Add)

	s.server.AddTool(mcp.NewTool("sum",
		mcp.WithDescription("Add any number of non-negative integers given as decimal digit strings"),
		mcp.WithArray("operands",
			mcp.Required(),
			mcp.Description("Operands as strings of digits 0-9"),
			mcp.Items(map[string]interface{}{
				"type":    "string",
				"pattern": digitsPattern,
			}),
		),
	), s.Sum)
}

func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping tool.
func (s *Server) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong"), nil
}

// Add handles the add tool.
func (s *Server) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := stringArg(request, "a")
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	b, err := stringArg(request, "b")
	if err != nil {
		return newErrorResult("%v", err), nil
	}

	res, err := s.calc.Add(ctx, a, b)
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	return mcp.NewToolResultText(res.Sum), nil
}

// Sum handles the sum tool.
func (s *Server) Sum(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, ok := request.Params.Arguments["operands"]
	if !ok || raw == nil {
		return newErrorResult("missing argument %q", "operands"), nil
	}
	items, ok := raw.([]interface{})
	if !ok {
		return newErrorResult("argument %q must be an array of strings", "operands"), nil
	}

	operands := make([]string, len(items))
	for i, item := range items {
		str, ok := item.(string)
		if !ok {
			return newErrorResult("operand %d must be a string, got %T", i+1, item), nil
		}
		operands[i] = str
	}

	res, err := s.calc.Sum(ctx, operands)
	if err != nil {
		return newErrorResult("%v", err), nil
	}
	return mcp.NewToolResultText(res.Sum), nil
}

// stringArg rejects numbers: JSON numbers lose precision past 2^53.
func stringArg(request mcp.CallToolRequest, name string) (string, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return "", fmt.Errorf("missing argument %q", name)
	}
	str, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", name, raw)
	}
	return str, nil
}
