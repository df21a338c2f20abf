// Package mcp exposes the clone-detection engine over the Model Context
// Protocol, grounded on the pyscn-mcp server: one tool registration
// function wiring mcp.NewTool descriptors to handler methods on a shared
// HandlerSet.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers every jscpd MCP tool with s, dispatching to h.
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	s.AddTool(mcp.NewTool("find_clones",
		mcp.WithDescription("Detect duplicated code across one or more paths using token-based clone detection"),
		mcp.WithArray("paths",
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Files or directories to scan")),
		mcp.WithNumber("min_tokens",
			mcp.Description("Minimum significant tokens per match window (default: 50)")),
		mcp.WithNumber("min_lines",
			mcp.Description("Minimum lines for a clone to be reported (default: 5)")),
		mcp.WithString("mode",
			mcp.Description("Comparison mode: strict, mild, or weak (default: mild)")),
		mcp.WithBoolean("ignore_case",
			mcp.Description("Fold case when comparing tokens (default: false)")),
		mcp.WithArray("exclude",
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Glob patterns of paths to exclude")),
	), h.HandleFindClones)

	s.AddTool(mcp.NewTool("get_duplication_stats",
		mcp.WithDescription("Summarize duplication percentage per source format without listing individual clones"),
		mcp.WithArray("paths",
			mcp.Required(),
			mcp.Items(map[string]any{"type": "string"}),
			mcp.Description("Files or directories to scan")),
		mcp.WithString("mode",
			mcp.Description("Comparison mode: strict, mild, or weak (default: mild)")),
	), h.HandleDuplicationStats)
}
