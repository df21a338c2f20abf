package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpsdk "github.com/mark3labs/mcp-go/mcp"

	"github.com/moinsen-dev/jscpd2025/core"
	"github.com/moinsen-dev/jscpd2025/internal/discovery"
	"github.com/moinsen-dev/jscpd2025/internal/engine"
)

// HandlerSet exposes MCP tool handlers with the shared defaults a run falls
// back to when the request omits an option.
type HandlerSet struct {
	DefaultConfig core.Config
}

// NewHandlerSet builds a HandlerSet seeded with core.DefaultConfig.
func NewHandlerSet() *HandlerSet {
	return &HandlerSet{DefaultConfig: core.DefaultConfig()}
}

type cloneJSON struct {
	Format   string `json:"format"`
	Tokens   int    `json:"tokens"`
	FileA    string `json:"fileA"`
	StartA   int    `json:"startLineA"`
	EndA     int    `json:"endLineA"`
	FileB    string `json:"fileB"`
	StartB   int    `json:"startLineB"`
	EndB     int    `json:"endLineB"`
}

// HandleFindClones handles the find_clones tool.
func (h *HandlerSet) HandleFindClones(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcpsdk.NewToolResultError("invalid arguments format"), nil
	}

	paths, err := stringArray(args, "paths")
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}
	if len(paths) == 0 {
		return mcpsdk.NewToolResultError("paths parameter is required and must be a non-empty array of strings"), nil
	}

	cfg := h.DefaultConfig
	if v, ok := args["min_tokens"].(float64); ok {
		cfg.MinTokens = int(v)
	}
	if v, ok := args["min_lines"].(float64); ok {
		cfg.MinLines = int(v)
	}
	if v, ok := args["mode"].(string); ok && v != "" {
		cfg.Mode = core.Mode(v)
	}
	if v, ok := args["ignore_case"].(bool); ok {
		cfg.IgnoreCase = v
	}
	if err := cfg.Validate(); err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	var exclude []string
	if raw, ok := args["exclude"].([]interface{}); ok {
		for _, e := range raw {
			if s, ok := e.(string); ok {
				exclude = append(exclude, s)
			}
		}
	}

	sources, err := discovery.Discover(paths, discovery.DefaultFormatExts, exclude, cfg.MaxSize)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("discovering sources: %v", err)), nil
	}

	clones, _, err := engine.Scan(ctx, engine.Options{Config: cfg, Sources: sources})
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("running detector: %v", err)), nil
	}

	out := make([]cloneJSON, 0, len(clones))
	for _, c := range clones {
		out = append(out, cloneJSON{
			Format: c.Format,
			Tokens: c.Tokens,
			FileA:  c.DuplicationA.SourceID,
			StartA: c.DuplicationA.Start.Line,
			EndA:   c.DuplicationA.End.Line,
			FileB:  c.DuplicationB.SourceID,
			StartB: c.DuplicationB.Start.Line,
			EndB:   c.DuplicationB.End.Line,
		})
	}

	jsonData, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("marshaling result: %v", err)), nil
	}
	return mcpsdk.NewToolResultText(string(jsonData)), nil
}

// HandleDuplicationStats handles the get_duplication_stats tool.
func (h *HandlerSet) HandleDuplicationStats(ctx context.Context, request mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcpsdk.NewToolResultError("invalid arguments format"), nil
	}

	paths, err := stringArray(args, "paths")
	if err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}
	if len(paths) == 0 {
		return mcpsdk.NewToolResultError("paths parameter is required and must be a non-empty array of strings"), nil
	}

	cfg := h.DefaultConfig
	if v, ok := args["mode"].(string); ok && v != "" {
		cfg.Mode = core.Mode(v)
	}
	if err := cfg.Validate(); err != nil {
		return mcpsdk.NewToolResultError(err.Error()), nil
	}

	sources, err := discovery.Discover(paths, discovery.DefaultFormatExts, nil, cfg.MaxSize)
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("discovering sources: %v", err)), nil
	}

	_, stat, err := engine.Scan(ctx, engine.Options{Config: cfg, Sources: sources})
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("running detector: %v", err)), nil
	}

	jsonData, err := json.MarshalIndent(stat, "", "  ")
	if err != nil {
		return mcpsdk.NewToolResultError(fmt.Sprintf("marshaling result: %v", err)), nil
	}
	return mcpsdk.NewToolResultText(string(jsonData)), nil
}

func stringArray(args map[string]interface{}, key string) ([]string, error) {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s parameter is required and must be an array of strings", key)
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s must contain only strings", key)
		}
		out = append(out, s)
	}
	return out, nil
}
