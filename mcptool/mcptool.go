// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcptool

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/jongio/whichprob/diagnose"
	"github.com/jongio/whichprob/logutil"
)

// Tool call budget: a short burst, then one call per second. Diagnoses are
// cheap but walk the filesystem, so a runaway agent should back off.
const (
	rateLimitPerSecond = 1
	rateLimitBurst     = 5
)

var logger = logutil.NewLogger("mcptool")

// GetArgsMap extracts the arguments map from an MCP tool call request.
// Returns an empty map if arguments are nil or not a map.
func GetArgsMap(request mcp.CallToolRequest) map[string]interface{} {
	if request.Params.Arguments != nil {
		if m, ok := request.Params.Arguments.(map[string]interface{}); ok {
			return m
		}
	}
	return map[string]interface{}{}
}

// GetStringParam extracts a string parameter from the arguments map.
// Returns the value and whether it was found and is a string.
func GetStringParam(args map[string]interface{}, key string) (string, bool) {
	val, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// GetIntParam extracts an integer parameter from the arguments map. JSON
// numbers arrive as float64, so both float64 and int values are accepted.
func GetIntParam(args map[string]interface{}, key string) (int, bool) {
	val, ok := args[key]
	if !ok {
		return 0, false
	}
	switch n := val.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

// MarshalToolResult marshals any value to JSON and returns it as an MCP tool result.
func MarshalToolResult(data interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// NewServer creates the MCP server with the diagnose tool registered.
func NewServer(name, version string) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
	)

	tool := mcp.NewTool("diagnose",
		mcp.WithDescription("Explain why looking up an executable by name failed or picked an unexpected binary. Walks the PATH in search order, classifies every directory, checks executability of every exact-name match, and offers close spellings when nothing matched. Never executes the program."),
		mcp.WithString("program",
			mcp.Required(),
			mcp.Description("Name of the program that could not be run, e.g. \"bundle\""),
		),
		mcp.WithString("path",
			mcp.Description("PATH value to scan instead of this process's environment"),
		),
		mcp.WithString("cwd",
			mcp.Description("Working directory for resolving relative PATH entries"),
		),
		mcp.WithNumber("suggest",
			mcp.Description("Maximum spelling suggestions to offer when not found (0 disables)"),
		),
	)

	limiter := rate.NewLimiter(rate.Limit(rateLimitPerSecond), rateLimitBurst)
	s.AddTool(tool, diagnoseHandler(limiter))

	return s
}

func diagnoseHandler(limiter *rate.Limiter) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !limiter.Allow() {
			return mcp.NewToolResultError("rate limit exceeded for tool \"diagnose\", please wait before retrying"), nil
		}

		args := GetArgsMap(request)
		program, ok := GetStringParam(args, "program")
		if !ok {
			return mcp.NewToolResultError("missing required parameter \"program\""), nil
		}

		w := diagnose.New(program)
		if pathEnv, ok := GetStringParam(args, "path"); ok {
			w.PathEnv = pathEnv
		}
		if cwd, ok := GetStringParam(args, "cwd"); ok {
			w.Cwd = cwd
		}
		if limit, ok := GetIntParam(args, "suggest"); ok {
			w.GuessLimit = limit
		}

		logger.Debug("mcp diagnose call", "program", program)

		report, err := w.Diagnose()
		if err != nil {
			return mcp.NewToolResultError("diagnosis failed: " + err.Error()), nil
		}
		return MarshalToolResult(report)
	}
}

// Serve runs the MCP server over stdio until the client disconnects.
func Serve(name, version string) error {
	return server.ServeStdio(NewServer(name, version))
}
