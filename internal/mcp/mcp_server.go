// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Slogate MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Slogate Release Gate Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: run_gate_check ---
	s.AddTool(mcp.NewTool("run_gate_check",
		mcp.WithDescription("Evaluate every SLO and error budget against the current metric snapshot and return the gate report."),
		mcp.WithString("snapshot_file", mcp.Description("Path to a JSON metric snapshot (defaults to the built-in demo snapshot).")),
		mcp.WithNumber("budget_warning", mcp.Description("Warning threshold for budget consumption, in percent.")),
		mcp.WithNumber("budget_critical", mcp.Description("Critical threshold for budget consumption, in percent. A budget at or past this fails the gate.")),
		mcp.WithString("targets_override", mcp.Description("Comma-separated name:value pairs that override configured SLO targets.")),
	), h.handleRunGateCheck)

	// --- 2. Tool: get_slo_definitions ---
	s.AddTool(mcp.NewTool("get_slo_definitions",
		mcp.WithDescription("Return the configured service level objectives and their targets."),
	), h.handleGetSLODefinitions)

	// --- 3. Tool: get_history_status ---
	s.AddTool(mcp.NewTool("get_history_status",
		mcp.WithDescription("Return status information about the gate run history store."),
	), h.handleGetHistoryStatus)

	return s
}

// StartMCPServer starts the Slogate MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
