package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/slogate/internal/contract"
	mcp_internal "github.com/huangsam/slogate/internal/mcp"
	"github.com/huangsam/slogate/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig() *contract.Config {
	return &contract.Config{
		Precision:      contract.DefaultPrecision,
		Output:         schema.TextOut,
		ReportsDir:     contract.DefaultReportsDir,
		BudgetWarning:  schema.DefaultBudgetWarning,
		BudgetCritical: schema.DefaultBudgetCritical,
		SLOs:           schema.DefaultSLODefinitions(),
	}
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	// Create a dummy manager, though we shouldn't hit it because we test validation errors
	var mgr contract.HistoryManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)

	ctx := context.Background()

	t.Run("run_gate_check invalid targets_override", func(t *testing.T) {
		tool := s.GetTool("run_gate_check")
		require.NotNil(t, tool, "Tool run_gate_check should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "run_gate_check",
				Arguments: map[string]any{
					"targets_override": "availability=99.99", // Invalid separator
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "invalid targets_override")
	})

	t.Run("run_gate_check unknown slo in override", func(t *testing.T) {
		tool := s.GetTool("run_gate_check")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "run_gate_check",
				Arguments: map[string]any{
					"targets_override": "throughput:1000",
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, `unknown slo "throughput"`)
	})

	t.Run("run_gate_check inverted thresholds", func(t *testing.T) {
		tool := s.GetTool("run_gate_check")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "run_gate_check",
				Arguments: map[string]any{
					"budget_warning":  90.0,
					"budget_critical": 50.0, // Invalid: below warning
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "must be greater than budget_warning")
	})
}

func TestMCPServerHandlers_RunGateCheck(t *testing.T) {
	var mgr contract.HistoryManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)

	tool := s.GetTool("run_gate_check")
	require.NotNil(t, tool)

	// The demo snapshot passes with the default objectives
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "run_gate_check",
			Arguments: map[string]any{},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var report schema.CheckReport
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &report))
	assert.True(t, report.Passed)
	assert.Equal(t, 6, report.TotalChecks())
}

func TestMCPServerHandlers_GetSLODefinitions(t *testing.T) {
	var mgr contract.HistoryManager
	s := mcp_internal.NewMCPServer(baseConfig(), mgr)

	tool := s.GetTool("get_slo_definitions")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: "get_slo_definitions"},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	var defs []schema.SLODefinition
	require.NoError(t, json.Unmarshal([]byte(res.Content[0].(mcp.TextContent).Text), &defs))
	require.Len(t, defs, 3)
	assert.Equal(t, "availability", defs[0].Name)
}

func TestMCPServerHandlers_GetHistoryStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("nil manager", func(t *testing.T) {
		var mgr contract.HistoryManager
		s := mcp_internal.NewMCPServer(baseConfig(), mgr)

		tool := s.GetTool("get_history_status")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_history_status"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "history store is not initialized")
	})
}
