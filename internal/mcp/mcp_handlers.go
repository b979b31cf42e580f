package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/slogate/core"
	"github.com/huangsam/slogate/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

func (h *toolHandler) handleRunGateCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if f := request.GetString("snapshot_file", ""); f != "" {
		cfg.SnapshotFile = f
	}
	if w := request.GetFloat("budget_warning", 0); w > 0 {
		cfg.BudgetWarning = w
	}
	if c := request.GetFloat("budget_critical", 0); c > 0 {
		cfg.BudgetCritical = c
	}
	if cfg.BudgetCritical <= cfg.BudgetWarning {
		return mcp.NewToolResultError(fmt.Sprintf(
			"budget_critical (%.2f) must be greater than budget_warning (%.2f)",
			cfg.BudgetCritical, cfg.BudgetWarning)), nil
	}
	if t := request.GetString("targets_override", ""); t != "" {
		if err := applyTargetsOverride(cfg, t); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid targets_override: %v", err)), nil
		}
	}

	report, err := core.RunGateCheck(ctx, cfg, core.SelectMetricSource(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("gate evaluation failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSLODefinitions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(h.baseCfg.SLOs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetHistoryStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.mgr == nil {
		return mcp.NewToolResultError("history store is not initialized"), nil
	}
	store := h.mgr.GetHistoryStore()
	if store == nil {
		return mcp.NewToolResultError("history store is not initialized"), nil
	}

	status, err := store.GetStatus()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get history status: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(status, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// applyTargetsOverride parses a "name:value,name:value" string and applies it
// to the cloned config's SLO targets.
func applyTargetsOverride(cfg *contract.Config, overrides string) error {
	for part := range strings.SplitSeq(overrides, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return fmt.Errorf("invalid target format '%s', expected 'name:value'", part)
		}
		name := strings.TrimSpace(keyValue[0])
		value, err := strconv.ParseFloat(strings.TrimSpace(keyValue[1]), 64)
		if err != nil {
			return fmt.Errorf("invalid target value for slo %s: %w", name, err)
		}

		found := false
		for i := range cfg.SLOs {
			if cfg.SLOs[i].Name == name {
				cfg.SLOs[i].Target = value
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown slo %q", name)
		}
	}
	return nil
}
