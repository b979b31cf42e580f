package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompareOp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CompareOp
		wantErr bool
	}{
		{name: "greater or equal", input: ">=", want: OpGTE},
		{name: "less or equal", input: "<=", want: OpLTE},
		{name: "greater", input: ">", want: OpGT},
		{name: "less", input: "<", want: OpLT},
		{name: "equality is not supported", input: "==", wantErr: true},
		{name: "spelled out operator", input: "gte", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace padded", input: " >= ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompareOp(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareOpEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		op      CompareOp
		current float64
		target  float64
		want    bool
	}{
		{name: "gte above target", op: OpGTE, current: 99.95, target: 99.9, want: true},
		{name: "gte exactly at target", op: OpGTE, current: 99.9, target: 99.9, want: true},
		{name: "gte below target", op: OpGTE, current: 99.89, target: 99.9, want: false},
		{name: "lte below target", op: OpLTE, current: 0.05, target: 0.1, want: true},
		{name: "lte exactly at target", op: OpLTE, current: 0.1, target: 0.1, want: true},
		{name: "lte above target", op: OpLTE, current: 0.2, target: 0.1, want: false},
		{name: "gt above target", op: OpGT, current: 95.1, target: 95.0, want: true},
		{name: "gt exactly at target", op: OpGT, current: 95.0, target: 95.0, want: false},
		{name: "lt below target", op: OpLT, current: 0.09, target: 0.1, want: true},
		{name: "lt exactly at target", op: OpLT, current: 0.1, target: 0.1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.op.Evaluate(tt.current, tt.target))
		})
	}
}

func TestClassifyBudget(t *testing.T) {
	tests := []struct {
		name        string
		consumption float64
		want        BudgetStatus
	}{
		{name: "zero consumption", consumption: 0, want: BudgetOK},
		{name: "below warning", consumption: 49.9, want: BudgetOK},
		{name: "exactly at warning", consumption: 50.0, want: BudgetWarning},
		{name: "between warning and critical", consumption: 62.8, want: BudgetWarning},
		{name: "exactly at critical", consumption: 80.0, want: BudgetCritical},
		{name: "above critical", consumption: 95.5, want: BudgetCritical},
		{name: "over one hundred percent", consumption: 120.0, want: BudgetCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyBudget(tt.consumption, DefaultBudgetWarning, DefaultBudgetCritical)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyBudgetCustomThresholds(t *testing.T) {
	assert.Equal(t, BudgetOK, ClassifyBudget(25.0, 30.0, 60.0))
	assert.Equal(t, BudgetWarning, ClassifyBudget(30.0, 30.0, 60.0))
	assert.Equal(t, BudgetCritical, ClassifyBudget(60.0, 30.0, 60.0))
}

func TestDefaultSLODefinitions(t *testing.T) {
	defs := DefaultSLODefinitions()
	require.Len(t, defs, 3)

	assert.Equal(t, "availability", defs[0].Name)
	assert.Equal(t, OpGTE, defs[0].Op)
	assert.InDelta(t, 99.9, defs[0].Target, 1e-9)

	assert.Equal(t, "latency", defs[1].Name)
	assert.Equal(t, OpGTE, defs[1].Op)
	assert.InDelta(t, 95.0, defs[1].Target, 1e-9)

	assert.Equal(t, "error-rate", defs[2].Name)
	assert.Equal(t, OpLTE, defs[2].Op)
	assert.InDelta(t, 0.1, defs[2].Target, 1e-9)

	for _, def := range defs {
		assert.Equal(t, 30, def.WindowDays)
	}
}
