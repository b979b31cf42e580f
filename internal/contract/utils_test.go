package contract

import (
	"testing"

	"github.com/huangsam/slogate/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPassLabel(t *testing.T) {
	assert.Equal(t, PassValue, GetPassLabel(true))
	assert.Equal(t, FailValue, GetPassLabel(false))
}

func TestGetColorPassLabel(t *testing.T) {
	// Colored output may or may not include escape codes depending on the
	// environment, but the label text is always present.
	assert.Contains(t, GetColorPassLabel(true), PassValue)
	assert.Contains(t, GetColorPassLabel(false), FailValue)
}

func TestGetColorBudgetStatus(t *testing.T) {
	assert.Contains(t, GetColorBudgetStatus(schema.BudgetOK), "OK")
	assert.Contains(t, GetColorBudgetStatus(schema.BudgetWarning), "WARNING")
	assert.Contains(t, GetColorBudgetStatus(schema.BudgetCritical), "CRITICAL")
}

func TestParseBoolString(t *testing.T) {
	trueValues := []string{"yes", "YES", "true", "True", "1"}
	for _, v := range trueValues {
		got, err := ParseBoolString(v)
		require.NoError(t, err, v)
		assert.True(t, got, v)
	}

	falseValues := []string{"no", "NO", "false", "False", "0"}
	for _, v := range falseValues {
		got, err := ParseBoolString(v)
		require.NoError(t, err, v)
		assert.False(t, got, v)
	}

	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()
	assert.Contains(t, path, ".slogate_history.db")
}
