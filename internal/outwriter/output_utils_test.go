package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{name: "precision 1", precision: 1, value: 99.95, expected: "100.0"},
		{name: "precision 2", precision: 2, value: 99.949, expected: "99.95"},
		{name: "precision 1 rounds down", precision: 1, value: 45.24, expected: "45.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, _ := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"total": 6}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 6, decoded["total"])
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"name", "value"}, func(w *csv.Writer) error {
		return w.Write([]string{"availability", "99.9"})
	})
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"name", "value"}, records[0])
	assert.Equal(t, []string{"availability", "99.9"}, records[1])
}

func TestGetTerminalWidthOverride(t *testing.T) {
	assert.Equal(t, 120, getTerminalWidth(&contract.Config{Width: 120}))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	// Narrow terminal clamps to the minimum
	assert.Equal(t, 15, getMaxTableNameWidth(&contract.Config{Width: 40}))
	// Wide terminal clamps to the maximum
	assert.Equal(t, 50, getMaxTableNameWidth(&contract.Config{Width: 300}))
	// In between scales with the terminal
	assert.Equal(t, 35, getMaxTableNameWidth(&contract.Config{Width: 80}))
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "availability", truncateName("availability", 15))
	got := truncateName("payments.checkout.availability", 15)
	assert.Len(t, []rune(got), 15)
	assert.Equal(t, "…", string([]rune(got)[0]))
}
