package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/slogate/schema"
)

// Verdict label constants.
const (
	PassValue = "PASS"
	FailValue = "FAIL"
)

// Color variables for console output.
var (
	PassColor     = color.New(color.FgGreen)             // passColor marks objectives that met their target.
	FailColor     = color.New(color.FgRed, color.Bold)   // failColor marks missed objectives and blocked releases.
	OKColor       = color.New(color.FgCyan)              // okColor represents healthy budget consumption.
	WarnColor     = color.New(color.FgYellow)            // warnColor represents elevated budget consumption, not bold.
	CriticalColor = color.New(color.FgRed, color.Bold)   // criticalColor represents a spent budget.
	HeaderColor   = color.New(color.FgBlue, color.Bold)  // headerColor for section headers.
)

// GetPassLabel returns a plain PASS/FAIL label. This is the core logic used
// for CSV, JSON and table printing.
func GetPassLabel(passed bool) string {
	if passed {
		return PassValue
	}
	return FailValue
}

// GetColorPassLabel returns a colored PASS/FAIL label for console output.
func GetColorPassLabel(passed bool) string {
	if passed {
		return PassColor.Sprint(PassValue)
	}
	return FailColor.Sprint(FailValue)
}

// GetColorBudgetStatus returns a colored budget status label for console output.
func GetColorBudgetStatus(status schema.BudgetStatus) string {
	switch status {
	case schema.BudgetCritical:
		return CriticalColor.Sprint(string(status))
	case schema.BudgetWarning:
		return WarnColor.Sprint(string(status))
	default:
		return OKColor.Sprint(string(status))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for run history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".slogate_history.db"
	}
	return filepath.Join(homeDir, ".slogate_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
