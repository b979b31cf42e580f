package histstore

import (
	"time"

	"github.com/huangsam/slogate/internal/contract"
	"github.com/huangsam/slogate/schema"
	"github.com/stretchr/testify/mock"
)

// MockHistoryManager is a mock implementation of HistoryManager for testing.
type MockHistoryManager struct {
	mock.Mock
}

var _ contract.HistoryManager = &MockHistoryManager{} // Compile-time check

// GetHistoryStore implements the HistoryManager interface.
func (m *MockHistoryManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.HistoryStore)
	return store
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// RecordRun implements the HistoryStore interface.
func (m *MockHistoryStore) RecordRun(runTime time.Time, report *schema.CheckReport, configParams map[string]any) (int64, error) {
	args := m.Called(runTime, report, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus() (schema.HistoryStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllRuns() ([]schema.GateRunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.GateRunRecord)
	return runs, args.Error(1)
}

// GetAllOutcomes implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllOutcomes() ([]schema.CheckOutcomeRecord, error) {
	args := m.Called()
	outcomes, _ := args.Get(0).([]schema.CheckOutcomeRecord)
	return outcomes, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
