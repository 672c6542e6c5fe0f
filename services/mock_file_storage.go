// Package services: services/mock_file_storage.go
package services

import (
	"sync"

	"gym-admin/models"
)

// MockFileStorage is an in-memory FileStorageInterface used by tests. Set
// ReadErr to simulate a corrupt collection file.
type MockFileStorage struct {
	mu sync.Mutex

	Members    []models.Member
	Attendance models.AttendanceLog
	Plans      []models.Plan
	Photos     map[string][]byte

	ReadErr error
}

// NewMockFileStorage returns an empty in-memory store.
func NewMockFileStorage() *MockFileStorage {
	return &MockFileStorage{
		Members:    []models.Member{},
		Attendance: models.AttendanceLog{},
		Plans:      []models.Plan{},
		Photos:     map[string][]byte{},
	}
}

func (m *MockFileStorage) Lock()   { m.mu.Lock() }
func (m *MockFileStorage) Unlock() { m.mu.Unlock() }

func (m *MockFileStorage) ReadMembers() ([]models.Member, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	out := make([]models.Member, len(m.Members))
	copy(out, m.Members)
	return out, nil
}

func (m *MockFileStorage) WriteMembers(members []models.Member) error {
	m.Members = make([]models.Member, len(members))
	copy(m.Members, members)
	return nil
}

func (m *MockFileStorage) ReadAttendance() (models.AttendanceLog, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	out := models.AttendanceLog{}
	for date, day := range m.Attendance {
		entry := map[string]bool{}
		for id, present := range day {
			entry[id] = present
		}
		out[date] = entry
	}
	return out, nil
}

func (m *MockFileStorage) WriteAttendance(log models.AttendanceLog) error {
	m.Attendance = log
	return nil
}

func (m *MockFileStorage) ReadPlans() ([]models.Plan, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return m.Plans, nil
}

func (m *MockFileStorage) WritePlans(plans []models.Plan) error {
	m.Plans = plans
	return nil
}

func (m *MockFileStorage) SavePhoto(data []byte, filename string) (string, error) {
	m.Photos[filename] = data
	return "/uploads/photos/" + filename, nil
}

func (m *MockFileStorage) DeletePhoto(filename string) bool {
	if _, ok := m.Photos[filename]; !ok {
		return false
	}
	delete(m.Photos, filename)
	return true
}
