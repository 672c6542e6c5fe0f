// Package services: services/file_storage.go
package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gym-admin/logger"
	"gym-admin/models"
)

// collection file names under <storage>/data
const (
	membersFile    = "members.json"
	attendanceFile = "attendance.json"
	plansFile      = "plans.json"
)

// FileStorageInterface is the persistence contract used by the domain
// services. FileStorageService is the disk implementation; tests can swap in
// an in-memory one.
type FileStorageInterface interface {
	ReadMembers() ([]models.Member, error)
	WriteMembers(members []models.Member) error
	ReadAttendance() (models.AttendanceLog, error)
	WriteAttendance(log models.AttendanceLog) error
	ReadPlans() ([]models.Plan, error)
	WritePlans(plans []models.Plan) error
	SavePhoto(data []byte, filename string) (string, error)
	DeletePhoto(filename string) bool
	Lock()
	Unlock()
}

// FileStorageService persists each collection as one JSON document under
// <root>/data and photo blobs under <root>/uploads/photos. There is no cache:
// every read re-parses the file and every write replaces it in full, so any
// operation always sees the latest persisted state.
type FileStorageService struct {
	// mu serializes whole read-mutate-write sequences. Domain services hold
	// it for the duration of an operation, so two concurrent writers cannot
	// silently discard each other's changes.
	mu sync.Mutex

	root       string
	dataPath   string
	photosPath string
}

// NewFileStorageService creates the storage directories if needed and returns
// a service rooted at storagePath.
func NewFileStorageService(storagePath string) (*FileStorageService, error) {
	s := &FileStorageService{
		root:       storagePath,
		dataPath:   filepath.Join(storagePath, "data"),
		photosPath: filepath.Join(storagePath, "uploads", "photos"),
	}
	for _, dir := range []string{s.dataPath, s.photosPath} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
		}
	}
	return s, nil
}

// Lock takes the storage mutex for a read-mutate-write sequence.
func (s *FileStorageService) Lock() { s.mu.Lock() }

// Unlock releases the storage mutex.
func (s *FileStorageService) Unlock() { s.mu.Unlock() }

// readJSON decodes the named collection into out. A missing file is not an
// error; out is left at its zero value and ok=false is returned so callers
// can substitute their empty collection.
func (s *FileStorageService) readJSON(filename string, out interface{}) (bool, error) {
	path := filepath.Join(s.dataPath, filename)
	data, err := os.ReadFile(path) // #nosec
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", filename, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// corrupt document: fatal for the caller, operator must repair the file
		logger.Error.Printf("readJSON: %s is not valid JSON: %v", filename, err)
		return false, fmt.Errorf("parse %s: %w", filename, err)
	}
	return true, nil
}

// writeJSON serializes the document and replaces the named collection in full.
func (s *FileStorageService) writeJSON(filename string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	path := filepath.Join(s.dataPath, filename)
	if err := os.WriteFile(path, data, 0640); err != nil { // #nosec
		logger.Error.Printf("writeJSON: failed to write %s: %v", filename, err)
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// ReadMembers returns the full member collection, empty when the file is
// missing.
func (s *FileStorageService) ReadMembers() ([]models.Member, error) {
	var members []models.Member
	ok, err := s.readJSON(membersFile, &members)
	if err != nil {
		return nil, err
	}
	if !ok || members == nil {
		return []models.Member{}, nil
	}
	return members, nil
}

// WriteMembers replaces the member collection.
func (s *FileStorageService) WriteMembers(members []models.Member) error {
	return s.writeJSON(membersFile, members)
}

// ReadAttendance returns the attendance log, empty when the file is missing.
func (s *FileStorageService) ReadAttendance() (models.AttendanceLog, error) {
	var log models.AttendanceLog
	ok, err := s.readJSON(attendanceFile, &log)
	if err != nil {
		return nil, err
	}
	if !ok || log == nil {
		return models.AttendanceLog{}, nil
	}
	return log, nil
}

// WriteAttendance replaces the attendance log.
func (s *FileStorageService) WriteAttendance(log models.AttendanceLog) error {
	return s.writeJSON(attendanceFile, log)
}

// ReadPlans returns the plan catalog, empty when the file is missing.
func (s *FileStorageService) ReadPlans() ([]models.Plan, error) {
	var plans []models.Plan
	ok, err := s.readJSON(plansFile, &plans)
	if err != nil {
		return nil, err
	}
	if !ok || plans == nil {
		return []models.Plan{}, nil
	}
	return plans, nil
}

// WritePlans replaces the plan catalog.
func (s *FileStorageService) WritePlans(plans []models.Plan) error {
	return s.writeJSON(plansFile, plans)
}

// SavePhoto stores a photo blob and returns the URL path the front-end uses
// to fetch it back.
func (s *FileStorageService) SavePhoto(data []byte, filename string) (string, error) {
	path := filepath.Join(s.photosPath, filename)
	if err := os.WriteFile(path, data, 0640); err != nil { // #nosec
		logger.Error.Printf("SavePhoto: failed to write %s: %v", filename, err)
		return "", fmt.Errorf("save photo %s: %w", filename, err)
	}
	return "/uploads/photos/" + filename, nil
}

// DeletePhoto removes a photo blob if present. Deletion is best-effort: the
// result is reported as a boolean and never as an error.
func (s *FileStorageService) DeletePhoto(filename string) bool {
	path := filepath.Join(s.photosPath, filename)
	if err := os.Remove(path); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn.Printf("DeletePhoto: could not remove %s: %v", filename, err)
		}
		return false
	}
	return true
}

// PhotosDir returns the directory photo blobs are served from.
func (s *FileStorageService) PhotosDir() string {
	return s.photosPath
}

// SeedDefaults creates the default plan catalog and empty member/attendance
// collections for any collection file that does not exist yet.
func (s *FileStorageService) SeedDefaults() error {
	if _, err := os.Stat(filepath.Join(s.dataPath, plansFile)); os.IsNotExist(err) {
		if err := s.WritePlans(models.DefaultPlans); err != nil {
			return err
		}
		logger.Info.Printf("SeedDefaults: wrote %d default plans", len(models.DefaultPlans))
	}
	if _, err := os.Stat(filepath.Join(s.dataPath, membersFile)); os.IsNotExist(err) {
		if err := s.WriteMembers([]models.Member{}); err != nil {
			return err
		}
	}
	if _, err := os.Stat(filepath.Join(s.dataPath, attendanceFile)); os.IsNotExist(err) {
		if err := s.WriteAttendance(models.AttendanceLog{}); err != nil {
			return err
		}
	}
	return nil
}
