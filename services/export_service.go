// Package services: services/export_service.go
package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"gym-admin/models"
)

// ExportServiceInterface is what the report controller uses for bulk export.
type ExportServiceInterface interface {
	MembersCSV() (filename string, content string, err error)
	MembersJSON() (filename string, members []models.Member, err error)
}

// ExportService renders the member collection as a downloadable document. It
// is a pure formatting view over storage.
type ExportService struct {
	storage FileStorageInterface
}

// NewExportService creates an ExportService on top of the given storage.
func NewExportService(storage FileStorageInterface) *ExportService {
	return &ExportService{storage: storage}
}

var csvHeader = []string{
	"ID", "Name", "Age", "Contact", "Email", "Plan",
	"Join Date", "Due Date", "Fees", "Payment Status",
	"Last Payment", "Attendance Count",
}

// MembersCSV returns the member collection as CSV text with a dated filename.
func (s *ExportService) MembersCSV() (string, string, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return "", "", err
	}
	for _, m := range members {
		row := []string{
			m.ID,
			m.Name,
			strconv.Itoa(m.Age),
			m.Contact,
			m.Email,
			m.Plan,
			m.JoinDate,
			m.DueDate,
			strconv.Itoa(m.Fees),
			string(m.PaymentStatus),
			m.LastPayment,
			strconv.Itoa(len(m.Attendance)),
		}
		if err := w.Write(row); err != nil {
			return "", "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", "", err
	}

	filename := "members_export_" + nowFunc().Format("20060102") + ".csv"
	return filename, buf.String(), nil
}

// MembersJSON returns the member collection itself with a dated filename.
func (s *ExportService) MembersJSON() (string, []models.Member, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return "", nil, err
	}
	filename := "members_export_" + nowFunc().Format("20060102") + ".json"
	return filename, members, nil
}
