// Package services: services/member_service.go
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"gym-admin/logger"
	"gym-admin/models"
)

// planDurations maps plan names to their duration in months for due-date
// math. This table is intentionally independent of the duration field in
// plans.json; unknown plan names fall back to 3 months.
var planDurations = map[string]int{
	"Basic (3 Months)":    3,
	"Standard (6 Months)": 6,
	"Premium (12 Months)": 12,
}

const defaultPlanMonths = 3

const maxPhotoBytes = 5 * 1024 * 1024

// MemberServiceInterface is what the member controllers depend on.
type MemberServiceInterface interface {
	List() ([]models.Member, error)
	Get(id string) (models.Member, error)
	Create(req models.MemberCreate) (models.Member, error)
	Update(id string, req models.MemberUpdate) (models.Member, error)
	Delete(id string) error
	AttachPhoto(id string, data []byte, origName, contentType string) (string, error)
	SetPaymentStatus(id string, status models.PaymentStatus) (models.Member, error)
	Overdue() ([]models.Member, error)
	Pending() ([]models.Member, error)
	MonthlyRevenue(month string) (models.RevenueSummary, error)
	Plans() ([]models.Plan, error)
}

// MemberService applies the member business rules. Every operation follows
// read-full-collection, validate, mutate in memory, write-full-collection,
// holding the storage lock across the whole sequence.
type MemberService struct {
	storage FileStorageInterface
}

// NewMemberService creates a MemberService on top of the given storage.
func NewMemberService(storage FileStorageInterface) *MemberService {
	return &MemberService{storage: storage}
}

// planMonths returns the hardcoded duration for a plan name.
func planMonths(plan string) int {
	if months, ok := planDurations[plan]; ok {
		return months
	}
	return defaultPlanMonths
}

// nextMemberID derives the next id from the highest numeric suffix already
// in use, so ids from deleted members are never reused.
func nextMemberID(members []models.Member) string {
	maxID := 0
	for _, m := range members {
		if !strings.HasPrefix(m.ID, "M") {
			continue
		}
		n, err := strconv.Atoi(m.ID[1:])
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("M%03d", maxID+1)
}

// emailTaken does a case-insensitive scan for the email across all members.
func emailTaken(email string, members []models.Member) bool {
	for _, m := range members {
		if strings.EqualFold(m.Email, email) {
			return true
		}
	}
	return false
}

// findMember returns the index of the member with the given id, or -1.
func findMember(members []models.Member, id string) int {
	for i := range members {
		if members[i].ID == id {
			return i
		}
	}
	return -1
}

// List returns all members.
func (s *MemberService) List() ([]models.Member, error) {
	s.storage.Lock()
	defer s.storage.Unlock()
	return s.storage.ReadMembers()
}

// Get returns one member by id.
func (s *MemberService) Get(id string) (models.Member, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.Member{}, err
	}
	idx := findMember(members, id)
	if idx < 0 {
		return models.Member{}, ErrMemberNotFound
	}
	return members[idx], nil
}

// Create registers a new member. The id is assigned from the highest existing
// numeric suffix, the due date is joinDate plus the plan duration in 30-day
// months, and the member starts out paid.
func (s *MemberService) Create(req models.MemberCreate) (models.Member, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.Member{}, err
	}
	if emailTaken(req.Email, members) {
		logger.Warn.Printf("Create: email %s already registered", req.Email)
		return models.Member{}, ErrEmailTaken
	}

	now := nowFunc()
	joinDate := now.Format(dateFormat)
	months := planMonths(req.Plan)
	dueDate := now.AddDate(0, 0, months*30).Format(dateFormat)

	member := models.Member{
		ID:            nextMemberID(members),
		Name:          req.Name,
		Age:           req.Age,
		Contact:       req.Contact,
		Email:         req.Email,
		Plan:          req.Plan,
		JoinDate:      joinDate,
		DueDate:       dueDate,
		Fees:          req.Fees,
		PaymentStatus: models.PaymentPaid,
		LastPayment:   joinDate,
		Attendance:    []string{},
	}

	members = append(members, member)
	if err := s.storage.WriteMembers(members); err != nil {
		return models.Member{}, err
	}
	logger.Info.Printf("Create: member %s (%s) created on plan %q", member.ID, member.Email, member.Plan)
	return member, nil
}

// Update applies a partial update: only non-nil fields touch the record.
func (s *MemberService) Update(id string, req models.MemberUpdate) (models.Member, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.Member{}, err
	}
	idx := findMember(members, id)
	if idx < 0 {
		return models.Member{}, ErrMemberNotFound
	}

	m := &members[idx]
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Age != nil {
		m.Age = *req.Age
	}
	if req.Contact != nil {
		m.Contact = *req.Contact
	}
	if req.Email != nil {
		m.Email = *req.Email
	}
	if req.Photo != nil {
		m.Photo = req.Photo.URL
	}
	if req.Plan != nil {
		m.Plan = *req.Plan
	}
	if req.Fees != nil {
		m.Fees = *req.Fees
	}

	if err := s.storage.WriteMembers(members); err != nil {
		return models.Member{}, err
	}
	logger.Info.Printf("Update: member %s updated", id)
	return members[idx], nil
}

// Delete removes a member and best-effort deletes their photo blob. A photo
// that cannot be deleted never blocks removal of the record.
func (s *MemberService) Delete(id string) error {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return err
	}
	idx := findMember(members, id)
	if idx < 0 {
		return ErrMemberNotFound
	}

	if photo := members[idx].Photo; strings.HasPrefix(photo, "/uploads/") {
		parts := strings.Split(photo, "/")
		filename := parts[len(parts)-1]
		if !s.storage.DeletePhoto(filename) {
			logger.Warn.Printf("Delete: photo %s for member %s was not removed", filename, id)
		}
	}

	members = append(members[:idx], members[idx+1:]...)
	if err := s.storage.WriteMembers(members); err != nil {
		return err
	}
	logger.Info.Printf("Delete: member %s removed", id)
	return nil
}

// AttachPhoto validates and stores an uploaded photo, then points the member
// record at it. Returns the stored photo URL.
func (s *MemberService) AttachPhoto(id string, data []byte, origName, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrInvalidPhoto
	}
	if len(data) > maxPhotoBytes {
		return "", ErrPhotoTooLarge
	}

	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return "", err
	}
	idx := findMember(members, id)
	if idx < 0 {
		return "", ErrMemberNotFound
	}

	ext := "jpg"
	if i := strings.LastIndex(origName, "."); i >= 0 && i < len(origName)-1 {
		ext = origName[i+1:]
	}
	filename := fmt.Sprintf("%s_%s.%s", id, strings.ReplaceAll(uuid.NewString(), "-", "")[:8], ext)

	url, err := s.storage.SavePhoto(data, filename)
	if err != nil {
		return "", err
	}

	members[idx].Photo = url
	if err := s.storage.WriteMembers(members); err != nil {
		return "", err
	}
	logger.Info.Printf("AttachPhoto: stored %s for member %s", filename, id)
	return url, nil
}

// SetPaymentStatus transitions a member's payment state. Marking a member
// paid stamps lastPayment with today and pushes the due date forward by the
// plan duration from the previous due date, so a late payment still owes the
// lateness window.
func (s *MemberService) SetPaymentStatus(id string, status models.PaymentStatus) (models.Member, error) {
	if !status.Valid() {
		return models.Member{}, ErrInvalidStatus
	}

	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.Member{}, err
	}
	idx := findMember(members, id)
	if idx < 0 {
		return models.Member{}, ErrMemberNotFound
	}

	m := &members[idx]
	m.PaymentStatus = status
	if status == models.PaymentPaid {
		m.LastPayment = today()
		months := planMonths(m.Plan)
		if due, err := time.Parse(dateFormat, m.DueDate); err == nil {
			m.DueDate = due.AddDate(0, 0, months*30).Format(dateFormat)
		} else {
			logger.Warn.Printf("SetPaymentStatus: member %s has unparsable due date %q, restarting from today", id, m.DueDate)
			m.DueDate = nowFunc().AddDate(0, 0, months*30).Format(dateFormat)
		}
	}

	if err := s.storage.WriteMembers(members); err != nil {
		return models.Member{}, err
	}
	logger.Info.Printf("SetPaymentStatus: member %s is now %s", id, status)
	return members[idx], nil
}

// Overdue returns members already flagged overdue plus paid members whose due
// date has passed. The date comparison is plain string order, valid because
// the format is fixed-width.
func (s *MemberService) Overdue() ([]models.Member, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return nil, err
	}

	cutoff := today()
	overdue := []models.Member{}
	for _, m := range members {
		if m.PaymentStatus == models.PaymentOverdue ||
			(m.PaymentStatus == models.PaymentPaid && m.DueDate < cutoff) {
			overdue = append(overdue, m)
		}
	}
	return overdue, nil
}

// Pending returns members whose payment status is pending.
func (s *MemberService) Pending() ([]models.Member, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return nil, err
	}

	pending := []models.Member{}
	for _, m := range members {
		if m.PaymentStatus == models.PaymentPending {
			pending = append(pending, m)
		}
	}
	return pending, nil
}

// MonthlyRevenue sums fees for members whose last payment falls in the given
// YYYY-MM month, split between new joins and renewals.
func (s *MemberService) MonthlyRevenue(month string) (models.RevenueSummary, error) {
	s.storage.Lock()
	defer s.storage.Unlock()

	members, err := s.storage.ReadMembers()
	if err != nil {
		return models.RevenueSummary{}, err
	}

	summary := models.RevenueSummary{Month: month}
	for _, m := range members {
		if !strings.HasPrefix(m.LastPayment, month) {
			continue
		}
		summary.TotalRevenue += m.Fees
		summary.TotalPaidMembers++
		if strings.HasPrefix(m.JoinDate, month) {
			summary.NewMemberRevenue += m.Fees
			summary.NewMemberCount++
		} else {
			summary.RenewalRevenue += m.Fees
		}
	}
	return summary, nil
}

// Plans returns the plan catalog.
func (s *MemberService) Plans() ([]models.Plan, error) {
	s.storage.Lock()
	defer s.storage.Unlock()
	return s.storage.ReadPlans()
}
